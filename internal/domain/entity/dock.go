package entity

// Dock is a single tabbed panel. Its tab width is fixed when the dock is created
// from the measured label width; relabelling does not resize the tab.
type Dock struct {
	id       ID
	group    ID
	inGroup  bool
	tabRect  Rect
	label    Text
	selected BorderImage
	deselect BorderImage
	dontDraw bool
}

func newDock(id ID, label string, visuals Visuals, metrics Metrics) *Dock {
	d := &Dock{
		id:       id,
		label:    NewText(visuals.Font, label),
		selected: NewBorderImage(visuals.TabSelected, tabChromeBorderLR, tabChromeBorderLR, 0, 0),
		deselect: NewBorderImage(visuals.TabDeselected, tabChromeBorderLR, tabChromeBorderLR, 0, 0),
	}
	d.setTabDimensions(d.label.Width()+metrics.TabLabelPadding, metrics.TabHeight)
	return d
}

// ID returns the dock's identifier.
func (d *Dock) ID() ID { return d.id }

// Group returns the owning group, if any.
func (d *Dock) Group() (ID, bool) { return d.group, d.inGroup }

// TabRect returns the tab's rectangle.
func (d *Dock) TabRect() Rect { return d.tabRect }

// TabWidth returns the fixed tab width.
func (d *Dock) TabWidth() int { return d.tabRect.W }

// Label returns the positioned label.
func (d *Dock) Label() Text { return d.label }

// SetLabel changes the label text. The tab keeps its original width.
func (d *Dock) SetLabel(label string) { d.label.Value = label }

// Chrome returns the tab chrome for the selected or deselected state.
func (d *Dock) Chrome(selected bool) BorderImage {
	if selected {
		return d.selected
	}
	return d.deselect
}

// DontDraw reports whether normal rendering is suppressed.
func (d *Dock) DontDraw() bool { return d.dontDraw }

// SetDontDraw suppresses normal rendering while a drag shows a floating copy.
func (d *Dock) SetDontDraw(dontDraw bool) { d.dontDraw = dontDraw }

// VisualClone copies the label and the selected chrome for a floating preview.
func (d *Dock) VisualClone() (Text, BorderImage) {
	return d.label, d.selected
}

func (d *Dock) setGroup(id ID) {
	d.group, d.inGroup = id, true
}

func (d *Dock) clearGroup() {
	d.group, d.inGroup = 0, false
}

func (d *Dock) setTabPosition(x, y int) {
	d.tabRect.SetPosition(x, y)
	d.label.SetPosition(float32(x+labelInsetX), float32(y-labelBaseline))
	d.selected.SetPosition(float32(x-chromeInset), float32(y+chromeLift))
	d.deselect.SetPosition(float32(x-chromeInset), float32(y+chromeLift))
}

func (d *Dock) setTabDimensions(w, h int) {
	d.tabRect.SetDimensions(w, h)
	d.selected.SetSize(float32(w+2*chromeInset), float32(h+selectedGrowth))
	d.deselect.SetSize(float32(w+2*chromeInset), float32(h+deselectedGrowth))
}
