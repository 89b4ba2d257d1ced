package entity

// SetPosition places the area and propagates to the root table.
func (d *Docks) SetPosition(x, y int) {
	d.rect.SetPosition(x, y)
	d.setCellPosition(TableCell(d.root), x, y)
}

// SetDimensions sizes the area and propagates to the root table.
func (d *Docks) SetDimensions(w, h int) {
	d.rect.SetDimensions(w, h)
	d.setCellDimensions(TableCell(d.root), w, h)
}

// Layout runs one full layout pass over r: dimensions first, because
// positioning reads child extents.
func (d *Docks) Layout(r Rect) {
	d.SetDimensions(r.W, r.H)
	d.SetPosition(r.X, r.Y)
}

func (d *Docks) cellDimensions(c Cell) (w, h int) {
	switch c.Kind {
	case CellTable:
		if t, ok := d.tables[c.ID]; ok {
			return t.rect.W, t.rect.H
		}
	case CellGroup:
		if g, ok := d.groups[c.ID]; ok {
			return g.Dimensions()
		}
	}
	return 0, 0
}

func (d *Docks) setCellPosition(c Cell, x, y int) {
	switch c.Kind {
	case CellTable:
		if t, ok := d.tables[c.ID]; ok {
			d.setTablePosition(t, x, y)
		}
	case CellGroup:
		if g, ok := d.groups[c.ID]; ok {
			d.setGroupPosition(g, x, y)
		}
	}
}

func (d *Docks) setCellDimensions(c Cell, w, h int) {
	switch c.Kind {
	case CellTable:
		if t, ok := d.tables[c.ID]; ok {
			d.setTableDimensions(t, w, h)
		}
	case CellGroup:
		if g, ok := d.groups[c.ID]; ok {
			d.setGroupDimensions(g, w, h)
		}
	}
}

func (d *Docks) setTablePosition(t *DockTable, x, y int) {
	t.rect.SetPosition(x, y)
	offset := 0
	for _, c := range t.cells {
		if t.orientation == Vertical {
			d.setCellPosition(c, x, y-offset)
			_, h := d.cellDimensions(c)
			offset += h + d.metrics.Padding
		} else {
			d.setCellPosition(c, x+offset, y)
			w, _ := d.cellDimensions(c)
			offset += w + d.metrics.Padding
		}
	}
}

func (d *Docks) setTableDimensions(t *DockTable, w, h int) {
	t.rect.SetDimensions(w, h)
	if len(t.cells) == 0 {
		return
	}
	if t.orientation == Vertical {
		per := t.cellExtent(h, d.metrics.Padding)
		for _, c := range t.cells {
			d.setCellDimensions(c, w, per)
		}
		return
	}
	per := t.cellExtent(w, d.metrics.Padding)
	for _, c := range t.cells {
		d.setCellDimensions(c, per, h)
	}
}

func (d *Docks) setGroupPosition(g *DockGroup, x, y int) {
	tabHeight := d.metrics.TabHeight
	g.tabsRect.SetPosition(x, y)
	g.docksRect.SetPosition(x, y-tabHeight)
	g.background.SetPosition(float32(x-chromeInset), float32(y+chromeLift-tabHeight))
	offset := d.metrics.TabInset
	for _, id := range g.docks {
		dk, ok := d.docks[id]
		if !ok {
			continue
		}
		dk.setTabPosition(x+offset, y)
		offset += dk.TabWidth() + d.metrics.TabGap
	}
}

func (d *Docks) setGroupDimensions(g *DockGroup, w, h int) {
	tabHeight := d.metrics.TabHeight
	g.tabsRect.SetDimensions(w, tabHeight)
	g.docksRect.SetDimensions(w, h-tabHeight)
	g.background.SetSize(float32(w+backgroundGrowth), float32(h+backgroundGrowth-tabHeight))
}
