package entity

// DockGroup is a tab strip plus a content pane holding an ordered set of docks.
// A live group always holds at least one dock; an emptied group is deleted.
type DockGroup struct {
	id         ID
	parent     ID
	hasParent  bool
	tabsRect   Rect
	docksRect  Rect
	docks      []ID
	active     ID
	hasActive  bool
	background BorderImage
}

func newDockGroup(id ID, visuals Visuals) *DockGroup {
	return &DockGroup{
		id: id,
		background: NewBorderImage(visuals.DockBackground,
			dockBackgroundL, dockBackgroundR, dockBackgroundT, dockBackgroundB),
	}
}

// ID returns the group's identifier.
func (g *DockGroup) ID() ID { return g.id }

// Parent returns the owning table, if any.
func (g *DockGroup) Parent() (ID, bool) { return g.parent, g.hasParent }

// TabsRect returns the tab strip rectangle.
func (g *DockGroup) TabsRect() Rect { return g.tabsRect }

// ContentRect returns the content pane rectangle.
func (g *DockGroup) ContentRect() Rect { return g.docksRect }

// Background returns the content chrome.
func (g *DockGroup) Background() BorderImage { return g.background }

// Docks returns the dock IDs in tab order.
func (g *DockGroup) Docks() []ID {
	out := make([]ID, len(g.docks))
	copy(out, g.docks)
	return out
}

// Len returns the number of docks.
func (g *DockGroup) Len() int { return len(g.docks) }

// Active returns the selected dock, if any.
func (g *DockGroup) Active() (ID, bool) { return g.active, g.hasActive }

// IndexOf returns the tab index of a dock.
func (g *DockGroup) IndexOf(dockID ID) (int, bool) {
	for i, id := range g.docks {
		if id == dockID {
			return i, true
		}
	}
	return 0, false
}

// Dimensions returns the full extent: tab strip plus content.
func (g *DockGroup) Dimensions() (w, h int) {
	return g.tabsRect.W, g.tabsRect.H + g.docksRect.H
}

func (g *DockGroup) setParent(id ID) {
	g.parent, g.hasParent = id, true
}

func (g *DockGroup) clearParent() {
	g.parent, g.hasParent = 0, false
}

func (g *DockGroup) insertDock(id ID, index int) {
	if index < 0 {
		index = 0
	} else if index > len(g.docks) {
		index = len(g.docks)
	}
	g.docks = append(g.docks, 0)
	copy(g.docks[index+1:], g.docks[index:])
	g.docks[index] = id
	g.active, g.hasActive = id, true
}

func (g *DockGroup) removeDock(id ID) (int, bool) {
	index, ok := g.IndexOf(id)
	if !ok {
		return 0, false
	}
	g.docks = append(g.docks[:index], g.docks[index+1:]...)
	if g.hasActive && g.active == id {
		g.hasActive = false
		if len(g.docks) > 0 {
			next := index
			if next >= len(g.docks) {
				next = len(g.docks) - 1
			}
			g.active, g.hasActive = g.docks[next], true
		}
	}
	return index, true
}

// moveDock relocates a dock inside the strip. Both indices must be valid.
func (g *DockGroup) moveDock(from, to int) {
	id := g.docks[from]
	g.docks = append(g.docks[:from], g.docks[from+1:]...)
	g.docks = append(g.docks, 0)
	copy(g.docks[to+1:], g.docks[to:])
	g.docks[to] = id
}

func (g *DockGroup) setActive(id ID) bool {
	if _, ok := g.IndexOf(id); !ok {
		return false
	}
	g.active, g.hasActive = id, true
	return true
}

// newCellPosition decides where a dock dropped at (x, y) goes. parent is the
// orientation of the owning table and index this group's slot in it.
func (g *DockGroup) newCellPosition(x, y int, parent Orientation, index int, margin int) (CellPosition, bool) {
	if !g.docksRect.Contains(x, y) || !g.hasParent {
		return CellPosition{}, false
	}
	r := g.docksRect
	left := x-r.X <= margin
	right := r.X+r.W-x <= margin
	top := y+r.Y <= margin
	bottom := -r.Y+r.H-y <= margin

	attachBefore := ExistingTablePosition(g.parent, index)
	attachAfter := ExistingTablePosition(g.parent, index+1)
	splitBefore := NewTablePosition(g.id, 0)
	splitAfter := NewTablePosition(g.id, 1)

	if parent == Vertical {
		switch {
		case top:
			return attachBefore, true
		case bottom:
			return attachAfter, true
		case left:
			return splitBefore, true
		case right:
			return splitAfter, true
		}
		return CellPosition{}, false
	}
	switch {
	case top:
		return splitBefore, true
	case bottom:
		return splitAfter, true
	case left:
		return attachBefore, true
	case right:
		return attachAfter, true
	}
	return CellPosition{}, false
}
