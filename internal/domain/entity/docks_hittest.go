package entity

// DockAt returns the dock whose tab is under the pointer.
func (d *Docks) DockAt(x, y int) (ID, bool) {
	return d.cellDockAt(TableCell(d.root), x, y)
}

// GroupAt returns the group whose tab strip is under the pointer. The area's own
// rectangle gates the search.
func (d *Docks) GroupAt(x, y int) (ID, bool) {
	if !d.rect.Contains(x, y) {
		return 0, false
	}
	return d.cellGroupAt(TableCell(d.root), x, y)
}

// NewCellPositionAt decides where a dock released at (x, y) would be placed.
func (d *Docks) NewCellPositionAt(x, y int) (CellPosition, bool) {
	if !d.rect.Contains(x, y) {
		return CellPosition{}, false
	}
	return d.cellNewPosition(TableCell(d.root), x, y, Horizontal, 0)
}

func (d *Docks) cellDockAt(c Cell, x, y int) (ID, bool) {
	switch c.Kind {
	case CellTable:
		t, ok := d.tables[c.ID]
		if !ok || !t.rect.Contains(x, y) {
			return 0, false
		}
		for _, child := range t.cells {
			if id, ok := d.cellDockAt(child, x, y); ok {
				return id, true
			}
		}
	case CellGroup:
		g, ok := d.groups[c.ID]
		if !ok || !g.tabsRect.Contains(x, y) {
			return 0, false
		}
		for _, id := range g.docks {
			if dk, ok := d.docks[id]; ok && dk.tabRect.Contains(x, y) {
				return id, true
			}
		}
	}
	return 0, false
}

func (d *Docks) cellGroupAt(c Cell, x, y int) (ID, bool) {
	switch c.Kind {
	case CellTable:
		t, ok := d.tables[c.ID]
		if !ok || !t.rect.Contains(x, y) {
			return 0, false
		}
		for _, child := range t.cells {
			if id, ok := d.cellGroupAt(child, x, y); ok {
				return id, true
			}
		}
	case CellGroup:
		if g, ok := d.groups[c.ID]; ok && g.tabsRect.Contains(x, y) {
			return g.id, true
		}
	}
	return 0, false
}

// cellNewPosition passes each table's own orientation and the child's slot down
// to the children; the first match wins.
func (d *Docks) cellNewPosition(c Cell, x, y int, parent Orientation, index int) (CellPosition, bool) {
	switch c.Kind {
	case CellTable:
		t, ok := d.tables[c.ID]
		if !ok || !t.rect.Contains(x, y) {
			return CellPosition{}, false
		}
		for i, child := range t.cells {
			if pos, ok := d.cellNewPosition(child, x, y, t.orientation, i); ok {
				return pos, true
			}
		}
	case CellGroup:
		if g, ok := d.groups[c.ID]; ok {
			return g.newCellPosition(x, y, parent, index, d.metrics.DropMargin)
		}
	}
	return CellPosition{}, false
}
