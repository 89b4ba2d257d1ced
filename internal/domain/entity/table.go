package entity

// DockTable is a split container laying its cells out along one orientation.
type DockTable struct {
	id          ID
	parent      ID
	hasParent   bool
	orientation Orientation
	cells       []Cell
	rect        Rect
}

func newDockTable(id ID, orientation Orientation) *DockTable {
	return &DockTable{id: id, orientation: orientation}
}

// ID returns the table's identifier.
func (t *DockTable) ID() ID { return t.id }

// Parent returns the owning table, if any. The root has none.
func (t *DockTable) Parent() (ID, bool) { return t.parent, t.hasParent }

// Orientation returns the stacking direction.
func (t *DockTable) Orientation() Orientation { return t.orientation }

// Rect returns the table's rectangle.
func (t *DockTable) Rect() Rect { return t.rect }

// Cells returns the children in layout order.
func (t *DockTable) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)
	return out
}

// Len returns the number of children.
func (t *DockTable) Len() int { return len(t.cells) }

// IndexOf returns the slot of a child.
func (t *DockTable) IndexOf(id ID) (int, bool) {
	for i, c := range t.cells {
		if c.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (t *DockTable) setParent(id ID) {
	t.parent, t.hasParent = id, true
}

func (t *DockTable) clearParent() {
	t.parent, t.hasParent = 0, false
}

// insertCell clamps index to [0, len].
func (t *DockTable) insertCell(c Cell, index int) {
	if index < 0 {
		index = 0
	} else if index > len(t.cells) {
		index = len(t.cells)
	}
	t.cells = append(t.cells, Cell{})
	copy(t.cells[index+1:], t.cells[index:])
	t.cells[index] = c
}

func (t *DockTable) removeCell(id ID) (int, bool) {
	index, ok := t.IndexOf(id)
	if !ok {
		return 0, false
	}
	t.cells = append(t.cells[:index], t.cells[index+1:]...)
	return index, true
}

// cellExtent splits the extent along the axis evenly. Truncating division drops
// the remainder; leftover units are not redistributed.
func (t *DockTable) cellExtent(extent, padding int) int {
	n := len(t.cells)
	if n == 0 {
		return 0
	}
	return (extent - (n-1)*padding) / n
}
