package entity

// Docks is the registry of one dockable area. It owns every table, group and dock
// in flat ID-indexed maps; nodes refer to each other only by ID. The root table is
// created with the registry and is the entry point for layout and hit-testing.
type Docks struct {
	rect    Rect
	pool    *IndexPool
	tables  map[ID]*DockTable
	groups  map[ID]*DockGroup
	docks   map[ID]*Dock
	root    ID
	visuals Visuals
	metrics Metrics
}

// NewDocks creates a registry with an empty horizontal root table.
func NewDocks(visuals Visuals, metrics Metrics) *Docks {
	d := &Docks{
		pool:    NewIndexPool(),
		tables:  make(map[ID]*DockTable),
		groups:  make(map[ID]*DockGroup),
		docks:   make(map[ID]*Dock),
		visuals: visuals,
		metrics: metrics,
	}
	d.root = d.CreateTable(Horizontal).ID()
	return d
}

// Root returns the root table.
func (d *Docks) Root() *DockTable { return d.tables[d.root] }

// RootID returns the root table's ID.
func (d *Docks) RootID() ID { return d.root }

// Rect returns the area rectangle set by the last layout pass.
func (d *Docks) Rect() Rect { return d.rect }

// Metrics returns the spacing constants.
func (d *Docks) Metrics() Metrics { return d.metrics }

// Visuals returns the shared default visuals.
func (d *Docks) Visuals() Visuals { return d.visuals }

// CreateTable allocates and registers a table.
func (d *Docks) CreateTable(orientation Orientation) *DockTable {
	t := newDockTable(d.pool.Allocate(), orientation)
	d.tables[t.id] = t
	return t
}

// CreateGroup allocates and registers an empty group.
func (d *Docks) CreateGroup() *DockGroup {
	g := newDockGroup(d.pool.Allocate(), d.visuals)
	d.groups[g.id] = g
	return g
}

// CreateDock allocates and registers a dock labelled label.
func (d *Docks) CreateDock(label string) *Dock {
	dk := newDock(d.pool.Allocate(), label, d.visuals, d.metrics)
	d.docks[dk.id] = dk
	return dk
}

// DeleteTable unregisters a table and recycles its ID. The root is never deleted.
func (d *Docks) DeleteTable(id ID) bool {
	if id == d.root {
		return false
	}
	if _, ok := d.tables[id]; !ok {
		return false
	}
	delete(d.tables, id)
	d.pool.Recycle(id)
	return true
}

// DeleteGroup unregisters a group and recycles its ID.
func (d *Docks) DeleteGroup(id ID) bool {
	if _, ok := d.groups[id]; !ok {
		return false
	}
	delete(d.groups, id)
	d.pool.Recycle(id)
	return true
}

// DeleteDock unregisters a dock and recycles its ID. It does not touch the
// dock's group; callers detach first.
func (d *Docks) DeleteDock(id ID) bool {
	if _, ok := d.docks[id]; !ok {
		return false
	}
	delete(d.docks, id)
	d.pool.Recycle(id)
	return true
}

// Table looks up a table.
func (d *Docks) Table(id ID) (*DockTable, bool) {
	t, ok := d.tables[id]
	return t, ok
}

// Group looks up a group.
func (d *Docks) Group(id ID) (*DockGroup, bool) {
	g, ok := d.groups[id]
	return g, ok
}

// Dock looks up a dock.
func (d *Docks) Dock(id ID) (*Dock, bool) {
	dk, ok := d.docks[id]
	return dk, ok
}

// TableCount returns the number of registered tables, root included.
func (d *Docks) TableCount() int { return len(d.tables) }

// GroupCount returns the number of registered groups.
func (d *Docks) GroupCount() int { return len(d.groups) }

// DockCount returns the number of registered docks.
func (d *Docks) DockCount() int { return len(d.docks) }

// AddCell appends a cell to a table and re-parents it.
func (d *Docks) AddCell(tableID ID, c Cell) bool {
	t, ok := d.tables[tableID]
	if !ok {
		return false
	}
	return d.InsertCell(tableID, c, t.Len())
}

// InsertCell inserts a cell into a table at index, clamped to [0, len].
func (d *Docks) InsertCell(tableID ID, c Cell, index int) bool {
	t, ok := d.tables[tableID]
	if !ok {
		return false
	}
	switch c.Kind {
	case CellTable:
		child, ok := d.tables[c.ID]
		if !ok {
			return false
		}
		child.setParent(tableID)
	case CellGroup:
		child, ok := d.groups[c.ID]
		if !ok {
			return false
		}
		child.setParent(tableID)
	}
	t.insertCell(c, index)
	return true
}

// RemoveCell detaches a child from a table and returns its former index.
func (d *Docks) RemoveCell(tableID, cellID ID) (int, bool) {
	t, ok := d.tables[tableID]
	if !ok {
		return 0, false
	}
	index, ok := t.removeCell(cellID)
	if !ok {
		return 0, false
	}
	if child, ok := d.tables[cellID]; ok {
		child.clearParent()
	} else if child, ok := d.groups[cellID]; ok {
		child.clearParent()
	}
	return index, true
}

// AddDock appends a dock to a group's tab strip and makes it the active tab.
func (d *Docks) AddDock(groupID, dockID ID) bool {
	g, ok := d.groups[groupID]
	if !ok {
		return false
	}
	return d.InsertDock(groupID, dockID, g.Len())
}

// InsertDock puts a dock into a group at index, clamped to [0, len].
func (d *Docks) InsertDock(groupID, dockID ID, index int) bool {
	g, ok := d.groups[groupID]
	if !ok {
		return false
	}
	dk, ok := d.docks[dockID]
	if !ok {
		return false
	}
	g.insertDock(dockID, index)
	dk.setGroup(groupID)
	return true
}

// RemoveDock takes a dock out of a group and clears its group reference.
func (d *Docks) RemoveDock(groupID, dockID ID) (int, bool) {
	g, ok := d.groups[groupID]
	if !ok {
		return 0, false
	}
	index, ok := g.removeDock(dockID)
	if !ok {
		return 0, false
	}
	if dk, ok := d.docks[dockID]; ok {
		dk.clearGroup()
	}
	return index, true
}

// MoveDockInGroup moves a dock to another tab index inside its group.
func (d *Docks) MoveDockInGroup(groupID ID, from, to int) bool {
	g, ok := d.groups[groupID]
	if !ok || from < 0 || to < 0 || from >= g.Len() || to >= g.Len() {
		return false
	}
	if from != to {
		g.moveDock(from, to)
	}
	return true
}

// SelectDock makes a dock the active tab of its group.
func (d *Docks) SelectDock(dockID ID) bool {
	dk, ok := d.docks[dockID]
	if !ok || !dk.inGroup {
		return false
	}
	g, ok := d.groups[dk.group]
	if !ok {
		return false
	}
	return g.setActive(dockID)
}

// DockTabsRect returns the tab strip of the group holding a dock.
func (d *Docks) DockTabsRect(dockID ID) (Rect, bool) {
	dk, ok := d.docks[dockID]
	if !ok || !dk.inGroup {
		return Rect{}, false
	}
	g, ok := d.groups[dk.group]
	if !ok {
		return Rect{}, false
	}
	return g.tabsRect, true
}

// Walk visits every cell reachable from the root depth-first, parents before
// children. fn receives the cell and its depth; returning false skips the
// cell's children.
func (d *Docks) Walk(fn func(c Cell, depth int) bool) {
	d.walk(TableCell(d.root), 0, fn)
}

func (d *Docks) walk(c Cell, depth int, fn func(Cell, int) bool) {
	if !fn(c, depth) || c.Kind != CellTable {
		return
	}
	t, ok := d.tables[c.ID]
	if !ok {
		return
	}
	for _, child := range t.cells {
		d.walk(child, depth+1, fn)
	}
}
