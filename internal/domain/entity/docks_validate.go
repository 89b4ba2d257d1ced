package entity

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a structural invariant violation found by Validate.
var ErrInvariant = errors.New("dock tree invariant violated")

// Validate walks the tree from the root and reports every structural problem:
// non-root tables with fewer than two children, empty groups, parent references
// that disagree with the tree, dangling cells, and docks claimed twice.
func (d *Docks) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
	}

	if root, ok := d.tables[d.root]; !ok {
		fail("root table %d missing", d.root)
		return errors.Join(errs...)
	} else if root.hasParent {
		fail("root table %d has parent %d", d.root, root.parent)
	}

	seenDocks := make(map[ID]ID)
	d.Walk(func(c Cell, _ int) bool {
		switch c.Kind {
		case CellTable:
			t, ok := d.tables[c.ID]
			if !ok {
				fail("table %d is referenced but not registered", c.ID)
				return false
			}
			if t.id != d.root && len(t.cells) < 2 {
				fail("table %d has %d children", t.id, len(t.cells))
			}
			for _, child := range t.cells {
				if parent, ok := d.cellParent(child); ok && parent != t.id {
					fail("%s %d points at parent %d, lives in %d", child.Kind, child.ID, parent, t.id)
				} else if !ok {
					fail("%s %d in table %d has no parent", child.Kind, child.ID, t.id)
				}
			}
		case CellGroup:
			g, ok := d.groups[c.ID]
			if !ok {
				fail("group %d is referenced but not registered", c.ID)
				return false
			}
			if len(g.docks) == 0 {
				fail("group %d is empty", g.id)
			}
			for _, id := range g.docks {
				dk, ok := d.docks[id]
				if !ok {
					fail("group %d holds unknown dock %d", g.id, id)
					continue
				}
				if owner, dup := seenDocks[id]; dup {
					fail("dock %d is in groups %d and %d", id, owner, g.id)
				}
				seenDocks[id] = g.id
				if !dk.inGroup || dk.group != g.id {
					fail("dock %d does not point back at group %d", id, g.id)
				}
			}
		}
		return true
	})

	return errors.Join(errs...)
}

func (d *Docks) cellParent(c Cell) (ID, bool) {
	switch c.Kind {
	case CellTable:
		if t, ok := d.tables[c.ID]; ok {
			return t.Parent()
		}
	case CellGroup:
		if g, ok := d.groups[c.ID]; ok {
			return g.Parent()
		}
	}
	return 0, false
}
