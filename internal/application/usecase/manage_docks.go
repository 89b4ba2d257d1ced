package usecase

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// ManageDocksUseCase restructures the dock tree. Every exported method leaves
// the tree stable: no reachable non-root table with fewer than two children and
// no live group without docks. Misses are reported through the ok result.
type ManageDocksUseCase struct {
	docks *entity.Docks
}

// NewManageDocksUseCase creates a use case operating on docks.
func NewManageDocksUseCase(docks *entity.Docks) *ManageDocksUseCase {
	return &ManageDocksUseCase{docks: docks}
}

// Docks returns the registry the use case mutates.
func (uc *ManageDocksUseCase) Docks() *entity.Docks {
	return uc.docks
}

// CreateGroupFromCellPosition realizes a placement decision and returns the new,
// still empty group. Callers add a dock right away.
func (uc *ManageDocksUseCase) CreateGroupFromCellPosition(ctx context.Context, pos entity.CellPosition) (entity.ID, bool) {
	log := logging.FromContext(ctx)

	var tableID entity.ID
	switch pos.Kind {
	case entity.NeedNewTable:
		id, ok := uc.ReplaceGroupByTable(ctx, pos.GroupID)
		if !ok {
			log.Debug().Str("position", pos.String()).Msg("cannot split group without parent")
			return 0, false
		}
		tableID = id
	case entity.TableExists:
		if _, ok := uc.docks.Table(pos.TableID); !ok {
			log.Debug().Str("position", pos.String()).Msg("placement table not found")
			return 0, false
		}
		tableID = pos.TableID
	default:
		return 0, false
	}

	group := uc.docks.CreateGroup()
	uc.docks.InsertCell(tableID, entity.GroupCell(group.ID()), pos.Index)

	log.Debug().
		Str("position", pos.String()).
		Uint32("group_id", uint32(group.ID())).
		Uint32("table_id", uint32(tableID)).
		Msg("created group from placement")
	return group.ID(), true
}

// ReplaceGroupByTable wraps a group in a new table that takes the group's slot in
// its parent. The new table's orientation is the opposite of the parent's.
func (uc *ManageDocksUseCase) ReplaceGroupByTable(ctx context.Context, groupID entity.ID) (entity.ID, bool) {
	group, ok := uc.docks.Group(groupID)
	if !ok {
		return 0, false
	}
	parentID, ok := group.Parent()
	if !ok {
		return 0, false
	}
	parent, ok := uc.docks.Table(parentID)
	if !ok {
		return 0, false
	}

	index, ok := uc.docks.RemoveCell(parentID, groupID)
	if !ok {
		return 0, false
	}
	table := uc.docks.CreateTable(parent.Orientation().Opposite())
	uc.docks.AddCell(table.ID(), entity.GroupCell(groupID))
	uc.docks.InsertCell(parentID, entity.TableCell(table.ID()), index)

	logging.FromContext(ctx).Debug().
		Uint32("group_id", uint32(groupID)).
		Uint32("table_id", uint32(table.ID())).
		Str("orientation", table.Orientation().String()).
		Int("index", index).
		Msg("replaced group by table")
	return table.ID(), true
}

// RemoveDockFromGroup detaches a dock from its group. An emptied group is deleted
// and the tables above it collapse while they hold fewer than two children.
func (uc *ManageDocksUseCase) RemoveDockFromGroup(ctx context.Context, dockID entity.ID) bool {
	log := logging.FromContext(ctx)

	dock, ok := uc.docks.Dock(dockID)
	if !ok {
		return false
	}
	groupID, ok := dock.Group()
	if !ok {
		return false
	}
	if _, ok := uc.docks.RemoveDock(groupID, dockID); !ok {
		return false
	}

	group, ok := uc.docks.Group(groupID)
	if !ok || group.Len() > 0 {
		return true
	}

	parentID, hasParent := group.Parent()
	if hasParent {
		uc.docks.RemoveCell(parentID, groupID)
	}
	uc.docks.DeleteGroup(groupID)
	log.Debug().Uint32("group_id", uint32(groupID)).Msg("deleted empty group")

	if hasParent {
		uc.collapse(ctx, parentID)
	}
	return true
}

// collapse walks upward from tableID removing tables left with zero children and
// splicing single children into the grandparent.
func (uc *ManageDocksUseCase) collapse(ctx context.Context, tableID entity.ID) {
	log := logging.FromContext(ctx)

	for {
		table, ok := uc.docks.Table(tableID)
		if !ok || table.Len() > 1 {
			return
		}
		parentID, ok := table.Parent()
		if !ok {
			return
		}

		index, ok := uc.docks.RemoveCell(parentID, tableID)
		if !ok {
			log.Debug().
				Uint32("table_id", uint32(tableID)).
				Uint32("parent_id", uint32(parentID)).
				Msg("table missing from its parent, collapse stopped")
			return
		}
		if table.Len() == 1 {
			child := table.Cells()[0]
			uc.docks.RemoveCell(tableID, child.ID)
			uc.docks.InsertCell(parentID, child, index)
		}
		uc.docks.DeleteTable(tableID)
		log.Debug().
			Uint32("table_id", uint32(tableID)).
			Uint32("parent_id", uint32(parentID)).
			Msg("collapsed table")

		tableID = parentID
	}
}

// MoveDockToPosition reorders a dock inside its tab strip. The dragged tab's own
// width probes the running right edge of its siblings; the first sibling whose
// projected edge passes pointerX takes the dock, else it goes last.
func (uc *ManageDocksUseCase) MoveDockToPosition(ctx context.Context, dockID entity.ID, pointerX int) bool {
	dock, ok := uc.docks.Dock(dockID)
	if !ok {
		return false
	}
	groupID, ok := dock.Group()
	if !ok {
		return false
	}
	group, ok := uc.docks.Group(groupID)
	if !ok {
		return false
	}

	metrics := uc.docks.Metrics()
	width := dock.TabWidth()
	rightX := group.TabsRect().X + metrics.TabInset

	ids := group.Docks()
	oldIndex, newIndex, cur := -1, -1, 0
	for i, id := range ids {
		if newIndex < 0 && pointerX < rightX+width {
			newIndex = cur
		}
		if id == dockID {
			oldIndex = i
			continue
		}
		if sibling, ok := uc.docks.Dock(id); ok {
			rightX += sibling.TabWidth() + metrics.TabGap
		}
		cur++
	}
	if oldIndex < 0 {
		return false
	}
	if newIndex < 0 {
		newIndex = len(ids) - 1
	}
	if newIndex == oldIndex {
		return true
	}

	logging.FromContext(ctx).Debug().
		Uint32("dock_id", uint32(dockID)).
		Int("from", oldIndex).
		Int("to", newIndex).
		Msg("reordered dock")
	return uc.docks.MoveDockInGroup(groupID, oldIndex, newIndex)
}

// AddDockToGroup appends a dock to a group as its active tab. A dock already in
// another group is detached first, with collapse.
func (uc *ManageDocksUseCase) AddDockToGroup(ctx context.Context, dockID, groupID entity.ID) bool {
	if _, ok := uc.docks.Group(groupID); !ok {
		return false
	}
	dock, ok := uc.docks.Dock(dockID)
	if !ok {
		return false
	}
	if current, ok := dock.Group(); ok {
		if current == groupID {
			return uc.docks.SelectDock(dockID)
		}
		uc.RemoveDockFromGroup(ctx, dockID)
	}
	return uc.docks.AddDock(groupID, dockID)
}

// DeleteDock detaches a dock (collapsing as needed), unregisters it and recycles
// its ID.
func (uc *ManageDocksUseCase) DeleteDock(ctx context.Context, dockID entity.ID) bool {
	if _, ok := uc.docks.Dock(dockID); !ok {
		return false
	}
	uc.RemoveDockFromGroup(ctx, dockID)
	logging.FromContext(ctx).Debug().Uint32("dock_id", uint32(dockID)).Msg("deleted dock")
	return uc.docks.DeleteDock(dockID)
}
