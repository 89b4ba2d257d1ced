package usecase

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrEmptyGroup is returned for a group node without docks.
	ErrEmptyGroup = entity.ErrEmptyGroup
	// ErrDegenerateTable is returned for a nested table with fewer than two children.
	ErrDegenerateTable = entity.ErrDegenerateTable
	// ErrRegistryNotEmpty is returned when building into a populated registry.
	ErrRegistryNotEmpty = errors.New("registry already holds docks")
)

// BuildLayout populates an empty registry from node. The root node may be a
// group, which lands as the root table's only child; a vertical root node gets
// its own table under the horizontal root. Nothing is created when node is
// malformed.
func BuildLayout(ctx context.Context, docks *entity.Docks, node entity.LayoutNode) error {
	if docks.Root().Len() > 0 || docks.DockCount() > 0 {
		return ErrRegistryNotEmpty
	}
	if err := node.Validate(); err != nil {
		return err
	}

	root := docks.RootID()
	switch {
	case node.IsGroup():
		docks.AddCell(root, buildCell(docks, node))
	case node.Orientation == docks.Root().Orientation():
		for _, child := range node.Children {
			docks.AddCell(root, buildCell(docks, child))
		}
	default:
		docks.AddCell(root, buildCell(docks, node))
	}

	logging.FromContext(ctx).Debug().
		Int("tables", docks.TableCount()).
		Int("groups", docks.GroupCount()).
		Int("docks", docks.DockCount()).
		Msg("layout built")
	return nil
}

func buildCell(docks *entity.Docks, node entity.LayoutNode) entity.Cell {
	if node.IsGroup() {
		group := docks.CreateGroup()
		for _, label := range node.Docks {
			docks.AddDock(group.ID(), docks.CreateDock(label).ID())
		}
		return entity.GroupCell(group.ID())
	}
	table := docks.CreateTable(node.Orientation)
	for _, child := range node.Children {
		docks.AddCell(table.ID(), buildCell(docks, child))
	}
	return entity.TableCell(table.ID())
}

// DescribeLayout is the inverse of BuildLayout: it reads the reachable tree back
// into a LayoutNode, rooted at the root table. Two trees with equal descriptions
// are isomorphic whatever their IDs.
func DescribeLayout(docks *entity.Docks) entity.LayoutNode {
	return describeCell(docks, entity.TableCell(docks.RootID()))
}

func describeCell(docks *entity.Docks, c entity.Cell) entity.LayoutNode {
	switch c.Kind {
	case entity.CellGroup:
		group, ok := docks.Group(c.ID)
		if !ok {
			return entity.LayoutNode{}
		}
		node := entity.LayoutNode{}
		for _, id := range group.Docks() {
			if dock, ok := docks.Dock(id); ok {
				node.Docks = append(node.Docks, dock.Label().Value)
			}
		}
		return node
	default:
		table, ok := docks.Table(c.ID)
		if !ok {
			return entity.LayoutNode{}
		}
		node := entity.LayoutNode{Orientation: table.Orientation()}
		for _, child := range table.Cells() {
			node.Children = append(node.Children, describeCell(docks, child))
		}
		if node.Children == nil {
			node.Children = []entity.LayoutNode{}
		}
		return node
	}
}
