package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGroup is returned for a group node without docks.
	ErrEmptyGroup = errors.New("group has no docks")
	// ErrDegenerateTable is returned for a nested table with fewer than two children.
	ErrDegenerateTable = errors.New("table needs at least two children")
)

// LayoutNode describes a dock tree for application setup code. A node with Docks
// is a group; a node with Children is a table.
type LayoutNode struct {
	Orientation Orientation
	Docks       []string
	Children    []LayoutNode
}

// IsGroup reports whether the node describes a group.
func (n LayoutNode) IsGroup() bool {
	return len(n.Children) == 0
}

// Validate checks the shape BuildLayout accepts. Groups need docks and nested
// tables need two children or more. The root table may hold any number.
// Errors carry a dotted path such as "root.1.0".
func (n LayoutNode) Validate() error {
	return n.validate("root", true)
}

func (n LayoutNode) validate(path string, root bool) error {
	if n.IsGroup() {
		if len(n.Docks) == 0 {
			return fmt.Errorf("%s: %w", path, ErrEmptyGroup)
		}
		return nil
	}
	if !root && len(n.Children) < 2 {
		return fmt.Errorf("%s: %w", path, ErrDegenerateTable)
	}
	for i, child := range n.Children {
		if err := child.validate(fmt.Sprintf("%s.%d", path, i), false); err != nil {
			return err
		}
	}
	return nil
}

// DefaultLayout is the demo arrangement: a vertical Tools/Tools2 column, a View
// group, and a vertical column with Properties above a Dock5/Dock6 group.
func DefaultLayout() LayoutNode {
	return LayoutNode{
		Orientation: Horizontal,
		Children: []LayoutNode{
			{
				Orientation: Vertical,
				Children: []LayoutNode{
					{Docks: []string{"Tools"}},
					{Docks: []string{"Tools2"}},
				},
			},
			{Docks: []string{"View"}},
			{
				Orientation: Vertical,
				Children: []LayoutNode{
					{Docks: []string{"Properties"}},
					{Docks: []string{"Dock5", "Dock6"}},
				},
			},
		},
	}
}
