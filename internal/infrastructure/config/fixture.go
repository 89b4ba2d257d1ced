package config

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Metrics converts the layout section.
func (c LayoutConfig) Metrics() entity.Metrics {
	return entity.Metrics{
		Padding:         c.Padding,
		TabHeight:       c.TabHeight,
		TabInset:        c.TabInset,
		TabGap:          c.TabGap,
		TabLabelPadding: c.TabLabelPadding,
		DropMargin:      c.DropMargin,
		WindowPadding:   c.WindowPadding,
	}
}

// FixtureFromLayout converts a layout description into its config form.
func FixtureFromLayout(node entity.LayoutNode) FixtureNode {
	if node.IsGroup() {
		docks := make([]string, len(node.Docks))
		copy(docks, node.Docks)
		return FixtureNode{Docks: docks}
	}
	out := FixtureNode{Orientation: node.Orientation.String()}
	for _, child := range node.Children {
		out.Children = append(out.Children, FixtureFromLayout(child))
	}
	return out
}

// LayoutNode converts the fixture. Missing orientations default to horizontal.
func (n FixtureNode) LayoutNode() (entity.LayoutNode, error) {
	return n.layoutNode("fixture")
}

func (n FixtureNode) layoutNode(path string) (entity.LayoutNode, error) {
	if len(n.Children) == 0 {
		if len(n.Docks) == 0 {
			return entity.LayoutNode{}, fmt.Errorf("%s: group has no docks", path)
		}
		docks := make([]string, len(n.Docks))
		copy(docks, n.Docks)
		return entity.LayoutNode{Docks: docks}, nil
	}
	if len(n.Docks) > 0 {
		return entity.LayoutNode{}, fmt.Errorf("%s: node has both docks and children", path)
	}

	orientation := entity.Horizontal
	if n.Orientation != "" {
		o, ok := entity.ParseOrientation(n.Orientation)
		if !ok {
			return entity.LayoutNode{}, fmt.Errorf("%s: unknown orientation %q", path, n.Orientation)
		}
		orientation = o
	}

	out := entity.LayoutNode{Orientation: orientation}
	for i, child := range n.Children {
		node, err := child.layoutNode(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return entity.LayoutNode{}, err
		}
		out.Children = append(out.Children, node)
	}
	return out, nil
}
