package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRenderer renders a dock tree with lipgloss/tree.
type LayoutRenderer struct {
	theme     *Theme
	showRects bool
}

// NewLayoutRenderer creates a layout renderer. With showRects each node carries
// its laid-out rectangle.
func NewLayoutRenderer(theme *Theme, showRects bool) *LayoutRenderer {
	return &LayoutRenderer{theme: theme, showRects: showRects}
}

// Render draws the tree reachable from the root table.
func (r *LayoutRenderer) Render(docks *entity.Docks) string {
	return r.cell(docks, entity.TableCell(docks.RootID())).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.theme.Subtle).
		String()
}

func (r *LayoutRenderer) cell(docks *entity.Docks, c entity.Cell) *tree.Tree {
	if c.Kind == entity.CellGroup {
		group, ok := docks.Group(c.ID)
		if !ok {
			return tree.Root(r.theme.ErrorStyle.Render(fmt.Sprintf("group #%d (missing)", c.ID)))
		}
		tabs := group.TabsRect()
		w, h := group.Dimensions()
		label := r.theme.GroupNode.Render(fmt.Sprintf("%s group #%d", IconTab, c.ID)) +
			r.rect(entity.NewRect(tabs.X, tabs.Y, w, h))

		t := tree.Root(label)
		active, hasActive := group.Active()
		for _, id := range group.Docks() {
			dock, ok := docks.Dock(id)
			if !ok {
				continue
			}
			style := r.theme.DockNode
			if hasActive && id == active {
				style = r.theme.ActiveDock
			}
			t.Child(style.Render(dock.Label().Value) + r.theme.Subtle.Render(fmt.Sprintf(" #%d", id)) + r.rect(dock.TabRect()))
		}
		return t
	}

	table, ok := docks.Table(c.ID)
	if !ok {
		return tree.Root(r.theme.ErrorStyle.Render(fmt.Sprintf("table #%d (missing)", c.ID)))
	}
	label := r.theme.TableNode.Render(fmt.Sprintf("%s table #%d %s", IconPane, c.ID, table.Orientation())) +
		r.rect(table.Rect())

	t := tree.Root(label)
	for _, child := range table.Cells() {
		t.Child(r.cell(docks, child))
	}
	return t
}

func (r *LayoutRenderer) rect(rect entity.Rect) string {
	if !r.showRects {
		return ""
	}
	return r.theme.Rect.Render(fmt.Sprintf("  (%d, %d) %dx%d", rect.X, rect.Y, rect.W, rect.H))
}
