package usecase

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// monoFont advances every rune by seven units, so a one-letter tab is 23 wide.
type monoFont struct{}

func (monoFont) MeasureString(s string) int { return utf8.RuneCountInString(s) * 7 }
func (monoFont) Ascent() int                { return 15 }

func newDocks() *entity.Docks {
	return entity.NewDocks(entity.Visuals{Font: monoFont{}}, entity.DefaultMetrics())
}

// buildDocks builds node into a fresh registry.
func buildDocks(t *testing.T, node entity.LayoutNode) *entity.Docks {
	t.Helper()
	d := newDocks()
	require.NoError(t, BuildLayout(context.Background(), d, node))
	return d
}

func group(labels ...string) entity.LayoutNode {
	return entity.LayoutNode{Docks: labels}
}

func table(o entity.Orientation, children ...entity.LayoutNode) entity.LayoutNode {
	return entity.LayoutNode{Orientation: o, Children: children}
}

// dockByLabel finds a dock by its label.
func dockByLabel(t *testing.T, d *entity.Docks, label string) *entity.Dock {
	t.Helper()
	var found *entity.Dock
	d.Walk(func(c entity.Cell, _ int) bool {
		if c.Kind != entity.CellGroup {
			return true
		}
		g, _ := d.Group(c.ID)
		for _, id := range g.Docks() {
			if dk, _ := d.Dock(id); dk.Label().Value == label {
				found = dk
			}
		}
		return true
	})
	require.NotNil(t, found, "dock %q not in tree", label)
	return found
}

func groupOf(t *testing.T, d *entity.Docks, label string) *entity.DockGroup {
	t.Helper()
	groupID, ok := dockByLabel(t, d, label).Group()
	require.True(t, ok)
	g, ok := d.Group(groupID)
	require.True(t, ok)
	return g
}
