package styles_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

type monoFont struct{}

func (monoFont) MeasureString(s string) int { return utf8.RuneCountInString(s) * 7 }
func (monoFont) Ascent() int                { return 15 }

func TestLayoutRenderer_Render(t *testing.T) {
	docks := entity.NewDocks(entity.Visuals{Font: monoFont{}}, entity.DefaultMetrics())
	require.NoError(t, usecase.BuildLayout(context.Background(), docks, entity.DefaultLayout()))
	docks.Layout(entity.NewRect(0, 0, 800, 600))

	theme := styles.NewTheme(config.DefaultConfig())
	out := styles.NewLayoutRenderer(theme, false).Render(docks)

	for _, label := range []string{"Tools", "Tools2", "View", "Properties", "Dock5", "Dock6"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "horizontal")
	assert.Equal(t, 2, strings.Count(out, "vertical"))
	assert.Less(t, strings.Index(out, "Tools"), strings.Index(out, "View"))
	assert.NotContains(t, out, "800x600")

	withRects := styles.NewLayoutRenderer(theme, true).Render(docks)
	assert.Contains(t, withRects, "(0, 0) 800x600")
	// Tools is the first tab of the first group: 5 in, 5*7+16 wide.
	assert.Contains(t, withRects, "(5, 0) 51x20")
}

func TestConfigRenderer_RenderChanges(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	assert.Empty(t, r.RenderChanges(nil))

	out := r.RenderChanges([]config.KeyChange{
		{Type: config.KeyChangeAdded, Key: "layout.tab_gap", Value: "8"},
		{Type: config.KeyChangeRemoved, Key: "layout.old", Value: `"x"`},
	})
	assert.Contains(t, out, "Changes (2)")
	assert.Contains(t, out, "layout.tab_gap")
	assert.Contains(t, out, "layout.old")
}
