package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/fonts"
	"github.com/bnema/dockyard/internal/ui/theme"
)

var red = entity.Color{R: 255, A: 255}

func newTestCanvas(t *testing.T, cols, rows int) (*Canvas, *theme.Manager) {
	t.Helper()
	m := theme.NewManager(context.Background(), nil)
	return NewCanvas(cols, rows, 8, 20, m), m
}

func quad(x, y, w, h float32, c entity.Color) []port.ColorVertex {
	return []port.ColorVertex{
		{X: x, Y: y, Color: c},
		{X: x + w, Y: y, Color: c},
		{X: x, Y: y - h, Color: c},
		{X: x + w, Y: y - h, Color: c},
	}
}

var quadIdx = []uint32{0, 1, 2, 2, 1, 3}

func bgAt(t *testing.T, c *Canvas, col, row int) entity.Color {
	t.Helper()
	_, _, bg, ok := c.CellAt(col, row)
	require.True(t, ok)
	return bg
}

func TestCanvas_ResetFillsBackground(t *testing.T) {
	c, m := newTestCanvas(t, 4, 2)
	cols, rows := c.Size()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, m.Colors().Background, bgAt(t, c, 3, 1))
	assert.Equal(t, "    \n    ", c.PlainString())

	_, _, _, ok := c.CellAt(4, 0)
	assert.False(t, ok)
}

func TestCanvas_ColorQuadCoversCellCentres(t *testing.T) {
	c, m := newTestCanvas(t, 10, 3)
	c.AddColorTriangles(quad(0, 0, 40, 20, red), quadIdx)

	for col := 0; col < 5; col++ {
		assert.Equal(t, red, bgAt(t, c, col, 0), "col %d", col)
	}
	assert.Equal(t, m.Colors().Background, bgAt(t, c, 5, 0))
	assert.Equal(t, m.Colors().Background, bgAt(t, c, 0, 1))
}

func TestCanvas_QuadMissingCentreLeavesCell(t *testing.T) {
	c, m := newTestCanvas(t, 4, 2)
	// Spans x 0..3, left of the first centre at x 4.
	c.AddColorTriangles(quad(0, 0, 3, 40, red), quadIdx)
	assert.Equal(t, m.Colors().Background, bgAt(t, c, 0, 0))
}

func TestCanvas_SpriteUsesAtlasSwatch(t *testing.T) {
	c, m := newTestCanvas(t, 4, 2)
	verts := []port.SpriteVertex{
		{X: 0, Y: -20, Color: entity.White},
		{X: 32, Y: -20, Color: entity.White},
		{X: 0, Y: -40, Color: entity.White},
		{X: 32, Y: -40, Color: entity.White},
	}
	c.AddSpriteTriangles(theme.AtlasTabSelected, verts, quadIdx)
	assert.Equal(t, m.Colors().TabActive, bgAt(t, c, 2, 1))
	assert.Equal(t, m.Colors().Background, bgAt(t, c, 2, 0))

	c.Reset(4, 2)
	c.AddSpriteTriangles(99, verts, quadIdx)
	assert.Equal(t, m.Colors().Background, bgAt(t, c, 2, 1))
}

func TestCanvas_SpriteTint(t *testing.T) {
	c, m := newTestCanvas(t, 2, 1)
	half := entity.Color{R: 0, G: 0, B: 0, A: 255}
	verts := []port.SpriteVertex{
		{X: 0, Y: 0, Color: half},
		{X: 16, Y: 0, Color: half},
		{X: 0, Y: -20, Color: half},
		{X: 16, Y: -20, Color: half},
	}
	c.AddSpriteTriangles(theme.AtlasBackground, verts, quadIdx)
	assert.Equal(t, entity.Color{A: m.Colors().Surface.A}, bgAt(t, c, 0, 0))
}

func TestCanvas_TextPlacement(t *testing.T) {
	c, m := newTestCanvas(t, 10, 3)
	font := fonts.NewCellFont(8, 15)

	c.AddText(font, "Hi", 8, -15, entity.White)
	c.AddText(font, "Yo", 48, -35, red)

	lines := strings.Split(c.PlainString(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " Hi       ", lines[0])
	assert.Equal(t, "      Yo  ", lines[1])

	r, fg, _, _ := c.CellAt(1, 0)
	assert.Equal(t, 'H', r)
	assert.Equal(t, m.Colors().Text, fg)
	_, fg, _, _ = c.CellAt(6, 1)
	assert.Equal(t, red, fg)
}

func TestCanvas_TextKeepsBackground(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 1)
	c.AddColorTriangles(quad(0, 0, 32, 20, red), quadIdx)
	c.AddText(fonts.NewCellFont(8, 15), "ab", 0, -15, entity.White)
	assert.Equal(t, red, bgAt(t, c, 1, 0))
}

func TestCanvas_TextClipping(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 1)
	font := fonts.NewCellFont(8, 15)

	c.AddText(font, "abcdef", 16, -15, entity.White)
	assert.Equal(t, "  ab", c.PlainString())

	c.Reset(4, 1)
	c.AddText(font, "xyz", -8, -15, entity.White)
	assert.Equal(t, "yz  ", c.PlainString())

	c.Reset(4, 1)
	c.AddText(font, "off", 0, -95, entity.White)
	assert.Equal(t, "    ", c.PlainString())
}

func TestCanvas_WideRunes(t *testing.T) {
	c, _ := newTestCanvas(t, 5, 1)
	font := fonts.NewCellFont(8, 15)

	c.AddText(font, "日本", 0, -15, entity.White)
	assert.Equal(t, "日本 ", c.PlainString())

	// A wide rune that does not fit is dropped.
	c.Reset(5, 1)
	c.AddText(font, "ab日本", 0, -15, entity.White)
	assert.Equal(t, "ab日 ", c.PlainString())

	// Overwriting half a wide rune blanks the other half.
	c.Reset(5, 1)
	c.AddText(font, "日", 0, -15, entity.White)
	c.AddText(font, "x", 8, -15, entity.White)
	assert.Equal(t, " x   ", c.PlainString())
}

func TestCanvas_StringContainsText(t *testing.T) {
	c, _ := newTestCanvas(t, 6, 1)
	c.AddText(fonts.NewCellFont(8, 15), "dock", 8, -15, entity.White)
	assert.Contains(t, c.String(), "dock")
}
