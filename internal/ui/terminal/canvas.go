// Package terminal rasterises dock draw batches onto a grid of terminal cells.
package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/theme"
)

var _ port.DrawBatch = (*Canvas)(nil)

// Swatches resolves atlas ids and base colors.
type Swatches interface {
	AtlasColor(id entity.AtlasID) (entity.Color, bool)
	Colors() theme.Colors
}

type cell struct {
	r    rune
	fg   entity.Color
	bg   entity.Color
	cont bool // right half of a wide rune
}

// Canvas is a draw batch backed by terminal cells. A triangle fills every cell
// whose centre it covers; text is placed by its top line.
type Canvas struct {
	cols, rows   int
	cellW, cellH int
	swatches     Swatches
	cells        []cell
}

// NewCanvas creates a canvas of cols x rows cells, each cellW x cellH layout
// units.
func NewCanvas(cols, rows, cellW, cellH int, swatches Swatches) *Canvas {
	c := &Canvas{
		cellW:    max(cellW, 1),
		cellH:    max(cellH, 1),
		swatches: swatches,
	}
	c.Reset(cols, rows)
	return c
}

// Reset resizes the canvas and fills it with the background color.
func (c *Canvas) Reset(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	colors := c.swatches.Colors()

	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: colors.Text, bg: colors.Background}
	}
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// CellAt returns the rune and colors at (col, row).
func (c *Canvas) CellAt(col, row int) (r rune, fg, bg entity.Color, ok bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, entity.Color{}, entity.Color{}, false
	}
	cl := c.cells[row*c.cols+col]
	return cl.r, cl.fg, cl.bg, true
}

// AddColorTriangles implements port.DrawBatch.
func (c *Canvas) AddColorTriangles(vertices []port.ColorVertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, d := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		if a >= len(vertices) || b >= len(vertices) || d >= len(vertices) {
			continue
		}
		va, vb, vd := vertices[a], vertices[b], vertices[d]
		c.fillTriangle([3][2]float32{{va.X, va.Y}, {vb.X, vb.Y}, {vd.X, vd.Y}}, va.Color)
	}
}

// AddSpriteTriangles implements port.DrawBatch. Sprites draw as their atlas
// swatch tinted by the vertex color; unknown atlases are skipped.
func (c *Canvas) AddSpriteTriangles(atlas entity.AtlasID, vertices []port.SpriteVertex, indices []uint32) {
	base, ok := c.swatches.AtlasColor(atlas)
	if !ok {
		return
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, d := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		if a >= len(vertices) || b >= len(vertices) || d >= len(vertices) {
			continue
		}
		va, vb, vd := vertices[a], vertices[b], vertices[d]
		c.fillTriangle([3][2]float32{{va.X, va.Y}, {vb.X, vb.Y}, {vd.X, vd.Y}}, tint(base, va.Color))
	}
}

// AddText implements port.DrawBatch. White text takes the theme text color.
func (c *Canvas) AddText(font entity.Font, text string, x, y float32, color entity.Color) {
	ascent := 0
	if font != nil {
		ascent = font.Ascent()
	}
	row := int(math.Floor(float64(-y-float32(ascent)) / float64(c.cellH)))
	col := int(math.Floor(float64(x) / float64(c.cellW)))
	if row < 0 || row >= c.rows {
		return
	}
	if color == entity.White {
		color = c.swatches.Colors().Text
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= c.cols || col+w > c.cols {
			return
		}
		if col >= 0 {
			i := row*c.cols + col
			c.splitWide(i)
			if w == 2 {
				c.splitWide(i + 1)
			}
			c.cells[i].r = r
			c.cells[i].fg = color
			c.cells[i].cont = false
			if w == 2 {
				c.cells[i+1].r = 0
				c.cells[i+1].fg = color
				c.cells[i+1].cont = true
			}
		}
		col += w
	}
}

// splitWide blanks the wide rune that cell i is part of, if any.
func (c *Canvas) splitWide(i int) {
	col := i % c.cols
	if c.cells[i].cont && col > 0 {
		c.cells[i-1].r = ' '
		c.cells[i].cont = false
		c.cells[i].r = ' '
	}
	if !c.cells[i].cont && col+1 < c.cols && c.cells[i+1].cont {
		c.cells[i+1].cont = false
		c.cells[i+1].r = ' '
	}
}

func (c *Canvas) fillTriangle(p [3][2]float32, color entity.Color) {
	minX := min(p[0][0], p[1][0], p[2][0])
	maxX := max(p[0][0], p[1][0], p[2][0])
	// Layout Y grows upward; screen rows grow downward.
	minY := -max(p[0][1], p[1][1], p[2][1])
	maxY := -min(p[0][1], p[1][1], p[2][1])

	col0 := max(int(math.Floor(float64(minX)/float64(c.cellW))), 0)
	col1 := min(int(math.Ceil(float64(maxX)/float64(c.cellW))), c.cols-1)
	row0 := max(int(math.Floor(float64(minY)/float64(c.cellH))), 0)
	row1 := min(int(math.Ceil(float64(maxY)/float64(c.cellH))), c.rows-1)

	for row := row0; row <= row1; row++ {
		cy := -(float32(row*c.cellH) + float32(c.cellH)/2)
		for col := col0; col <= col1; col++ {
			cx := float32(col*c.cellW) + float32(c.cellW)/2
			if insideTriangle(cx, cy, p) {
				c.cells[row*c.cols+col].bg = color
			}
		}
	}
}

// insideTriangle tests (x, y) against either winding, edges included.
func insideTriangle(x, y float32, p [3][2]float32) bool {
	d1 := edge(x, y, p[0], p[1])
	d2 := edge(x, y, p[1], p[2])
	d3 := edge(x, y, p[2], p[0])
	if d1 == 0 && d2 == 0 && d3 == 0 {
		return false
	}
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(x, y float32, a, b [2]float32) float32 {
	return (x-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(y-b[1])
}

func tint(base, t entity.Color) entity.Color {
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 255) }
	return entity.Color{R: mul(base.R, t.R), G: mul(base.G, t.G), B: mul(base.B, t.B), A: mul(base.A, t.A)}
}

// PlainString returns the grid without styling, one line per row.
func (c *Canvas) PlainString() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range c.cells[row*c.cols : (row+1)*c.cols] {
			if !cl.cont {
				sb.WriteRune(cl.r)
			}
		}
	}
	return sb.String()
}

// String renders the grid with lipgloss, one styled run per color change.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		start := 0
		for start < len(line) {
			end := start + 1
			for end < len(line) && line[end].fg == line[start].fg && line[end].bg == line[start].bg {
				end++
			}
			sb.WriteString(renderRun(line[start:end]))
			start = end
		}
	}
	return sb.String()
}

func renderRun(run []cell) string {
	var text strings.Builder
	for _, cl := range run {
		if !cl.cont {
			text.WriteRune(cl.r)
		}
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HexString(run[0].fg))).
		Background(lipgloss.Color(theme.HexString(run[0].bg))).
		Render(text.String())
}
