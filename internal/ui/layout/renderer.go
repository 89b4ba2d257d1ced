package layout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// nineSliceIndices triangulates the 4x4 vertex grid of a border image.
var nineSliceIndices = []uint32{
	0, 4, 1, 1, 4, 5, 1, 5, 2, 2, 5, 6, 2, 6, 3, 3, 6, 7,
	4, 8, 5, 5, 8, 9, 5, 9, 6, 6, 9, 10, 6, 10, 7, 7, 10, 11,
	8, 12, 9, 9, 12, 13, 9, 13, 10, 10, 13, 14, 10, 14, 11, 11, 14, 15,
}

var quadIndices = []uint32{0, 1, 2, 2, 1, 3}

// Renderer pushes a laid-out dock tree into a draw batch. Tables draw their
// children in order; a group draws its background, then each tab's chrome and
// label. A dock hidden by a drag session is skipped.
type Renderer struct {
	logger     zerolog.Logger
	background entity.Color
	clear      bool
}

// NewRenderer creates a renderer.
func NewRenderer(ctx context.Context) *Renderer {
	log := logging.FromContext(ctx)
	return &Renderer{
		logger: log.With().Str("component", "dock-renderer").Logger(),
	}
}

// SetBackground makes Render fill the area rectangle with c first.
func (r *Renderer) SetBackground(c entity.Color) {
	r.background = c
	r.clear = true
}

// RenderArea draws the area's tree and, during a drag, the floating tab on top.
func (r *Renderer) RenderArea(area *usecase.DockArea, batch port.DrawBatch) {
	r.Render(area.Docks(), batch)
	if session, ok := area.Dragging(); ok {
		label, chrome := session.Overlay()
		r.RenderOverlay(label, chrome, batch)
	}
}

// Render draws the tree reachable from the root table.
func (r *Renderer) Render(docks *entity.Docks, batch port.DrawBatch) {
	if r.clear {
		rect := docks.Rect()
		addColorQuad(batch, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), r.background)
	}

	groups := 0
	docks.Walk(func(c entity.Cell, _ int) bool {
		if c.Kind != entity.CellGroup {
			return true
		}
		if group, ok := docks.Group(c.ID); ok {
			r.renderGroup(docks, group, batch)
			groups++
		}
		return true
	})
	r.logger.Trace().Int("groups", groups).Msg("rendered dock tree")
}

func (r *Renderer) renderGroup(docks *entity.Docks, group *entity.DockGroup, batch port.DrawBatch) {
	addBorderImage(batch, group.Background())

	active, hasActive := group.Active()
	for _, id := range group.Docks() {
		dock, ok := docks.Dock(id)
		if !ok || dock.DontDraw() {
			continue
		}
		addBorderImage(batch, dock.Chrome(hasActive && id == active))
		addText(batch, dock.Label())
	}
}

// RenderOverlay draws a floating tab.
func (r *Renderer) RenderOverlay(label entity.Text, chrome entity.BorderImage, batch port.DrawBatch) {
	addBorderImage(batch, chrome)
	addText(batch, label)
}

func addText(batch port.DrawBatch, t entity.Text) {
	if t.Value == "" {
		return
	}
	batch.AddText(t.Font, t.Value, t.X, t.Y, t.Color)
}

func addBorderImage(batch port.DrawBatch, img entity.BorderImage) {
	batch.AddSpriteTriangles(img.Texture.Atlas, nineSlice(img), nineSliceIndices)
}

// nineSlice builds the 16 vertices of a border image, row by row from the top.
// Borders keep their size in layout units and in source pixels.
func nineSlice(img entity.BorderImage) []port.SpriteVertex {
	tex := img.Texture
	px := tex.PixelDimension

	xs := [4]float32{img.X, img.X + img.Left, img.X + img.Width - img.Right, img.X + img.Width}
	ys := [4]float32{img.Y, img.Y - img.Top, img.Y - img.Height + img.Bottom, img.Y - img.Height}
	us := [4]float32{tex.UVMin[0], tex.UVMin[0] + img.Left*px, tex.UVMax[0] - img.Right*px, tex.UVMax[0]}
	vs := [4]float32{tex.UVMin[1], tex.UVMin[1] + img.Top*px, tex.UVMax[1] - img.Bottom*px, tex.UVMax[1]}

	vertices := make([]port.SpriteVertex, 0, 16)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			vertices = append(vertices, port.SpriteVertex{
				X: xs[col], Y: ys[row],
				U: us[col], V: vs[row],
				Color: entity.White,
			})
		}
	}
	return vertices
}

func addColorQuad(batch port.DrawBatch, x, y, w, h float32, c entity.Color) {
	batch.AddColorTriangles([]port.ColorVertex{
		{X: x, Y: y, Color: c},
		{X: x + w, Y: y, Color: c},
		{X: x, Y: y - h, Color: c},
		{X: x + w, Y: y - h, Color: c},
	}, quadIndices)
}
