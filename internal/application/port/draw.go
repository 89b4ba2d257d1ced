package port

import "github.com/bnema/dockyard/internal/domain/entity"

// ColorVertex is a flat-coloured vertex in layout space (Y grows upward).
type ColorVertex struct {
	X, Y  float32
	Color entity.Color
}

// SpriteVertex is a textured vertex. U and V address the atlas.
type SpriteVertex struct {
	X, Y  float32
	U, V  float32
	Color entity.Color
}

// DrawBatch collects the geometry of one frame. The dock tree pushes into it
// bottom-up; the implementation owns shaders, atlases and presentation.
type DrawBatch interface {
	AddColorTriangles(vertices []ColorVertex, indices []uint32)
	AddSpriteTriangles(atlas entity.AtlasID, vertices []SpriteVertex, indices []uint32)
	// AddText draws a single line; (x, y) is the baseline origin.
	AddText(font entity.Font, text string, x, y float32, color entity.Color)
}
