// Package fonts provides the pre-measured fonts the dock engine sizes tabs with.
package fonts

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	_ entity.Font = (*BasicFont)(nil)
	_ entity.Font = (*CellFont)(nil)
)

// BasicFont measures with a fixed bitmap face, in pixels.
type BasicFont struct {
	face font.Face
}

// NewBasicFont returns the 7x13 fixed face.
func NewBasicFont() *BasicFont {
	return &BasicFont{face: basicfont.Face7x13}
}

// NewFaceFont wraps any x/image face.
func NewFaceFont(face font.Face) *BasicFont {
	return &BasicFont{face: face}
}

// MeasureString implements entity.Font, rounding partial pixels up.
func (f *BasicFont) MeasureString(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// Ascent implements entity.Font.
func (f *BasicFont) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// CellFont measures in terminal cells scaled to layout units. Wide runes take
// two cells.
type CellFont struct {
	cellWidth int
	ascent    int
}

// NewCellFont creates a cell font where one column is cellWidth units wide.
func NewCellFont(cellWidth, ascent int) *CellFont {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	return &CellFont{cellWidth: cellWidth, ascent: ascent}
}

// CellWidth returns the layout width of one column.
func (f *CellFont) CellWidth() int { return f.cellWidth }

// MeasureString implements entity.Font.
func (f *CellFont) MeasureString(s string) int {
	return runewidth.StringWidth(s) * f.cellWidth
}

// Ascent implements entity.Font.
func (f *CellFont) Ascent() int { return f.ascent }
