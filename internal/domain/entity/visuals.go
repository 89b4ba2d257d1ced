package entity

// Font is the pre-measured font handed in by the resource provider. The engine
// only needs it for sizing; glyph rendering stays with the draw-batch sink.
type Font interface {
	// MeasureString returns the advance width of s in layout units.
	MeasureString(s string) int
	// Ascent is the distance from the baseline to the top of the line.
	Ascent() int
}

// AtlasID identifies the texture atlas a Texture lives on.
type AtlasID uint32

// Texture is an opaque handle to an image region on a shared atlas.
type Texture struct {
	Atlas          AtlasID
	UVMin, UVMax   [2]float32
	PixelDimension float32 // size of one source pixel in UV space
}

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// White is the neutral tint for textured quads.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// BorderImage is a nine-slice textured rectangle whose borders keep their size
// while the centre stretches.
type BorderImage struct {
	Texture       Texture
	X, Y          float32
	Width, Height float32
	Left, Right   float32
	Top, Bottom   float32
}

// NewBorderImage creates a nine-slice image with the given border widths.
func NewBorderImage(tex Texture, left, right, top, bottom float32) BorderImage {
	return BorderImage{Texture: tex, Left: left, Right: right, Top: top, Bottom: bottom}
}

// SetPosition moves the image; Y grows upward.
func (b *BorderImage) SetPosition(x, y float32) {
	b.X, b.Y = x, y
}

// SetSize resizes the image.
func (b *BorderImage) SetSize(w, h float32) {
	b.Width, b.Height = w, h
}

// Text is a single-line label positioned by its baseline.
type Text struct {
	Font  Font
	Value string
	X, Y  float32
	Color Color
}

// NewText creates a white label.
func NewText(font Font, value string) Text {
	return Text{Font: font, Value: value, Color: White}
}

// SetPosition moves the label baseline.
func (t *Text) SetPosition(x, y float32) {
	t.X, t.Y = x, y
}

// Width returns the measured width of the label.
func (t Text) Width() int {
	if t.Font == nil {
		return 0
	}
	return t.Font.MeasureString(t.Value)
}

// Visuals are the shared defaults every node is created with.
type Visuals struct {
	Font           Font
	DockBackground Texture
	TabSelected    Texture
	TabDeselected  Texture
}
