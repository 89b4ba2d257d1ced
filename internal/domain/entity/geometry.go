// Package entity defines the dock tree: tables, groups, docks and the registry that
// owns them. These are pure Go types with no infrastructure dependencies.
package entity

// Rect is an axis-aligned box. Its position uses an upward Y axis while pointer
// coordinates use a downward one, so containment flips the sign of Y.
type Rect struct {
	X, Y int // top-left corner, Y grows upward
	W, H int
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the pointer position (x, y) lies inside the rectangle.
// x must be in [X, X+W) and y in [-Y, -Y+H).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= -r.Y && y < -r.Y+r.H
}

// Position returns the top-left corner.
func (r Rect) Position() (x, y int) {
	return r.X, r.Y
}

// Dimensions returns width and height.
func (r Rect) Dimensions() (w, h int) {
	return r.W, r.H
}

// SetPosition moves the rectangle.
func (r *Rect) SetPosition(x, y int) {
	r.X, r.Y = x, y
}

// SetDimensions resizes the rectangle.
func (r *Rect) SetDimensions(w, h int) {
	r.W, r.H = w, h
}

// Point is a pointer position in screen space (Y grows downward).
type Point struct {
	X, Y int
}
