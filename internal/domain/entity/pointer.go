package entity

// PointerEventKind is the type of a pointer event.
type PointerEventKind int

const (
	PointerMoved PointerEventKind = iota
	PointerPressed
	PointerReleased
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PointerEvent is a single input event in screen space (Y grows downward).
type PointerEvent struct {
	Kind   PointerEventKind
	X, Y   int
	Button MouseButton
}

// MoveEvent builds a pointer-move event.
func MoveEvent(x, y int) PointerEvent {
	return PointerEvent{Kind: PointerMoved, X: x, Y: y}
}

// PressEvent builds a button-press event.
func PressEvent(x, y int, button MouseButton) PointerEvent {
	return PointerEvent{Kind: PointerPressed, X: x, Y: y, Button: button}
}

// ReleaseEvent builds a button-release event.
func ReleaseEvent(x, y int, button MouseButton) PointerEvent {
	return PointerEvent{Kind: PointerReleased, X: x, Y: y, Button: button}
}
