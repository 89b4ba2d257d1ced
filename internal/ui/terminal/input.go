package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PointerEvent maps a terminal mouse message to a pointer event at the centre
// of the reported cell. Wheel events are dropped. A release without a button
// (legacy X10 reporting) counts as a left release.
func PointerEvent(msg tea.MouseMsg, cellW, cellH int) (entity.PointerEvent, bool) {
	x := msg.X*cellW + cellW/2
	y := msg.Y*cellH + cellH/2

	switch msg.Action {
	case tea.MouseActionMotion:
		return entity.MoveEvent(x, y), true
	case tea.MouseActionPress:
		button, ok := mouseButton(msg.Button)
		if !ok {
			return entity.PointerEvent{}, false
		}
		return entity.PressEvent(x, y, button), true
	case tea.MouseActionRelease:
		button, ok := mouseButton(msg.Button)
		if !ok {
			if msg.Button != tea.MouseButtonNone {
				return entity.PointerEvent{}, false
			}
			button = entity.ButtonLeft
		}
		return entity.ReleaseEvent(x, y, button), true
	}
	return entity.PointerEvent{}, false
}

func mouseButton(b tea.MouseButton) (entity.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return entity.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return entity.ButtonMiddle, true
	case tea.MouseButtonRight:
		return entity.ButtonRight, true
	}
	return entity.ButtonNone, false
}
