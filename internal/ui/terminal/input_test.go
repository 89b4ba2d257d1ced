package terminal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want entity.PointerEvent
		ok   bool
	}{
		{
			name: "motion maps to cell centre",
			msg:  tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionMotion},
			want: entity.MoveEvent(20, 30),
			ok:   true,
		},
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: entity.PressEvent(4, 10, entity.ButtonLeft),
			ok:   true,
		},
		{
			name: "right release",
			msg:  tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
			want: entity.ReleaseEvent(12, 10, entity.ButtonRight),
			ok:   true,
		},
		{
			name: "release without button is left",
			msg:  tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			want: entity.ReleaseEvent(12, 50, entity.ButtonLeft),
			ok:   true,
		},
		{
			name: "wheel is dropped",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointerEvent(tt.msg, 8, 20)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
