package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/ui/theme"
)

func press(m styles.ConfirmModel, k tea.KeyMsg) styles.ConfirmModel {
	m, _ = m.Update(k)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(styles.NewThemeFromPalette(theme.DefaultDarkPalette()), "Apply?")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_Yes(t *testing.T) {
	m := styles.NewConfirm(styles.NewThemeFromPalette(theme.DefaultDarkPalette()), "Apply?")
	m = press(m, runes("y"))
	assert.False(t, m.Done())
	assert.Contains(t, m.View(), "Apply?")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Result())

	// Keys after completion are ignored.
	m = press(m, runes("n"))
	assert.True(t, m.Yes)
}

func TestConfirmModel_Cancel(t *testing.T) {
	m := styles.NewConfirm(styles.NewThemeFromPalette(theme.DefaultDarkPalette()), "Apply?")
	m = press(m, runes("y"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}
