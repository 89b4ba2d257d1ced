package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DockKeyMap defines keybindings for the interactive dock view.
type DockKeyMap struct {
	Reset  key.Binding
	Policy key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Policy, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Policy},
		{k.Help, k.Quit},
	}
}

// DefaultDockKeyMap returns the default dock view keybindings.
func DefaultDockKeyMap() DockKeyMap {
	return DockKeyMap{
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset layout"),
		),
		Policy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle drop policy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
