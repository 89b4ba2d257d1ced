// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from theme.Palette)
	Background  lipgloss.Color
	Surface     lipgloss.Color
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color
	Text        lipgloss.Color
	Accent      lipgloss.Color

	// Additional semantic colors
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Layout tree styles
	TableNode  lipgloss.Style
	GroupNode  lipgloss.Style
	DockNode   lipgloss.Style
	ActiveDock lipgloss.Style
	Rect       lipgloss.Style

	StatusBar lipgloss.Style
	Badge     lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Dialog buttons, drawn like tabs
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from config.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		return NewThemeFromPalette(theme.DefaultDarkPalette())
	}
	isDark := cfg.Appearance.ColorScheme != config.ColorSchemeLight
	return NewThemeFromPalette(theme.PaletteFromConfig(&cfg.Appearance.Palette, isDark))
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p theme.Palette) *Theme {
	t := &Theme{
		Background:  lipgloss.Color(p.Background),
		Surface:     lipgloss.Color(p.Surface),
		TabActive:   lipgloss.Color(p.TabActive),
		TabInactive: lipgloss.Color(p.TabInactive),
		Text:        lipgloss.Color(p.Text),
		Accent:      lipgloss.Color(p.Accent),

		// Semantic colors (not in config, use sensible defaults)
		Muted:   lipgloss.Color("#909090"),
		Border:  lipgloss.Color("#333333"),
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Accent), // Use accent as success
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.TableNode = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.GroupNode = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.DockNode = lipgloss.NewStyle().
		Foreground(t.Text)

	t.ActiveDock = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		Underline(true)

	t.Rect = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.TabInactive)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
