// Package theme maps the configured palette onto dock textures and colors.
package theme

import (
	"fmt"
	"strconv"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background  string // Window clear color
	Surface     string // Dock group content area
	TabActive   string // Selected tab chrome
	TabInactive string // Deselected tab chrome
	Text        string // Tab labels
	Accent      string // Drag overlay and status line
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:  "#0a0a0b",
		Surface:     "#1a1a1b",
		TabActive:   "#2d2d2d",
		TabInactive: "#141415",
		Text:        "#ffffff",
		Accent:      "#4ade80",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:  "#fafafa",
		Surface:     "#ffffff",
		TabActive:   "#dddddd",
		TabInactive: "#f0f0f0",
		Text:        "#1a1a1a",
		Accent:      "#22c55e",
	}
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.ColorPalette, isDark bool) Palette {
	var defaults Palette
	if isDark {
		defaults = DefaultDarkPalette()
	} else {
		defaults = DefaultLightPalette()
	}

	if cfg == nil {
		return defaults
	}

	return Palette{
		Background:  Coalesce(cfg.Background, defaults.Background),
		Surface:     Coalesce(cfg.Surface, defaults.Surface),
		TabActive:   Coalesce(cfg.TabActive, defaults.TabActive),
		TabInactive: Coalesce(cfg.TabInactive, defaults.TabInactive),
		Text:        Coalesce(cfg.Text, defaults.Text),
		Accent:      Coalesce(cfg.Accent, defaults.Accent),
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	colors := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"tab_active", p.TabActive},
		{"tab_inactive", p.TabInactive},
		{"text", p.Text},
		{"accent", p.Accent},
	}
	for _, c := range colors {
		if _, err := ParseHexColor(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

// ParseHexColor converts #RGB, #RRGGBB or #RRGGBBAA into a color. Missing alpha
// is opaque.
func ParseHexColor(s string) (entity.Color, error) {
	if s == "" {
		return entity.Color{}, fmt.Errorf("empty color")
	}
	if err := config.ValidateHexColor(s); err != nil {
		return entity.Color{}, err
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return entity.Color{}, fmt.Errorf("invalid hex color: %s", s)
	}
	return entity.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// HexString formats c as #RRGGBB, dropping alpha.
func HexString(c entity.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
