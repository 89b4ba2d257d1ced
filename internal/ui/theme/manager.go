package theme

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

// Atlases the theme hands out. Each is a flat color swatch.
const (
	AtlasBackground    entity.AtlasID = 1
	AtlasTabSelected   entity.AtlasID = 2
	AtlasTabDeselected entity.AtlasID = 3
)

// swatchPixel is the UV size of one source pixel of a swatch.
const swatchPixel = 1.0 / 8

// Colors is a palette parsed into RGBA.
type Colors struct {
	Background  entity.Color
	Surface     entity.Color
	TabActive   entity.Color
	TabInactive entity.Color
	Text        entity.Color
	Accent      entity.Color
}

// Manager handles theme state.
type Manager struct {
	mu     sync.RWMutex
	scheme config.ColorScheme
	colors Colors
}

// NewManager creates a new theme manager from configuration.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	m := &Manager{}
	m.UpdateFromConfig(ctx, cfg)
	return m
}

// UpdateFromConfig swaps in the palette of cfg. Unparseable entries fall back
// to the scheme default.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	scheme := config.ColorSchemeDark
	var overrides *config.ColorPalette
	if cfg != nil {
		if cfg.Appearance.ColorScheme != "" {
			scheme = cfg.Appearance.ColorScheme
		}
		overrides = &cfg.Appearance.Palette
	}

	isDark := scheme != config.ColorSchemeLight
	palette := PaletteFromConfig(overrides, isDark)
	defaults := PaletteFromConfig(nil, isDark)

	parse := func(name, value, fallback string) entity.Color {
		c, err := ParseHexColor(value)
		if err != nil {
			log.Warn().Err(err).Str("color", name).Msg("invalid palette color, using default")
			c, _ = ParseHexColor(fallback)
		}
		return c
	}
	colors := Colors{
		Background:  parse("background", palette.Background, defaults.Background),
		Surface:     parse("surface", palette.Surface, defaults.Surface),
		TabActive:   parse("tab_active", palette.TabActive, defaults.TabActive),
		TabInactive: parse("tab_inactive", palette.TabInactive, defaults.TabInactive),
		Text:        parse("text", palette.Text, defaults.Text),
		Accent:      parse("accent", palette.Accent, defaults.Accent),
	}

	m.mu.Lock()
	m.scheme = scheme
	m.colors = colors
	m.mu.Unlock()

	log.Debug().
		Str("scheme", string(scheme)).
		Str("background", HexString(colors.Background)).
		Str("accent", HexString(colors.Accent)).
		Msg("theme manager initialized")
}

// PrefersDark returns true if dark mode is active.
func (m *Manager) PrefersDark() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scheme != config.ColorSchemeLight
}

// Colors returns the active colors.
func (m *Manager) Colors() Colors {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.colors
}

// AtlasColor returns the swatch color of an atlas handed out by Visuals.
func (m *Manager) AtlasColor(id entity.AtlasID) (entity.Color, bool) {
	c := m.Colors()
	switch id {
	case AtlasBackground:
		return c.Surface, true
	case AtlasTabSelected:
		return c.TabActive, true
	case AtlasTabDeselected:
		return c.TabInactive, true
	}
	return entity.Color{}, false
}

// Visuals returns the defaults for a new dock registry.
func (m *Manager) Visuals(font entity.Font) entity.Visuals {
	return entity.Visuals{
		Font:           font,
		DockBackground: swatch(AtlasBackground),
		TabSelected:    swatch(AtlasTabSelected),
		TabDeselected:  swatch(AtlasTabDeselected),
	}
}

func swatch(id entity.AtlasID) entity.Texture {
	return entity.Texture{
		Atlas:          id,
		UVMin:          [2]float32{0, 0},
		UVMax:          [2]float32{1, 1},
		PixelDimension: swatchPixel,
	}
}
