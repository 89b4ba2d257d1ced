package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want entity.Color
	}{
		{"#fff", entity.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#1e1e2e", entity.Color{R: 0x1e, G: 0x1e, B: 0x2e, A: 255}},
		{"#10203040", entity.Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "fff", "#12345"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#0a0a0b", HexString(entity.Color{R: 10, G: 10, B: 11, A: 1}))
}

func TestPaletteFromConfig(t *testing.T) {
	assert.Equal(t, DefaultLightPalette(), PaletteFromConfig(nil, false))

	p := PaletteFromConfig(&config.ColorPalette{Accent: "#ff0000"}, true)
	assert.Equal(t, "#ff0000", p.Accent)
	assert.Equal(t, DefaultDarkPalette().Surface, p.Surface)
	assert.NoError(t, p.Validate())

	p.Text = "white"
	assert.ErrorContains(t, p.Validate(), "text")
}

func TestNewManager_Schemes(t *testing.T) {
	ctx := context.Background()

	dark := NewManager(ctx, nil)
	assert.True(t, dark.PrefersDark())
	assert.Equal(t, entity.Color{R: 0x0a, G: 0x0a, B: 0x0b, A: 255}, dark.Colors().Background)

	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = config.ColorSchemeLight
	cfg.Appearance.Palette.Surface = "#123456"
	light := NewManager(ctx, cfg)
	assert.False(t, light.PrefersDark())
	assert.Equal(t, entity.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, light.Colors().Surface)
}

func TestManager_InvalidOverrideFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Text = "not-a-color"

	m := NewManager(context.Background(), cfg)
	want, err := ParseHexColor(DefaultDarkPalette().Text)
	require.NoError(t, err)
	assert.Equal(t, want, m.Colors().Text)
}

func TestManager_VisualsAndAtlasColors(t *testing.T) {
	m := NewManager(context.Background(), nil)
	v := m.Visuals(nil)

	assert.Equal(t, AtlasBackground, v.DockBackground.Atlas)
	assert.Equal(t, AtlasTabSelected, v.TabSelected.Atlas)
	assert.Equal(t, AtlasTabDeselected, v.TabDeselected.Atlas)
	assert.Equal(t, [2]float32{1, 1}, v.TabSelected.UVMax)

	c, ok := m.AtlasColor(AtlasTabSelected)
	require.True(t, ok)
	assert.Equal(t, m.Colors().TabActive, c)

	_, ok = m.AtlasColor(99)
	assert.False(t, ok)
}

func TestManager_UpdateFromConfig(t *testing.T) {
	m := NewManager(context.Background(), nil)
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#00ff00"

	m.UpdateFromConfig(context.Background(), cfg)
	assert.Equal(t, entity.Color{G: 255, A: 255}, m.Colors().Accent)
}
