package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative padding", func(c *Config) { c.Layout.Padding = -1 }, "layout.padding must be non-negative"},
		{"zero tab height", func(c *Config) { c.Layout.TabHeight = 0 }, "layout.tab_height must be at least 1"},
		{"unknown release policy", func(c *Config) { c.Drag.ReleasePolicy = "float" }, `drag.release_policy must be "restore" or "detach"`},
		{"unknown scheme", func(c *Config) { c.Appearance.ColorScheme = "neon" }, "appearance.color_scheme"},
		{"bad palette color", func(c *Config) { c.Appearance.Palette.Accent = "orange" }, "appearance.palette.accent: invalid hex color: orange"},
		{"zero cell width", func(c *Config) { c.Terminal.CellWidth = 0 }, "terminal.cell_width must be at least 1"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }, `logging.level "loud"`},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"empty fixture group", func(c *Config) { c.Fixture = FixtureNode{Docks: []string{}} }, "group has no docks"},
		{"nested fixture table with one child", func(c *Config) {
			c.Fixture = FixtureNode{
				Orientation: "horizontal",
				Children: []FixtureNode{
					{Docks: []string{"A"}},
					{Orientation: "vertical", Children: []FixtureNode{{Docks: []string{"B"}}}},
				},
			}
		}, "fixture shape: root.1: table needs at least two children"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.TabGap = -3
	cfg.Terminal.CellHeight = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.tab_gap")
	assert.Contains(t, err.Error(), "terminal.cell_height")
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"", "#fff", "#1e1e2e", "#1e1e2eff"} {
		assert.NoError(t, ValidateHexColor(ok), ok)
	}
	for _, bad := range []string{"fff", "#ffff", "#gggggg", "red"} {
		assert.Error(t, ValidateHexColor(bad), bad)
	}
}

func TestConfig_Metrics(t *testing.T) {
	cfg := DefaultConfig()
	m, err := cfg.Metrics()
	require.NoError(t, err)
	assert.Equal(t, 16, m.TabLabelPadding)

	cfg.Layout.DropMargin = -1
	_, err = cfg.Metrics()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
