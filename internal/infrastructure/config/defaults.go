package config

import "github.com/bnema/dockyard/internal/domain/entity"

// Default configuration constants
const (
	// Terminal defaults: one column is 8 units, one row is a tab strip.
	defaultCellWidth  = 8
	defaultCellHeight = 20

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	m := entity.DefaultMetrics()
	return &Config{
		Layout: LayoutConfig{
			Padding:         m.Padding,
			TabHeight:       m.TabHeight,
			TabInset:        m.TabInset,
			TabGap:          m.TabGap,
			TabLabelPadding: m.TabLabelPadding,
			DropMargin:      m.DropMargin,
			WindowPadding:   m.WindowPadding,
		},
		Drag: DragConfig{
			ReleasePolicy: ReleasePolicyRestore,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeDark,
		},
		Terminal: TerminalConfig{
			CellWidth:  defaultCellWidth,
			CellHeight: defaultCellHeight,
			AltScreen:  true,
			AllMotion:  true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
			Compress:   true,
		},
		Fixture: FixtureFromLayout(entity.DefaultLayout()),
	}
}
