// Package config loads, validates, watches and writes dockyard's configuration.
package config

// Config represents the complete configuration for dockyard.
type Config struct {
	// Layout holds the spacing constants of the dock tree, in layout units.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Drag controls drag-and-drop behavior.
	Drag DragConfig `mapstructure:"drag" yaml:"drag" toml:"drag" json:"drag"`
	// Appearance selects the color scheme and palette overrides.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// Terminal maps layout units onto terminal cells for the interactive demo.
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal" toml:"terminal" json:"terminal"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Fixture is the dock tree built at startup.
	Fixture FixtureNode `mapstructure:"fixture" yaml:"fixture" toml:"fixture" json:"fixture"`
}

// LayoutConfig mirrors entity.Metrics.
type LayoutConfig struct {
	Padding         int `mapstructure:"padding" yaml:"padding" toml:"padding" json:"padding" jsonschema:"minimum=0"`
	TabHeight       int `mapstructure:"tab_height" yaml:"tab_height" toml:"tab_height" json:"tab_height" jsonschema:"minimum=1"`
	TabInset        int `mapstructure:"tab_inset" yaml:"tab_inset" toml:"tab_inset" json:"tab_inset" jsonschema:"minimum=0"`
	TabGap          int `mapstructure:"tab_gap" yaml:"tab_gap" toml:"tab_gap" json:"tab_gap" jsonschema:"minimum=0"`
	TabLabelPadding int `mapstructure:"tab_label_padding" yaml:"tab_label_padding" toml:"tab_label_padding" json:"tab_label_padding" jsonschema:"minimum=0"`
	DropMargin      int `mapstructure:"drop_margin" yaml:"drop_margin" toml:"drop_margin" json:"drop_margin" jsonschema:"minimum=0"`
	WindowPadding   int `mapstructure:"window_padding" yaml:"window_padding" toml:"window_padding" json:"window_padding" jsonschema:"minimum=0"`
}

// ReleasePolicy names what a drop over no target does.
type ReleasePolicy string

const (
	ReleasePolicyRestore ReleasePolicy = "restore"
	ReleasePolicyDetach  ReleasePolicy = "detach"
)

// DragConfig controls drag sessions.
type DragConfig struct {
	// ReleasePolicy is "restore" (put the dock back where it came from) or
	// "detach" (leave it out of every group).
	ReleasePolicy ReleasePolicy `mapstructure:"release_policy" yaml:"release_policy" toml:"release_policy" json:"release_policy" jsonschema:"enum=restore,enum=detach"`
}

// ColorScheme selects the base palette.
type ColorScheme string

const (
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"
)

// AppearanceConfig holds color settings.
type AppearanceConfig struct {
	ColorScheme ColorScheme `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=dark,enum=light"`
	// Palette overrides individual colors of the selected scheme. Empty keeps the default.
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colors (#RGB, #RRGGBB or #RRGGBBAA).
type ColorPalette struct {
	Background  string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface     string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	TabActive   string `mapstructure:"tab_active" yaml:"tab_active" toml:"tab_active" json:"tab_active"`
	TabInactive string `mapstructure:"tab_inactive" yaml:"tab_inactive" toml:"tab_inactive" json:"tab_inactive"`
	Text        string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Accent      string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
}

// TerminalConfig controls the terminal front end.
type TerminalConfig struct {
	// CellWidth is the layout width of one terminal column.
	CellWidth int `mapstructure:"cell_width" yaml:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"minimum=1"`
	// CellHeight is the layout height of one terminal row.
	CellHeight int  `mapstructure:"cell_height" yaml:"cell_height" toml:"cell_height" json:"cell_height" jsonschema:"minimum=1"`
	AltScreen  bool `mapstructure:"alt_screen" yaml:"alt_screen" toml:"alt_screen" json:"alt_screen"`
	// AllMotion reports pointer motion without a held button too.
	AllMotion bool `mapstructure:"all_motion" yaml:"all_motion" toml:"all_motion" json:"all_motion"`
}

// LoggingConfig controls log output. While the terminal UI runs, logs go to a
// rotated file under the XDG state directory.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format     string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// FixtureNode describes a dock tree. A node listing docks is a group; a node
// with children is a table stacked along orientation.
type FixtureNode struct {
	Orientation string        `mapstructure:"orientation" yaml:"orientation,omitempty" toml:"orientation,omitempty" json:"orientation,omitempty" jsonschema:"enum=horizontal,enum=vertical"`
	Docks       []string      `mapstructure:"docks" yaml:"docks,omitempty" toml:"docks,omitempty" json:"docks,omitempty"`
	Children    []FixtureNode `mapstructure:"children" yaml:"children,omitempty" toml:"children,omitempty" json:"children,omitempty"`
}

// IsZero reports whether the node describes nothing.
func (n FixtureNode) IsZero() bool {
	return n.Orientation == "" && len(n.Docks) == 0 && len(n.Children) == 0
}
