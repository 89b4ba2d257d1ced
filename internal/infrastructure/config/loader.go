package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config       *Config
	viper        *viper.Viper
	mu           sync.RWMutex
	logger       zerolog.Logger
	callbacks    []func(*Config)
	errCallbacks []func(error)
	watching     bool
	explicit     bool
	configPath   string
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, then the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return newManager(v, false)
}

// NewManagerForFile creates a manager reading exactly path. The file must exist.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// DOCKYARD_LOG_* match the variables logging.NewFromEnv reads.
	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		logger:    zerolog.Nop(),
		callbacks: make([]func(*Config), 0),
		explicit:  explicit,
	}, nil
}

// Load reads defaults, the config file if present, and the environment. A
// missing file under the search paths is not an error; `dockyard config init`
// writes one.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.configPath = m.viper.ConfigFileUsed()
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if !m.explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.viper.ConfigFileUsed(), err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if config.Fixture.IsZero() {
		config.Fixture = DefaultConfig().Fixture
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch ReleasePolicy(strings.ToLower(string(config.Drag.ReleasePolicy))) {
	case ReleasePolicyDetach:
		config.Drag.ReleasePolicy = ReleasePolicyDetach
	case ReleasePolicyRestore, "":
		config.Drag.ReleasePolicy = ReleasePolicyRestore
	}

	switch ColorScheme(strings.ToLower(string(config.Appearance.ColorScheme))) {
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	case ColorSchemeDark, "":
		config.Appearance.ColorScheme = ColorSchemeDark
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	case "", "text", "console":
		config.Logging.Format = "console"
	}
	config.Fixture = normalizeFixture(config.Fixture)
}

func normalizeFixture(n FixtureNode) FixtureNode {
	n.Orientation = strings.ToLower(strings.TrimSpace(n.Orientation))
	for i := range n.Children {
		n.Children[i] = normalizeFixture(n.Children[i])
	}
	return n
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the file the configuration was read from, or "" when only
// defaults and the environment were used.
func (m *Manager) ConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configPath
}

// OnConfigChange registers fn to run after every successful reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// OnReloadError registers fn to run when a changed file cannot be read or does
// not validate. The previous configuration stays active.
func (m *Manager) OnReloadError(fn func(error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errCallbacks = append(m.errCallbacks, fn)
}

// SetLogger sets the logger reload events go to. The manager is silent until
// one is set.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.viper.SetDefault("drag.release_policy", string(defaults.Drag.ReleasePolicy))
	m.setAppearanceDefaults(defaults)
	m.setTerminalDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.padding", defaults.Layout.Padding)
	m.viper.SetDefault("layout.tab_height", defaults.Layout.TabHeight)
	m.viper.SetDefault("layout.tab_inset", defaults.Layout.TabInset)
	m.viper.SetDefault("layout.tab_gap", defaults.Layout.TabGap)
	m.viper.SetDefault("layout.tab_label_padding", defaults.Layout.TabLabelPadding)
	m.viper.SetDefault("layout.drop_margin", defaults.Layout.DropMargin)
	m.viper.SetDefault("layout.window_padding", defaults.Layout.WindowPadding)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	for _, key := range []string{"background", "surface", "tab_active", "tab_inactive", "text", "accent"} {
		m.viper.SetDefault("appearance.palette."+key, "")
	}
}

func (m *Manager) setTerminalDefaults(defaults *Config) {
	m.viper.SetDefault("terminal.cell_width", defaults.Terminal.CellWidth)
	m.viper.SetDefault("terminal.cell_height", defaults.Terminal.CellHeight)
	m.viper.SetDefault("terminal.alt_screen", defaults.Terminal.AltScreen)
	m.viper.SetDefault("terminal.all_motion", defaults.Terminal.AllMotion)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
