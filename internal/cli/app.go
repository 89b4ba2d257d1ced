// Package cli wires configuration, theming and logging for the dockyard commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// Options are the global flags every command shares.
type Options struct {
	// ConfigFile overrides the XDG config file. It must exist.
	ConfigFile string
	// LogLevel overrides logging.level from the config.
	LogLevel string
	// AllowMissing accepts a ConfigFile that does not exist yet.
	AllowMissing bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	// ConfigErr is the load error when dockyard fell back to defaults.
	ConfigErr error
	Theme     *styles.Theme
	ThemeMgr  *theme.Manager
	BuildInfo build.Info

	configPath string
	ctx        context.Context
	rotator    *logging.LogRotator
}

// NewApp loads the configuration and sets up a stderr logger. An explicit
// config file that cannot be loaded is an error; a broken file found by
// search falls back to defaults and is reported through ConfigErr.
func NewApp(opts Options) (*App, error) {
	mgr, path, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	var cfgErr error
	if err := mgr.Load(); err != nil {
		switch {
		case opts.ConfigFile == "":
			cfgErr = err
		case opts.AllowMissing && errors.Is(err, os.ErrNotExist):
			// config init creates it
		default:
			return nil, fmt.Errorf("load config %s: %w", opts.ConfigFile, err)
		}
	}
	cfg := mgr.Get()
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if loaded := mgr.ConfigFile(); loaded != "" {
		path = loaded
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logger)
	mgr.SetLogger(logger.With().Str("component", "config").Logger())
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         styles.NewTheme(cfg),
		ThemeMgr:      theme.NewManager(ctx, cfg),
		configPath:    path,
		ctx:           ctx,
	}, nil
}

func newConfigManager(file string) (*config.Manager, string, error) {
	if file != "" {
		mgr, err := config.NewManagerForFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("create config manager: %w", err)
		}
		return mgr, file, nil
	}

	mgr, err := config.NewManager()
	if err != nil {
		return nil, "", fmt.Errorf("create config manager: %w", err)
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return nil, "", fmt.Errorf("resolve config file: %w", err)
	}
	return mgr, path, nil
}

// ConfigPath returns the file the configuration was read from, or the XDG
// path where `config init` writes one.
func (a *App) ConfigPath() string {
	return a.configPath
}

// EnableFileLogging moves logs from stderr to a rotated file, so they do not
// tear through a full-screen view. The config manager's reload logs follow.
// It returns the log file path.
func (a *App) EnableFileLogging() (string, error) {
	if a.rotator != nil {
		return a.rotator.Path(), nil
	}

	dir := a.Config.Logging.LogDir
	if dir == "" {
		var err error
		if dir, err = config.GetLogDir(); err != nil {
			return "", fmt.Errorf("resolve log dir: %w", err)
		}
	}
	rotator, err := logging.NewLogRotator(logging.FileConfig{
		Dir:        dir,
		MaxSizeMB:  a.Config.Logging.MaxSizeMB,
		MaxBackups: a.Config.Logging.MaxBackups,
		MaxAgeDays: a.Config.Logging.MaxAgeDays,
		Compress:   a.Config.Logging.Compress,
	})
	if err != nil {
		return "", err
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(a.Config.Logging.Level),
		Format:     a.Config.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     rotator,
	})
	a.rotator = rotator
	a.ctx = logging.WithContext(context.Background(), logger)
	a.ConfigManager.SetLogger(logger.With().Str("component", "config").Logger())
	return rotator.Path(), nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.rotator != nil {
		return a.rotator.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
