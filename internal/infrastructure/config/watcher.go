package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and reloads automatically.
// An invalid edit keeps the previous configuration and is reported to the
// OnReloadError callbacks.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.configPath == "" {
		return fmt.Errorf("no config file to watch")
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.mu.Lock()
		log := m.logger
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.notifyErrorCallbacksLocked(err)
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// reload re-reads the file. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config: %w", err)
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

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, fn := range callbacks {
		c := config
		fn(&c)
	}
}

// notifyErrorCallbacksLocked mirrors notifyCallbacksLocked for reload failures.
func (m *Manager) notifyErrorCallbacksLocked(err error) {
	callbacks := make([]func(error), len(m.errCallbacks))
	copy(callbacks, m.errCallbacks)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(err)
	}
}
