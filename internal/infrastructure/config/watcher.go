package config

import (
	"bytes"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/logging"
)

// DefaultReloadDebounce folds the burst of events an editor produces when it
// saves config.toml into one reload.
const DefaultReloadDebounce = 150 * time.Millisecond

// SetLogger replaces the environment-derived logger used for reload reports.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger.With().Str(logging.FieldComponent, "config").Logger()
}

// Watch reloads config.toml when it changes on disk. Reloads are debounced,
// and subscribers only hear about reloads that change the effective
// configuration. A change that fails validation keeps the previous one.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleEvent(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")
	if m.pending != nil {
		m.pending.Stop()
	}
	m.pending = time.AfterFunc(m.debounce, func() {
		if err := m.Reload(); err != nil {
			m.mu.RLock()
			m.logger.Warn().Err(err).Msg("config reload failed, keeping previous settings")
			m.mu.RUnlock()
		}
	})
}

// OnConfigChange registers a callback for configuration changes. Callbacks
// get their own copy and run without the manager lock held.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Reload rereads the file and notifies subscribers when the result differs
// from the current configuration.
func (m *Manager) Reload() error {
	m.mu.Lock()
	changed, err := m.reload()
	if err != nil || !changed {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// notifyCallbacksLocked releases m.mu, which must be held for write, before
// running the callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.logger.Info().Str("cache_model", config.Cache.Model).Int("subscribers", len(callbacks)).Msg("config reloaded")
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := config
		callback(&c)
	}
}

// reload must be called with m.mu held for write. It reports whether the
// normalized configuration differs from the one it replaces.
func (m *Manager) reload() (bool, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return false, err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return false, err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return false, err
	}
	changed := m.config == nil || !sameConfig(m.config, config)
	m.config = config
	return changed, nil
}

// sameConfig compares the TOML encodings, which cover every persisted key.
func sameConfig(a, b *Config) bool {
	ea, errA := Marshal(a)
	eb, errB := Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ea, eb)
}
