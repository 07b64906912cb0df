package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/pagecore/internal/logging"
)

const configFileName = "config.toml"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	logger   zerolog.Logger
	debounce time.Duration
	pending  *time.Timer
}

// NewManager creates a manager reading from the XDG config directory and the
// working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir, ".")
}

// NewManagerWithDir creates a manager reading config.toml from dir, then
// from the extra search paths.
func NewManagerWithDir(dir string, extra ...string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	for _, p := range extra {
		v.AddConfigPath(p)
	}

	// PAGECORE_CACHE_MODEL, PAGECORE_RENDERING_TILE_SIZE, ...
	v.SetEnvPrefix("PAGECORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "PAGECORE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PAGECORE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PAGECORE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PAGECORE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:    v,
		dir:      dir,
		logger:   logging.NewFromEnv().With().Str(logging.FieldComponent, "config").Logger(),
		debounce: DefaultReloadDebounce,
	}, nil
}

// Load reads the config file, creating it from defaults on first run, and
// applies environment overrides.
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
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.dir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.dir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
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
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Cache.Model = strings.ToLower(strings.TrimSpace(config.Cache.Model))
	config.Input.ContextMenuPolicy = strings.ToLower(strings.TrimSpace(config.Input.ContextMenuPolicy))
	config.Rendering.Interpolation = strings.ToLower(strings.TrimSpace(config.Rendering.Interpolation))
	if config.Cache.Model == "" {
		config.Cache.Model = DefaultConfig().Cache.Model
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if f := m.viper.ConfigFileUsed(); f != "" {
		return f
	}
	return filepath.Join(m.dir, configFileName)
}

// createDefaultConfig writes the defaults to the config directory.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), filepath.Join(m.dir, configFileName))
}

// setDefaults registers defaults so keys missing from the file still
// resolve, and so AutomaticEnv can see every key.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)

	m.viper.SetDefault("cache.model", d.Cache.Model)
	m.viper.SetDefault("cache.disk_cache_bytes", d.Cache.DiskCacheBytes)
	m.viper.SetDefault("cache.disk_cache_dir", d.Cache.DiskCacheDir)

	m.viper.SetDefault("input.context_menu_policy", d.Input.ContextMenuPolicy)
	m.viper.SetDefault("input.middle_click_threshold", d.Input.MiddleClickThreshold)
	m.viper.SetDefault("input.wheel_lines", d.Input.WheelLines)
	m.viper.SetDefault("input.line_step", d.Input.LineStep)

	m.viper.SetDefault("rendering.tile_size", d.Rendering.TileSize)
	m.viper.SetDefault("rendering.interpolation", d.Rendering.Interpolation)
	m.viper.SetDefault("rendering.fast_scroll", d.Rendering.FastScroll)

	m.viper.SetDefault("printing.paper_width", d.Printing.PaperWidth)
	m.viper.SetDefault("printing.paper_height", d.Printing.PaperHeight)
	m.viper.SetDefault("printing.margin", d.Printing.Margin)
	m.viper.SetDefault("printing.pages_per_sheet", d.Printing.PagesPerSheet)
	m.viper.SetDefault("printing.landscape", d.Printing.Landscape)
	m.viper.SetDefault("printing.postscript_level", d.Printing.PostScriptLevel)
	m.viper.SetDefault("printing.print_backgrounds", d.Printing.PrintBackgrounds)

	m.viper.SetDefault("content_filtering.enabled", d.ContentFiltering.Enabled)
	m.viper.SetDefault("content_filtering.auto_update", d.ContentFiltering.AutoUpdate)
	m.viper.SetDefault("content_filtering.json_dir", d.ContentFiltering.JSONDir)

	m.viper.SetDefault("ipc.handshake_timeout", d.IPC.HandshakeTimeout)

	m.viper.SetDefault("metrics.enabled", d.Metrics.Enabled)
	m.viper.SetDefault("metrics.listen", d.Metrics.Listen)
}
