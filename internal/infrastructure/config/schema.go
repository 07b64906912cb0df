// Package config loads the pagecore configuration from TOML with Viper,
// watches it for changes and validates every section.
package config

import (
	"time"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	pagination "github.com/bnema/pagecore/internal/domain/printing"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config is the complete pagecore configuration.
type Config struct {
	Logging          LoggingConfig          `mapstructure:"logging" toml:"logging"`
	Cache            CacheConfig            `mapstructure:"cache" toml:"cache"`
	Input            InputConfig            `mapstructure:"input" toml:"input"`
	Rendering        RenderingConfig        `mapstructure:"rendering" toml:"rendering"`
	Printing         PrintingConfig         `mapstructure:"printing" toml:"printing"`
	ContentFiltering ContentFilteringConfig `mapstructure:"content_filtering" toml:"content_filtering"`
	IPC              IPCConfig              `mapstructure:"ipc" toml:"ipc"`
	Metrics          MetricsConfig          `mapstructure:"metrics" toml:"metrics"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// CacheConfig sizes the process caches.
type CacheConfig struct {
	// Model is one of document_viewer, document_browser, primary_web_browser.
	Model string `mapstructure:"model" toml:"model"`
	// DiskCacheBytes is the requested disk quota. Zero derives it from the
	// model and the free space of the cache volume.
	DiskCacheBytes uint64 `mapstructure:"disk_cache_bytes" toml:"disk_cache_bytes"`
	DiskCacheDir   string `mapstructure:"disk_cache_dir" toml:"disk_cache_dir"`
}

// InputConfig tunes the input dispatcher.
type InputConfig struct {
	ContextMenuPolicy    string  `mapstructure:"context_menu_policy" toml:"context_menu_policy"`
	MiddleClickThreshold int     `mapstructure:"middle_click_threshold" toml:"middle_click_threshold"`
	WheelLines           float64 `mapstructure:"wheel_lines" toml:"wheel_lines"`
	LineStep             int     `mapstructure:"line_step" toml:"line_step"`
}

// RenderingConfig tunes the draw surface.
type RenderingConfig struct {
	TileSize      int    `mapstructure:"tile_size" toml:"tile_size"`
	Interpolation string `mapstructure:"interpolation" toml:"interpolation"`
	// FastScroll enables the scroll blit path that shifts pixels instead of
	// repainting.
	FastScroll bool `mapstructure:"fast_scroll" toml:"fast_scroll"`
}

// PrintingConfig holds the default print job settings.
type PrintingConfig struct {
	PaperWidth       float64 `mapstructure:"paper_width" toml:"paper_width"`
	PaperHeight      float64 `mapstructure:"paper_height" toml:"paper_height"`
	Margin           float64 `mapstructure:"margin" toml:"margin"`
	PagesPerSheet    int     `mapstructure:"pages_per_sheet" toml:"pages_per_sheet"`
	Landscape        bool    `mapstructure:"landscape" toml:"landscape"`
	PostScriptLevel  int     `mapstructure:"postscript_level" toml:"postscript_level"`
	PrintBackgrounds bool    `mapstructure:"print_backgrounds" toml:"print_backgrounds"`
}

// ContentFilteringConfig holds ad blocking settings.
type ContentFilteringConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled"`
	AutoUpdate bool   `mapstructure:"auto_update" toml:"auto_update"`
	JSONDir    string `mapstructure:"json_dir" toml:"json_dir"`
}

// IPCConfig holds peer process settings.
type IPCConfig struct {
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout" toml:"handshake_timeout"`
}

// MetricsConfig controls the Prometheus endpoint of the run command.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Listen  string `mapstructure:"listen" toml:"listen"`
}

// CacheModel returns the parsed cache model. Validated configs never fail.
func (c *Config) CacheModel() entity.CacheModel {
	m, err := entity.ParseCacheModel(c.Cache.Model)
	if err != nil {
		return entity.CacheModelPrimaryWebBrowser
	}
	return m
}

// ContextMenuPolicy returns the parsed context menu policy.
func (c *Config) ContextMenuPolicy() entity.ContextMenuPolicy {
	p, _ := entity.ParseContextMenuPolicy(c.Input.ContextMenuPolicy)
	return p
}

// Interpolation returns the parsed interpolation quality.
func (c *Config) Interpolation() port.InterpolationQuality {
	q, _ := port.ParseInterpolationQuality(c.Rendering.Interpolation)
	return q
}

// PrintParams returns the pagination parameters of the default job.
func (c *Config) PrintParams() pagination.Params {
	return pagination.Params{
		PaperWidth:  c.Printing.PaperWidth,
		PaperHeight: c.Printing.PaperHeight,
		Margins: pagination.Margins{
			Left:   c.Printing.Margin,
			Top:    c.Printing.Margin,
			Right:  c.Printing.Margin,
			Bottom: c.Printing.Margin,
		},
		PagesPerSheet: c.Printing.PagesPerSheet,
		Landscape:     c.Printing.Landscape,
	}
}
