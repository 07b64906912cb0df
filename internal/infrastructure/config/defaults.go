package config

import (
	"path/filepath"
	"time"

	"github.com/bnema/pagecore/internal/domain/entity"
)

const (
	defaultLogLevel             = "info"
	defaultLogFormat            = "console"
	defaultTileSize             = 64
	defaultMiddleClickThreshold = 5
	defaultWheelLines           = 3
	defaultPagesPerSheet        = 1
	defaultPostScriptLevel      = 2
	defaultHandshakeTimeout     = 5 * time.Second
	defaultMetricsListen        = "127.0.0.1:9464"

	// A4 in points with a quarter inch margin.
	defaultPaperWidth  = 595.0
	defaultPaperHeight = 842.0
	defaultMargin      = 18.0
)

// DefaultConfig returns the built-in configuration. Directories resolve to
// the XDG cache dir; they stay empty when it cannot be determined.
func DefaultConfig() *Config {
	var diskCacheDir, filterDir string
	if cacheDir, err := GetCacheDir(); err == nil {
		diskCacheDir = filepath.Join(cacheDir, "resources")
		filterDir = filepath.Join(cacheDir, "filters")
	}

	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Cache: CacheConfig{
			Model:        entity.CacheModelPrimaryWebBrowser.String(),
			DiskCacheDir: diskCacheDir,
		},
		Input: InputConfig{
			ContextMenuPolicy:    entity.ContextMenuDefault.String(),
			MiddleClickThreshold: defaultMiddleClickThreshold,
			WheelLines:           defaultWheelLines,
			LineStep:             entity.DefaultLineStep,
		},
		Rendering: RenderingConfig{
			TileSize:      defaultTileSize,
			Interpolation: "default",
		},
		Printing: PrintingConfig{
			PaperWidth:      defaultPaperWidth,
			PaperHeight:     defaultPaperHeight,
			Margin:          defaultMargin,
			PagesPerSheet:   defaultPagesPerSheet,
			PostScriptLevel: defaultPostScriptLevel,
		},
		ContentFiltering: ContentFilteringConfig{
			Enabled:    true,
			AutoUpdate: true,
			JSONDir:    filterDir,
		},
		IPC: IPCConfig{
			HandshakeTimeout: defaultHandshakeTimeout,
		},
		Metrics: MetricsConfig{
			Listen: defaultMetricsListen,
		},
	}
}
