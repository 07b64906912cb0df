// Package cli wires the pagecore CLI: configuration, logging and headless
// process coordinators the commands drive.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/cli/styles"
	"github.com/bnema/pagecore/internal/infrastructure/cache"
	"github.com/bnema/pagecore/internal/infrastructure/config"
	"github.com/bnema/pagecore/internal/infrastructure/content"
	"github.com/bnema/pagecore/internal/logging"
	"github.com/bnema/pagecore/internal/process"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	Logger        zerolog.Logger

	ctx  context.Context
	exit func(code int)
}

// Options select where the configuration is read from.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// LogLevel overrides the configured level when non-empty.
	LogLevel string
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigDir != "" {
		mgr, err = config.NewManagerWithDir(opts.ConfigDir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if env := os.Getenv("PAGECORE_LOG_LEVEL"); env != "" {
		level = env
	}
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.NewFromConfigValues(level, cfg.Logging.Format)
	mgr.SetLogger(logger)

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Logger:        logger,
		ctx:           logging.WithContext(context.Background(), logger),
		exit:          os.Exit,
	}, nil
}

// Context returns a context carrying the CLI logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// CoordinatorOptions add long running collaborators to a coordinator.
type CoordinatorOptions struct {
	DiskCache  port.DiskCache
	AdFilter   port.AdFilter
	Registerer prometheus.Registerer
}

// fatal logs an unrecoverable coordinator error and exits non-zero.
func (a *App) fatal(err error) {
	a.Logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("process coordinator failed")
	exit := a.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)
}

// NewCoordinator builds a process coordinator on the built-in content engine
// and applies the loaded configuration to it.
func (a *App) NewCoordinator(ctx context.Context, opts CoordinatorOptions) (*process.Coordinator, error) {
	var aspect float64
	if p := a.Config.Printing; p.PaperWidth > 0 {
		aspect = p.PaperHeight / p.PaperWidth
	}
	engine := content.NewEngine(ctx, content.Options{PrintPageAspect: aspect})
	coord, err := process.New(ctx, process.Options{
		Engine:       engine,
		MemoryCache:  cache.NewMemoryCache(a.Logger),
		PageCache:    cache.NewPageCache(),
		DiskCache:    opts.DiskCache,
		AdFilter:     opts.AdFilter,
		Registerer:   opts.Registerer,
		DiskCacheDir: a.Config.Cache.DiskCacheDir,
		Fatal:        a.fatal,
	})
	if err != nil {
		return nil, err
	}
	if err := coord.ApplyConfig(ctx, a.Config); err != nil {
		coord.Terminate()
		return nil, fmt.Errorf("apply config: %w", err)
	}
	return coord, nil
}
