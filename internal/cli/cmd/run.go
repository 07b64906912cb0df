package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/pagecore/internal/cli"
	"github.com/bnema/pagecore/internal/infrastructure/config"
	"github.com/bnema/pagecore/internal/infrastructure/diskcache"
	"github.com/bnema/pagecore/internal/infrastructure/filtering"
	"github.com/bnema/pagecore/internal/process"
)

const (
	memoryPollInterval = 10 * time.Second
	shutdownTimeout    = 5 * time.Second
)

var runSize string

var runCmd = &cobra.Command{
	Use:   "run [file|url]",
	Short: "Run a headless coordinator until interrupted",
	Long: `Start a process coordinator with the disk cache, content filtering and
config watching, optionally holding one loaded page. Edits to config.toml
are applied live. With [metrics] enabled the Prometheus endpoint is served
on the configured address.

Stops on SIGINT or SIGTERM.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runSize, "size", "1280x800", "viewport size of the loaded page")
}

func runRun(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := app.Logger
	size, err := parseSize(runSize)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := cli.CoordinatorOptions{
		DiskCache:  diskcache.New(),
		Registerer: reg,
	}
	var filters *filtering.Manager
	if dir := app.Config.ContentFiltering.JSONDir; dir != "" {
		filters, err = filtering.NewManager(filtering.ManagerConfig{
			JSONDir:    dir,
			Enabled:    app.Config.ContentFiltering.Enabled,
			AutoUpdate: app.Config.ContentFiltering.AutoUpdate,
		})
		if err != nil {
			return err
		}
		filters.SetStatusCallback(func(s filtering.FilterStatus) {
			log.Info().Str("state", string(s.State)).Str("message", s.Message).Msg("content filters")
		})
		opts.AdFilter = filters
	}

	coord, err := app.NewCoordinator(ctx, opts)
	if err != nil {
		return err
	}
	defer coord.Terminate()
	coord.OnLastPageClosed(func() {
		log.Info().Msg("last page closed")
	})

	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		coord.Post(func() {
			if err := coord.ApplyConfig(ctx, cfg); err != nil {
				log.Warn().Err(err).Msg("config change not applied")
				return
			}
			log.Info().Str("cache_model", cfg.Cache.Model).Msg("config applied")
		})
	})
	if err := app.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ignoreCanceled(coord.Run(gctx))
	})
	if filters != nil {
		filters.LoadAsync(gctx)
	}
	if len(args) == 1 {
		target := cli.NewImageTarget(size)
		host := cli.NewHeadlessHost(log)
		coord.Post(func() {
			if _, err := loadHeadlessPage(coord, host, args[0], size); err != nil {
				log.Error().Err(err).Str("document", args[0]).Msg("load failed")
				return
			}
			coord.RequestRepaint(headlessPageID, target)
		})
	}
	g.Go(func() error {
		pollMemory(gctx, coord)
		return nil
	})
	if app.Config.Metrics.Enabled {
		g.Go(func() error {
			return serveMetrics(gctx, app.Config.Metrics.Listen, reg)
		})
	}

	log.Info().Str("session", coord.SessionID().String()).Msg("coordinator running")
	err = g.Wait()
	log.Info().Msg("coordinator stopped")
	return err
}

// pollMemory feeds the resident heap to the memory pressure handler.
func pollMemory(ctx context.Context, coord *process.Coordinator) {
	ticker := time.NewTicker(memoryPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			coord.Post(func() { coord.HandleMemoryPressure(ms.HeapInuse) })
		}
	}
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
