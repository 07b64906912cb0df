package filtering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/logging"
)

const (
	jsonDirPerm    = 0o755
	quarantinePerm = 0o755

	// CacheMaxAge is the maximum age of the filter cache before it's considered stale.
	CacheMaxAge = 24 * time.Hour
)

// Manager owns the content filter lifecycle: it downloads rule lists,
// compiles them into a Matcher and answers request blocking queries.
type Manager struct {
	downloader ListSource
	jsonDir    string

	matcher    *Matcher
	matcherMu  sync.RWMutex
	status     atomic.Value // FilterStatus
	enabled    atomic.Bool
	autoUpdate bool
	loading    atomic.Bool

	onStatusChange func(FilterStatus)
}

var _ port.AdFilter = (*Manager)(nil)

// ManagerConfig holds configuration for the filter manager.
type ManagerConfig struct {
	JSONDir    string // Where downloaded rule lists are cached
	Enabled    bool
	AutoUpdate bool

	// Downloader defaults to a Downloader on JSONDir.
	Downloader ListSource
}

// NewManager creates a new filter Manager.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if err := os.MkdirAll(cfg.JSONDir, jsonDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create json dir: %w", err)
	}

	downloader := cfg.Downloader
	if downloader == nil {
		downloader = NewDownloader(cfg.JSONDir)
	}

	m := &Manager{
		downloader: downloader,
		jsonDir:    cfg.JSONDir,
		autoUpdate: cfg.AutoUpdate,
	}
	m.enabled.Store(cfg.Enabled)
	m.setStatus(FilterStatus{State: StateUninitialized})
	return m, nil
}

// SetStatusCallback sets a callback for status changes.
func (m *Manager) SetStatusCallback(cb func(FilterStatus)) {
	m.onStatusChange = cb
}

func (m *Manager) setStatus(status FilterStatus) {
	m.status.Store(status)
	if m.onStatusChange != nil {
		m.onStatusChange(status)
	}
}

// Status returns the current filter status.
func (m *Manager) Status() FilterStatus {
	if s, ok := m.status.Load().(FilterStatus); ok {
		return s
	}
	return FilterStatus{State: StateUninitialized}
}

// ShouldBlock implements port.AdFilter. Nothing is blocked while filtering
// is disabled or no rules are loaded.
func (m *Manager) ShouldBlock(url, documentURL string) bool {
	if !m.enabled.Load() {
		return false
	}
	m.matcherMu.RLock()
	matcher := m.matcher
	m.matcherMu.RUnlock()
	return matcher.ShouldBlock(url, documentURL)
}

// Load activates cached rules, downloading them when no cache exists. It
// blocks until the rules are active or loading failed.
func (m *Manager) Load(ctx context.Context) error {
	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	if !m.enabled.Load() {
		log.Info().Msg("content filtering disabled")
		m.setStatus(FilterStatus{State: StateDisabled})
		return nil
	}
	if !m.loading.CompareAndSwap(false, true) {
		return nil
	}
	defer m.loading.Store(false)

	if m.hasActiveMatcher() {
		log.Debug().Msg("filters already loaded")
		return nil
	}
	if m.loadFromCache(ctx) {
		m.checkStaleCacheAndUpdate(ctx)
		return nil
	}
	return m.downloadCompileAndActivate(ctx)
}

// LoadAsync runs Load in the background.
func (m *Manager) LoadAsync(ctx context.Context) {
	if !m.enabled.Load() {
		return
	}
	go func() {
		if err := m.Load(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("background filter load failed")
		}
	}()
}

func (m *Manager) loadFromCache(ctx context.Context) bool {
	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	m.setStatus(FilterStatus{State: StateLoading, Message: "Loading filters..."})
	paths := m.downloader.GetCachedFilterPaths()
	if paths == nil {
		return false
	}

	matcher, err := LoadFiles(paths)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load cached filters, will download")
		return false
	}

	version := m.setActiveMatcher(matcher, "Filters active")
	log.Info().Str("version", version).Int("rules", matcher.Len()).Msg("filters loaded from cache")
	return true
}

func (m *Manager) downloadCompileAndActivate(ctx context.Context) error {
	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	paths, err := m.downloadFiltersWithProgress(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to download filters")
		m.setStatus(FilterStatus{State: StateError, Message: "Download failed"})
		return err
	}

	if err := m.validateDownloadedFiles(ctx, paths); err != nil {
		log.Error().Err(err).Msg("downloaded filter validation failed")
		m.setStatus(FilterStatus{State: StateError, Message: "Invalid downloaded filters"})
		return err
	}

	m.setStatus(FilterStatus{State: StateLoading, Message: "Compiling filters..."})
	matcher, err := LoadFiles(paths)
	if err != nil {
		log.Error().Err(err).Msg("failed to compile filters")
		m.handleCompilationFailure()
		return err
	}

	version := m.setActiveMatcher(matcher, "Filters active")
	log.Info().Str("version", version).Int("rules", matcher.Len()).Msg("filters compiled and active")
	return nil
}

func (m *Manager) downloadFiltersWithProgress(ctx context.Context) ([]string, error) {
	m.setStatus(FilterStatus{State: StateLoading, Message: "Downloading filters..."})
	return m.downloader.DownloadFilters(ctx, func(p DownloadProgress) {
		msg := fmt.Sprintf("Downloading filters (%d/%d)...", p.Current, p.Total)
		m.setStatus(FilterStatus{State: StateLoading, Message: msg})
	})
}

func (m *Manager) handleCompilationFailure() {
	if m.hasActiveMatcher() {
		m.setStatus(FilterStatus{
			State:   StateActive,
			Message: "Filters active (update skipped)",
			Version: m.getCachedVersion(),
		})
		return
	}
	m.setStatus(FilterStatus{State: StateError, Message: "Compilation failed"})
}

func (m *Manager) setActiveMatcher(matcher *Matcher, message string) string {
	m.matcherMu.Lock()
	m.matcher = matcher
	m.matcherMu.Unlock()

	version := m.getCachedVersion()
	m.setStatus(FilterStatus{
		State:   StateActive,
		Message: message,
		Version: version,
	})
	return version
}

// checkStaleCacheAndUpdate triggers a background update when the cache is stale.
func (m *Manager) checkStaleCacheAndUpdate(ctx context.Context) {
	if !m.downloader.IsCacheStale(CacheMaxAge) {
		return
	}
	log := logging.FromContext(ctx)
	log.Info().Msg("filter cache is stale, checking for updates in background")
	go func() {
		if err := m.CheckForUpdates(ctx); err != nil {
			log.Warn().Err(err).Msg("background filter update check failed")
		}
	}()
}

func (m *Manager) getCachedVersion() string {
	manifest, err := m.downloader.GetCachedManifest()
	if err != nil || manifest == nil {
		return "unknown"
	}
	return manifest.Version
}

// Matcher returns the active matcher, or nil.
func (m *Manager) Matcher() *Matcher {
	m.matcherMu.RLock()
	defer m.matcherMu.RUnlock()
	return m.matcher
}

// CheckForUpdates downloads and activates newer rule lists. A broken update
// keeps the current rules.
func (m *Manager) CheckForUpdates(ctx context.Context) error {
	if !m.enabled.Load() || !m.autoUpdate {
		return nil
	}

	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	needsUpdate, err := m.downloader.NeedsUpdate(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to check for filter updates")
		return err
	}
	if !needsUpdate {
		log.Debug().Msg("filters are up to date")
		return nil
	}

	log.Info().Msg("filter update available, downloading")
	paths, err := m.downloader.DownloadFilters(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to download filter update: %w", err)
	}
	if err := m.validateDownloadedFiles(ctx, paths); err != nil {
		log.Warn().Err(err).Msg("invalid downloaded filters, keeping existing rules")
		return nil
	}

	matcher, err := LoadFiles(paths)
	if err != nil {
		log.Warn().Err(err).Msg("failed to compile updated filters, keeping existing rules")
		return nil
	}

	version := m.setActiveMatcher(matcher, "")
	m.setStatus(FilterStatus{
		State:   StateActive,
		Message: fmt.Sprintf("Filters updated to %s", version),
		Version: version,
	})
	log.Info().Str("version", version).Msg("filters updated successfully")
	return nil
}

func (m *Manager) hasActiveMatcher() bool {
	m.matcherMu.RLock()
	defer m.matcherMu.RUnlock()
	return m.matcher != nil
}

func (m *Manager) validateDownloadedFiles(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := validateRuleFile(path); err != nil {
			if quarantineErr := m.quarantineInvalidFile(ctx, path, "rule_validation_failed"); quarantineErr != nil {
				return fmt.Errorf("invalid filter file %s: %w (quarantine failed: %s)", path, err, quarantineErr.Error())
			}
			return fmt.Errorf("invalid filter file %s: %w", path, err)
		}
	}
	return nil
}

// validateRuleFile rejects a downloaded list that would compile to nothing
// useful: unparsable, empty, or with a rule lacking url-filter or action.
func validateRuleFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return fmt.Errorf("empty rule set")
	}
	for i, r := range rules {
		if r.Trigger.URLFilter == "" {
			return fmt.Errorf("rule[%d] missing trigger url-filter", i)
		}
		if r.Action.Type == "" {
			return fmt.Errorf("rule[%d] missing action type", i)
		}
	}
	return nil
}

func (m *Manager) quarantineInvalidFile(ctx context.Context, srcPath, cause string) error {
	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	quarantineDir := filepath.Join(m.jsonDir, "quarantine")
	if err := os.MkdirAll(quarantineDir, quarantinePerm); err != nil {
		return fmt.Errorf("create quarantine dir failed: %w", err)
	}

	quarantinePath := filepath.Join(
		quarantineDir,
		fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(srcPath)),
	)
	if err := os.Rename(srcPath, quarantinePath); err != nil {
		return fmt.Errorf("move to quarantine failed: %w", err)
	}

	log.Error().
		Str("path", srcPath).
		Str("quarantine_path", quarantinePath).
		Str("cause", cause).
		Msg("quarantined invalid filter file")
	return nil
}

// SetEnabled toggles filtering. Enabling without loaded rules starts a
// background load.
func (m *Manager) SetEnabled(ctx context.Context, enabled bool) {
	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	if m.enabled.Swap(enabled) == enabled {
		return
	}
	if !enabled {
		m.setStatus(FilterStatus{State: StateDisabled})
		log.Info().Msg("content filtering disabled")
		return
	}

	log.Info().Msg("content filtering enabled")
	if !m.hasActiveMatcher() {
		m.LoadAsync(ctx)
		return
	}
	m.setStatus(FilterStatus{
		State:   StateActive,
		Message: "Filters active",
		Version: m.getCachedVersion(),
	})
}

// IsEnabled returns whether content filtering is enabled.
func (m *Manager) IsEnabled() bool {
	return m.enabled.Load()
}

// Clear drops the active rules and the download cache.
func (m *Manager) Clear(ctx context.Context) error {
	log := logging.FromContext(ctx).With().
		Str("component", "filter-manager").
		Logger()

	m.matcherMu.Lock()
	m.matcher = nil
	m.matcherMu.Unlock()

	if err := m.downloader.ClearCache(); err != nil {
		log.Warn().Err(err).Msg("failed to clear download cache")
	}

	m.setStatus(FilterStatus{State: StateUninitialized})
	log.Info().Msg("filters cleared")
	return nil
}
