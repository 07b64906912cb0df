package process

import (
	"context"
	"fmt"

	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/metrics"
)

const bytesPerMB = 1024 * 1024

// applyFallbackDefaults puts the caches in a usable state when the host has
// not configured them before the first frame. Host configuration arriving
// later simply overrides it.
func (c *Coordinator) applyFallbackDefaults() {
	c.mu.Lock()
	modelSet, sizeSet, dir := c.cacheModelSet, c.diskSizeSet, c.diskCacheDir
	c.mu.Unlock()

	if !modelSet {
		c.logger.Debug().Msg("no cache model configured, using primary web browser")
		c.SetCacheModel(entity.CacheModelPrimaryWebBrowser)
	}
	if !sizeSet && dir != "" && c.disk != nil {
		if err := c.SetDiskCacheSize(c.ctx, 0); err != nil {
			c.logger.Warn().Err(err).Msg("fallback disk cache quota failed")
		}
	}
}

// SetCacheModel recomputes every cache capacity from model and applies them.
// Setting the current model again does nothing.
func (c *Coordinator) SetCacheModel(model entity.CacheModel) {
	c.mu.Lock()
	if c.cacheModelSet && c.cacheModel == model {
		c.mu.Unlock()
		return
	}
	caps := cachemodel.Calculate(model, c.ramMB)
	c.cacheModel = model
	c.cacheModelSet = true
	c.capacities = caps
	c.applyCapacitiesLocked(caps)
	c.mu.Unlock()

	c.logger.Info().
		Str("model", model.String()).
		Uint64("total_bytes", caps.TotalBytes).
		Int("page_cache", caps.PageCacheSize).
		Msg("cache model set")
}

// applyCapacitiesLocked runs under c.mu so no reader sees the memory cache
// and the page cache sized from different models.
func (c *Coordinator) applyCapacitiesLocked(caps cachemodel.Capacities) {
	if c.memory != nil {
		c.memory.SetCapacities(caps.MinDeadBytes, caps.MaxDeadBytes, caps.TotalBytes)
		c.memory.SetDeadDecodedDataDeletionInterval(caps.DeadDecodedDataDeletionInterval)
	}
	if c.pageCache != nil {
		c.pageCache.SetCapacity(caps.PageCacheSize)
	}
	c.metrics.SetCacheCapacity(metrics.CacheTotal, float64(caps.TotalBytes))
	c.metrics.SetCacheCapacity(metrics.CacheMinDead, float64(caps.MinDeadBytes))
	c.metrics.SetCacheCapacity(metrics.CacheMaxDead, float64(caps.MaxDeadBytes))
	c.metrics.SetCacheCapacity(metrics.CachePages, float64(caps.PageCacheSize))
}

// CacheModel returns the active model and whether one was ever set.
func (c *Coordinator) CacheModel() (entity.CacheModel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cacheModel, c.cacheModelSet
}

// Capacities returns the capacities derived from the active model.
func (c *Coordinator) Capacities() cachemodel.Capacities {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacities
}

// ClearResourceCaches empties the memory caches. Switching to the document
// viewer model drops all dead capacity; the previous model is then restored.
func (c *Coordinator) ClearResourceCaches() {
	c.mu.Lock()
	previous, set := c.cacheModel, c.cacheModelSet
	viewer := cachemodel.Calculate(entity.CacheModelDocumentViewer, c.ramMB)
	c.applyCapacitiesLocked(viewer)
	if c.memory != nil {
		c.memory.EvictResources()
	}
	if set {
		c.applyCapacitiesLocked(c.capacities)
	}
	c.mu.Unlock()

	c.logger.Info().Str("model", previous.String()).Msg("resource caches cleared")
}

// SetDiskCacheSize sets the disk quota to requested bytes, capped at half
// the free space of the cache volume. A zero request takes the default
// quota of the active model. The first call also opens the cache directory.
func (c *Coordinator) SetDiskCacheSize(ctx context.Context, requested uint64) error {
	if c.disk == nil {
		return fmt.Errorf("disk cache: not available")
	}

	c.mu.Lock()
	dir, configured, model := c.diskCacheDir, c.diskSizeSet, c.cacheModel
	if !c.cacheModelSet {
		model = entity.CacheModelPrimaryWebBrowser
	}
	c.mu.Unlock()
	if dir == "" {
		return fmt.Errorf("disk cache: no directory")
	}

	free, err := c.freeSpace(dir)
	if err != nil {
		return fmt.Errorf("disk cache free space: %w", err)
	}
	if requested == 0 {
		requested = cachemodel.DiskCapacity(model, free/bytesPerMB)
	}
	size := min(requested, free/2)

	if !configured {
		if err := c.disk.Configure(ctx, dir); err != nil {
			return fmt.Errorf("disk cache configure: %w", err)
		}
	}
	if err := c.disk.SetQuota(ctx, size); err != nil {
		return fmt.Errorf("disk cache quota: %w", err)
	}

	c.mu.Lock()
	c.diskCacheSize = size
	c.diskSizeSet = true
	c.mu.Unlock()

	c.metrics.SetCacheCapacity(metrics.CacheDisk, float64(size))
	c.logger.Info().
		Str("dir", dir).
		Uint64("requested", requested).
		Uint64("free", free).
		Uint64("quota", size).
		Msg("disk cache size set")
	return nil
}

// SetDiskCacheDirectory changes the directory used the next time the disk
// cache is configured. An already open cache is reopened in dir.
func (c *Coordinator) SetDiskCacheDirectory(ctx context.Context, dir string) error {
	c.mu.Lock()
	if c.diskCacheDir == dir {
		c.mu.Unlock()
		return nil
	}
	c.diskCacheDir = dir
	configured := c.diskSizeSet
	c.mu.Unlock()

	if configured && c.disk != nil && dir != "" {
		return c.disk.Configure(ctx, dir)
	}
	return nil
}

// DiskCacheSize returns the quota and whether it was ever set.
func (c *Coordinator) DiskCacheSize() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.diskCacheSize, c.diskSizeSet
}
