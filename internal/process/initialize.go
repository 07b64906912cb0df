package process

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/config"
	"github.com/bnema/pagecore/internal/infrastructure/ipc"
	"github.com/bnema/pagecore/internal/page"
)

type schemeRegistry struct {
	local  []string
	secure []string
}

type memoryPressure struct {
	warning  uint64
	critical uint64
}

// InitializeProcess applies the creation parameters sent by the UI process.
func (c *Coordinator) InitializeProcess(ctx context.Context, p ipc.ProcessCreationParameters) error {
	c.mu.Lock()
	c.schemes = schemeRegistry{
		local:  slices.Clone(p.URLSchemesRegisteredAsLocal),
		secure: slices.Clone(p.URLSchemesRegisteredAsSecure),
	}
	c.memoryPressure = memoryPressure{warning: p.MemoryPressure.WarningBytes, critical: p.MemoryPressure.CriticalBytes}
	c.adBlockDefault = p.AdBlockEnabled
	c.mu.Unlock()

	c.SetCacheModel(p.CacheModel)
	if p.DiskCacheDirectory != "" {
		if err := c.SetDiskCacheDirectory(ctx, p.DiskCacheDirectory); err != nil {
			return err
		}
		if c.disk != nil {
			if err := c.SetDiskCacheSize(ctx, p.DiskCacheSizeBytes); err != nil {
				return err
			}
		}
	}
	c.logger.Info().
		Str("cache_model", p.CacheModel.String()).
		Strs("local_schemes", p.URLSchemesRegisteredAsLocal).
		Strs("secure_schemes", p.URLSchemesRegisteredAsSecure).
		Msg("process initialized")
	return nil
}

// IsLocalScheme reports whether scheme was registered as local.
func (c *Coordinator) IsLocalScheme(scheme string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Contains(c.schemes.local, scheme)
}

// IsSecureScheme reports whether scheme was registered as secure.
func (c *Coordinator) IsSecureScheme(scheme string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Contains(c.schemes.secure, scheme)
}

// HandleMemoryPressure sheds caches once resident reaches the configured
// thresholds. It returns true when anything was released.
func (c *Coordinator) HandleMemoryPressure(resident uint64) bool {
	c.mu.Lock()
	mp := c.memoryPressure
	c.mu.Unlock()

	switch {
	case mp.critical > 0 && resident >= mp.critical:
		c.logger.Warn().Uint64("resident", resident).Msg("critical memory pressure")
		c.ClearResourceCaches()
		return true
	case mp.warning > 0 && resident >= mp.warning:
		c.logger.Info().Uint64("resident", resident).Msg("memory pressure")
		if c.memory != nil {
			c.memory.EvictResources()
		}
		return true
	}
	return false
}

type signalingBus interface {
	SetSignal(fn func())
	Dispatch(ctx context.Context) int
}

// ServeUIConnection answers configuration messages from the UI process on
// bus. A bus that can signal is dispatched from the run loop.
func (c *Coordinator) ServeUIConnection(bus port.MessageBus) {
	if sb, ok := bus.(signalingBus); ok {
		c.loop.OnSignal(func() { sb.Dispatch(c.ctx) })
		sb.SetSignal(c.loop.Signal)
	}
	bus.Handle(MsgInitializeProcess, func(ctx context.Context, msg port.Message) ([]byte, error) {
		p, err := ipc.DecodeProcessCreationParameters(msg.Payload)
		if err != nil {
			return nil, err
		}
		return nil, c.InitializeProcess(ctx, p)
	})
	bus.Handle(MsgSetCacheModel, func(_ context.Context, msg port.Message) ([]byte, error) {
		model, err := entity.ParseCacheModel(string(msg.Payload))
		if err != nil {
			return nil, err
		}
		c.SetCacheModel(model)
		return nil, nil
	})
	bus.Handle(MsgSetDiskCacheSize, func(ctx context.Context, msg port.Message) ([]byte, error) {
		size, err := strconv.ParseUint(string(msg.Payload), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("disk cache size: %w", err)
		}
		if err := c.SetDiskCacheSize(ctx, size); err != nil {
			return nil, err
		}
		quota, _ := c.DiskCacheSize()
		return strconv.AppendUint(nil, quota, 10), nil
	})
	bus.Handle(MsgClearCaches, func(context.Context, port.Message) ([]byte, error) {
		c.ClearResourceCaches()
		return nil, nil
	})
}

type filterToggler interface {
	SetEnabled(ctx context.Context, enabled bool)
}

// ApplyConfig pushes a loaded configuration into the coordinator. Pages
// already open keep their options; caches are resized immediately.
func (c *Coordinator) ApplyConfig(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	c.mu.Lock()
	c.pageOptions = page.Options{
		TileSize:           cfg.Rendering.TileSize,
		FastScroll:         cfg.Rendering.FastScroll,
		Interpolation:      cfg.Interpolation(),
		LineStep:           cfg.Input.LineStep,
		WheelLines:         cfg.Input.WheelLines,
		ContextMenuPolicy:  cfg.ContextMenuPolicy(),
		MiddlePanThreshold: cfg.Input.MiddleClickThreshold,
	}
	c.adBlockDefault = cfg.ContentFiltering.Enabled
	if cfg.IPC.HandshakeTimeout > 0 {
		c.handshakeTimeout = cfg.IPC.HandshakeTimeout
	}
	c.mu.Unlock()

	c.SetCacheModel(cfg.CacheModel())
	if toggler, ok := c.adFilter.(filterToggler); ok {
		toggler.SetEnabled(ctx, cfg.ContentFiltering.Enabled)
	}
	if cfg.Cache.DiskCacheDir == "" || c.disk == nil {
		return nil
	}
	if err := c.SetDiskCacheDirectory(ctx, cfg.Cache.DiskCacheDir); err != nil {
		return err
	}
	return c.SetDiskCacheSize(ctx, cfg.Cache.DiskCacheBytes)
}
