// Package cachemodel derives cache capacities from a cache model. Every
// function here is pure: the same inputs always give the same capacities.
package cachemodel

import (
	"time"

	"github.com/bnema/pagecore/internal/domain/entity"
)

const (
	mb = 1024 * 1024
	gb = 1024 * mb

	// minimumTotalCapacity applies on machines below the smallest RAM tier.
	minimumTotalCapacity = 8 * mb
	// minimumPrimaryMaxDead keeps a floor under the dead-resource budget of
	// the primary browser model.
	minimumPrimaryMaxDead = 24
)

// Capacities is the derived memory and page cache sizing of a model.
type Capacities struct {
	TotalBytes   uint64
	MinDeadBytes uint64
	MaxDeadBytes uint64
	// PageCacheSize is the back/forward cache capacity in pages.
	PageCacheSize int
	// DeadDecodedDataDeletionInterval is zero when decoded data of dead
	// resources is kept until evicted.
	DeadDecodedDataDeletionInterval time.Duration
}

// Calculate returns the capacities of model on a machine with ramMB of RAM.
func Calculate(model entity.CacheModel, ramMB uint64) Capacities {
	var c Capacities

	switch model {
	case entity.CacheModelDocumentViewer:
		c.TotalBytes = tierTotal(ramMB, 128*mb, 96*mb, 32*mb, 16*mb)
	case entity.CacheModelDocumentBrowser:
		c.PageCacheSize = pageCacheForRAM(ramMB)
		c.TotalBytes = tierTotal(ramMB, 128*mb, 96*mb, 32*mb, 16*mb)
		c.MinDeadBytes = c.TotalBytes / 8
		c.MaxDeadBytes = c.TotalBytes / 4
	case entity.CacheModelPrimaryWebBrowser:
		c.PageCacheSize = pageCacheForRAM(ramMB)
		c.TotalBytes = tierTotal(ramMB, 512*mb, 256*mb, 128*mb, 64*mb)
		c.MinDeadBytes = c.TotalBytes / 4
		c.MaxDeadBytes = max(c.TotalBytes/2, minimumPrimaryMaxDead)
		c.DeadDecodedDataDeletionInterval = 60 * time.Second
	}

	return c
}

// DiskCapacity returns the default disk cache quota in bytes for model given
// the free space of the cache volume in megabytes.
func DiskCapacity(model entity.CacheModel, freeDiskMB uint64) uint64 {
	switch model {
	case entity.CacheModelDocumentBrowser:
		switch {
		case freeDiskMB >= 16384:
			return 75 * mb
		case freeDiskMB >= 8192:
			return 40 * mb
		case freeDiskMB >= 4096:
			return 30 * mb
		default:
			return 20 * mb
		}
	case entity.CacheModelPrimaryWebBrowser:
		switch {
		case freeDiskMB >= 16384:
			return 1 * gb
		case freeDiskMB >= 8192:
			return 500 * mb
		case freeDiskMB >= 4096:
			return 250 * mb
		case freeDiskMB >= 2048:
			return 200 * mb
		case freeDiskMB >= 1024:
			return 150 * mb
		default:
			return 100 * mb
		}
	default:
		return 0
	}
}

func tierTotal(ramMB uint64, atLeast4G, atLeast2G, atLeast1G, atLeast512M uint64) uint64 {
	switch {
	case ramMB >= 4096:
		return atLeast4G
	case ramMB >= 2048:
		return atLeast2G
	case ramMB >= 1024:
		return atLeast1G
	case ramMB >= 512:
		return atLeast512M
	default:
		return minimumTotalCapacity
	}
}

func pageCacheForRAM(ramMB uint64) int {
	switch {
	case ramMB >= 512:
		return 2
	case ramMB >= 256:
		return 1
	default:
		return 0
	}
}
