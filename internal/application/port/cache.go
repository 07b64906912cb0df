package port

import (
	"context"
	"time"

	"github.com/bnema/pagecore/internal/domain/entity"
)

// Cache is a generic cache interface for storing key-value pairs.
// Implementations should be thread-safe.
type Cache[K comparable, V any] interface {
	// Get retrieves a value by key. Returns the value and true if found,
	// or the zero value and false if not found.
	Get(key K) (V, bool)

	// Set stores a value for the given key. If the cache is at capacity,
	// the least recently used entry may be evicted.
	Set(key K, value V)

	// Remove deletes a key from the cache.
	Remove(key K)

	// Len returns the number of items currently in the cache.
	Len() int
}

// MemoryCache is the process-wide in-memory resource cache. Its capacities are
// only ever written by the process coordinator from the active cache model.
type MemoryCache interface {
	SetCapacities(minDeadBytes, maxDeadBytes, totalBytes uint64)
	SetDeadDecodedDataDeletionInterval(interval time.Duration)
	// EvictResources drops every resource that is not in use.
	EvictResources()
}

// CachedPage is the state kept for a history item left by navigation.
type CachedPage struct {
	URL    string
	Title  string
	Scroll entity.Point
}

// PageCache is the process-wide back/forward cache, sized in pages. A zero
// capacity disables it.
type PageCache interface {
	SetCapacity(pages int)
	Capacity() int
	Put(key string, page CachedPage)
	// Take removes and returns the entry for key.
	Take(key string) (CachedPage, bool)
	Clear()
}

// DiskCache is the persistent HTTP resource cache.
type DiskCache interface {
	// Configure (re)opens the cache in dir.
	Configure(ctx context.Context, dir string) error
	// SetQuota adjusts the size budget, evicting if needed.
	SetQuota(ctx context.Context, bytes uint64) error
	Quota() uint64
}
