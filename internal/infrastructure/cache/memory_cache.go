package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
)

// MemoryStats is a snapshot of memory cache accounting.
type MemoryStats struct {
	Resources  int
	LiveBytes  uint64
	DeadBytes  uint64
	TotalLimit uint64
	MinDead    uint64
	MaxDead    uint64
}

type resource struct {
	key        string
	data       []byte
	live       bool
	lastAccess time.Time
	deadElem   *list.Element
}

// MemoryCache is the byte-budgeted cache of decoded subresources. Live
// resources are in use by a document; dead ones are kept for reuse and are
// the only ones pruning removes.
type MemoryCache struct {
	mu     sync.Mutex
	logger zerolog.Logger
	now    func() time.Time

	resources map[string]*resource
	dead      *list.List // front is most recently used
	liveBytes uint64
	deadBytes uint64

	total, minDead, maxDead uint64
	deadDataInterval        time.Duration
}

var _ port.MemoryCache = (*MemoryCache)(nil)

// NewMemoryCache returns an empty cache with no capacity. Capacities come
// from the cache model.
func NewMemoryCache(logger zerolog.Logger) *MemoryCache {
	return &MemoryCache{
		logger:    logger.With().Str("component", "memory-cache").Logger(),
		now:       time.Now,
		resources: make(map[string]*resource),
		dead:      list.New(),
	}
}

// SetCapacities sets the budgets and prunes to them.
func (c *MemoryCache) SetCapacities(minDead, maxDead, total uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minDead, c.maxDead, c.total = minDead, maxDead, total
	c.pruneLocked()
}

// SetDeadDecodedDataDeletionInterval drops dead resources idle for longer
// than d on the next Prune. Zero keeps them until evicted for room.
func (c *MemoryCache) SetDeadDecodedDataDeletionInterval(d time.Duration) {
	c.mu.Lock()
	c.deadDataInterval = d
	c.mu.Unlock()
}

// Add stores data as a live resource. Data larger than the total budget is
// not cached.
func (c *MemoryCache) Add(key string, data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := uint64(len(data))
	if size > c.total {
		return false
	}
	c.removeLocked(key)
	c.resources[key] = &resource{key: key, data: data, live: true, lastAccess: c.now()}
	c.liveBytes += size
	c.pruneLocked()
	_, ok := c.resources[key]
	return ok
}

// Get returns a resource and revives it.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.resources[key]
	if !ok {
		return nil, false
	}
	if !r.live {
		c.dead.Remove(r.deadElem)
		r.deadElem = nil
		r.live = true
		c.deadBytes -= uint64(len(r.data))
		c.liveBytes += uint64(len(r.data))
	}
	r.lastAccess = c.now()
	return r.data, true
}

// MarkDead records that no document uses key any more.
func (c *MemoryCache) MarkDead(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.resources[key]
	if !ok || !r.live {
		return
	}
	r.live = false
	r.lastAccess = c.now()
	r.deadElem = c.dead.PushFront(r)
	c.liveBytes -= uint64(len(r.data))
	c.deadBytes += uint64(len(r.data))
	c.pruneLocked()
}

// Prune evicts dead resources down to the budgets.
func (c *MemoryCache) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
}

// EvictResources drops every dead resource.
func (c *MemoryCache) EvictResources() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.dead.Len()
	for c.evictOldestDeadLocked() {
	}
	c.logger.Debug().Int("resources", n).Msg("evicted dead resources")
}

// Stats returns the current accounting.
func (c *MemoryCache) Stats() MemoryStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MemoryStats{
		Resources:  len(c.resources),
		LiveBytes:  c.liveBytes,
		DeadBytes:  c.deadBytes,
		TotalLimit: c.total,
		MinDead:    c.minDead,
		MaxDead:    c.maxDead,
	}
}

// pruneLocked keeps dead bytes under maxDead and, while over the total
// budget, evicts dead resources but never below minDead.
func (c *MemoryCache) pruneLocked() {
	if c.deadDataInterval > 0 {
		cutoff := c.now().Add(-c.deadDataInterval)
		for e := c.dead.Back(); e != nil; {
			prev := e.Prev()
			if r := e.Value.(*resource); r.lastAccess.Before(cutoff) {
				c.removeLocked(r.key)
			}
			e = prev
		}
	}
	for c.deadBytes > c.maxDead {
		if !c.evictOldestDeadLocked() {
			return
		}
	}
	for c.liveBytes+c.deadBytes > c.total && c.deadBytes > c.minDead {
		if !c.evictOldestDeadLocked() {
			return
		}
	}
}

func (c *MemoryCache) evictOldestDeadLocked() bool {
	e := c.dead.Back()
	if e == nil {
		return false
	}
	c.removeLocked(e.Value.(*resource).key)
	return true
}

func (c *MemoryCache) removeLocked(key string) {
	r, ok := c.resources[key]
	if !ok {
		return
	}
	size := uint64(len(r.data))
	if r.live {
		c.liveBytes -= size
	} else {
		c.dead.Remove(r.deadElem)
		c.deadBytes -= size
	}
	delete(c.resources, key)
}
