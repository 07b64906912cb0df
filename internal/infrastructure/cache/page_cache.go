package cache

import (
	"github.com/bnema/pagecore/internal/application/port"
)

// PageCache is the process-wide back/forward cache. Its capacity is the page
// cache size of the current cache model.
type PageCache struct {
	lru *LRU[string, port.CachedPage]
}

var _ port.PageCache = (*PageCache)(nil)

// NewPageCache returns an empty, disabled page cache.
func NewPageCache() *PageCache {
	return &PageCache{lru: NewLRU[string, port.CachedPage](0)}
}

func (c *PageCache) SetCapacity(pages int)                   { c.lru.SetCapacity(pages) }
func (c *PageCache) Capacity() int                           { return c.lru.Capacity() }
func (c *PageCache) Put(key string, page port.CachedPage)    { c.lru.Set(key, page) }
func (c *PageCache) Take(key string) (port.CachedPage, bool) { return c.lru.Take(key) }
func (c *PageCache) Clear()                                  { c.lru.Clear() }
func (c *PageCache) Len() int                                { return c.lru.Len() }
