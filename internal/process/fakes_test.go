package process

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

type capacitySet struct {
	minDead, maxDead, total uint64
}

type recordingMemoryCache struct {
	mu        sync.Mutex
	sets      []capacitySet
	intervals []time.Duration
	evictions int
}

func (m *recordingMemoryCache) SetCapacities(minDead, maxDead, total uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = append(m.sets, capacitySet{minDead, maxDead, total})
}

func (m *recordingMemoryCache) SetDeadDecodedDataDeletionInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intervals = append(m.intervals, d)
}

func (m *recordingMemoryCache) EvictResources() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictions++
}

func (m *recordingMemoryCache) last() capacitySet {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sets) == 0 {
		return capacitySet{}
	}
	return m.sets[len(m.sets)-1]
}

type recordingPageCache struct {
	capacity int
	pages    map[string]port.CachedPage
}

func (c *recordingPageCache) SetCapacity(n int) { c.capacity = n }
func (c *recordingPageCache) Capacity() int     { return c.capacity }
func (c *recordingPageCache) Put(key string, p port.CachedPage) {
	if c.pages == nil {
		c.pages = map[string]port.CachedPage{}
	}
	c.pages[key] = p
}
func (c *recordingPageCache) Take(key string) (port.CachedPage, bool) {
	p, ok := c.pages[key]
	delete(c.pages, key)
	return p, ok
}
func (c *recordingPageCache) Clear() { clear(c.pages) }

type recordingDiskCache struct {
	configured []string
	quota      uint64
	quotas     []uint64
}

func (d *recordingDiskCache) Configure(_ context.Context, dir string) error {
	d.configured = append(d.configured, dir)
	return nil
}

func (d *recordingDiskCache) SetQuota(_ context.Context, bytes uint64) error {
	d.quota = bytes
	d.quotas = append(d.quotas, bytes)
	return nil
}

func (d *recordingDiskCache) Quota() uint64 { return d.quota }

type staticFilter struct {
	blocked map[string]bool
	calls   int
}

func (f *staticFilter) ShouldBlock(url, _ string) bool {
	f.calls++
	return f.blocked[url]
}

type nopContent struct{ closed bool }

func (c *nopContent) MainFrame() port.ContentFrame             { return nil }
func (c *nopContent) FocusedFrame() port.ContentFrame          { return nil }
func (c *nopContent) SetActive(bool)                           {}
func (c *nopContent) SetFocused(bool)                          {}
func (c *nopContent) PageScaleFactor() float64                 { return 1 }
func (c *nopContent) SetPageScaleFactor(float64, entity.Point) {}
func (c *nopContent) SetInitialFocus(bool) bool                { return false }
func (c *nopContent) AdvanceFocus(bool) bool                   { return false }
func (c *nopContent) ClearFocus()                              {}
func (c *nopContent) DragController() port.DragController      { return nil }
func (c *nopContent) WillEnterFullscreen(port.Element)         {}
func (c *nopContent) DidEnterFullscreen(port.Element)          {}
func (c *nopContent) WillExitFullscreen(port.Element)          {}
func (c *nopContent) DidExitFullscreen(port.Element)           {}
func (c *nopContent) Close()                                   { c.closed = true }

type nopEngine struct {
	pages []*nopContent
}

func (e *nopEngine) NewPage(port.PageConfig) (port.ContentPage, error) {
	c := &nopContent{}
	e.pages = append(e.pages, c)
	return c, nil
}
