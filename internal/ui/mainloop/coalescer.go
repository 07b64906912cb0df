package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one run of the latest
// callback. It is used to fold repeated repaint requests of a page into a
// single draw.
type Coalescer[K comparable] struct {
	mu        sync.Mutex
	callbacks map[K]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer schedules merged work through post, usually RunLoop.Post.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer[K]{callbacks: make(map[K]func()), post: post}
}

// Post replaces the callback for key and schedules it unless a run is
// already pending.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, pending := c.callbacks[key]
	c.callbacks[key] = fn
	c.mu.Unlock()
	if pending {
		return
	}

	c.post(func() {
		c.mu.Lock()
		fn := c.callbacks[key]
		delete(c.callbacks, key)
		destroyed := c.destroyed
		c.mu.Unlock()

		if fn != nil && !destroyed {
			fn()
		}
	})
}

// Pending returns how many keys wait for their run.
func (c *Coalescer[K]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.callbacks)
}

// Cancel drops the pending callback for key.
func (c *Coalescer[K]) Cancel(key K) {
	c.mu.Lock()
	delete(c.callbacks, key)
	c.mu.Unlock()
}

// Destroy drops pending work; later posts are ignored.
func (c *Coalescer[K]) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.callbacks)
	c.mu.Unlock()
}
