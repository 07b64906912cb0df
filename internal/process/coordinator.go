// Package process holds the coordinator of a web content process: the page
// and frame tables, cache sizing from the cache model, the disk cache quota,
// request filtering and the run loop every page session executes on.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
	"weak"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/diskcache"
	"github.com/bnema/pagecore/internal/infrastructure/metrics"
	"github.com/bnema/pagecore/internal/logging"
	"github.com/bnema/pagecore/internal/page"
	"github.com/bnema/pagecore/internal/ui/mainloop"
)

var (
	// ErrPageExists is returned when a page id is already registered.
	ErrPageExists = errors.New("page already exists")
	// ErrUnknownPage is returned for ids not in the page table.
	ErrUnknownPage = errors.New("unknown page")
	// ErrTerminated is returned after Terminate.
	ErrTerminated = errors.New("process terminated")
)

// DefaultHandshakeTimeout bounds a connection handshake when none is set.
const DefaultHandshakeTimeout = 5 * time.Second

// Options are the collaborators of a Coordinator. Only Engine is required.
type Options struct {
	Engine      port.Engine
	MemoryCache port.MemoryCache
	PageCache   port.PageCache
	DiskCache   port.DiskCache
	AdFilter    port.AdFilter

	// Connect opens the bus to a peer process.
	Connect          func(ctx context.Context, kind ConnectionKind) (port.MessageBus, error)
	HandshakeTimeout time.Duration
	// Fatal ends the process after an unrecoverable error. It defaults to
	// logging at fatal level, which exits.
	Fatal func(err error)

	Registerer prometheus.Registerer
	// RAMMB overrides the detected system memory.
	RAMMB uint64
	// FreeSpace reports free bytes on the volume of path.
	FreeSpace    func(path string) (uint64, error)
	DiskCacheDir string

	// PageOptions apply to pages created afterwards.
	PageOptions page.Options
	// AdBlockEnabled is the filtering default of new pages.
	AdBlockEnabled bool
}

// CreatePageParams describe a new page.
type CreatePageParams struct {
	ID          entity.PageID
	MainFrameID entity.FrameID
	Host        port.Host
}

// Coordinator owns the page and frame tables of the process. Page sessions
// run on its run loop; table and cache state may be read from any goroutine.
type Coordinator struct {
	ctx       context.Context
	logger    *zerolog.Logger
	sessionID uuid.UUID
	metrics   *metrics.Metrics

	engine    port.Engine
	memory    port.MemoryCache
	pageCache port.PageCache
	disk      port.DiskCache
	adFilter  port.AdFilter
	connect   func(ctx context.Context, kind ConnectionKind) (port.MessageBus, error)
	fatal     func(err error)
	ramMB     uint64
	freeSpace func(path string) (uint64, error)

	loop    *mainloop.RunLoop
	repaint *mainloop.Coalescer[entity.PageID]

	mu               sync.Mutex
	pages            map[entity.PageID]*page.Session
	frames           map[entity.FrameID]weak.Pointer[page.Frame]
	empty            bool
	onLastPageClosed []func()
	terminated       bool

	pageOptions      page.Options
	adBlockDefault   bool
	handshakeTimeout time.Duration

	cacheModel    entity.CacheModel
	cacheModelSet bool
	capacities    cachemodel.Capacities
	diskCacheDir  string
	diskCacheSize uint64
	diskSizeSet   bool

	schemes        schemeRegistry
	memoryPressure memoryPressure

	connMu      sync.Mutex
	connections map[ConnectionKind]port.MessageBus
}

// New builds a coordinator. ctx carries the logger used for the whole
// process.
func New(ctx context.Context, opts Options) (*Coordinator, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("process coordinator: no engine")
	}
	sessionID := uuid.New()
	ctx = logging.WithSession(logging.WithComponent(ctx, "process"), sessionID.String())
	logger := logging.FromContext(ctx)

	c := &Coordinator{
		ctx:              ctx,
		logger:           logger,
		sessionID:        sessionID,
		metrics:          metrics.New(opts.Registerer),
		engine:           opts.Engine,
		memory:           opts.MemoryCache,
		pageCache:        opts.PageCache,
		disk:             opts.DiskCache,
		adFilter:         opts.AdFilter,
		connect:          opts.Connect,
		fatal:            opts.Fatal,
		ramMB:            opts.RAMMB,
		freeSpace:        opts.FreeSpace,
		loop:             mainloop.New(*logger),
		pages:            make(map[entity.PageID]*page.Session),
		frames:           make(map[entity.FrameID]weak.Pointer[page.Frame]),
		empty:            true,
		pageOptions:      opts.PageOptions,
		adBlockDefault:   opts.AdBlockEnabled,
		handshakeTimeout: opts.HandshakeTimeout,
		diskCacheDir:     opts.DiskCacheDir,
		connections:      make(map[ConnectionKind]port.MessageBus),
	}
	if c.ramMB == 0 {
		c.ramMB = cachemodel.SystemRAMMB()
	}
	if c.freeSpace == nil {
		c.freeSpace = diskcache.FreeSpace
	}
	if c.handshakeTimeout <= 0 {
		c.handshakeTimeout = DefaultHandshakeTimeout
	}
	if c.fatal == nil {
		c.fatal = func(err error) {
			logger.Fatal().Err(err).Msg("unrecoverable process error")
		}
	}
	c.repaint = mainloop.NewCoalescer[entity.PageID](c.loop.Post)

	logger.Debug().Uint64("ram_mb", c.ramMB).Msg("process coordinator created")
	return c, nil
}

// SessionID identifies this process instance to its peers.
func (c *Coordinator) SessionID() uuid.UUID { return c.sessionID }

// Metrics returns the collectors of the coordinator.
func (c *Coordinator) Metrics() *metrics.Metrics { return c.metrics }

// CreateWebPage builds a page session and registers it with its main frame.
// Cache defaults are applied first if the host has not configured them.
func (c *Coordinator) CreateWebPage(p CreatePageParams) (*page.Session, error) {
	c.mu.Lock()
	if c.terminated {
		c.mu.Unlock()
		return nil, ErrTerminated
	}
	if _, ok := c.pages[p.ID]; ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %d", ErrPageExists, p.ID)
	}
	firstFrame := len(c.frames) == 0
	opts := c.pageOptions
	opts.AdBlockEnabled = c.adBlockDefault
	c.mu.Unlock()

	if firstFrame {
		c.applyFallbackDefaults()
	}

	s, err := page.New(c.ctx, page.Params{
		ID:          p.ID,
		MainFrameID: p.MainFrameID,
		Engine:      c.engine,
		Policy:      c,
		Host:        p.Host,
		PageCache:   c.pageCache,
		Yield:       c.Yield,
		Options:     opts,
		Metrics:     c.metrics,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.pages[p.ID] = s
	c.frames[p.MainFrameID] = weak.Make(s.MainFrame())
	c.empty = false
	pages, frames := len(c.pages), len(c.frames)
	c.mu.Unlock()

	c.metrics.SetPages(pages)
	c.metrics.SetFrames(frames)
	c.logger.Info().Uint64("page_id", uint64(p.ID)).Uint64("frame_id", uint64(p.MainFrameID)).Msg("web page created")
	return s, nil
}

// Page returns the session registered under id.
func (c *Coordinator) Page(id entity.PageID) (*page.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.pages[id]
	return s, ok
}

// Pages returns every registered session.
func (c *Coordinator) Pages() []*page.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*page.Session, 0, len(c.pages))
	for _, s := range c.pages {
		out = append(out, s)
	}
	return out
}

// RemoveWebPage closes the session and drops it and its frames from the
// tables.
func (c *Coordinator) RemoveWebPage(id entity.PageID) error {
	c.mu.Lock()
	s, ok := c.pages[id]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownPage, id)
	}
	delete(c.pages, id)
	for fid, wp := range c.frames {
		if f := wp.Value(); f == nil || f.Page() == s {
			delete(c.frames, fid)
		}
	}
	c.mu.Unlock()

	c.repaint.Cancel(id)
	s.Close()
	c.logger.Info().Uint64("page_id", uint64(id)).Msg("web page removed")
	c.afterRemoval()
	return nil
}

// AddWebFrame registers a subframe of page pageID.
func (c *Coordinator) AddWebFrame(pageID entity.PageID, frameID entity.FrameID) (*page.Frame, error) {
	c.mu.Lock()
	s, ok := c.pages[pageID]
	firstFrame := len(c.frames) == 0
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPage, pageID)
	}
	if firstFrame {
		c.applyFallbackDefaults()
	}

	f := s.AddSubframe(frameID)
	c.mu.Lock()
	c.frames[frameID] = weak.Make(f)
	frames := len(c.frames)
	c.mu.Unlock()

	c.metrics.SetFrames(frames)
	c.logger.Debug().Uint64("page_id", uint64(pageID)).Uint64("frame_id", uint64(frameID)).Msg("web frame added")
	return f, nil
}

// RemoveWebFrame drops frameID from the frame table and its page. Removing
// a main frame only unregisters it; the page keeps it until removed.
func (c *Coordinator) RemoveWebFrame(frameID entity.FrameID) {
	c.mu.Lock()
	wp, ok := c.frames[frameID]
	delete(c.frames, frameID)
	c.mu.Unlock()
	if !ok {
		return
	}
	if f := wp.Value(); f != nil && !f.IsMain() {
		f.Page().RemoveSubframe(frameID)
	}
	c.afterRemoval()
}

// Frame resolves a frame id. Frames whose page is gone resolve to nil.
func (c *Coordinator) Frame(id entity.FrameID) *page.Frame {
	c.mu.Lock()
	wp, ok := c.frames[id]
	c.mu.Unlock()
	if !ok {
		return nil
	}
	f := wp.Value()
	if f == nil || f.Page().Closed() {
		return nil
	}
	return f
}

// OnLastPageClosed registers fn to run each time the page and frame tables
// become empty.
func (c *Coordinator) OnLastPageClosed(fn func()) {
	c.mu.Lock()
	c.onLastPageClosed = append(c.onLastPageClosed, fn)
	c.mu.Unlock()
}

func (c *Coordinator) afterRemoval() {
	c.mu.Lock()
	pages, frames := len(c.pages), len(c.frames)
	fire := !c.empty && !c.terminated && pages == 0 && frames == 0
	if fire {
		c.empty = true
	}
	callbacks := append([]func(){}, c.onLastPageClosed...)
	c.mu.Unlock()

	c.metrics.SetPages(pages)
	c.metrics.SetFrames(frames)
	if !fire {
		return
	}
	c.metrics.IncLastPageClosed()
	c.logger.Info().Msg("last page closed")
	for _, fn := range callbacks {
		fn()
	}
}

// SetAdBlockEnabled toggles request filtering for one page.
func (c *Coordinator) SetAdBlockEnabled(id entity.PageID, enabled bool) error {
	s, ok := c.Page(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPage, id)
	}
	s.SetAdBlockEnabled(enabled)
	return nil
}

// ShouldAllowRequest implements port.RequestPolicy. Requests of unknown
// frames and of pages with filtering off are allowed.
func (c *Coordinator) ShouldAllowRequest(url, mainDocumentURL string, frameID entity.FrameID) bool {
	f := c.Frame(frameID)
	if f == nil || c.adFilter == nil {
		return true
	}
	if !f.Page().AdBlockEnabled() {
		return true
	}
	if !c.adFilter.ShouldBlock(url, mainDocumentURL) {
		return true
	}
	c.metrics.IncBlocked()
	c.logger.Debug().Str("url", url).Str("document", mainDocumentURL).Msg("request blocked")
	return false
}

// Run drives the run loop until ctx is done.
func (c *Coordinator) Run(ctx context.Context) error {
	return c.loop.Run(ctx)
}

// Post queues fn on the run loop.
func (c *Coordinator) Post(fn func()) { c.loop.Post(fn) }

// Loop returns the run loop.
func (c *Coordinator) Loop() *mainloop.RunLoop { return c.loop }

// Yield runs work queued while a constrained loop, such as a drag, held the
// run loop.
func (c *Coordinator) Yield() { c.loop.RunPending() }

// RequestRepaint draws page id onto target on the next loop iteration.
// Requests for the same page before that run merge into one draw.
func (c *Coordinator) RequestRepaint(id entity.PageID, target port.PlatformTarget) {
	c.repaint.Post(id, func() {
		s, ok := c.Page(id)
		if !ok {
			return
		}
		size := s.VisibleSize()
		s.Draw(target, 0, 0, size.Width, size.Height, true)
	})
}

// Terminate closes every page and connection. Later calls to CreateWebPage
// fail with ErrTerminated.
func (c *Coordinator) Terminate() {
	c.mu.Lock()
	if c.terminated {
		c.mu.Unlock()
		return
	}
	c.terminated = true
	pages := c.pages
	c.pages = make(map[entity.PageID]*page.Session)
	clear(c.frames)
	c.mu.Unlock()

	c.repaint.Destroy()
	for _, s := range pages {
		s.Close()
	}
	c.closeConnections()
	if closer, ok := c.disk.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("closing disk cache failed")
		}
	}
	c.metrics.SetPages(0)
	c.metrics.SetFrames(0)
	c.logger.Info().Int("pages", len(pages)).Msg("process terminated")
}
