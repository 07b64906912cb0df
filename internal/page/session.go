// Package page implements the per-tab page session: the facade combining the
// draw surface, print session, input dispatcher, load bookkeeping, autofill,
// fullscreen and drag state of one page.
package page

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/metrics"
	"github.com/bnema/pagecore/internal/infrastructure/printing"
	"github.com/bnema/pagecore/internal/infrastructure/surface"
	"github.com/bnema/pagecore/internal/logging"
	"github.com/bnema/pagecore/internal/ui/input"
)

// ErrClosed is returned by operations on a closed session.
var ErrClosed = errors.New("page session closed")

const (
	// DefaultWheelLines is how many lines one wheel notch scrolls.
	DefaultWheelLines = 3
	// ZoomStep is the scale change per wheel notch with Control held.
	ZoomStep = 0.05
	// MinScale and MaxScale bound wheel zoom.
	MinScale = 0.25
	MaxScale = 5.0
	// progressInterval throttles progress notifications to the host.
	progressInterval = 100 * time.Millisecond
)

// Options tunes a session. Zero values select defaults.
type Options struct {
	TileSize           int
	FastScroll         bool
	Interpolation      port.InterpolationQuality
	LineStep           int
	WheelLines         float64
	ContextMenuPolicy  entity.ContextMenuPolicy
	MiddlePanThreshold int
	AdBlockEnabled     bool
}

// Params are the collaborators of a session.
type Params struct {
	ID          entity.PageID
	MainFrameID entity.FrameID
	Engine      port.Engine
	Policy      port.RequestPolicy
	Host        port.Host
	// PageCache is the shared back/forward cache; nil disables it.
	PageCache port.PageCache
	// Yield flushes work queued on the run loop.
	Yield   func()
	Options Options
	Metrics *metrics.Metrics
}

// AutofillElements is the login form pair found around a focused input.
type AutofillElements struct {
	Username   port.Element
	Password   port.Element
	FormAction string
}

// Session is the per-tab state. All methods run on the run loop.
type Session struct {
	ctx     context.Context
	logger  *zerolog.Logger
	id      entity.PageID
	content port.ContentPage
	host    port.Host
	opts    Options
	metrics *metrics.Metrics
	yield   func()

	mainFrame *Frame
	frames    map[entity.FrameID]*Frame

	drawSurface  *surface.Surface
	printSession *printing.Session
	input        *input.Dispatcher

	visibleSize                   entity.Size
	isActive                      bool
	isVisible                     bool
	mainFrameIsScrollable         bool
	alwaysShowsHorizontalScroller bool
	alwaysShowsVerticalScroller   bool
	adBlockEnabled                bool

	cursor entity.CursorState
	drag   entity.DragState

	resources           map[entity.ResourceRequestID]struct{}
	lastNavigationID    entity.NavigationID
	pendingNavigationID entity.NavigationID
	loadState           entity.LoadState
	committedURL        string
	title               string
	progress            *rate.Limiter

	history     *BackForwardList
	pageCache   port.PageCache
	pendingNav  navigationKind
	pendingItem HistoryItem
	restore     *port.CachedPage

	autofill   *AutofillElements
	fullscreen port.Element

	closed bool
}

func newProgressLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(progressInterval), 1)
}

// New creates a session and asks the engine for its content page.
func New(ctx context.Context, p Params) (*Session, error) {
	if p.Engine == nil {
		return nil, fmt.Errorf("page %d: no engine", p.ID)
	}
	ctx = logging.WithComponent(logging.WithPage(ctx, p.ID, p.MainFrameID), "page")
	opts := p.Options
	if opts.LineStep <= 0 {
		opts.LineStep = entity.DefaultLineStep
	}
	if opts.WheelLines <= 0 {
		opts.WheelLines = DefaultWheelLines
	}

	s := &Session{
		ctx:                   ctx,
		logger:                logging.FromContext(ctx),
		id:                    p.ID,
		host:                  port.MergeHost(p.Host),
		opts:                  opts,
		metrics:               p.Metrics,
		yield:                 p.Yield,
		frames:                make(map[entity.FrameID]*Frame),
		isVisible:             true,
		mainFrameIsScrollable: true,
		adBlockEnabled:        opts.AdBlockEnabled,
		resources:             make(map[entity.ResourceRequestID]struct{}),
		progress:              newProgressLimiter(),
		history:               NewBackForwardList(0),
		pageCache:             p.PageCache,
	}

	content, err := p.Engine.NewPage(port.PageConfig{
		PageID:      p.ID,
		MainFrameID: p.MainFrameID,
		Client:      s,
		Policy:      p.Policy,
	})
	if err != nil {
		return nil, fmt.Errorf("create content page %d: %w", p.ID, err)
	}
	s.content = content
	s.mainFrame = &Frame{id: p.MainFrameID, page: s, main: true}
	s.frames[p.MainFrameID] = s.mainFrame
	s.input = input.NewDispatcher(ctx, s, input.Options{
		ContextMenuPolicy:  opts.ContextMenuPolicy,
		MiddlePanThreshold: opts.MiddlePanThreshold,
	})
	s.logger.Debug().Msg("page session created")
	return s, nil
}

// ID returns the page identifier.
func (s *Session) ID() entity.PageID { return s.id }

// Content returns the engine page, or nil once closed.
func (s *Session) Content() port.ContentPage {
	if s.closed {
		return nil
	}
	return s.content
}

// Host returns the host capabilities.
func (s *Session) Host() port.Host { return s.host }

// MainFrame returns the main frame handle.
func (s *Session) MainFrame() *Frame { return s.mainFrame }

// Frames returns every frame owned by the session.
func (s *Session) Frames() []*Frame {
	out := make([]*Frame, 0, len(s.frames))
	for _, f := range s.frames {
		out = append(out, f)
	}
	return out
}

// AddSubframe records a child frame. The session keeps it alive until
// RemoveSubframe or Close.
func (s *Session) AddSubframe(id entity.FrameID) *Frame {
	f := &Frame{id: id, page: s}
	s.frames[id] = f
	return f
}

// RemoveSubframe drops a child frame. The main frame cannot be removed.
func (s *Session) RemoveSubframe(id entity.FrameID) {
	if f, ok := s.frames[id]; ok && !f.main {
		delete(s.frames, id)
	}
}

func (s *Session) contentFrame() port.ContentFrame {
	if s.closed || s.content == nil {
		return nil
	}
	return s.content.MainFrame()
}

func (s *Session) focusedFrame() port.ContentFrame {
	if s.closed || s.content == nil {
		return nil
	}
	if f := s.content.FocusedFrame(); f != nil {
		return f
	}
	return s.content.MainFrame()
}

// HandleEvent routes a platform input event through the input dispatcher.
func (s *Session) HandleEvent(ev any) bool {
	if s.closed {
		return false
	}
	return s.input.Dispatch(ev)
}

// IsActive reports whether the page has input activation.
func (s *Session) IsActive() bool { return s.isActive }

// SetActive changes activation and focus of the content.
func (s *Session) SetActive(active bool) {
	if s.isActive == active {
		return
	}
	s.isActive = active
	if c := s.Content(); c != nil {
		c.SetActive(active)
		c.SetFocused(active)
	}
}

// IsVisible reports whether the page is shown.
func (s *Session) IsVisible() bool { return s.isVisible }

// SetVisible shows or hides the page. Showing it forces a full repaint.
func (s *Session) SetVisible(visible bool) {
	if s.isVisible == visible {
		return
	}
	s.isVisible = visible
	if visible {
		s.InvalidateAll()
	}
}

// AdBlockEnabled reports whether subresource filtering applies to this page.
func (s *Session) AdBlockEnabled() bool { return s.adBlockEnabled }

// SetAdBlockEnabled toggles subresource filtering for this page.
func (s *Session) SetAdBlockEnabled(enabled bool) { s.adBlockEnabled = enabled }

// Closed reports whether Close ran.
func (s *Session) Closed() bool { return s.closed }

// Close tears the page down. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	if s.drag.Dragging() {
		s.EndDragging(entity.Point{X: -1, Y: -1}, true)
	}
	if s.fullscreen != nil {
		s.SetFullscreenElement(nil)
	}
	if s.printSession != nil {
		_ = s.printSession.PrintingFinished()
		s.printSession = nil
	}
	s.autofill = nil
	s.closed = true
	if s.content != nil {
		s.content.Close()
	}
	s.drawSurface = nil
	clear(s.resources)
	clear(s.frames)
	s.logger.Debug().Msg("page session closed")
}
