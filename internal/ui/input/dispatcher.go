// Package input turns raw platform input into page interactions: click
// counting, hover, middle-button panning, context menus, drag redirection,
// focus cycling and default scrolling.
package input

import (
	"context"
	"time"

	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/logging"
)

// DefaultMiddlePanThreshold is how far the pointer must travel with the middle
// button held before the gesture becomes a pan.
const DefaultMiddlePanThreshold = 5

// Options configures a Dispatcher.
type Options struct {
	ContextMenuPolicy   entity.ContextMenuPolicy
	MiddlePanThreshold  int
	DoubleClickInterval time.Duration
	ClickSlop           int
}

// ActivationEvent reports that the page window gained or lost activation.
type ActivationEvent struct {
	Active bool
}

// Dispatcher is the per-page input state machine. It is not safe for
// concurrent use; all events arrive on the run loop.
type Dispatcher struct {
	ctx  context.Context
	page Page
	opts Options

	clicks clickCounter

	trackMouse           bool
	trackMiddle          bool
	trackMiddleDidScroll bool
	middleStart          entity.Point
	middleLast           entity.Point
	justWentActive       bool

	hoveredURL string
	lastPos    entity.Point
}

// NewDispatcher creates a dispatcher for page.
func NewDispatcher(ctx context.Context, page Page, opts Options) *Dispatcher {
	if opts.MiddlePanThreshold <= 0 {
		opts.MiddlePanThreshold = DefaultMiddlePanThreshold
	}
	if opts.DoubleClickInterval <= 0 {
		opts.DoubleClickInterval = DefaultDoubleClickInterval
	}
	if opts.ClickSlop <= 0 {
		opts.ClickSlop = DefaultClickSlop
	}
	return &Dispatcher{
		ctx:  logging.WithComponent(ctx, "input"),
		page: page,
		opts: opts,
		clicks: clickCounter{
			interval: opts.DoubleClickInterval,
			slop:     opts.ClickSlop,
		},
	}
}

// SetContextMenuPolicy changes the context menu policy.
func (d *Dispatcher) SetContextMenuPolicy(p entity.ContextMenuPolicy) {
	d.opts.ContextMenuPolicy = p
}

// TrackingMouse reports whether a press is captured awaiting release.
func (d *Dispatcher) TrackingMouse() bool { return d.trackMouse }

// Panning reports whether a middle-button gesture is in progress.
func (d *Dispatcher) Panning() bool { return d.trackMiddle }

// Dispatch routes any supported event and reports whether it was handled.
func (d *Dispatcher) Dispatch(ev any) bool {
	switch e := ev.(type) {
	case entity.MouseEvent:
		return d.HandleMouse(e)
	case entity.WheelEvent:
		return d.HandleWheel(e)
	case entity.KeyEvent:
		return d.HandleKey(e)
	case ActivationEvent:
		d.HandleActivation(e.Active)
		return true
	default:
		logging.FromContext(d.ctx).Debug().Type("event", ev).Msg("unsupported input event")
		return false
	}
}

func (d *Dispatcher) bounds() entity.Rect {
	s := d.page.VisibleSize()
	return entity.NewRect(0, 0, s.Width, s.Height)
}

// HandleActivation updates activation state. Losing activation cancels any
// drag and releases captured buttons.
func (d *Dispatcher) HandleActivation(active bool) {
	log := logging.FromContext(d.ctx)
	if active {
		d.justWentActive = true
		d.page.SetActive(true)
		log.Debug().Msg("page activated")
		return
	}
	if ds := d.page.DragState(); ds != nil && ds.Dragging() {
		d.page.EndDragging(d.lastPos, true)
	}
	d.trackMouse = false
	d.trackMiddle = false
	d.trackMiddleDidScroll = false
	d.clicks.reset()
	d.page.SetActive(false)
	log.Debug().Msg("page deactivated")
}
