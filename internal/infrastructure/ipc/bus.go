package ipc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/infrastructure/metrics"
)

type reply struct {
	msg port.Message
	err error
}

type queued struct {
	msg  port.Message
	sync bool
	from *Bus
}

// Bus is one endpoint of an in-process message pipe. Messages sent on one
// endpoint are queued on the other and handled when that side dispatches.
type Bus struct {
	name    string
	logger  zerolog.Logger
	metrics *metrics.Metrics
	peer    *Bus

	mu       sync.Mutex
	inbox    []queued
	handlers map[string]port.MessageHandler
	waiting  map[string]chan reply
	signal   func()
	notify   chan struct{}
	closed   bool
}

var _ port.MessageBus = (*Bus)(nil)

// NewPipe returns two connected endpoints.
func NewPipe(logger zerolog.Logger, m *metrics.Metrics, nameA, nameB string) (*Bus, *Bus) {
	a := newBus(logger, m, nameA)
	b := newBus(logger, m, nameB)
	a.peer, b.peer = b, a
	return a, b
}

func newBus(logger zerolog.Logger, m *metrics.Metrics, name string) *Bus {
	return &Bus{
		name:     name,
		logger:   logger.With().Str("component", "ipc").Str("endpoint", name).Logger(),
		metrics:  m,
		handlers: make(map[string]port.MessageHandler),
		waiting:  make(map[string]chan reply),
		notify:   make(chan struct{}, 1),
	}
}

// SetSignal registers fn to run whenever a message is queued on this
// endpoint, typically RunLoop.Signal.
func (b *Bus) SetSignal(fn func()) {
	b.mu.Lock()
	b.signal = fn
	b.mu.Unlock()
}

// Handle registers h for messages named name.
func (b *Bus) Handle(name string, h port.MessageHandler) {
	b.mu.Lock()
	b.handlers[name] = h
	b.mu.Unlock()
}

// Send queues msg on the peer without waiting.
func (b *Bus) Send(ctx context.Context, msg port.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	b.metrics.IncIPC(msg.Name, "async")
	return b.peer.enqueue(queued{msg: msg, from: b})
}

// SendSync queues msg on the peer and waits for its reply.
func (b *Bus) SendSync(ctx context.Context, msg port.Message, timeout time.Duration) (port.Message, error) {
	msg.ID = uuid.NewString()
	ch := make(chan reply, 1)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return port.Message{}, ErrClosed
	}
	b.waiting[msg.ID] = ch
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		delete(b.waiting, msg.ID)
		b.mu.Unlock()
	}()

	b.metrics.IncIPC(msg.Name, "sync")
	if err := b.peer.enqueue(queued{msg: msg, sync: true, from: b}); err != nil {
		return port.Message{}, err
	}

	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}
	select {
	case r := <-ch:
		return r.msg, r.err
	case <-expired:
		return port.Message{}, fmt.Errorf("%s: %w", msg.Name, ErrTimeout)
	case <-ctx.Done():
		return port.Message{}, ctx.Err()
	}
}

func (b *Bus) enqueue(q queued) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.inbox = append(b.inbox, q)
	signal := b.signal
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
	if signal != nil {
		signal()
	}
	return nil
}

func (b *Bus) deliver(id string, r reply) {
	b.mu.Lock()
	ch, ok := b.waiting[id]
	b.mu.Unlock()
	if ok {
		select {
		case ch <- r:
		default:
		}
	}
}

// Pending returns the number of queued messages.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.inbox)
}

// Dispatch handles every queued message and returns how many it handled.
func (b *Bus) Dispatch(ctx context.Context) int {
	b.mu.Lock()
	inbox := b.inbox
	b.inbox = nil
	b.mu.Unlock()

	for _, q := range inbox {
		b.mu.Lock()
		h := b.handlers[q.msg.Name]
		b.mu.Unlock()

		var (
			payload []byte
			err     error
		)
		if h == nil {
			err = fmt.Errorf("no handler for %q", q.msg.Name)
			b.logger.Debug().Str("message", q.msg.Name).Msg("unhandled message")
		} else {
			payload, err = h(ctx, q.msg)
		}
		if q.sync {
			q.from.deliver(q.msg.ID, reply{msg: port.Message{ID: q.msg.ID, Name: q.msg.Name, Payload: payload}, err: err})
		} else if err != nil {
			b.logger.Warn().Err(err).Str("message", q.msg.Name).Msg("async message failed")
		}
	}
	return len(inbox)
}

// Serve dispatches on the calling goroutine until ctx is done or the bus is
// closed. It is used by endpoints that have no run loop of their own.
func (b *Bus) Serve(ctx context.Context) error {
	for {
		b.Dispatch(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.notify:
		}
		b.mu.Lock()
		closed := b.closed
		b.mu.Unlock()
		if closed {
			return ErrClosed
		}
	}
}

// Close fails waiting synchronous sends and rejects further messages.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	waiting := b.waiting
	b.waiting = make(map[string]chan reply)
	b.inbox = nil
	b.mu.Unlock()

	for _, ch := range waiting {
		select {
		case ch <- reply{err: ErrClosed}:
		default:
		}
	}
	select {
	case b.notify <- struct{}{}:
	default:
	}
	b.logger.Debug().Msg("bus closed")
	return nil
}
