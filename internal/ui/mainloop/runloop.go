// Package mainloop is the cooperative single-goroutine run loop of the
// process. Everything touching pages runs on it.
package mainloop

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Timer is a pending AddTimer callback.
type Timer struct {
	when    time.Time
	fn      func()
	index   int
	stopped bool
}

type timerHeap []*Timer

func (h timerHeap) Len() int           { return len(h) }
func (h timerHeap) Less(i, j int) bool { return h[i].when.Before(h[j].when) }
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// RunLoop sleeps until Signal, Post or the next timer wakes it. Post and
// Signal are safe from any goroutine; callbacks run on the Run goroutine.
type RunLoop struct {
	logger zerolog.Logger
	now    func() time.Time

	mu       sync.Mutex
	queue    []func()
	timers   timerHeap
	signaled bool
	onSignal func()

	wake chan struct{}
}

// New returns an idle run loop.
func New(logger zerolog.Logger) *RunLoop {
	return &RunLoop{
		logger: logger.With().Str("component", "run-loop").Logger(),
		now:    time.Now,
		wake:   make(chan struct{}, 1),
	}
}

// OnSignal sets the handler run once per wake-up after Signal, typically the
// dispatcher of pending IPC messages.
func (l *RunLoop) OnSignal(fn func()) {
	l.mu.Lock()
	l.onSignal = fn
	l.mu.Unlock()
}

// Signal marks pending external work and wakes the loop.
func (l *RunLoop) Signal() {
	l.mu.Lock()
	l.signaled = true
	l.mu.Unlock()
	l.poke()
}

// Post queues fn to run on the loop.
func (l *RunLoop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.poke()
}

// AddTimer runs fn once after d.
func (l *RunLoop) AddTimer(d time.Duration, fn func()) *Timer {
	t := &Timer{when: l.now().Add(d), fn: fn}
	l.mu.Lock()
	heap.Push(&l.timers, t)
	l.mu.Unlock()
	l.poke()
	return t
}

// StopTimer cancels t if it has not fired.
func (l *RunLoop) StopTimer(t *Timer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.stopped || t.index < 0 {
		return
	}
	t.stopped = true
	heap.Remove(&l.timers, t.index)
}

// TimeToNextTimerEvent bounds the next sleep. It returns false when no
// timer is pending.
func (l *RunLoop) TimeToNextTimerEvent() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.timers) == 0 {
		return 0, false
	}
	return max(l.timers[0].when.Sub(l.now()), 0), true
}

func (l *RunLoop) poke() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RunPending runs the signal handler, queued work and due timers, and
// returns how many callbacks ran. Work posted meanwhile waits for the next
// call.
func (l *RunLoop) RunPending() int {
	l.mu.Lock()
	queue := l.queue
	l.queue = nil
	var onSignal func()
	if l.signaled {
		l.signaled = false
		onSignal = l.onSignal
	}
	var due []*Timer
	now := l.now()
	for len(l.timers) > 0 && !l.timers[0].when.After(now) {
		t := heap.Pop(&l.timers).(*Timer)
		t.stopped = true
		due = append(due, t)
	}
	l.mu.Unlock()

	ran := 0
	if onSignal != nil {
		onSignal()
		ran++
	}
	for _, fn := range queue {
		fn()
	}
	for _, t := range due {
		t.fn()
	}
	return ran + len(queue) + len(due)
}

// Run processes work until ctx is done.
func (l *RunLoop) Run(ctx context.Context) error {
	l.logger.Debug().Msg("run loop started")
	defer l.logger.Debug().Msg("run loop stopped")

	for {
		l.RunPending()

		var (
			timer   *time.Timer
			timeout <-chan time.Time
		)
		if d, ok := l.TimeToNextTimerEvent(); ok {
			timer = time.NewTimer(d)
			timeout = timer.C
		}
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-l.wake:
		case <-timeout:
		}
		if timer != nil {
			timer.Stop()
		}
	}
}
