package mainloop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPending_RunsQueueSignalAndDueTimers(t *testing.T) {
	l := New(zerolog.Nop())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	var order []string
	l.OnSignal(func() { order = append(order, "signal") })
	l.Post(func() { order = append(order, "post") })
	l.AddTimer(time.Second, func() { order = append(order, "timer") })
	l.Signal()

	assert.Equal(t, 2, l.RunPending())
	assert.Equal(t, []string{"signal", "post"}, order)

	d, ok := l.TimeToNextTimerEvent()
	require.True(t, ok)
	assert.Equal(t, time.Second, d)

	now = now.Add(time.Second)
	assert.Equal(t, 1, l.RunPending())
	assert.Equal(t, "timer", order[2])
	_, ok = l.TimeToNextTimerEvent()
	assert.False(t, ok)
}

func TestStopTimer(t *testing.T) {
	l := New(zerolog.Nop())
	fired := false
	timer := l.AddTimer(0, func() { fired = true })
	l.StopTimer(timer)
	l.StopTimer(timer)
	l.RunPending()
	assert.False(t, fired)
}

func TestRun_ProcessesPostsUntilCancelled(t *testing.T) {
	l := New(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	var count atomic.Int32
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	for range 3 {
		l.Post(func() { count.Add(1) })
	}
	l.AddTimer(5*time.Millisecond, func() {
		count.Add(1)
		cancel()
	})

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not stop")
	}
	assert.Equal(t, int32(4), count.Load())
}
