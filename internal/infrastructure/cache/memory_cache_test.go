package cache

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryCache(minDead, maxDead, total uint64) *MemoryCache {
	c := NewMemoryCache(zerolog.Nop())
	c.SetCapacities(minDead, maxDead, total)
	return c
}

func TestMemoryCache_RejectsOversizedResource(t *testing.T) {
	c := newMemoryCache(0, 10, 10)
	assert.False(t, c.Add("big", make([]byte, 11)))
	assert.True(t, c.Add("ok", make([]byte, 10)))
}

func TestMemoryCache_DeadBudget(t *testing.T) {
	c := newMemoryCache(0, 8, 100)
	for _, k := range []string{"a", "b", "c"} {
		require.True(t, c.Add(k, make([]byte, 4)))
	}
	c.MarkDead("a")
	c.MarkDead("b")
	c.MarkDead("c")

	st := c.Stats()
	assert.Equal(t, uint64(8), st.DeadBytes)
	assert.Equal(t, 2, st.Resources)
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest dead resource evicted first")

	// reviving moves bytes back to live
	_, ok = c.Get("c")
	require.True(t, ok)
	st = c.Stats()
	assert.Equal(t, uint64(4), st.LiveBytes)
	assert.Equal(t, uint64(4), st.DeadBytes)
}

func TestMemoryCache_TotalBudgetKeepsMinDead(t *testing.T) {
	c := newMemoryCache(4, 100, 16)
	require.True(t, c.Add("d1", make([]byte, 4)))
	require.True(t, c.Add("d2", make([]byte, 4)))
	c.MarkDead("d1")
	c.MarkDead("d2")
	require.True(t, c.Add("live", make([]byte, 12)))

	st := c.Stats()
	assert.Equal(t, uint64(12), st.LiveBytes)
	assert.Equal(t, uint64(4), st.DeadBytes)
}

func TestMemoryCache_ShrinkingCapacitiesPrunes(t *testing.T) {
	c := newMemoryCache(0, 100, 100)
	require.True(t, c.Add("a", make([]byte, 30)))
	c.MarkDead("a")
	c.SetCapacities(0, 0, 0)
	assert.Zero(t, c.Stats().Resources)
}

func TestMemoryCache_DeadDataInterval(t *testing.T) {
	c := newMemoryCache(0, 100, 100)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	c.SetDeadDecodedDataDeletionInterval(time.Minute)

	require.True(t, c.Add("a", []byte("x")))
	c.MarkDead("a")
	now = now.Add(2 * time.Minute)
	c.Prune()
	assert.Zero(t, c.Stats().Resources)
}

func TestMemoryCache_EvictResources(t *testing.T) {
	c := newMemoryCache(0, 100, 100)
	require.True(t, c.Add("a", []byte("abc")))
	require.True(t, c.Add("b", []byte("de")))
	c.MarkDead("b")

	c.EvictResources()
	st := c.Stats()
	assert.Equal(t, 1, st.Resources)
	assert.Equal(t, uint64(3), st.LiveBytes)
	assert.Zero(t, st.DeadBytes)
	assert.Equal(t, uint64(100), st.TotalLimit)
}
