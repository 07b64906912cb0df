package diskcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, quota uint64) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	require.NoError(t, s.SetQuota(ctx, quota))
	return s
}

func TestStore_NotConfigured(t *testing.T) {
	s := New()
	ctx := context.Background()
	assert.ErrorIs(t, s.Put(ctx, "k", []byte("v")), ErrNotConfigured)
	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.NoError(t, s.SetQuota(ctx, 10))
	assert.Equal(t, uint64(10), s.Quota())
	assert.Error(t, s.Configure(ctx, ""))
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t, 1024)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "https://a.example/app.js", []byte("console.log(1)")))
	data, ok, err := s.Get(ctx, "https://a.example/app.js")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "console.log(1)", string(data))

	_, ok, err = s.Get(ctx, "https://a.example/missing.js")
	require.NoError(t, err)
	assert.False(t, ok)

	usage, err := s.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(14), usage)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := openTestStore(t, 10)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a", []byte("aaaa")))
	require.NoError(t, s.Put(ctx, "b", []byte("bbbb")))
	_, _, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "c", []byte("cccc")))

	_, ok, _ := s.Get(ctx, "b")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "a")
	assert.True(t, ok)

	require.NoError(t, s.SetQuota(ctx, 4))
	usage, err := s.Usage(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, usage, uint64(4))
}

func TestStore_OversizedEntrySkipped(t *testing.T) {
	s := openTestStore(t, 3)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "big", []byte("toolarge")))
	_, ok, err := s.Get(ctx, "big")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ConfigureSameDirIsNoop(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := Open(ctx, dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetQuota(ctx, 100))
	require.NoError(t, s.Put(ctx, "k", []byte("v")))
	require.NoError(t, s.Configure(ctx, dir))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, s.Dir())
}

func TestFreeSpace(t *testing.T) {
	free, err := FreeSpace(t.TempDir())
	require.NoError(t, err)
	assert.Positive(t, free)
}
