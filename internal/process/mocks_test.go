package process

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagecore/internal/application/port/mocks"
	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/logging"
)

func newMocked(t *testing.T, opts Options) *Coordinator {
	t.Helper()
	opts.Engine = &nopEngine{}
	if opts.RAMMB == 0 {
		opts.RAMMB = testRAMMB
	}
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	c, err := New(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(c.Terminate)
	return c
}

func TestSetCacheModel_SizesCachesOnce(t *testing.T) {
	memory := mocks.NewMockMemoryCache(t)
	pages := mocks.NewMockPageCache(t)
	caps := cachemodel.Calculate(entity.CacheModelDocumentBrowser, testRAMMB)
	memory.EXPECT().SetCapacities(caps.MinDeadBytes, caps.MaxDeadBytes, caps.TotalBytes).Once()
	memory.EXPECT().SetDeadDecodedDataDeletionInterval(caps.DeadDecodedDataDeletionInterval).Once()
	pages.EXPECT().SetCapacity(caps.PageCacheSize).Once()

	c := newMocked(t, Options{MemoryCache: memory, PageCache: pages})
	c.SetCacheModel(entity.CacheModelDocumentBrowser)
	c.SetCacheModel(entity.CacheModelDocumentBrowser)

	model, set := c.CacheModel()
	assert.True(t, set)
	assert.Equal(t, entity.CacheModelDocumentBrowser, model)
}

func TestSetDiskCacheSize_ConfiguresOnceThenAdjustsQuota(t *testing.T) {
	disk := mocks.NewMockDiskCache(t)
	dir := t.TempDir()
	disk.EXPECT().Configure(mock.Anything, dir).Return(nil).Once()
	disk.EXPECT().SetQuota(mock.Anything, uint64(400)).Return(nil).Once()
	disk.EXPECT().SetQuota(mock.Anything, uint64(500)).Return(nil).Once()

	c := newMocked(t, Options{
		DiskCache:    disk,
		DiskCacheDir: dir,
		FreeSpace:    func(string) (uint64, error) { return 1000, nil },
	})
	require.NoError(t, c.SetDiskCacheSize(context.Background(), 400))
	require.NoError(t, c.SetDiskCacheSize(context.Background(), 5000))

	size, set := c.DiskCacheSize()
	assert.True(t, set)
	assert.Equal(t, uint64(500), size)
}

func TestSetDiskCacheSize_ConfigureFailureLeavesSizeUnset(t *testing.T) {
	disk := mocks.NewMockDiskCache(t)
	disk.EXPECT().Configure(mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()

	c := newMocked(t, Options{
		DiskCache:    disk,
		DiskCacheDir: t.TempDir(),
		FreeSpace:    func(string) (uint64, error) { return 1000, nil },
	})
	require.Error(t, c.SetDiskCacheSize(context.Background(), 100))

	_, set := c.DiskCacheSize()
	assert.False(t, set)
}

func TestShouldAllowRequest_AsksFilterOnlyWhenEnabled(t *testing.T) {
	filter := mocks.NewMockAdFilter(t)
	filter.EXPECT().ShouldBlock("https://ads.example/a.js", "https://site.example/").Return(true).Once()
	filter.EXPECT().ShouldBlock("https://site.example/app.js", "https://site.example/").Return(false).Once()

	c := newMocked(t, Options{AdFilter: filter, AdBlockEnabled: true})
	_, err := c.CreateWebPage(CreatePageParams{ID: 1, MainFrameID: 10})
	require.NoError(t, err)

	assert.False(t, c.ShouldAllowRequest("https://ads.example/a.js", "https://site.example/", 10))
	assert.True(t, c.ShouldAllowRequest("https://site.example/app.js", "https://site.example/", 10))

	require.NoError(t, c.SetAdBlockEnabled(1, false))
	assert.True(t, c.ShouldAllowRequest("https://ads.example/a.js", "https://site.example/", 10))
	assert.True(t, c.ShouldAllowRequest("https://ads.example/a.js", "https://site.example/", 99))
}
