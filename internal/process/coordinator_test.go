package process

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/ipc"
	"github.com/bnema/pagecore/internal/logging"
)

const (
	testRAMMB = 8192
	gib       = 1024 * 1024 * 1024
)

type harness struct {
	c      *Coordinator
	engine *nopEngine
	memory *recordingMemoryCache
	pages  *recordingPageCache
	disk   *recordingDiskCache
	filter *staticFilter
	reg    *prometheus.Registry
	fatals []error
}

func newHarness(t *testing.T, mutate ...func(*Options)) *harness {
	t.Helper()
	h := &harness{
		engine: &nopEngine{},
		memory: &recordingMemoryCache{},
		pages:  &recordingPageCache{},
		disk:   &recordingDiskCache{},
		filter: &staticFilter{blocked: map[string]bool{"https://ads.example/x.js": true}},
		reg:    prometheus.NewRegistry(),
	}
	opts := Options{
		Engine:         h.engine,
		MemoryCache:    h.memory,
		PageCache:      h.pages,
		DiskCache:      h.disk,
		AdFilter:       h.filter,
		Registerer:     h.reg,
		RAMMB:          testRAMMB,
		FreeSpace:      func(string) (uint64, error) { return 10 * gib, nil },
		DiskCacheDir:   t.TempDir(),
		AdBlockEnabled: true,
		Fatal:          func(err error) { h.fatals = append(h.fatals, err) },
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	c, err := New(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(c.Terminate)
	h.c = c
	return h
}

func (h *harness) create(t *testing.T, id entity.PageID, frame entity.FrameID) {
	t.Helper()
	_, err := h.c.CreateWebPage(CreatePageParams{ID: id, MainFrameID: frame})
	require.NoError(t, err)
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(context.Background(), Options{})
	require.Error(t, err)
}

func TestCreateWebPage_RegistersPageAndMainFrame(t *testing.T) {
	h := newHarness(t)
	h.create(t, 1, 10)

	s, ok := h.c.Page(1)
	require.True(t, ok)
	assert.Equal(t, entity.PageID(1), s.ID())
	assert.True(t, s.AdBlockEnabled())

	f := h.c.Frame(10)
	require.NotNil(t, f)
	assert.True(t, f.IsMain())
	assert.Same(t, s, f.Page())
	assert.Equal(t, float64(1), testutil.ToFloat64(h.c.Metrics().Pages))
}

func TestCreateWebPage_DuplicateID(t *testing.T) {
	h := newHarness(t)
	h.create(t, 1, 10)

	_, err := h.c.CreateWebPage(CreatePageParams{ID: 1, MainFrameID: 11})
	require.ErrorIs(t, err, ErrPageExists)
}

func TestCreateWebPage_AppliesFallbackDefaults(t *testing.T) {
	h := newHarness(t)
	_, set := h.c.CacheModel()
	require.False(t, set)

	h.create(t, 1, 10)

	model, set := h.c.CacheModel()
	require.True(t, set)
	assert.Equal(t, entity.CacheModelPrimaryWebBrowser, model)

	want := cachemodel.Calculate(entity.CacheModelPrimaryWebBrowser, testRAMMB)
	assert.Equal(t, capacitySet{want.MinDeadBytes, want.MaxDeadBytes, want.TotalBytes}, h.memory.last())
	assert.Equal(t, want.PageCacheSize, h.pages.capacity)

	size, ok := h.c.DiskCacheSize()
	require.True(t, ok)
	assert.Equal(t, cachemodel.DiskCapacity(entity.CacheModelPrimaryWebBrowser, 10*1024), size)
	assert.Len(t, h.disk.configured, 1)
}

func TestCreateWebPage_HostConfigurationWins(t *testing.T) {
	h := newHarness(t)
	h.c.SetCacheModel(entity.CacheModelDocumentBrowser)
	require.NoError(t, h.c.SetDiskCacheSize(context.Background(), 1000))

	h.create(t, 1, 10)

	model, _ := h.c.CacheModel()
	assert.Equal(t, entity.CacheModelDocumentBrowser, model)
	size, _ := h.c.DiskCacheSize()
	assert.Equal(t, uint64(1000), size)
}

func TestSetCacheModel_Idempotent(t *testing.T) {
	h := newHarness(t)
	h.c.SetCacheModel(entity.CacheModelDocumentBrowser)
	h.c.SetCacheModel(entity.CacheModelDocumentBrowser)

	assert.Len(t, h.memory.sets, 1)
	assert.Equal(t, cachemodel.Calculate(entity.CacheModelDocumentBrowser, testRAMMB), h.c.Capacities())
}

func TestSetCacheModel_CapacitiesFollowModel(t *testing.T) {
	h := newHarness(t)
	for _, model := range entity.AllCacheModels {
		h.c.SetCacheModel(model)
		want := cachemodel.Calculate(model, testRAMMB)
		assert.Equal(t, want, h.c.Capacities(), model.String())
		assert.Equal(t, capacitySet{want.MinDeadBytes, want.MaxDeadBytes, want.TotalBytes}, h.memory.last())
		assert.Equal(t, want.PageCacheSize, h.pages.capacity)
	}
}

func TestClearResourceCaches_RestoresModel(t *testing.T) {
	h := newHarness(t)
	h.c.SetCacheModel(entity.CacheModelDocumentViewer)
	h.c.SetCacheModel(entity.CacheModelPrimaryWebBrowser)

	h.c.ClearResourceCaches()

	assert.Equal(t, 1, h.memory.evictions)
	primary := cachemodel.Calculate(entity.CacheModelPrimaryWebBrowser, testRAMMB)
	viewer := cachemodel.Calculate(entity.CacheModelDocumentViewer, testRAMMB)
	n := len(h.memory.sets)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, capacitySet{viewer.MinDeadBytes, viewer.MaxDeadBytes, viewer.TotalBytes}, h.memory.sets[n-2])
	assert.Equal(t, capacitySet{primary.MinDeadBytes, primary.MaxDeadBytes, primary.TotalBytes}, h.memory.last())
	assert.NotZero(t, h.memory.last().total)
	assert.Equal(t, primary.PageCacheSize, h.pages.capacity)

	model, _ := h.c.CacheModel()
	assert.Equal(t, entity.CacheModelPrimaryWebBrowser, model)
}

func TestSetDiskCacheSize_ClampsToHalfFreeSpace(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.FreeSpace = func(string) (uint64, error) { return 1000, nil }
	})

	require.NoError(t, h.c.SetDiskCacheSize(context.Background(), 4000))
	size, ok := h.c.DiskCacheSize()
	require.True(t, ok)
	assert.Equal(t, uint64(500), size)

	require.NoError(t, h.c.SetDiskCacheSize(context.Background(), 200))
	size, _ = h.c.DiskCacheSize()
	assert.Equal(t, uint64(200), size)

	assert.Len(t, h.disk.configured, 1, "directory is configured only on the first call")
	assert.Equal(t, []uint64{500, 200}, h.disk.quotas)
}

func TestSetDiskCacheSize_FreeSpaceError(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.FreeSpace = func(string) (uint64, error) { return 0, errors.New("statfs failed") }
	})

	require.Error(t, h.c.SetDiskCacheSize(context.Background(), 100))
	_, ok := h.c.DiskCacheSize()
	assert.False(t, ok)
	assert.Empty(t, h.disk.configured)
}

func TestShouldAllowRequest(t *testing.T) {
	h := newHarness(t)
	h.create(t, 1, 10)

	assert.True(t, h.c.ShouldAllowRequest("https://cdn.example/app.js", "https://example.com/", 10))
	assert.False(t, h.c.ShouldAllowRequest("https://ads.example/x.js", "https://example.com/", 10))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.c.Metrics().BlockedRequests))

	require.NoError(t, h.c.SetAdBlockEnabled(1, false))
	calls := h.filter.calls
	assert.True(t, h.c.ShouldAllowRequest("https://ads.example/x.js", "https://example.com/", 10))
	assert.Equal(t, calls, h.filter.calls, "filter is not consulted when blocking is off")

	assert.True(t, h.c.ShouldAllowRequest("https://ads.example/x.js", "https://example.com/", 99), "unknown frame")
	require.ErrorIs(t, h.c.SetAdBlockEnabled(42, true), ErrUnknownPage)
}

func TestShouldAllowRequest_SubframeResolvesPage(t *testing.T) {
	h := newHarness(t)
	h.create(t, 1, 10)
	_, err := h.c.AddWebFrame(1, 11)
	require.NoError(t, err)

	assert.False(t, h.c.ShouldAllowRequest("https://ads.example/x.js", "https://example.com/", 11))
}

func TestLastPageClosed_FiresOnceOnTransition(t *testing.T) {
	h := newHarness(t)
	fired := 0
	h.c.OnLastPageClosed(func() { fired++ })

	h.create(t, 1, 10)
	h.create(t, 2, 20)
	_, err := h.c.AddWebFrame(2, 21)
	require.NoError(t, err)

	require.NoError(t, h.c.RemoveWebPage(1))
	assert.Equal(t, 0, fired)

	h.c.RemoveWebFrame(21)
	assert.Equal(t, 0, fired)

	require.NoError(t, h.c.RemoveWebPage(2))
	assert.Equal(t, 1, fired)

	h.c.RemoveWebFrame(20)
	require.ErrorIs(t, h.c.RemoveWebPage(2), ErrUnknownPage)
	assert.Equal(t, 1, fired)

	h.create(t, 3, 30)
	require.NoError(t, h.c.RemoveWebPage(3))
	assert.Equal(t, 2, fired, "fires again after the tables refilled")
	assert.Equal(t, float64(2), testutil.ToFloat64(h.c.Metrics().LastPageClosed))
}

func TestRemoveWebPage_ClosesSessionAndFrames(t *testing.T) {
	h := newHarness(t)
	h.create(t, 1, 10)
	s, _ := h.c.Page(1)
	_, err := h.c.AddWebFrame(1, 11)
	require.NoError(t, err)

	require.NoError(t, h.c.RemoveWebPage(1))

	assert.True(t, s.Closed())
	assert.True(t, h.engine.pages[0].closed)
	assert.Nil(t, h.c.Frame(10))
	assert.Nil(t, h.c.Frame(11))
}

func TestFrame_WeakEntryDoesNotKeepFrameAlive(t *testing.T) {
	h := newHarness(t)
	h.create(t, 1, 10)
	_, err := h.c.AddWebFrame(1, 11)
	require.NoError(t, err)

	s, _ := h.c.Page(1)
	s.RemoveSubframe(11)
	runtime.GC()
	runtime.GC()

	assert.Nil(t, h.c.Frame(11))
	assert.NotNil(t, h.c.Frame(10))
}

func TestAddWebFrame_UnknownPage(t *testing.T) {
	h := newHarness(t)
	_, err := h.c.AddWebFrame(7, 70)
	require.ErrorIs(t, err, ErrUnknownPage)
}

func TestTerminate_RejectsNewPages(t *testing.T) {
	h := newHarness(t)
	fired := 0
	h.c.OnLastPageClosed(func() { fired++ })
	h.create(t, 1, 10)
	s, _ := h.c.Page(1)

	h.c.Terminate()

	assert.True(t, s.Closed())
	assert.Equal(t, 0, fired)
	_, err := h.c.CreateWebPage(CreatePageParams{ID: 2, MainFrameID: 20})
	require.ErrorIs(t, err, ErrTerminated)
}

func TestHandleMemoryPressure(t *testing.T) {
	h := newHarness(t)
	h.c.SetCacheModel(entity.CacheModelPrimaryWebBrowser)
	require.NoError(t, h.c.InitializeProcess(context.Background(), ipc.ProcessCreationParameters{
		CacheModel:     entity.CacheModelPrimaryWebBrowser,
		MemoryPressure: ipc.MemoryPressureThresholds{WarningBytes: 100, CriticalBytes: 200},
	}))

	assert.False(t, h.c.HandleMemoryPressure(50))
	assert.True(t, h.c.HandleMemoryPressure(150))
	assert.Equal(t, 1, h.memory.evictions)

	sets := len(h.memory.sets)
	assert.True(t, h.c.HandleMemoryPressure(250))
	assert.Equal(t, 2, h.memory.evictions)
	assert.Equal(t, sets+2, len(h.memory.sets), "critical pressure toggles the viewer model")
}

func TestInitializeProcess_RegistersSchemes(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	err := h.c.InitializeProcess(context.Background(), ipc.ProcessCreationParameters{
		CacheModel:                   entity.CacheModelDocumentBrowser,
		DiskCacheDirectory:           dir,
		DiskCacheSizeBytes:           4096,
		URLSchemesRegisteredAsLocal:  []string{"file"},
		URLSchemesRegisteredAsSecure: []string{"https", "about"},
	})
	require.NoError(t, err)

	assert.True(t, h.c.IsLocalScheme("file"))
	assert.False(t, h.c.IsLocalScheme("https"))
	assert.True(t, h.c.IsSecureScheme("about"))
	assert.Equal(t, []string{dir}, h.disk.configured)
	assert.Equal(t, uint64(4096), h.disk.quota)
}

func TestServeUIConnection_InitializeProcess(t *testing.T) {
	h := newHarness(t)
	ui, web := ipc.NewPipe(zerolog.Nop(), nil, "ui", "web")
	h.c.ServeUIConnection(web)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = web.Serve(ctx) }()

	payload, err := ipc.EncodeProcessCreationParameters(ipc.ProcessCreationParameters{
		CacheModel:                   entity.CacheModelDocumentViewer,
		URLSchemesRegisteredAsLocal:  []string{"file"},
		URLSchemesRegisteredAsSecure: []string{},
	})
	require.NoError(t, err)
	_, err = ui.SendSync(ctx, port.Message{Name: MsgInitializeProcess, Payload: payload}, DefaultHandshakeTimeout)
	require.NoError(t, err)

	model, _ := h.c.CacheModel()
	assert.Equal(t, entity.CacheModelDocumentViewer, model)

	_, err = ui.SendSync(ctx, port.Message{Name: MsgInitializeProcess, Payload: []byte(`{"version":1,"params":{}}`)}, DefaultHandshakeTimeout)
	require.ErrorIs(t, err, ipc.ErrDecode)

	reply, err := ui.SendSync(ctx, port.Message{Name: MsgSetDiskCacheSize, Payload: []byte("2048")}, DefaultHandshakeTimeout)
	require.NoError(t, err)
	assert.Equal(t, "2048", string(reply.Payload))
}
