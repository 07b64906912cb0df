package filtering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDownloader(t *testing.T, handler http.HandlerFunc) *Downloader {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	d := NewDownloader(filepath.Join(t.TempDir(), "filters"))
	d.baseURL = server.URL
	require.NoError(t, os.MkdirAll(d.cacheDir, cacheDirPerm))
	return d
}

func TestDownloader_NeedsUpdateComparesManifestVersions(t *testing.T) {
	var version atomic.Value
	version.Store("2026.10.01")
	d := newTestDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+FilterFiles.Manifest {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"version":"`+version.Load().(string)+`","lists":{}}`)
	})
	ctx := context.Background()

	needs, err := d.NeedsUpdate(ctx)
	require.NoError(t, err)
	assert.True(t, needs, "no cached manifest")

	require.NoError(t, d.downloadAndCacheManifest(ctx))
	cached, err := d.GetCachedManifest()
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "2026.10.01", cached.Version)

	needs, err = d.NeedsUpdate(ctx)
	require.NoError(t, err)
	assert.False(t, needs)

	version.Store("2026.10.02")
	needs, err = d.NeedsUpdate(ctx)
	require.NoError(t, err)
	assert.True(t, needs)
}

func TestDownloader_FetchManifestRejectsBadStatus(t *testing.T) {
	d := newTestDownloader(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := d.FetchManifest(context.Background())
	assert.ErrorContains(t, err, "502")
}

func TestDownloader_IsCacheStale(t *testing.T) {
	d := NewDownloader(t.TempDir())
	assert.True(t, d.IsCacheStale(time.Hour), "missing manifest is stale")

	path := filepath.Join(d.cacheDir, FilterFiles.Manifest)
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"x"}`), manifestFilePerm))
	assert.False(t, d.IsCacheStale(time.Hour))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))
	assert.True(t, d.IsCacheStale(CacheMaxAge))
}

func TestDownloader_DownloadFileSurvivesClearedCacheDir(t *testing.T) {
	filename := filepath.Join("nested", "combined-part1.json")
	started := make(chan struct{})
	release := make(chan struct{})
	d := newTestDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+filepath.ToSlash(filename) {
			http.NotFound(w, r)
			return
		}
		close(started)
		<-release
		_, _ = io.WriteString(w, `[{"trigger":{"url-filter":"ads"},"action":{"type":"block"}}]`)
	})

	type result struct {
		path string
		n    int64
		err  error
	}
	done := make(chan result, 1)
	go func() {
		path, n, err := d.downloadFile(context.Background(), filename)
		done <- result{path, n, err}
	}()

	<-started
	require.NoError(t, os.RemoveAll(d.cacheDir))
	close(release)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(d.cacheDir, filename), res.path)
	assert.Positive(t, res.n)

	data, err := os.ReadFile(res.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "url-filter")
}

func TestDownloader_RenameTempFileNeedsDirectoryParent(t *testing.T) {
	d := NewDownloader(t.TempDir())
	tmp := filepath.Join(d.cacheDir, "payload.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("payload"), manifestFilePerm))
	notDir := filepath.Join(d.cacheDir, "target")
	require.NoError(t, os.WriteFile(notDir, []byte("file"), manifestFilePerm))

	err := d.renameTempFile(tmp, filepath.Join(notDir, "filter.json"))
	assert.ErrorContains(t, err, "not a directory")
}
