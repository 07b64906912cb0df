package filtering

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/logging"
)

const (
	cacheDirPerm     = 0o755
	manifestFilePerm = 0o644

	downloadTimeout = 60 * time.Second
)

// DownloadProgress is reported before each rule file is fetched.
type DownloadProgress struct {
	File       string
	Current    int
	Total      int
	BytesTotal int64 // bytes fetched so far
}

// Downloader mirrors the published rule set into a local directory.
type Downloader struct {
	baseURL    string
	cacheDir   string
	httpClient *http.Client
}

// NewDownloader returns a Downloader caching into cacheDir.
func NewDownloader(cacheDir string) *Downloader {
	return &Downloader{
		baseURL:    GitHubReleaseURL,
		cacheDir:   cacheDir,
		httpClient: &http.Client{Timeout: downloadTimeout},
	}
}

func downloaderLog(ctx context.Context) *zerolog.Logger {
	l := logging.FromContext(ctx).With().Str("component", "filter-downloader").Logger()
	return &l
}

// fetch issues a GET for one release asset and hands the body to consume.
func (d *Downloader) fetch(ctx context.Context, name string, consume func(io.Reader) error) error {
	url := d.baseURL + "/" + filepath.ToSlash(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", name, err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			downloaderLog(ctx).Debug().Err(cerr).Str("file", name).Msg("close response body")
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d", name, resp.StatusCode)
	}
	return consume(resp.Body)
}

func decodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := sonic.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// GetCachedManifest returns the manifest stored next to the cached rules, or
// nil without error when none has been stored yet.
func (d *Downloader) GetCachedManifest() (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(d.cacheDir, FilterFiles.Manifest))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeManifest(data)
}

// FetchManifest gets the manifest of the latest published rule set.
func (d *Downloader) FetchManifest(ctx context.Context) (*Manifest, error) {
	var data []byte
	err := d.fetch(ctx, FilterFiles.Manifest, func(r io.Reader) error {
		var err error
		data, err = io.ReadAll(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	m, err := decodeManifest(data)
	if err != nil {
		return nil, err
	}
	downloaderLog(ctx).Debug().Str("version", m.Version).Msg("fetched manifest")
	return m, nil
}

// DownloadFilters fetches every combined rule file, then stores the manifest
// so NeedsUpdate can compare versions later. A manifest failure only logs.
func (d *Downloader) DownloadFilters(ctx context.Context, onProgress func(DownloadProgress)) ([]string, error) {
	log := downloaderLog(ctx)
	if err := os.MkdirAll(d.cacheDir, cacheDirPerm); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	files := FilterFiles.Combined
	paths := make([]string, 0, len(files))
	var fetched int64
	for i, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if onProgress != nil {
			onProgress(DownloadProgress{File: name, Current: i + 1, Total: len(files), BytesTotal: fetched})
		}
		path, n, err := d.downloadFile(ctx, name)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("rule file download failed")
			return nil, err
		}
		fetched += n
		paths = append(paths, path)
	}

	if err := d.downloadAndCacheManifest(ctx); err != nil {
		log.Warn().Err(err).Msg("manifest not cached")
	}
	log.Info().Int("files", len(paths)).Int64("bytes", fetched).Msg("rule files downloaded")
	return paths, nil
}

// downloadFile streams one asset into a temp file and renames it into place,
// so readers never see a partial list.
func (d *Downloader) downloadFile(ctx context.Context, name string) (string, int64, error) {
	dst := filepath.Join(d.cacheDir, name)
	tmp := dst + ".tmp"
	var n int64
	err := d.fetch(ctx, name, func(r io.Reader) error {
		// The cache directory may be cleared while a download is in flight.
		if err := os.MkdirAll(filepath.Dir(dst), cacheDirPerm); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
		f, err := os.Create(tmp)
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		n, err = io.Copy(f, r)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return d.renameTempFile(tmp, dst)
	})
	if err != nil {
		_ = os.Remove(tmp)
		return "", 0, err
	}
	return dst, n, nil
}

func (d *Downloader) renameTempFile(tmp, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), cacheDirPerm); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (d *Downloader) downloadAndCacheManifest(ctx context.Context) error {
	m, err := d.FetchManifest(ctx)
	if err != nil {
		return err
	}
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(d.cacheDir, FilterFiles.Manifest), data, manifestFilePerm); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// GetCachedFilterPaths returns the cached combined files, or nil unless all
// of them are present.
func (d *Downloader) GetCachedFilterPaths() []string {
	paths := make([]string, 0, len(FilterFiles.Combined))
	for _, name := range FilterFiles.Combined {
		p := filepath.Join(d.cacheDir, name)
		if _, err := os.Stat(p); err != nil {
			return nil
		}
		paths = append(paths, p)
	}
	return paths
}

func (d *Downloader) HasCachedFilters() bool {
	return d.GetCachedFilterPaths() != nil
}

// NeedsUpdate compares the cached manifest version with the published one.
// An unreadable or missing cache always needs an update.
func (d *Downloader) NeedsUpdate(ctx context.Context) (bool, error) {
	cached, err := d.GetCachedManifest()
	if err != nil || cached == nil {
		return true, nil
	}
	latest, err := d.FetchManifest(ctx)
	if err != nil {
		return false, err
	}
	if cached.Version == latest.Version {
		return false, nil
	}
	downloaderLog(ctx).Info().
		Str("cached_version", cached.Version).
		Str("latest_version", latest.Version).
		Msg("rule update available")
	return true, nil
}

func (d *Downloader) ClearCache() error {
	return os.RemoveAll(d.cacheDir)
}

// IsCacheStale reports whether the cached manifest is missing or older than
// maxAge.
func (d *Downloader) IsCacheStale(maxAge time.Duration) bool {
	info, err := os.Stat(filepath.Join(d.cacheDir, FilterFiles.Manifest))
	if err != nil {
		return true
	}
	return time.Since(info.ModTime()) > maxAge
}
