package filtering

import (
	"context"
	"time"
)

// ListSource is where the Manager gets rule files from. Downloader is the
// network-backed implementation; tests substitute an in-memory one.
type ListSource interface {
	GetCachedManifest() (*Manifest, error)
	FetchManifest(ctx context.Context) (*Manifest, error)
	// DownloadFilters fetches every combined file and returns the local
	// paths in FilterFiles.Combined order.
	DownloadFilters(ctx context.Context, onProgress func(DownloadProgress)) ([]string, error)
	NeedsUpdate(ctx context.Context) (bool, error)
	ClearCache() error
	HasCachedFilters() bool
	GetCachedFilterPaths() []string
	IsCacheStale(maxAge time.Duration) bool
}

var _ ListSource = (*Downloader)(nil)
