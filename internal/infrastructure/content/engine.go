package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/logging"
)

const (
	aboutBlank = "about:blank"

	defaultFetchTimeout = 15 * time.Second
	maxDocumentBytes    = 8 << 20
)

// ErrUnsupportedScheme is returned for URLs the engine cannot fetch.
var ErrUnsupportedScheme = errors.New("unsupported url scheme")

// Options configure an Engine.
type Options struct {
	// HTTPClient fetches http and https documents. Nil uses a client with a
	// fifteen second timeout.
	HTTPClient *http.Client
	// PrintPageAspect is page height over width when printing. Zero is the
	// A4 ratio.
	PrintPageAspect float64
}

// Engine creates built-in content pages.
type Engine struct {
	ctx        context.Context
	logger     *zerolog.Logger
	client     *http.Client
	aspect     float64
	resourceID atomic.Uint64
	clipboard  string
}

var _ port.Engine = (*Engine)(nil)

// NewEngine returns an engine logging through ctx.
func NewEngine(ctx context.Context, opts Options) *Engine {
	ctx = logging.WithComponent(ctx, "content")
	e := &Engine{
		ctx:    ctx,
		logger: logging.FromContext(ctx),
		client: opts.HTTPClient,
		aspect: opts.PrintPageAspect,
	}
	if e.client == nil {
		e.client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if e.aspect <= 0 {
		e.aspect = 842.0 / 595.0
	}
	return e
}

// NewPage builds a page with an empty main frame.
func (e *Engine) NewPage(cfg port.PageConfig) (port.ContentPage, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("content page %d: no loader client", cfg.PageID)
	}
	p := &Page{engine: e, id: cfg.PageID, scale: 1}
	p.main = newFrame(p, cfg)
	p.drag = &dragController{page: p}
	e.logger.Debug().Uint64("page_id", uint64(cfg.PageID)).Msg("content page created")
	return p, nil
}

func (e *Engine) nextResourceID() uint64 { return e.resourceID.Add(1) }

// fetch returns the bytes behind rawURL.
func (e *Engine) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if rawURL == aboutBlank || rawURL == "" {
		return nil, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	switch u.Scheme {
	case "", "file":
		path := u.Path
		if u.Scheme == "" {
			path = rawURL
		}
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := e.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
}

// DocumentURL turns a command line argument into a URL: about: and scheme
// URLs pass through, anything else is a file path.
func DocumentURL(arg string) (string, error) {
	if arg == aboutBlank || strings.Contains(arg, "://") {
		return arg, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: abs}).String(), nil
}
