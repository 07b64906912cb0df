package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// HeadlessHost is the page host of CLI commands. It logs the load lifecycle
// and keeps the last load failure.
type HeadlessHost struct {
	port.NopHost

	logger  zerolog.Logger
	title   string
	failure *entity.ResourceError
}

// NewHeadlessHost returns a host logging to logger.
func NewHeadlessHost(logger zerolog.Logger) *HeadlessHost {
	return &HeadlessHost{logger: logger.With().Str("component", "host").Logger()}
}

// Host returns the port bundle for a page session.
func (h *HeadlessHost) Host() port.Host {
	return port.Host{Render: h, Navigation: h}
}

func (h *HeadlessHost) ChangedTitle(title string) {
	h.title = title
	h.logger.Debug().Str("title", title).Msg("title changed")
}

func (h *HeadlessHost) ChangedURL(url string) {
	h.logger.Debug().Str("url", url).Msg("url changed")
}

func (h *HeadlessHost) DidFailWithError(err *entity.ResourceError) {
	if err.IsCancellation() {
		return
	}
	h.failure = err
	h.logger.Warn().Err(err).Msg("load failed")
}

func (h *HeadlessHost) ProgressUpdated(fraction float64) {
	h.logger.Trace().Float64("progress", fraction).Msg("progress")
}

// Title returns the last document title.
func (h *HeadlessHost) Title() string { return h.title }

// Err returns the last load failure, nil when none happened.
func (h *HeadlessHost) Err() error {
	if h.failure == nil {
		return nil
	}
	return h.failure
}

// ImageTarget is a platform target backed by an RGBA image.
type ImageTarget struct {
	img   *image.RGBA
	blits int
}

// NewImageTarget allocates a target of size.
func NewImageTarget(size entity.Size) *ImageTarget {
	return &ImageTarget{img: image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))}
}

func (t *ImageTarget) Blit(src image.Image, srcRect image.Rectangle, dst image.Point) {
	r := image.Rectangle{Min: dst, Max: dst.Add(srcRect.Size())}
	draw.Draw(t.img, r, src, srcRect.Min, draw.Src)
	t.blits++
}

// Image returns the target pixels.
func (t *ImageTarget) Image() *image.RGBA { return t.img }

// Blits returns how many copies reached the target.
func (t *ImageTarget) Blits() int { return t.blits }

// WritePNG encodes the target to path.
func (t *ImageTarget) WritePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, t.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
