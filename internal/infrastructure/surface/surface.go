// Package surface implements the per-page offscreen draw surface: a pixel
// buffer repaired span by span from tile damage and copied to a platform
// target.
package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/damage"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/metrics"
)

// Inert is reported by Width and Height when no backing buffer exists.
const Inert = -1

// Options configures a Surface.
type Options struct {
	TileSize int
	// FastScroll enables shifting already painted pixels on scroll instead of
	// repainting the whole viewport. Only used with a port.ScrollingTarget.
	FastScroll bool
	Logger     zerolog.Logger
	Metrics    *metrics.Metrics
}

// Surface owns an RGBA buffer sized to a page viewport.
type Surface struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics

	tracker *damage.Tracker
	pixmap  *gg.Pixmap
	width   int
	height  int

	partialDamage bool
	fastScroll    bool
	didScroll     bool
	lastScroll    entity.Point
	spans         []entity.Rect
	// repaired is set while spans hold the painted damage and nothing has
	// been invalidated since.
	repaired bool
}

// New returns an inert surface; call Resize to allocate it.
func New(opts Options) *Surface {
	tileSize := opts.TileSize
	if tileSize <= 0 {
		tileSize = damage.DefaultTileSize
	}
	return &Surface{
		logger:     opts.Logger.With().Str("component", "draw-surface").Logger(),
		metrics:    opts.Metrics,
		tracker:    damage.New(tileSize),
		width:      Inert,
		height:     Inert,
		fastScroll: opts.FastScroll,
	}
}

// Width returns the buffer width, or Inert.
func (s *Surface) Width() int { return s.width }

// Height returns the buffer height, or Inert.
func (s *Surface) Height() int { return s.height }

// IsInert reports whether the surface has no backing buffer.
func (s *Surface) IsInert() bool { return s.pixmap == nil }

// HasDamage reports whether a repaint is pending.
func (s *Surface) HasDamage() bool { return s.pixmap != nil && s.tracker.HasDamage() }

// Tracker exposes the damage tracker. Its size always matches the surface.
func (s *Surface) Tracker() *damage.Tracker { return s.tracker }

// Image returns the backing buffer, or nil when inert. The buffer is shared.
func (s *Surface) Image() image.Image {
	if s.pixmap == nil {
		return nil
	}
	return s.pixmap
}

// Resize reallocates the buffer when the size changes and marks everything
// dirty. Allocation failure leaves the surface inert.
func (s *Surface) Resize(width, height int) {
	if s.pixmap != nil && width == s.width && height == s.height {
		return
	}
	s.pixmap = nil
	s.width, s.height = Inert, Inert

	pm, err := allocate(width, height)
	if err != nil {
		s.logger.Warn().Err(err).Int("width", width).Int("height", height).Msg("draw surface unavailable")
		return
	}
	s.pixmap = pm
	s.width, s.height = width, height
	s.tracker.Resize(width, height)
	s.partialDamage = false
	s.didScroll = false
	s.repaired = false
	s.logger.Debug().Int("width", width).Int("height", height).Msg("draw surface resized")
}

func allocate(width, height int) (pm *gg.Pixmap, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	defer func() {
		if r := recover(); r != nil {
			pm, err = nil, fmt.Errorf("allocate %dx%d surface: %v", width, height, r)
		}
	}()
	return gg.NewPixmap(width, height), nil
}

// Invalidate marks r dirty. A rect smaller than the surface counts as partial
// damage, which disables the fast scroll path until the next draw.
func (s *Surface) Invalidate(r entity.Rect) {
	if s.pixmap == nil {
		return
	}
	full := entity.NewRect(0, 0, s.width, s.height)
	if !r.ContainsRect(full) {
		s.partialDamage = true
	}
	s.repaired = false
	s.tracker.InvalidateRect(r)
}

// InvalidateAll marks the whole surface dirty.
func (s *Surface) InvalidateAll() {
	if s.pixmap == nil {
		return
	}
	s.repaired = false
	s.tracker.InvalidateAll()
}

// OnDidScroll records that the page scrolled since the last draw.
func (s *Surface) OnDidScroll() {
	s.didScroll = true
}

// Repair repaints every damaged span. Damage is kept until Draw, which
// reuses the spans instead of painting them again.
func (s *Surface) Repair(painter port.ContentPainter, quality port.InterpolationQuality) {
	if s.pixmap == nil {
		return
	}
	s.spans = s.collectSpans(s.spans[:0])
	if painter == nil {
		return
	}
	for _, span := range s.spans {
		s.paintSpan(painter, span, quality)
	}
	s.repaired = true
	s.metrics.AddDamageSpans(len(s.spans))
	s.logger.Trace().Int("spans", len(s.spans)).Msg("repaired damage")
}

func (s *Surface) collectSpans(dst []entity.Rect) []entity.Rect {
	s.tracker.VisitDamagedTiles(func(x, y, w, h int) {
		dst = append(dst, entity.NewRect(x, y, w, h))
	})
	return dst
}

// paintSpan renders one span through its own clipped context and copies the
// result into the backing buffer. Nothing outside span is ever written.
func (s *Surface) paintSpan(painter port.ContentPainter, span entity.Rect, quality port.InterpolationQuality) {
	scratch := gg.NewPixmap(span.Width, span.Height)
	dc := gg.NewContext(span.Width, span.Height, gg.WithPixmap(scratch))
	defer func() { _ = dc.Close() }()

	dc.Push()
	dc.Translate(float64(-span.X), float64(-span.Y))
	dc.ClipRect(float64(span.X), float64(span.Y), float64(span.Width), float64(span.Height))
	painter.PaintContents(dc, span, quality)
	dc.Pop()

	copyRect(s.pixmap.Data(), s.width, scratch.Data(), span.Width, 0, 0, span.X, span.Y, span.Width, span.Height)
}

// Draw repairs damage and copies pixels to target at (x, y). With updateMode
// only the damaged spans are copied, otherwise the whole w×h area. Damage and
// scroll state are always reset afterwards.
func (s *Surface) Draw(
	painter port.ContentPainter,
	target port.PlatformTarget,
	x, y, w, h, scrollX, scrollY int,
	updateMode bool,
	quality port.InterpolationQuality,
) {
	if s.pixmap == nil {
		return
	}
	defer s.reset(scrollX, scrollY)

	scroll := entity.Point{X: scrollX, Y: scrollY}
	if s.tryFastScroll(target, x, y, scroll) {
		updateMode = true
	}

	if !s.repaired {
		s.Repair(painter, quality)
	}

	if target == nil {
		return
	}
	area := entity.NewRect(0, 0, s.width, s.height).Intersect(entity.NewRect(0, 0, w, h))
	if updateMode {
		blits := 0
		for _, span := range s.spans {
			r := span.Intersect(area)
			if r.IsEmpty() {
				continue
			}
			target.Blit(s.pixmap, toImageRect(r), image.Pt(x+r.X, y+r.Y))
			blits++
		}
		s.metrics.AddBlits(blits)
		return
	}
	if !area.IsEmpty() {
		target.Blit(s.pixmap, toImageRect(area), image.Pt(x, y))
		s.metrics.AddBlits(1)
	}
}

func (s *Surface) reset(scrollX, scrollY int) {
	s.tracker.Clear()
	s.partialDamage = false
	s.didScroll = false
	s.repaired = false
	s.spans = s.spans[:0]
	s.lastScroll = entity.Point{X: scrollX, Y: scrollY}
}

// tryFastScroll shifts the buffer and the target by the scroll delta and
// narrows damage to the exposed bands.
func (s *Surface) tryFastScroll(target port.PlatformTarget, x, y int, scroll entity.Point) bool {
	if !s.fastScroll || !s.didScroll || s.partialDamage {
		return false
	}
	st, ok := target.(port.ScrollingTarget)
	if !ok {
		return false
	}
	d := scroll.Sub(s.lastScroll)
	if d == (entity.Point{}) || abs(d.X) >= s.width || abs(d.Y) >= s.height {
		return false
	}
	rect := image.Rect(x, y, x+s.width, y+s.height)
	if !st.ScrollRaster(rect, -d.X, -d.Y) {
		return false
	}
	s.shift(-d.X, -d.Y)

	s.repaired = false
	s.tracker.Clear()
	if d.Y > 0 {
		s.tracker.Invalidate(0, s.height-d.Y, s.width, d.Y)
	} else if d.Y < 0 {
		s.tracker.Invalidate(0, 0, s.width, -d.Y)
	}
	if d.X > 0 {
		s.tracker.Invalidate(s.width-d.X, 0, d.X, s.height)
	} else if d.X < 0 {
		s.tracker.Invalidate(0, 0, -d.X, s.height)
	}
	s.logger.Trace().Int("dx", d.X).Int("dy", d.Y).Msg("fast scroll")
	return true
}

// shift moves buffer pixels by (dx, dy); uncovered pixels keep stale values
// and must be repainted.
func (s *Surface) shift(dx, dy int) {
	w := s.width - abs(dx)
	h := s.height - abs(dy)
	srcX, dstX := max(0, -dx), max(0, dx)
	srcY, dstY := max(0, -dy), max(0, dy)
	data := s.pixmap.Data()
	tmp := make([]byte, len(data))
	copy(tmp, data)
	copyRect(data, s.width, tmp, s.width, srcX, srcY, dstX, dstY, w, h)
}

// copyRect copies a w×h block of 4-byte pixels between row-major buffers.
func copyRect(dst []byte, dstStride int, src []byte, srcStride int, sx, sy, dx, dy, w, h int) {
	rowBytes := w * 4
	for row := 0; row < h; row++ {
		so := ((sy+row)*srcStride + sx) * 4
		do := ((dy+row)*dstStride + dx) * 4
		copy(dst[do:do+rowBytes], src[so:so+rowBytes])
	}
}

func toImageRect(r entity.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.MaxX(), r.MaxY())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
