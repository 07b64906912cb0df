package page

import (
	"math"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/surface"
)

// SetVisibleSize resizes the viewport. The draw surface is created on the
// first call and resized with the view afterwards.
func (s *Session) SetVisibleSize(size entity.Size) {
	if s.closed {
		return
	}
	if s.drawSurface == nil {
		s.drawSurface = surface.New(surface.Options{
			TileSize:   s.opts.TileSize,
			FastScroll: s.opts.FastScroll,
			Logger:     *s.logger,
			Metrics:    s.metrics,
		})
	}
	s.visibleSize = size
	s.drawSurface.Resize(size.Width, size.Height)
	if s.drawSurface.IsInert() {
		s.logger.Warn().Int("width", size.Width).Int("height", size.Height).Msg("draw surface unavailable")
	}
	if view := s.mainView(); view != nil {
		view.Resize(size)
	}
	s.clampScroll()
	s.host.Render.Invalidate(true)
}

// VisibleSize returns the viewport size.
func (s *Session) VisibleSize() entity.Size { return s.visibleSize }

// DrawSurface returns the draw surface, nil before the first SetVisibleSize.
func (s *Session) DrawSurface() *surface.Surface { return s.drawSurface }

func (s *Session) mainView() port.FrameView {
	if f := s.contentFrame(); f != nil {
		return f.View()
	}
	return nil
}

func (s *Session) focusedView() port.FrameView {
	if f := s.focusedFrame(); f != nil {
		return f.View()
	}
	return nil
}

// ScrollPosition returns the main frame scroll offset.
func (s *Session) ScrollPosition() entity.Point {
	if view := s.mainView(); view != nil {
		return view.ScrollPosition()
	}
	return entity.Point{}
}

// SetScroll moves the focused frame to p, clamped to its scroll range.
func (s *Session) SetScroll(p entity.Point) {
	view := s.focusedView()
	if view == nil {
		return
	}
	s.scrollViewTo(view, p)
}

// ScrollBy scrolls the focused frame by dx, dy counted in unit.
func (s *Session) ScrollBy(dx, dy int, unit entity.ScrollUnit) {
	view := s.focusedView()
	if view == nil {
		return
	}
	switch unit {
	case entity.ScrollByLine:
		dx *= s.opts.LineStep
		dy *= s.opts.LineStep
	case entity.ScrollByPage:
		size := view.VisibleSize()
		dx *= entity.PageStep(size.Width)
		dy *= entity.PageStep(size.Height)
	}
	s.scrollViewTo(view, view.ScrollPosition().Add(entity.Point{X: dx, Y: dy}))
}

func (s *Session) scrollViewTo(view port.FrameView, p entity.Point) {
	p = entity.ClampPoint(p, view.MinimumScrollPosition(), view.MaximumScrollPosition())
	if p == view.ScrollPosition() {
		return
	}
	view.SetScrollPosition(p)
	if s.drawSurface != nil {
		s.drawSurface.OnDidScroll()
	}
	if view == s.mainView() {
		s.host.Render.Scroll(p.X, p.Y)
	}
	s.InvalidateAll()
}

func (s *Session) clampScroll() {
	view := s.mainView()
	if view == nil {
		return
	}
	cur := view.ScrollPosition()
	if p := entity.ClampPoint(cur, view.MinimumScrollPosition(), view.MaximumScrollPosition()); p != cur {
		s.scrollViewTo(view, p)
	}
}

// WheelScrollOrZoomBy applies a wheel event content left unhandled. With
// Control held it zooms by ZoomStep per notch around the viewport centre,
// in when dy is negative and out when positive. Otherwise it scrolls
// WheelLines lines per notch.
func (s *Session) WheelScrollOrZoomBy(dx, dy float64, mods entity.Modifiers) {
	if mods.Has(entity.ModControl) {
		c := s.Content()
		if c == nil || dy == 0 {
			return
		}
		scale := c.PageScaleFactor() - dy*ZoomStep
		scale = math.Max(MinScale, math.Min(MaxScale, scale))
		origin := entity.Point{X: s.visibleSize.Width / 2, Y: s.visibleSize.Height / 2}
		s.ScalePage(scale, origin)
		return
	}
	lx := int(math.Round(dx * s.opts.WheelLines))
	ly := int(math.Round(dy * s.opts.WheelLines))
	if lx == 0 && ly == 0 {
		return
	}
	s.ScrollBy(lx, ly, entity.ScrollByLine)
}

// ScalePage sets the page scale around origin. The content is always told;
// repaint and host notification are skipped when the scale did not change.
func (s *Session) ScalePage(scale float64, origin entity.Point) {
	c := s.Content()
	if c == nil || scale <= 0 {
		return
	}
	previous := c.PageScaleFactor()
	c.SetPageScaleFactor(scale, origin)
	if previous == scale {
		return
	}
	s.logger.Debug().Float64("scale", scale).Msg("page scale changed")
	if view := s.mainView(); view != nil {
		size := view.ContentsSize()
		s.host.Render.SetDocumentSize(size.Width, size.Height)
	}
	s.clampScroll()
	s.InvalidateAll()
}

// PageScaleFactor returns the current page scale, 1 once closed.
func (s *Session) PageScaleFactor() float64 {
	if c := s.Content(); c != nil {
		return c.PageScaleFactor()
	}
	return 1
}

// Invalidate marks r dirty and asks the host for a repaint.
func (s *Session) Invalidate(r entity.Rect) {
	if s.drawSurface == nil || s.closed {
		return
	}
	s.drawSurface.Invalidate(r)
	s.host.Render.Invalidate(false)
}

// InvalidateAll marks the whole viewport dirty and forces a host repaint.
func (s *Session) InvalidateAll() {
	if s.drawSurface == nil || s.closed {
		return
	}
	s.drawSurface.InvalidateAll()
	s.host.Render.Invalidate(true)
}

// Draw repairs damage and copies the viewport to target at (x, y). Hidden
// pages and inert surfaces draw nothing.
func (s *Session) Draw(target port.PlatformTarget, x, y, w, h int, updateMode bool) {
	if s.closed || !s.isVisible || s.drawSurface == nil || s.drawSurface.IsInert() {
		return
	}
	view := s.mainView()
	if view == nil {
		return
	}
	scroll := view.ScrollPosition()
	s.drawSurface.Draw(view, target, x, y, w, h, scroll.X, scroll.Y, updateMode, s.opts.Interpolation)
}

// SetMainFrameIsScrollable toggles scrolling of the main frame.
func (s *Session) SetMainFrameIsScrollable(scrollable bool) {
	s.mainFrameIsScrollable = scrollable
	s.applyScrollbarModes()
}

// SetAlwaysShowsHorizontalScroller forces the horizontal scrollbar on.
func (s *Session) SetAlwaysShowsHorizontalScroller(always bool) {
	s.alwaysShowsHorizontalScroller = always
	s.applyScrollbarModes()
}

// SetAlwaysShowsVerticalScroller forces the vertical scrollbar on.
func (s *Session) SetAlwaysShowsVerticalScroller(always bool) {
	s.alwaysShowsVerticalScroller = always
	s.applyScrollbarModes()
}

func (s *Session) MainFrameIsScrollable() bool         { return s.mainFrameIsScrollable }
func (s *Session) AlwaysShowsHorizontalScroller() bool { return s.alwaysShowsHorizontalScroller }
func (s *Session) AlwaysShowsVerticalScroller() bool   { return s.alwaysShowsVerticalScroller }

func (s *Session) applyScrollbarModes() {
	view := s.mainView()
	if view == nil {
		return
	}
	mode := func(always bool) port.ScrollbarMode {
		switch {
		case !s.mainFrameIsScrollable:
			return port.ScrollbarAlwaysOff
		case always:
			return port.ScrollbarAlwaysOn
		default:
			return port.ScrollbarAuto
		}
	}
	view.SetScrollbarModes(mode(s.alwaysShowsHorizontalScroller), mode(s.alwaysShowsVerticalScroller))
}

// SetCursor records the hover cursor and forwards the effective one.
func (s *Session) SetCursor(cursor entity.CursorKind) {
	s.updateCursor(func(c *entity.CursorState) { c.Current = cursor })
}

// LockCursor forces cursor until UnlockCursor.
func (s *Session) LockCursor(cursor entity.CursorKind) {
	s.updateCursor(func(c *entity.CursorState) {
		c.Locked = cursor
		c.IsLocked = true
	})
}

// UnlockCursor returns to the hover cursor.
func (s *Session) UnlockCursor() {
	s.updateCursor(func(c *entity.CursorState) { c.IsLocked = false })
}

// Cursor returns the cursor state.
func (s *Session) Cursor() entity.CursorState { return s.cursor }

func (s *Session) updateCursor(fn func(*entity.CursorState)) {
	before := s.cursor.Effective()
	fn(&s.cursor)
	if after := s.cursor.Effective(); after != before {
		s.host.Render.SetCursor(after)
	}
}
