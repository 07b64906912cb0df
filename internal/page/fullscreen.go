package page

import "github.com/bnema/pagecore/internal/application/port"

// SetFullscreenElement enters fullscreen for el, or leaves it when el is
// nil. Repeating the current state does nothing. Switching from one element
// to another leaves fullscreen for the first one.
//
// The content hears Will* before the host switches the window and Did* after
// it, so the element is notified on both sides of the real transition. Every
// change invalidates the whole surface.
func (s *Session) SetFullscreenElement(el port.Element) {
	if el == s.fullscreen {
		return
	}
	content := s.content
	if s.fullscreen != nil {
		old := s.fullscreen
		content.WillExitFullscreen(old)
		s.host.Render.ExitFullscreen()
		content.DidExitFullscreen(old)
		s.fullscreen = nil
		s.logger.Debug().Msg("left fullscreen")
	}
	if el != nil && !s.closed {
		content.WillEnterFullscreen(el)
		s.host.Render.EnterFullscreen()
		content.DidEnterFullscreen(el)
		s.fullscreen = el
		s.logger.Debug().Str("element", el.TagName()).Msg("entered fullscreen")
	}
	s.InvalidateAll()
}

// IsFullscreen reports whether an element is shown fullscreen.
func (s *Session) IsFullscreen() bool { return s.fullscreen != nil }

// FullscreenElement returns the element shown fullscreen, or nil.
func (s *Session) FullscreenElement() port.Element { return s.fullscreen }
