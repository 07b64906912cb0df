package content

import (
	"slices"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// Page is a built-in content page with a single frame.
type Page struct {
	engine *Engine
	id     entity.PageID
	main   *Frame
	drag   *dragController

	active  bool
	focused bool
	scale   float64
	origin  entity.Point
	closed  bool

	fullscreen port.Element
}

var _ port.ContentPage = (*Page)(nil)

func (p *Page) MainFrame() port.ContentFrame {
	if p.closed {
		return nil
	}
	return p.main
}

// Frame returns the concrete main frame.
func (p *Page) Frame() *Frame { return p.main }

func (p *Page) FocusedFrame() port.ContentFrame { return p.MainFrame() }

func (p *Page) SetActive(active bool) { p.active = active }

func (p *Page) IsActive() bool { return p.active }

func (p *Page) SetFocused(focused bool) { p.focused = focused }

func (p *Page) PageScaleFactor() float64 { return p.scale }

func (p *Page) SetPageScaleFactor(scale float64, origin entity.Point) {
	if scale <= 0 {
		return
	}
	p.scale, p.origin = scale, origin
}

// SetInitialFocus focuses the first focusable box, or the last one going
// backwards.
func (p *Page) SetInitialFocus(forward bool) bool {
	list := p.focusables()
	if len(list) == 0 {
		return false
	}
	if forward {
		p.main.focus(list[0])
	} else {
		p.main.focus(list[len(list)-1])
	}
	return true
}

// AdvanceFocus moves to the next focusable box. Past either end focus is
// cleared and false is returned so the host can move on.
func (p *Page) AdvanceFocus(forward bool) bool {
	list := p.focusables()
	if len(list) == 0 {
		return false
	}
	i := slices.Index(list, p.main.focused)
	if i < 0 {
		return p.SetInitialFocus(forward)
	}
	if forward {
		i++
	} else {
		i--
	}
	if i < 0 || i >= len(list) {
		p.main.focus(nil)
		return false
	}
	p.main.focus(list[i])
	return true
}

func (p *Page) ClearFocus() { p.main.focus(nil) }

func (p *Page) focusables() []*box {
	if p.closed || p.main.doc == nil {
		return nil
	}
	return p.main.doc.focusables()
}

func (p *Page) DragController() port.DragController {
	if p.closed {
		return nil
	}
	return p.drag
}

func (p *Page) WillEnterFullscreen(port.Element) {}

func (p *Page) DidEnterFullscreen(el port.Element) { p.fullscreen = el }

func (p *Page) WillExitFullscreen(port.Element) {}

func (p *Page) DidExitFullscreen(port.Element) { p.fullscreen = nil }

// FullscreenElement returns the element shown fullscreen, if any.
func (p *Page) FullscreenElement() port.Element { return p.fullscreen }

// Close releases the document. The page is unusable afterwards.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.main.Stop()
	p.main.doc = nil
	p.main.focused, p.main.pressed = nil, nil
	p.fullscreen = nil
	p.engine.logger.Debug().Uint64("page_id", uint64(p.id)).Msg("content page closed")
}
