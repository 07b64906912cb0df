package input

import (
	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/logging"
)

// HandleKey processes a key press or release.
func (d *Dispatcher) HandleKey(ev entity.KeyEvent) bool {
	content := d.page.Content()
	if content == nil {
		return false
	}
	frame := content.FocusedFrame()
	if frame == nil {
		frame = content.MainFrame()
	}
	if frame == nil || frame.View() == nil {
		return false
	}

	if ev.Down {
		switch ev.Key {
		case entity.KeyEscape:
			if d.page.IsActive() {
				d.page.SetActive(false)
				d.page.Host().Focus.GoInactive()
				return true
			}
		case entity.KeyTab:
			if !ev.Modifiers.Has(entity.ModControl) && !ev.Modifiers.Has(entity.ModAlt) {
				return d.cycleFocus(content, !ev.Modifiers.Has(entity.ModShift))
			}
		}
	}

	handled := frame.HandleKey(ev)
	if !ev.Down || !ev.Modifiers.OnlyShiftOrNone() || editableFocus(frame) {
		return handled
	}
	if d.scrollForKey(frame, ev) {
		return true
	}
	return handled
}

// cycleFocus moves focus with Tab. Right after activation the first Tab sets
// the initial focus instead of advancing. At the edge the host switches page.
func (d *Dispatcher) cycleFocus(content port.ContentPage, forward bool) bool {
	var moved bool
	if d.justWentActive {
		d.justWentActive = false
		content.ClearFocus()
		moved = content.SetInitialFocus(forward)
	} else {
		moved = content.AdvanceFocus(forward)
	}
	if moved {
		return true
	}
	logging.FromContext(d.ctx).Debug().Bool("forward", forward).Msg("focus left the page")
	focus := d.page.Host().Focus
	if forward {
		focus.ActivateNext()
	} else {
		focus.ActivatePrevious()
	}
	return true
}

func editableFocus(frame port.ContentFrame) bool {
	el := frame.FocusedElement()
	return el != nil && el.IsEditable()
}

// scrollForKey applies the default scrolling bound to navigation keys.
func (d *Dispatcher) scrollForKey(frame port.ContentFrame, ev entity.KeyEvent) bool {
	view := frame.View()
	switch ev.Key {
	case entity.KeyUp:
		d.page.ScrollBy(0, -1, entity.ScrollByLine)
	case entity.KeyDown:
		d.page.ScrollBy(0, 1, entity.ScrollByLine)
	case entity.KeyLeft:
		d.page.ScrollBy(-1, 0, entity.ScrollByLine)
	case entity.KeyRight:
		d.page.ScrollBy(1, 0, entity.ScrollByLine)
	case entity.KeyPageUp:
		d.page.ScrollBy(0, -1, entity.ScrollByPage)
	case entity.KeyPageDown:
		d.page.ScrollBy(0, 1, entity.ScrollByPage)
	case entity.KeySpace:
		if ev.Modifiers.Has(entity.ModShift) {
			d.page.ScrollBy(0, -1, entity.ScrollByPage)
		} else {
			d.page.ScrollBy(0, 1, entity.ScrollByPage)
		}
	case entity.KeyHome:
		top := view.MinimumScrollPosition()
		d.page.SetScroll(entity.Point{X: view.ScrollPosition().X, Y: top.Y})
	case entity.KeyEnd:
		bottom := view.MaximumScrollPosition()
		d.page.SetScroll(entity.Point{X: view.ScrollPosition().X, Y: bottom.Y})
	default:
		return false
	}
	return true
}

// HandleWheel offers the wheel event to content and falls back to line
// scrolling, or zooming with Control held.
func (d *Dispatcher) HandleWheel(ev entity.WheelEvent) bool {
	content := d.page.Content()
	if content == nil {
		return false
	}
	frame := content.MainFrame()
	if frame == nil || frame.View() == nil {
		return false
	}
	if frame.HandleWheel(ev) {
		return true
	}
	d.page.WheelScrollOrZoomBy(ev.DeltaX, ev.DeltaY, ev.Modifiers)
	return true
}
