package input

import (
	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/logging"
)

// HandleMouse processes a press, release or move.
func (d *Dispatcher) HandleMouse(ev entity.MouseEvent) bool {
	d.lastPos = ev.Position
	if ds := d.page.DragState(); ds != nil && ds.Dragging() {
		return d.handleDrag(ds, ev)
	}

	content := d.page.Content()
	if content == nil {
		return false
	}
	frame := content.MainFrame()
	if frame == nil || frame.View() == nil {
		return false
	}

	switch ev.Kind {
	case entity.MousePress:
		return d.handlePress(frame, ev)
	case entity.MouseRelease:
		return d.handleRelease(frame, ev)
	default:
		return d.handleMove(frame, ev)
	}
}

func (d *Dispatcher) handlePress(frame port.ContentFrame, ev entity.MouseEvent) bool {
	if !d.bounds().Contains(ev.Position) {
		return false
	}
	switch ev.Button {
	case entity.MouseButtonLeft:
		if !d.page.IsActive() {
			d.page.SetActive(true)
			d.page.Host().Focus.GoActive()
		}
		ev.ClickCount = d.clicks.press(ev.Button, ev.Position, ev.Time)
		d.trackMouse = true
		frame.HandleMousePress(ev)
		return true

	case entity.MouseButtonMiddle:
		d.trackMiddle = true
		d.trackMiddleDidScroll = false
		d.middleStart = ev.Position
		d.middleLast = ev.Position
		return true

	case entity.MouseButtonRight:
		return d.contextMenu(frame, ev)

	case entity.MouseButtonBack:
		return d.page.GoBack()

	case entity.MouseButtonForward:
		return d.page.GoForward()
	}
	return false
}

func (d *Dispatcher) handleRelease(frame port.ContentFrame, ev entity.MouseEvent) bool {
	switch ev.Button {
	case entity.MouseButtonLeft:
		if !d.trackMouse {
			return false
		}
		d.trackMouse = false
		ev.ClickCount = d.clicks.count
		frame.HandleMouseRelease(ev)
		return true

	case entity.MouseButtonMiddle:
		if !d.trackMiddle {
			return false
		}
		d.trackMiddle = false
		if d.trackMiddleDidScroll {
			d.trackMiddleDidScroll = false
			return true
		}
		return d.openFromMiddleClick(frame, ev)
	}
	return false
}

func (d *Dispatcher) handleMove(frame port.ContentFrame, ev entity.MouseEvent) bool {
	if d.trackMiddle {
		if !d.trackMiddleDidScroll {
			delta := ev.Position.Sub(d.middleStart)
			if abs(delta.X) <= d.opts.MiddlePanThreshold && abs(delta.Y) <= d.opts.MiddlePanThreshold {
				return true
			}
			d.trackMiddleDidScroll = true
		}
		delta := d.middleLast.Sub(ev.Position)
		d.middleLast = ev.Position
		if delta != (entity.Point{}) {
			d.page.ScrollBy(delta.X, delta.Y, entity.ScrollByPixel)
		}
		return true
	}

	if d.trackMouse {
		frame.HandleMouseMove(ev)
		return true
	}
	if !d.bounds().Contains(ev.Position) {
		d.setHoveredURL("")
		return false
	}
	frame.HandleMouseMove(ev)
	d.updateHover(frame, ev.Position)
	return true
}

func (d *Dispatcher) updateHover(frame port.ContentFrame, p entity.Point) {
	hit := frame.HitTest(p)
	d.setHoveredURL(hit.LinkURL)
	d.page.SetCursor(hit.Cursor)
}

func (d *Dispatcher) setHoveredURL(url string) {
	if url == d.hoveredURL {
		return
	}
	d.hoveredURL = url
	d.page.Host().Navigation.HoveredURLChanged(url)
}

// openFromMiddleClick opens the link or image under the pointer. Shift opens
// a new window, Alt downloads, otherwise a background tab.
func (d *Dispatcher) openFromMiddleClick(frame port.ContentFrame, ev entity.MouseEvent) bool {
	hit := frame.HitTest(ev.Position)
	url := hit.LinkURL
	if url == "" {
		url = hit.ImageURL
	}
	if url == "" {
		return false
	}
	disposition := entity.OpenInBackgroundTab
	switch {
	case ev.Modifiers.Has(entity.ModShift):
		disposition = entity.OpenInNewWindow
	case ev.Modifiers.Has(entity.ModAlt):
		disposition = entity.OpenAsDownload
	}
	logging.FromContext(d.ctx).Debug().Str("url", url).Int("disposition", int(disposition)).Msg("middle click open")
	d.page.Host().Window.OpenLink(url, disposition)
	return true
}

// contextMenu lets content build its native menu unless the policy overrides
// it, then always offers the menu to the host.
func (d *Dispatcher) contextMenu(frame port.ContentFrame, ev entity.MouseEvent) bool {
	var items []entity.MenuItem
	if !d.opts.ContextMenuPolicy.Overrides(ev.Modifiers) {
		items = frame.HandleContextMenu(ev)
	}
	hit := frame.HitTest(ev.Position)
	d.page.Host().Menu.ContextMenu(ev.Position, items, hit)
	return true
}

// handleDrag feeds pointer events to the drag controller while a drag runs.
func (d *Dispatcher) handleDrag(ds *entity.DragState, ev entity.MouseEvent) bool {
	content := d.page.Content()
	switch ev.Kind {
	case entity.MouseRelease:
		d.page.EndDragging(ev.Position, false)
		d.trackMouse = false
		return true
	case entity.MousePress:
		return true
	}

	d.page.Host().Drag.MoveDragWindow(ev.Position)
	if content == nil {
		return true
	}
	dc := content.DragController()
	if dc == nil {
		return true
	}
	inside := d.bounds().Contains(ev.Position)
	was := ds.Inside()
	switch {
	case inside && !was:
		dc.DragEntered(ds.Data(), ev.Position)
	case inside && was:
		dc.DragUpdated(ds.Data(), ev.Position)
	case !inside && was:
		dc.DragExited(ds.Data(), ev.Position)
	}
	ds.SetInside(inside)
	return true
}
