package input

import (
	"github.com/gogpu/gg"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

type fakeView struct {
	scroll   entity.Point
	min, max entity.Point
}

func (v *fakeView) PaintContents(*gg.Context, entity.Rect, port.InterpolationQuality) {}
func (v *fakeView) ScrollPosition() entity.Point                                      { return v.scroll }
func (v *fakeView) SetScrollPosition(p entity.Point)                                  { v.scroll = p }
func (v *fakeView) MinimumScrollPosition() entity.Point                               { return v.min }
func (v *fakeView) MaximumScrollPosition() entity.Point                               { return v.max }
func (v *fakeView) VisibleSize() entity.Size                                          { return entity.Size{Width: 800, Height: 600} }
func (v *fakeView) ContentsSize() entity.Size                                         { return entity.Size{Width: 800, Height: 2000} }
func (v *fakeView) Resize(entity.Size)                                                {}
func (v *fakeView) SetScrollbarModes(port.ScrollbarMode, port.ScrollbarMode)          {}

type fakeElement struct{ editable bool }

func (e *fakeElement) TagName() string   { return "input" }
func (e *fakeElement) InputType() string { return "text" }
func (e *fakeElement) Name() string      { return "q" }
func (e *fakeElement) Value() string     { return "" }
func (e *fakeElement) SetValue(string)   {}
func (e *fakeElement) IsEditable() bool  { return e.editable }
func (e *fakeElement) Form() port.Form   { return nil }

type fakeFrame struct {
	view    port.FrameView
	focused port.Element
	hit     entity.HitTestResult

	presses, releases, moves []entity.MouseEvent
	keys                     []entity.KeyEvent
	wheelHandled             bool
	wheels                   int
	keyHandled               bool
	menuItems                []entity.MenuItem
	menuCalls                int
}

func (f *fakeFrame) View() port.FrameView                      { return f.view }
func (f *fakeFrame) Load(entity.LoadRequest) error             { return nil }
func (f *fakeFrame) Stop()                                     {}
func (f *fakeFrame) Reload(bool)                               {}
func (f *fakeFrame) DocumentLoaderURL() string                 { return "" }
func (f *fakeFrame) URL() string                               { return "" }
func (f *fakeFrame) Title() string                             { return "" }
func (f *fakeFrame) HitTest(entity.Point) entity.HitTestResult { return f.hit }
func (f *fakeFrame) FocusedElement() port.Element              { return f.focused }
func (f *fakeFrame) Selection() entity.DragData                { return entity.DragData{} }
func (f *fakeFrame) ExecuteCommand(string) bool                { return false }

func (f *fakeFrame) HandleMousePress(ev entity.MouseEvent) bool {
	f.presses = append(f.presses, ev)
	return true
}

func (f *fakeFrame) HandleMouseMove(ev entity.MouseEvent) bool {
	f.moves = append(f.moves, ev)
	return true
}

func (f *fakeFrame) HandleMouseRelease(ev entity.MouseEvent) bool {
	f.releases = append(f.releases, ev)
	return true
}

func (f *fakeFrame) HandleWheel(entity.WheelEvent) bool {
	f.wheels++
	return f.wheelHandled
}

func (f *fakeFrame) HandleKey(ev entity.KeyEvent) bool {
	f.keys = append(f.keys, ev)
	return f.keyHandled
}

func (f *fakeFrame) HandleContextMenu(entity.MouseEvent) []entity.MenuItem {
	f.menuCalls++
	return f.menuItems
}

type fakeDrag struct {
	entered, updated, exited int
	events                   []string
}

func (d *fakeDrag) DragEntered(entity.DragData, entity.Point) entity.DragOperation {
	d.entered++
	d.events = append(d.events, "entered")
	return entity.DragOperationCopy
}

func (d *fakeDrag) DragUpdated(entity.DragData, entity.Point) entity.DragOperation {
	d.updated++
	d.events = append(d.events, "updated")
	return entity.DragOperationCopy
}

func (d *fakeDrag) DragExited(entity.DragData, entity.Point) {
	d.exited++
	d.events = append(d.events, "exited")
}
func (d *fakeDrag) PerformDrop(entity.DragData, entity.Point) bool       { return true }
func (d *fakeDrag) DragSourceEndedAt(entity.Point, entity.DragOperation) {}

type fakeContent struct {
	frame *fakeFrame
	drag  *fakeDrag

	initialFocus, advance bool
	initialCalls          []bool
	advanceCalls          []bool
	cleared               int
}

func (c *fakeContent) MainFrame() port.ContentFrame {
	if c.frame == nil {
		return nil
	}
	return c.frame
}
func (c *fakeContent) FocusedFrame() port.ContentFrame          { return c.MainFrame() }
func (c *fakeContent) SetActive(bool)                           {}
func (c *fakeContent) SetFocused(bool)                          {}
func (c *fakeContent) PageScaleFactor() float64                 { return 1 }
func (c *fakeContent) SetPageScaleFactor(float64, entity.Point) {}
func (c *fakeContent) ClearFocus()                              { c.cleared++ }
func (c *fakeContent) DragController() port.DragController {
	if c.drag == nil {
		return nil
	}
	return c.drag
}
func (c *fakeContent) WillEnterFullscreen(port.Element) {}
func (c *fakeContent) DidEnterFullscreen(port.Element)  {}
func (c *fakeContent) WillExitFullscreen(port.Element)  {}
func (c *fakeContent) DidExitFullscreen(port.Element)   {}
func (c *fakeContent) Close()                           {}

func (c *fakeContent) SetInitialFocus(forward bool) bool {
	c.initialCalls = append(c.initialCalls, forward)
	return c.initialFocus
}

func (c *fakeContent) AdvanceFocus(forward bool) bool {
	c.advanceCalls = append(c.advanceCalls, forward)
	return c.advance
}

type scrollCall struct {
	dx, dy int
	unit   entity.ScrollUnit
}

type fakePage struct {
	content port.ContentPage
	host    port.Host
	size    entity.Size
	active  bool
	cursor  entity.CursorKind
	drag    entity.DragState

	scrolls    []scrollCall
	setScrolls []entity.Point
	wheelZooms []entity.Modifiers
	back, fwd  int
	dragEnds   []bool
}

func newFakePage(content port.ContentPage, host port.Host) *fakePage {
	return &fakePage{content: content, host: port.MergeHost(host), size: entity.Size{Width: 800, Height: 600}}
}

func (p *fakePage) Content() port.ContentPage     { return p.content }
func (p *fakePage) Host() port.Host               { return p.host }
func (p *fakePage) VisibleSize() entity.Size      { return p.size }
func (p *fakePage) IsActive() bool                { return p.active }
func (p *fakePage) SetActive(a bool)              { p.active = a }
func (p *fakePage) SetCursor(c entity.CursorKind) { p.cursor = c }
func (p *fakePage) ScrollBy(dx, dy int, unit entity.ScrollUnit) {
	p.scrolls = append(p.scrolls, scrollCall{dx, dy, unit})
}
func (p *fakePage) SetScroll(pt entity.Point) { p.setScrolls = append(p.setScrolls, pt) }
func (p *fakePage) WheelScrollOrZoomBy(_, _ float64, mods entity.Modifiers) {
	p.wheelZooms = append(p.wheelZooms, mods)
}
func (p *fakePage) GoBack() bool                 { p.back++; return true }
func (p *fakePage) GoForward() bool              { p.fwd++; return true }
func (p *fakePage) DragState() *entity.DragState { return &p.drag }
func (p *fakePage) EndDragging(_ entity.Point, cancelled bool) {
	p.dragEnds = append(p.dragEnds, cancelled)
	p.drag.Finish(cancelled)
}
