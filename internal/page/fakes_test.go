package page

import (
	"image"
	"strings"

	"github.com/gogpu/gg"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

type fakeView struct {
	scroll   entity.Point
	min, max entity.Point
	size     entity.Size
	contents entity.Size
	modes    [2]port.ScrollbarMode
	painted  []entity.Rect
}

func newFakeView() *fakeView {
	return &fakeView{
		max:      entity.Point{X: 200, Y: 1400},
		size:     entity.Size{Width: 800, Height: 600},
		contents: entity.Size{Width: 1000, Height: 2000},
	}
}

func (v *fakeView) PaintContents(dc *gg.Context, dirty entity.Rect, _ port.InterpolationQuality) {
	v.painted = append(v.painted, dirty)
	dc.SetRGB(0.2, 0.4, 0.6)
	dc.DrawRectangle(float64(dirty.X), float64(dirty.Y), float64(dirty.Width), float64(dirty.Height))
	_ = dc.Fill()
}
func (v *fakeView) ScrollPosition() entity.Point        { return v.scroll }
func (v *fakeView) SetScrollPosition(p entity.Point)    { v.scroll = p }
func (v *fakeView) MinimumScrollPosition() entity.Point { return v.min }
func (v *fakeView) MaximumScrollPosition() entity.Point { return v.max }
func (v *fakeView) VisibleSize() entity.Size            { return v.size }
func (v *fakeView) ContentsSize() entity.Size           { return v.contents }
func (v *fakeView) Resize(s entity.Size)                { v.size = s }
func (v *fakeView) SetScrollbarModes(h, vm port.ScrollbarMode) {
	v.modes = [2]port.ScrollbarMode{h, vm}
}

type fakeForm struct {
	action   string
	elements []port.Element
}

func (f *fakeForm) Action() string           { return f.action }
func (f *fakeForm) Elements() []port.Element { return f.elements }

type fakeElement struct {
	tag, typ, value string
	form            *fakeForm
}

func (e *fakeElement) TagName() string   { return e.tag }
func (e *fakeElement) InputType() string { return e.typ }
func (e *fakeElement) Name() string      { return e.typ }
func (e *fakeElement) Value() string     { return e.value }
func (e *fakeElement) SetValue(v string) { e.value = v }
func (e *fakeElement) IsEditable() bool  { return e.tag == "input" }
func (e *fakeElement) Form() port.Form {
	if e.form == nil {
		return nil
	}
	return e.form
}

type fakeFrame struct {
	client    port.FrameLoaderClient
	view      *fakeView
	loaderURL string

	loads    []entity.LoadRequest
	stops    int
	reloads  []bool
	selected entity.DragData
}

func (f *fakeFrame) View() port.FrameView {
	if f.view == nil {
		return nil
	}
	return f.view
}

func (f *fakeFrame) Load(req entity.LoadRequest) error {
	req.NavigationID = f.client.ConsumePendingNavigationID()
	f.loads = append(f.loads, req)
	f.loaderURL = req.URL
	return nil
}

func (f *fakeFrame) Stop()                                                 { f.stops++ }
func (f *fakeFrame) Reload(fromOrigin bool)                                { f.reloads = append(f.reloads, fromOrigin) }
func (f *fakeFrame) DocumentLoaderURL() string                             { return f.loaderURL }
func (f *fakeFrame) URL() string                                           { return f.loaderURL }
func (f *fakeFrame) Title() string                                         { return "" }
func (f *fakeFrame) HandleMousePress(entity.MouseEvent) bool               { return true }
func (f *fakeFrame) HandleMouseMove(entity.MouseEvent) bool                { return true }
func (f *fakeFrame) HandleMouseRelease(entity.MouseEvent) bool             { return true }
func (f *fakeFrame) HandleWheel(entity.WheelEvent) bool                    { return false }
func (f *fakeFrame) HandleKey(entity.KeyEvent) bool                        { return false }
func (f *fakeFrame) HandleContextMenu(entity.MouseEvent) []entity.MenuItem { return nil }
func (f *fakeFrame) HitTest(entity.Point) entity.HitTestResult             { return entity.HitTestResult{} }
func (f *fakeFrame) FocusedElement() port.Element                          { return nil }
func (f *fakeFrame) Selection() entity.DragData                            { return f.selected }
func (f *fakeFrame) ExecuteCommand(string) bool                            { return false }

// printableFrame adds a two page document.
type printableFrame struct {
	*fakeFrame
	paintedPages []int
}

func (f *printableFrame) PageCount() int               { return 2 }
func (f *printableFrame) PageSize() (float64, float64) { return 200, 300 }
func (f *printableFrame) PaintPage(dc *gg.Context, index int, _ bool) {
	f.paintedPages = append(f.paintedPages, index)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(10, 10, 50, 50)
	_ = dc.Fill()
}

type fakeDrag struct {
	drops, exits int
	endedWith    []entity.DragOperation
	events       []string
}

func (d *fakeDrag) DragEntered(entity.DragData, entity.Point) entity.DragOperation {
	d.events = append(d.events, "entered")
	return entity.DragOperationCopy
}
func (d *fakeDrag) DragUpdated(entity.DragData, entity.Point) entity.DragOperation {
	d.events = append(d.events, "updated")
	return entity.DragOperationCopy
}
func (d *fakeDrag) DragExited(entity.DragData, entity.Point) {
	d.exits++
	d.events = append(d.events, "exited")
}
func (d *fakeDrag) PerformDrop(entity.DragData, entity.Point) bool {
	d.drops++
	d.events = append(d.events, "performed")
	return true
}
func (d *fakeDrag) DragSourceEndedAt(_ entity.Point, op entity.DragOperation) {
	d.endedWith = append(d.endedWith, op)
}

type fakeContent struct {
	frame  port.ContentFrame
	drag   *fakeDrag
	scale  float64
	scales []float64

	active, focused bool
	fullscreenCalls []string
	order           *[]string
	closed          bool
}

func (c *fakeContent) MainFrame() port.ContentFrame    { return c.frame }
func (c *fakeContent) FocusedFrame() port.ContentFrame { return c.frame }
func (c *fakeContent) SetActive(a bool)                { c.active = a }
func (c *fakeContent) SetFocused(f bool)               { c.focused = f }
func (c *fakeContent) PageScaleFactor() float64        { return c.scale }
func (c *fakeContent) SetPageScaleFactor(s float64, _ entity.Point) {
	c.scale = s
	c.scales = append(c.scales, s)
}
func (c *fakeContent) SetInitialFocus(bool) bool           { return false }
func (c *fakeContent) AdvanceFocus(bool) bool              { return false }
func (c *fakeContent) ClearFocus()                         {}
func (c *fakeContent) DragController() port.DragController { return c.drag }
func (c *fakeContent) WillEnterFullscreen(port.Element)    { c.recordFullscreen("will-enter") }
func (c *fakeContent) DidEnterFullscreen(port.Element)     { c.recordFullscreen("did-enter") }
func (c *fakeContent) WillExitFullscreen(port.Element)     { c.recordFullscreen("will-exit") }
func (c *fakeContent) DidExitFullscreen(port.Element)      { c.recordFullscreen("did-exit") }
func (c *fakeContent) Close()                              { c.closed = true }

func (c *fakeContent) recordFullscreen(ev string) {
	c.fullscreenCalls = append(c.fullscreenCalls, ev)
	if c.order != nil {
		*c.order = append(*c.order, ev)
	}
}

type fakeEngine struct {
	content   *fakeContent
	printable bool
}

func (e *fakeEngine) NewPage(cfg port.PageConfig) (port.ContentPage, error) {
	frame := &fakeFrame{client: cfg.Client, view: newFakeView()}
	e.content = &fakeContent{frame: frame, drag: &fakeDrag{}, scale: 1}
	if e.printable {
		e.content.frame = &printableFrame{fakeFrame: frame}
	}
	return e.content, nil
}

func (e *fakeEngine) frame() *fakeFrame {
	if p, ok := e.content.frame.(*printableFrame); ok {
		return p.fakeFrame
	}
	return e.content.frame.(*fakeFrame)
}

// recordingHost records the host callbacks a test cares about.
type recordingHost struct {
	port.NopHost

	refuse       bool
	invalidates  []bool
	scrolls      []entity.Point
	docSizes     []entity.Size
	cursors      []entity.CursorKind
	urls         []string
	titles       []string
	errors       []*entity.ResourceError
	loading      []bool
	progress     []float64
	progressDone int
	fullscreen   []string
	order        *[]string
	autofill     []string
	stored       [][3]string
	dragWindows  []entity.Rect
	dragClosed   int
	prints       int
}

func (h *recordingHost) Invalidate(force bool) { h.invalidates = append(h.invalidates, force) }
func (h *recordingHost) Scroll(x, y int)       { h.scrolls = append(h.scrolls, entity.Point{X: x, Y: y}) }
func (h *recordingHost) SetDocumentSize(w, hh int) {
	h.docSizes = append(h.docSizes, entity.Size{Width: w, Height: hh})
}
func (h *recordingHost) SetCursor(c entity.CursorKind)              { h.cursors = append(h.cursors, c) }
func (h *recordingHost) EnterFullscreen()                           { h.recordFullscreen("host-enter") }
func (h *recordingHost) ExitFullscreen()                            { h.recordFullscreen("host-exit") }
func (h *recordingHost) Print()                                     { h.prints++ }
func (h *recordingHost) ChangedTitle(t string)                      { h.titles = append(h.titles, t) }
func (h *recordingHost) ChangedURL(u string)                        { h.urls = append(h.urls, u) }
func (h *recordingHost) DidStartLoading()                           { h.loading = append(h.loading, true) }
func (h *recordingHost) DidStopLoading()                            { h.loading = append(h.loading, false) }
func (h *recordingHost) DidFailWithError(err *entity.ResourceError) { h.errors = append(h.errors, err) }
func (h *recordingHost) CanHandleRequest(string) bool               { return true }
func (h *recordingHost) ShouldNavigateToURL(string, bool) bool      { return !h.refuse }
func (h *recordingHost) ProgressUpdated(f float64)                  { h.progress = append(h.progress, f) }
func (h *recordingHost) ProgressFinished()                          { h.progressDone++ }
func (h *recordingHost) HasAutofill(action string)                  { h.autofill = append(h.autofill, action) }
func (h *recordingHost) StoreAutofill(action, u, p string) {
	h.stored = append(h.stored, [3]string{action, u, p})
}
func (h *recordingHost) OpenDragWindow(r entity.Rect) { h.dragWindows = append(h.dragWindows, r) }
func (h *recordingHost) CloseDragWindow()             { h.dragClosed++ }

type blit struct {
	src image.Rectangle
	dst image.Point
}

type recordingTarget struct{ blits []blit }

func (t *recordingTarget) Blit(_ image.Image, r image.Rectangle, dst image.Point) {
	t.blits = append(t.blits, blit{src: r, dst: dst})
}

func (h *recordingHost) recordFullscreen(ev string) {
	h.fullscreen = append(h.fullscreen, strings.TrimPrefix(ev, "host-"))
	if h.order != nil {
		*h.order = append(*h.order, ev)
	}
}
