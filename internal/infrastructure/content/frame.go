package content

import (
	"errors"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/logging"
)

// Context menu item ids.
const (
	MenuOpenLink = iota + 1
	MenuOpenLinkInNewWindow
	MenuCopyLink
	MenuCut
	MenuCopy
	MenuPaste
	MenuBack
	MenuForward
	MenuReload
)

var errCancelled = errors.New("load cancelled")

// Frame is the main frame of a built-in page.
type Frame struct {
	page   *Page
	id     entity.FrameID
	client port.FrameLoaderClient
	policy port.RequestPolicy
	logger zerolog.Logger

	view *View
	doc  *document

	lastRequest  entity.LoadRequest
	loaderURL    string
	url          string
	navigationID entity.NavigationID
	loading      bool
	cancelled    bool
	blocked      []string

	focused   *box
	pressed   *box
	selectAll bool
}

var (
	_ port.ContentFrame     = (*Frame)(nil)
	_ port.PrintableContent = (*Frame)(nil)
)

func newFrame(p *Page, cfg port.PageConfig) *Frame {
	f := &Frame{
		page:   p,
		id:     cfg.MainFrameID,
		client: cfg.Client,
		policy: cfg.Policy,
		logger: p.engine.logger.With().
			Uint64(logging.FieldPageID, uint64(cfg.PageID)).
			Uint64(logging.FieldFrameID, uint64(cfg.MainFrameID)).
			Logger(),
	}
	f.view = &View{frame: f}
	return f
}

// View returns nil once the page is closed. Before the first commit it
// shows an empty document.
func (f *Frame) View() port.FrameView {
	if f.page.closed {
		return nil
	}
	return f.view
}

// Load fetches and commits req synchronously, reporting every step to the
// loader client.
func (f *Frame) Load(req entity.LoadRequest) error {
	if f.page.closed {
		return errors.New("content page closed")
	}
	target := req.URL
	if target == "" {
		target = aboutBlank
	}
	f.lastRequest = req
	f.loaderURL = target
	f.navigationID = f.client.ConsumePendingNavigationID()
	f.loading, f.cancelled = true, false
	defer func() { f.loading = false }()

	f.client.DidStartProvisionalLoad(target)
	f.client.ProgressEstimateChanged(0.1)

	data := req.Data
	if data == nil {
		var err error
		data, err = f.page.engine.fetch(f.page.engine.ctx, target)
		if err != nil {
			f.fail(target, entity.ResourceErrorGeneral, err)
			return err
		}
	}
	if f.cancelled {
		f.fail(target, entity.ResourceErrorCancellation, errCancelled)
		return errCancelled
	}

	doc, err := parseDocument(data, target)
	if err != nil {
		f.fail(target, entity.ResourceErrorGeneral, err)
		return err
	}
	doc.layout(f.view.size.Width)
	f.doc = doc
	f.url = target
	f.focused, f.pressed, f.selectAll = nil, nil, false
	f.blocked = nil
	f.view.scroll = entity.Point{}

	f.client.DidCommitLoad(target)
	if doc.title != "" {
		f.client.DidReceiveTitle(doc.title)
	}
	f.client.DidChangeContentsSize(f.view.ContentsSize())

	if err := f.loadSubresources(); err != nil {
		f.fail(target, entity.ResourceErrorCancellation, err)
		return err
	}
	f.client.ProgressEstimateChanged(1)
	f.client.DidFinishLoad()
	f.logger.Debug().
		Str("url", target).
		Int("boxes", len(doc.boxes)).
		Int("blocked", len(f.blocked)).
		Uint64(logging.FieldNavigationID, uint64(f.navigationID)).
		Msg("document loaded")
	return nil
}

// loadSubresources runs every subresource through the request policy. Their
// bytes are never fetched; only the bookkeeping of a load is exercised.
func (f *Frame) loadSubresources() error {
	n := len(f.doc.subres)
	for i, u := range f.doc.subres {
		if f.cancelled {
			return errCancelled
		}
		id := entity.ResourceRequestID(f.page.engine.nextResourceID())
		f.client.AddResourceRequest(id)
		if f.policy != nil && !f.policy.ShouldAllowRequest(u, f.url, f.id) {
			f.blocked = append(f.blocked, u)
		}
		f.client.RemoveResourceRequest(id)
		f.client.ProgressEstimateChanged(0.1 + 0.9*float64(i+1)/float64(n+1))
	}
	return nil
}

func (f *Frame) fail(target string, kind entity.ResourceErrorType, err error) {
	f.client.DidFailLoad(&entity.ResourceError{
		Type:        kind,
		Domain:      "pagecore",
		FailingURL:  target,
		Description: err.Error(),
	})
}

// Stop cancels a load in progress.
func (f *Frame) Stop() {
	if f.loading {
		f.cancelled = true
	}
}

// Reload loads the last request again.
func (f *Frame) Reload(fromOrigin bool) {
	if f.loaderURL == "" {
		return
	}
	req := f.lastRequest
	req.IgnoreCaches = fromOrigin
	req.NavigationID = 0
	if err := f.Load(req); err != nil {
		f.logger.Warn().Err(err).Msg("reload failed")
	}
}

func (f *Frame) DocumentLoaderURL() string { return f.loaderURL }

func (f *Frame) URL() string { return f.url }

func (f *Frame) Title() string {
	if f.doc == nil {
		return ""
	}
	return f.doc.title
}

// BlockedResources lists the subresources refused by the request policy
// during the last load.
func (f *Frame) BlockedResources() []string { return append([]string(nil), f.blocked...) }

// Subresources lists every subresource of the current document.
func (f *Frame) Subresources() []string {
	if f.doc == nil {
		return nil
	}
	return append([]string(nil), f.doc.subres...)
}

func (f *Frame) relayout() {
	if f.doc == nil {
		return
	}
	f.doc.layout(f.view.size.Width)
	f.focused = f.relocate(f.focused)
	f.pressed = nil
	f.client.DidChangeContentsSize(f.view.ContentsSize())
}

// relocate finds the box of the same element after a relayout.
func (f *Frame) relocate(old *box) *box {
	if old == nil {
		return nil
	}
	for _, b := range f.doc.boxes {
		if (old.elem != nil && b.elem == old.elem) || (old.elem == nil && b.href == old.href && b.text == old.text) {
			return b
		}
	}
	return nil
}

func (f *Frame) boxAt(p entity.Point) *box {
	if f.doc == nil {
		return nil
	}
	return f.doc.boxAt(f.view.toDocument(p))
}

// focus moves keyboard focus to b, which may be nil. The client hears about
// every editable element that gains focus, and gets a nil element when focus
// leaves editing.
func (f *Frame) focus(b *box) {
	was := f.editing()
	f.focused = b
	if el := f.editing(); el != nil {
		f.client.StartedEditingElement(el)
	} else if was != nil {
		f.client.StartedEditingElement(nil)
	}
}

func (f *Frame) HandleMousePress(ev entity.MouseEvent) bool {
	b := f.boxAt(ev.Position)
	f.pressed = b
	f.selectAll = false
	if b != nil && b.focusable() {
		f.focus(b)
	} else {
		f.focus(nil)
	}
	return b != nil
}

func (f *Frame) HandleMouseMove(entity.MouseEvent) bool { return f.doc != nil }

// HandleMouseRelease follows a link clicked with the left button.
func (f *Frame) HandleMouseRelease(ev entity.MouseEvent) bool {
	b := f.boxAt(ev.Position)
	pressed := f.pressed
	f.pressed = nil
	if b == nil || b != pressed {
		return b != nil
	}
	if b.kind == boxLink && ev.Button == entity.MouseButtonLeft && ev.Modifiers == 0 {
		f.follow(b.href)
	}
	return true
}

func (f *Frame) follow(href string) {
	if href == "" {
		return
	}
	if err := f.Load(entity.LoadRequest{URL: href}); err != nil {
		f.logger.Debug().Err(err).Str("url", href).Msg("link navigation failed")
	}
}

// HandleWheel leaves scrolling to the page session.
func (f *Frame) HandleWheel(entity.WheelEvent) bool { return false }

// HandleKey edits the focused field. Return on a focused link follows it.
func (f *Frame) HandleKey(ev entity.KeyEvent) bool {
	if !ev.Down || f.focused == nil {
		return false
	}
	b := f.focused
	if b.kind == boxLink {
		if ev.Key == entity.KeyReturn {
			f.follow(b.href)
			return true
		}
		return false
	}
	if b.elem == nil || !b.elem.IsEditable() {
		return false
	}
	if ev.Modifiers.Has(entity.ModControl) || ev.Modifiers.Has(entity.ModMeta) {
		switch ev.Rune {
		case 'a':
			return f.ExecuteCommand("SelectAll")
		case 'c':
			return f.ExecuteCommand("Copy")
		case 'v':
			return f.ExecuteCommand("Paste")
		}
		return false
	}
	el := b.elem
	switch ev.Key {
	case entity.KeyCharacter:
		if ev.Rune == 0 {
			return false
		}
		el.SetValue(el.Value() + string(ev.Rune))
	case entity.KeySpace:
		el.SetValue(el.Value() + " ")
	case entity.KeyBackspace:
		r := []rune(el.Value())
		if len(r) > 0 {
			el.SetValue(string(r[:len(r)-1]))
		}
	default:
		return false
	}
	return true
}

// HandleContextMenu returns the native items for what lies under the
// pointer.
func (f *Frame) HandleContextMenu(ev entity.MouseEvent) []entity.MenuItem {
	b := f.boxAt(ev.Position)
	switch {
	case b != nil && b.kind == boxLink:
		return []entity.MenuItem{
			{ID: MenuOpenLink, Title: "Open Link", Enabled: true},
			{ID: MenuOpenLinkInNewWindow, Title: "Open Link in New Window", Enabled: true},
			{Separator: true},
			{ID: MenuCopyLink, Title: "Copy Link", Enabled: true},
		}
	case b != nil && b.elem != nil && b.elem.IsEditable():
		hasText := b.elem.Value() != ""
		return []entity.MenuItem{
			{ID: MenuCut, Title: "Cut", Enabled: hasText},
			{ID: MenuCopy, Title: "Copy", Enabled: hasText},
			{ID: MenuPaste, Title: "Paste", Enabled: f.page.engine.clipboard != ""},
		}
	default:
		return []entity.MenuItem{
			{ID: MenuBack, Title: "Back", Enabled: true},
			{ID: MenuForward, Title: "Forward", Enabled: true},
			{ID: MenuReload, Title: "Reload", Enabled: f.doc != nil},
		}
	}
}

func (f *Frame) HitTest(p entity.Point) entity.HitTestResult {
	b := f.boxAt(p)
	if b == nil {
		return entity.HitTestResult{Cursor: entity.CursorPointer, IsSelected: f.selectAll}
	}
	r := entity.HitTestResult{Cursor: entity.CursorPointer, IsSelected: f.selectAll}
	switch b.kind {
	case boxLink:
		r.LinkURL, r.LinkTitle, r.Cursor = b.href, b.text, entity.CursorHand
	case boxImage:
		r.ImageURL = b.src
	case boxInput:
		if b.elem != nil && b.elem.IsEditable() {
			r.IsEditable, r.Cursor = true, entity.CursorIBeam
		}
	case boxText, boxHeading:
		r.Cursor = entity.CursorIBeam
	}
	return r
}

// FocusedElement returns the focused form control. Links take focus but
// have no element handle.
func (f *Frame) FocusedElement() port.Element {
	if f.focused == nil || f.focused.elem == nil || f.focused.kind == boxLink {
		return nil
	}
	return f.focused.elem
}

// Selection is the drag payload: the pressed link or text, or the whole
// document after SelectAll.
func (f *Frame) Selection() entity.DragData {
	if f.selectAll {
		return entity.DragData{Text: f.documentText(), Title: f.Title()}
	}
	b := f.pressed
	if b == nil {
		return entity.DragData{}
	}
	switch b.kind {
	case boxLink:
		return entity.DragData{Text: b.href, URL: b.href, Title: b.text}
	case boxImage:
		return entity.DragData{URL: b.src, Title: b.text}
	case boxInput:
		if b.elem != nil {
			return entity.DragData{Text: b.elem.Value()}
		}
	}
	return entity.DragData{Text: b.text}
}

func (f *Frame) documentText() string {
	if f.doc == nil {
		return ""
	}
	var parts []string
	for _, b := range f.doc.boxes {
		if b.text != "" {
			parts = append(parts, b.text)
		}
	}
	return strings.Join(parts, "\n")
}

// ExecuteCommand runs an editing command by name.
func (f *Frame) ExecuteCommand(name string) bool {
	e := f.page.engine
	switch name {
	case "SelectAll":
		f.selectAll = f.doc != nil
		return f.selectAll
	case "Unselect":
		f.selectAll = false
		return true
	case "Copy":
		if el := f.editing(); el != nil && el.Value() != "" {
			e.clipboard = el.Value()
			return true
		}
		if sel := f.Selection(); sel.Text != "" {
			e.clipboard = sel.Text
			return true
		}
		return false
	case "Cut":
		if el := f.editing(); el != nil && el.Value() != "" {
			e.clipboard = el.Value()
			el.SetValue("")
			return true
		}
		return false
	case "Paste":
		if el := f.editing(); el != nil && e.clipboard != "" {
			el.SetValue(el.Value() + e.clipboard)
			return true
		}
		return false
	}
	return false
}

func (f *Frame) editing() *Element {
	if f.focused == nil || f.focused.elem == nil || !f.focused.elem.IsEditable() {
		return nil
	}
	return f.focused.elem
}

func (f *Frame) pageHeight() float64 {
	w, _ := f.PageSize()
	return w * f.page.engine.aspect
}

// PageSize is the layout width and the matching paper height.
func (f *Frame) PageSize() (float64, float64) {
	w := float64(f.view.size.Width)
	if f.doc != nil {
		w = float64(f.doc.width)
	}
	if w <= 0 {
		w = 800
	}
	return w, w * f.page.engine.aspect
}

// PageCount splits the document into pages of PageSize.
func (f *Frame) PageCount() int {
	if f.doc == nil {
		return 0
	}
	return max(int(math.Ceil(float64(f.doc.height)/f.pageHeight())), 1)
}

// PaintPage paints one printed page. Boxes straddling a page break are drawn
// on both pages.
func (f *Frame) PaintPage(dc *gg.Context, index int, printBackgrounds bool) {
	if f.doc == nil {
		return
	}
	w, h := f.PageSize()
	if printBackgrounds {
		dc.SetRGB(1, 1, 1)
		dc.DrawRectangle(0, 0, w, h)
		_ = dc.Fill()
	}
	top := float64(index) * h
	band := entity.NewRect(0, int(top), int(math.Ceil(w)), int(math.Ceil(h)))
	dc.Push()
	dc.Translate(0, -top)
	for _, b := range f.doc.boxes {
		if b.rect.Intersect(band).IsEmpty() {
			continue
		}
		paintBox(dc, b, false, printBackgrounds)
	}
	dc.Pop()
}
