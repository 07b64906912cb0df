package port

import "github.com/bnema/pagecore/internal/domain/entity"

// RenderHost receives paint and presentation requests from a page.
type RenderHost interface {
	// Invalidate asks the host to schedule a draw. force requests a full blit.
	Invalidate(force bool)
	Scroll(x, y int)
	SetDocumentSize(width, height int)
	SetCursor(cursor entity.CursorKind)
	EnterFullscreen()
	ExitFullscreen()
	Print()
}

// NavigationObserver follows the load lifecycle of a page and answers
// navigation policy queries.
type NavigationObserver interface {
	ChangedTitle(title string)
	ChangedURL(url string)
	DidStartLoading()
	DidStopLoading()
	DidFailWithError(err *entity.ResourceError)
	// CanHandleRequest returning false silently drops the load.
	CanHandleRequest(url string) bool
	ShouldNavigateToURL(url string, isNewWindow bool) bool
	DidLoadInsecureContent()
	ProgressStarted()
	ProgressUpdated(fraction float64)
	ProgressFinished()
	HoveredURLChanged(url string)
	FavIconLoad(url string) bool
	FavIconLoaded(data []byte, url string)
}

// FocusHost moves keyboard focus between pages.
type FocusHost interface {
	ActivateNext()
	ActivatePrevious()
	GoActive()
	GoInactive()
}

// WindowHost opens new pages on behalf of content.
type WindowHost interface {
	CanOpenWindow(name, features string) bool
	// DoOpenWindow returns the new page, or an invalid id when refused.
	DoOpenWindow() entity.PageID
	OpenLink(url string, disposition entity.OpenDisposition)
}

// MenuHost shows popup and context menus.
type MenuHost interface {
	// Popup returns the selected index, or -1.
	Popup(rect entity.Rect, items []entity.MenuItem) int
	ContextMenu(p entity.Point, items []entity.MenuItem, hit entity.HitTestResult) bool
}

// ConsoleLevel is the severity of a console message.
type ConsoleLevel int

const (
	ConsoleLog ConsoleLevel = iota
	ConsoleWarning
	ConsoleError
	ConsoleDebug
)

// AuthChallenge describes an HTTP authentication request.
type AuthChallenge struct {
	Host   string
	Realm  string
	Scheme string
}

// DialogHost shows modal dialogs.
type DialogHost interface {
	Alert(message string)
	Confirm(message string) bool
	Prompt(message, defaultValue string) (string, bool)
	File(multiple bool, accept []string) []string
	AuthChallenge(ch AuthChallenge) bool
	Console(url, message string, level ConsoleLevel, line, column int)
}

// DownloadPolicy is the host answer to a download question.
type DownloadPolicy int

const (
	DownloadIgnore DownloadPolicy = iota
	DownloadUse
	DownloadSave
)

// DownloadHost handles downloads started by a page.
type DownloadHost interface {
	Download(url, suggestedName string)
	DownloadAsk(url, mimeType, suggestedName string) DownloadPolicy
}

// AutofillHost stores and offers login credentials.
type AutofillHost interface {
	// HasAutofill is called when a login form gained focus.
	HasAutofill(formAction string)
	StoreAutofill(formAction, username, password string)
}

// DragHost tracks the window following the pointer during a drag.
type DragHost interface {
	OpenDragWindow(rect entity.Rect)
	MoveDragWindow(p entity.Point)
	CloseDragWindow()
}

// Host bundles the capabilities a page may call. Absent capabilities are
// filled with NopHost by MergeHost.
type Host struct {
	Render     RenderHost
	Navigation NavigationObserver
	Focus      FocusHost
	Window     WindowHost
	Menu       MenuHost
	Dialog     DialogHost
	Download   DownloadHost
	Autofill   AutofillHost
	Drag       DragHost
}

// NewHost builds a Host from any value, using every capability it implements.
func NewHost(impl any) Host {
	var h Host
	h.Render, _ = impl.(RenderHost)
	h.Navigation, _ = impl.(NavigationObserver)
	h.Focus, _ = impl.(FocusHost)
	h.Window, _ = impl.(WindowHost)
	h.Menu, _ = impl.(MenuHost)
	h.Dialog, _ = impl.(DialogHost)
	h.Download, _ = impl.(DownloadHost)
	h.Autofill, _ = impl.(AutofillHost)
	h.Drag, _ = impl.(DragHost)
	return MergeHost(h)
}

// MergeHost returns h with nil capabilities replaced by no-ops.
func MergeHost(h Host) Host {
	nop := NopHost{}
	if h.Render == nil {
		h.Render = nop
	}
	if h.Navigation == nil {
		h.Navigation = nop
	}
	if h.Focus == nil {
		h.Focus = nop
	}
	if h.Window == nil {
		h.Window = nop
	}
	if h.Menu == nil {
		h.Menu = nop
	}
	if h.Dialog == nil {
		h.Dialog = nop
	}
	if h.Download == nil {
		h.Download = nop
	}
	if h.Autofill == nil {
		h.Autofill = nop
	}
	if h.Drag == nil {
		h.Drag = nop
	}
	return h
}

// NopHost implements every host capability and does nothing. Queries answer
// permissively for navigation and negatively for everything else.
type NopHost struct{}

func (NopHost) Invalidate(bool)                        {}
func (NopHost) Scroll(int, int)                        {}
func (NopHost) SetDocumentSize(int, int)               {}
func (NopHost) SetCursor(entity.CursorKind)            {}
func (NopHost) EnterFullscreen()                       {}
func (NopHost) ExitFullscreen()                        {}
func (NopHost) Print()                                 {}
func (NopHost) ChangedTitle(string)                    {}
func (NopHost) ChangedURL(string)                      {}
func (NopHost) DidStartLoading()                       {}
func (NopHost) DidStopLoading()                        {}
func (NopHost) DidFailWithError(*entity.ResourceError) {}
func (NopHost) CanHandleRequest(string) bool           { return true }
func (NopHost) ShouldNavigateToURL(string, bool) bool {
	return true
}
func (NopHost) DidLoadInsecureContent()                  {}
func (NopHost) ProgressStarted()                         {}
func (NopHost) ProgressUpdated(float64)                  {}
func (NopHost) ProgressFinished()                        {}
func (NopHost) HoveredURLChanged(string)                 {}
func (NopHost) FavIconLoad(string) bool                  { return false }
func (NopHost) FavIconLoaded([]byte, string)             {}
func (NopHost) ActivateNext()                            {}
func (NopHost) ActivatePrevious()                        {}
func (NopHost) GoActive()                                {}
func (NopHost) GoInactive()                              {}
func (NopHost) CanOpenWindow(string, string) bool        { return false }
func (NopHost) DoOpenWindow() entity.PageID              { return 0 }
func (NopHost) OpenLink(string, entity.OpenDisposition)  {}
func (NopHost) Popup(entity.Rect, []entity.MenuItem) int { return -1 }
func (NopHost) ContextMenu(entity.Point, []entity.MenuItem, entity.HitTestResult) bool {
	return false
}
func (NopHost) Alert(string)                                   {}
func (NopHost) Confirm(string) bool                            { return false }
func (NopHost) Prompt(string, string) (string, bool)           { return "", false }
func (NopHost) File(bool, []string) []string                   { return nil }
func (NopHost) AuthChallenge(AuthChallenge) bool               { return false }
func (NopHost) Console(string, string, ConsoleLevel, int, int) {}
func (NopHost) Download(string, string)                        {}
func (NopHost) DownloadAsk(string, string, string) DownloadPolicy {
	return DownloadIgnore
}
func (NopHost) HasAutofill(string)                   {}
func (NopHost) StoreAutofill(string, string, string) {}
func (NopHost) OpenDragWindow(entity.Rect)           {}
func (NopHost) MoveDragWindow(entity.Point)          {}
func (NopHost) CloseDragWindow()                     {}
