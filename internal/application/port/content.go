package port

import (
	"fmt"
	"image"
	"strings"

	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/gogpu/gg"
)

// InterpolationQuality selects image sampling when content is scaled.
type InterpolationQuality int

const (
	InterpolationDefault InterpolationQuality = iota
	InterpolationLow
	InterpolationMedium
	InterpolationHigh
)

// ParseInterpolationQuality parses a config value. An empty string is the
// default quality.
func ParseInterpolationQuality(s string) (InterpolationQuality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return InterpolationDefault, nil
	case "low":
		return InterpolationLow, nil
	case "medium":
		return InterpolationMedium, nil
	case "high":
		return InterpolationHigh, nil
	default:
		return InterpolationDefault, fmt.Errorf("unknown interpolation quality %q", s)
	}
}

// GG maps the quality to a gg sampling mode.
func (q InterpolationQuality) GG() gg.InterpolationMode {
	switch q {
	case InterpolationLow:
		return gg.InterpNearest
	case InterpolationHigh:
		return gg.InterpBicubic
	default:
		return gg.InterpBilinear
	}
}

// ContentPainter paints page content into a paint context. The caller clips
// dc to dirty before calling; painters must not assume anything outside dirty
// survives.
type ContentPainter interface {
	PaintContents(dc *gg.Context, dirty entity.Rect, quality InterpolationQuality)
}

// ScrollbarMode is the scrollbar policy of a frame view.
type ScrollbarMode int

const (
	ScrollbarAuto ScrollbarMode = iota
	ScrollbarAlwaysOn
	ScrollbarAlwaysOff
)

// FrameView is the scrollable viewport of a frame.
type FrameView interface {
	ContentPainter

	ScrollPosition() entity.Point
	SetScrollPosition(p entity.Point)
	MinimumScrollPosition() entity.Point
	MaximumScrollPosition() entity.Point
	VisibleSize() entity.Size
	ContentsSize() entity.Size
	Resize(size entity.Size)
	SetScrollbarModes(horizontal, vertical ScrollbarMode)
}

// Form is a form owning input elements.
type Form interface {
	Action() string
	Elements() []Element
}

// Element is a DOM element handle owned by the rendering engine.
type Element interface {
	TagName() string
	// InputType is the lowercased type attribute of input elements.
	InputType() string
	Name() string
	Value() string
	SetValue(v string)
	IsEditable() bool
	// Form returns nil when the element is not inside a form.
	Form() Form
}

// DragController is the engine side of a native drag.
type DragController interface {
	DragEntered(data entity.DragData, p entity.Point) entity.DragOperation
	DragUpdated(data entity.DragData, p entity.Point) entity.DragOperation
	DragExited(data entity.DragData, p entity.Point)
	PerformDrop(data entity.DragData, p entity.Point) bool
	DragSourceEndedAt(p entity.Point, op entity.DragOperation)
}

// ContentFrame is a frame of the rendering engine. View returns nil while the
// frame has no document or is being torn down.
type ContentFrame interface {
	View() FrameView

	Load(req entity.LoadRequest) error
	Stop()
	Reload(fromOrigin bool)
	// DocumentLoaderURL is the request URL of the current document loader.
	DocumentLoaderURL() string
	URL() string
	Title() string

	HandleMousePress(ev entity.MouseEvent) bool
	HandleMouseMove(ev entity.MouseEvent) bool
	HandleMouseRelease(ev entity.MouseEvent) bool
	HandleWheel(ev entity.WheelEvent) bool
	HandleKey(ev entity.KeyEvent) bool
	// HandleContextMenu lets content process a context-menu event. It returns
	// the native menu items, which may be empty.
	HandleContextMenu(ev entity.MouseEvent) []entity.MenuItem

	HitTest(p entity.Point) entity.HitTestResult
	// FocusedElement returns the focused form control, nil when a link or
	// nothing has focus.
	FocusedElement() Element
	Selection() entity.DragData
	ExecuteCommand(name string) bool
}

// ContentPage is the engine's per-tab object. MainFrame returns nil once the
// page is being torn down.
type ContentPage interface {
	MainFrame() ContentFrame
	FocusedFrame() ContentFrame

	SetActive(active bool)
	SetFocused(focused bool)

	PageScaleFactor() float64
	SetPageScaleFactor(scale float64, origin entity.Point)

	// SetInitialFocus focuses the first (or last) focusable element.
	SetInitialFocus(forward bool) bool
	// AdvanceFocus moves focus; false means there was nothing further.
	AdvanceFocus(forward bool) bool
	ClearFocus()

	DragController() DragController

	WillEnterFullscreen(el Element)
	DidEnterFullscreen(el Element)
	WillExitFullscreen(el Element)
	DidExitFullscreen(el Element)

	Close()
}

// PlatformTarget receives finished pixels from a draw surface.
type PlatformTarget interface {
	// Blit copies src's srcRect to the target with its top-left at dst.
	Blit(src image.Image, srcRect image.Rectangle, dst image.Point)
}

// ScrollingTarget can shift pixels it already shows.
type ScrollingTarget interface {
	PlatformTarget
	// ScrollRaster moves the pixels of rect by (dx, dy). It returns false
	// when the target cannot do it.
	ScrollRaster(rect image.Rectangle, dx, dy int) bool
}

// PrintableContent is a document split into equally sized pages for printing.
type PrintableContent interface {
	PageCount() int
	// PageSize is the extent of one page in content units.
	PageSize() (width, height float64)
	// PaintPage paints page index in page-local coordinates; dc is already
	// transformed onto its printed cell.
	PaintPage(dc *gg.Context, index int, printBackgrounds bool)
}
