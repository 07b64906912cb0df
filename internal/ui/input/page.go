package input

import (
	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// Page is the session side driven by the dispatcher. Content may return nil
// while the page is torn down.
type Page interface {
	Content() port.ContentPage
	Host() port.Host
	VisibleSize() entity.Size

	IsActive() bool
	SetActive(active bool)
	SetCursor(cursor entity.CursorKind)

	// ScrollBy scrolls the focused frame by dx, dy counted in unit.
	ScrollBy(dx, dy int, unit entity.ScrollUnit)
	// SetScroll moves the focused frame to p, clamped to its scroll range.
	SetScroll(p entity.Point)
	// WheelScrollOrZoomBy applies an unhandled wheel event: line scrolling,
	// or zoom while Control is held.
	WheelScrollOrZoomBy(dx, dy float64, mods entity.Modifiers)

	GoBack() bool
	GoForward() bool

	DragState() *entity.DragState
	EndDragging(p entity.Point, cancelled bool)
}
