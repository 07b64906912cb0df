package page

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/bnema/pagecore/internal/domain/entity"
)

// dragImageExtent bounds the snapshot taken when no drag image is supplied.
const dragImageExtent = 128

// StartDrag begins a native drag at p carrying the focused frame selection.
// When img is nil a snapshot of the viewport around p is used.
func (s *Session) StartDrag(p entity.Point, img image.Image) error {
	frame := s.focusedFrame()
	if frame == nil {
		return ErrClosed
	}
	if img == nil {
		img = s.snapshotAround(p)
	}
	if err := s.drag.Start(frame.Selection(), img); err != nil {
		return err
	}

	rect := entity.NewRect(p.X, p.Y, 0, 0)
	if img != nil {
		b := img.Bounds()
		rect = entity.NewRect(p.X-b.Dx()/2, p.Y-b.Dy()/2, b.Dx(), b.Dy())
	}
	s.host.Drag.OpenDragWindow(rect)
	s.logger.Debug().Int("x", p.X).Int("y", p.Y).Msg("drag started")
	return nil
}

func (s *Session) snapshotAround(p entity.Point) image.Image {
	if s.drawSurface == nil || s.drawSurface.IsInert() {
		return nil
	}
	src := s.drawSurface.Image()
	half := dragImageExtent / 2
	r := image.Rect(p.X-half, p.Y-half, p.X+half, p.Y+half).Intersect(src.Bounds())
	if r.Empty() {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, src, r, xdraw.Src, nil)
	return dst
}

// DragState exposes the drag state to the input dispatcher.
func (s *Session) DragState() *entity.DragState { return &s.drag }

// EndDragging finishes the active drag at p. A release inside the viewport
// drops the data on the page; anything else cancels. The host drag window is
// always closed and queued run-loop work flushed afterwards.
func (s *Session) EndDragging(p entity.Point, cancelled bool) {
	if !s.drag.Dragging() {
		return
	}
	data := s.drag.Data()
	viewport := entity.NewRect(0, 0, s.visibleSize.Width, s.visibleSize.Height)
	s.drag.SetInside(viewport.Contains(p))
	wasInside := s.drag.Inside()
	outcome := s.drag.Finish(cancelled)

	op := entity.DragOperationNone
	if c := s.content; c != nil {
		if controller := c.DragController(); controller != nil {
			switch {
			case outcome == entity.DragDropped:
				if controller.PerformDrop(data, p) {
					op = entity.DragOperationCopy
				}
			case wasInside:
				controller.DragExited(data, p)
			}
			controller.DragSourceEndedAt(p, op)
		}
	}

	s.host.Drag.CloseDragWindow()
	s.logger.Debug().Bool("dropped", outcome == entity.DragDropped).Msg("drag ended")
	if s.yield != nil {
		s.yield()
	}
}
