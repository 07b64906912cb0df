package entity

import (
	"errors"
	"image"
)

// ErrAlreadyDragging is returned when a drag starts while another is active.
var ErrAlreadyDragging = errors.New("drag already in progress")

// DragOperation is the effect negotiated between drag source and target.
type DragOperation int

const (
	DragOperationNone DragOperation = iota
	DragOperationCopy
	DragOperationLink
	DragOperationMove
)

// DragData is the pasteboard-style payload of a drag.
type DragData struct {
	Text  string
	HTML  string
	URL   string
	Title string
}

// IsEmpty reports whether the payload carries nothing.
func (d DragData) IsEmpty() bool {
	return d.Text == "" && d.HTML == "" && d.URL == ""
}

// DragOutcome is how a drag ended.
type DragOutcome int

const (
	DragDropped DragOutcome = iota
	DragCancelled
)

// DragState follows idle -> dragging -> {dropped | cancelled} -> idle.
// Inside can only be true while dragging.
type DragState struct {
	dragging bool
	inside   bool
	data     DragData
	image    image.Image
}

// Start begins a drag carrying data and a snapshot image. The drag starts
// outside so the first pointer move over the page reports an enter.
func (s *DragState) Start(data DragData, img image.Image) error {
	if s.dragging {
		return ErrAlreadyDragging
	}
	s.dragging = true
	s.inside = false
	s.data = data
	s.image = img
	return nil
}

// SetInside records whether the pointer is over the page. Ignored when idle.
func (s *DragState) SetInside(inside bool) {
	if !s.dragging {
		return
	}
	s.inside = inside
}

// Finish returns the drag to idle and reports its outcome.
func (s *DragState) Finish(cancelled bool) DragOutcome {
	outcome := DragDropped
	if cancelled || !s.inside {
		outcome = DragCancelled
	}
	*s = DragState{}
	return outcome
}

// Dragging reports whether a drag is active.
func (s *DragState) Dragging() bool { return s.dragging }

// Inside reports whether the active drag is over the page.
func (s *DragState) Inside() bool { return s.dragging && s.inside }

// Data returns the payload of the active drag.
func (s *DragState) Data() DragData { return s.data }

// Image returns the snapshot of the active drag, if any.
func (s *DragState) Image() image.Image { return s.image }
