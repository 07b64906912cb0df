package page

import (
	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// Frame identifies a frame owned by a session. The process frame table only
// holds weak pointers to it, so it lives exactly as long as its session keeps
// it.
type Frame struct {
	id   entity.FrameID
	page *Session
	main bool
}

// ID returns the frame identifier.
func (f *Frame) ID() entity.FrameID { return f.id }

// Page returns the owning session.
func (f *Frame) Page() *Session { return f.page }

// IsMain reports whether this is the main frame of its page.
func (f *Frame) IsMain() bool { return f.main }

// Content returns the engine frame, or nil when unavailable. Only the main
// frame maps to an engine frame.
func (f *Frame) Content() port.ContentFrame {
	if !f.main {
		return nil
	}
	return f.page.contentFrame()
}
