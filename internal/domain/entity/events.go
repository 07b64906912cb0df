package entity

import "time"

// MouseEventKind distinguishes pointer events.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseMove
)

// MouseEvent is a pointer event in page coordinates.
type MouseEvent struct {
	Kind       MouseEventKind
	Button     MouseButton
	Position   Point
	Modifiers  Modifiers
	ClickCount int
	Time       time.Time
}

// WheelEvent is a scroll-wheel or touchpad scroll event. Deltas are in lines;
// positive DeltaY scrolls content up (towards the end of the document).
type WheelEvent struct {
	Position  Point
	DeltaX    float64
	DeltaY    float64
	Modifiers Modifiers
	Time      time.Time
}

// Key is a platform-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyCharacter
	KeyTab
	KeyEscape
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Key       Key
	Rune      rune
	Down      bool
	Modifiers Modifiers
	Time      time.Time
}

// HitTestResult describes what lies under a point.
type HitTestResult struct {
	LinkURL    string
	LinkTitle  string
	ImageURL   string
	IsEditable bool
	IsSelected bool
	Cursor     CursorKind
}
