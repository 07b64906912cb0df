package entity

import (
	"fmt"
	"strings"
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Has reports whether every bit of m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// OnlyShiftOrNone reports whether no modifier other than Shift is held.
func (m Modifiers) OnlyShiftOrNone() bool { return m&^ModShift == 0 }

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonBack
	MouseButtonForward
)

// CursorKind is a platform-independent cursor shape.
type CursorKind int

const (
	CursorPointer CursorKind = iota
	CursorHand
	CursorIBeam
	CursorWait
	CursorProgress
	CursorMove
	CursorNotAllowed
	CursorCrosshair
	CursorResizeNS
	CursorResizeEW
	CursorHidden
)

// CursorState tracks the hover-derived cursor and an optional forced cursor.
// A locked cursor always wins over the current one.
type CursorState struct {
	Current  CursorKind
	Locked   CursorKind
	IsLocked bool
	OverLink bool
}

// Effective returns the cursor the host should display.
func (c CursorState) Effective() CursorKind {
	if c.IsLocked {
		return c.Locked
	}
	return c.Current
}

// ContextMenuPolicy decides whether the content's own context-menu handling
// runs before the host menu is shown.
type ContextMenuPolicy int

const (
	// ContextMenuDefault always lets content handle the event first.
	ContextMenuDefault ContextMenuPolicy = iota
	// ContextMenuOverride never lets content see the event.
	ContextMenuOverride
	// ContextMenuOverrideWithControl overrides only while Control is held.
	ContextMenuOverrideWithControl
	// ContextMenuOverrideWithAlt overrides only while Alt is held.
	ContextMenuOverrideWithAlt
	// ContextMenuOverrideWithShift overrides only while Shift is held.
	ContextMenuOverrideWithShift
)

// Overrides reports whether content handling is skipped for the given modifiers.
func (p ContextMenuPolicy) Overrides(mods Modifiers) bool {
	switch p {
	case ContextMenuOverride:
		return true
	case ContextMenuOverrideWithControl:
		return mods.Has(ModControl)
	case ContextMenuOverrideWithAlt:
		return mods.Has(ModAlt)
	case ContextMenuOverrideWithShift:
		return mods.Has(ModShift)
	default:
		return false
	}
}

func (p ContextMenuPolicy) String() string {
	switch p {
	case ContextMenuDefault:
		return "default"
	case ContextMenuOverride:
		return "override"
	case ContextMenuOverrideWithControl:
		return "override_with_control"
	case ContextMenuOverrideWithAlt:
		return "override_with_alt"
	case ContextMenuOverrideWithShift:
		return "override_with_shift"
	default:
		return fmt.Sprintf("context_menu_policy(%d)", int(p))
	}
}

// ParseContextMenuPolicy parses a config value.
func ParseContextMenuPolicy(s string) (ContextMenuPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ContextMenuDefault, nil
	case "override":
		return ContextMenuOverride, nil
	case "override_with_control":
		return ContextMenuOverrideWithControl, nil
	case "override_with_alt":
		return ContextMenuOverrideWithAlt, nil
	case "override_with_shift":
		return ContextMenuOverrideWithShift, nil
	default:
		return 0, fmt.Errorf("unknown context menu policy %q", s)
	}
}

// OpenDisposition says where a link opened by a gesture should go.
type OpenDisposition int

const (
	OpenInCurrentTab OpenDisposition = iota
	OpenInBackgroundTab
	OpenInNewWindow
	OpenAsDownload
)

// MenuItem is an entry of a popup or context menu.
type MenuItem struct {
	ID        int
	Title     string
	Enabled   bool
	Separator bool
	Checked   bool
}
