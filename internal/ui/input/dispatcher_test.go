package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/application/port/mocks"
	"github.com/bnema/pagecore/internal/domain/entity"
)

func setup(opts Options) (*Dispatcher, *fakePage, *fakeContent) {
	view := &fakeView{max: entity.Point{X: 0, Y: 1400}}
	content := &fakeContent{frame: &fakeFrame{view: view}, drag: &fakeDrag{}}
	page := newFakePage(content, port.Host{})
	return NewDispatcher(context.Background(), page, opts), page, content
}

func press(b entity.MouseButton, x, y int) entity.MouseEvent {
	return entity.MouseEvent{Kind: entity.MousePress, Button: b, Position: entity.Point{X: x, Y: y}}
}

func release(b entity.MouseButton, x, y int) entity.MouseEvent {
	return entity.MouseEvent{Kind: entity.MouseRelease, Button: b, Position: entity.Point{X: x, Y: y}}
}

func move(x, y int) entity.MouseEvent {
	return entity.MouseEvent{Kind: entity.MouseMove, Position: entity.Point{X: x, Y: y}}
}

func key(k entity.Key, mods entity.Modifiers) entity.KeyEvent {
	return entity.KeyEvent{Key: k, Down: true, Modifiers: mods}
}

func TestLeftPress_ActivatesAndTracks(t *testing.T) {
	d, page, content := setup(Options{})

	require.True(t, d.HandleMouse(press(entity.MouseButtonLeft, 10, 10)))
	assert.True(t, page.active)
	assert.True(t, d.TrackingMouse())
	require.Len(t, content.frame.presses, 1)
	assert.Equal(t, 1, content.frame.presses[0].ClickCount)

	// release outside the page is still delivered while tracking
	require.True(t, d.HandleMouse(release(entity.MouseButtonLeft, 5000, 5000)))
	assert.False(t, d.TrackingMouse())
	assert.Len(t, content.frame.releases, 1)
}

func TestLeftPress_OutsideIsUnhandled(t *testing.T) {
	d, page, content := setup(Options{})
	assert.False(t, d.HandleMouse(press(entity.MouseButtonLeft, -1, 10)))
	assert.False(t, page.active)
	assert.Empty(t, content.frame.presses)
}

func TestClickCount_Series(t *testing.T) {
	d, _, content := setup(Options{})
	t0 := time.Unix(100, 0)
	for i, dt := range []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond} {
		ev := press(entity.MouseButtonLeft, 50+i, 50)
		ev.Time = t0.Add(dt)
		d.HandleMouse(ev)
		d.HandleMouse(release(entity.MouseButtonLeft, 50+i, 50))
	}
	late := press(entity.MouseButtonLeft, 52, 50)
	late.Time = t0.Add(2 * time.Second)
	d.HandleMouse(late)

	var counts []int
	for _, p := range content.frame.presses {
		counts = append(counts, p.ClickCount)
	}
	assert.Equal(t, []int{1, 2, 3, 1}, counts)
}

func TestClickCount_ResetsBeyondSlop(t *testing.T) {
	d, _, content := setup(Options{})
	d.HandleMouse(press(entity.MouseButtonLeft, 50, 50))
	d.HandleMouse(release(entity.MouseButtonLeft, 50, 50))
	d.HandleMouse(press(entity.MouseButtonLeft, 60, 50))
	assert.Equal(t, 1, content.frame.presses[1].ClickCount)
}

func TestNilFrame_IsUnhandled(t *testing.T) {
	d, page, _ := setup(Options{})
	page.content = &fakeContent{}
	assert.False(t, d.HandleMouse(press(entity.MouseButtonLeft, 10, 10)))
	assert.False(t, d.HandleKey(key(entity.KeyDown, 0)))
	assert.False(t, d.HandleWheel(entity.WheelEvent{DeltaY: 1}))

	page.content = nil
	assert.False(t, d.HandleMouse(move(1, 1)))
}

func TestNilView_IsUnhandled(t *testing.T) {
	d, _, content := setup(Options{})
	content.frame.view = nil
	assert.False(t, d.HandleMouse(press(entity.MouseButtonLeft, 10, 10)))
	assert.False(t, d.HandleKey(key(entity.KeyPageDown, 0)))
}

func TestMiddlePan_ScrollsPastThreshold(t *testing.T) {
	d, page, content := setup(Options{})
	require.True(t, d.HandleMouse(press(entity.MouseButtonMiddle, 100, 100)))
	assert.Empty(t, content.frame.presses, "middle press is not forwarded")

	d.HandleMouse(move(103, 102))
	assert.Empty(t, page.scrolls, "within threshold")

	d.HandleMouse(move(100, 120))
	require.Len(t, page.scrolls, 1)
	assert.Equal(t, scrollCall{0, -20, entity.ScrollByPixel}, page.scrolls[0])

	window := mocks.NewMockWindowHost(t)
	page.host.Window = window
	assert.True(t, d.HandleMouse(release(entity.MouseButtonMiddle, 100, 120)))
	assert.False(t, d.Panning())
}

func TestMiddleClick_OpenDispositions(t *testing.T) {
	tests := []struct {
		name string
		mods entity.Modifiers
		want entity.OpenDisposition
	}{
		{name: "plain", want: entity.OpenInBackgroundTab},
		{name: "shift", mods: entity.ModShift, want: entity.OpenInNewWindow},
		{name: "alt", mods: entity.ModAlt, want: entity.OpenAsDownload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, page, content := setup(Options{})
			content.frame.hit = entity.HitTestResult{LinkURL: "https://example.com/a"}
			window := mocks.NewMockWindowHost(t)
			window.EXPECT().OpenLink("https://example.com/a", tt.want).Once()
			page.host.Window = window

			d.HandleMouse(press(entity.MouseButtonMiddle, 10, 10))
			ev := release(entity.MouseButtonMiddle, 10, 10)
			ev.Modifiers = tt.mods
			assert.True(t, d.HandleMouse(ev))
		})
	}
}

func TestMiddleClick_NoLinkIsUnhandled(t *testing.T) {
	d, _, _ := setup(Options{})
	d.HandleMouse(press(entity.MouseButtonMiddle, 10, 10))
	assert.False(t, d.HandleMouse(release(entity.MouseButtonMiddle, 10, 10)))
}

func TestContextMenu_PolicyMatrix(t *testing.T) {
	tests := []struct {
		policy      entity.ContextMenuPolicy
		mods        entity.Modifiers
		wantContent bool
	}{
		{entity.ContextMenuDefault, 0, true},
		{entity.ContextMenuDefault, entity.ModControl, true},
		{entity.ContextMenuOverride, 0, false},
		{entity.ContextMenuOverrideWithControl, 0, true},
		{entity.ContextMenuOverrideWithControl, entity.ModControl, false},
		{entity.ContextMenuOverrideWithAlt, entity.ModAlt, false},
		{entity.ContextMenuOverrideWithAlt, entity.ModShift, true},
		{entity.ContextMenuOverrideWithShift, entity.ModShift, false},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			d, page, content := setup(Options{ContextMenuPolicy: tt.policy})
			content.frame.menuItems = []entity.MenuItem{{ID: 1, Title: "Copy"}}
			menu := mocks.NewMockMenuHost(t)
			menu.EXPECT().ContextMenu(entity.Point{X: 5, Y: 5}, mock.Anything, mock.Anything).Return(true).Once()
			page.host.Menu = menu

			ev := press(entity.MouseButtonRight, 5, 5)
			ev.Modifiers = tt.mods
			require.True(t, d.HandleMouse(ev))
			assert.Equal(t, tt.wantContent, content.frame.menuCalls == 1)
		})
	}
}

func TestContextMenu_EmptyNativeListStillShowsHostMenu(t *testing.T) {
	d, page, _ := setup(Options{})
	menu := mocks.NewMockMenuHost(t)
	menu.EXPECT().ContextMenu(mock.Anything, []entity.MenuItem(nil), mock.Anything).Return(false).Once()
	page.host.Menu = menu
	assert.True(t, d.HandleMouse(press(entity.MouseButtonRight, 1, 1)))
}

func TestBackForwardButtons(t *testing.T) {
	d, page, _ := setup(Options{})
	assert.True(t, d.HandleMouse(press(entity.MouseButtonBack, 1, 1)))
	assert.True(t, d.HandleMouse(press(entity.MouseButtonForward, 1, 1)))
	assert.Equal(t, 1, page.back)
	assert.Equal(t, 1, page.fwd)
}

func TestHover_ReportsLinkChangesOnce(t *testing.T) {
	d, page, content := setup(Options{})
	nav := &hoverRecorder{}
	page.host.Navigation = nav

	content.frame.hit = entity.HitTestResult{LinkURL: "https://a", Cursor: entity.CursorHand}
	d.HandleMouse(move(10, 10))
	d.HandleMouse(move(11, 10))
	content.frame.hit = entity.HitTestResult{}
	d.HandleMouse(move(12, 10))

	assert.Equal(t, []string{"https://a", ""}, nav.urls)
	assert.Equal(t, entity.CursorPointer, page.cursor)
}

type hoverRecorder struct {
	port.NopHost
	urls []string
}

func (h *hoverRecorder) HoveredURLChanged(url string) { h.urls = append(h.urls, url) }

func TestDrag_RedirectsPointerEvents(t *testing.T) {
	d, page, content := setup(Options{})
	require.NoError(t, page.drag.Start(entity.DragData{Text: "x"}, nil))
	drag := mocks.NewMockDragHost(t)
	drag.EXPECT().MoveDragWindow(mock.Anything).Return()
	page.host.Drag = drag

	d.HandleMouse(move(10, 10))
	d.HandleMouse(move(12, 12))
	d.HandleMouse(move(-5, 10))
	d.HandleMouse(move(20, 20))
	assert.Equal(t, []string{"entered", "updated", "exited", "entered"}, content.drag.events)
	assert.Empty(t, content.frame.moves, "ordinary move handling is bypassed")

	assert.True(t, d.HandleMouse(release(entity.MouseButtonLeft, 20, 20)))
	assert.Equal(t, []bool{false}, page.dragEnds)
	assert.False(t, page.drag.Dragging())
	assert.False(t, page.drag.Inside())
}

func TestDeactivation_CancelsDrag(t *testing.T) {
	d, page, _ := setup(Options{})
	page.active = true
	require.NoError(t, page.drag.Start(entity.DragData{Text: "x"}, nil))

	assert.True(t, d.Dispatch(ActivationEvent{Active: false}))
	assert.Equal(t, []bool{true}, page.dragEnds)
	assert.False(t, page.active)
}

func TestTab_InitialFocusAfterActivation(t *testing.T) {
	d, _, content := setup(Options{})
	content.initialFocus = true
	content.advance = true

	d.HandleActivation(true)
	require.True(t, d.HandleKey(key(entity.KeyTab, entity.ModShift)))
	assert.Equal(t, []bool{false}, content.initialCalls)
	assert.Equal(t, 1, content.cleared)

	require.True(t, d.HandleKey(key(entity.KeyTab, 0)))
	assert.Equal(t, []bool{true}, content.advanceCalls)
	assert.Empty(t, content.frame.keys, "tab is not forwarded")
}

func TestTab_AtEdgeDelegatesToHost(t *testing.T) {
	d, page, content := setup(Options{})
	focus := mocks.NewMockFocusHost(t)
	focus.EXPECT().ActivateNext().Once()
	focus.EXPECT().ActivatePrevious().Once()
	page.host.Focus = focus

	content.advance = false
	assert.True(t, d.HandleKey(key(entity.KeyTab, 0)))
	assert.True(t, d.HandleKey(key(entity.KeyTab, entity.ModShift)))
}

func TestEscape_DeactivatesActivePage(t *testing.T) {
	d, page, content := setup(Options{})
	focus := mocks.NewMockFocusHost(t)
	focus.EXPECT().GoInactive().Once()
	page.host.Focus = focus
	page.active = true

	assert.True(t, d.HandleKey(key(entity.KeyEscape, 0)))
	assert.False(t, page.active)
	assert.Empty(t, content.frame.keys)
}

func TestEscape_InactiveIsForwarded(t *testing.T) {
	d, _, content := setup(Options{})
	d.HandleKey(key(entity.KeyEscape, 0))
	assert.Len(t, content.frame.keys, 1)
}

func TestScrollKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   entity.KeyEvent
		want scrollCall
	}{
		{"down", key(entity.KeyDown, 0), scrollCall{0, 1, entity.ScrollByLine}},
		{"up", key(entity.KeyUp, 0), scrollCall{0, -1, entity.ScrollByLine}},
		{"left", key(entity.KeyLeft, 0), scrollCall{-1, 0, entity.ScrollByLine}},
		{"right shift", key(entity.KeyRight, entity.ModShift), scrollCall{1, 0, entity.ScrollByLine}},
		{"page down", key(entity.KeyPageDown, 0), scrollCall{0, 1, entity.ScrollByPage}},
		{"page up", key(entity.KeyPageUp, 0), scrollCall{0, -1, entity.ScrollByPage}},
		{"space", key(entity.KeySpace, 0), scrollCall{0, 1, entity.ScrollByPage}},
		{"shift space", key(entity.KeySpace, entity.ModShift), scrollCall{0, -1, entity.ScrollByPage}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, page, _ := setup(Options{})
			require.True(t, d.HandleKey(tt.ev))
			assert.Equal(t, []scrollCall{tt.want}, page.scrolls)
		})
	}
}

func TestScrollKeys_HomeEnd(t *testing.T) {
	d, page, _ := setup(Options{})
	d.HandleKey(key(entity.KeyEnd, 0))
	d.HandleKey(key(entity.KeyHome, 0))
	assert.Equal(t, []entity.Point{{X: 0, Y: 1400}, {X: 0, Y: 0}}, page.setScrolls)
}

func TestScrollKeys_IgnoredWithOtherModifiers(t *testing.T) {
	d, page, _ := setup(Options{})
	assert.False(t, d.HandleKey(key(entity.KeyDown, entity.ModControl)))
	assert.Empty(t, page.scrolls)
}

func TestScrollKeys_EditableFocusKeepsKeys(t *testing.T) {
	d, page, content := setup(Options{})
	content.frame.focused = &fakeElement{editable: true}
	content.frame.keyHandled = true
	assert.True(t, d.HandleKey(key(entity.KeyDown, 0)))
	assert.Empty(t, page.scrolls)
}

func TestWheel_ContentFirst(t *testing.T) {
	d, page, content := setup(Options{})
	content.frame.wheelHandled = true
	assert.True(t, d.HandleWheel(entity.WheelEvent{DeltaY: 1}))
	assert.Empty(t, page.wheelZooms)

	content.frame.wheelHandled = false
	assert.True(t, d.HandleWheel(entity.WheelEvent{DeltaY: 1, Modifiers: entity.ModControl}))
	assert.Equal(t, []entity.Modifiers{entity.ModControl}, page.wheelZooms)
	assert.Equal(t, 2, content.frame.wheels)
}

func TestDispatch_UnknownEvent(t *testing.T) {
	d, _, _ := setup(Options{})
	assert.False(t, d.Dispatch(struct{}{}))
}
