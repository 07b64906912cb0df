package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_IntersectAndUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersect(b))
	assert.Equal(t, NewRect(0, 0, 15, 15), a.Union(b))
	assert.True(t, a.Intersect(NewRect(20, 20, 1, 1)).IsEmpty())
	assert.Equal(t, b, Rect{}.Union(b))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 0, CeilDiv(0, 64))
	assert.Equal(t, 1, CeilDiv(1, 64))
	assert.Equal(t, 1, CeilDiv(64, 64))
	assert.Equal(t, 2, CeilDiv(65, 64))
}

func TestClampPoint(t *testing.T) {
	lo, hi := Point{}, Point{X: 100, Y: 50}
	assert.Equal(t, Point{X: 0, Y: 50}, ClampPoint(Point{X: -3, Y: 70}, lo, hi))
	assert.Equal(t, Point{X: 0, Y: 0}, ClampPoint(Point{X: 10, Y: 10}, lo, Point{X: -1, Y: -1}))
}

func TestDragState_InsideOnlyWhileDragging(t *testing.T) {
	var s DragState
	s.SetInside(true)
	assert.False(t, s.Inside())

	require.NoError(t, s.Start(DragData{Text: "x"}, nil))
	assert.True(t, s.Dragging())
	assert.False(t, s.Inside(), "a drag enters the page on its first move")
	assert.ErrorIs(t, s.Start(DragData{}, nil), ErrAlreadyDragging)

	s.SetInside(true)
	assert.True(t, s.Inside())

	s.SetInside(false)
	assert.Equal(t, DragCancelled, s.Finish(false))
	assert.False(t, s.Dragging())
	assert.False(t, s.Inside())
}

func TestContextMenuPolicy_Overrides(t *testing.T) {
	tests := []struct {
		policy ContextMenuPolicy
		mods   Modifiers
		want   bool
	}{
		{ContextMenuDefault, ModControl, false},
		{ContextMenuOverride, 0, true},
		{ContextMenuOverrideWithControl, 0, false},
		{ContextMenuOverrideWithControl, ModControl, true},
		{ContextMenuOverrideWithAlt, ModAlt | ModShift, true},
		{ContextMenuOverrideWithShift, ModAlt, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.policy.Overrides(tt.mods), "%s with %v", tt.policy, tt.mods)
	}
}

func TestParseCacheModel(t *testing.T) {
	m, err := ParseCacheModel("web_browser")
	require.NoError(t, err)
	assert.Equal(t, CacheModelPrimaryWebBrowser, m)

	_, err = ParseCacheModel("huge")
	assert.Error(t, err)
}
