package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackForwardList(t *testing.T) {
	l := NewBackForwardList(3)
	_, ok := l.Current()
	assert.False(t, ok)
	assert.False(t, l.CanGoBack())

	a := l.Push("a")
	l.Push("b")
	c := l.Push("c")
	assert.True(t, l.CanGoBack())
	assert.False(t, l.CanGoForward())

	back, ok := l.ItemAt(-2)
	require.True(t, ok)
	assert.Equal(t, a, back)

	require.True(t, l.GoTo(a.ID))
	assert.True(t, l.CanGoForward())

	// pushing drops forward entries
	l.Push("d")
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.GoTo(c.ID))

	l.Push("e")
	l.Push("f")
	assert.Equal(t, 3, l.Len())
	first, _ := l.ItemAt(-2)
	assert.Equal(t, "d", first.URL)
}
