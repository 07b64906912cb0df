package page

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/application/port/mocks"
	"github.com/bnema/pagecore/internal/domain/entity"
)

func newWithHost(t *testing.T, host port.Host) *Session {
	t.Helper()
	s, err := New(context.Background(), Params{
		ID:          1,
		MainFrameID: 10,
		Engine:      &fakeEngine{},
		Host:        host,
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestAutofill_HostSeesLoginFormAndStoredValues(t *testing.T) {
	autofill := mocks.NewMockAutofillHost(t)
	autofill.EXPECT().HasAutofill("https://a.example/login").Once()
	autofill.EXPECT().StoreAutofill("https://a.example/login", "carol", "pw").Once()

	s := newWithHost(t, port.Host{Autofill: autofill})
	user, pass, _ := loginForm()
	s.StartedEditingElement(pass)
	user.value, pass.value = "carol", "pw"
	require.True(t, s.StoreAutofill())
}

func TestRequestPrint_AsksRenderHost(t *testing.T) {
	render := mocks.NewMockRenderHost(t)
	render.EXPECT().Print().Once()

	s := newWithHost(t, port.Host{Render: render})
	s.RequestPrint()
}

func TestDraw_BlitsOnlyTheDamagedTile(t *testing.T) {
	s := newWithHost(t, port.Host{})
	s.SetVisibleSize(entity.Size{Width: 256, Height: 256})
	s.Draw(&recordingTarget{}, 0, 0, 256, 256, true)
	require.False(t, s.DrawSurface().HasDamage())

	var got image.Rectangle
	target := mocks.NewMockPlatformTarget(t)
	target.EXPECT().
		Blit(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ image.Image, srcRect image.Rectangle, _ image.Point) { got = srcRect }).
		Once()

	s.Invalidate(entity.NewRect(70, 70, 10, 10))
	s.Draw(target, 0, 0, 256, 256, true)

	assert.Equal(t, image.Rect(64, 64, 128, 128), got)
}
