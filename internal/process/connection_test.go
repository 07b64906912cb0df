package process

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/infrastructure/ipc"
)

// peer serves handshakes on the far end of every pipe it hands out.
type peer struct {
	mu       sync.Mutex
	dials    int
	sessions []ipc.NetworkSessionCreationParameters
	reject   bool
	cancel   []context.CancelFunc
}

func (p *peer) connect(_ context.Context, kind ConnectionKind) (port.MessageBus, error) {
	local, remote := ipc.NewPipe(zerolog.Nop(), nil, "web", kind.String())
	remote.Handle(MsgNetworkHandshake, func(_ context.Context, msg port.Message) ([]byte, error) {
		params, err := ipc.DecodeNetworkSessionCreationParameters(msg.Payload)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.reject {
			return nil, errors.New("session refused")
		}
		p.sessions = append(p.sessions, params)
		return nil, nil
	})
	remote.Handle(MsgStorageHandshake, func(context.Context, port.Message) ([]byte, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.reject {
			return nil, errors.New("storage refused")
		}
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = remote.Serve(ctx) }()

	p.mu.Lock()
	p.dials++
	p.cancel = append(p.cancel, cancel)
	p.mu.Unlock()
	return local, nil
}

func (p *peer) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cancel := range p.cancel {
		cancel()
	}
}

func TestEnsureNetworkConnection_HandshakesOnce(t *testing.T) {
	p := &peer{}
	t.Cleanup(p.stop)
	h := newHarness(t, func(o *Options) { o.Connect = p.connect })

	first, err := h.c.EnsureNetworkConnection(context.Background())
	require.NoError(t, err)
	second, err := h.c.EnsureNetworkConnection(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, p.dials)
	require.Len(t, p.sessions, 1)
	assert.Equal(t, h.c.SessionID(), p.sessions[0].SessionID)
	assert.Equal(t, ipc.CookiePolicyNoThirdParty, p.sessions[0].CookiePolicy)
	assert.Empty(t, h.fatals)
}

func TestConnectionLost_ReestablishesOnNextUse(t *testing.T) {
	p := &peer{}
	t.Cleanup(p.stop)
	h := newHarness(t, func(o *Options) { o.Connect = p.connect })

	_, err := h.c.EnsureStorageConnection(context.Background())
	require.NoError(t, err)
	require.True(t, h.c.Connected(ConnectionStorage))

	h.c.ConnectionLost(ConnectionStorage)
	assert.False(t, h.c.Connected(ConnectionStorage))

	_, err = h.c.EnsureStorageConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, p.dials)
	assert.True(t, h.c.Connected(ConnectionStorage))
}

func TestEnsureConnection_HandshakeFailureIsFatal(t *testing.T) {
	p := &peer{reject: true}
	t.Cleanup(p.stop)
	h := newHarness(t, func(o *Options) { o.Connect = p.connect })

	_, err := h.c.EnsureNetworkConnection(context.Background())
	require.ErrorIs(t, err, ErrHandshake)
	require.Len(t, h.fatals, 1)
	assert.ErrorIs(t, h.fatals[0], ErrHandshake)
	assert.False(t, h.c.Connected(ConnectionNetwork))
}

func TestEnsureConnection_TimeoutIsFatal(t *testing.T) {
	silent := func(context.Context, ConnectionKind) (port.MessageBus, error) {
		local, _ := ipc.NewPipe(zerolog.Nop(), nil, "web", "silent")
		return local, nil
	}
	h := newHarness(t, func(o *Options) {
		o.Connect = silent
		o.HandshakeTimeout = 20 * time.Millisecond
	})

	_, err := h.c.EnsureStorageConnection(context.Background())
	require.ErrorIs(t, err, ErrHandshake)
	require.ErrorIs(t, err, ipc.ErrTimeout)
	assert.Len(t, h.fatals, 1)
}

func TestEnsureConnection_DialFailureIsFatal(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.Connect = func(context.Context, ConnectionKind) (port.MessageBus, error) {
			return nil, errors.New("no such peer")
		}
	})

	_, err := h.c.EnsureNetworkConnection(context.Background())
	require.ErrorIs(t, err, ErrHandshake)
	assert.Len(t, h.fatals, 1)
}

func TestEnsureConnection_NoConnector(t *testing.T) {
	h := newHarness(t)
	_, err := h.c.EnsureNetworkConnection(context.Background())
	require.Error(t, err)
	assert.Empty(t, h.fatals)
}
