package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/infrastructure/ipc"
)

// ErrHandshake reports a peer that did not complete its handshake.
var ErrHandshake = errors.New("connection handshake failed")

// Message names exchanged with peer processes.
const (
	MsgNetworkHandshake  = "network.handshake"
	MsgStorageHandshake  = "storage.handshake"
	MsgInitializeProcess = "process.initialize"
	MsgSetCacheModel     = "process.set_cache_model"
	MsgSetDiskCacheSize  = "process.set_disk_cache_size"
	MsgClearCaches       = "process.clear_resource_caches"
)

// ConnectionKind names a peer process.
type ConnectionKind int

const (
	ConnectionNetwork ConnectionKind = iota
	ConnectionStorage
)

func (k ConnectionKind) String() string {
	if k == ConnectionStorage {
		return "storage"
	}
	return "network"
}

// EnsureNetworkConnection returns the bus to the network process, opening
// and handshaking it on first use or after a loss.
func (c *Coordinator) EnsureNetworkConnection(ctx context.Context) (port.MessageBus, error) {
	return c.ensureConnection(ctx, ConnectionNetwork)
}

// EnsureStorageConnection is EnsureNetworkConnection for the storage process.
func (c *Coordinator) EnsureStorageConnection(ctx context.Context) (port.MessageBus, error) {
	return c.ensureConnection(ctx, ConnectionStorage)
}

// ensureConnection holds connMu across the handshake so concurrent callers
// share one connection attempt.
func (c *Coordinator) ensureConnection(ctx context.Context, kind ConnectionKind) (port.MessageBus, error) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if bus, ok := c.connections[kind]; ok {
		return bus, nil
	}
	if c.connect == nil {
		return nil, fmt.Errorf("%s connection: no connector", kind)
	}

	bus, err := c.connect(ctx, kind)
	if err != nil {
		return nil, c.handshakeFailed(kind, fmt.Errorf("connect: %w", err))
	}
	if err := c.handshake(ctx, kind, bus); err != nil {
		_ = bus.Close()
		return nil, c.handshakeFailed(kind, err)
	}

	c.connections[kind] = bus
	c.logger.Info().Str("peer", kind.String()).Msg("connection established")
	return bus, nil
}

func (c *Coordinator) handshake(ctx context.Context, kind ConnectionKind, bus port.MessageBus) error {
	msg := port.Message{Name: MsgStorageHandshake}
	if kind == ConnectionNetwork {
		payload, err := ipc.EncodeNetworkSessionCreationParameters(c.networkSessionParameters())
		if err != nil {
			return err
		}
		msg = port.Message{Name: MsgNetworkHandshake, Payload: payload}
	}
	c.metrics.IncIPC(msg.Name, "sync")
	_, err := bus.SendSync(ctx, msg, c.handshakeTimeout)
	return err
}

func (c *Coordinator) networkSessionParameters() ipc.NetworkSessionCreationParameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ipc.NetworkSessionCreationParameters{
		SessionID:      c.sessionID,
		CacheDirectory: c.diskCacheDir,
		CookiePolicy:   ipc.CookiePolicyNoThirdParty,
		ITPEnabled:     true,
	}
}

// handshakeFailed hands the error to the fatal hook; the process cannot run
// without its peers.
func (c *Coordinator) handshakeFailed(kind ConnectionKind, cause error) error {
	err := fmt.Errorf("%w: %s: %w", ErrHandshake, kind, cause)
	c.logger.Error().Err(err).Str("peer", kind.String()).Msg("peer connection failed")
	c.fatal(err)
	return err
}

// ConnectionLost forgets the bus to kind. The next Ensure call reconnects.
func (c *Coordinator) ConnectionLost(kind ConnectionKind) {
	c.connMu.Lock()
	bus, ok := c.connections[kind]
	delete(c.connections, kind)
	c.connMu.Unlock()
	if !ok {
		return
	}
	_ = bus.Close()
	c.logger.Warn().Str("peer", kind.String()).Msg("connection lost")
}

// Connected reports whether a bus to kind is open.
func (c *Coordinator) Connected(kind ConnectionKind) bool {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	_, ok := c.connections[kind]
	return ok
}

func (c *Coordinator) closeConnections() {
	c.connMu.Lock()
	conns := c.connections
	c.connections = make(map[ConnectionKind]port.MessageBus)
	c.connMu.Unlock()
	for kind, bus := range conns {
		if err := bus.Close(); err != nil {
			c.logger.Debug().Err(err).Str("peer", kind.String()).Msg("closing connection failed")
		}
	}
}
