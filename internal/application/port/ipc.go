package port

import (
	"context"
	"time"
)

// Message is a named payload carried by a MessageBus. ID correlates a
// synchronous reply with its request.
type Message struct {
	ID      string
	Name    string
	Payload []byte
}

// MessageHandler answers a message. The reply is ignored for async sends.
type MessageHandler func(ctx context.Context, msg Message) ([]byte, error)

// MessageBus is the transport between this process and its peers.
type MessageBus interface {
	// Send delivers msg without waiting for a reply.
	Send(ctx context.Context, msg Message) error
	// SendSync blocks until the handler replies or timeout elapses.
	// A zero timeout waits on ctx only.
	SendSync(ctx context.Context, msg Message, timeout time.Duration) (Message, error)
	Handle(name string, h MessageHandler)
	Close() error
}
