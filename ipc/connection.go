package ipc

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
)

// ErrUnbound is returned for any message other than hello that arrives
// before the connection is bound to a hero.
var ErrUnbound = errors.New("connection not bound to a hero: send hello first")

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection is one battle runner seat talking to the sidecar. It starts
// unbound; the hello handler binds it to a hero, and only then are other
// message types dispatched. Every request that fails is answered with an
// error ack so the runner never waits on a reply that will not come.
type Connection struct {
	conn     net.Conn
	handlers map[string]Handler
	hero     string
}

func NewConnection(conn net.Conn, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		conn:     conn,
		handlers: handlers,
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// Bind ties the connection to hero. Called from the hello handler, on the
// ReadLoop goroutine.
func (c *Connection) Bind(hero string) { c.hero = hero }

func (c *Connection) Hero() string { return c.hero }

func (c *Connection) Bound() bool { return c.hero != "" }

func (c *Connection) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	return WriteEnvelope(c.conn, env)
}

// ReadLoop blocks until the connection closes or errors. It owns the conn
// lifetime so callers don't need to track cleanup.
func (c *Connection) ReadLoop() {
	defer c.conn.Close()

	for {
		env, err := ReadEnvelope(c.conn)
		if err != nil {
			slog.Info("connection read ended", "hero", c.hero, "error", err)
			return
		}

		resp, err := c.dispatch(env)
		if err != nil {
			slog.Warn("request failed", "type", env.Type, "hero", c.hero, "error", err)
			ack, ackErr := NewAck(err)
			if ackErr != nil {
				slog.Error("failed to encode error ack", "error", ackErr)
				continue
			}
			resp = &ack
		}
		if resp == nil {
			continue
		}

		if err := WriteEnvelope(c.conn, *resp); err != nil {
			slog.Error("failed to send response", "type", resp.Type, "error", err)
			return
		}
		slog.Debug("sent response", "type", resp.Type, "hero", c.hero)
	}
}

func (c *Connection) dispatch(env Envelope) (*Envelope, error) {
	if env.Type != TypeHello && !c.Bound() {
		return nil, ErrUnbound
	}
	handler, ok := c.handlers[env.Type]
	if !ok {
		return nil, fmt.Errorf("no handler for message type %q", env.Type)
	}
	return handler(env)
}
