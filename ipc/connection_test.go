package ipc

import (
	"errors"
	"net"
	"testing"
)

// startConnection serves a Connection on one end of a pipe and returns the
// runner's end. The hello handler binds the connection; game_state answers
// with an ok ack, or fails when the payload says so.
func startConnection(t *testing.T) (net.Conn, *Connection) {
	t.Helper()
	server, client := net.Pipe()

	c := NewConnection(server, nil)
	c.RegisterHandler(TypeHello, func(env Envelope) (*Envelope, error) {
		var hello HelloMessage
		if err := env.DecodeInto(&hello); err != nil {
			return nil, err
		}
		c.Bind(hello.Hero)
		ack, err := NewAck(nil)
		return &ack, err
	})
	c.RegisterHandler(TypeGameState, func(env Envelope) (*Envelope, error) {
		var fail bool
		if err := env.DecodeInto(&fail); err != nil {
			return nil, err
		}
		if fail {
			return nil, errors.New("bad state")
		}
		ack, err := NewAck(nil)
		return &ack, err
	})

	done := make(chan struct{})
	go func() {
		c.ReadLoop()
		close(done)
	}()
	t.Cleanup(func() {
		client.Close()
		<-done
	})
	return client, c
}

func roundTrip(t *testing.T, conn net.Conn, msgType string, data any) AckMessage {
	t.Helper()
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteEnvelope(conn, env); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
	resp, err := ReadEnvelope(conn)
	if err != nil {
		t.Fatalf("read reply to %s: %v", msgType, err)
	}
	if resp.Type != TypeAck {
		t.Fatalf("reply type = %q, want ack", resp.Type)
	}
	var ack AckMessage
	if err := resp.DecodeInto(&ack); err != nil {
		t.Fatal(err)
	}
	return ack
}

func TestConnectionRequiresHello(t *testing.T) {
	client, _ := startConnection(t)

	ack := roundTrip(t, client, TypeGameState, false)
	if ack.Status != StatusError || ack.Error != ErrUnbound.Error() {
		t.Errorf("before hello: got %+v, want unbound error ack", ack)
	}

	if ack := roundTrip(t, client, TypeHello, HelloMessage{Hero: "h1"}); ack.Status != StatusOK {
		t.Fatalf("hello: got %+v, want ok", ack)
	}
	if ack := roundTrip(t, client, TypeGameState, false); ack.Status != StatusOK {
		t.Errorf("after hello: got %+v, want ok", ack)
	}
}

func TestConnectionErrorAcks(t *testing.T) {
	client, _ := startConnection(t)
	roundTrip(t, client, TypeHello, HelloMessage{Hero: "h1"})

	if ack := roundTrip(t, client, TypeGameState, true); ack.Status != StatusError || ack.Error != "bad state" {
		t.Errorf("handler error: got %+v", ack)
	}
	if ack := roundTrip(t, client, "surrender", nil); ack.Status != StatusError {
		t.Errorf("unknown type: got %+v", ack)
	}
}

func TestConnectionSend(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	runner := NewConnection(client, nil)
	errc := make(chan error, 1)
	go func() { errc <- runner.Send(TypeHello, HelloMessage{Hero: "h1", Strategy: "safe-miner"}) }()

	env, err := ReadEnvelope(server)
	if err != nil {
		t.Fatal(err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("Send: %v", err)
	}
	var hello HelloMessage
	if err := env.DecodeInto(&hello); err != nil {
		t.Fatal(err)
	}
	if env.Type != TypeHello || hello.Hero != "h1" || hello.Strategy != "safe-miner" {
		t.Errorf("got %s %+v", env.Type, hello)
	}
}

func TestBind(t *testing.T) {
	c := NewConnection(nil, nil)
	if c.Bound() {
		t.Error("new connection should be unbound")
	}
	c.Bind("h1")
	if !c.Bound() || c.Hero() != "h1" {
		t.Errorf("Hero = %q, Bound = %v", c.Hero(), c.Bound())
	}
}
