package ipc

// Message types understood on both ends of the socket.
const (
	TypeHello     = "hello"
	TypeAck       = "ack"
	TypeGameState = "game_state"
)

// HelloMessage binds a connection to one hero. Strategy is optional and
// names the policy that drives the hero; empty selects the default.
type HelloMessage struct {
	Hero     string `json:"hero"`
	Strategy string `json:"strategy,omitempty"`
}

// Ack statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

type AckMessage struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewAck builds an ok ack, or an error ack carrying err's text.
func NewAck(err error) (Envelope, error) {
	msg := AckMessage{Status: StatusOK}
	if err != nil {
		msg = AckMessage{Status: StatusError, Error: err.Error()}
	}
	return NewEnvelope(TypeAck, msg)
}
