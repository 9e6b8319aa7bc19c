package ipc

import "github.com/nstehr/tactician/model"

// Command type constants. The battle runner applies the reply to the hero
// named in it and advances the turn.
const (
	TypeMove = "move"
)

// MoveCommand answers a game_state. Direction is empty for NoPreference,
// which the runner treats as staying put.
type MoveCommand struct {
	Hero      string       `json:"hero"`
	Turn      int          `json:"turn"`
	Direction model.Action `json:"direction"`
}
