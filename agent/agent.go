package agent

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nstehr/tactician/ipc"
	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
	"github.com/nstehr/tactician/rules"
)

// Agent owns the decision-making for a single hero session.
type Agent struct {
	Conn     *ipc.Connection
	Hero     string
	Strategy rules.Strategy
	Engine   *rules.Engine
	Paths    pathfind.Searcher

	prev   *stateSnapshot
	Events []Event // most recent maxEvents battle events
}

const maxEvents = 64

func New(conn *ipc.Connection, engine *rules.Engine) *Agent {
	a := &Agent{Conn: conn, Engine: engine, Paths: pathfind.BFS{}}
	if engine != nil {
		a.Strategy = engine
	}
	return a
}

// HandleHello binds the session to a hero and picks its strategy.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := env.DecodeInto(&hello); err != nil {
		return nil, err
	}

	strategy, err := rules.LookupStrategy(hello.Strategy, a.Engine)
	if err != nil {
		slog.Warn("hello rejected", "hero", hello.Hero, "error", err)
		return ack(err)
	}

	a.Hero = hello.Hero
	a.Strategy = strategy
	a.prev = nil
	if a.Conn != nil {
		a.Conn.Bind(hello.Hero)
	}
	slog.Info("hero identified", "hero", a.Hero, "strategy", hello.Strategy)
	return ack(nil)
}

// HandleGameState answers with a move when it is our hero's turn, and with an
// ack otherwise. A snapshot that fails validation is acked with an error and
// never reaches the policy.
func (a *Agent) HandleGameState(env ipc.Envelope) (*ipc.Envelope, error) {
	var gs model.GameState
	if err := env.DecodeInto(&gs); err != nil {
		return nil, err
	}

	g, err := model.NewGame(gs)
	if err != nil {
		slog.Warn("invalid game state", "hero", a.Hero, "turn", gs.Turn, "error", err)
		return ack(err)
	}

	a.track(g)

	if g.Ended {
		slog.Info("game over", "hero", a.Hero, "turn", g.Turn)
		return ack(nil)
	}
	if a.Hero != "" && g.Active.ID != a.Hero {
		return ack(nil)
	}

	strategy := a.Strategy
	if strategy == nil {
		if a.Engine == nil {
			return nil, errors.New("agent has no strategy")
		}
		strategy = a.Engine
	}
	dir := strategy.Decide(g, a.Paths)

	slog.Info("move decided",
		"hero", g.Active.ID,
		"turn", g.Turn,
		"health", g.Active.Health,
		"direction", dir.String(),
	)

	move, err := ipc.NewEnvelope(ipc.TypeMove, ipc.MoveCommand{
		Hero:      g.Active.ID,
		Turn:      g.Turn,
		Direction: dir,
	})
	if err != nil {
		return nil, fmt.Errorf("encode move: %w", err)
	}
	return &move, nil
}

// track diffs g against the previous turn and logs what changed. Nothing is
// tracked until hello names our hero.
func (a *Agent) track(g *model.Game) {
	if a.Hero == "" {
		return
	}
	cur := snapshot(g, a.Hero)

	critical := rules.DefaultCriticalHealth
	if a.Engine != nil {
		critical = a.Engine.Config().CriticalHealth
	}
	for _, ev := range detectEvents(a.prev, cur, a.Hero, critical) {
		slog.Info("battle event", "hero", a.Hero, "kind", ev.Kind, "turn", ev.Turn, "detail", ev.Detail)
		a.Events = append(a.Events, ev)
	}
	if n := len(a.Events); n > maxEvents {
		a.Events = append(a.Events[:0], a.Events[n-maxEvents:]...)
	}
	a.prev = cur
}

func ack(err error) (*ipc.Envelope, error) {
	env, encErr := ipc.NewAck(err)
	if encErr != nil {
		return nil, encErr
	}
	return &env, nil
}
