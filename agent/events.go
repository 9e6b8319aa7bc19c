package agent

import (
	"fmt"

	"github.com/nstehr/tactician/model"
)

// EventKind identifies something that changed for our hero's side between
// two consecutive game states.
type EventKind string

const (
	EventHeroFallen   EventKind = "hero_fallen"
	EventAllyFallen   EventKind = "ally_fallen"
	EventEnemyFallen  EventKind = "enemy_fallen"
	EventMineCaptured EventKind = "mine_captured"
	EventMineLost     EventKind = "mine_lost"
	EventHealthLow    EventKind = "health_low"
)

// Event is a significant change detected by diffing consecutive turns.
type Event struct {
	Kind   EventKind
	Turn   int
	Detail string
}

// stateSnapshot captures the diffable fields of one turn, from the point of
// view of a single hero. ids and mines keep roster and board order so events
// come out in a stable order. mineOwn holds the owning team, -1 if unclaimed.
type stateSnapshot struct {
	turn    int
	health  int
	team    int
	ids     []string
	dead    map[string]bool
	teamOf  map[string]int
	mines   []model.Point
	mineOwn map[model.Point]int
}

func snapshot(g *model.Game, hero string) *stateSnapshot {
	self := g.Hero(hero)
	if self == nil {
		return nil
	}
	s := &stateSnapshot{
		turn:    g.Turn,
		health:  self.Health,
		team:    self.Team,
		dead:    make(map[string]bool, len(g.Heroes)),
		teamOf:  make(map[string]int, len(g.Heroes)),
		mines:   g.Mines,
		mineOwn: make(map[model.Point]int, len(g.Mines)),
	}
	for _, h := range g.Heroes {
		s.ids = append(s.ids, h.ID)
		s.dead[h.ID] = h.Dead
		s.teamOf[h.ID] = h.Team
	}
	for _, p := range g.Mines {
		owner := -1
		if t, ok := g.Board.At(p); ok && t.Claimed() {
			owner = t.Owner.Team
		}
		s.mineOwn[p] = owner
	}
	return s
}

// detectEvents compares two snapshots of the same hero. criticalHealth is the
// threshold at or below which a drop in health is reported.
func detectEvents(prev, cur *stateSnapshot, hero string, criticalHealth int) []Event {
	if prev == nil || cur == nil {
		return nil
	}
	var events []Event
	add := func(kind EventKind, format string, args ...any) {
		events = append(events, Event{Kind: kind, Turn: cur.turn, Detail: fmt.Sprintf(format, args...)})
	}

	for _, id := range cur.ids {
		if !cur.dead[id] || prev.dead[id] {
			continue
		}
		switch {
		case id == hero:
			add(EventHeroFallen, "%s has fallen", id)
		case cur.teamOf[id] == cur.team:
			add(EventAllyFallen, "ally %s has fallen", id)
		default:
			add(EventEnemyFallen, "enemy %s has fallen", id)
		}
	}

	for _, p := range cur.mines {
		owner := cur.mineOwn[p]
		before, seen := prev.mineOwn[p]
		if !seen || before == owner {
			continue
		}
		switch {
		case owner == cur.team:
			add(EventMineCaptured, "mine at (%d,%d) captured", p.Row, p.Col)
		case before == cur.team:
			add(EventMineLost, "mine at (%d,%d) lost", p.Row, p.Col)
		}
	}

	if cur.health <= criticalHealth && prev.health > criticalHealth && !cur.dead[hero] {
		add(EventHealthLow, "health dropped from %d to %d", prev.health, cur.health)
	}
	return events
}
