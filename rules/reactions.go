package rules

import "github.com/nstehr/tactician/model"

// Reaction is how the active hero responds to one enemy this turn.
type Reaction int

const (
	ReactNone Reaction = iota
	ReactRetreat
	ReactEngage
	ReactHold
)

func (r Reaction) String() string {
	switch r {
	case ReactRetreat:
		return "retreat"
	case ReactEngage:
		return "engage"
	case ReactHold:
		return "hold"
	}
	return "none"
}

// React projects one exchange between self and an enemy dist steps away.
// Only the three closest rings matter: anything further cannot hit us
// before we move again.
func (c Config) React(dist int, self, enemy *model.Hero, enemyNearWell bool) Reaction {
	te := c.TurnsToElimination(enemy.Health)
	th := c.TurnsToElimination(self.Health)

	switch dist {
	case 1:
		if te == 1 {
			return ReactEngage
		}
		// No escape from here, and we win or tie the trade.
		if !enemyNearWell && te <= th {
			return ReactEngage
		}
		return ReactRetreat

	case 2:
		// Closing in lands area damage on the enemy first.
		te = c.TurnsToElimination(enemy.Health - c.AreaDamage)
		if te == 0 {
			return ReactEngage
		}
		if !enemyNearWell && te < th {
			return ReactEngage
		}
		return ReactRetreat

	case 3:
		// The enemy may close in and hit us with area damage first.
		th = c.TurnsToElimination(self.Health - c.AreaDamage)
		if te <= th {
			return ReactEngage
		}
		if !c.Hurt(self.Health) {
			return ReactHold
		}
		if IsThreat(enemy) {
			return ReactRetreat
		}
	}
	return ReactNone
}

// assess buckets every reachable living enemy by reaction. When enough
// threats are close at once, the retreat bucket becomes exactly those threats
// regardless of how each one-on-one trade would go.
func assess(env *RuleEnv) {
	g, self, cfg := env.Game, env.Self, env.Config

	var threats []*model.Hero
	for _, enemy := range g.LivingEnemies(self.Team) {
		dist, ok := env.Paths.DistanceTo(g.Board, self.Pos(), enemy.Pos())
		if !ok {
			continue
		}
		if IsThreat(enemy) && dist <= cfg.ThreatRadius {
			threats = append(threats, enemy)
		}

		switch cfg.React(dist, self, enemy, AdjacentToHealing(g.Board, enemy.Pos())) {
		case ReactRetreat:
			env.Retreat = append(env.Retreat, enemy)
		case ReactEngage:
			env.Engage = append(env.Engage, enemy)
		case ReactHold:
			env.Hold = append(env.Hold, enemy)
		case ReactNone:
		}
	}

	if len(threats) >= cfg.SurroundCount {
		env.Retreat = threats
	}
}
