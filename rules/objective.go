package rules

import (
	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
)

// objectiveMatcher ranks what is worth walking to when nothing is fighting
// us. Within one tile the checks run in priority order; across tiles the
// nearest match wins.
func objectiveMatcher(env RuleEnv) model.TileMatcher {
	self, cfg := env.Self, env.Config
	hurt := cfg.Hurt(self.Health)
	imbalance := env.Game.ResourceImbalance(self.Team)
	if imbalance < 0 {
		imbalance = -imbalance
	}

	return func(t model.Tile, dist int) bool {
		closeBy := dist < cfg.ShortHorizon

		switch t.Kind {
		case model.TileHero:
			other := t.Hero
			if other.Team == self.Team {
				// Stepping into a wounded ally heals it.
				return dist == 1 && other.Health <= cfg.HealThreshold
			}
			return closeBy && cfg.TurnsToElimination(other.Health) < cfg.TurnsToElimination(self.Health)

		case model.TileHealingWell:
			return hurt

		case model.TileResourceMine:
			if cfg.IgnoreResources || hurt {
				return false
			}
			if !closeBy || imbalance > cfg.ResourceImbalanceThreshold {
				return false
			}
			return !t.Claimed() || t.Owner.Team != self.Team

		case model.TileUnoccupied:
			return closeBy && t.Sub == model.SubRemains

		case model.TileImpassable:
			return false
		}
		return false
	}
}

// ActionObjective heads for the best nearby objective, if any.
func ActionObjective(env RuleEnv) (model.Action, bool) {
	m, ok := env.Paths.NearestMatch(env.Game.Board, env.Self.Pos(), objectiveMatcher(env))
	if !ok {
		return model.NoPreference, false
	}
	return m.Direction, true
}

// ActionFallback keeps the hero moving when no objective is in range: toward
// a fight, then toward friends, then toward any mine the other team can lose.
func ActionFallback(env RuleEnv) (model.Action, bool) {
	for _, find := range []func(pathfind.Searcher, *model.Game) (model.Action, bool){
		pathfind.NearestEnemy,
		pathfind.NearestTeammate,
		pathfind.NearestNonTeamMine,
	} {
		if dir, ok := find(env.Paths, env.Game); ok {
			return dir, true
		}
	}
	return model.NoPreference, false
}

// ActionEngage attacks the nearest enemy in the engage bucket.
func ActionEngage(env RuleEnv) (model.Action, bool) {
	m, ok := env.Paths.NearestMatch(env.Game.Board, env.Self.Pos(), func(t model.Tile, _ int) bool {
		if t.Kind != model.TileHero {
			return false
		}
		for _, h := range env.Engage {
			if h == t.Hero {
				return true
			}
		}
		return false
	})
	if !ok {
		return model.NoPreference, false
	}
	return m.Direction, true
}

func ActionHold(RuleEnv) (model.Action, bool) {
	return model.Stay, true
}

// ActionHeal heads for the nearest healing well.
func ActionHeal(env RuleEnv) (model.Action, bool) {
	return pathfind.NearestHealingWell(env.Paths, env.Game)
}
