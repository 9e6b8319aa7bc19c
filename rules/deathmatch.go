package rules

import (
	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
)

// pickNeighbor chooses the weakest adjacent hero worth stepping into: any
// enemy, or an ally that needs healing when we can spare the turn. Ties go
// to the first in compass order.
func pickNeighbor(env *RuleEnv) {
	self, cfg := env.Self, env.Config
	critical := cfg.Critical(self.Health)

	for _, d := range model.Compass {
		t, ok := env.Game.Board.Neighbor(self.Pos(), d)
		if !ok || t.Kind != model.TileHero {
			continue
		}
		h := t.Hero
		if h.Team == self.Team && (critical || h.Health > cfg.HealThreshold) {
			continue
		}
		if env.Neighbor == nil || h.Health < env.Neighbor.Health {
			env.Neighbor = h
			env.NeighborDir = d
		}
	}
}

// ActionNeighbor steps into the picked neighbour: an attack on an enemy,
// a heal on an ally.
func ActionNeighbor(env RuleEnv) (model.Action, bool) {
	if env.Neighbor == nil {
		return model.NoPreference, false
	}
	return env.NeighborDir, true
}

// ActionRaceToWell heads for the single well. If it cannot be reached, the
// hero shadows a teammate, then hunts weaker enemies, then any enemy.
func ActionRaceToWell(env RuleEnv) (model.Action, bool) {
	for _, find := range []func(pathfind.Searcher, *model.Game) (model.Action, bool){
		pathfind.NearestHealingWell,
		pathfind.NearestTeammate,
		pathfind.NearestWeakerEnemy,
		pathfind.NearestEnemy,
	} {
		if dir, ok := find(env.Paths, env.Game); ok {
			return dir, true
		}
	}
	return model.NoPreference, false
}
