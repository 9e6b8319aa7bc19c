package rules

import (
	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
)

// RuleEnv is the per-decision context. It is built fresh for every call to
// Decide, passed by value to rule conditions and actions, and discarded after.
// Exported fields and methods are visible to expr conditions.
type RuleEnv struct {
	Game   *model.Game
	Self   *model.Hero
	Config Config
	Paths  pathfind.Searcher

	// Reaction buckets, filled before the standard ladder runs.
	Retreat []*model.Hero
	Engage  []*model.Hero
	Hold    []*model.Hero

	// Deathmatch neighbour pick, filled before the deathmatch ladder runs.
	Neighbor    *model.Hero
	NeighborDir model.Action
}

func (e RuleEnv) TurnsToElimination(health int) int {
	return e.Config.TurnsToElimination(health)
}

// Critical reports whether the active hero is one hit from elimination.
func (e RuleEnv) Critical() bool { return e.Config.Critical(e.Self.Health) }

func (e RuleEnv) Hurt() bool { return e.Config.Hurt(e.Self.Health) }

func (e RuleEnv) AdjacentToWell() bool {
	return AdjacentToHealing(e.Game.Board, e.Self.Pos())
}

func (e RuleEnv) HasNeighborTarget() bool { return e.Neighbor != nil }

// NeighborLethal reports whether the chosen neighbour is an enemy we finish
// with one hit.
func (e RuleEnv) NeighborLethal() bool {
	return e.Neighbor != nil &&
		e.Neighbor.Team != e.Self.Team &&
		e.TurnsToElimination(e.Neighbor.Health) == 1
}

func (e RuleEnv) WellCount() int { return len(e.Game.HealingWells) }
