package rules

import (
	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
)

// dirSet is a set of compass directions, one bit per direction.
type dirSet uint8

func dirBit(a model.Action) dirSet {
	if !a.IsMove() {
		return 0
	}
	return 1 << (a - model.North)
}

func (s *dirSet) add(a model.Action)     { *s |= dirBit(a) }
func (s dirSet) has(a model.Action) bool { return a.IsMove() && s&dirBit(a) != 0 }
func (s dirSet) full() bool              { return s&0x0f == 0x0f }

// firstOutside returns the first compass direction not in s.
func (s dirSet) firstOutside() (model.Action, bool) {
	for _, d := range model.Compass {
		if !s.has(d) {
			return d, true
		}
	}
	return model.NoPreference, false
}

// blockedDirections are the steps that cannot be taken as a plain move:
// off-board, walls, and any occupied or interactive tile.
func blockedDirections(b *model.Board, p model.Point) dirSet {
	var s dirSet
	for _, d := range model.Compass {
		if t, ok := b.Neighbor(p, d); !ok || !t.Walkable() {
			s.add(d)
		}
	}
	return s
}

// dangerDirections combines the steps toward any of the given enemies with
// the blocked steps.
func dangerDirections(b *model.Board, p model.Point, enemies []*model.Hero) dirSet {
	s := blockedDirections(b, p)
	for _, enemy := range enemies {
		for _, d := range model.DirectionsToward(p, enemy.Pos()) {
			s.add(d)
		}
	}
	return s
}

// ActionEscape moves away from every enemy in the retreat bucket, preferring
// the nearest healing well whose first step does not lead toward a threat.
// It declines when every direction is blocked or leads toward a threat.
func ActionEscape(env RuleEnv) (model.Action, bool) {
	g, self := env.Game, env.Self
	pos := self.Pos()

	// Healing beats fleeing when a well is one step away.
	if AdjacentToHealing(g.Board, pos) {
		if dir, ok := pathfind.NearestHealingWell(env.Paths, g); ok {
			return dir, true
		}
	}

	danger := dangerDirections(g.Board, pos, env.Retreat)
	if danger.full() {
		// Nowhere safe to run. Let the fighting tiers decide.
		return model.NoPreference, false
	}

	// Walk the wells outward. visited keeps a well whose approach is unsafe
	// from being selected again.
	visited := make(map[model.Point]bool, len(g.HealingWells))
	for {
		m, ok := env.Paths.NearestMatch(g.Board, pos, func(t model.Tile, _ int) bool {
			return t.Kind == model.TileHealingWell && !visited[t.Pos]
		})
		if !ok {
			break
		}
		visited[m.Tile.Pos] = true
		if !danger.has(m.Direction) {
			return m.Direction, true
		}
	}

	dir, _ := danger.firstOutside()
	return dir, true
}
