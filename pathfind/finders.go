package pathfind

import "github.com/nstehr/tactician/model"

// Convenience finders used by fallback tiers and the baseline strategies.
// Each returns the first step from the active hero toward the nearest match.

func nearest(s Searcher, g *model.Game, match model.TileMatcher) (model.Action, bool) {
	if g == nil || g.Active == nil {
		return model.NoPreference, false
	}
	m, ok := s.NearestMatch(g.Board, g.Active.Pos(), match)
	if !ok {
		return model.NoPreference, false
	}
	return m.Direction, true
}

func NearestHealingWell(s Searcher, g *model.Game) (model.Action, bool) {
	return nearest(s, g, func(t model.Tile, _ int) bool {
		return t.Kind == model.TileHealingWell
	})
}

func NearestEnemy(s Searcher, g *model.Game) (model.Action, bool) {
	return nearest(s, g, func(t model.Tile, _ int) bool {
		return t.Kind == model.TileHero && t.Hero.Team != g.Active.Team
	})
}

// NearestWeakerEnemy finds the closest enemy with less health than the active hero.
func NearestWeakerEnemy(s Searcher, g *model.Game) (model.Action, bool) {
	return nearest(s, g, func(t model.Tile, _ int) bool {
		return t.Kind == model.TileHero && t.Hero.Team != g.Active.Team && t.Hero.Health < g.Active.Health
	})
}

func NearestTeammate(s Searcher, g *model.Game) (model.Action, bool) {
	return nearest(s, g, func(t model.Tile, _ int) bool {
		return t.Kind == model.TileHero && t.Hero.Team == g.Active.Team
	})
}

// NearestNonTeamMine finds the closest mine that is unclaimed or held by the other team.
func NearestNonTeamMine(s Searcher, g *model.Game) (model.Action, bool) {
	return nearest(s, g, func(t model.Tile, _ int) bool {
		return t.Kind == model.TileResourceMine && (!t.Claimed() || t.Owner.Team != g.Active.Team)
	})
}
