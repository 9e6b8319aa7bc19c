package rules

import (
	"fmt"

	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
)

// Strategy chooses a move for the active hero of g.
type Strategy interface {
	Decide(g *model.Game, paths pathfind.Searcher) model.Action
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(g *model.Game, paths pathfind.Searcher) model.Action

func (f StrategyFunc) Decide(g *model.Game, paths pathfind.Searcher) model.Action {
	return f(g, paths)
}

// Strategy names accepted by LookupStrategy.
const (
	StrategyTactician       = "tactician"
	StrategyCarefulAssassin = "careful-assassin"
	StrategySafeMiner       = "safe-miner"
)

func firstOf(g *model.Game, paths pathfind.Searcher, finders ...func(pathfind.Searcher, *model.Game) (model.Action, bool)) (model.Action, bool) {
	if g == nil || g.Active == nil {
		return model.NoPreference, false
	}
	if paths == nil {
		paths = pathfind.BFS{}
	}
	for _, find := range finders {
		if dir, ok := find(paths, g); ok {
			return dir, true
		}
	}
	return model.NoPreference, false
}

// CarefulAssassin heals below half health and otherwise hunts, preferring
// enemies weaker than itself.
var CarefulAssassin = StrategyFunc(func(g *model.Game, paths pathfind.Searcher) model.Action {
	if g == nil || g.Active == nil {
		return model.NoPreference
	}
	if g.Active.Health < 50 {
		dir, _ := firstOf(g, paths, pathfind.NearestHealingWell)
		return dir
	}
	dir, _ := firstOf(g, paths, pathfind.NearestWeakerEnemy, pathfind.NearestEnemy)
	return dir
})

// SafeMiner heals when low, otherwise captures mines, and hunts like
// CarefulAssassin once there is nothing left to capture.
var SafeMiner = StrategyFunc(func(g *model.Game, paths pathfind.Searcher) model.Action {
	if g == nil || g.Active == nil {
		return model.NoPreference
	}
	if g.Active.Health < 40 {
		if dir, ok := firstOf(g, paths, pathfind.NearestHealingWell); ok {
			return dir
		}
	}
	if dir, ok := firstOf(g, paths, pathfind.NearestNonTeamMine); ok {
		return dir
	}
	return CarefulAssassin(g, paths)
})

// LookupStrategy resolves a strategy by name. An empty name selects the
// engine.
func LookupStrategy(name string, engine *Engine) (Strategy, error) {
	switch name {
	case "", StrategyTactician:
		if engine == nil {
			return nil, fmt.Errorf("strategy %q: no engine", StrategyTactician)
		}
		return engine, nil
	case StrategyCarefulAssassin:
		return CarefulAssassin, nil
	case StrategySafeMiner:
		return SafeMiner, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
