package rules

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/pathfind"
)

// Engine picks one move per turn for the active hero. It holds two compiled
// ladders and chooses between them by the number of healing wells on the map.
// Rules fire in priority order; the first rule whose condition holds and whose
// action has an answer decides the turn.
type Engine struct {
	mu         sync.RWMutex
	cfg        Config
	tactics    []*Rule
	deathmatch []*Rule
}

// NewEngine compiles both ladders for cfg.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Reconfigure recompiles both ladders and swaps them in. If compilation fails
// the old rules remain active.
func (e *Engine) Reconfigure(cfg Config) error {
	cfg.Validate()
	tactics, err := compileRules(CompileTactics(cfg))
	if err != nil {
		return err
	}
	deathmatch, err := compileRules(CompileDeathmatch(cfg))
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.cfg = cfg
	e.tactics = tactics
	e.deathmatch = deathmatch
	e.mu.Unlock()

	slog.Info("rule set swapped",
		"tactics", len(tactics),
		"deathmatch", len(deathmatch),
		"mode", cfg.Deathmatch,
	)
	return nil
}

func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Decide returns the move for g's active hero. paths may be nil, in which
// case a breadth-first search over the board is used. Decide never fails:
// when no rule has an answer it returns NoPreference.
func (e *Engine) Decide(g *model.Game, paths pathfind.Searcher) model.Action {
	if g == nil || g.Active == nil || g.Board == nil {
		return model.NoPreference
	}
	if paths == nil {
		paths = pathfind.BFS{}
	}

	e.mu.RLock()
	cfg := e.cfg
	rules := e.tactics
	deathmatch := cfg.useDeathmatch(len(g.HealingWells))
	if deathmatch {
		rules = e.deathmatch
	}
	e.mu.RUnlock()

	env := RuleEnv{Game: g, Self: g.Active, Config: cfg, Paths: paths}
	if deathmatch {
		pickNeighbor(&env)
	} else {
		assess(&env)
	}

	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}

		action, ok := r.Action(env)
		if !ok {
			continue
		}
		slog.Debug("rule fired",
			"rule", r.Name,
			"priority", r.Priority,
			"hero", g.Active.ID,
			"turn", g.Turn,
			"action", action.String(),
		)
		return action
	}

	slog.Debug("no rule decided", "hero", g.Active.ID, "turn", g.Turn)
	return model.NoPreference
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
