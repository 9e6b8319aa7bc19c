package rules

import (
	"testing"

	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/model/modeltest"
)

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestLaddersSortedByPriority(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	for name, rules := range map[string][]*Rule{"tactics": e.tactics, "deathmatch": e.deathmatch} {
		for i := 1; i < len(rules); i++ {
			if rules[i].Priority > rules[i-1].Priority {
				t.Errorf("%s not sorted by priority: %s (%d) > %s (%d)", name,
					rules[i].Name, rules[i].Priority,
					rules[i-1].Name, rules[i-1].Priority)
			}
		}
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		health map[string]int
		want   model.Action
	}{
		{
			name: "guaranteed kill beats critical health",
			rows: []string{
				"W....",
				"..Ae.",
				"....W",
			},
			health: map[string]int{"A": 25, "e1": 30},
			want:   model.East,
		},
		{
			name: "forced retreat",
			rows: []string{
				"W.....",
				"...Ae.",
				"......",
				"W.....",
			},
			health: map[string]int{"A": 40},
			want:   model.North,
		},
		{
			name: "objective mine",
			rows: []string{
				"A..M",
				"....",
				"W..W",
			},
			want: model.East,
		},
		{
			name: "deathmatch race to well",
			rows: []string{
				"W....",
				".....",
				"...Ae",
			},
			health: map[string]int{"A": 60},
			want:   model.North,
		},
		{
			name:   "deathmatch holds the well",
			rows:   []string{"WAe.."},
			health: map[string]int{"A": 60},
			want:   model.East,
		},
		{
			name:   "deathmatch badly hurt heals",
			rows:   []string{"WAe.."},
			health: map[string]int{"A": 30},
			want:   model.West,
		},
		{
			name:   "deathmatch finishes a neighbour",
			rows:   []string{"W..Ae"},
			health: map[string]int{"e1": 30},
			want:   model.East,
		},
		{
			name: "surrounded retreats from every threat",
			rows: []string{
				".......",
				"...Ae..",
				".......",
				".......",
				"...e...",
			},
			health: map[string]int{"e1": 30},
			want:   model.North,
		},
		{
			name: "boxed in takes the kill",
			rows: []string{
				".e.",
				"eAe",
				".e.",
			},
			health: map[string]int{"e1": 25},
			want:   model.North,
		},
		{
			name: "cornered takes the kill instead of running at a threat",
			rows: []string{
				".e..",
				"#A.e",
				".#..",
			},
			health: map[string]int{"e1": 25},
			want:   model.North,
		},
		{
			name: "boxed in without a winning trade still acts",
			rows: []string{
				".e.",
				"eAe",
				".e.",
			},
			health: map[string]int{"A": 40},
			want:   model.North,
		},
		{
			name:   "healing beats fleeing",
			rows:   []string{"WAe.W"},
			health: map[string]int{"A": 40},
			want:   model.West,
		},
		{
			name: "hold at full health",
			rows: []string{"A..e"},
			want: model.Stay,
		},
		{
			name:   "critical heal",
			rows:   []string{"W.A..W"},
			health: map[string]int{"A": 20},
			want:   model.West,
		},
		{
			name: "fallback toward distant enemy",
			rows: []string{"A...e"},
			want: model.East,
		},
		{
			name: "nothing reachable",
			rows: []string{"A#e"},
			want: model.NoPreference,
		},
	}

	e := newEngine(t, DefaultConfig())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := modeltest.Parse(t, tc.rows...)
			for id, hp := range tc.health {
				g.Hero(id).Health = hp
			}
			if got := e.Decide(g, nil); got != tc.want {
				t.Errorf("Decide = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDecideDeterministic(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	rows := []string{
		"W.....",
		"..e...",
		"...A..",
		"a...e.",
		".....W",
	}
	first := e.Decide(modeltest.Parse(t, rows...), nil)
	for i := 0; i < 10; i++ {
		if got := e.Decide(modeltest.Parse(t, rows...), nil); got != first {
			t.Fatalf("run %d: Decide = %s, first run %s", i, got, first)
		}
	}
}

func TestDecideNilGame(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	if got := e.Decide(nil, nil); got != model.NoPreference {
		t.Errorf("Decide(nil) = %s, want NoPreference", got)
	}
}

func TestReconfigure(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	rows := []string{"WAe.."}

	g := modeltest.Parse(t, rows...)
	g.Active.Health = 60
	if got := e.Decide(g, nil); got != model.East {
		t.Fatalf("deathmatch Decide = %s, want East", got)
	}

	cfg := DefaultConfig()
	cfg.Deathmatch = DeathmatchNever
	if err := e.Reconfigure(cfg); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if e.Config().Deathmatch != DeathmatchNever {
		t.Errorf("Config().Deathmatch = %q, want never", e.Config().Deathmatch)
	}

	// The standard ladder sees a losing trade next to a well and heals.
	g = modeltest.Parse(t, rows...)
	g.Active.Health = 60
	if got := e.Decide(g, nil); got != model.West {
		t.Errorf("standard Decide = %s, want West", got)
	}
}

func TestEngineIsStrategy(t *testing.T) {
	var _ Strategy = (*Engine)(nil)
}
