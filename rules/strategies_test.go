package rules

import (
	"testing"

	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/model/modeltest"
)

func TestCarefulAssassin(t *testing.T) {
	tests := []struct {
		name  string
		self  int
		enemy int
		want  model.Action
	}{
		{"heals below half", 40, 100, model.West},
		{"hunts weaker enemy", 100, 50, model.East},
		{"hunts any enemy", 100, 100, model.East},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := modeltest.Parse(t, "W.A.e")
			g.Active.Health = tc.self
			g.Hero("e1").Health = tc.enemy
			if got := CarefulAssassin.Decide(g, nil); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSafeMiner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		self int
		want model.Action
	}{
		{"heals when low", []string{"W.A.M"}, 30, model.West},
		{"mines when healthy", []string{"W.A.M"}, 100, model.East},
		{"hunts when nothing to mine", []string{"e.A.."}, 100, model.West},
		{"low without a well keeps mining", []string{"..A.M"}, 30, model.East},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := modeltest.Parse(t, tc.rows...)
			g.Active.Health = tc.self
			if got := SafeMiner.Decide(g, nil); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLookupStrategy(t *testing.T) {
	e := newEngine(t, DefaultConfig())

	for _, name := range []string{"", StrategyTactician, StrategyCarefulAssassin, StrategySafeMiner} {
		s, err := LookupStrategy(name, e)
		if err != nil || s == nil {
			t.Errorf("LookupStrategy(%q) = %v, %v", name, s, err)
		}
	}
	if _, err := LookupStrategy("berserker", e); err == nil {
		t.Error("expected error for unknown strategy")
	}
	if _, err := LookupStrategy(StrategyTactician, nil); err == nil {
		t.Error("expected error for tactician without engine")
	}
}
