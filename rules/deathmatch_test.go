package rules

import (
	"testing"

	"github.com/nstehr/tactician/model"
	"github.com/nstehr/tactician/model/modeltest"
)

func TestPickNeighbor(t *testing.T) {
	rows := []string{
		".e.",
		"aAe",
		"...",
	}
	tests := []struct {
		name   string
		self   int
		e1, e2 int
		ally   int
		want   string
		dir    model.Action
	}{
		{"weakest enemy", 100, 60, 40, 100, "e2", model.East},
		{"tie goes to compass order", 100, 40, 40, 100, "e1", model.North},
		{"wounded ally", 100, 100, 100, 50, "a1", model.West},
		{"critical self skips ally", 30, 100, 100, 50, "e1", model.North},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := modeltest.Parse(t, rows...)
			g.Active.Health = tc.self
			g.Hero("e1").Health = tc.e1
			g.Hero("e2").Health = tc.e2
			g.Hero("a1").Health = tc.ally

			env := baseEnv(g)
			pickNeighbor(&env)
			if env.Neighbor == nil {
				t.Fatal("no neighbour picked")
			}
			if env.Neighbor.ID != tc.want || env.NeighborDir != tc.dir {
				t.Errorf("picked %s %s, want %s %s", env.Neighbor.ID, env.NeighborDir, tc.want, tc.dir)
			}
		})
	}
}

func TestPickNeighborNone(t *testing.T) {
	g := modeltest.Parse(t, "A.e")
	env := baseEnv(g)
	pickNeighbor(&env)
	if env.HasNeighborTarget() {
		t.Errorf("picked %s, want none", env.Neighbor.ID)
	}
	if _, ok := ActionNeighbor(env); ok {
		t.Error("ActionNeighbor should decline without a target")
	}
}

func TestActionRaceToWell(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want model.Action
		ok   bool
	}{
		{"well", []string{"W..A.e"}, model.West, true},
		{"teammate when well walled off", []string{"W#.A.a"}, model.East, true},
		{"any enemy last", []string{"W#.A.e"}, model.East, true},
		{"nothing", []string{"W#A#e"}, model.NoPreference, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := modeltest.Parse(t, tc.rows...)
			got, ok := ActionRaceToWell(baseEnv(g))
			if ok != tc.ok || got != tc.want {
				t.Errorf("got %s (ok=%v), want %s (ok=%v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}
