// Package modeltest builds games from ASCII sketches for tests.
//
// Besides the regular layout runes, a sketch may place heroes:
//
//	A  the active hero (team 0)
//	a  an ally (team 0), ids a1, a2, ... in row-major order
//	e  an enemy (team 1), ids e1, e2, ...
//
// Every hero starts at full health with no stats; tests adjust the returned
// game's heroes before deciding.
package modeltest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nstehr/tactician/model"
)

// Parse builds a game from sketch rows, failing the test on malformed input.
func Parse(tb testing.TB, rows ...string) *model.Game {
	tb.Helper()
	g, err := Build(rows...)
	if err != nil {
		tb.Fatalf("modeltest.Parse: %v", err)
	}
	return g
}

// Build is Parse without a testing handle.
func Build(rows ...string) (*model.Game, error) {
	gs := model.GameState{ActiveHero: "A"}
	allies, enemies := 0, 0
	for r, line := range rows {
		var clean strings.Builder
		for c, ch := range line {
			switch ch {
			case 'A':
				gs.Heroes = append(gs.Heroes, model.Hero{ID: "A", Team: 0, Row: r, Col: c, Health: 100})
			case 'a':
				allies++
				gs.Heroes = append(gs.Heroes, model.Hero{ID: fmt.Sprintf("a%d", allies), Team: 0, Row: r, Col: c, Health: 100})
			case 'e':
				enemies++
				gs.Heroes = append(gs.Heroes, model.Hero{ID: fmt.Sprintf("e%d", enemies), Team: 1, Row: r, Col: c, Health: 100})
			default:
				clean.WriteRune(ch)
				continue
			}
			clean.WriteRune(model.LayoutEmpty)
		}
		gs.Layout = append(gs.Layout, clean.String())
	}
	return model.NewGame(gs)
}
