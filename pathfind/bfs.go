// Package pathfind answers "which way, and how far" questions over a board.
//
// The search walks only through unoccupied tiles. Heroes, wells, mines and
// walls are endpoints: they can be the answer to a query but a path cannot
// pass through them, because stepping into them is an interaction, not a move.
package pathfind

import "github.com/nstehr/tactician/model"

// Searcher is the query surface the policy depends on.
type Searcher interface {
	// NearestMatch returns the closest tile satisfying match, reachable from
	// "from", together with the first step toward it.
	NearestMatch(b *model.Board, from model.Point, match model.TileMatcher) (model.Match, bool)
	// DistanceTo returns the walking distance from "from" to the tile at "to".
	DistanceTo(b *model.Board, from, to model.Point) (int, bool)
}

// expandOrder is the neighbour order of the breadth-first search. Among tiles
// at equal distance, the one discovered first through this order wins.
var expandOrder = [4]model.Action{model.North, model.East, model.South, model.West}

// BFS is the breadth-first Searcher. It holds no state; scratch buffers are
// allocated per query.
type BFS struct{}

type frontier struct {
	pos   model.Point
	first model.Action
	dist  int
}

func (BFS) NearestMatch(b *model.Board, from model.Point, match model.TileMatcher) (model.Match, bool) {
	if !b.In(from) || match == nil {
		return model.Match{}, false
	}

	visited := make([]bool, len(b.Tiles))
	visited[b.Index(from)] = true
	queue := []frontier{{pos: from, first: model.NoPreference}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range expandOrder {
			t, ok := b.Neighbor(cur.pos, dir)
			if !ok {
				continue
			}
			idx := b.Index(t.Pos)
			if visited[idx] {
				continue
			}
			visited[idx] = true

			first := cur.first
			if first == model.NoPreference {
				first = dir
			}
			dist := cur.dist + 1

			if match(t, dist) {
				return model.Match{Direction: first, Distance: dist, Tile: t}, true
			}
			if t.Walkable() {
				queue = append(queue, frontier{pos: t.Pos, first: first, dist: dist})
			}
		}
	}
	return model.Match{}, false
}

func (s BFS) DistanceTo(b *model.Board, from, to model.Point) (int, bool) {
	m, ok := s.NearestMatch(b, from, func(t model.Tile, _ int) bool {
		return t.Pos == to
	})
	if !ok {
		return 0, false
	}
	return m.Distance, true
}
