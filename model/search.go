package model

// TileMatcher is a nearest-match predicate. dist is the walking distance from
// the searching hero, so predicates can apply horizons without a second search.
type TileMatcher func(t Tile, dist int) bool

// Match is the result of a nearest-match query: the first step to take, the
// number of steps to reach the tile, and the tile itself.
type Match struct {
	Direction Action
	Distance  int
	Tile      Tile
}
