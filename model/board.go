package model

// TileKind classifies what stands on a board cell for the current turn.
type TileKind byte

const (
	TileUnoccupied   TileKind = iota // walkable ground, may carry a SubKind
	TileHero                         // a living hero of either team
	TileHealingWell                  // heals whoever steps into it
	TileResourceMine                 // capturable, scores for its owner's team
	TileImpassable                   // wall, tree, rock
)

func (k TileKind) String() string {
	switch k {
	case TileUnoccupied:
		return "Unoccupied"
	case TileHero:
		return "Hero"
	case TileHealingWell:
		return "HealingWell"
	case TileResourceMine:
		return "ResourceMine"
	case TileImpassable:
		return "Impassable"
	}
	return "Unknown"
}

// SubKind refines an unoccupied tile.
type SubKind byte

const (
	SubNone    SubKind = iota
	SubRemains         // a fallen hero's loot, collectable by walking over it
)

// Point is a board coordinate. (0,0) is the top-left corner.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the point one move away in direction a. Non-compass actions
// return p unchanged.
func (p Point) Step(a Action) Point {
	dr, dc := a.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Tile is one board cell. Hero is set only for TileHero; Owner is set only for
// a claimed TileResourceMine.
type Tile struct {
	Kind  TileKind
	Sub   SubKind
	Pos   Point
	Hero  *Hero
	Owner *Hero
}

// Claimed reports whether a resource mine has an owner.
func (t Tile) Claimed() bool { return t.Owner != nil }

// Walkable reports whether a hero can step onto t without interacting with it.
func (t Tile) Walkable() bool { return t.Kind == TileUnoccupied }

// Board is a rectangular grid stored row-major: Tiles[row*Cols + col].
type Board struct {
	Rows  int
	Cols  int
	Tiles []Tile
}

// In reports whether p lies on the board.
func (b *Board) In(p Point) bool {
	return b != nil && p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// Index returns the row-major slot of p. Callers must check In first.
func (b *Board) Index(p Point) int {
	return p.Row*b.Cols + p.Col
}

// At returns the tile at p. Out-of-range coordinates yield false, never a panic.
func (b *Board) At(p Point) (Tile, bool) {
	if !b.In(p) {
		return Tile{}, false
	}
	return b.Tiles[b.Index(p)], true
}

// Neighbor returns the tile one step from p in direction a.
func (b *Board) Neighbor(p Point, a Action) (Tile, bool) {
	if !a.IsMove() {
		return Tile{}, false
	}
	return b.At(p.Step(a))
}

// Around returns the in-bounds orthogonal neighbours of p in Compass order.
func (b *Board) Around(p Point) []Tile {
	out := make([]Tile, 0, 4)
	for _, d := range Compass {
		if t, ok := b.Neighbor(p, d); ok {
			out = append(out, t)
		}
	}
	return out
}
