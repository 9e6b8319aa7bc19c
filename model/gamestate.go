package model

import (
	"errors"
	"fmt"
)

// Layout runes understood in GameState.Layout.
const (
	LayoutEmpty      = '.'
	LayoutRemains    = 'b'
	LayoutWell       = 'W'
	LayoutMine       = 'M'
	LayoutImpassable = '#'
)

// GameState is the per-turn snapshot sent by the battle engine.
type GameState struct {
	Turn          int             `json:"turn"`
	Ended         bool            `json:"ended"`
	ActiveHero    string          `json:"activeHero"`
	Layout        []string        `json:"layout"`
	Heroes        []Hero          `json:"heroes"`
	Mines         []MineOwnership `json:"mines"`
	TeamResources [2]int          `json:"teamResources"`
}

type Hero struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Team            int    `json:"team"`
	Row             int    `json:"row"`
	Col             int    `json:"col"`
	Health          int    `json:"health"`
	Dead            bool   `json:"dead"`
	Kills           int    `json:"kills"`
	GravesRobbed    int    `json:"gravesRobbed"`
	ResourcesEarned int    `json:"resourcesEarned"`
	MinesCaptured   int    `json:"minesCaptured"`
	HealthGiven     int    `json:"healthGiven"`
}

func (h *Hero) Pos() Point { return Point{Row: h.Row, Col: h.Col} }

// MineOwnership names the hero holding the mine at (Row, Col). Mines absent
// from the list are unclaimed.
type MineOwnership struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Owner string `json:"owner"`
}

// Game is the indexed, read-only view the policy works from. It is built
// fresh from every GameState and discarded after the turn.
type Game struct {
	Turn          int
	Ended         bool
	Board         *Board
	Active        *Hero
	Heroes        []*Hero
	Teams         [2][]*Hero
	TeamResources [2]int
	HealingWells  []Point
	Mines         []Point
	Impassables   []Point
}

var ErrNoActiveHero = errors.New("active hero not found")

// NewGame validates gs and builds the board. Dead heroes stay in the team
// lists (their stats still matter) but do not occupy a tile.
func NewGame(gs GameState) (*Game, error) {
	g := &Game{
		Turn:          gs.Turn,
		Ended:         gs.Ended,
		TeamResources: gs.TeamResources,
	}

	board, err := parseLayout(gs.Layout)
	if err != nil {
		return nil, err
	}
	g.Board = board

	for i, t := range board.Tiles {
		switch t.Kind {
		case TileHealingWell:
			g.HealingWells = append(g.HealingWells, board.Tiles[i].Pos)
		case TileResourceMine:
			g.Mines = append(g.Mines, board.Tiles[i].Pos)
		case TileImpassable:
			g.Impassables = append(g.Impassables, board.Tiles[i].Pos)
		case TileUnoccupied, TileHero:
		}
	}

	byID := make(map[string]*Hero, len(gs.Heroes))
	g.Heroes = make([]*Hero, 0, len(gs.Heroes))
	for i := range gs.Heroes {
		h := gs.Heroes[i]
		if h.Team != 0 && h.Team != 1 {
			return nil, fmt.Errorf("hero %q: team %d out of range", h.ID, h.Team)
		}
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("hero %q: duplicate id", h.ID)
		}
		hp := &h
		byID[h.ID] = hp
		g.Heroes = append(g.Heroes, hp)
		g.Teams[h.Team] = append(g.Teams[h.Team], hp)

		if h.Dead {
			continue
		}
		t, ok := board.At(hp.Pos())
		if !ok {
			return nil, fmt.Errorf("hero %q: position (%d,%d) off board", h.ID, h.Row, h.Col)
		}
		if t.Kind != TileUnoccupied {
			return nil, fmt.Errorf("hero %q: position (%d,%d) is %s", h.ID, h.Row, h.Col, t.Kind)
		}
		idx := board.Index(hp.Pos())
		board.Tiles[idx].Kind = TileHero
		board.Tiles[idx].Sub = SubNone
		board.Tiles[idx].Hero = hp
	}

	for _, m := range gs.Mines {
		p := Point{Row: m.Row, Col: m.Col}
		t, ok := board.At(p)
		if !ok || t.Kind != TileResourceMine {
			return nil, fmt.Errorf("mine ownership at (%d,%d): no mine there", m.Row, m.Col)
		}
		if m.Owner == "" {
			continue
		}
		owner, ok := byID[m.Owner]
		if !ok {
			return nil, fmt.Errorf("mine at (%d,%d): unknown owner %q", m.Row, m.Col, m.Owner)
		}
		board.Tiles[board.Index(p)].Owner = owner
	}

	g.Active = byID[gs.ActiveHero]
	if g.Active == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoActiveHero, gs.ActiveHero)
	}
	return g, nil
}

func parseLayout(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty layout")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("empty layout row")
	}
	b := &Board{Rows: len(rows), Cols: cols, Tiles: make([]Tile, len(rows)*cols)}
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("layout row %d: width %d, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			t := Tile{Pos: Point{Row: r, Col: c}}
			switch line[c] {
			case LayoutEmpty:
				t.Kind = TileUnoccupied
			case LayoutRemains:
				t.Kind = TileUnoccupied
				t.Sub = SubRemains
			case LayoutWell:
				t.Kind = TileHealingWell
			case LayoutMine:
				t.Kind = TileResourceMine
			case LayoutImpassable:
				t.Kind = TileImpassable
			default:
				return nil, fmt.Errorf("layout (%d,%d): unknown tile %q", r, c, line[c])
			}
			b.Tiles[r*cols+c] = t
		}
	}
	return b, nil
}

// Hero returns the hero with the given id, or nil.
func (g *Game) Hero(id string) *Hero {
	for _, h := range g.Heroes {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// LivingEnemies returns the living heroes opposing team, in roster order.
func (g *Game) LivingEnemies(team int) []*Hero {
	var out []*Hero
	for _, h := range g.Teams[1-team] {
		if !h.Dead {
			out = append(out, h)
		}
	}
	return out
}

// ResourceImbalance is team's resource total minus the other team's.
func (g *Game) ResourceImbalance(team int) int {
	return g.TeamResources[team] - g.TeamResources[1-team]
}
