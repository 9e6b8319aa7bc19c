package model

import "fmt"

// Action is the single intent the policy returns for the active hero each turn.
// The four compass values double as move/attack/heal directions: stepping into an
// occupied tile is how the engine resolves combat and healing.
type Action byte

const (
	NoPreference Action = iota // let the engine pick (zero value)
	North                      // row - 1
	South                      // row + 1
	East                       // col + 1
	West                       // col - 1
	Stay
)

// Compass is the fixed priority order used whenever the policy has to pick
// "the first" of several directions.
var Compass = [4]Action{North, South, East, West}

var actionNames = [...]string{
	NoPreference: "",
	North:        "North",
	South:        "South",
	East:         "East",
	West:         "West",
	Stay:         "Stay",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		if a == NoPreference {
			return "NoPreference"
		}
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// IsMove reports whether a is one of the four compass directions.
func (a Action) IsMove() bool {
	return a >= North && a <= West
}

// Delta returns the row/col offset of a compass direction, (0,0) otherwise.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// MarshalText renders the engine's direction strings. NoPreference is empty.
func (a Action) MarshalText() ([]byte, error) {
	if int(a) >= len(actionNames) {
		return nil, fmt.Errorf("unknown action %d", a)
	}
	return []byte(actionNames[a]), nil
}

func (a *Action) UnmarshalText(b []byte) error {
	for i, name := range actionNames {
		if string(b) == name {
			*a = Action(i)
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", string(b))
}

// DirectionsToward lists the compass directions that reduce the row or column
// gap from "from" to "to". A diagonal target yields two directions.
func DirectionsToward(from, to Point) []Action {
	var dirs []Action
	if to.Row > from.Row {
		dirs = append(dirs, South)
	}
	if to.Row < from.Row {
		dirs = append(dirs, North)
	}
	if to.Col > from.Col {
		dirs = append(dirs, East)
	}
	if to.Col < from.Col {
		dirs = append(dirs, West)
	}
	return dirs
}
