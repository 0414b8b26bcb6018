package game

import "strings"

// Direction is one of the four lanes, ordered by lane index.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// NKeys is the number of lanes on the playfield.
const NKeys = 4

var Directions = [NKeys]Direction{Up, Down, Left, Right}

var directionNames = [NKeys]string{"up", "down", "left", "right"}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Lane is the column index of the direction, 0-3.
func (d Direction) Lane() int {
	return int(d)
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return -1, false
}
