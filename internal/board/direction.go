package board

import "fmt"

// Direction is one of the four movement directions.
type Direction uint8

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Down moves towards the last row. A new board faces Down.
	Down
	// Left moves towards column 0.
	Left
	// Right moves towards the last column.
	Right
)

// deltas is the single source of movement vectors, indexed by Direction.
var deltas = [...]Position{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return int(d) < len(deltas)
}

// Delta returns the unit vector for the direction, or the zero vector for an
// invalid direction.
func (d Direction) Delta() Position {
	if !d.Valid() {
		return Position{}
	}
	return deltas[d]
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Position represents x,y grid coordinates (column, row).
type Position struct {
	X int
	Y int
}

// Add returns the sum of two positions.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
