// Package board implements the Sokoban board engine: the tile grid, player
// movement and box pushing, win detection, restart, and the level text format.
package board

// Tile represents the contents of a single grid cell.
type Tile uint8

const (
	// Empty is walkable floor. It is the zero value, so unset cells are floor.
	Empty Tile = iota
	// Wall blocks both the player and boxes.
	Wall
	// Box can be pushed one cell at a time.
	Box
	// Storage is a goal cell. Boxes pushed onto it count towards the win.
	Storage
)

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Box:
		return "box"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

// Rune returns the tile's level file character.
func (t Tile) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Box:
		return 'A'
	case Storage:
		return 'a'
	default:
		return '.'
	}
}

// IsPassable returns true if the player can step onto the tile.
func (t Tile) IsPassable() bool {
	return t == Empty || t == Storage
}

// tileFromRune maps a level file character to a tile.
// The player marker '@' is handled by the parser and is not a tile.
func tileFromRune(r rune) (Tile, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Empty, true
	case 'A':
		return Box, true
	case 'a':
		return Storage, true
	default:
		return Empty, false
	}
}
