package board

// Board holds the live game state and the snapshot it was loaded from.
type Board struct {
	width  int
	height int

	current  []Tile
	original []Tile // never mutated after load

	player         Position
	originalPlayer Position
	lastMove       Direction

	warnings []Warning
}

// MoveResult describes what a call to Move changed.
type MoveResult struct {
	Moved  bool // the player now stands on a different cell
	Pushed bool // a box was pushed one cell
	Won    bool // this move completed the level
}

// Stats summarizes box and storage counts.
type Stats struct {
	Boxes          int // boxes on the current grid
	Storage        int // storage cells on the original grid
	BoxesOnStorage int // current boxes sitting on original storage cells
}

// newBoard creates an all-Empty board of the given size.
func newBoard(width, height int) *Board {
	return &Board{
		width:    width,
		height:   height,
		current:  make([]Tile, width*height),
		lastMove: Down,
	}
}

// snapshot records the current grid and player as the restart state.
func (b *Board) snapshot() {
	b.original = make([]Tile, len(b.current))
	copy(b.original, b.current)
	b.originalPlayer = b.player
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// PlayerPosition returns the player's current position.
func (b *Board) PlayerPosition() Position {
	return b.player
}

// OriginalPlayerPosition returns where the player started.
func (b *Board) OriginalPlayerPosition() Position {
	return b.originalPlayer
}

// LastMove returns the most recently requested direction. It only selects
// the player's facing and has no effect on the rules.
func (b *Board) LastMove() Direction {
	return b.lastMove
}

// Warnings returns the diagnostics collected while parsing the level.
func (b *Board) Warnings() []Warning {
	return b.warnings
}

// InBounds returns true if the given position lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// TileAt returns the current tile at the given position.
// Positions outside the board read as Wall.
func (b *Board) TileAt(x, y int) Tile {
	if !b.InBounds(x, y) {
		return Wall
	}
	return b.current[b.index(x, y)]
}

// OriginalTileAt returns the tile the level started with at the given position.
func (b *Board) OriginalTileAt(x, y int) Tile {
	if !b.InBounds(x, y) {
		return Wall
	}
	return b.original[b.index(x, y)]
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// Move attempts to move the player one cell, pushing a box if one is in the
// way. Rejected moves leave the board unchanged apart from the facing.
// Once the level is won the board is frozen and Move does nothing.
func (b *Board) Move(d Direction) MoveResult {
	if b.IsWon() || !d.Valid() {
		return MoveResult{}
	}
	b.lastMove = d

	delta := d.Delta()
	target := b.player.Add(delta)
	if !b.InBounds(target.X, target.Y) {
		return MoveResult{}
	}

	ti := b.index(target.X, target.Y)
	switch b.current[ti] {
	case Empty, Storage:
		b.player = target
		return MoveResult{Moved: true}

	case Box:
		behind := target.Add(delta)
		if !b.InBounds(behind.X, behind.Y) {
			return MoveResult{}
		}
		bi := b.index(behind.X, behind.Y)
		if !b.current[bi].IsPassable() {
			return MoveResult{}
		}

		b.current[bi] = Box
		// The vacated cell reverts to storage or floor; a box cell from the
		// original level becomes floor for good.
		if b.original[ti] == Storage {
			b.current[ti] = Storage
		} else {
			b.current[ti] = Empty
		}
		b.player = target

		return MoveResult{Moved: true, Pushed: true, Won: b.IsWon()}
	}

	// Wall
	return MoveResult{}
}

// CanMove reports whether Move(d) would change the player's cell.
func (b *Board) CanMove(d Direction) bool {
	if b.IsWon() || !d.Valid() {
		return false
	}
	delta := d.Delta()
	target := b.player.Add(delta)
	switch b.TileAt(target.X, target.Y) {
	case Empty, Storage:
		return true
	case Box:
		behind := target.Add(delta)
		return b.InBounds(behind.X, behind.Y) && b.TileAt(behind.X, behind.Y).IsPassable()
	default:
		return false
	}
}

// Stats counts boxes and storage cells.
func (b *Board) Stats() Stats {
	var s Stats
	for i, t := range b.current {
		if b.original[i] == Storage {
			s.Storage++
			if t == Box {
				s.BoxesOnStorage++
			}
		}
		if t == Box {
			s.Boxes++
		}
	}
	return s
}

// IsWon returns true when every original storage cell holds a box, or when
// every box on the board sits on an original storage cell.
func (b *Board) IsWon() bool {
	s := b.Stats()
	return s.BoxesOnStorage == s.Storage || s.BoxesOnStorage == s.Boxes
}

// Restart restores the board, the player and the facing to their loaded state.
func (b *Board) Restart() {
	b.current = make([]Tile, len(b.original))
	copy(b.current, b.original)
	b.player = b.originalPlayer
	b.lastMove = Down
}
