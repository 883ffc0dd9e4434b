// Package game provides the main game loop and state management.
package game

import "github.com/samdwyer/sokoban/internal/board"

// State represents the current game state.
type State int

const (
	// StatePlaying accepts moves.
	StatePlaying State = iota
	// StateWon is reached when the win predicate holds. Only restart and quit
	// have an effect.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// stateOf derives the game state from the board.
func stateOf(b *board.Board) State {
	if b.IsWon() {
		return StateWon
	}
	return StatePlaying
}
