package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sokoban/internal/board"
)

// Command is a single player action.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdRestart
	CmdQuit
)

// String returns the command name used in span names.
func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdRestart:
		return "restart"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the board direction of a move command.
func (c Command) Direction() (board.Direction, bool) {
	switch c {
	case CmdUp:
		return board.Up, true
	case CmdDown:
		return board.Down, true
	case CmdLeft:
		return board.Left, true
	case CmdRight:
		return board.Right, true
	default:
		return 0, false
	}
}

// commandForKey maps a key press to a command. Arrow keys, WASD and HJKL
// move; r restarts; q, Esc and Ctrl-C quit.
func commandForKey(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k', 'K':
			return CmdUp
		case 's', 'S', 'j', 'J':
			return CmdDown
		case 'a', 'A', 'h', 'H':
			return CmdLeft
		case 'd', 'D', 'l', 'L':
			return CmdRight
		case 'r', 'R':
			return CmdRestart
		case 'q', 'Q':
			return CmdQuit
		}
	}
	return CmdNone
}
