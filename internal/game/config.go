package game

import "time"

// Config holds game configuration options.
type Config struct {
	// Level is the name shown in the status line.
	Level string
	// Theme is the tile theme ID. Empty selects the default theme.
	Theme string
	// WinCue is how long a played win cue suppresses the next one.
	WinCue time.Duration
}
