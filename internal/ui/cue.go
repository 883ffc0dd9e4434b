package ui

import (
	"log"
	"time"
)

// Beeper plays an audible alert.
type Beeper interface {
	Beep() error
}

// Cue is the one-shot win notification. A cue that is still active
// suppresses new ones.
type Cue struct {
	beeper   Beeper
	duration time.Duration
	now      func() time.Time
	until    time.Time
}

// NewCue creates a cue that stays active for d after each play.
// A nil now uses time.Now.
func NewCue(b Beeper, d time.Duration, now func() time.Time) *Cue {
	if now == nil {
		now = time.Now
	}
	return &Cue{beeper: b, duration: d, now: now}
}

// Active reports whether a previously played cue is still running.
func (c *Cue) Active() bool {
	return c.now().Before(c.until)
}

// Play rings the cue unless one is already active. It reports whether the
// cue was played.
func (c *Cue) Play() bool {
	if c.Active() {
		return false
	}
	if err := c.beeper.Beep(); err != nil {
		log.Printf("win cue: %v", err)
	}
	c.until = c.now().Add(c.duration)
	return true
}
