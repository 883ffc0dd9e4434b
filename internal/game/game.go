package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/sokoban/internal/board"
	"github.com/samdwyer/sokoban/internal/gamedata"
	"github.com/samdwyer/sokoban/internal/telemetry"
	"github.com/samdwyer/sokoban/internal/ui"
)

// tickInterval is how often the status line clock is redrawn.
const tickInterval = time.Second

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	board    *board.Board
	level    string
	cue      *ui.Cue
	tracer   trace.Tracer

	clock   func() time.Time
	started time.Time
	wonAt   time.Time
	running bool
}

// New creates a new game instance for the given board.
func New(b *board.Board, cfg Config) (*Game, error) {
	themes, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return nil, err
	}
	theme, err := themes.Select(cfg.Theme)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		board:    b,
		level:    cfg.Level,
		cue:      ui.NewCue(screen, cfg.WinCue, time.Now),
		tracer:   telemetry.Tracer("game"),
		clock:    time.Now,
		started:  time.Now(),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	stats := g.board.Stats()
	initSpan.SetAttributes(
		attribute.String("level.name", g.level),
		attribute.Int("level.width", g.board.Width()),
		attribute.Int("level.height", g.board.Height()),
		attribute.Int("level.boxes", stats.Boxes),
		attribute.Int("level.storage", stats.Storage),
		attribute.Int("level.warnings", len(g.board.Warnings())),
	)
	initSpan.End()

	done := make(chan struct{})
	defer close(done)
	go g.tick(ctx, done)

	for g.running && ctx.Err() == nil {
		g.renderer.Render(g.board, g.status())
		g.handleInput(ctx)
	}
	return nil
}

// tick wakes the event loop periodically so the clock keeps moving, and
// once more when ctx is cancelled.
func (g *Game) tick(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			g.screen.Interrupt()
			return
		case <-ticker.C:
			g.screen.Interrupt()
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		g.running = false
	case *tcell.EventKey:
		if cmd := commandForKey(ev.Key(), ev.Rune()); cmd != CmdNone {
			g.Apply(ctx, cmd)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Apply executes one command against the board.
func (g *Game) Apply(ctx context.Context, cmd Command) {
	_, span := g.tracer.Start(ctx, "game."+cmd.String())
	defer span.End()

	switch cmd {
	case CmdQuit:
		g.running = false

	case CmdRestart:
		g.board.Restart()
		g.started = g.clock()
		g.wonAt = time.Time{}

	default:
		d, ok := cmd.Direction()
		if !ok {
			return
		}
		res := g.board.Move(d)
		p := g.board.PlayerPosition()
		span.SetAttributes(
			attribute.Bool("move.moved", res.Moved),
			attribute.Bool("move.pushed", res.Pushed),
			attribute.Int("player.x", p.X),
			attribute.Int("player.y", p.Y),
		)
		if res.Won {
			g.wonAt = g.clock()
			played := g.cue.Play()
			span.AddEvent("level.won", trace.WithAttributes(
				attribute.Bool("cue.played", played),
				attribute.Int64("elapsed_ms", g.elapsed().Milliseconds()),
			))
		}
	}

	span.SetAttributes(attribute.String("game.state", stateOf(g.board).String()))
}

// elapsed returns the time since the level was (re)started, stopping at the win.
func (g *Game) elapsed() time.Duration {
	end := g.clock()
	if !g.wonAt.IsZero() {
		end = g.wonAt
	}
	return end.Sub(g.started)
}

// status builds the status line information.
func (g *Game) status() ui.Status {
	return ui.Status{Level: g.level, Elapsed: g.elapsed()}
}

// Close restores the terminal.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
