// Package main is the entry point for the terminal Sokoban game.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/samdwyer/sokoban/internal/board"
	"github.com/samdwyer/sokoban/internal/config"
	"github.com/samdwyer/sokoban/internal/game"
	"github.com/samdwyer/sokoban/internal/telemetry"
)

const usage = "Usage: sokoban <level_file>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatalf("sokoban: %v", err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "sokoban",
		Usage:     "push every box onto a storage cell",
		ArgsUsage: "<level_file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "theme",
				Usage: "tile theme (classic, ascii); overrides " + config.EnvTheme,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs here while the game runs; overrides " + config.EnvLogFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if cmd.IsSet("theme") {
				cfg.Theme = cmd.String("theme")
			}
			if cmd.IsSet("log-file") {
				cfg.LogFile = cmd.String("log-file")
			}
			return play(ctx, cmd.Args().Slice(), os.Stdout, cfg, interactive)
		},
	}
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// play loads the level named by args, dumps it to stdout and, when running on
// a terminal, starts the game.
func play(ctx context.Context, args []string, stdout io.Writer, cfg config.Config, isTTY func() bool) error {
	if len(args) < 1 {
		return cli.Exit(usage, 1)
	}
	path := args[0]

	b, err := loadLevel(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	for _, w := range b.Warnings() {
		log.Printf("Warning: %v", w)
	}
	if _, err := b.WriteTo(stdout); err != nil {
		return fmt.Errorf("write board: %w", err)
	}

	if !isTTY() {
		return nil
	}

	restore, err := redirectLog(cfg.LogFile)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer restore()

	shutdown := setupTelemetry(ctx, cfg)
	defer shutdown()

	g, err := game.New(b, game.Config{
		Level:  levelName(path),
		Theme:  cfg.Theme,
		WinCue: cfg.WinCue,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to initialize game: %v", err), 1)
	}
	defer g.Close()

	return g.Run(ctx)
}

// loadLevel opens and parses the level file at path.
func loadLevel(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file %s: %w", path, err)
	}
	defer f.Close()

	b, err := board.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", path, err)
	}
	return b, nil
}

// levelName returns the file name without directory or extension.
func levelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// redirectLog sends log output to path, or discards it when path is empty,
// so that it does not corrupt the terminal UI. The returned function
// restores the previous output.
func redirectLog(path string) (restore func(), err error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}

// setupTelemetry starts trace export when enabled. The returned function
// flushes and stops it.
func setupTelemetry(ctx context.Context, cfg config.Config) func() {
	if !cfg.Telemetry {
		telemetry.Disable()
		return func() {}
	}

	for k, v := range telemetry.HoneycombEnv(cfg.HoneycombAPIKey, cfg.HoneycombDataset) {
		os.Setenv(k, v)
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		telemetry.Disable()
		return func() {}
	}
	log.Printf("Telemetry enabled, run %s", telemetry.RunID())

	return func() {
		// The run context may already be cancelled; flushing needs its own.
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
}
