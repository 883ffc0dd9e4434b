// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogFile          = "SOKOBAN_LOG_FILE"
	EnvTheme            = "SOKOBAN_THEME"
	EnvWinCue           = "SOKOBAN_WIN_CUE"
	EnvTelemetry        = "SOKOBAN_TELEMETRY"
	EnvHoneycombAPIKey  = "HONEYCOMB_SOKOBAN_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_SOKOBAN_DATASET"
)

// DefaultWinCue is how long a win cue stays active.
const DefaultWinCue = time.Second

// Config holds the runtime settings.
type Config struct {
	// LogFile receives log output while the terminal UI owns the screen.
	// Empty discards it.
	LogFile string
	// Theme is the tile theme ID. Empty selects the default theme.
	Theme string
	// WinCue is how long a played win cue blocks the next one.
	WinCue time.Duration
	// Telemetry enables OTLP trace export.
	Telemetry bool

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads the given env files (".env" when none are named) into the
// process environment and then builds a Config from it. Missing files are
// not an error. Variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup to read variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		WinCue: DefaultWinCue,
	}

	cfg.LogFile, _ = lookup(EnvLogFile)
	cfg.Theme, _ = lookup(EnvTheme)
	cfg.HoneycombAPIKey, _ = lookup(EnvHoneycombAPIKey)
	cfg.HoneycombDataset, _ = lookup(EnvHoneycombDataset)

	if v, ok := lookup(EnvWinCue); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWinCue, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("%s: duration must not be negative, got %s", EnvWinCue, v)
		}
		cfg.WinCue = d
	}

	if v, ok := lookup(EnvTelemetry); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTelemetry, err)
		}
		cfg.Telemetry = enabled
	}

	return cfg, nil
}
