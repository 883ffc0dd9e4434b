// Package levelcheck inspects level files for problems that make a level
// unplayable or end it in a surprising way.
package levelcheck

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samdwyer/sokoban/internal/board"
)

// Kind classifies a finding.
type Kind string

const (
	KindMissingPlayer Kind = "missing-player"
	KindCountMismatch Kind = "count-mismatch"
	KindWonAtLoad     Kind = "won-at-load"
	KindCornerBox     Kind = "corner-box"
)

// Finding is one problem found in a level.
type Finding struct {
	Kind    Kind
	Pos     board.Position
	Message string
}

// Report captures the outcome of checking a single level.
type Report struct {
	Name     string
	Width    int
	Height   int
	Player   board.Position
	Stats    board.Stats
	Warnings []board.Warning
	Findings []Finding
	// Err is set when the level could not be read or parsed. The other
	// fields are then zero.
	Err error
}

// OK reports whether the level parsed and has no findings or warnings.
func (r Report) OK() bool {
	return r.Err == nil && len(r.Findings) == 0 && len(r.Warnings) == 0
}

// Has reports whether the report contains a finding of the given kind.
func (r Report) Has(kind Kind) bool {
	for _, f := range r.Findings {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// AnalyzeFile reads and checks the level at path. The report is named after
// the file.
func AnalyzeFile(path string) Report {
	f, err := os.Open(path)
	if err != nil {
		return Report{Name: filepath.Base(path), Err: fmt.Errorf("failed to read file: %w", err)}
	}
	defer f.Close()
	return Analyze(filepath.Base(path), f)
}

// Analyze checks the level read from r.
func Analyze(name string, r io.Reader) Report {
	report := Report{Name: name}

	data, err := io.ReadAll(r)
	if err != nil {
		report.Err = fmt.Errorf("failed to read level: %w", err)
		return report
	}

	b, err := board.Parse(bytes.NewReader(data))
	if err != nil {
		report.Err = err
		return report
	}

	report.Width = b.Width()
	report.Height = b.Height()
	report.Player = b.PlayerPosition()
	report.Stats = b.Stats()
	report.Warnings = b.Warnings()

	if !hasPlayerMarker(data, b.Height(), b.Width()) {
		report.add(KindMissingPlayer, board.Position{},
			"no '@' in the level, the player starts at (0,0)")
	}

	s := report.Stats
	if s.Boxes != s.Storage {
		report.add(KindCountMismatch, board.Position{},
			fmt.Sprintf("%d boxes but %d storage cells, the level ends when either side is used up", s.Boxes, s.Storage))
	}

	if b.IsWon() {
		report.add(KindWonAtLoad, board.Position{}, "the level is already won when loaded")
	}

	for _, p := range cornerBoxes(b) {
		report.add(KindCornerBox, p, fmt.Sprintf("box at %v is stuck in a corner off storage", p))
	}

	return report
}

func (r *Report) add(kind Kind, pos board.Position, msg string) {
	r.Findings = append(r.Findings, Finding{Kind: kind, Pos: pos, Message: msg})
}

// hasPlayerMarker reports whether an '@' appears inside the grid area the
// parser reads.
func hasPlayerMarker(data []byte, height, width int) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Scan() // header
	for y := 0; y < height && scanner.Scan(); y++ {
		line := []rune(strings.TrimRight(scanner.Text(), "\r"))
		if len(line) > width {
			line = line[:width]
		}
		for _, r := range line {
			if r == board.PlayerRune {
				return true
			}
		}
	}
	return false
}

// cornerBoxes returns boxes off storage that are blocked on one vertical
// side and one horizontal side. Such a box can never be pushed again.
func cornerBoxes(b *board.Board) []board.Position {
	blocked := func(x, y int) bool {
		return b.TileAt(x, y) == board.Wall
	}

	var boxes []board.Position
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.TileAt(x, y) != board.Box || b.OriginalTileAt(x, y) == board.Storage {
				continue
			}
			vertical := blocked(x, y-1) || blocked(x, y+1)
			horizontal := blocked(x-1, y) || blocked(x+1, y)
			if vertical && horizontal {
				boxes = append(boxes, board.Position{X: x, Y: y})
			}
		}
	}
	return boxes
}

// Print writes a human-readable summary of the report.
func (r Report) Print(w io.Writer) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s: error: %v\n", r.Name, r.Err)
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %dx%d, player %v, boxes %d, storage %d, on storage %d\n",
		r.Name, r.Width, r.Height, r.Player, r.Stats.Boxes, r.Stats.Storage, r.Stats.BoxesOnStorage)
	for _, warn := range r.Warnings {
		fmt.Fprintf(&sb, "  warning: %v\n", warn)
	}
	for _, f := range r.Findings {
		fmt.Fprintf(&sb, "  %s: %s\n", f.Kind, f.Message)
	}
	if r.OK() {
		sb.WriteString("  ok\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
