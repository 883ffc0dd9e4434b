package board

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidHeader is returned when the first line of a level does not hold
// two positive integers no larger than MaxDimension.
var ErrInvalidHeader = errors.New("invalid level header")

// PlayerRune marks the player's starting cell in the level format.
const PlayerRune = '@'

// MaxDimension bounds the height and width a level header may declare.
const MaxDimension = 1 << 12

// Warning reports an unrecognized character found while parsing a level.
// The cell it occupied is left Empty.
type Warning struct {
	Row  int
	Col  int
	Char rune
}

// Error implements the error interface so warnings can be logged or wrapped.
func (w Warning) Error() string {
	return fmt.Sprintf("invalid tile character %q at row %d, col %d", w.Char, w.Row, w.Col)
}

// Parse reads a level: a "<height> <width>" header line followed by height
// rows of tile characters. Short or missing rows are padded with Empty and
// characters past the width are ignored. Unknown characters are collected
// as warnings rather than failing the parse.
func Parse(r io.Reader) (*Board, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read level header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty level", ErrInvalidHeader)
	}

	height, width, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	b := newBoard(width, height)
	for y := 0; y < height && scanner.Scan(); y++ {
		line := []rune(strings.TrimRight(scanner.Text(), "\r"))
		for x := 0; x < width && x < len(line); x++ {
			ch := line[x]
			if ch == PlayerRune {
				b.player = Position{X: x, Y: y}
				continue
			}
			tile, ok := tileFromRune(ch)
			if !ok {
				b.warnings = append(b.warnings, Warning{Row: y, Col: x, Char: ch})
				continue
			}
			b.current[b.index(x, y)] = tile
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level rows: %w", err)
	}

	b.snapshot()
	return b, nil
}

// ParseString parses a level held in a string.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

// MustParse parses a level, panicking on error.
// Use this for levels compiled into the program or its tests.
func MustParse(s string) *Board {
	b, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func parseHeader(line string) (height, width int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: want \"<height> <width>\", got %q", ErrInvalidHeader, line)
	}
	height, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height: %v", ErrInvalidHeader, err)
	}
	width, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width: %v", ErrInvalidHeader, err)
	}
	if height <= 0 || width <= 0 {
		return 0, 0, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidHeader, width, height)
	}
	if height > MaxDimension || width > MaxDimension {
		return 0, 0, fmt.Errorf("%w: dimensions exceed %d, got %dx%d", ErrInvalidHeader, MaxDimension, width, height)
	}
	return height, width, nil
}

// WriteTo writes the live board, one newline-terminated row per line, with
// the player drawn as '@'. No header line is written.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.current[b.index(x, y)].Rune()
			if b.player == (Position{X: x, Y: y}) {
				r = PlayerRune
			}
			size, err := bw.WriteRune(r)
			n += int64(size)
			if err != nil {
				return n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// String returns the serialized board without a header line.
func (b *Board) String() string {
	var buf bytes.Buffer
	b.WriteTo(&buf)
	return buf.String()
}

// MarshalText returns the board in the full level format, header included,
// so that Parse can load it back.
func (b *Board) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", b.height, b.width)
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
