package board

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing width", "7\n"},
		{"non-numeric height", "x 8\n########\n"},
		{"non-numeric width", "7 y\n########\n"},
		{"zero height", "0 8\n"},
		{"negative width", "3 -2\n"},
		{"height too large", "4097 4\n#@a.\n"},
		{"width too large", "2 4097\n"},
		{"size overflows", "4611686018427387904 4\n#@a.\n"},
		{"both huge", "100000000000 100000000000\n"},
		{"beyond int", "99999999999999999999 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("ParseString(%q) = %v, want error", tt.input, b)
			}
			if !errors.Is(err, ErrInvalidHeader) {
				t.Errorf("ParseString(%q) error = %v, want ErrInvalidHeader", tt.input, err)
			}
		})
	}
}

func TestParseMaxDimension(t *testing.T) {
	b, err := ParseString(fmt.Sprintf("1 %d\n@Aa\n", MaxDimension))
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if b.Width() != MaxDimension {
		t.Errorf("Width() = %d, want %d", b.Width(), MaxDimension)
	}
	if got := b.TileAt(MaxDimension-1, 0); got != Empty {
		t.Errorf("TileAt(%d,0) = %v, want empty", MaxDimension-1, got)
	}
}

func TestParseHeaderExtraTokens(t *testing.T) {
	b, err := ParseString("2 3 extra tokens\n@.A\n..a\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
}

func TestParseTiles(t *testing.T) {
	b := MustParse(scenarioLevel)

	tests := []struct {
		x, y int
		want Tile
	}{
		{0, 0, Wall},
		{3, 1, Storage},
		{6, 1, Storage},
		{3, 2, Box},
		{6, 3, Box},
		{3, 5, Box},
		{6, 5, Storage},
		{1, 5, Empty}, // player cell is floor
		{2, 4, Empty},
	}
	for _, tt := range tests {
		if got := b.TileAt(tt.x, tt.y); got != tt.want {
			t.Errorf("TileAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if got := b.OriginalTileAt(tt.x, tt.y); got != tt.want {
			t.Errorf("OriginalTileAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParseInvalidCharacters(t *testing.T) {
	b, err := ParseString("2 4\n@x.A\n.a?#\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	want := []Warning{
		{Row: 0, Col: 1, Char: 'x'},
		{Row: 1, Col: 2, Char: '?'},
	}
	got := b.Warnings()
	if len(got) != len(want) {
		t.Fatalf("Warnings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Warnings()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if tile := b.TileAt(1, 0); tile != Empty {
		t.Errorf("TileAt(1,0) = %v, want empty", tile)
	}
	if tile := b.TileAt(3, 1); tile != Wall {
		t.Errorf("TileAt(3,1) = %v, want wall (parsing continued)", tile)
	}
	if msg := got[0].Error(); !strings.Contains(msg, "'x'") || !strings.Contains(msg, "row 0, col 1") {
		t.Errorf("Warning.Error() = %q", msg)
	}
}

func TestParseShortAndMissingRows(t *testing.T) {
	b, err := ParseString("3 4\n#@\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if got := b.PlayerPosition(); got != (Position{X: 1, Y: 0}) {
		t.Errorf("PlayerPosition() = %v, want (1,0)", got)
	}
	want := "#@..\n....\n....\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseIgnoresCharactersPastWidth(t *testing.T) {
	b, err := ParseString("1 3\n@.AAAA\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if got := b.String(); got != "@.A\n" {
		t.Errorf("String() = %q, want %q", got, "@.A\n")
	}
	if len(b.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", b.Warnings())
	}
}

func TestParseCRLF(t *testing.T) {
	b, err := ParseString("2 3\r\n@.A\r\n..a\r\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if len(b.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", b.Warnings())
	}
	if got := b.String(); got != "@.A\n..a\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestParsePlayerMarker(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Position
	}{
		{"single marker", "2 3\n...\n.@.\n", Position{X: 1, Y: 1}},
		{"last marker wins", "2 3\n@..\n..@\n", Position{X: 2, Y: 1}},
		{"no marker", "2 3\n...\n...\n", Position{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParse(tt.input)
			if got := b.PlayerPosition(); got != tt.want {
				t.Errorf("PlayerPosition() = %v, want %v", got, tt.want)
			}
			if got := b.OriginalPlayerPosition(); got != tt.want {
				t.Errorf("OriginalPlayerPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	b := MustParse(scenarioLevel)

	want := strings.SplitN(scenarioLevel, "\n", 2)[1]
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalTextRoundTrip(t *testing.T) {
	b := MustParse(scenarioLevel)
	moves(b, Right, Right, Up)

	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if !strings.HasPrefix(string(text), "7 8\n") {
		t.Errorf("MarshalText() header = %q, want \"7 8\"", strings.SplitN(string(text), "\n", 2)[0])
	}

	again, err := ParseString(string(text))
	if err != nil {
		t.Fatalf("ParseString(MarshalText()) error = %v", err)
	}
	if got, want := again.String(), b.String(); got != want {
		t.Errorf("reloaded board =\n%s\nwant:\n%s", got, want)
	}
	if got := again.PlayerPosition(); got != b.PlayerPosition() {
		t.Errorf("reloaded PlayerPosition() = %v, want %v", got, b.PlayerPosition())
	}
}

func TestWriteToCount(t *testing.T) {
	b := MustParse("2 3\n@.A\n..a\n")
	var sb strings.Builder

	n, err := b.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(sb.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, sb.Len())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() with a bad header did not panic")
		}
	}()
	MustParse("not a level")
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d    Direction
		want Position
		name string
	}{
		{Up, Position{X: 0, Y: -1}, "up"},
		{Down, Position{X: 0, Y: 1}, "down"},
		{Left, Position{X: -1, Y: 0}, "left"},
		{Right, Position{X: 1, Y: 0}, "right"},
		{Direction(7), Position{}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.d.Delta(); got != tt.want {
			t.Errorf("%v.Delta() = %v, want %v", tt.d, got, tt.want)
		}
		if got := tt.d.String(); got != tt.name {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.name)
		}
		if got := tt.d.Valid(); got != (tt.name != "unknown") {
			t.Errorf("%v.Valid() = %v", tt.d, got)
		}
	}
}

func TestTileRunes(t *testing.T) {
	tests := []struct {
		tile     Tile
		r        rune
		name     string
		passable bool
	}{
		{Empty, '.', "empty", true},
		{Wall, '#', "wall", false},
		{Box, 'A', "box", false},
		{Storage, 'a', "storage", true},
	}

	for _, tt := range tests {
		if got := tt.tile.Rune(); got != tt.r {
			t.Errorf("%v.Rune() = %q, want %q", tt.tile, got, tt.r)
		}
		if got := tt.tile.String(); got != tt.name {
			t.Errorf("Tile(%d).String() = %q, want %q", tt.tile, got, tt.name)
		}
		if got := tt.tile.IsPassable(); got != tt.passable {
			t.Errorf("%v.IsPassable() = %v, want %v", tt.tile, got, tt.passable)
		}
		back, ok := tileFromRune(tt.r)
		if !ok || back != tt.tile {
			t.Errorf("tileFromRune(%q) = %v, %v", tt.r, back, ok)
		}
	}
}
