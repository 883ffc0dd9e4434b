package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	if len(themes) != 2 {
		t.Errorf("Expected 2 themes, got %d", len(themes))
	}

	for _, theme := range themes {
		styles := map[string]TileStyle{
			"empty":        theme.Empty,
			"wall":         theme.Wall,
			"box":          theme.Box,
			"storage":      theme.Storage,
			"boxOnStorage": theme.BoxOnStorage,
		}
		for name, s := range styles {
			if s.Rune() == '?' {
				t.Errorf("Theme %q: %s has no glyph", theme.ID, name)
			}
			for _, hex := range []string{s.FG, s.BG} {
				if _, err := ParseHexColor(hex); err != nil {
					t.Errorf("Theme %q: %s color %q: %v", theme.ID, name, hex, err)
				}
			}
		}
		for _, glyph := range []string{theme.Player.Up, theme.Player.Down, theme.Player.Left, theme.Player.Right} {
			if (TileStyle{Glyph: glyph}).Rune() == '?' {
				t.Errorf("Theme %q: missing player glyph", theme.ID)
			}
		}
	}
}

func TestThemeRegistry(t *testing.T) {
	registry, err := LoadThemeRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 themes, got %d", registry.Count())
	}

	classic := registry.GetByID("classic")
	if classic == nil {
		t.Fatal("Classic theme not found by ID")
	}
	if classic.Name != "Classic" {
		t.Errorf("Expected name 'Classic', got %q", classic.Name)
	}

	ascii := registry.GetByID("ascii")
	if ascii == nil {
		t.Fatal("ASCII theme not found by ID")
	}
	if got := ascii.Wall.Rune(); got != '#' {
		t.Errorf("Expected ascii wall '#', got %c", got)
	}

	if registry.GetByID("neon") != nil {
		t.Error("GetByID returned a theme for an unknown ID")
	}
}

func TestThemeRegistrySelect(t *testing.T) {
	registry := MustLoadThemeRegistry()

	tests := []struct {
		id      string
		want    string
		wantErr bool
	}{
		{"", DefaultThemeID, false},
		{"classic", "classic", false},
		{"ascii", "ascii", false},
		{"neon", "", true},
	}

	for _, tt := range tests {
		theme, err := registry.Select(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("Select(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && theme.ID != tt.want {
			t.Errorf("Select(%q) = %q, want %q", tt.id, theme.ID, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"", true}, // terminal default
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorValue(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
	}{
		{"#102030", tcell.NewRGBColor(0x10, 0x20, 0x30)},
		{"ff8000", tcell.NewRGBColor(0xff, 0x80, 0x00)},
		{"", tcell.ColorDefault},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTileStyleMethods(t *testing.T) {
	s := TileStyle{Glyph: "■", FG: "#FF0000", BG: "bogus"}

	if s.Rune() != '■' {
		t.Errorf("Expected glyph '■', got %c", s.Rune())
	}
	if (TileStyle{}).Rune() != '?' {
		t.Error("Empty glyph should render as '?'")
	}

	fg, bg, _ := s.Style().Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if bg != tcell.ColorDefault {
		t.Errorf("Expected default background for invalid color, got %v", bg)
	}
}
