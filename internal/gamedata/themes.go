package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TileStyle defines how one kind of cell is drawn.
type TileStyle struct {
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "#")
	FG    string `json:"fg"`    // Hex foreground color, empty for the terminal default
	BG    string `json:"bg"`    // Hex background color, empty for the terminal default
}

// Rune returns the glyph as a rune for rendering.
func (s TileStyle) Rune() rune {
	r, size := utf8.DecodeRuneInString(s.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// Style returns the tcell style for the colors. Invalid colors fall back to
// the terminal default.
func (s TileStyle) Style() tcell.Style {
	return colorStyle(s.FG, s.BG)
}

// PlayerStyle defines the player glyph for each facing.
type PlayerStyle struct {
	Up    string `json:"up"`
	Down  string `json:"down"`
	Left  string `json:"left"`
	Right string `json:"right"`
	FG    string `json:"fg"`
	BG    string `json:"bg"`
}

// Style returns the tcell style for the player.
func (p PlayerStyle) Style() tcell.Style {
	return colorStyle(p.FG, p.BG)
}

// ThemeDef defines a complete tile theme loaded from JSON.
type ThemeDef struct {
	ID           string      `json:"id"`   // Unique identifier (e.g., "classic")
	Name         string      `json:"name"` // Display name (e.g., "Classic")
	Empty        TileStyle   `json:"empty"`
	Wall         TileStyle   `json:"wall"`
	Box          TileStyle   `json:"box"`
	Storage      TileStyle   `json:"storage"`
	BoxOnStorage TileStyle   `json:"boxOnStorage"`
	Player       PlayerStyle `json:"player"`
	Banner       TileStyle   `json:"banner"` // Win banner colors
	Status       TileStyle   `json:"status"` // Status line colors
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

func colorStyle(fg, bg string) tcell.Style {
	style := tcell.StyleDefault
	if c, err := ParseHexColor(fg); err == nil {
		style = style.Foreground(c)
	}
	if c, err := ParseHexColor(bg); err == nil {
		style = style.Background(c)
	}
	return style
}
