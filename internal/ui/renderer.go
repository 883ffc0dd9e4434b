package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/sokoban/internal/board"
	"github.com/samdwyer/sokoban/internal/gamedata"
)

// BannerText is shown across the board once the level is solved.
const BannerText = " Level complete! r: restart  q: quit "

// BoardView is the read-only board state the renderer draws.
type BoardView interface {
	Width() int
	Height() int
	TileAt(x, y int) board.Tile
	OriginalTileAt(x, y int) board.Tile
	PlayerPosition() board.Position
	LastMove() board.Direction
	IsWon() bool
	Stats() board.Stats
}

// Status is the information shown below the board.
type Status struct {
	Level   string
	Elapsed time.Duration
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas Canvas
	theme  *gamedata.ThemeDef
}

// NewRenderer creates a new renderer for the given canvas and theme.
func NewRenderer(canvas Canvas, theme *gamedata.ThemeDef) *Renderer {
	return &Renderer{canvas: canvas, theme: theme}
}

// Render draws the board, the player, the win banner and the status line.
func (r *Renderer) Render(view BoardView, status Status) {
	r.canvas.Clear()

	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			style := r.tileStyle(view, x, y)
			r.canvas.SetContent(x, y, style.Rune(), style.Style())
		}
	}

	p := view.PlayerPosition()
	r.canvas.SetContent(p.X, p.Y, r.playerRune(view.LastMove()), r.theme.Player.Style())

	if view.IsWon() {
		r.renderBanner(view)
	}
	r.RenderMessage(StatusLine(view, status), view.Height()+1)

	r.canvas.Show()
}

// tileStyle returns the theme entry for the tile at the given position.
func (r *Renderer) tileStyle(view BoardView, x, y int) gamedata.TileStyle {
	switch view.TileAt(x, y) {
	case board.Wall:
		return r.theme.Wall
	case board.Box:
		if view.OriginalTileAt(x, y) == board.Storage {
			return r.theme.BoxOnStorage
		}
		return r.theme.Box
	case board.Storage:
		return r.theme.Storage
	default:
		return r.theme.Empty
	}
}

// playerRune returns the player glyph for the given facing.
func (r *Renderer) playerRune(d board.Direction) rune {
	p := r.theme.Player
	glyph := p.Down
	switch d {
	case board.Up:
		glyph = p.Up
	case board.Left:
		glyph = p.Left
	case board.Right:
		glyph = p.Right
	}
	return gamedata.TileStyle{Glyph: glyph}.Rune()
}

// renderBanner centers the win banner over the middle row of the board.
func (r *Renderer) renderBanner(view BoardView) {
	width := uniseg.StringWidth(BannerText)
	x := (view.Width() - width) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, view.Height()/2, BannerText, r.theme.Banner.Style())
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, r.theme.Status.Style())
}

// drawText writes s starting at column x, advancing by each grapheme's
// display width.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		r.canvas.SetContent(x, y, runes[0], style)
		x += g.Width()
	}
}

// StatusLine formats the line shown below the board.
func StatusLine(view BoardView, status Status) string {
	stats := view.Stats()
	line := fmt.Sprintf("%s  %s  boxes %d/%d",
		FormatElapsed(status.Elapsed), status.Level, stats.BoxesOnStorage, stats.Storage)
	if view.IsWon() {
		return line + "  solved"
	}
	return line + "  arrows/wasd/hjkl: move  r: restart  q: quit"
}

// FormatElapsed formats a duration as MM:SS.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
