// Command desktop is a windowed Sokoban client built on ebiten.
//
// Usage:
//
//	desktop <level_file>
//	desktop --builtin level1
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/sokoban/data"
	"github.com/samdwyer/sokoban/internal/board"
	"github.com/samdwyer/sokoban/internal/ui"
)

const (
	tileSize  = 48
	noseSize  = 10
	titleBase = "Sokoban"
)

var (
	colorEmpty        = color.RGBA{40, 40, 40, 255}
	colorWall         = color.RGBA{139, 90, 43, 255}
	colorBox          = color.RGBA{210, 160, 74, 255}
	colorStorage      = color.RGBA{74, 163, 210, 255}
	colorBoxOnStorage = color.RGBA{74, 210, 122, 255}
	colorPlayer       = color.RGBA{240, 240, 240, 255}
	colorNose         = color.RGBA{200, 40, 40, 255}
	colorGrid         = color.RGBA{20, 20, 20, 255}
)

// keyBindings maps movement keys to directions, checked in order.
var keyBindings = []struct {
	key ebiten.Key
	dir board.Direction
}{
	{ebiten.KeyArrowUp, board.Up},
	{ebiten.KeyArrowDown, board.Down},
	{ebiten.KeyArrowLeft, board.Left},
	{ebiten.KeyArrowRight, board.Right},
	{ebiten.KeyW, board.Up},
	{ebiten.KeyS, board.Down},
	{ebiten.KeyA, board.Left},
	{ebiten.KeyD, board.Right},
}

// Game implements ebiten.Game over a single board.
type Game struct {
	board   *board.Board
	started time.Time
	wonAt   time.Time
	title   string
}

// NewGame creates a game for the given board.
func NewGame(b *board.Board) *Game {
	return &Game{board: b, started: time.Now()}
}

// Update handles input once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Restart()
		g.started = time.Now()
		g.wonAt = time.Time{}
	}

	for _, kb := range keyBindings {
		if inpututil.IsKeyJustPressed(kb.key) {
			if res := g.board.Move(kb.dir); res.Won {
				g.wonAt = time.Now()
				log.Printf("Level complete in %s", ui.FormatElapsed(g.elapsed()))
			}
		}
	}

	if title := fmt.Sprintf("%s - %s", titleBase, ui.FormatElapsed(g.elapsed())); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

// Draw renders the board, the player and the win banner.
func (g *Game) Draw(screen *ebiten.Image) {
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			px, py := float32(x*tileSize), float32(y*tileSize)
			vector.FillRect(screen, px, py, tileSize, tileSize, tileColor(g.board, x, y), false)
			vector.StrokeRect(screen, px, py, tileSize, tileSize, 1, colorGrid, false)
		}
	}

	p := g.board.PlayerPosition()
	const inset = tileSize / 6
	px, py := float32(p.X*tileSize+inset), float32(p.Y*tileSize+inset)
	vector.FillRect(screen, px, py, tileSize-2*inset, tileSize-2*inset, colorPlayer, false)

	nx, ny := noseOffset(g.board.LastMove())
	cx := float32(p.X*tileSize) + tileSize/2 + nx - noseSize/2
	cy := float32(p.Y*tileSize) + tileSize/2 + ny - noseSize/2
	vector.FillRect(screen, cx, cy, noseSize, noseSize, colorNose, false)

	if g.board.IsWon() {
		msg := "Level complete! R: restart  Esc: quit"
		ebitenutil.DebugPrintAt(screen, msg, 8, g.board.Height()*tileSize/2-8)
	}
}

// Layout fixes the logical screen to the board size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.Width() * tileSize, g.board.Height() * tileSize
}

// elapsed returns the time since the level was (re)started, stopping at the win.
func (g *Game) elapsed() time.Duration {
	end := time.Now()
	if !g.wonAt.IsZero() {
		end = g.wonAt
	}
	return end.Sub(g.started)
}

// tileColor returns the fill color for the cell at x, y.
func tileColor(b *board.Board, x, y int) color.Color {
	switch b.TileAt(x, y) {
	case board.Wall:
		return colorWall
	case board.Box:
		if b.OriginalTileAt(x, y) == board.Storage {
			return colorBoxOnStorage
		}
		return colorBox
	case board.Storage:
		return colorStorage
	default:
		return colorEmpty
	}
}

// noseOffset points the facing marker from the tile center towards d.
func noseOffset(d board.Direction) (float32, float32) {
	delta := d.Delta()
	const reach = tileSize / 3
	return float32(delta.X * reach), float32(delta.Y * reach)
}

// loadBoard parses the embedded level named by builtin, or else the level
// file named by the first argument.
func loadBoard(args []string, builtin string) (*board.Board, error) {
	if builtin != "" {
		return data.Level(builtin)
	}
	if len(args) < 1 {
		return nil, errors.New("Usage: desktop <level_file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open level file %s: %w", args[0], err)
	}
	defer f.Close()

	b, err := board.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", args[0], err)
	}
	return b, nil
}

// prepare loads the board, logs its warnings and dumps it to stdout.
func prepare(args []string, builtin string, stdout io.Writer) (*board.Board, error) {
	b, err := loadBoard(args, builtin)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	for _, w := range b.Warnings() {
		log.Printf("Warning: %v", w)
	}
	if _, err := b.WriteTo(stdout); err != nil {
		return nil, fmt.Errorf("write board: %w", err)
	}
	return b, nil
}

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "desktop",
		Usage:     "play Sokoban in a window",
		ArgsUsage: "<level_file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "builtin",
				Usage: "play an embedded level (e.g. level1)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			b, err := prepare(cmd.Args().Slice(), cmd.String("builtin"), stdout)
			if err != nil {
				return err
			}

			ebiten.SetWindowSize(b.Width()*tileSize, b.Height()*tileSize)
			ebiten.SetWindowTitle(titleBase)

			if err := ebiten.RunGame(NewGame(b)); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatalf("desktop: %v", err)
	}
}
