//go:build ebiten

package app

import (
	"fmt"
	"time"

	"torus-life/internal/render"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Board is the grid surface the GUI drives: the core Sim contract plus the
// cell-toggle and bookkeeping queries.
type Board interface {
	core.Sim
	Toggle(row, col int) error
	Generation() uint64
	Population() int
}

// Game adapts a Board to the ebiten.Game interface.
type Game struct {
	board   Board
	painter *render.BoardPainter

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided board.
func New(board Board, cellSize int, seed int64) *Game {
	size := board.Size()
	return &Game{
		board:   board,
		painter: render.NewBoardPainter(size.W, size.H, cellSize),
		seed:    seed,
	}
}

// Reset reinitializes the board state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.board.Size()
		if row, col, ok := render.CellAtPoint(mx, my, g.painter.CellSize(), size.W, size.H); ok {
			// A click on a grid line reports !ok and is simply ignored.
			if err := g.board.Toggle(row, col); err != nil {
				return err
			}
		}
	}

	if (!g.paused) || g.tickOnce {
		g.board.Step()
		g.tickOnce = false
	}

	ebiten.SetWindowTitle(g.title())
	return nil
}

// Draw renders the current board state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), render.GridColor, render.DeadColor, render.AliveColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}

func (g *Game) title() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s — gen %d, pop %d (%s)", g.board.Name(), g.board.Generation(), g.board.Population(), state)
}
