package term

import (
	"fmt"
	"time"

	"torus-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const (
	glyphAlive = '█'
	glyphDead  = '·'

	// The status line occupies row 0; the board starts below it.
	boardTop = 1

	frameInterval = 16 * time.Millisecond
)

// Board is the grid surface the terminal UI drives: the core Sim contract
// plus the cell-toggle and bookkeeping queries.
type Board interface {
	core.Sim
	Toggle(row, col int) error
	Generation() uint64
	Population() int
}

// UI runs a Board on a tcell screen with a fixed-step generation clock.
type UI struct {
	screen tcell.Screen
	board  Board
	pacer  *core.FixedStep

	paused   bool
	tickOnce bool
	seed     int64
	buttons  tcell.ButtonMask
}

// New initializes the terminal screen for the provided board.
func New(board Board, tps int, seed int64) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &UI{
		screen: screen,
		board:  board,
		pacer:  core.NewFixedStep(tps),
		seed:   seed,
	}, nil
}

// Run drives the UI until the user quits. It owns the board for its whole
// duration: input events are handed over a channel to this loop before any
// mutation, so board access stays single-threaded.
func (u *UI) Run() {
	defer u.screen.Fini()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- u.screen.PollEvent()
		}
	}()

	u.draw()
	for {
		select {
		case ev := <-events:
			if !u.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if (!u.paused && u.pacer.ShouldStep()) || u.tickOnce {
				u.board.Step()
				u.tickOnce = false
			}
			u.draw()
		}
	}
}

func (u *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			u.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				u.paused = !u.paused
			case 'n':
				u.tickOnce = true
			case 'r':
				u.reset(u.seed)
			case 's':
				u.reset(time.Now().UnixNano())
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() &^ u.buttons
		u.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			x, y := ev.Position()
			size := u.board.Size()
			row, col := y-boardTop, x
			if row >= 0 && row < size.H && col >= 0 && col < size.W {
				// In-range by the check above; clicks outside the board
				// are ignored.
				_ = u.board.Toggle(row, col)
			}
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) reset(seed int64) {
	u.seed = seed
	u.board.Reset(seed)
	u.tickOnce = false
}

func (u *UI) draw() {
	u.screen.Clear()
	u.drawStatus()

	size := u.board.Size()
	cells := u.board.Cells()
	aliveStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	deadStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for x, c := range row {
			if c != 0 {
				u.screen.SetContent(x, y+boardTop, glyphAlive, nil, aliveStyle)
			} else {
				u.screen.SetContent(x, y+boardTop, glyphDead, nil, deadStyle)
			}
		}
	}
	u.screen.Show()
}

func (u *UI) drawStatus() {
	state := "running"
	if u.paused {
		state = "paused"
	}
	status := fmt.Sprintf("%s gen %d pop %d [%s]  space pause · n step · r reset · s reseed · click toggle · q quit",
		u.board.Name(), u.board.Generation(), u.board.Population(), state)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, ch := range []rune(status) {
		u.screen.SetContent(i, 0, ch, nil, style)
	}
}
