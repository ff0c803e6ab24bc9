package life

import (
	"errors"
	"fmt"
	"strings"

	"torus-life/pkg/core"
)

// Cell is a single grid position's state, Dead or Alive. It aliases uint8 so
// the whole board stays a dense byte buffer that renderers can consume
// without copying.
type Cell = uint8

// Cell states.
const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Glyphs used by String.
const (
	glyphDead  = '◻'
	glyphAlive = '◼'
)

var (
	// ErrDimensions reports a non-positive width or height at construction.
	ErrDimensions = errors.New("life: width and height must be positive")

	// ErrOutOfBounds reports coordinates outside the grid. At and Toggle
	// validate coordinates rather than trusting the caller.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
)

// Life implements Conway's Game of Life on a toroidal grid: the row above
// row 0 is the last row, and likewise for columns, so every cell has exactly
// 8 neighbors.
//
// A Life value has a single logical owner. Step, Toggle, Reset and the
// queries provide no internal locking and must be serialized by the caller.
type Life struct {
	w, h int
	cur  []Cell
	nxt  []Cell
	gen  uint64
	seed SeedFunc
}

// New returns a Life grid with the provided dimensions, populated by the
// given seed rule (nil means DefaultSeed) with seed value 0. Both dimensions
// must be positive.
func New(w, h int, rule SeedFunc) (*Life, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, w, h)
	}
	if rule == nil {
		rule = DefaultSeed
	}
	l := &Life{
		w:    w,
		h:    h,
		cur:  make([]Cell, w*h),
		nxt:  make([]Cell, w*h),
		seed: rule,
	}
	rule(0, l.cur)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Width returns the number of columns.
func (l *Life) Width() int { return l.w }

// Height returns the number of rows.
func (l *Life) Height() int { return l.h }

// Cells exposes the current generation as a row-major buffer
// (index = row*width + column). The slice is a live view: callers must not
// write through it, and it is superseded by the next Step or Reset.
func (l *Life) Cells() []Cell { return l.cur }

// Generation returns the number of Steps since construction or the last
// Reset.
func (l *Life) Generation() uint64 { return l.gen }

// Population returns the number of Alive cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// At returns the state of the cell at (row, col).
func (l *Life) At(row, col int) (Cell, error) {
	if row < 0 || row >= l.h || col < 0 || col >= l.w {
		return Dead, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, l.w, l.h)
	}
	return l.cur[row*l.w+col], nil
}

// Toggle flips the cell at (row, col) between Alive and Dead. No other cell
// is touched and no generation passes.
func (l *Life) Toggle(row, col int) error {
	if row < 0 || row >= l.h || col < 0 || col >= l.w {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, l.w, l.h)
	}
	idx := row*l.w + col
	if l.cur[idx] == Alive {
		l.cur[idx] = Dead
	} else {
		l.cur[idx] = Alive
	}
	return nil
}

// neighbors counts the Alive cells among the 8 wrapped neighbors of (x, y).
// On grids of width or height 1 or 2 the wrapped coordinates coincide and a
// neighbor is counted more than once; that is the torus topology, not a bug.
func (l *Life) neighbors(x, y int) int {
	w, h := l.w, l.h
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			count += int(l.cur[ny*w+nx])
		}
	}
	return count
}

// Step advances the grid by exactly one generation. Next states are computed
// from the current buffer into a scratch buffer and the two are swapped, so
// no cell ever reads an already-updated neighbor and readers only ever see a
// complete generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := l.neighbors(x, y)
			idx := y*w + x
			alive := l.cur[idx] == Alive
			l.nxt[idx] = Dead
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				l.nxt[idx] = Alive
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Reset repopulates the board with the construction seed rule using the
// provided seed value and clears the generation counter.
func (l *Life) Reset(seed int64) {
	l.seed(seed, l.cur)
	l.gen = 0
}

// String renders the board as text, one newline-terminated line per row,
// with a hollow glyph for Dead and a solid glyph for Alive.
func (l *Life) String() string {
	var b strings.Builder
	b.Grow(l.h * (l.w*3 + 1))
	for y := 0; y < l.h; y++ {
		row := l.cur[y*l.w : (y+1)*l.w]
		for _, c := range row {
			if c == Dead {
				b.WriteRune(glyphDead)
			} else {
				b.WriteRune(glyphAlive)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
