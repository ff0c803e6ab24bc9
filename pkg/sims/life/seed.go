package life

import "torus-life/pkg/core"

// SeedFunc populates the cell buffer at construction and Reset time. A rule
// must assign every cell. Deterministic rules are free to ignore the seed
// value.
type SeedFunc func(seed int64, cells []Cell)

// DefaultSeed reproduces the demo board: a cell is Alive when its linear
// index is a multiple of 2 or of 7.
func DefaultSeed(_ int64, cells []Cell) {
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = Alive
		} else {
			cells[i] = Dead
		}
	}
}

// AllDead clears the board.
func AllDead(_ int64, cells []Cell) {
	for i := range cells {
		cells[i] = Dead
	}
}

// RandomSeed fills the board with an even Alive/Dead mix, deterministic for
// a given seed.
func RandomSeed(seed int64, cells []Cell) {
	core.FillBinary(core.NewRNG(seed).Source(), cells)
}

// IndexSeed lifts a per-index rule into a SeedFunc.
func IndexSeed(rule func(i int) Cell) SeedFunc {
	return func(_ int64, cells []Cell) {
		for i := range cells {
			cells[i] = rule(i)
		}
	}
}
