package life

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, w, h int, rule SeedFunc) *Life {
	t.Helper()
	l, err := New(w, h, rule)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return l
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -2}} {
		l, err := New(dims[0], dims[1], AllDead)
		if !errors.Is(err, ErrDimensions) {
			t.Fatalf("New(%d, %d) error = %v, want ErrDimensions", dims[0], dims[1], err)
		}
		if l != nil {
			t.Fatalf("New(%d, %d) returned a grid alongside the error", dims[0], dims[1])
		}
	}
}

func TestBufferLengthInvariant(t *testing.T) {
	l := mustNew(t, 7, 5, AllDead)
	if got := len(l.Cells()); got != 35 {
		t.Fatalf("len(Cells()) = %d, want 35", got)
	}
	for i := 0; i < 4; i++ {
		l.Step()
		if got := len(l.Cells()); got != 35 {
			t.Fatalf("after step %d: len(Cells()) = %d, want 35", i+1, got)
		}
	}
}

func TestDefaultSeedPattern(t *testing.T) {
	l := mustNew(t, 8, 8, nil)
	for i, c := range l.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if c != want {
			t.Fatalf("cell %d = %d, want %d", i, c, want)
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	l := mustNew(t, 6, 6, AllDead)
	l.Step()
	for i, c := range l.Cells() {
		if c != Dead {
			t.Fatalf("cell %d spontaneously alive after step", i)
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	l := mustNew(t, 5, 5, AllDead)
	if err := l.Toggle(2, 2); err != nil {
		t.Fatalf("Toggle(2, 2): %v", err)
	}
	l.Step()
	for i, c := range l.Cells() {
		if c != Dead {
			t.Fatalf("cell %d alive after underpopulation step", i)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	l := mustNew(t, 6, 6, AllDead)
	w := l.Width()
	set := func(x, y int) { l.Cells()[y*w+x] = Alive }
	set(2, 2)
	set(3, 2)
	set(2, 3)
	set(3, 3)

	block := map[[2]int]bool{
		{2, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{3, 3}: true,
	}
	l.Step()
	cells := l.Cells()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			alive := cells[y*w+x] == Alive
			if alive != block[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, block[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := mustNew(t, 5, 5, AllDead)
	w := l.Width()
	set := func(x, y int) { l.Cells()[y*w+x] = Alive }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	l.Step()
	cells := l.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	l.Step()
	cells = l.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestWraparoundCornerAdjacency(t *testing.T) {
	l := mustNew(t, 4, 4, AllDead)
	if err := l.Toggle(0, 0); err != nil {
		t.Fatalf("Toggle(0, 0): %v", err)
	}
	if n := l.neighbors(0, 0); n != 0 {
		t.Fatalf("neighbors(0, 0) = %d on otherwise empty board, want 0", n)
	}
	if err := l.Toggle(3, 3); err != nil {
		t.Fatalf("Toggle(3, 3): %v", err)
	}
	if n := l.neighbors(0, 0); n != 1 {
		t.Fatalf("neighbors(0, 0) = %d with opposite corner alive, want 1", n)
	}
}

func TestDegenerateWrapDoubleCounts(t *testing.T) {
	// On a 2-wide torus the left and right neighbor columns coincide, so a
	// single alive column contributes twice.
	l := mustNew(t, 2, 3, AllDead)
	if err := l.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle(1, 1): %v", err)
	}
	if n := l.neighbors(0, 1); n != 2 {
		t.Fatalf("neighbors(0, 1) = %d, want the wrapped neighbor counted twice", n)
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	l := mustNew(t, 10, 10, RandomSeed)
	before := make([]Cell, len(l.Cells()))
	copy(before, l.Cells())

	if err := l.Toggle(2, 3); err != nil {
		t.Fatalf("Toggle(2, 3): %v", err)
	}
	if l.Cells()[2*10+3] == before[2*10+3] {
		t.Fatal("first toggle did not flip the cell")
	}
	if err := l.Toggle(2, 3); err != nil {
		t.Fatalf("Toggle(2, 3): %v", err)
	}
	for i, c := range l.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed after double toggle", i)
		}
	}
}

func TestCoordinateBounds(t *testing.T) {
	l := mustNew(t, 4, 3, AllDead)
	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {5, 5}}
	for _, c := range cases {
		if _, err := l.At(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := l.Toggle(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if _, err := l.At(2, 3); err != nil {
		t.Fatalf("At(2, 3): %v", err)
	}
}

func TestStringShapeAndGlyphs(t *testing.T) {
	l := mustNew(t, 4, 3, AllDead)
	if err := l.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle(1, 2): %v", err)
	}

	s := l.String()
	if !strings.HasSuffix(s, "\n") {
		t.Fatal("render is not newline-terminated")
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("render has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 4 {
			t.Fatalf("line %d has %d glyphs, want 4", i, n)
		}
	}
	if lines[1] != "◻◻◼◻" {
		t.Fatalf("line 1 = %q, want %q", lines[1], "◻◻◼◻")
	}
	if lines[0] != "◻◻◻◻" {
		t.Fatalf("line 0 = %q, want all dead", lines[0])
	}
}

func TestGenerationCounter(t *testing.T) {
	l := mustNew(t, 5, 5, AllDead)
	if l.Generation() != 0 {
		t.Fatalf("fresh grid generation = %d, want 0", l.Generation())
	}
	for i := 1; i <= 3; i++ {
		l.Step()
		if got := l.Generation(); got != uint64(i) {
			t.Fatalf("generation = %d after %d steps", got, i)
		}
	}
	l.Reset(0)
	if l.Generation() != 0 {
		t.Fatalf("generation = %d after reset, want 0", l.Generation())
	}
}

func TestPopulation(t *testing.T) {
	l := mustNew(t, 6, 6, AllDead)
	if l.Population() != 0 {
		t.Fatalf("empty board population = %d", l.Population())
	}
	if err := l.Toggle(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Toggle(5, 5); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 2 {
		t.Fatalf("population = %d, want 2", l.Population())
	}
}

func TestResetReappliesSeedRule(t *testing.T) {
	l := mustNew(t, 10, 10, RandomSeed)
	initial := make([]Cell, len(l.Cells()))
	copy(initial, l.Cells())

	for i := 0; i < 5; i++ {
		l.Step()
	}
	l.Reset(0)
	for i, c := range l.Cells() {
		if c != initial[i] {
			t.Fatalf("cell %d differs after Reset with the construction seed", i)
		}
	}

	l.Reset(1)
	same := true
	for i, c := range l.Cells() {
		if c != initial[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("Reset with a different seed reproduced the same board")
	}
}
