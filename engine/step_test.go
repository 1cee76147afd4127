package engine

import (
	"reflect"
	"testing"
)

// gridWith builds a single-strip grid covering a whole size x size board,
// with the given (row, col) cells alive. Rows and columns are 1-based.
func gridWith(size int, cells ...[2]int) *Grid {
	g := NewGrid(size, size)
	for _, c := range cells {
		g.Row(c[0])[c[1]] = Alive
	}
	return g
}

func advance(g *Grid, turns int) *Grid {
	next := NewGrid(g.Rows, g.Size)
	for i := 0; i < turns; i++ {
		Step(g, next)
		g, next = next, g
	}
	return g
}

func TestLoneCellDies(t *testing.T) {
	g := advance(gridWith(5, [2]int{3, 3}), 1)
	if g.Alive() != 0 {
		t.Fatalf("lone cell should die, %d alive", g.Alive())
	}
}

func TestBlockIsStill(t *testing.T) {
	block := gridWith(5, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	want := block.Interior()
	if got := advance(block, 3).Interior(); !reflect.DeepEqual(got, want) {
		t.Fatal("block should be a still life")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := gridWith(5, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4})
	vertical := gridWith(5, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3})

	start := horizontal.Interior()
	after1 := advance(gridWith(5, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4}), 1)
	if !reflect.DeepEqual(after1.Interior(), vertical.Interior()) {
		t.Fatal("blinker did not turn vertical after one generation")
	}
	after2 := advance(horizontal, 2)
	if !reflect.DeepEqual(after2.Interior(), start) {
		t.Fatal("blinker did not return to horizontal after two generations")
	}
}

// The board is clamped at its edges: a live run along one border must never
// feed the neighbour sums on the opposite border, unlike a toroidal board.
func TestBordersDoNotWrap(t *testing.T) {
	const size = 4

	// vertical run in column 1; on a torus (2, size) would gain 3 live
	// neighbours and be born
	g := advance(gridWith(size, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1}), 1)
	if g.Row(2)[size] != Dead {
		t.Error("live column 1 leaked across to column size")
	}

	// horizontal run in row 1; on a torus (size, 3) would be born
	g = advance(gridWith(size, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}), 1)
	if g.Row(size)[3] != Dead {
		t.Error("live row 1 leaked across to row size")
	}
}

func TestStepReadsAConsistentSnapshot(t *testing.T) {
	// A glider depends on the rule never reading half-updated cells; four
	// generations shift it one cell diagonally.
	glider := gridWith(8, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
	shifted := gridWith(8, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4})
	if got := advance(glider, 4); !reflect.DeepEqual(got.Interior(), shifted.Interior()) {
		t.Fatal("glider did not translate by (1,1) after four generations")
	}
}
