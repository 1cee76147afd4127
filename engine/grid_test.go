package engine

import (
	"reflect"
	"testing"
)

func TestGridGeometry(t *testing.T) {
	g := NewGrid(3, 5)
	if g.Rows != 3 || g.Size != 5 {
		t.Fatalf("got %dx%d, want 3x5", g.Rows, g.Size)
	}
	if len(g.Row(0)) != 7 {
		t.Errorf("padded row length %d, want 7", len(g.Row(0)))
	}
	if len(g.InteriorRow(1)) != 5 {
		t.Errorf("interior row length %d, want 5", len(g.InteriorRow(1)))
	}

	// rows must slice one buffer, not alias each other
	g.Row(1)[1] = Alive
	if g.Row(2)[1] != Dead {
		t.Error("write to row 1 visible in row 2")
	}
}

func TestClearBorder(t *testing.T) {
	g := NewGrid(3, 4)
	for r := 0; r <= g.Rows+1; r++ {
		row := g.Row(r)
		for c := range row {
			row[c] = Alive
		}
	}
	g.ClearBorder()

	for c := 0; c < g.Size+2; c++ {
		if g.Row(0)[c] != Dead || g.Row(g.Rows+1)[c] != Dead {
			t.Fatalf("ghost row cell %d not cleared", c)
		}
	}
	for r := 0; r <= g.Rows+1; r++ {
		if g.Row(r)[0] != Dead || g.Row(r)[g.Size+1] != Dead {
			t.Fatalf("border column in row %d not cleared", r)
		}
	}
	for r := 1; r <= g.Rows; r++ {
		for c := 1; c <= g.Size; c++ {
			if g.Row(r)[c] != Alive {
				t.Fatalf("interior cell (%d,%d) clobbered", r, c)
			}
		}
	}
}

// The random fill must build the same global board no matter how it is
// partitioned; that is what makes results comparable across worker counts.
func TestRandomiseIsPartitionIndependent(t *testing.T) {
	const size, seed = 10, 42

	whole := NewGrid(size, size)
	whole.Randomise(seed, 1)

	top := NewGrid(5, size)
	top.Randomise(seed, 1)
	bottom := NewGrid(5, size)
	bottom.Randomise(seed, 6)

	want := whole.Interior()
	got := append(top.Interior(), bottom.Interior()...)
	if !reflect.DeepEqual(got, want) {
		t.Fatal("split fill differs from whole-board fill")
	}

	if whole.Alive() == 0 || whole.Alive() == size*size {
		t.Fatalf("degenerate random board: %d alive", whole.Alive())
	}
}

func TestSetInteriorRoundTrip(t *testing.T) {
	rows := [][]uint8{
		{Dead, Alive, Dead},
		{Alive, Alive, Dead},
	}
	g := NewGrid(2, 3)
	g.SetInterior(rows)
	if !reflect.DeepEqual(g.Interior(), rows) {
		t.Fatal("interior does not round-trip")
	}
	if g.Alive() != 3 {
		t.Errorf("alive = %d, want 3", g.Alive())
	}
}
