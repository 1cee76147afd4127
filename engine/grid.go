package engine

import "math/rand"

// Cell states. 255 for alive is the convention the SDL view and the wire
// payloads share; board files use 0/1 and are translated at the IO layer.
const (
	Dead  uint8 = 0
	Alive uint8 = 255
)

// Grid is the ghost-padded local board of a single worker: the rank's own
// rows plus one ghost row above and below, and a permanently dead column on
// either side. Cells live in one contiguous buffer; Row slices into it, so
// there is exactly one allocation per grid.
type Grid struct {
	Rows int // interior rows (the partition height)
	Size int // interior columns (the global board size)
	buf  []uint8
}

// NewGrid allocates a (rows+2) x (size+2) local grid with a cleared border.
func NewGrid(rows, size int) *Grid {
	g := &Grid{
		Rows: rows,
		Size: size,
		buf:  make([]uint8, (rows+2)*(size+2)),
	}
	return g
}

// Row - the full padded row i, 0 and Rows+1 being the ghost rows.
func (g *Grid) Row(i int) []uint8 {
	w := g.Size + 2
	return g.buf[i*w : (i+1)*w]
}

// InteriorRow - the size usable cells of padded row i (columns 1..Size).
func (g *Grid) InteriorRow(i int) []uint8 {
	return g.Row(i)[1 : g.Size+1]
}

// ClearBorder sets both ghost rows and both border columns to Dead. Safe
// default before the first halo exchange; the border columns stay dead for
// the whole run, which is what clamps the board at its left and right edges.
func (g *Grid) ClearBorder() {
	top, bottom := g.Row(0), g.Row(g.Rows+1)
	for c := range top {
		top[c] = Dead
		bottom[c] = Dead
	}
	for r := 0; r <= g.Rows+1; r++ {
		row := g.Row(r)
		row[0] = Dead
		row[g.Size+1] = Dead
	}
}

// Randomise fills the interior from a PRNG seeded the same way on every
// worker. The generator walks the whole global board and each worker keeps
// only the draws that land inside its own strip, so the global board it
// produces does not depend on how many workers share it.
func (g *Grid) Randomise(seed int64, globalStart int) {
	r := rand.New(rand.NewSource(seed))
	for row := 1; row <= g.Size; row++ {
		local := row - globalStart + 1
		for col := 1; col <= g.Size; col++ {
			v := Dead
			if r.Intn(2) == 1 {
				v = Alive
			}
			if local >= 1 && local <= g.Rows {
				g.Row(local)[col] = v
			}
		}
	}
	g.ClearBorder()
}

// SetInterior copies rows (each Size cells, ascending) into the interior.
func (g *Grid) SetInterior(rows [][]uint8) {
	for i, row := range rows {
		copy(g.InteriorRow(i+1), row)
	}
	g.ClearBorder()
}

// Interior copies out the owned rows, without padding.
func (g *Grid) Interior() [][]uint8 {
	rows := make([][]uint8, g.Rows)
	for i := range rows {
		rows[i] = make([]uint8, g.Size)
		copy(rows[i], g.InteriorRow(i+1))
	}
	return rows
}

// Alive counts live interior cells.
func (g *Grid) Alive() int {
	count := 0
	for r := 1; r <= g.Rows; r++ {
		for _, v := range g.InteriorRow(r) {
			if v != Dead {
				count++
			}
		}
	}
	return count
}
