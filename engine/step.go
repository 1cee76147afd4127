package engine

// Step advances cur by one generation into next. Both grids must share the
// same dimensions and next must not alias cur: the rule reads a consistent
// snapshot of cur and only ever writes next, the caller swaps afterwards.
//
// The padding does all the boundary work. Ghost rows hold the neighbours'
// boundary rows (or stay dead at the top and bottom of the global board) and
// the border columns are permanently dead, so the neighbour sum needs no
// wrap arithmetic. The board is clamped at its edges, not toroidal.
func Step(cur, next *Grid) {
	for r := 1; r <= cur.Rows; r++ {
		above, here, below := cur.Row(r-1), cur.Row(r), cur.Row(r+1)
		out := next.Row(r)
		for c := 1; c <= cur.Size; c++ {
			nbrs := live(above[c-1]) + live(above[c]) + live(above[c+1]) +
				live(here[c-1]) + live(here[c+1]) +
				live(below[c-1]) + live(below[c]) + live(below[c+1])

			if here[c] != Dead {
				if nbrs == 2 || nbrs == 3 {
					out[c] = Alive
				} else {
					out[c] = Dead
				}
			} else {
				if nbrs == 3 {
					out[c] = Alive
				} else {
					out[c] = Dead
				}
			}
		}
	}
}

func live(v uint8) int {
	if v != Dead {
		return 1
	}
	return 0
}
