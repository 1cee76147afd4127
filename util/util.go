package util

import "fmt"

// Cell is a single board coordinate, X across, Y down.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
