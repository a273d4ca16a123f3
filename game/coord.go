package game

import "fmt"

// Coord is a 1-indexed terminal cell position. X is the column and Y
// is the row; both grow toward the bottom-right, matching terminal
// addressing.
type Coord struct {
	X int
	Y int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one move away from c along h.
func (c Coord) Step(h Heading) Coord {
	dx, dy := h.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
