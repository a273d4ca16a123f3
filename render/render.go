// Package render translates game state deltas into individual cell
// operations against a terminal surface. After the initial frame only
// the cells a tick changed are touched, so render cost per tick is
// independent of body length.
package render

import "github.com/andrewhalle/termsnake/game"

// Color is the semantic palette the game draws with.
type Color uint8

const (
	// ColorHead marks the snake's head (red)
	ColorHead Color = iota

	// ColorTrail marks cells the head has passed through (blue)
	ColorTrail

	// ColorFood marks the current food cell (green)
	ColorFood
)

// Surface is the terminal seam the renderer paints against.
type Surface interface {
	// Paint fills the cell at c with a semantic color
	Paint(c game.Coord, color Color)

	// Clear restores the cell at c to blank
	Clear(c game.Coord)

	// Flush presents all pending cell updates
	Flush()
}

// DrawInitial paints the first frame: the whole body and the food.
// This is the only time more than a handful of cells is painted.
func DrawInitial(s Surface, body []game.Coord, food game.Coord) {
	for i, c := range body {
		if i == 0 {
			s.Paint(c, ColorHead)
		} else {
			s.Paint(c, ColorTrail)
		}
	}
	s.Paint(food, ColorFood)
	s.Flush()
}

// Draw translates one committed tick into cell operations: the old
// head becomes trail, the new head is painted, the vacated tail (if
// any) is cleared and newly placed food (if any) is painted.
func Draw(s Surface, d game.Delta) {
	if !d.Moved {
		return
	}

	s.Paint(d.OldHead, ColorTrail)
	s.Paint(d.NewHead, ColorHead)
	if d.TailVacated {
		s.Clear(d.VacatedTail)
	}
	if d.FoodPlaced {
		s.Paint(d.NewFood, ColorFood)
	}
	s.Flush()
}
