package game

import (
	"time"

	"github.com/andrewhalle/termsnake/constants"
)

// Heading is the snake's committed direction of travel.
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

// String returns the string representation of a heading.
func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the one-cell offset for moving along h. Up decreases
// Y, Left decreases X (screen coordinates).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the geometric reverse of h.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Vertical reports whether h travels along the row axis.
func (h Heading) Vertical() bool {
	return h == Up || h == Down
}

// TickInterval returns the pause between ticks while traveling along
// h. Vertical travel gets a longer interval to compensate for the
// terminal cell aspect ratio.
func (h Heading) TickInterval() time.Duration {
	if h.Vertical() {
		return constants.TickIntervalVertical
	}
	return constants.TickIntervalHorizontal
}
