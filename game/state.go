package game

import (
	"fmt"
	"math/rand"

	"github.com/andrewhalle/termsnake/constants"
)

// EndReason describes why a tick ended the game.
type EndReason uint8

const (
	// EndNone means the game is still running
	EndNone EndReason = iota

	// EndWallCollision means the head left the grid
	EndWallCollision

	// EndSelfCollision means the head ran into the body
	EndSelfCollision

	// EndDegenerateMove means the head would have moved below the
	// grid's lower edge
	EndDegenerateMove
)

// String returns the string representation of an end reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "None"
	case EndWallCollision:
		return "WallCollision"
	case EndSelfCollision:
		return "SelfCollision"
	case EndDegenerateMove:
		return "DegenerateMove"
	default:
		return "Unknown"
	}
}

// Delta lists the cells a single tick changed, so the renderer can
// repaint only those.
type Delta struct {
	// Moved is false when the tick was a no-op and nothing below
	// is meaningful
	Moved bool

	OldHead Coord
	NewHead Coord

	// TailVacated reports that VacatedTail left the body this tick
	TailVacated bool
	VacatedTail Coord

	// FoodPlaced reports that NewFood was placed this tick
	FoodPlaced bool
	NewFood    Coord
}

// State is the complete simulation state: body, heading, food and
// bounds. The tick loop owns the single live instance; nothing else
// mutates it.
type State struct {
	body    []Coord // front is the head
	heading Heading
	food    Coord
	bounds  Coord
	rng     *rand.Rand
}

// New creates a running game on a grid of the given bounds, with a
// one-cell snake at the grid center heading Right and the first food
// already placed. The grid must leave room inside the food margin on
// both axes, otherwise food placement could never terminate.
func New(bounds Coord, rng *rand.Rand) (*State, error) {
	if bounds.X <= 2*constants.FoodMargin || bounds.Y <= 2*constants.FoodMargin {
		return nil, fmt.Errorf("terminal is %dx%d cells, need more than %dx%d",
			bounds.X, bounds.Y, 2*constants.FoodMargin, 2*constants.FoodMargin)
	}

	s := &State{
		body:    []Coord{{X: bounds.X / 2, Y: bounds.Y / 2}},
		heading: Right,
		bounds:  bounds,
		rng:     rng,
	}
	s.food = s.placeFood()
	return s, nil
}

// Head returns the current head cell.
func (s *State) Head() Coord {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *State) Body() []Coord {
	out := make([]Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Length returns the body length, reported as the score on exit.
func (s *State) Length() int {
	return len(s.body)
}

// Food returns the current food cell.
func (s *State) Food() Coord {
	return s.food
}

// Bounds returns the exclusive upper bound of the grid.
func (s *State) Bounds() Coord {
	return s.bounds
}

// Heading returns the committed direction of travel.
func (s *State) Heading() Heading {
	return s.heading
}

// SetHeading commits a direction for subsequent ticks. Reversal
// filtering happens in the input resolver before this is called.
func (s *State) SetHeading(h Heading) {
	s.heading = h
}

// contains reports whether c is occupied by the body.
func (s *State) contains(c Coord) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// placeFood draws uniform cells at least FoodMargin away from every
// edge until one misses the body. New guarantees the sample range is
// non-empty.
func (s *State) placeFood() Coord {
	spanX := s.bounds.X - 2*constants.FoodMargin
	spanY := s.bounds.Y - 2*constants.FoodMargin
	for {
		c := Coord{
			X: constants.FoodMargin + s.rng.Intn(spanX),
			Y: constants.FoodMargin + s.rng.Intn(spanY),
		}
		if !s.contains(c) {
			return c
		}
	}
}

// Step advances the simulation one tick along the committed heading.
// A non-EndNone reason ends the game; the body is then left exactly as
// it was, the illegal head is never committed.
func (s *State) Step() (Delta, EndReason) {
	oldHead := s.Head()

	// The grid is 1-indexed, so decreasing an axis already at 1
	// would move below the lower edge.
	dx, dy := s.heading.Delta()
	if (dx < 0 && oldHead.X <= 1) || (dy < 0 && oldHead.Y <= 1) {
		return Delta{}, EndDegenerateMove
	}

	newHead := oldHead.Step(s.heading)
	if newHead == oldHead {
		// Unreachable with a well-formed heading; skip the tick
		// rather than corrupt the body.
		return Delta{OldHead: oldHead, NewHead: newHead}, EndNone
	}

	if newHead.X >= s.bounds.X || newHead.Y >= s.bounds.Y {
		return Delta{}, EndWallCollision
	}
	if s.contains(newHead) {
		return Delta{}, EndSelfCollision
	}

	// Commit the move: prepend the new head.
	s.body = append(s.body, Coord{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	d := Delta{Moved: true, OldHead: oldHead, NewHead: newHead}

	if newHead == s.food {
		// Growth tick: keep the tail, place the next food.
		s.food = s.placeFood()
		d.FoodPlaced = true
		d.NewFood = s.food
	} else {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		d.TailVacated = true
		d.VacatedTail = tail
	}

	return d, EndNone
}
