package game

import (
	"math/rand"
	"testing"

	"github.com/andrewhalle/termsnake/constants"
)

// testState builds a state with an explicit body and food for
// scenario tests. Food defaults to an unreachable corner so ordinary
// movement ticks never grow.
func testState(body []Coord, heading Heading, bounds Coord) *State {
	return &State{
		body:    body,
		heading: heading,
		food:    Coord{X: bounds.X - 1, Y: bounds.Y - 1},
		bounds:  bounds,
		rng:     rand.New(rand.NewSource(1)),
	}
}

func TestNewState(t *testing.T) {
	bounds := Coord{X: 80, Y: 24}
	s, err := New(bounds, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if s.Length() != 1 {
		t.Errorf("Expected initial length 1, got %d", s.Length())
	}
	want := Coord{X: 40, Y: 12}
	if s.Head() != want {
		t.Errorf("Expected initial head at grid center %v, got %v", want, s.Head())
	}
	if s.Heading() != Right {
		t.Errorf("Expected initial heading Right, got %v", s.Heading())
	}

	food := s.Food()
	if food == s.Head() {
		t.Error("Expected food off the body at placement")
	}
	if food.X < constants.FoodMargin || food.X >= bounds.X-constants.FoodMargin {
		t.Errorf("Expected food column inside margin, got %v", food)
	}
	if food.Y < constants.FoodMargin || food.Y >= bounds.Y-constants.FoodMargin {
		t.Errorf("Expected food row inside margin, got %v", food)
	}
}

// TestNewStateGridTooSmall verifies the startup precondition replaces
// unbounded food resampling on tiny grids
func TestNewStateGridTooSmall(t *testing.T) {
	tests := []Coord{
		{X: 20, Y: 24},
		{X: 80, Y: 20},
		{X: 5, Y: 5},
	}
	for _, bounds := range tests {
		if _, err := New(bounds, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("Expected configuration error for bounds %v", bounds)
		}
	}
}

// TestStepSimpleMove runs the documented scenario: bounds (40,20),
// body [(20,10)], heading Right, one tick with no input
func TestStepSimpleMove(t *testing.T) {
	s := testState([]Coord{{X: 20, Y: 10}}, Right, Coord{X: 40, Y: 20})

	d, reason := s.Step()
	if reason != EndNone {
		t.Fatalf("Expected EndNone, got %v", reason)
	}

	if !d.Moved {
		t.Error("Expected a committed move")
	}
	if want := (Coord{X: 21, Y: 10}); d.NewHead != want {
		t.Errorf("Expected new head %v, got %v", want, d.NewHead)
	}
	if want := (Coord{X: 20, Y: 10}); d.OldHead != want {
		t.Errorf("Expected old head %v, got %v", want, d.OldHead)
	}

	body := s.Body()
	if len(body) != 1 || body[0] != (Coord{X: 21, Y: 10}) {
		t.Errorf("Expected body [(21,10)], got %v", body)
	}
	if !d.TailVacated {
		t.Error("Expected tail vacated on a non-growth tick")
	}
	if want := (Coord{X: 20, Y: 10}); d.VacatedTail != want {
		t.Errorf("Expected vacated tail %v, got %v", want, d.VacatedTail)
	}
}

// TestStepShrinkSequence verifies the prepend-then-pop mechanics on a
// three-segment body: [(5,10),(6,10),(7,10)] heading Left prepends
// (4,10) and pops the tail (7,10)
func TestStepShrinkSequence(t *testing.T) {
	s := testState([]Coord{
		{X: 5, Y: 10},
		{X: 6, Y: 10},
		{X: 7, Y: 10},
	}, Left, Coord{X: 40, Y: 20})

	d, reason := s.Step()
	if reason != EndNone {
		t.Fatalf("Expected EndNone, got %v", reason)
	}

	want := []Coord{
		{X: 4, Y: 10},
		{X: 5, Y: 10},
		{X: 6, Y: 10},
	}
	body := s.Body()
	if len(body) != len(want) {
		t.Fatalf("Expected body length %d, got %d", len(want), len(body))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("Expected body[%d] == %v, got %v", i, want[i], body[i])
		}
	}

	if want := (Coord{X: 7, Y: 10}); !d.TailVacated || d.VacatedTail != want {
		t.Errorf("Expected vacated tail %v, got %+v", want, d)
	}
}

// TestStepNeckCollision steps a body whose heading points straight at
// its own neck, as happens when a reversal reaches the state machine
// without passing the input resolver. The step must die on
// SelfCollision rather than commit the head.
func TestStepNeckCollision(t *testing.T) {
	s := testState([]Coord{
		{X: 5, Y: 10},
		{X: 4, Y: 10},
		{X: 3, Y: 10},
	}, Left, Coord{X: 40, Y: 20})

	before := s.Body()
	_, reason := s.Step()
	if reason != EndSelfCollision {
		t.Fatalf("Expected EndSelfCollision, got %v", reason)
	}

	after := s.Body()
	if len(after) != len(before) {
		t.Fatalf("Expected body unchanged, length %d became %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("Expected body[%d] unchanged at %v, got %v", i, before[i], after[i])
		}
	}
}

// TestStepDegenerateMove: head at (1,5) heading Left would move below
// the grid's lower edge
func TestStepDegenerateMove(t *testing.T) {
	tests := []struct {
		head    Coord
		heading Heading
	}{
		{Coord{X: 1, Y: 5}, Left},
		{Coord{X: 5, Y: 1}, Up},
	}
	for _, tc := range tests {
		s := testState([]Coord{tc.head}, tc.heading, Coord{X: 40, Y: 20})

		_, reason := s.Step()
		if reason != EndDegenerateMove {
			t.Errorf("Expected EndDegenerateMove for head %v heading %v, got %v", tc.head, tc.heading, reason)
		}

		body := s.Body()
		if len(body) != 1 || body[0] != tc.head {
			t.Errorf("Expected body unchanged at %v, got %v", tc.head, body)
		}
	}
}

// TestStepWallCollision: head at (39,10) with bounds column 40 heading
// Right dies without committing the illegal head
func TestStepWallCollision(t *testing.T) {
	tests := []struct {
		head    Coord
		heading Heading
	}{
		{Coord{X: 39, Y: 10}, Right},
		{Coord{X: 10, Y: 19}, Down},
	}
	for _, tc := range tests {
		s := testState([]Coord{tc.head}, tc.heading, Coord{X: 40, Y: 20})

		_, reason := s.Step()
		if reason != EndWallCollision {
			t.Errorf("Expected EndWallCollision for head %v heading %v, got %v", tc.head, tc.heading, reason)
		}

		body := s.Body()
		if len(body) != 1 || body[0] != tc.head {
			t.Errorf("Expected body unchanged at %v, got %v", tc.head, body)
		}
	}
}

// TestStepSelfCollision drives the head into the body and verifies
// the colliding head is never committed
func TestStepSelfCollision(t *testing.T) {
	// Hook shape: head (10,10), the cell to its left is body.
	s := testState([]Coord{
		{X: 10, Y: 10},
		{X: 10, Y: 11},
		{X: 9, Y: 11},
		{X: 9, Y: 10},
	}, Left, Coord{X: 40, Y: 20})

	before := s.Body()
	_, reason := s.Step()
	if reason != EndSelfCollision {
		t.Fatalf("Expected EndSelfCollision, got %v", reason)
	}

	after := s.Body()
	if len(after) != len(before) {
		t.Fatalf("Expected body unchanged, length %d became %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("Expected body[%d] unchanged at %v, got %v", i, before[i], after[i])
		}
	}
}

// TestStepGrowth verifies the tail is retained on the food tick, the
// new food avoids the post-tick body, and length grows by exactly one
func TestStepGrowth(t *testing.T) {
	s := testState([]Coord{
		{X: 20, Y: 10},
		{X: 19, Y: 10},
	}, Right, Coord{X: 80, Y: 24})
	s.food = Coord{X: 21, Y: 10}

	d, reason := s.Step()
	if reason != EndNone {
		t.Fatalf("Expected EndNone, got %v", reason)
	}

	if s.Length() != 3 {
		t.Errorf("Expected length 3 after growth, got %d", s.Length())
	}
	if d.TailVacated {
		t.Error("Expected tail retained on the growth tick")
	}
	if !d.FoodPlaced {
		t.Fatal("Expected food replacement on the growth tick")
	}
	if d.NewFood != s.Food() {
		t.Errorf("Expected delta food %v to match state food %v", d.NewFood, s.Food())
	}
	for _, b := range s.Body() {
		if b == s.Food() {
			t.Errorf("Expected new food off the body, got %v on %v", s.Food(), s.Body())
		}
	}
}

// TestStepLengthInvariant: over a long input-free run, length never
// changes except on food ticks and no coordinate repeats in the body
func TestStepLengthInvariant(t *testing.T) {
	bounds := Coord{X: 80, Y: 24}
	s, err := New(bounds, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	headings := []Heading{Right, Down, Left, Down, Right, Up}
	step := 0
	for {
		// Steer in a widening spiral to exercise turns without
		// reversing.
		s.SetHeading(headings[step%len(headings)])
		step++

		before := s.Length()
		d, reason := s.Step()
		if reason != EndNone {
			break
		}

		if d.FoodPlaced {
			if s.Length() != before+1 {
				t.Fatalf("Expected length %d after food tick, got %d", before+1, s.Length())
			}
		} else if s.Length() != before {
			t.Fatalf("Expected length unchanged at %d, got %d", before, s.Length())
		}

		seen := make(map[Coord]bool, s.Length())
		for _, b := range s.Body() {
			if seen[b] {
				t.Fatalf("Expected no duplicate coordinates, %v appears twice in %v", b, s.Body())
			}
			seen[b] = true
		}

		if step > 500 {
			break
		}
	}
}

// TestPlaceFoodAvoidsBody fills most of the margin interior with body
// cells and verifies rejection sampling still lands off the body
func TestPlaceFoodAvoidsBody(t *testing.T) {
	bounds := Coord{X: 22, Y: 22}
	// Interior sample space is [10,12) x [10,12): four cells.
	body := []Coord{
		{X: 10, Y: 10},
		{X: 10, Y: 11},
		{X: 11, Y: 10},
	}
	s := &State{
		body:   body,
		bounds: bounds,
		rng:    rand.New(rand.NewSource(7)),
	}

	for i := 0; i < 100; i++ {
		got := s.placeFood()
		if got != (Coord{X: 11, Y: 11}) {
			t.Fatalf("Expected the only free cell (11,11), got %v", got)
		}
	}
}
