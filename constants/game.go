package constants

import "time"

// Tick Pacing Constants
const (
	// TickIntervalVertical spaces ticks while heading up or down
	TickIntervalVertical = 70 * time.Millisecond

	// TickIntervalHorizontal spaces ticks while heading left or right.
	// Shorter than vertical because most terminals have cells taller
	// than they are wide
	TickIntervalHorizontal = 50 * time.Millisecond
)

// Grid Constants
const (
	// FoodMargin is the interior distance food keeps from every grid edge
	FoodMargin = 10

	// EventChannelCapacity buffers key events between the terminal
	// poller goroutine and the tick loop
	EventChannelCapacity = 256
)
