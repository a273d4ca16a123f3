package terminal

import "github.com/gdamore/tcell/v2"

// EventType discriminates terminal events.
type EventType uint8

const (
	EventNone EventType = iota

	// EventKey is a decoded key press
	EventKey

	// EventResize is a terminal size change
	EventResize

	// EventInterrupt means the terminal closed or errored; no more
	// events will arrive
	EventInterrupt
)

// Key identifies the decoded key of an EventKey event.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRune
	KeyEscape
	KeyCtrlC
)

// Event is one decoded terminal event.
type Event struct {
	Type EventType
	Key  Key
	Rune rune // set when Key == KeyRune
}

// Poll blocks until the next terminal event and decodes it into the
// game's event alphabet. Keys outside the alphabet come back as
// KeyNone or a raw rune so the input resolver can discard them.
func (t *Terminal) Poll() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return decodeKey(ev)
		case *tcell.EventResize:
			return Event{Type: EventResize}
		case nil:
			// Screen finalized.
			return Event{Type: EventInterrupt}
		}
		// Mouse, paste and other tcell events are not part of the game.
	}
}

func decodeKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	default:
		return Event{Type: EventKey, Key: KeyNone}
	}
}
