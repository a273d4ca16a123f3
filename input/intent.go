package input

import (
	"github.com/andrewhalle/termsnake/game"
	"github.com/andrewhalle/termsnake/terminal"
)

// IntentType discriminates semantic actions decoded from terminal
// events.
type IntentType uint8

const (
	// IntentNone is an event the game ignores
	IntentNone IntentType = iota

	// IntentTurn asks for a new heading
	IntentTurn

	// IntentQuit ends the game: Escape, Ctrl+C, or a closed terminal
	IntentQuit
)

// Intent is one decoded player action.
type Intent struct {
	Type    IntentType
	Heading game.Heading // valid when Type == IntentTurn
}

// Decode maps a terminal event to an intent. The four arrow keys and
// their h/j/k/l aliases normalize to cardinal headings; anything else
// is a no-op rather than an error.
func Decode(ev terminal.Event) Intent {
	if ev.Type == terminal.EventInterrupt {
		return Intent{Type: IntentQuit}
	}
	if ev.Type != terminal.EventKey {
		return Intent{Type: IntentNone}
	}

	switch ev.Key {
	case terminal.KeyUp:
		return Intent{Type: IntentTurn, Heading: game.Up}
	case terminal.KeyDown:
		return Intent{Type: IntentTurn, Heading: game.Down}
	case terminal.KeyLeft:
		return Intent{Type: IntentTurn, Heading: game.Left}
	case terminal.KeyRight:
		return Intent{Type: IntentTurn, Heading: game.Right}
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case terminal.KeyRune:
		switch ev.Rune {
		case 'k':
			return Intent{Type: IntentTurn, Heading: game.Up}
		case 'j':
			return Intent{Type: IntentTurn, Heading: game.Down}
		case 'h':
			return Intent{Type: IntentTurn, Heading: game.Left}
		case 'l':
			return Intent{Type: IntentTurn, Heading: game.Right}
		}
	}

	return Intent{Type: IntentNone}
}

// Resolve applies one intent to the committed heading and returns the
// heading to use from now on. A turn into the exact opposite of the
// committed heading is silently dropped, so the snake can never
// reverse into its own neck in a single tick.
func Resolve(committed game.Heading, in Intent) game.Heading {
	if in.Type != IntentTurn {
		return committed
	}
	if in.Heading == committed.Opposite() {
		return committed
	}
	return in.Heading
}
