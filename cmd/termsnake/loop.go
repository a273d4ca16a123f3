package main

import (
	"time"

	"github.com/andrewhalle/termsnake/game"
	"github.com/andrewhalle/termsnake/input"
	"github.com/andrewhalle/termsnake/render"
	"github.com/andrewhalle/termsnake/terminal"
)

// sounds is the loop's hook into the audio engine.
type sounds interface {
	PlayEat()
	PlayCrash()
}

// noSound keeps the loop free of nil checks when audio is disabled
// or failed to start.
type noSound struct{}

func (noSound) PlayEat()   {}
func (noSound) PlayCrash() {}

// loop owns the live game state and advances it once per tick until a
// terminal outcome or a quit intent.
type loop struct {
	state   *game.State
	surface render.Surface
	events  <-chan terminal.Event
	audio   sounds

	// sleep is swapped out in tests so ticks run without real time
	// passing
	sleep func(time.Duration)
}

func newLoop(state *game.State, surface render.Surface, events <-chan terminal.Event, audio sounds) *loop {
	return &loop{
		state:   state,
		surface: surface,
		events:  events,
		audio:   audio,
		sleep:   time.Sleep,
	}
}

// run ticks until the game ends and returns why. EndNone means the
// player quit.
func (l *loop) run() game.EndReason {
	for {
		if l.drainInput() {
			return game.EndNone
		}

		delta, reason := l.state.Step()
		if reason != game.EndNone {
			l.audio.PlayCrash()
			return reason
		}

		render.Draw(l.surface, delta)
		if delta.FoodPlaced {
			l.audio.PlayEat()
		}

		l.sleep(l.state.Heading().TickInterval())
	}
}

// drainInput applies every queued event in arrival order without ever
// blocking the tick. The last valid turn wins for this tick; reversal
// and unknown keys fall out in the resolver.
func (l *loop) drainInput() (quit bool) {
	for {
		select {
		case ev := <-l.events:
			in := input.Decode(ev)
			if in.Type == input.IntentQuit {
				return true
			}
			l.state.SetHeading(input.Resolve(l.state.Heading(), in))
		default:
			return false
		}
	}
}
