package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/andrewhalle/termsnake/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Engine owns the speaker and mixes generated sound effects into it.
type Engine struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	started bool
}

// NewEngine creates an engine; Start must succeed before it makes
// any sound.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Start opens the speaker and attaches the mixer. Failure leaves the
// engine inert; the game runs silently.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.started = true
	return nil
}

// Stop silences the mixer and closes the speaker.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	e.started = false
}

func (e *Engine) play(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayEat plays the food-consumption chime.
func (e *Engine) PlayEat() {
	e.play(EatSound(sampleRate))
}

// PlayCrash plays the game-over buzz.
func (e *Engine) PlayCrash() {
	e.play(CrashSound(sampleRate))
}
