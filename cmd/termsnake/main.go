package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/andrewhalle/termsnake/audio"
	"github.com/andrewhalle/termsnake/constants"
	"github.com/andrewhalle/termsnake/game"
	"github.com/andrewhalle/termsnake/render"
	"github.com/andrewhalle/termsnake/terminal"
)

var (
	soundFlag = flag.Bool("sound", true, "Enable sound effects")
	debugFlag = flag.Bool("debug", false, "Write debug logs to "+logDir+"/")
)

func main() {
	// Panic recovery: restore the terminal before reporting, or the
	// trace lands unreadable on the alternate screen in raw mode.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\ntermsnake crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	bounds := term.Bounds()
	state, err := game.New(bounds, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		// Grid too small for the food margin. Leave the alternate
		// screen before reporting.
		term.Fini()
		fmt.Fprintf(os.Stderr, "Cannot start: %v\n", err)
		os.Exit(1)
	}
	log.Printf("starting: bounds=%v head=%v food=%v", bounds, state.Head(), state.Food())

	// The poller is the only goroutine that blocks on the terminal;
	// the tick loop drains the channel without waiting.
	events := make(chan terminal.Event, constants.EventChannelCapacity)
	go func() {
		// Panic recovery for the poller to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\nevent poller crashed: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := term.Poll()
			events <- ev
			if ev.Type == terminal.EventInterrupt {
				return
			}
		}
	}()

	var sfx sounds = noSound{}
	if *soundFlag {
		engine := audio.NewEngine()
		if err := engine.Start(); err != nil {
			// Non-fatal, the game can run without sound.
			log.Printf("audio start failed: %v (continuing without sound)", err)
		} else {
			defer engine.Stop()
			sfx = engine
		}
	}

	render.DrawInitial(term, state.Body(), state.Food())

	reason := newLoop(state, term, events, sfx).run()
	log.Printf("game over: %v, score=%d", reason, state.Length())

	// Restore the terminal before printing the score so it lands on
	// the normal screen.
	term.Fini()
	fmt.Printf("Score: %d\n", state.Length())
}
