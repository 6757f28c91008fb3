package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/vi-snake.log")
	seedFlag  = flag.Uint64("seed", 0, "Food placement seed (0 = time-based)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	state, err := run(*seedFlag)
	if err != nil {
		log.Printf("fatal: %+v", err)
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game over (%s). Score: %d\n", state.Reason, state.Score)
}

// run plays one game on the controlling terminal and returns the final state
// The terminal is restored before run returns, on success and on error
func run(seed uint64) (*engine.GameState, error) {
	if !terminal.IsTerminal(os.Stdin) || !terminal.IsTerminal(os.Stdout) {
		return nil, errors.New("stdin and stdout must be a terminal")
	}

	state, err := engine.NewDefaultGameState(engine.NewRand(seed))
	if err != nil {
		return nil, err
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return nil, err
	}
	render.ApplyPalette(screen)

	if err := screen.Enter(); err != nil {
		return nil, err
	}
	core.RegisterTerminal(screen)
	defer func() {
		screen.Leave()
		core.RegisterTerminal(nil)
	}()

	// Raw mode swallows ^C as a key; signals from outside arrive here
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	core.Go(func() {
		sig := <-sigCh
		log.Printf("signal %v: interrupting game", sig)
		if err := screen.Interrupt(); err != nil {
			log.Printf("interrupt: %v", err)
		}
	})

	loop := engine.NewLoop(state, screen, input.NewMachine(), render.NewRenderer(screen), engine.LoopConfig{})

	log.Printf("game start: seed=%d grid=%dx%d snake=%v food=%v", seed, state.Width, state.Height, state.Snake, state.Food)
	err = loop.Run()

	iterations, steps, frames := loop.Stats()
	log.Printf("loop exit: iterations=%d steps=%d frames=%d phase=%s", iterations, steps, frames, state.Phase)

	return state, err
}
