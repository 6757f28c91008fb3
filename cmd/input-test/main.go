// Command input-test echoes key presses and the game intent each one maps to
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/terminal"
)

const maxLog = 10

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(screen)
	defer screen.Leave()

	machine := input.NewMachine()
	eventLog := make([]string, 0, maxLog)

	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	render := func() error {
		if err := screen.ClearAndHome(); err != nil {
			return err
		}
		lines := append([]string{"Input Test - press keys; a quit key exits", ""}, eventLog...)
		for _, line := range lines {
			if err := screen.WriteLine(line); err != nil {
				return err
			}
		}
		return screen.Flush()
	}

	for {
		if err := render(); err != nil {
			screen.Leave()
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}

		ev, ok, err := screen.PollKey(100 * time.Millisecond)
		if err != nil {
			screen.Leave()
			fmt.Fprintf(os.Stderr, "poll: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			continue
		}

		intent := machine.Process(ev)
		entry := fmt.Sprintf("key=%-9s intent=%s", ev, intent.Type)
		if intent.Type == input.IntentTurn {
			entry += " " + intent.Direction.String()
		}
		addLog(entry)

		if intent.Type == input.IntentQuit {
			return
		}
	}
}
