package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/terminal"
)

// FrameRenderer draws the game state; it must not mutate it
type FrameRenderer interface {
	RenderFrame(state *GameState) error
}

// LoopConfig holds cadences and the injectable clock; zero values take the defaults
type LoopConfig struct {
	UpdateInterval time.Duration
	RenderInterval time.Duration
	IdleYield      time.Duration

	Clock TimeProvider
	Sleep func(time.Duration)
}

// Loop is the single-threaded game loop: input sampling, gated simulation step,
// gated render and idle yield, in that order every iteration
type Loop struct {
	state    *GameState
	term     terminal.Terminal
	machine  *input.Machine
	renderer FrameRenderer

	clock      TimeProvider
	sleep      func(time.Duration)
	idle       time.Duration
	updateGate *Gate
	renderGate *Gate

	// Counters for the debug log
	iterations uint64
	steps      uint64
	frames     uint64
}

// NewLoop wires the loop; both gates start at the current clock reading
func NewLoop(state *GameState, term terminal.Terminal, machine *input.Machine, renderer FrameRenderer, cfg LoopConfig) *Loop {
	if cfg.UpdateInterval <= 0 {
		cfg.UpdateInterval = constants.GameUpdateInterval
	}
	if cfg.RenderInterval <= 0 {
		cfg.RenderInterval = constants.FrameUpdateInterval
	}
	if cfg.IdleYield <= 0 {
		cfg.IdleYield = constants.IdleYield
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	now := cfg.Clock.Now()
	return &Loop{
		state:      state,
		term:       term,
		machine:    machine,
		renderer:   renderer,
		clock:      cfg.Clock,
		sleep:      cfg.Sleep,
		idle:       cfg.IdleYield,
		updateGate: NewGate(cfg.UpdateInterval, now),
		renderGate: NewGate(cfg.RenderInterval, now),
	}
}

// State returns the game state driven by the loop
func (l *Loop) State() *GameState {
	return l.state
}

// Run iterates until the game terminates or a terminal I/O call fails
func (l *Loop) Run() error {
	for l.state.Running() {
		if err := l.Tick(); err != nil {
			return err
		}
		if !l.state.Running() {
			break
		}
		l.sleep(l.idle)
	}
	return nil
}

// Tick runs one loop iteration without the idle yield
// Returns as soon as the game terminates, skipping the remaining phases
func (l *Loop) Tick() error {
	l.iterations++

	if err := l.sampleInput(); err != nil {
		return err
	}
	if !l.state.Running() {
		return nil
	}

	if l.updateGate.Ready(l.clock.Now()) {
		l.state.Step()
		if !l.state.Running() {
			return nil
		}
		l.steps++
		l.updateGate.Reset(l.clock.Now())
	}

	if l.renderGate.Ready(l.clock.Now()) {
		if err := l.renderer.RenderFrame(l.state); err != nil {
			return errors.WithMessage(err, "render frame")
		}
		l.frames++
		l.renderGate.Reset(l.clock.Now())
	}
	return nil
}

// sampleInput consumes at most one pending key without blocking
func (l *Loop) sampleInput() error {
	ev, ok, err := l.term.PollKey(0)
	if err != nil {
		return errors.WithMessage(err, "poll input")
	}
	if !ok {
		return nil
	}

	intent := l.machine.Process(ev)
	switch intent.Type {
	case input.IntentTurn:
		l.state.Turn(intent.Direction)
	case input.IntentQuit:
		l.state.Quit()
	}
	return nil
}

// Stats returns iteration, simulation step and rendered frame counts
func (l *Loop) Stats() (iterations, steps, frames uint64) {
	return l.iterations, l.steps, l.frames
}
