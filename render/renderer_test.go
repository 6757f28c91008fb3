package render

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/terminal"
)

func newSimTerminal(t *testing.T) (*terminal.Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	sim.SetSize(80, 24)
	s := terminal.NewScreenFrom(sim)
	ApplyPalette(s)
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	t.Cleanup(s.Leave)
	return s, sim
}

func cellRune(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, width, _ := sim.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return 0
	}
	return cell.Runes[0]
}

func TestRenderFrameDrawsGrid(t *testing.T) {
	term, sim := newSimTerminal(t)
	state, err := engine.NewDefaultGameState(&fixedRand{values: []int{4, 4}})
	if err != nil {
		t.Fatalf("NewDefaultGameState failed: %v", err)
	}

	if err := NewRenderer(term).RenderFrame(state); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, constants.BorderGlyph},
		{39, 19, constants.BorderGlyph},
		{10, 10, constants.SnakeGlyph},
		{8, 10, constants.SnakeGlyph},
		{5, 5, constants.FoodGlyph},
		{20, 10, constants.EmptyGlyph},
		{0, 20, 'S'},
	}
	for _, c := range checks {
		if got := cellRune(t, sim, c.x, c.y); got != c.want {
			t.Errorf("Cell (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}
}

func TestRenderFrameFailsOnInactiveTerminal(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewScreenFrom(sim)
	state, err := engine.NewDefaultGameState(&fixedRand{})
	if err != nil {
		t.Fatalf("NewDefaultGameState failed: %v", err)
	}

	err = NewRenderer(term).RenderFrame(state)
	if !errors.Is(err, terminal.ErrNotActive) {
		t.Errorf("Expected ErrNotActive, got %v", err)
	}
}

// TestLoopOnSimulationScreen drives the real loop, renderer and tcell terminal together
func TestLoopOnSimulationScreen(t *testing.T) {
	term, sim := newSimTerminal(t)
	state, err := engine.NewDefaultGameState(&fixedRand{})
	if err != nil {
		t.Fatalf("NewDefaultGameState failed: %v", err)
	}
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	loop := engine.NewLoop(state, term, input.NewMachine(), NewRenderer(term), engine.LoopConfig{
		Clock: clock,
		Sleep: clock.Sleep,
	})

	// Turn up with vi 'k'; wait until the pump has queued it
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	deadline := time.Now().Add(time.Second)
	for state.Direction != core.DirUp && time.Now().Before(deadline) {
		if err := loop.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if state.Direction != core.DirUp {
		t.Fatal("Turn key never reached the loop")
	}

	clock.Advance(constants.GameUpdateInterval)
	if err := loop.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if head := state.Head(); head != (core.Point{Row: 9, Col: 10}) {
		t.Fatalf("Expected head at (9,10), got %v", head)
	}
	if got := cellRune(t, sim, 10, 9); got != constants.SnakeGlyph {
		t.Errorf("Expected snake glyph at new head, got %q", got)
	}
	if got := cellRune(t, sim, 8, 10); got != constants.EmptyGlyph {
		t.Errorf("Expected vacated tail cell to be empty, got %q", got)
	}
}
