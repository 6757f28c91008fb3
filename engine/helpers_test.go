package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/terminal"
)

// scriptedRand replays fixed values (mod n), then returns 0
type scriptedRand struct {
	values []int
	next   int
}

func newScriptedRand(values ...int) *scriptedRand {
	return &scriptedRand{values: values}
}

func (s *scriptedRand) Intn(n int) int {
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next] % n
	s.next++
	return v
}

// newTestState builds a 40x20 state with an explicit snake, food and heading
func newTestState(snake []core.Point, food core.Point, dir core.Direction, rng RandSource) *GameState {
	return &GameState{
		Width:     40,
		Height:    20,
		Snake:     append([]core.Point(nil), snake...),
		Food:      food,
		Direction: dir,
		rng:       rng,
	}
}

func pts(coords ...int) []core.Point {
	out := make([]core.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, core.Point{Row: coords[i], Col: coords[i+1]})
	}
	return out
}

func equalPoints(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fakeTerminal replays queued keys and records frame output
type fakeTerminal struct {
	keys    []terminal.KeyEvent
	pollErr error
	polls   int
	lines   []string
}

func (f *fakeTerminal) Enter() error { return nil }
func (f *fakeTerminal) Leave()       {}

func (f *fakeTerminal) PollKey(timeout time.Duration) (terminal.KeyEvent, bool, error) {
	f.polls++
	if f.pollErr != nil {
		return terminal.KeyEvent{}, false, f.pollErr
	}
	if len(f.keys) == 0 {
		return terminal.KeyEvent{}, false, nil
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev, true, nil
}

func (f *fakeTerminal) ClearAndHome() error {
	f.lines = f.lines[:0]
	return nil
}

func (f *fakeTerminal) WriteLine(text string) error {
	f.lines = append(f.lines, text)
	return nil
}

func (f *fakeTerminal) Flush() error { return nil }

// countingRenderer records how often and at which score frames were drawn
type countingRenderer struct {
	frames int
	scores []int
	err    error
}

func (r *countingRenderer) RenderFrame(state *GameState) error {
	if r.err != nil {
		return r.err
	}
	r.frames++
	r.scores = append(r.scores, state.Score)
	return nil
}
