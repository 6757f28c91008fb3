package render

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Renderer redraws the full grid and score on every frame
type Renderer struct {
	term terminal.Terminal
}

// NewRenderer creates a renderer writing to term
func NewRenderer(term terminal.Terminal) *Renderer {
	return &Renderer{term: term}
}

// RenderFrame implements engine.FrameRenderer
func (r *Renderer) RenderFrame(state *engine.GameState) error {
	if err := r.term.ClearAndHome(); err != nil {
		return errors.Wrap(err, "clear screen")
	}
	for i, line := range BuildFrame(state) {
		if err := r.term.WriteLine(line); err != nil {
			return errors.Wrapf(err, "write line %d", i)
		}
	}
	if err := r.term.Flush(); err != nil {
		return errors.Wrap(err, "flush frame")
	}
	return nil
}
