package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentTurn            // arrows, h/j/k/l
	IntentQuit            // Esc, Ctrl+C, q, process interrupt
)

// Intent is the game-level meaning of a key press
type Intent struct {
	Type      IntentType
	Direction core.Direction // Valid for IntentTurn
}

func (t IntentType) String() string {
	switch t {
	case IntentTurn:
		return "turn"
	case IntentQuit:
		return "quit"
	}
	return "none"
}
