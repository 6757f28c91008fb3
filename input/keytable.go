package input

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/terminal"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[terminal.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]KeyEntry{
			terminal.KeyUp:        {IntentTurn, core.DirUp},
			terminal.KeyDown:      {IntentTurn, core.DirDown},
			terminal.KeyLeft:      {IntentTurn, core.DirLeft},
			terminal.KeyRight:     {IntentTurn, core.DirRight},
			terminal.KeyEscape:    {IntentType: IntentQuit},
			terminal.KeyCtrlC:     {IntentType: IntentQuit},
			terminal.KeyInterrupt: {IntentType: IntentQuit},
		},

		Runes: map[rune]KeyEntry{
			'h': {IntentTurn, core.DirLeft},
			'j': {IntentTurn, core.DirDown},
			'k': {IntentTurn, core.DirUp},
			'l': {IntentTurn, core.DirRight},
			'q': {IntentType: IntentQuit},
		},
	}
}
