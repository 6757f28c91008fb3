package input

import (
	"github.com/lixenwraith/vi-snake/terminal"
)

// Machine parses terminal.KeyEvent into semantic Intent
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return NewMachineWithTable(DefaultKeyTable())
}

// NewMachineWithTable creates an input machine with custom bindings
func NewMachineWithTable(table *KeyTable) *Machine {
	return &Machine{keyTable: table}
}

// Process returns the intent bound to ev; unbound keys yield IntentNone
func (m *Machine) Process(ev terminal.KeyEvent) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key == terminal.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Direction: entry.Direction}
}
