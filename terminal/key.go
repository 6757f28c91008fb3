package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyCtrlC

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyInterrupt is synthesized when the process receives SIGINT/SIGTERM
	KeyInterrupt
)

// KeyEvent is a single key press
type KeyEvent struct {
	Key  Key
	Rune rune
}

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyCtrlC:     "ctrl+c",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyInterrupt: "interrupt",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}
