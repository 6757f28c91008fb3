package terminal

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Terminal is the capability the game loop drives
// Any error it returns is fatal to the game
type Terminal interface {
	// Enter switches to raw mode and the alternate screen buffer and hides the cursor
	Enter() error

	// Leave restores the terminal. Safe to call multiple times
	Leave()

	// PollKey returns the next pending key press, waiting at most timeout
	// A zero timeout never blocks
	PollKey(timeout time.Duration) (KeyEvent, bool, error)

	// ClearAndHome clears the visible area and moves the write position to the top-left corner
	ClearAndHome() error

	// WriteLine writes text at the write position and moves it to the next line
	WriteLine(text string) error

	// Flush presents everything written since the last ClearAndHome
	Flush() error
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Leave() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
