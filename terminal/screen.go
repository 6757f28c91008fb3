package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// eventBufferSize bounds key presses queued between two loop iterations
const eventBufferSize = 256

var (
	ErrNotActive = errors.New("terminal not active")
	ErrClosed    = errors.New("terminal event stream closed")
)

// Screen implements Terminal over a tcell screen
type Screen struct {
	screen tcell.Screen
	styles map[rune]tcell.Style

	// Filled by the event pump, drained by PollKey
	events chan tcell.Event
	quit   chan struct{}

	row    int
	active bool

	leaveOnce sync.Once
}

// NewScreen creates a Screen on the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create tcell screen")
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an existing tcell screen; tests pass a simulation screen
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		styles: make(map[rune]tcell.Style),
		events: make(chan tcell.Event, eventBufferSize),
		quit:   make(chan struct{}),
	}
}

// SetStyle colours every occurrence of r written by WriteLine
func (s *Screen) SetStyle(r rune, style tcell.Style) {
	s.styles[r] = style
}

// Enter implements Terminal
func (s *Screen) Enter() error {
	if s.active {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "initialize terminal")
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.active = true

	go s.pump()
	return nil
}

// pump moves tcell events into the buffered channel until the screen is finalized
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Leave implements Terminal
func (s *Screen) Leave() {
	s.leaveOnce.Do(func() {
		close(s.quit)
		if s.active {
			s.active = false
			s.screen.Fini()
		}
	})
}

// Interrupt queues a KeyInterrupt for the next PollKey
// Safe to call from any goroutine
func (s *Screen) Interrupt() error {
	if err := s.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		return errors.Wrap(err, "post interrupt")
	}
	return nil
}

// PollKey implements Terminal
// Resize and mouse events are consumed without being reported
func (s *Screen) PollKey(timeout time.Duration) (KeyEvent, bool, error) {
	if !s.active {
		return KeyEvent{}, false, ErrNotActive
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		var ev tcell.Event
		if deadline == nil {
			select {
			case ev = <-s.events:
			default:
				return KeyEvent{}, false, nil
			}
		} else {
			select {
			case ev = <-s.events:
			case <-deadline:
				return KeyEvent{}, false, nil
			}
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if key, ok := convertKey(ev); ok {
				return key, true, nil
			}
		case *tcell.EventInterrupt:
			return KeyEvent{Key: KeyInterrupt}, true, nil
		case *tcell.EventError:
			return KeyEvent{}, false, errors.Wrap(ev, "read terminal event")
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			return KeyEvent{}, false, ErrClosed
		}
	}
}

// convertKey maps the tcell keys the game understands
func convertKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}, true
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}, true
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}, true
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}, true
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}, true
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}, true
	case tcell.KeyCtrlC:
		return KeyEvent{Key: KeyCtrlC}, true
	}
	return KeyEvent{}, false
}

// ClearAndHome implements Terminal
func (s *Screen) ClearAndHome() error {
	if !s.active {
		return ErrNotActive
	}
	s.screen.Clear()
	s.row = 0
	return nil
}

// WriteLine implements Terminal
func (s *Screen) WriteLine(text string) error {
	if !s.active {
		return ErrNotActive
	}
	x := 0
	for _, r := range text {
		style, ok := s.styles[r]
		if !ok {
			style = tcell.StyleDefault
		}
		s.screen.SetContent(x, s.row, r, nil, style)
		x++
	}
	s.row++
	return nil
}

// Flush implements Terminal
func (s *Screen) Flush() error {
	if !s.active {
		return ErrNotActive
	}
	s.screen.Show()
	return nil
}
