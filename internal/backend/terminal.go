package backend

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

// Status bar styles.
var (
	statusStyle = tcell.StyleDefault.
			Background(tcell.ColorGray).
			Foreground(tcell.ColorWhite)
	modeStyle = statusStyle.Bold(true)
)

// Terminal reads keys from a tcell screen and shows resolved commands on a
// status bar.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	mode    string
	message string
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.Clear()
	t.drawStatusLocked()
	return nil
}

// Shutdown restores the terminal. Pending Keys calls see a closed channel.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Keys delivers converted key events until ctx is done or the screen is
// shut down. Events with no key.Key form are skipped.
func (t *Terminal) Keys(ctx context.Context) <-chan key.Key {
	out := make(chan key.Key)

	// PollEvent blocks; an interrupt wakes it when ctx ends.
	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	go func() {
		defer close(out)
		defer stop()

		for {
			ev := t.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}

			switch e := ev.(type) {
			case *tcell.EventKey:
				k, ok := ConvertKey(e)
				if !ok {
					continue
				}
				select {
				case out <- k:
				case <-ctx.Done():
					return
				}
			case *tcell.EventResize:
				t.mu.Lock()
				t.screen.Sync()
				t.drawStatusLocked()
				t.mu.Unlock()
			}
		}
	}()

	return out
}

// SetMode sets the mode name shown at the left of the status bar.
func (t *Terminal) SetMode(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = name
	t.drawStatusLocked()
}

// ShowMessage replaces the status bar message.
func (t *Terminal) ShowMessage(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = msg
	t.drawStatusLocked()
}

// Apply shows c on the status bar, by action name when it has one.
func (t *Terminal) Apply(c command.Command) error {
	msg := command.Name(c)
	if msg == "" {
		msg = c.String()
	}
	t.ShowMessage(msg)
	return nil
}

// Status returns the mode and message currently displayed.
func (t *Terminal) Status() (mode, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode, t.message
}

// drawStatusLocked draws the bottom line (must hold lock).
func (t *Terminal) drawStatusLocked() {
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1

	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	x := 0
	if t.mode != "" {
		x = putString(t.screen, x, y, width, " "+t.mode+" ", modeStyle)
	}
	putString(t.screen, x, y, width, " "+t.message, statusStyle)

	t.screen.Show()
}

// putString draws s from column x, clipped at width, and returns the
// column after the last rune.
func putString(s tcell.Screen, x, y, width int, str string, style tcell.Style) int {
	for _, r := range str {
		if x >= width {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
