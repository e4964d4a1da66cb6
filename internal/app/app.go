package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

// ErrQuit is returned by Run and Feed when the exit instruction is
// dispatched. It is not a failure.
var ErrQuit = errors.New("quit requested")

// Driver carries out resolved commands.
type Driver interface {
	Apply(c command.Command) error
}

// Source produces key events. The channel is closed when input ends.
type Source interface {
	Keys(ctx context.Context) <-chan key.Key
}

// Options configures an App.
type Options struct {
	// Logger receives dispatch logs. Defaults to NullLogger.
	Logger *Logger
	// Driver receives completed commands. Defaults to a Recorder.
	Driver Driver
	// Source provides keys for Run.
	Source Source
	// Bindings are applied on top of the default table.
	Bindings []config.ResolvedBinding
}

// App dispatches keys to commands.
type App struct {
	logger  *Logger
	session uuid.UUID

	modes  *mode.Manager
	prompt *mode.Prompt
	driver Driver
	source Source

	rebind chan []config.ResolvedBinding
}

// New creates an App in the standard mode.
func New(opts Options) (*App, error) {
	session := uuid.New()

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	logger = logger.WithField("session", session)

	driver := opts.Driver
	if driver == nil {
		driver = &Recorder{}
	}

	a := &App{
		logger:  logger,
		session: session,
		modes:   mode.NewManager(),
		prompt:  mode.NewPrompt(),
		driver:  driver,
		source:  opts.Source,
		rebind:  make(chan []config.ResolvedBinding, 1),
	}

	std, err := newStandard(opts.Bindings)
	if err != nil {
		return nil, err
	}
	a.modes.Register(std)
	a.modes.Register(a.prompt)
	if err := a.modes.SetInitialMode(mode.ModeStandard); err != nil {
		return nil, err
	}

	a.modes.OnChange(func(from, to mode.Mode) {
		a.logger.Debug("mode %s -> %s", modeName(from), modeName(to))
	})
	return a, nil
}

// newStandard builds a standard mode with bs applied in order.
func newStandard(bs []config.ResolvedBinding) (*mode.Standard, error) {
	std := mode.NewStandard()
	for _, b := range bs {
		if err := std.Bind(b.Keys, b.Command); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", key.FormatSequence(b.Keys), b.Action, err)
		}
	}
	return std, nil
}

func modeName(m mode.Mode) string {
	if m == nil {
		return "none"
	}
	return m.Name()
}

// Session returns the id attached to every log line of this App.
func (a *App) Session() uuid.UUID {
	return a.session
}

// Modes returns the mode manager.
func (a *App) Modes() *mode.Manager {
	return a.modes
}

// Logger returns the App's logger.
func (a *App) Logger() *Logger {
	return a.logger
}

// Rebind replaces the user bindings. The request is applied before the
// next key is dispatched; a newer request supersedes one not yet applied.
func (a *App) Rebind(bs []config.ResolvedBinding) {
	for {
		select {
		case a.rebind <- bs:
			return
		default:
			select {
			case <-a.rebind:
			default:
			}
		}
	}
}

// applyRebind swaps in a fresh standard mode carrying bs.
// Any chord in progress is abandoned and an open overlay is closed.
func (a *App) applyRebind(bs []config.ResolvedBinding) {
	std, err := newStandard(bs)
	if err != nil {
		a.logger.Error("rebind failed: %v", err)
		return
	}

	for a.modes.StackDepth() > 0 {
		if err := a.modes.Pop(); err != nil {
			break
		}
	}

	onStandard := a.modes.IsMode(mode.ModeStandard)
	if old, ok := a.modes.Get(mode.ModeStandard).(mode.Resetter); ok {
		old.Reset()
	}
	a.modes.Register(std)
	if onStandard {
		_ = a.modes.SetInitialMode(mode.ModeStandard)
	}
	a.logger.Info("bindings reloaded (%d user bindings)", len(bs))
}

// drainRebind applies a pending rebind request, if any.
func (a *App) drainRebind() {
	select {
	case bs := <-a.rebind:
		a.applyRebind(bs)
	default:
	}
}

// Run dispatches keys from the Source until ctx is done, the Source
// closes or the exit instruction is dispatched. Input ending returns nil;
// exit returns ErrQuit; cancellation returns ctx.Err().
func (a *App) Run(ctx context.Context) error {
	if a.source == nil {
		return errors.New("app: no key source")
	}

	a.logger.Info("started in %s mode", a.modes.CurrentName())
	keys := a.source.Keys(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case bs := <-a.rebind:
			a.applyRebind(bs)

		case k, ok := <-keys:
			if !ok {
				a.logger.Info("input closed")
				return nil
			}
			if _, err := a.dispatch(k); err != nil {
				if errors.Is(err, ErrQuit) {
					a.logger.Info("exit requested")
				}
				return err
			}
		}
	}
}

// Feed dispatches keys synchronously and returns one event per key.
// It stops early with ErrQuit after the exit instruction. Feed must not
// be called while Run is active.
func (a *App) Feed(keys ...key.Key) ([]command.BuilderEvent, error) {
	events := make([]command.BuilderEvent, 0, len(keys))
	for _, k := range keys {
		a.drainRebind()
		ev, err := a.dispatch(k)
		events = append(events, ev)
		if err != nil {
			return events, err
		}
	}
	return events, nil
}

// pender is implemented by modes that can hold a partial chord.
type pender interface {
	Pending() bool
}

// dispatch resolves k and applies a completed command.
// Driver errors are logged, not returned; only ErrQuit is.
func (a *App) dispatch(k key.Key) (command.BuilderEvent, error) {
	current := a.modes.Current()
	wasPending := false
	if p, ok := current.(pender); ok {
		wasPending = p.Pending()
	}

	a.logger.Debug("key %s", k)
	ev := a.modes.HandleKeyEvent(k)

	if !ev.IsComplete() {
		if p, ok := current.(pender); ok && wasPending && !p.Pending() {
			a.logger.Debug("chord dropped at %s", k)
		}
		return ev, nil
	}

	c := ev.Command
	a.logger.Info("command %s", c)
	if err := a.driver.Apply(c); err != nil {
		a.logger.Error("applying %s: %v", c, err)
	}
	if c.IsExit() {
		return ev, ErrQuit
	}
	if i, ok := c.Action.(command.Instruction); ok && i.Kind == command.InstrSetOverlay {
		a.setOverlay(i.Overlay)
	}
	return ev, nil
}

// setOverlay opens the prompt for o, or closes it for OverlayNone.
func (a *App) setOverlay(o command.OverlayType) {
	if o == command.OverlayNone {
		if !a.modes.IsMode(mode.ModePrompt) {
			return
		}
		if line := a.prompt.Input(); line != "" {
			a.logger.Info("prompt %s: %q", a.prompt.Overlay(), line)
		}
		if err := a.modes.Pop(); err != nil {
			a.logger.Error("closing prompt: %v", err)
		}
		return
	}

	a.prompt.Open(o)
	if a.modes.IsMode(mode.ModePrompt) {
		return
	}
	if err := a.modes.Push(mode.ModePrompt); err != nil {
		a.logger.Error("opening prompt: %v", err)
	}
}
