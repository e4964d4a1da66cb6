package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

func newTestApp(t *testing.T, opts Options) (*App, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	if opts.Driver == nil {
		opts.Driver = rec
	}
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, rec
}

func resolve(t *testing.T, bs ...config.Binding) []config.ResolvedBinding {
	t.Helper()
	resolved, err := config.ResolveBindings(bs)
	if err != nil {
		t.Fatalf("ResolveBindings() error = %v", err)
	}
	return resolved
}

func TestNewStartsInStandardMode(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	if !a.Modes().IsMode(mode.ModeStandard) {
		t.Errorf("current mode = %q, want standard", a.Modes().CurrentName())
	}
	if a.Session().String() == "" {
		t.Error("Session() is empty")
	}
}

func TestFeed(t *testing.T) {
	a, rec := newTestApp(t, Options{})

	events, err := a.Feed(key.Char('h'), key.Ctrl('x'), key.Ctrl('s'), key.Backspace)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}

	wantKinds := []command.EventKind{
		command.EventComplete, command.EventIncomplete, command.EventComplete, command.EventComplete,
	}
	for i, ev := range events {
		if ev.Kind != wantKinds[i] {
			t.Errorf("event %d = %v, want kind %v", i, ev, wantKinds[i])
		}
	}

	want := []command.Command{
		command.InsertChar('h'),
		command.Save(),
		command.DeleteChar(command.Backward(1, command.Cursor(0))),
	}
	got := rec.Commands()
	if len(got) != len(want) {
		t.Fatalf("applied %d commands, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFeedStopsOnExit(t *testing.T) {
	a, rec := newTestApp(t, Options{})

	events, err := a.Feed(key.Char('a'), key.Ctrl('q'), key.Char('b'))
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Feed() error = %v, want ErrQuit", err)
	}
	if len(events) != 2 {
		t.Errorf("Feed() returned %d events, want 2", len(events))
	}
	if cmds := rec.Commands(); len(cmds) != 2 || !cmds[1].IsExit() {
		t.Errorf("applied = %v, want insert then exit", cmds)
	}
}

func TestUserBindings(t *testing.T) {
	a, rec := newTestApp(t, Options{
		Bindings: resolve(t,
			config.Binding{Keys: "C-s", Action: "history.undo"},
			config.Binding{Keys: "C-x C-z", Action: "history.redo"},
		),
	})

	if _, err := a.Feed(key.Ctrl('s'), key.Ctrl('x'), key.Ctrl('z')); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	got := rec.Commands()
	if len(got) != 2 || !got[0].Equal(command.UndoCmd()) || !got[1].Equal(command.RedoCmd()) {
		t.Errorf("applied = %v, want undo then redo", got)
	}
}

func TestNewRejectsEmptyBinding(t *testing.T) {
	_, err := New(Options{Bindings: []config.ResolvedBinding{{Action: "editor.save", Command: command.Save()}}})
	if err == nil {
		t.Error("New() with empty key sequence should fail")
	}
}

func TestRebind(t *testing.T) {
	a, rec := newTestApp(t, Options{
		Bindings: resolve(t, config.Binding{Keys: "C-t", Action: "history.undo"}),
	})

	// Leave a chord pending; rebinding abandons it.
	if _, err := a.Feed(key.Ctrl('x')); err != nil {
		t.Fatal(err)
	}

	a.Rebind(resolve(t, config.Binding{Keys: "C-o", Action: "history.redo"}))
	a.Rebind(resolve(t, config.Binding{Keys: "C-t", Action: "editor.save"}))

	events, err := a.Feed(key.Ctrl('s'), key.Ctrl('t'))
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if !events[0].IsComplete() || !events[0].Command.Equal(command.Save()) {
		t.Errorf("C-s after rebind = %v, want save (chord abandoned)", events[0])
	}
	if !events[1].Command.Equal(command.Save()) {
		t.Errorf("C-t = %v, want latest binding", events[1])
	}

	// The superseded request never applied.
	if _, err := a.Feed(key.Ctrl('o')); err != nil {
		t.Fatal(err)
	}
	if n := len(rec.Commands()); n != 2 {
		t.Errorf("applied %d commands, want 2", n)
	}
}

func TestOverlayOpensPrompt(t *testing.T) {
	var buf bytes.Buffer
	a, rec := newTestApp(t, Options{
		Logger: NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf}),
	})

	keys := []key.Key{key.Ctrl('x'), key.Ctrl('f')}
	for _, r := range "main.go" {
		keys = append(keys, key.Char(r))
	}
	if _, err := a.Feed(keys...); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if !a.Modes().IsMode(mode.ModePrompt) {
		t.Fatalf("mode after C-x C-f = %q, want prompt", a.Modes().CurrentName())
	}

	if _, err := a.Feed(key.Enter); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if !a.Modes().IsMode(mode.ModeStandard) {
		t.Errorf("mode after Enter = %q, want standard", a.Modes().CurrentName())
	}

	want := []command.Command{
		command.Overlay(command.OverlaySelectFile),
		command.Overlay(command.OverlayNone),
	}
	got := rec.Commands()
	if len(got) != len(want) {
		t.Fatalf("applied %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}

	out := buf.String()
	for _, s := range []string{"mode standard -> prompt", `prompt SelectFile: "main.go"`, "mode prompt -> standard"} {
		if !strings.Contains(out, s) {
			t.Errorf("log missing %q:\n%s", s, out)
		}
	}
}

func TestOverlayEscapeReturnsToStandard(t *testing.T) {
	a, _ := newTestApp(t, Options{
		Bindings: resolve(t, config.Binding{Keys: "C-t", Action: "overlay.commandPrompt"}),
	})

	events, err := a.Feed(key.Ctrl('t'), key.Char('a'), key.Escape, key.Char('b'))
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if !events[3].Command.Equal(command.InsertChar('b')) {
		t.Errorf("b after Escape = %v, want insert", events[3])
	}
	if a.Modes().StackDepth() != 0 {
		t.Errorf("StackDepth() = %d, want 0", a.Modes().StackDepth())
	}
}

func TestRebindClosesPrompt(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	if _, err := a.Feed(key.Ctrl('x'), key.Ctrl('f')); err != nil {
		t.Fatal(err)
	}
	a.Rebind(resolve(t, config.Binding{Keys: "C-t", Action: "editor.save"}))

	events, err := a.Feed(key.Ctrl('t'))
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if !a.Modes().IsMode(mode.ModeStandard) {
		t.Errorf("mode after rebind = %q, want standard", a.Modes().CurrentName())
	}
	if !events[0].Command.Equal(command.Save()) {
		t.Errorf("C-t = %v, want save from new bindings", events[0])
	}
}

func TestRunUntilInputEnds(t *testing.T) {
	a, rec := newTestApp(t, Options{
		Source: SliceSource{key.Char('o'), key.Char('k'), key.Up},
	})

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := len(rec.Commands()); n != 3 {
		t.Errorf("applied %d commands, want 3", n)
	}
}

func TestRunQuits(t *testing.T) {
	a, rec := newTestApp(t, Options{
		Source: SliceSource{key.Char('a'), key.Ctrl('x'), key.Ctrl('c'), key.Char('z')},
	})

	err := a.Run(context.Background())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	cmds := rec.Commands()
	if len(cmds) != 2 || !cmds[1].IsExit() {
		t.Errorf("applied = %v, want insert then exit", cmds)
	}
}

// blockingSource never sends a key.
type blockingSource struct{}

func (blockingSource) Keys(ctx context.Context) <-chan key.Key {
	return make(chan key.Key)
}

func TestRunCancel(t *testing.T) {
	a, _ := newTestApp(t, Options{Source: blockingSource{}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
}

func TestRunNoSource(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	if err := a.Run(context.Background()); err == nil {
		t.Error("Run() without a source should fail")
	}
}

type failingDriver struct{ calls int }

func (d *failingDriver) Apply(command.Command) error {
	d.calls++
	return errors.New("buffer is read-only")
}

func TestDriverErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	drv := &failingDriver{}
	a, _ := newTestApp(t, Options{
		Driver: drv,
		Logger: NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf}),
	})

	if _, err := a.Feed(key.Char('a'), key.Char('b')); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if drv.calls != 2 {
		t.Errorf("driver calls = %d, want 2", drv.calls)
	}
	if !strings.Contains(buf.String(), "buffer is read-only") {
		t.Errorf("log = %q, want driver error", buf.String())
	}
}

func TestDispatchLogging(t *testing.T) {
	var buf bytes.Buffer
	a, _ := newTestApp(t, Options{
		Logger: NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf}),
	})

	if _, err := a.Feed(key.Ctrl('x'), key.Char('q'), key.Ctrl('s')); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"key C-x",
		"chord dropped at q",
		"command 1 SaveBuffer",
		"session=" + a.Session().String(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestRecorderReset(t *testing.T) {
	rec := &Recorder{}
	_ = rec.Apply(command.Save())
	rec.Reset()
	if len(rec.Commands()) != 0 {
		t.Errorf("Commands() = %v after Reset", rec.Commands())
	}
}

func TestSliceSourceCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	keys := SliceSource{key.Char('a'), key.Char('b')}.Keys(ctx)

	<-keys
	cancel()

	select {
	case <-keys:
	case <-time.After(time.Second):
		t.Fatal("SliceSource did not stop after cancel")
	}
}
