package mode

import (
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

// Standard is the default, non-modal editing mode.
//
// Plain characters are inserted; control chords and named keys go through
// the mode's keymap. Standard is used on its own rather than alongside
// vi-style modes.
type Standard struct {
	keymap *keymap.KeyMap[command.Command]

	// matchInProgress is set while a multi-key chord is being typed.
	matchInProgress bool
}

// NewStandard creates a standard mode with the default bindings.
func NewStandard() *Standard {
	return &Standard{
		keymap: standardDefaults(),
	}
}

// Name returns the mode identifier.
func (m *Standard) Name() string {
	return ModeStandard
}

// DisplayName returns the human-readable mode name.
func (m *Standard) DisplayName() string {
	return "STANDARD"
}

// HandleKeyEvent resolves k against the keymap. With no chord in progress,
// plain characters are inserted as text without consulting the keymap.
func (m *Standard) HandleKeyEvent(k key.Key) command.BuilderEvent {
	if m.matchInProgress {
		return m.checkKey(k)
	}

	if k.IsChar() {
		return command.Complete(command.InsertChar(k.Rune))
	}
	return m.checkKey(k)
}

// checkKey feeds k to the keymap.
//
// A partial match sets matchInProgress so the next key is checked against
// the keymap too, even if it is a plain character. This allows chords
// like C-x s as well as C-x C-s. A failed chord is swallowed.
func (m *Standard) checkKey(k key.Key) command.BuilderEvent {
	c, state := m.keymap.CheckKey(k)
	switch state {
	case keymap.Match:
		m.matchInProgress = false
		return command.Complete(c)
	case keymap.Continue:
		m.matchInProgress = true
		return command.Incomplete()
	default:
		m.matchInProgress = false
		return command.Incomplete()
	}
}

// Pending returns true while a chord is in progress.
func (m *Standard) Pending() bool {
	return m.matchInProgress
}

// Reset abandons a chord in progress.
func (m *Standard) Reset() {
	m.keymap.Reset()
	m.matchInProgress = false
}

// Bind binds seq to c, replacing any earlier binding of the same sequence.
// Binding abandons a chord in progress.
func (m *Standard) Bind(seq []key.Key, c command.Command) error {
	if err := m.keymap.Bind(seq, c); err != nil {
		return err
	}
	m.matchInProgress = false
	return nil
}

// Bindings calls fn for every bound sequence in a deterministic order.
func (m *Standard) Bindings(fn func(seq []key.Key, c command.Command)) {
	m.keymap.Walk(fn)
}

// Lookup returns the command bound to exactly seq.
func (m *Standard) Lookup(seq []key.Key) (command.Command, bool) {
	return m.keymap.Lookup(seq)
}
