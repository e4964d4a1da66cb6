package mode

import (
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

// Mode defines the interface for editor modes.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "standard").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// HandleKeyEvent consumes one key and reports what to dispatch.
	HandleKeyEvent(k key.Key) command.BuilderEvent
}

// Resetter is implemented by modes that keep partial input between keys.
// The Manager resets a mode when switching away from it.
type Resetter interface {
	Reset()
}

// Mode names.
const (
	ModeStandard = "standard"
	ModePrompt   = "prompt"
)
