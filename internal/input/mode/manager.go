package mode

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

// Manager errors.
var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrEmptyStack  = errors.New("mode stack is empty")
)

// Manager owns the registered modes and routes keys to the current one.
type Manager struct {
	mu sync.RWMutex

	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode.
	current Mode

	// modeStack allows pushing/popping modes (e.g., for a prompt overlay).
	modeStack []Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// NewManager creates a new mode manager.
func NewManager() *Manager {
	return &Manager{
		modes:     make(map[string]Mode),
		modeStack: make([]Mode, 0, 4),
	}
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modes[name]
}

// Current returns the current mode, or nil if no mode is set.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CurrentName returns the name of the current mode.
// Returns empty string if no mode is set.
func (m *Manager) CurrentName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// SetInitialMode sets the current mode without notifying callbacks.
func (m *Manager) SetInitialMode(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	m.current = mode
	return nil
}

// switchToLocked performs the mode switch (must hold lock).
// A chord in progress in the mode being left is abandoned.
// Returns the old mode and callbacks to notify.
func (m *Manager) switchToLocked(newMode Mode) (Mode, []ChangeCallback) {
	oldMode := m.current
	if r, ok := oldMode.(Resetter); ok && oldMode != newMode {
		r.Reset()
	}

	m.current = newMode

	// Copy callbacks to call outside of lock
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)

	return oldMode, callbacks
}

func notify(callbacks []ChangeCallback, from, to Mode) {
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// Push saves the current mode and switches to a new one.
// Use Pop to restore the previous mode.
func (m *Manager) Push(name string) error {
	m.mu.Lock()

	newMode, ok := m.modes[name]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}

	if m.current != nil {
		m.modeStack = append(m.modeStack, m.current)
	}

	oldMode, callbacks := m.switchToLocked(newMode)
	m.mu.Unlock()

	notify(callbacks, oldMode, newMode)
	return nil
}

// Pop restores the previously pushed mode.
func (m *Manager) Pop() error {
	m.mu.Lock()

	if len(m.modeStack) == 0 {
		m.mu.Unlock()
		return ErrEmptyStack
	}

	previousMode := m.modeStack[len(m.modeStack)-1]
	m.modeStack = m.modeStack[:len(m.modeStack)-1]

	oldMode, callbacks := m.switchToLocked(previousMode)
	m.mu.Unlock()

	notify(callbacks, oldMode, previousMode)
	return nil
}

// StackDepth returns the number of modes on the stack.
func (m *Manager) StackDepth() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.modeStack)
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// Modes returns the names of all registered modes, sorted.
func (m *Manager) Modes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.modes))
	for name := range m.modes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil && m.current.Name() == name
}

// HandleKeyEvent routes k to the current mode.
// With no current mode the key is consumed and nothing is dispatched.
func (m *Manager) HandleKeyEvent(k key.Key) command.BuilderEvent {
	current := m.Current()
	if current == nil {
		return command.Incomplete()
	}
	return current.HandleKeyEvent(k)
}
