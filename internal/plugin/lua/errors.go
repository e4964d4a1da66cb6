package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrScript wraps errors raised while running a script.
	ErrScript = errors.New("lua script error")
)
