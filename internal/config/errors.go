package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates a config file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidLogLevel indicates an unknown logging level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidEnv indicates an environment variable with a malformed value.
	ErrInvalidEnv = errors.New("invalid environment value")

	// ErrInvalidBinding indicates a user binding that cannot be resolved.
	ErrInvalidBinding = errors.New("invalid binding")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// BindingError reports which user binding failed to resolve.
type BindingError struct {
	// Index is the position of the binding in the configured list.
	Index int
	// Keys is the binding's key sequence as written.
	Keys string
	// Err is the underlying parse or lookup error.
	Err error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %d (%q): %v", e.Index, e.Keys, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindingError) Unwrap() []error {
	return []error{ErrInvalidBinding, e.Err}
}
