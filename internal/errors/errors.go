// Package errors provides sentinel errors for the pubforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfiguration indicates invalid user input: a bad project name,
	// an unknown kind, or an unknown platform tag.
	ErrConfiguration = errors.New("configuration error")

	// ErrAlreadyExists indicates the destination already holds content
	// and --force was not given.
	ErrAlreadyExists = errors.New("already exists")

	// ErrIO indicates a filesystem operation failed.
	ErrIO = errors.New("i/o error")

	// ErrParse indicates a pubspec could not be read as key/value structure.
	ErrParse = errors.New("parse error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path or value (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a configuration error with details.
func NewConfigurationError(message, location, hint string) error {
	return &DetailError{
		Type:     "invalid configuration",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfiguration,
	}
}

// NewAlreadyExistsError creates an already-exists error with details.
func NewAlreadyExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrAlreadyExists,
	}
}

// NewIOError creates an I/O error with details.
func NewIOError(message, location string, cause error) error {
	return &DetailError{
		Type:     "i/o failure",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
