// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	oerrors "github.com/pubforge/cli/internal/errors"
)

// Exit codes for the create command. Validate always exits with
// ExitSuccess; its findings are data, not failures.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigurationError indicates invalid user input: a bad
	// project name, an unknown kind, or an unknown platform tag.
	ExitConfigurationError = 2

	// ExitAlreadyExists indicates the destination holds content and
	// --force was not given.
	ExitAlreadyExists = 3

	// ExitIOError indicates a filesystem operation failed.
	ExitIOError = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigurationError:
		return "Configuration Error"
	case ExitAlreadyExists:
		return "Already Exists"
	case ExitIOError:
		return "I/O Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError maps an error chain to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, oerrors.ErrConfiguration):
		return ExitConfigurationError
	case errors.Is(err, oerrors.ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, oerrors.ErrIO):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

// wrapExit attaches the mapped exit code to err.
func wrapExit(err error) error {
	if err == nil {
		return nil
	}
	return oerrors.NewExitError(err, ExitCodeFromError(err))
}
