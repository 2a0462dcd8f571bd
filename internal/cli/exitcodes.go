package cli

import (
	"errors"
	"fmt"
)

// Exit codes for rescript.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitIncomplete indicates residual text remained (check, or apply --strict).
	ExitIncomplete = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a bad config file, mapping file or range.
	ExitConfigError = 65

	// ExitInternalError indicates an unclassified failure.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrIncomplete signals residual text for the exit code. It is not a failure
// and is not logged as one.
var ErrIncomplete = errors.New("residual text remains")

// ExitError attaches an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

func usageError(err error) error {
	return withExitCode(ExitInvalidUsage, err)
}

func usageErrorf(format string, args ...any) error {
	return usageError(fmt.Errorf(format, args...))
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, ErrIncomplete) {
		return ExitIncomplete
	}
	return ExitInternalError
}
