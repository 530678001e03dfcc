package cli

import (
	"errors"

	"github.com/yaklabco/htmltomd/pkg/runner"
)

// Exit codes for htmltomd.
const (
	// ExitSuccess indicates every file converted without error.
	ExitSuccess = 0

	// ExitConvertErrors indicates the run completed but one or more
	// files failed to convert.
	ExitConvertErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors outside of conversion itself.
	ExitIOError = 74
)

// ErrConvertErrors signals that a convert run completed but left one or
// more files unconverted. Its message is generic; the reporter has
// already written the per-file detail.
var ErrConvertErrors = errors.New("conversion completed with errors for one or more files")

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitConvertErrors
	}
	return ExitSuccess
}

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrConvertErrors) {
		return ExitConvertErrors
	}
	return ExitInternalError
}
