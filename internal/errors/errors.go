package errors

import "fmt"

// Process exit codes.
const (
	ExitSuccess = 0
	ExitUser    = 1 // bad input, unknown version, nothing installed
	ExitSystem  = 2 // network, archive, filesystem, permissions
)

var (
	// ErrUnknownRuntime indicates the requested runtime has no adapter.
	ErrUnknownRuntime = New("unknown runtime")
	// ErrInvalidConfig marks configuration validation failures.
	ErrInvalidConfig = New("invalid configuration")
	// ErrMissingVersion indicates a version argument was required but absent.
	ErrMissingVersion = New("version is required")
	// ErrInvalidVersion indicates a version that cannot name a directory
	// of a runtime root.
	ErrInvalidVersion = New("invalid version")
	// ErrNoActiveVersion indicates a runtime has no current pointer.
	ErrNoActiveVersion = New("no active version")
)

// ExitError carries the exit code and an optional next step for the user
// out of a command. Err may be nil when there is nothing to wrap.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError wraps err with code and no suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError wraps err with ExitUser.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError wraps err with ExitSystem.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError is a user error pointing at mlvm config list.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: mlvm config list")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
