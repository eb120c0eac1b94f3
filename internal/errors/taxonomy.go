package errors

import (
	"fmt"
	"strings"
)

// ResolutionError reports that no release or asset matches a version on
// the detected platform.
type ResolutionError struct {
	Runtime  string
	Version  string
	Platform string
	Reason   string
	Err      error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("%s %s: no release for %s", e.Runtime, e.Version, e.Platform)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DownloadError reports a failed transfer of a release payload.
type DownloadError struct {
	Runtime  string
	Version  string
	Platform string
	URL      string
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s %s (%s) from %s: %v", e.Runtime, e.Version, e.Platform, e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// FormatError reports an unrecognized or corrupt archive.
type FormatError struct {
	Kind string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("invalid archive: %v", e.Err)
	}
	return fmt.Sprintf("invalid %s archive: %v", e.Kind, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// LayoutError reports that an extracted payload lacks its expected
// top-level directory.
type LayoutError struct {
	Runtime  string
	Version  string
	Expected string
	Found    []string
}

func (e *LayoutError) Error() string {
	found := "nothing"
	if len(e.Found) > 0 {
		found = strings.Join(e.Found, ", ")
	}
	return fmt.Sprintf("%s %s: archive has no top-level %q (found %s)", e.Runtime, e.Version, e.Expected, found)
}

// RelocationError reports that moving the extracted payload into its final
// slot failed after every retry.
type RelocationError struct {
	Runtime  string
	Version  string
	From     string
	To       string
	Attempts int
	Err      error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("%s %s: moving %s to %s failed after %d attempts: %v",
		e.Runtime, e.Version, e.From, e.To, e.Attempts, e.Err)
}

func (e *RelocationError) Unwrap() error { return e.Err }

// NotInstalledError reports that an activation target does not exist.
type NotInstalledError struct {
	Runtime string
	Version string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("%s %s is not installed", e.Runtime, e.Version)
}

// PermissionError reports that the operating system refused to create the
// current link.
type PermissionError struct {
	Runtime     string
	Version     string
	Link        string
	Remediation string
	Err         error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s %s: creating link %s: permission denied: %v", e.Runtime, e.Version, e.Link, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// Classify maps err to an ExitError carrying the exit code and suggestion
// for its taxonomy type. Errors that already carry an ExitError are
// returned unchanged. Unknown errors are system errors.
func Classify(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr
	}

	var (
		resErr  *ResolutionError
		nieErr  *NotInstalledError
		dlErr   *DownloadError
		fmtErr  *FormatError
		layErr  *LayoutError
		relErr  *RelocationError
		permErr *PermissionError
	)

	switch {
	case As(err, &resErr):
		return NewUserError(err, fmt.Sprintf("Run: mlvm %s list-remote", resErr.Runtime))
	case As(err, &nieErr):
		return NewUserError(err, fmt.Sprintf("Run: mlvm %s install %s", nieErr.Runtime, nieErr.Version))
	case Is(err, ErrInvalidVersion):
		return NewUserError(err, "Versions look like 20.11.0 or 3.12; run: mlvm <runtime> list-remote")
	case Is(err, ErrUnknownRuntime), Is(err, ErrMissingVersion):
		return NewUserError(err, "Run: mlvm --help")
	case Is(err, ErrNoActiveVersion):
		return NewUserError(err, "Run: mlvm <runtime> use <version>")
	case Is(err, ErrInvalidConfig):
		return NewConfigError(err)
	case As(err, &dlErr):
		return NewSystemError(err, "Check your network connection and try again")
	case As(err, &fmtErr), As(err, &layErr):
		return NewSystemError(err, "The release archive looks damaged or has changed shape; retry or pick another version")
	case As(err, &relErr):
		return NewSystemError(err, "Close programs that may hold files under the mlvm home (antivirus, editors) and retry")
	case As(err, &permErr):
		return NewSystemError(err, permErr.Remediation)
	default:
		return NewExitError(err, ExitSystem)
	}
}
