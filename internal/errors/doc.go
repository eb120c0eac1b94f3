// Package errors provides error handling conventions for the mlvm CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors so
// that callers only import one errors package. It also defines the
// install and activation failure taxonomy, an ExitError type for CLI exit code
// handling, and exit code constants following standard Unix conventions.
//
// # Taxonomy
//
// Every failure of the install and activation paths is one of the typed
// errors in taxonomy.go. Callers match them with [As]:
//
//	var nie *errors.NotInstalledError
//	if errors.As(err, &nie) {
//	    fmt.Printf("run: mlvm %s install %s\n", nie.Runtime, nie.Version)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown version, not installed, bad input)
//   - ExitSystem (2): System-related error (network, archive, filesystem, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. [Classify] maps taxonomy errors to an ExitError at the CLI
// boundary:
//
//	var exitErr *errors.ExitError
//	if errors.As(errors.Classify(err), &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
