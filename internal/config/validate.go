package config

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/mlvm/internal/errors"
)

var (
	// ErrVersionTooLow indicates the version field is below 1.
	ErrVersionTooLow = errors.New("version must be >= 1")
	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
	// ErrOutOfRange indicates a numeric or duration value is out of range.
	ErrOutOfRange = errors.New("value out of range")
)

// FieldError reports the key and offending value of a rejected setting.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

type check struct {
	field string
	bad   bool
	value any
	err   error
}

// Validate returns every problem found in cfg, or nil.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	checks := []check{
		{"home", !validPath(cfg.Home), cfg.Home, ErrInvalidPath},
		{"download.timeout", cfg.Download.Timeout < 0, cfg.Download.Timeout, ErrOutOfRange},
		{"download.max_bytes", cfg.Download.MaxBytes <= 0, cfg.Download.MaxBytes, ErrOutOfRange},
		{"install.rename_attempts", cfg.Install.RenameAttempts < 1, cfg.Install.RenameAttempts, ErrOutOfRange},
		{"install.rename_backoff", cfg.Install.RenameBackoff < 0, cfg.Install.RenameBackoff, ErrOutOfRange},
	}

	var errs []error
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}
	for _, c := range checks {
		if c.bad {
			errs = append(errs, &FieldError{Field: c.field, Value: fmt.Sprint(c.value), Err: c.err})
		}
	}
	return errs
}

// validPath accepts the empty string (use the default) and any path
// without NUL bytes. Existence is not checked.
func validPath(p string) bool {
	return !strings.ContainsRune(p, '\x00')
}
