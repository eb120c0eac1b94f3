package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown log format")

// ParseFormat maps a --log-format value to a Format. Matching ignores case;
// the empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (valid: text, json)", s)
	}
}

// Options configures New.
type Options struct {
	Level  slog.Level
	Format Format
	// Output receives formatted records. Nil means os.Stderr.
	Output io.Writer
	// File, when set, also receives every record as JSON.
	File io.Writer
}

// New builds a logger from opts. With a File the records fan out through
// a MultiHandler.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: opts.Level}

	var primary slog.Handler = NewHandler(out, ho)
	if opts.Format == FormatJSON {
		primary = slog.NewJSONHandler(out, ho)
	}
	if opts.File == nil {
		return slog.New(primary)
	}
	return slog.New(NewMultiHandler(primary, slog.NewJSONHandler(opts.File, ho)))
}

// ForTest returns a logger that writes to t.Log at trace level, so output
// shows only for failing tests or under -v.
func ForTest(t testing.TB) *slog.Logger {
	t.Helper()
	return New(Options{Level: LevelTrace, Output: testWriter{t}})
}

type testWriter struct{ t testing.TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
