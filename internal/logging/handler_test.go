package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Line(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	at := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	r := slog.NewRecord(at, slog.LevelInfo, "installed", 0)
	r.AddAttrs(slog.String("runtime", "node"), slog.String("version", "v20.11.0"))
	require.NoError(t, h.Handle(t.Context(), r))

	assert.Equal(t, "14:05:09 INFO  installed runtime=node version=v20.11.0\n", buf.String())
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	require.NoError(t, h.Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelWarn, "no time", 0)))
	assert.Equal(t, "WARN  no time\n", buf.String())
}

func TestHandler_Enabled(t *testing.T) {
	tests := []struct {
		name  string
		opts  *slog.HandlerOptions
		level slog.Level
		want  bool
	}{
		{"nil options default to info", nil, slog.LevelInfo, true},
		{"nil options drop debug", nil, slog.LevelDebug, false},
		{"warn drops info", &slog.HandlerOptions{Level: slog.LevelWarn}, slog.LevelInfo, false},
		{"warn keeps error", &slog.HandlerOptions{Level: slog.LevelWarn}, slog.LevelError, true},
		{"trace keeps trace", &slog.HandlerOptions{Level: LevelTrace}, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&bytes.Buffer{}, tt.opts)
			assert.Equal(t, tt.want, h.Enabled(t.Context(), tt.level))
		})
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(NewHandler(&buf, nil))
	logger := base.With("runtime", "go")

	logger.Info("message", "version", "1.22.0")
	base.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "runtime=go version=1.22.0")
	assert.NotContains(t, lines[1], "runtime=")
}

func TestHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("install").With("runtime", "node")

	logger.Info("committed", slog.Group("dl", "bytes", 42), "attempt", 1)

	out := buf.String()
	assert.Contains(t, out, "install.runtime=node")
	assert.Contains(t, out, "install.dl.bytes=42")
	assert.Contains(t, out, "install.attempt=1")
}

func TestHandler_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("sensitive", "github_token", "secret12345", "Authorization", "Bearer abcdefgh", "url", "ghp_secrettoken")

	out := buf.String()
	assert.NotContains(t, out, "secret12345")
	assert.NotContains(t, out, "ghp_secrettoken")
	assert.Contains(t, out, "github_token=****2345")
	assert.Contains(t, out, "Authorization=****efgh")
	assert.Contains(t, out, "url=****oken")
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "entry", "name", "bin/node")

	assert.Contains(t, buf.String(), "TRACE entry name=bin/node")
}

func TestHandler_ConcurrentLines(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() { logger.Info("line", "n", i) })
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
	for _, l := range lines {
		assert.Contains(t, l, "INFO  line n=")
	}
}
