package commands

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
)

// execute runs the root command with args against a fresh config and
// returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	configFile = ""
	t.Chdir(t.TempDir())
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-4))
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"MLVM_DEBUG=1", "1", slog.LevelDebug},
		{"MLVM_DEBUG=true", "true", slog.LevelDebug},
		{"MLVM_DEBUG=2", "2", logging.LevelTrace},
		{"MLVM_DEBUG=0", "0", slog.LevelWarn},
		{"MLVM_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("MLVM_DEBUG", tt.envVal)

			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel == slog.LevelDebug {
				assert.False(t, logger.Enabled(t.Context(), logging.LevelTrace))
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity, quiet = 1, true
	err := setupLogging(rootCmd)

	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, errors.ExitUser, exitErr.Code)
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet := quiet
	defer func() { quiet = origQuiet }()

	quiet = true
	require.NoError(t, setupLogging(rootCmd))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))
}

func TestCheckConfig(t *testing.T) {
	origErr := configLoadErr
	defer func() { configLoadErr = origErr }()

	configLoadErr = errors.Mark(errors.New("version must be >= 1"), errors.ErrInvalidConfig)

	assert.NoError(t, checkConfig(versionCmd))
	assert.NoError(t, checkConfig(configSetCmd))

	err := checkConfig(rootCmd)
	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Equal(t, "Run: mlvm config list", exitErr.Suggestion)
}

func TestRootCmd_RuntimeGroups(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"bun", "go", "node", "python", "config", "version"} {
		assert.Contains(t, names, want)
	}

	nodeCmd, _, err := rootCmd.Find([]string{"node"})
	require.NoError(t, err)
	var subs []string
	for _, c := range nodeCmd.Commands() {
		subs = append(subs, c.Name())
	}
	assert.ElementsMatch(t, []string{"install", "use", "list", "list-remote", "current"}, subs)
}

func TestExecute_InvalidConfig(t *testing.T) {
	t.Setenv("MLVM_HOME", t.TempDir())
	t.Setenv("MLVM_INSTALL_RENAME_ATTEMPTS", "0")

	_, err := execute(t, "node", "list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Equal(t, errors.ExitUser, errors.Classify(err).Code)
}

func TestSetupLogging_UnknownFormat(t *testing.T) {
	origFormat := logFormat
	defer func() { logFormat = origFormat }()

	logFormat = "yaml"
	err := setupLogging(rootCmd)
	require.ErrorIs(t, err, logging.ErrUnknownFormat)
	assert.Equal(t, errors.ExitUser, errors.Classify(err).Code)
}
