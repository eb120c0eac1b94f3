// Package commands implements the CLI commands for mlvm.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlvm/cmd"
	"github.com/thoreinstein/mlvm/internal/config"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
)

// Global flags.
var (
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string
)

// Set before any command runs. A load failure is kept
// rather than returned so config subcommands can still repair the file.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

// debugLevels maps MLVM_DEBUG values to a verbosity count.
var debugLevels = map[string]int{
	"1":    2,
	"true": 2,
	"2":    3,
}

var rootCmd = &cobra.Command{
	Use:   "mlvm",
	Short: "Version manager for Node.js, Python, Go and Bun",
	Long: `mlvm installs and switches between versions of several language
runtimes from one tool.

Every version is unpacked into its own directory under ~/.mlvm/<runtime>/.
A "current" link in each runtime directory names the active version; put
~/.mlvm/<runtime>/current (or its bin directory) on your PATH once and
"mlvm <runtime> use" switches versions from then on.`,
	Example: `  # Install and activate Node.js 20
  mlvm node install 20.11.0
  mlvm node use 20.11.0

  # Python accepts a minor version and picks the latest patch
  mlvm python install 3.12

  # See what is available
  mlvm go list-remote --limit 10

  See Also: mlvm config, mlvm version`,
	Version:       cmd.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(func() {
		config.Init()
		loadedConfig, configLoadErr = config.Load(configFile)
	})

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v info, -vv debug, -vvv trace)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	flags.StringVar(&logFormat, "log-format", string(logging.FormatText), "log format: text or json")
	flags.StringVar(&logFile, "log-file", "", "also append JSON logs to this file")
	flags.StringVar(&configFile, "config", "", "config file (default <config dir>/mlvm/config.yaml)")

	rootCmd.SetVersionTemplate("mlvm version {{.Version}}\n")
}

// logLevel resolves the level from -q, -v and MLVM_DEBUG, in that order.
func logLevel() (slog.Level, error) {
	if quiet {
		if verbosity > 0 {
			return 0, errors.NewUserError(nil, "cannot use --quiet and --verbose together")
		}
		return slog.LevelError, nil
	}
	v := verbosity
	if v == 0 {
		v = debugLevels[os.Getenv("MLVM_DEBUG")]
	}
	return logging.LevelFromVerbosity(v), nil
}

// setupLogging installs the process logger and stores it in the command
// context for logging.FromContext.
func setupLogging(cmd *cobra.Command) error {
	level, err := logLevel()
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	opts := logging.Options{Level: level, Format: format, Output: cmd.ErrOrStderr()}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "Check that the --log-file directory exists and is writable")
		}
		opts.File = f
	}

	logger := logging.New(opts)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// checkConfig surfaces a config load failure, except for help, version
// and the config subcommands.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil || cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return nil
		}
	}
	return errors.NewConfigError(configLoadErr)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
