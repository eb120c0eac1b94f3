package commands

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/mlvm/cmd"
	"github.com/thoreinstein/mlvm/internal/activate"
	"github.com/thoreinstein/mlvm/internal/config"
	"github.com/thoreinstein/mlvm/internal/download"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/install"
	"github.com/thoreinstein/mlvm/internal/logging"
	"github.com/thoreinstein/mlvm/internal/paths"
	"github.com/thoreinstein/mlvm/internal/runtimes"
	"github.com/thoreinstein/mlvm/internal/runtimes/bun"
	"github.com/thoreinstein/mlvm/internal/runtimes/golang"
	"github.com/thoreinstein/mlvm/internal/runtimes/node"
	"github.com/thoreinstein/mlvm/internal/runtimes/python"
)

// adapters returns one adapter per supported runtime, reading catalogs
// through c.
func adapters(c runtimes.Catalog) []runtimes.Adapter {
	return []runtimes.Adapter{
		bun.New(c),
		golang.New(c),
		node.New(c),
		python.New(c),
	}
}

// app holds the components a runtime command works with.
type app struct {
	layout   paths.Layout
	registry *runtimes.Registry
	planner  *install.Planner
	switcher *activate.Switch
	logger   *slog.Logger
}

// newApp wires the components from the loaded configuration.
func newApp(ctx context.Context) (*app, error) {
	if configLoadErr != nil {
		return nil, errors.NewConfigError(configLoadErr)
	}
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
	}

	layout, err := cfg.Layout()
	if err != nil {
		return nil, errors.Wrap(err, "resolving mlvm home")
	}

	logger := logging.FromContext(ctx)

	userAgent := cfg.Download.UserAgent
	if userAgent == "" {
		userAgent = cmd.UserAgent()
	}
	client := download.New(
		download.WithTimeout(cfg.Download.Timeout),
		download.WithMaxBytes(cfg.Download.MaxBytes),
		download.WithUserAgent(userAgent),
		download.WithGitHubToken(cfg.GitHubToken),
		download.WithLogger(logger),
	)

	registry := runtimes.NewRegistry()
	for _, a := range adapters(client) {
		if err := registry.Register(a); err != nil {
			return nil, errors.Wrapf(err, "registering %s", a.Name())
		}
	}

	return &app{
		layout:   layout,
		registry: registry,
		planner: install.New(layout, client,
			install.WithLogger(logger),
			install.WithRenameRetry(cfg.Install.RenameAttempts, cfg.Install.RenameBackoff),
		),
		switcher: activate.New(layout, activate.WithLogger(logger)),
		logger:   logger,
	}, nil
}
