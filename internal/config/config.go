package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/paths"
)

// EnvPrefix is the prefix of environment variables read by Viper.
// MLVM_HOME sets home, MLVM_DOWNLOAD_TIMEOUT sets download.timeout.
const EnvPrefix = "MLVM"

// Defaults.
const (
	DefaultDownloadTimeout = 10 * time.Minute
	DefaultMaxBytes        = int64(1 << 30)
	DefaultRenameAttempts  = 3
	DefaultRenameBackoff   = 500 * time.Millisecond
)

// Config represents the top-level configuration structure.
type Config struct {
	Version     int      `mapstructure:"version" yaml:"version"`
	Home        string   `mapstructure:"home" yaml:"home,omitempty"`
	GitHubToken string   `mapstructure:"github_token" yaml:"github_token,omitempty"`
	Download    Download `mapstructure:"download" yaml:"download"`
	Install     Install  `mapstructure:"install" yaml:"install"`
}

// Download configures the HTTP client used for catalogs and payloads.
type Download struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxBytes  int64         `mapstructure:"max_bytes" yaml:"max_bytes"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent,omitempty"`
}

// Install configures the install planner's relocation retry.
type Install struct {
	RenameAttempts int           `mapstructure:"rename_attempts" yaml:"rename_attempts"`
	RenameBackoff  time.Duration `mapstructure:"rename_backoff" yaml:"rename_backoff"`
}

// Keys lists every configuration key in display order.
var Keys = []string{
	"version",
	"home",
	"github_token",
	"download.timeout",
	"download.max_bytes",
	"download.user_agent",
	"install.rename_attempts",
	"install.rename_backoff",
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("home", "")
	viper.SetDefault("github_token", "")
	viper.SetDefault("download.timeout", DefaultDownloadTimeout)
	viper.SetDefault("download.max_bytes", DefaultMaxBytes)
	viper.SetDefault("download.user_agent", "")
	viper.SetDefault("install.rename_attempts", DefaultRenameAttempts)
	viper.SetDefault("install.rename_backoff", DefaultRenameBackoff)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
		// Implicit load without a file uses defaults.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Mark(errs[0], errors.ErrInvalidConfig), "validating config")
	}

	return &cfg, nil
}

// Layout returns the filesystem layout selected by cfg.Home.
func (c *Config) Layout() (paths.Layout, error) {
	return paths.NewLayout(c.Home)
}
