package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mlvm/internal/config"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
	"github.com/thoreinstein/mlvm/internal/paths"
	"github.com/thoreinstein/mlvm/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mlvm configuration",
	Long: `Manage mlvm configuration stored in <config dir>/mlvm/config.yaml.

Every key can also be set through the environment: MLVM_HOME sets home,
MLVM_DOWNLOAD_TIMEOUT sets download.timeout, and so on.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  mlvm config

  # Get a specific value
  mlvm config get home

  # Set a value
  mlvm config set download.timeout 30m

See Also: mlvm config get, mlvm config set`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key. Nested keys use dot notation.`,
	Example: `  mlvm config get home
  mlvm config get install.rename_attempts

See Also: mlvm config set, mlvm config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it to the config file.

The resulting configuration is validated before anything is written.`,
	Example: `  mlvm config set home ~/tools/mlvm
  mlvm config set download.max_bytes 2147483648
  mlvm config set install.rename_backoff 1s

See Also: mlvm config get, mlvm config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format. Secrets are masked.`,
	Example: `  mlvm config list

See Also: mlvm config get, mlvm config set`,
	RunE: runConfigList,
}

func checkKey(key string) error {
	if slices.Contains(config.Keys, key) {
		return nil
	}
	return errors.NewUserError(errors.Newf("unknown config key %q", key),
		"Valid keys: "+strings.Join(config.Keys, ", "))
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := checkKey(key); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}
	fmt.Fprintln(w, viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if err := checkKey(key); err != nil {
		return err
	}

	// Let YAML type the value so numbers stay numbers in the file.
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
		value = raw
	}

	viper.Set(key, value)
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return errors.NewUserError(errors.Wrapf(err, "setting %s", key), "")
	}
	if errs := config.Validate(&cfg); len(errs) > 0 {
		return errors.NewUserError(errors.Join(errs...), "")
	}

	path := configPath()
	doc, err := readConfigFile(path)
	if err != nil {
		return err
	}
	setNested(doc, key, value)

	if err := fileutil.AtomicWriteYAML(path, doc, 0o600); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	shown := raw
	if logging.ShouldMask(key) {
		shown = logging.MaskValue(raw)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, shown)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	return writeConfigList(cmd.OutOrStdout())
}

func writeConfigList(w io.Writer) error {
	doc := make(map[string]any)
	for _, key := range config.Keys {
		val := viper.Get(key)
		if s, ok := val.(string); ok && s != "" && logging.ShouldMask(key) {
			val = logging.MaskValue(s)
		}
		if d, ok := val.(fmt.Stringer); ok {
			val = d.String()
		}
		setNested(doc, key, val)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	_, err = w.Write(data)
	return err
}

// configPath returns the file config set writes to.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

// readConfigFile returns the YAML document at path, or an empty document
// if the file does not exist.
func readConfigFile(path string) (map[string]any, error) {
	doc := make(map[string]any)

	data, err := fileutil.ReadFileWithLimit(path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigError(errors.Wrapf(err, "parsing %s", path))
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

// setNested assigns value at a dotted key, creating intermediate maps.
func setNested(doc map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	m := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
