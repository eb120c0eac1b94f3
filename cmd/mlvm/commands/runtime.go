package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlvm/internal/runtimes"
)

func init() {
	for _, a := range adapters(nil) {
		rootCmd.AddCommand(newRuntimeCmd(a.Name(), a.DisplayName()))
	}
}

// newRuntimeCmd builds the command group for one runtime. The adapter
// itself is looked up when a subcommand runs, after config is loaded.
func newRuntimeCmd(name, display string) *cobra.Command {
	c := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Manage %s versions", display),
		Long: fmt.Sprintf(`Install, list and switch between %s versions.

Versions live under ~/.mlvm/%s/<version>; the active one is linked from
~/.mlvm/%s/current.`, display, name, name),
		Example: fmt.Sprintf(`  mlvm %[1]s list-remote
  mlvm %[1]s install <version>
  mlvm %[1]s use <version>
  mlvm %[1]s current`, name),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	c.AddCommand(
		newInstallCmd(name, display),
		newUseCmd(name, display),
		newListCmd(name, display),
		newListRemoteCmd(name, display),
		newCurrentCmd(name, display),
	)
	return c
}

// lookup wires the app and returns the adapter for name.
func lookup(cmd *cobra.Command, name string) (*app, runtimes.Adapter, error) {
	a, err := newApp(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	adapter, err := a.registry.Get(name)
	if err != nil {
		return nil, nil, err
	}
	return a, adapter, nil
}

// pathHint returns the shell statement that puts bin first on PATH.
func pathHint(goos, bin string) string {
	if goos == "windows" {
		return fmt.Sprintf(`$env:PATH = "%s;$env:PATH"`, bin)
	}
	return fmt.Sprintf(`export PATH="%s:$PATH"`, bin)
}

func printPathHint(w io.Writer, bin string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use it in this shell:")
	fmt.Fprintf(w, "  %s\n", pathHint(runtime.GOOS, bin))
}
