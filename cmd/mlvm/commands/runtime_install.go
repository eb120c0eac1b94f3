package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlvm/internal/errors"
)

func newInstallCmd(name, display string) *cobra.Command {
	return &cobra.Command{
		Use:   "install <version>",
		Short: fmt.Sprintf("Download and unpack a %s version", display),
		Long: fmt.Sprintf(`Download the %s release for this platform and unpack it under
~/.mlvm/%s/<version>.

Installing a version that is already present does nothing and makes no
network requests.`, display, name),
		Example: fmt.Sprintf(`  mlvm %s install <version>

See Also: mlvm %s list-remote, mlvm %s use`, name, name, name),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.NewUserError(errors.ErrMissingVersion,
					fmt.Sprintf("Run: mlvm %s list-remote", name))
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, adapter, err := lookup(cmd, name)
			if err != nil {
				return err
			}

			iv, err := a.planner.Install(cmd.Context(), adapter, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if iv.AlreadyInstalled {
				fmt.Fprintf(w, "%s %s is already installed at %s\n", display, iv.Version, iv.Path)
				return nil
			}
			fmt.Fprintf(w, "Installed %s %s to %s\n", display, iv.Version, iv.Path)
			fmt.Fprintf(w, "Run: mlvm %s use %s\n", name, iv.Version)
			return nil
		},
	}
}
