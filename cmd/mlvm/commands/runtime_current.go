package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd(name, display string) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: fmt.Sprintf("Show the active %s version", display),
		Long: fmt.Sprintf(`Show the %s version ~/.mlvm/%s/current points at, and the
directory to put on PATH.`, display, name),
		Example: fmt.Sprintf(`  mlvm %s current`, name),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, adapter, err := lookup(cmd, name)
			if err != nil {
				return err
			}

			info, err := a.switcher.Current(adapter)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", display, info.Version)
			fmt.Fprintf(w, "  path: %s\n", info.Target)
			fmt.Fprintf(w, "  bin:  %s\n", info.BinDir)
			return nil
		},
	}
}
