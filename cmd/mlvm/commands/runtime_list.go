package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlvm/internal/install"
)

// installedJSON is the --json shape of one installed version.
type installedJSON struct {
	Version string `json:"version"`
	Path    string `json:"path"`
	Current bool   `json:"current"`
}

func newListCmd(name, display string) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List installed %s versions", display),
		Long:  fmt.Sprintf(`List installed %s versions, newest first. The current version is marked.`, display),
		Example: fmt.Sprintf(`  mlvm %[1]s list

  # Output as JSON
  mlvm %[1]s list --json`, name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, adapter, err := lookup(cmd, name)
			if err != nil {
				return err
			}

			installed, err := a.planner.List(name)
			if err != nil {
				return err
			}

			var current string
			if info, err := a.switcher.Current(adapter); err == nil {
				current = info.Version
			}

			if asJSON {
				return outputInstalledJSON(cmd.OutOrStdout(), installed, current)
			}
			return outputInstalledTabular(cmd.OutOrStdout(), display, installed, current)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return c
}

func outputInstalledJSON(w io.Writer, installed []install.InstalledVersion, current string) error {
	out := make([]installedJSON, len(installed))
	for i, iv := range installed {
		out[i] = installedJSON{
			Version: iv.Version,
			Path:    iv.Path,
			Current: iv.Version == current,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputInstalledTabular(w io.Writer, display string, installed []install.InstalledVersion, current string) error {
	if len(installed) == 0 {
		fmt.Fprintf(w, "No %s versions installed\n", display)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, iv := range installed {
		if iv.Version == current {
			fmt.Fprintf(tw, "* %s\t%s\t%s\n", highlight(iv.Version), iv.Path, dim("(current)"))
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\t\n", iv.Version, iv.Path)
	}
	return tw.Flush()
}
