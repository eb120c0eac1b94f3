package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// defaultRemoteLimit is the number of versions list-remote shows by default.
const defaultRemoteLimit = 20

func newListRemoteCmd(name, display string) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "list-remote",
		Short: fmt.Sprintf("List %s versions available for download", display),
		Long: fmt.Sprintf(`Query the upstream %s catalog and list available versions, newest first.

Use --limit 0 to show everything the catalog returns.`, display),
		Example: fmt.Sprintf(`  mlvm %[1]s list-remote
  mlvm %[1]s list-remote --limit 5
  mlvm %[1]s list-remote --json`, name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, adapter, err := lookup(cmd, name)
			if err != nil {
				return err
			}

			versions, err := adapter.ListRemote(cmd.Context())
			if err != nil {
				return err
			}
			runtimes.SortRemoteDescending(versions)
			if limit > 0 && len(versions) > limit {
				versions = versions[:limit]
			}

			if asJSON {
				return outputRemoteJSON(cmd.OutOrStdout(), versions)
			}
			return outputRemoteTabular(cmd.OutOrStdout(), versions)
		},
	}
	c.Flags().IntVarP(&limit, "limit", "n", defaultRemoteLimit, "maximum number of versions to show (0 for all)")
	c.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return c
}

func outputRemoteJSON(w io.Writer, versions []runtimes.RemoteVersion) error {
	if versions == nil {
		versions = []runtimes.RemoteVersion{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(versions)
}

func outputRemoteTabular(w io.Writer, versions []runtimes.RemoteVersion) error {
	if len(versions) == 0 {
		fmt.Fprintln(w, "No versions found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range versions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Version, v.Date, dim(v.Note))
	}
	return tw.Flush()
}
