package commands

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/install"
	"github.com/thoreinstein/mlvm/internal/logging"
)

// errPickerAborted is returned by a picker the user closed without
// choosing.
var errPickerAborted = errors.New("selection aborted")

// interactive reports whether a picker can be shown.
var interactive = func() bool {
	return logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stdout)
}

// pickVersion lets the user choose among installed versions.
var pickVersion = func(display string, versions []install.InstalledVersion) (string, error) {
	idx, err := fuzzyfinder.Find(
		versions,
		func(i int) string { return versions[i].Version },
		fuzzyfinder.WithHeader("Select a "+display+" version"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return versions[i].Path
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errPickerAborted
		}
		return "", errors.Wrap(err, "version picker failed")
	}
	return versions[idx].Version, nil
}

func newUseCmd(name, display string) *cobra.Command {
	return &cobra.Command{
		Use:   "use [version]",
		Short: fmt.Sprintf("Make an installed %s version current", display),
		Long: fmt.Sprintf(`Point ~/.mlvm/%s/current at an installed version.

Without a version argument on a terminal, pick one interactively from
the installed versions.`, name),
		Example: fmt.Sprintf(`  mlvm %[1]s use <version>

  # Pick interactively
  mlvm %[1]s use

See Also: mlvm %[1]s install, mlvm %[1]s current`, name),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, adapter, err := lookup(cmd, name)
			if err != nil {
				return err
			}

			var version string
			if len(args) == 1 {
				version = args[0]
			} else {
				if !interactive() {
					return errors.NewUserError(errors.ErrMissingVersion,
						fmt.Sprintf("Run: mlvm %s use <version>", name))
				}
				installed, err := a.planner.List(name)
				if err != nil {
					return err
				}
				if len(installed) == 0 {
					return errors.NewUserError(errors.Newf("no %s versions installed", display),
						fmt.Sprintf("Run: mlvm %s install <version>", name))
				}
				version, err = pickVersion(display, installed)
				if errors.Is(err, errPickerAborted) {
					return nil
				}
				if err != nil {
					return err
				}
			}

			info, err := a.switcher.Activate(adapter, version)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Now using %s %s\n", display, info.Version)
			printPathHint(w, info.BinDir)
			return nil
		},
	}
}
