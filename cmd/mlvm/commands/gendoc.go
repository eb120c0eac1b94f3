package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/mlvm/internal/errors"
)

var genDocDir string

// genDocCmd writes the command reference consumed by the docs site.
var genDocCmd = &cobra.Command{
	Use:    "gen-doc --dir <path>",
	Short:  "Write the Markdown command reference",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "directory to write pages into")
	_ = genDocCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(cmd *cobra.Command, _ []string) error {
	if err := os.MkdirAll(genDocDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", genDocDir)
	}
	if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, docFrontMatter, docLink); err != nil {
		return errors.Wrap(err, "generating reference")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote reference to %s\n", genDocDir)
	return nil
}

// docTitle maps a generated page name to its command path:
// mlvm_node_install.md becomes "node install", mlvm.md stays "mlvm".
func docTitle(filename string) string {
	slug := strings.TrimSuffix(filepath.Base(filename), ".md")
	if slug == "mlvm" {
		return slug
	}
	return strings.ReplaceAll(strings.TrimPrefix(slug, "mlvm_"), "_", " ")
}

func docFrontMatter(filename string) string {
	title := docTitle(filename)
	return "---\n" +
		fmt.Sprintf("title: %q\n", title) +
		fmt.Sprintf("description: %q\n", "Reference for the "+title+" command") +
		"---\n"
}

func docLink(name string) string {
	return "/reference/" + strings.ToLower(strings.TrimSuffix(name, ".md")) + "/"
}
