package registry

import (
	"fmt"

	"github.com/piperubio/registry/db"
	rs "github.com/piperubio/registry/registry"
	"github.com/spf13/cobra"
)

var (
	mirrorPath   string
	showProgress bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Mirror the registry folder into a sqlite file",
	Long: `Copy the registry index, every component document and the contents of its
source files into a sqlite file that serve --storage can read from.
Existing entries are replaced.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		output, err := db.ConnectDB(mirrorPath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", mirrorPath, err)
		}
		defer output.Close()

		count, err := db.Import(cmd.Context(), rs.NewFileStore(rootDir), output, showProgress)
		if err != nil {
			return fmt.Errorf("import failed after %d components: %w", count, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d components into %s\n", count, mirrorPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(
		&mirrorPath,
		"storage",
		"s",
		"./registry.sqlite",
		"Output path for the sqlite mirror")

	importCmd.Flags().BoolVar(&showProgress,
		"progress",
		true,
		"Show a progress bar")
}
