package registry

import (
	"fmt"

	rs "github.com/piperubio/registry/registry"
	"github.com/spf13/cobra"
)

var (
	registryName string
	homepage     string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Regenerate registry/index.json from the component files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if homepage == "" {
			homepage = registryURL
		}

		index, err := rs.NewFileStore(rootDir).BuildIndex(registryName, homepage)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d components to the index\n", len(index.Items))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&registryName, "name", "piperubio", "Registry name written to the index")
	buildCmd.Flags().StringVar(&homepage, "homepage", "", "Homepage written to the index (default is the registry URL)")
}
