package registry

import (
	"encoding/json"
	"fmt"

	"github.com/piperubio/registry/model"
	rs "github.com/piperubio/registry/registry"
	"github.com/piperubio/registry/terminal"
	"github.com/piperubio/registry/web/components"
	"github.com/spf13/cobra"
)

var (
	withCode bool
	style    string
	width    int
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a registry item in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store := rs.NewFileStore(rootDir)

		document, err := store.Component(cmd.Context(), name)
		if err != nil {
			return err
		}

		var item model.RegistryItem
		if err := json.Unmarshal(document, &item); err != nil {
			return fmt.Errorf("could not parse component %s: %w", name, err)
		}

		var code *model.ComponentCode
		if withCode {
			code, err = store.Code(cmd.Context(), name)
			if err != nil {
				return err
			}
		}

		markdown := terminal.ItemMarkdown(item, code, components.InstallCommand(registryURL, name))

		out, err := terminal.RenderMarkdown(markdown, width, style)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&withCode, "code", false, "Include the contents of the component files")
	showCmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty...); detected when empty")
	showCmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap output at this width")
}
