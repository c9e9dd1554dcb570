package registry

import (
	"fmt"
	"os"

	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/terminal"
	"github.com/spf13/cobra"
)

var breakpoint string

// previewCmd represents the preview command.
var previewCmd = &cobra.Command{
	Use:   "preview <file.json>",
	Short: "Draw a description grid as it would look at one breakpoint",
	Long: `Read a description definition (title, columns, variant, layout and items) from
a JSON file and draw the resolved grid in the terminal at the given breakpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bp, ok := model.ParseBreakpoint(breakpoint)
		if !ok {
			return fmt.Errorf("unknown breakpoint %q", breakpoint)
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("could not open %s: %w", args[0], err)
		}
		defer file.Close()

		d, err := terminal.LoadDescription(file)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, terminal.NewPreviewer(out, width).Preview(d, bp))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&breakpoint, "breakpoint", "b", "lg", "Breakpoint to draw: base, sm, md, lg, xl or 2xl")
	previewCmd.Flags().IntVarP(&width, "width", "w", 80, "Total width of the grid")
}
