package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docmorph/internal/ui/pretty"
	"github.com/yaklabco/docmorph/pkg/convert"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats",
		Long:  `List the registered document formats and whether each can be read, written, or both.`,
		Run: func(cmd *cobra.Command, _ []string) {
			styles := pretty.NewStyles(pretty.ColorEnabled())
			out := cmd.OutOrStdout()

			fmt.Fprint(out, styles.Title.Render("Supported formats"), "\n")
			for _, f := range convert.Formats() {
				direction := "read + write"
				if !convert.CanParse(f) {
					direction = "write only"
				}
				fmt.Fprintf(out, "  %-5s %s\n", f, styles.Dim.Render(direction))
			}
		},
	}
}
