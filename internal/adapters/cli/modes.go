package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// NewModesCommand lists the build modes and how the coordinator treats them
func NewModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List build modes",
		Long: `List every build mode with its grid visibility and whether it acts on
a group selection. Mode names are accepted case-insensitively by
--mode, with '-' or ' ' in place of '_'.

Example:
  settlement modes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODE\tGRID\tGROUP")
			for _, mode := range construction.AllBuildModes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", mode, yesNo(mode.ShowsGrid()), yesNo(mode.IsGroupOperation()))
			}
			return w.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
