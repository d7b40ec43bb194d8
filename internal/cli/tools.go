package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List registered assessment tools",
	Long:  "List every registered assessment tool with its slug, field count, and wizard steps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())

		registry, err := buildRegistry(cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tTITLE\tFIELDS\tSTEPS")
		for _, tool := range registry.All() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
				tool.Slug, tool.Title, len(tool.Fields), tool.StepCount())
		}
		return w.Flush()
	},
}
