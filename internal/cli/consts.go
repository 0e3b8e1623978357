package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var constsCmd = &cobra.Command{
	Use:   "consts",
	Short: "List the predefined constants",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, c := range currentEngine().consts() {
			fmt.Fprintf(w, "%-6s", c.Name)
			printValue(w, c.Value)
		}
	},
}

func init() {
	rootCmd.AddCommand(constsCmd)
}
