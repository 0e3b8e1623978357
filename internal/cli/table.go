package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var tableWorkers int

var tableCmd = &cobra.Command{
	Use:   "table <name> <from> <to> <step>",
	Short: "Tabulate a function over a range",
	Long: `Evaluate a function at from, from+step, ... up to and including to.
Rows are computed concurrently and printed in order. A row whose
evaluation fails shows the error instead of a value.

Example:
    fixcalc table sin 0 1.6 0.1`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := currentEngine().table(cmd.Context(), args[0], args[1], args[2], args[3], tableWorkers)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t", r.Name)
			if r.Err != nil {
				printError(w, r.Err)
				continue
			}
			printValue(w, r.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().IntVarP(&tableWorkers, "workers", "w", runtime.NumCPU(), "number of concurrent evaluations")
}
