package cli

import (
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <token>...",
	Short: "Press calculator keys",
	Long: `Press a sequence of calculator keys and print every value the
calculator produces: results of =, chained operations and functions.
If nothing is produced the display is printed.

Tokens: digits 0-9, ".", "=", "c" (clear), binary operations + - * / %,
functions as accepted by fn, and constants pi tau phi gamma sqrt2 e ln2.

Examples:
    fixcalc keys 1 . 5 + 2 =
    fixcalc keys 2 sqrt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := currentEngine().keys(args, newLogger(cmd))
		w := cmd.OutOrStdout()
		for _, v := range values {
			printValue(w, v)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
