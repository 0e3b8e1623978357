package cli

import (
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <x> <op> <y>",
	Short: "Apply a binary operation",
	Long: `Apply one of the binary operations + - * / % to two numbers.

Examples:
    fixcalc eval 1.5 '*' 2.25
    fixcalc eval -p 2x4 10 / 3`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := currentEngine().eval(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		printValue(cmd.OutOrStdout(), v)
		return nil
	},
}

var fnCmd = &cobra.Command{
	Use:   "fn <name> <x>",
	Short: "Apply a function",
	Long: `Apply a function of one argument.

Functions: sqrt sq neg abs sin cos tan cot sinh cosh tanh coth ln
asinh acosh atanh acoth ! norm

Examples:
    fixcalc fn sin 0.5
    fixcalc fn -p 9x12 ln 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := currentEngine().fn(args[0], args[1])
		if err != nil {
			return err
		}
		printValue(cmd.OutOrStdout(), v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(fnCmd)
}
