package cli

import (
	"fmt"

	"github.com/govalues/fixed/internal/keypad"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the keypad layout",
	Long: `Show the keypad layout used by nav, with the home key in brackets.
The layout comes from the file named by the layout setting, or the
built-in 6x6 grid if none is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := currentLayout()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), l)
		return nil
	},
}

func currentLayout() (keypad.Layout, error) {
	if cfg.Layout == "" {
		return keypad.DefaultLayout(), nil
	}
	return keypad.LoadLayout(cfg.Layout)
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
