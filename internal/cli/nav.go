package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/fixed/internal/keypad"
	"github.com/spf13/cobra"
)

var errUnknownMove = errors.New("unknown move")

// move is one joystick gesture: a deflection or a button press.
type move struct {
	dir   keypad.Direction
	press bool
}

func parseMoves(args []string) ([]move, error) {
	moves := make([]move, 0, len(args))
	for _, a := range args {
		switch strings.ToLower(a) {
		case "u", "up":
			moves = append(moves, move{dir: keypad.Up})
		case "d", "down":
			moves = append(moves, move{dir: keypad.Down})
		case "l", "left":
			moves = append(moves, move{dir: keypad.Left})
		case "r", "right":
			moves = append(moves, move{dir: keypad.Right})
		case "p", "press":
			moves = append(moves, move{press: true})
		default:
			return nil, fmt.Errorf("%q: %w", a, errUnknownMove)
		}
	}
	return moves, nil
}

var navCmd = &cobra.Command{
	Use:   "nav <move>...",
	Short: "Drive the calculator with joystick moves",
	Long: `Move a cursor over the keypad layout and press the key under it,
as the joystick and button of the hardware calculator do. The cursor
starts on the home key and returns there after every press that does
not display a value.

Moves: u(p) d(own) l(eft) r(ight) p(ress)

Example, 5 + 3 = on the built-in layout:
    fixcalc nav p d r r p d r p d d r p`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := parseMoves(args)
		if err != nil {
			return err
		}
		l, err := currentLayout()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, p := range currentEngine().nav(l, moves, newLogger(cmd)) {
			switch {
			case p.Err != nil:
				fmt.Fprintf(w, "%s: ", p.Key)
				printError(w, p.Err)
			case p.Shown:
				fmt.Fprintf(w, "%s: ", p.Key)
				printValue(w, p.Value)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}
