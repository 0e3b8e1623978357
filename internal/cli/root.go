package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/govalues/fixed/internal/blink"
	"github.com/govalues/fixed/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	precision  string
	verbose    bool
	showBlink  bool

	// cfg is loaded before any command runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fixcalc",
	Short: "fixcalc - deterministic fixed-point calculator",
	Long: `fixcalc evaluates arithmetic and transcendental functions on 64-bit
fixed-point numbers. Every result is reproducible bit for bit: no floating
point is involved and all rounding is half away from zero.

The precision is written as output and working digits, for example 6x8.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file path (.toml, .yaml, .json)")
	rootCmd.PersistentFlags().StringVarP(&precision, "precision", "p", "", "precision such as 2x4 or 6x8 (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every evaluation to stderr")
	rootCmd.PersistentFlags().BoolVarP(&showBlink, "blink", "b", false, "print the LED encoding of every result")
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if precision != "" {
		c.Precision = precision
		if err := c.Validate(); err != nil {
			return err
		}
	}
	c.Verbose = c.Verbose || verbose
	c.Blink = c.Blink || showBlink
	cfg = c
	return nil
}

func currentEngine() engine {
	return engines[cfg.Precision]
}

func newLogger(cmd *cobra.Command) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "fixcalc: ", log.Lmsgprefix)
}

// printValue writes a result and, if enabled, its blink encoding.
func printValue(w io.Writer, v value) {
	fmt.Fprintln(w, v.Text)
	if cfg.Blink {
		fmt.Fprintf(w, "  blink: %v\n", blink.Encode(v.Raw, v.Frac))
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	if cfg.Blink {
		fmt.Fprintf(w, "  blink: %v\n", blink.Error())
	}
}
