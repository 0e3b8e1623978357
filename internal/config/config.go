// Package config loads fixcalc settings from defaults, an optional
// configuration file and FIXCALC_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings.
const EnvPrefix = "FIXCALC"

// Precisions lists the supported precision names, output digits first.
var Precisions = []string{"0x0", "2x4", "4x6", "6x8", "8x8", "8x10", "9x12"}

// ErrUnknownPrecision is returned for a precision name not in [Precisions].
var ErrUnknownPrecision = errors.New("unknown precision")

// Config holds all fixcalc settings.
type Config struct {
	// Precision selects the number type, for example "6x8" for 6 output
	// digits computed with 8 working digits.
	Precision string `toml:"precision" mapstructure:"precision"`
	// Layout is the path of a keypad layout file; empty means built-in.
	Layout  string `toml:"layout" mapstructure:"layout"`
	Verbose bool   `toml:"verbose" mapstructure:"verbose"`
	// Blink prints the LED encoding of every result.
	Blink bool `toml:"blink" mapstructure:"blink"`

	configPath string
}

// ConfigPath returns the file the configuration was read from, if any.
func (c *Config) ConfigPath() string {
	return c.configPath
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("precision", "6x8")
	v.SetDefault("layout", "")
	v.SetDefault("verbose", false)
	v.SetDefault("blink", false)
}

// LoadConfig loads configuration in priority order:
// 1. Default values
// 2. Configuration file, if path is not empty
// 3. Environment variables (FIXCALC_ prefix)
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if err := loadFile(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

func loadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if !slices.Contains(Precisions, c.Precision) {
		return fmt.Errorf("precision %q, want one of %s: %w",
			c.Precision, strings.Join(Precisions, ", "), ErrUnknownPrecision)
	}
	return nil
}
