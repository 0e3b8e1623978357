// Package keypad maps a two-axis joystick and a push button onto a grid
// of calculator keys.
package keypad

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/govalues/fixed/internal/calc"
	"gopkg.in/yaml.v3"
)

// Errors returned by [Layout.Validate] and [LoadLayout].
var (
	ErrEmptyLayout   = errors.New("layout has no keys")
	ErrRaggedLayout  = errors.New("layout rows differ in length")
	ErrHomeOutside   = errors.New("home position outside layout")
	ErrUnknownFormat = errors.New("unknown layout format")
)

// Format is the encoding of a layout file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Layout is a rectangular grid of keys.
// Rows are listed top to bottom, columns left to right.
type Layout struct {
	Rows [][]calc.Key `toml:"rows" yaml:"rows"`
	// Home is the [row, col] position the cursor starts on.
	Home [2]int `toml:"home" yaml:"home"`
}

// DefaultLayout returns the built-in 6×6 layout with the cursor starting
// on the digit 5.
func DefaultLayout() Layout {
	return Layout{
		Rows: [][]calc.Key{
			keys("tau", "gamma", "pi", "e", "phi", "sqrt2"),
			keys("sqrt", "7", "8", "9", "/", "_"),
			keys("neg", "4", "5", "6", "*", "_"),
			keys("sq", "1", "2", "3", "+", "_"),
			keys("_", ".", "0", "=", "-", "_"),
			keys("_", "_", "_", "_", "_", "_"),
		},
		Home: [2]int{2, 2},
	}
}

func keys(tokens ...string) []calc.Key {
	row := make([]calc.Key, len(tokens))
	for i, s := range tokens {
		row[i] = calc.MustParseKey(s)
	}
	return row
}

// Size returns the number of rows and columns.
func (l Layout) Size() (rows, cols int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return len(l.Rows), len(l.Rows[0])
}

// At returns the key at the given position, or [calc.None] outside the grid.
func (l Layout) At(row, col int) calc.Key {
	if row < 0 || row >= len(l.Rows) || col < 0 || col >= len(l.Rows[row]) {
		return calc.None
	}
	return l.Rows[row][col]
}

// Validate checks that the layout is non-empty and rectangular and that
// the home position is inside it.
func (l Layout) Validate() error {
	rows, cols := l.Size()
	if rows == 0 || cols == 0 {
		return ErrEmptyLayout
	}
	for i, r := range l.Rows {
		if len(r) != cols {
			return fmt.Errorf("row %d has %d keys, want %d: %w", i, len(r), cols, ErrRaggedLayout)
		}
	}
	if l.Home[0] < 0 || l.Home[0] >= rows || l.Home[1] < 0 || l.Home[1] >= cols {
		return fmt.Errorf("home %v in %dx%d grid: %w", l.Home, rows, cols, ErrHomeOutside)
	}
	return nil
}

// String renders the grid as rows of tokens, marking the home key.
func (l Layout) String() string {
	var b strings.Builder
	for i, r := range l.Rows {
		var line strings.Builder
		for j, k := range r {
			s := k.String()
			if i == l.Home[0] && j == l.Home[1] {
				s = "[" + s + "]"
			}
			fmt.Fprintf(&line, "%-8s", s)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// detectFormat determines the layout format from file extension.
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// LoadLayout reads and validates a layout file.
// The format is chosen by extension: .toml, .yaml or .yml.
func LoadLayout(path string) (Layout, error) {
	format, err := detectFormat(path)
	if err != nil {
		return Layout{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return ParseLayout(content, format)
}

// ParseLayout decodes and validates a layout.
func ParseLayout(content []byte, format Format) (Layout, error) {
	var l Layout
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &l); err != nil {
			return Layout{}, fmt.Errorf("failed to parse TOML layout: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &l); err != nil {
			return Layout{}, fmt.Errorf("failed to parse YAML layout: %w", err)
		}
	default:
		return Layout{}, fmt.Errorf("format %v: %w", format, ErrUnknownFormat)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}
