package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/calc"
	"github.com/govalues/fixed/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh global state.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	configFile, precision, verbose, showBlink = "", "", false, false
	tableWorkers = 4
	cfg = nil

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1.5", "*", "2.25"}, "3.375000\n"},
		{[]string{"eval", "-p", "2x4", "10", "/", "3"}, "3.33\n"},
		{[]string{"eval", "7", "%", "2", "--precision", "0x0"}, "1\n"},
		{[]string{"eval", "0.1", "+", "0.2"}, "0.300000\n"},
		{[]string{"eval", "1", "-", "2.5"}, "-1.500000\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestEval_Errors(t *testing.T) {
	_, _, err := run(t, "eval", "1", "/", "0")
	assert.ErrorIs(t, err, fixed.ErrDivisionByZero)

	_, _, err = run(t, "eval", "1", "sqrt", "2")
	assert.ErrorIs(t, err, errNotBinary)

	_, _, err = run(t, "eval", "1", "?", "2")
	assert.ErrorIs(t, err, calc.ErrUnknownKey)

	_, _, err = run(t, "eval", "x", "+", "2")
	assert.ErrorIs(t, err, fixed.ErrInvalidNum)

	_, _, err = run(t, "eval", "1", "+")
	assert.Error(t, err)

	_, _, err = run(t, "eval", "-p", "3x3", "1", "+", "2")
	assert.ErrorIs(t, err, config.ErrUnknownPrecision)
}

func TestFn(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"fn", "sin", "0"}, "0.000000\n"},
		{[]string{"fn", "cos", "0"}, "1.000000\n"},
		{[]string{"fn", "!", "5"}, "120.000000\n"},
		{[]string{"fn", "sqrt", "2", "-p", "9x12"}, "1.414213562\n"},
		{[]string{"fn", "sqrt", "2", "-p", "2x4"}, "1.41\n"},
		{[]string{"fn", "abs", "--", "-3"}, "3.000000\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}

	_, _, err := run(t, "fn", "ln", "0")
	assert.ErrorIs(t, err, fixed.ErrNonPositiveLog)

	_, _, err = run(t, "fn", "+", "1")
	assert.ErrorIs(t, err, errNotUnary)
}

func TestConsts(t *testing.T) {
	out, _, err := run(t, "consts")
	require.NoError(t, err)
	assert.Contains(t, out, "pi    3.141593\n")
	assert.Contains(t, out, "e     2.718282\n")
	assert.Contains(t, out, "ln2   0.693147\n")

	out, _, err = run(t, "consts", "-p", "2x4")
	require.NoError(t, err)
	assert.Contains(t, out, "tau   6.28\n")
}

func TestKeys(t *testing.T) {
	out, _, err := run(t, "keys", "1", ".", "5", "+", "2", "=")
	require.NoError(t, err)
	assert.Equal(t, "3.500000\n", out)

	out, _, err = run(t, "keys", "2", "+", "3", "+", "4", "=")
	require.NoError(t, err)
	assert.Equal(t, "5.000000\n9.000000\n", out)

	out, _, err = run(t, "keys", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "12.000000\n", out)

	_, _, err = run(t, "keys", "=")
	assert.ErrorIs(t, err, calc.ErrNoOperation)

	_, _, err = run(t, "keys", "1", "foo")
	assert.ErrorIs(t, err, calc.ErrUnknownKey)
}

func TestKeys_Blink(t *testing.T) {
	out, _, err := run(t, "keys", "-b", "-p", "2x4", "1", "0", "5", "/", "1", "0", "0", "=")
	require.NoError(t, err)
	assert.Equal(t, "1.05\n  blink: 1:1x250ms .:5x50ms 0:2x150ms 5:5x250ms\n", out)
}

func TestKeys_Verbose(t *testing.T) {
	_, stderr, err := run(t, "keys", "-v", "2", "+", "3", "=")
	require.NoError(t, err)
	assert.Contains(t, stderr, "fixcalc: a = 2.000000; op = +; b = 3.000000; result = 5.000000")

	_, stderr, err = run(t, "keys", "2", "+", "3", "=")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestNav(t *testing.T) {
	out, _, err := run(t, "nav", "p", "d", "r", "r", "p", "d", "r", "p", "d", "d", "r", "p")
	require.NoError(t, err)
	assert.Equal(t, "=: 8.000000\n", out)

	out, _, err = run(t, "nav", "down", "down", "right", "press")
	require.NoError(t, err)
	assert.Equal(t, "=: error: pressing \"=\": no pending operation\n", out)

	_, _, err = run(t, "nav", "p", "x")
	assert.ErrorIs(t, err, errUnknownMove)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLayout(t *testing.T) {
	out, _, err := run(t, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "[5]")
	assert.Contains(t, out, "tau")

	dir := t.TempDir()
	layoutPath := writeFile(t, dir, "keys.yaml", "home: [0, 1]\nrows:\n  - [\"1\", \"2\", \"+\"]\n  - [\"3\", \"=\", \"_\"]\n")
	configPath := writeFile(t, dir, "fixcalc.toml", "layout = \""+filepath.ToSlash(layoutPath)+"\"\n")

	out, _, err = run(t, "layout", "-c", configPath)
	require.NoError(t, err)
	assert.Equal(t, "1       [2]     +\n3       =       _\n", out)

	// 2 + 2 = on the custom layout.
	out, _, err = run(t, "nav", "-c", configPath, "p", "r", "p", "p", "d", "p")
	require.NoError(t, err)
	assert.Equal(t, "=: 4.000000\n", out)
}

func TestTable(t *testing.T) {
	out, _, err := run(t, "table", "-p", "2x4", "sqrt", "0", "1", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0.00\t0.00\n0.25\t0.50\n0.50\t0.71\n0.75\t0.87\n1.00\t1.00\n", out)

	out, _, err = run(t, "table", "-w", "1", "ln", "0", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.000000\terror: ")
	assert.Contains(t, out, "1.000000\t0.000000\n2.000000\t0.693147\n")

	_, _, err = run(t, "table", "sin", "0", "1", "0")
	assert.ErrorIs(t, err, errInvalidStep)

	_, _, err = run(t, "table", "sin", "0", "1", "0.000001")
	assert.ErrorIs(t, err, errTooManyRows)
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("FIXCALC_PRECISION", "2x4")
	out, _, err := run(t, "eval", "1", "/", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fixcalc version 0.1.0")
	assert.Contains(t, out, "Go version: go")
}
