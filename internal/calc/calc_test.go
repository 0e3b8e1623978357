package calc

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/govalues/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type num = fixed.Num[fixed.Prec6x8]

// press feeds space-separated tokens to c and returns the last value it produced.
func press(t *testing.T, c *Calculator[fixed.Prec6x8], input string) (last num, produced bool) {
	t.Helper()
	for _, s := range strings.Fields(input) {
		z, ok, err := c.Press(MustParseKey(s))
		require.NoError(t, err, "pressing %q in %q", s, input)
		if ok {
			last, produced = z, true
		}
	}
	return last, produced
}

func TestCalculator_Press(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		display string
	}{
		{"2 + 3 =", "5", "5"},
		{"1 . 5 + 2 . 2 5 =", "3.75", "3.75"},
		{"1 . 5 * 2 . 2 5 =", "3.375", "3.375"},
		{"1 0 - 2 5 =", "-15", "-15"},
		{"7 % 2 =", "1", "1"},
		{"2 + 3 + 4 =", "9", "9"},
		{"2 * 3 - 1 =", "5", "5"},
		{"9 sqrt", "3", "3"},
		{"9 sqrt + 1 =", "4", "4"},
		{"4 sq", "16", "16"},
		{"2 + 3 neg =", "-1", "-1"},
		{"2 + 3 =  * 4 =", "20", "20"},
		{"2 * pi =", "6.283186", "6.283186"},
		{"e ln", "1", "1"},
		{"5 !", "120", "120"},
		{"0 cos", "1", "1"},
		{"7 norm", "0.716815", "0.716815"},
		{". 5 + . 2 5 =", "0.75", "0.75"},
		{"1 . 1 2 3 4 5 6 7 8 + 0 =", "1.123456", "1.123456"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := New[fixed.Prec6x8]()
			got, ok := press(t, c, tt.input)
			require.True(t, ok)
			assert.Equal(t, fixed.MustParse[fixed.Prec6x8](tt.want), got)
			assert.Equal(t, fixed.MustParse[fixed.Prec6x8](tt.display), c.Display())
		})
	}
}

func TestCalculator_LongEntry(t *testing.T) {
	tests := []struct {
		input   string
		display string
	}{
		{"1 2 3 4 5 6 7 8", "12345678"},
		{"1 2 3 4 5 6 7 8 9 0 1 2 3", "1234567890123"},
		{"1 2 3 4 5 6 7 8 9 0 1 2 3 4 5", "1234567890123"},
		{"9 9 9 9 9 9 9 9 9 9 9 9 9", "999999999999"},
		{"9 2 2 3 3 7 2 0 3 6 8 5 4 . 7 7", "9223372036854.77"},
		{"9 2 2 3 3 7 2 0 3 6 8 5 4 . 9 1", "9223372036854.01"},
		{"0 + 1 2 3 4 5 6 7 8 neg 9", "-123456789"},
		{"0 + 9 2 2 3 3 7 2 0 3 6 8 5 4 neg 1", "-9223372036854"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := New[fixed.Prec6x8]()
			press(t, c, tt.input)
			assert.Equal(t, fixed.MustParse[fixed.Prec6x8](tt.display), c.Display())
		})
	}

	c := New[fixed.Prec6x8]()
	press(t, c, "1 2 3 4 5 6 7 8 + 8 7 6 5 4 3 2 1 =")
	assert.Equal(t, "99999999.000000", c.Display().String())
}

func TestCalculator_Display(t *testing.T) {
	c := New[fixed.Prec6x8]()

	press(t, c, "1 2")
	assert.Equal(t, "12.000000", c.Display().String())

	press(t, c, "+")
	assert.Equal(t, "12.000000", c.Display().String())
	assert.Equal(t, "+", c.Pending().String())

	press(t, c, "3 . 0 5")
	assert.Equal(t, "3.050000", c.Display().String())

	press(t, c, "=")
	assert.Equal(t, "15.050000", c.Display().String())
	assert.True(t, c.Pending().IsNone())

	// A digit after a result starts a new number.
	press(t, c, "7")
	assert.Equal(t, "7.000000", c.Display().String())

	press(t, c, "c")
	assert.True(t, c.Display().IsZero())
}

func TestCalculator_Constants(t *testing.T) {
	tests := map[string]num{
		"pi":    fixed.Pi[fixed.Prec6x8](),
		"tau":   fixed.Tau[fixed.Prec6x8](),
		"phi":   fixed.Phi[fixed.Prec6x8](),
		"gamma": fixed.EGamma[fixed.Prec6x8](),
		"sqrt2": fixed.Sqrt2[fixed.Prec6x8](),
		"e":     fixed.E[fixed.Prec6x8](),
		"ln2":   fixed.Ln2[fixed.Prec6x8](),
	}
	for token, want := range tests {
		t.Run(token, func(t *testing.T) {
			c := New[fixed.Prec6x8]()
			press(t, c, "1 2 "+token)
			assert.Equal(t, want, c.Display())
		})
	}
}

func TestCalculator_FractionDigits(t *testing.T) {
	c := New[fixed.Prec2x4]()
	for _, s := range strings.Fields("1 . 2 3 4") {
		_, _, err := c.Press(MustParseKey(s))
		require.NoError(t, err)
	}
	assert.Equal(t, "1.23", c.Display().String())
}

func TestCalculator_Errors(t *testing.T) {
	t.Run("no operation", func(t *testing.T) {
		c := New[fixed.Prec6x8]()
		_, ok, err := c.Press(Result)
		require.ErrorIs(t, err, ErrNoOperation)
		assert.False(t, ok)

		press(t, c, "9 sqrt")
		_, _, err = c.Press(Result)
		require.ErrorIs(t, err, ErrNoOperation)
	})

	t.Run("division by zero", func(t *testing.T) {
		c := New[fixed.Prec6x8]()
		press(t, c, "1 / 0")
		_, ok, err := c.Press(Result)
		require.ErrorIs(t, err, fixed.ErrDivisionByZero)
		assert.False(t, ok)

		// The failed operation is still pending.
		assert.Equal(t, "/", c.Pending().String())
		press(t, c, "2")
		got, ok := press(t, c, "=")
		require.True(t, ok)
		assert.Equal(t, "0.500000", got.String())
	})

	t.Run("unary", func(t *testing.T) {
		tests := map[string]error{
			"1 neg sqrt": fixed.ErrNegativeSqrt,
			"0 ln":       fixed.ErrNonPositiveLog,
			"0 cot":      fixed.ErrDivisionByZero,
			"2 1 !":      fixed.ErrFactorialOverflow,
			". 5 !":      fixed.ErrFactorialDomain,
			"1 atanh":    fixed.ErrDivisionByZero,
		}
		for input, want := range tests {
			t.Run(input, func(t *testing.T) {
				c := New[fixed.Prec6x8]()
				tokens := strings.Fields(input)
				press(t, c, strings.Join(tokens[:len(tokens)-1], " "))
				before := c.Display()
				_, _, err := c.Press(MustParseKey(tokens[len(tokens)-1]))
				require.ErrorIs(t, err, want)
				assert.Equal(t, before, c.Display())
			})
		}
	})

	t.Run("chained", func(t *testing.T) {
		c := New[fixed.Prec6x8]()
		press(t, c, "1 / 0")
		_, _, err := c.Press(Binary(Add))
		require.ErrorIs(t, err, fixed.ErrDivisionByZero)
		assert.Equal(t, "/", c.Pending().String())
	})
}

func TestCalculator_Logger(t *testing.T) {
	var buf bytes.Buffer
	c := New[fixed.Prec6x8](WithLogger(log.New(&buf, "", 0)))
	press(t, c, "2 + 3 = sqrt")
	out := buf.String()
	assert.Contains(t, out, "a = 2.000000; op = +; b = 3.000000; result = 5.000000")
	assert.Contains(t, out, "sqrt(5.000000) = 2.236068")
}

func TestApply(t *testing.T) {
	x := fixed.MustParse[fixed.Prec6x8]("2")
	got, err := Apply(Sqrt, x)
	require.NoError(t, err)
	assert.Equal(t, fixed.Sqrt2[fixed.Prec6x8](), got)

	_, err = Apply(Ln, x.Neg())
	require.ErrorIs(t, err, fixed.ErrNonPositiveLog)

	got, err = Combine(Quo, x, fixed.NewFromInt[fixed.Prec6x8](4))
	require.NoError(t, err)
	assert.Equal(t, "0.500000", got.String())

	assert.Equal(t, fixed.E[fixed.Prec6x8](), Value[fixed.Prec6x8](E))
}
