package fixed

import (
	"errors"
	"fmt"
	"math"
)

// Precision describes the two scale parameters of a fixed-point type.
//
//   - FracDigits is the number of digits after the decimal point that
//     values of the type carry, from 0 to 18.
//   - WorkDigits is the number of digits after the decimal point used
//     internally while evaluating series, from FracDigits to 18.
//
// Implementations are expected to be empty structs, so that the precision
// is part of the type and values of different precisions cannot be mixed.
type Precision interface {
	FracDigits() int
	WorkDigits() int
}

// Predefined precisions. The name PrecFxT reads as F digits after the
// decimal point, evaluated internally with T digits.
type (
	Prec0x0  struct{}
	Prec2x4  struct{}
	Prec4x6  struct{}
	Prec6x8  struct{}
	Prec8x8  struct{}
	Prec8x10 struct{}
	Prec9x12 struct{}
)

func (Prec0x0) FracDigits() int { return 0 }
func (Prec0x0) WorkDigits() int { return 0 }
func (Prec2x4) FracDigits() int { return 2 }
func (Prec2x4) WorkDigits() int { return 4 }
func (Prec4x6) FracDigits() int { return 4 }
func (Prec4x6) WorkDigits() int { return 6 }
func (Prec6x8) FracDigits() int { return 6 }
func (Prec6x8) WorkDigits() int { return 8 }
func (Prec8x8) FracDigits() int { return 8 }
func (Prec8x8) WorkDigits() int { return 8 }
func (Prec8x10) FracDigits() int { return 8 }
func (Prec8x10) WorkDigits() int { return 10 }
func (Prec9x12) FracDigits() int { return 9 }
func (Prec9x12) WorkDigits() int { return 12 }

// Num is a fixed-point decimal number with precision P.
// It stores a signed 64-bit integer, the raw value, which represents
// raw / 10^F, where F is P.FracDigits().
// For example, with F = 2 the number 3 is stored as 300.
//
// The zero value is the numeric value of 0.
// Num is immutable and safe for concurrent use by multiple goroutines.
type Num[P Precision] struct {
	raw int64
}

// Errors returned by constructors, conversions and functions.
// They are wrapped with the failing expression, so use [errors.Is] to
// test for them.
var (
	// ErrInvalidFloat is returned for a NaN float.
	ErrInvalidFloat = errors.New("invalid float")
	// ErrInvalidNum is returned when a string is not a number.
	ErrInvalidNum = errors.New("invalid number")
	// ErrOverflow is returned when a parsed number does not fit the precision.
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero is returned when a divisor, or the denominator of
	// tan, cot, coth, arctanh or arccoth, is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeSqrt is returned for the square root of a negative number.
	ErrNegativeSqrt = errors.New("square root of negative number")
	// ErrFactorialDomain is returned for the factorial of a negative or
	// fractional number.
	ErrFactorialDomain = errors.New("factorial of negative or non-integer number")
	// ErrFactorialOverflow is returned for the factorial of a number above 20.
	ErrFactorialOverflow = errors.New("factorial overflow")
	// ErrNonPositiveLog is returned for the logarithm of 0 or a negative number.
	ErrNonPositiveLog = errors.New("logarithm of non-positive number")
	// ErrPrecisionDirection is returned when IncreaseFrac is asked to remove
	// digits or DecreaseFrac is asked to add them.
	ErrPrecisionDirection = errors.New("precision direction violation")
	// ErrWorkPrecision is returned when a conversion is between precisions
	// with different working digits.
	ErrWorkPrecision = errors.New("working precision mismatch")
)

// params returns the fractional and working digits of P.
// params panics if P describes an impossible precision.
func params[P Precision]() (frac, work int) {
	var p P
	frac, work = p.FracDigits(), p.WorkDigits()
	if frac < 0 || frac > maxDigits || work < frac || work > maxDigits {
		panic(fmt.Sprintf("fixed: precision %T is out of range: frac %v, work %v", p, frac, work))
	}
	return frac, work
}

// NewFromRaw returns a number with the given raw value.
// No scaling is applied.
func NewFromRaw[P Precision](raw int64) Num[P] {
	return Num[P]{raw: raw}
}

// NewFromInt returns a number equal to n.
// The result is saturated if n * 10^F does not fit int64.
func NewFromInt[P Precision](n int64) Num[P] {
	frac, _ := params[P]()
	return Num[P]{raw: lsh(n, frac)}
}

// NewFromFloat64 returns a number equal to f rounded half away from zero
// to F digits after the decimal point.
// Infinities and out-of-range values are saturated.
//
// NewFromFloat64 returns an error if f is NaN.
func NewFromFloat64[P Precision](f float64) (Num[P], error) {
	frac, _ := params[P]()
	switch {
	case math.IsNaN(f):
		return Num[P]{}, fmt.Errorf("converting %v: %w", f, ErrInvalidFloat)
	case math.IsInf(f, 1):
		return Num[P]{raw: math.MaxInt64}, nil
	case math.IsInf(f, -1):
		return Num[P]{raw: math.MinInt64}, nil
	}
	scaled := math.Round(f * float64(pow10[frac]))
	switch {
	case scaled >= math.MaxInt64: // float64(math.MaxInt64) == 2^63
		return Num[P]{raw: math.MaxInt64}, nil
	case scaled <= math.MinInt64:
		return Num[P]{raw: math.MinInt64}, nil
	}
	return Num[P]{raw: int64(scaled)}, nil
}

// NewFromParts returns a number equal to whole + frac / 10^19,
// rounded half away from zero to F digits after the decimal point.
// The fraction is a 19-digit numerator, the longest that fits int64,
// and should carry the same sign as whole.
// It is meant for materializing precomputed constants.
func NewFromParts[P Precision](whole, frac int64) Num[P] {
	digits, _ := params[P]()
	return Num[P]{raw: fromParts(whole, frac, digits)}
}

func fromParts(whole, frac int64, digits int) int64 {
	var f int64
	switch {
	case digits > 0:
		f = quoHalfAway(frac, pow10[19-digits])
	case frac >= 5*pow10[18]: // 10^19 does not fit int64
		f = 1
	case frac <= -5*pow10[18]:
		f = -1
	}
	return addSat(lsh(whole, digits), f)
}

// Raw returns the raw value of x, that is x * 10^F.
func (x Num[P]) Raw() int64 {
	return x.raw
}

// Scale returns 10^F, the factor between x and its raw value.
func (x Num[P]) Scale() int64 {
	frac, _ := params[P]()
	return pow10[frac]
}

// Frac returns the number of digits after the decimal point.
func (x Num[P]) Frac() int {
	frac, _ := params[P]()
	return frac
}

// Work returns the number of digits after the decimal point used while
// evaluating series.
func (x Num[P]) Work() int {
	_, work := params[P]()
	return work
}

// Int64 returns the integer part of x, truncated towards zero.
func (x Num[P]) Int64() int64 {
	return x.raw / x.Scale()
}

// Float64 returns the nearest binary floating-point number to x.
func (x Num[P]) Float64() float64 {
	s := x.Scale()
	return float64(x.raw/s) + float64(x.raw%s)/float64(s)
}

// Add returns the sum x + y.
// On overflow the raw value wraps around.
func (x Num[P]) Add(y Num[P]) Num[P] {
	return Num[P]{raw: x.raw + y.raw}
}

// Sub returns the difference x - y.
// On overflow the raw value wraps around.
func (x Num[P]) Sub(y Num[P]) Num[P] {
	return Num[P]{raw: x.raw - y.raw}
}

// Neg returns -x.
// Neg of the smallest number wraps around to itself.
func (x Num[P]) Neg() Num[P] {
	return Num[P]{raw: -x.raw}
}

// Abs returns the absolute value of x.
// Abs of the smallest number wraps around to itself.
func (x Num[P]) Abs() Num[P] {
	if x.raw < 0 {
		return x.Neg()
	}
	return x
}

// Mul returns the product x * y rounded half away from zero to F digits
// after the decimal point.
// The raw product wraps around on overflow before it is rescaled.
func (x Num[P]) Mul(y Num[P]) Num[P] {
	return Num[P]{raw: quoHalfAway(x.raw*y.raw, x.Scale())}
}

// Quo returns the quotient x / y rounded half away from zero to F digits
// after the decimal point.
// The rescaled dividend wraps around on overflow.
//
// Quo returns an error if y is 0.
func (x Num[P]) Quo(y Num[P]) (Num[P], error) {
	if y.raw == 0 {
		return Num[P]{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	return Num[P]{raw: quoHalfAway(x.raw*x.Scale(), y.raw)}, nil
}

// Rem returns the remainder of the raw division of x by y.
// The result has the sign of x.
//
// Rem returns an error if y is 0.
func (x Num[P]) Rem(y Num[P]) (Num[P], error) {
	if y.raw == 0 {
		return Num[P]{}, fmt.Errorf("computing [%v %% %v]: %w", x, y, ErrDivisionByZero)
	}
	return Num[P]{raw: x.raw % y.raw}, nil
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Num[P]) Cmp(y Num[P]) int {
	switch {
	case x.raw < y.raw:
		return -1
	case x.raw > y.raw:
		return 1
	}
	return 0
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Num[P]) Sign() int {
	return x.Cmp(Num[P]{})
}

// IsZero returns true if x == 0.
func (x Num[P]) IsZero() bool {
	return x.raw == 0
}

// IsNeg returns true if x < 0.
func (x Num[P]) IsNeg() bool {
	return x.raw < 0
}

// IsPos returns true if x > 0.
func (x Num[P]) IsPos() bool {
	return x.raw > 0
}

// Max returns the larger of x and y.
func (x Num[P]) Max(y Num[P]) Num[P] {
	if x.raw < y.raw {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func (x Num[P]) Min(y Num[P]) Num[P] {
	if x.raw > y.raw {
		return y
	}
	return x
}

// IncreaseFrac converts x to precision Q with at least as many digits
// after the decimal point. The raw value is multiplied by the ratio of
// the scales and saturates on overflow. No rounding takes place.
//
// IncreaseFrac returns an error if:
//   - Q has fewer digits after the decimal point than P;
//   - Q and P have different working precisions.
func IncreaseFrac[Q, P Precision](x Num[P]) (Num[Q], error) {
	from, work := params[P]()
	to, qwork := params[Q]()
	switch {
	case to < from:
		return Num[Q]{}, fmt.Errorf("increasing %v digits to %v: %w", from, to, ErrPrecisionDirection)
	case qwork != work:
		return Num[Q]{}, fmt.Errorf("increasing %v digits to %v: working digits %v and %v: %w", from, to, work, qwork, ErrWorkPrecision)
	}
	return Num[Q]{raw: lsh(x.raw, to-from)}, nil
}

// DecreaseFrac converts x to precision Q with at most as many digits
// after the decimal point, rounding half away from zero.
//
// DecreaseFrac returns an error if:
//   - Q has more digits after the decimal point than P;
//   - Q and P have different working precisions.
func DecreaseFrac[Q, P Precision](x Num[P]) (Num[Q], error) {
	from, work := params[P]()
	to, qwork := params[Q]()
	switch {
	case to > from:
		return Num[Q]{}, fmt.Errorf("decreasing %v digits to %v: %w", from, to, ErrPrecisionDirection)
	case qwork != work:
		return Num[Q]{}, fmt.Errorf("decreasing %v digits to %v: working digits %v and %v: %w", from, to, work, qwork, ErrWorkPrecision)
	}
	return Num[Q]{raw: rshHalfAway(x.raw, from-to)}, nil
}

// Parse converts a string to a number, rounding half away from zero
// digits that do not fit after the decimal point.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//
// Parse returns an error if the string is not a valid number or if the
// integer part does not fit the precision.
func Parse[P Precision](s string) (Num[P], error) {
	frac, _ := params[P]()
	raw, err := parse(s, frac)
	if err != nil {
		return Num[P]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Num[P]{raw: raw}, nil
}

func parse(s string, frac int) (int64, error) {
	var (
		pos    int
		neg    bool
		coef   uint64
		digits int
		seen   bool
		round  bool
	)

	// Sign
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Integer
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		seen = true
		if coef > (math.MaxUint64-9)/10 {
			return 0, ErrOverflow
		}
		coef = coef*10 + uint64(s[pos]-'0')
		pos++
	}

	// Fraction
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			seen = true
			switch {
			case digits < frac:
				if coef > (math.MaxUint64-9)/10 {
					return 0, ErrOverflow
				}
				coef = coef*10 + uint64(s[pos]-'0')
				digits++
			case digits == frac:
				round = s[pos] >= '5'
				digits++
			}
			pos++
		}
	}

	switch {
	case pos != len(s):
		return 0, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidNum)
	case !seen:
		return 0, fmt.Errorf("no digits: %w", ErrInvalidNum)
	}

	// Padding
	if digits > frac {
		digits = frac
	}
	for ; digits < frac; digits++ {
		if coef > math.MaxUint64/10 {
			return 0, ErrOverflow
		}
		coef *= 10
	}
	if round {
		coef++
	}

	raw, ok := fromMag(neg, coef)
	if !ok {
		return 0, ErrOverflow
	}
	return raw, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse[P Precision](s string) Num[P] {
	x, err := Parse[P](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String implements the [fmt.Stringer] interface and returns the number
// with exactly F digits after the decimal point, for example "-1.500".
func (x Num[P]) String() string {
	var (
		buf  [24]byte
		pos  = len(buf) - 1
		coef = mag(x.raw)
		frac = x.Frac()
	)

	// Fraction
	for i := 0; i < frac; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}
	if frac > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if coef == 0 {
			break
		}
	}

	// Sign
	if x.raw < 0 {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Num[P]) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse[P](string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Num.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Num[P]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
// The number is always printed with exactly F digits after the decimal point.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Num[P]) Format(state fmt.State, verb rune) {
	s := x.String()

	// Arithmetic sign
	sign := ""
	switch {
	case x.raw < 0:
		sign, s = "-", s[1:]
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(s) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	buf := make([]byte, 0, width+lspaces+tspaces+lzeroes)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, quote...)
	buf = append(buf, sign...)
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, s...)
	buf = append(buf, quote...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fixed.Num="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
