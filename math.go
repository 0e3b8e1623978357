package fixed

import (
	"fmt"
	"math"
	"math/bits"
)

// factorials holds n! for n = 0..20; 21! does not fit int64.
var factorials = [...]int64{
	1,                         // 0!
	1,                         // 1!
	2,                         // 2!
	6,                         // 3!
	24,                        // 4!
	120,                       // 5!
	720,                       // 6!
	5_040,                     // 7!
	40_320,                    // 8!
	362_880,                   // 9!
	3_628_800,                 // 10!
	39_916_800,                // 11!
	479_001_600,               // 12!
	6_227_020_800,             // 13!
	87_178_291_200,            // 14!
	1_307_674_368_000,         // 15!
	20_922_789_888_000,        // 16!
	355_687_428_096_000,       // 17!
	6_402_373_705_728_000,     // 18!
	121_645_100_408_832_000,   // 19!
	2_432_902_008_176_640_000, // 20!
}

// maxTerms returns the largest number of terms a series may add at the
// given working precision. It bounds the running time of every function.
func maxTerms(work int) int {
	switch {
	case work <= 4:
		return 8
	case work <= 9:
		return 16
	case work <= 14:
		return 24
	}
	return 32
}

// series calculates first + t(1) + t(2) + ..., where t(n) = next(t(n-1), n)
// and t(0) = first. It stops at the first term that rounds to zero or
// after maxTerms(work) terms, whichever comes first.
func series(first int64, work int, next func(term int64, n int) int64) int64 {
	sum, term := first, first
	for n := 1; n <= maxTerms(work) && term != 0; n++ {
		term = next(term, n)
		sum = addSat(sum, term)
	}
	return sum
}

// mulAt calculates x * y at the given scale, rounding half away from zero
// and saturating on overflow.
func mulAt(x, y, scale int64) int64 {
	z, _ := mulQuo(x, y, scale)
	return z
}

// quoAt calculates x / y at the given scale, rounding half away from zero
// and saturating on overflow. y must not be 0.
func quoAt(x, y, scale int64) int64 {
	z, _ := mulQuo(x, scale, y)
	return z
}

// Sqrt returns the square root of x rounded half away from zero
// to F digits after the decimal point.
//
// Sqrt returns an error if x is negative.
func (x Num[P]) Sqrt() (Num[P], error) {
	if x.raw < 0 {
		return Num[P]{}, fmt.Errorf("computing [sqrt(%v)]: %w", x, ErrNegativeSqrt)
	}
	return Num[P]{raw: sqrtScaled(x.raw, x.Scale())}, nil
}

// Factorial returns x!.
// The result is saturated if it does not fit the precision.
//
// Factorial returns an error if:
//   - x is negative or has a fractional part;
//   - x is greater than 20.
func (x Num[P]) Factorial() (Num[P], error) {
	s := x.Scale()
	switch {
	case x.raw < 0 || x.raw%s != 0:
		return Num[P]{}, fmt.Errorf("computing [%v!]: %w", x, ErrFactorialDomain)
	case x.raw/s >= int64(len(factorials)):
		return Num[P]{}, fmt.Errorf("computing [%v!]: %w", x, ErrFactorialOverflow)
	}
	return Num[P]{raw: mulSat(factorials[x.raw/s], s)}, nil
}

// normalize reduces an angle to (π-τ, π] given π and τ at the same scale.
// The interval is half-open, so every angle has exactly one representative
// and -π maps to π when τ is exactly 2π.
// Whole turns are removed first, rounding the number of turns half away
// from zero, and then at most one more turn is added or subtracted.
func normalize(x, pi, tau int64) int64 {
	if x > tau || x < -tau {
		x -= tau * quoHalfAway(x, tau)
	}
	switch {
	case x > pi:
		x -= tau
	case x <= pi-tau:
		x += tau
	}
	return x
}

// NormalizeAngle returns the angle x, in radians, reduced to (-π, π].
// The bounds are π and τ rounded to F digits.
func (x Num[P]) NormalizeAngle() Num[P] {
	frac, _ := params[P]()
	return Num[P]{raw: normalize(x.raw, piAt(frac), tauAt(frac))}
}

// widen converts x to the working precision of P.
func (x Num[P]) widen() (v int64, scale int64, work int) {
	frac, work := params[P]()
	return lsh(x.raw, work-frac), pow10[work], work
}

// τ·10^18 = tau18 + tau18Frac/10^18, with tau18Frac rounded.
const (
	tau18     = 6_283_185_307_179_586_476
	tau18Frac = 925_286_766_559_005_768
)

// angle converts x to the working precision of P and reduces it to a
// single turn. Turns are removed from the 128-bit product raw·10^(18-F)
// using τ to 36 digits, so that the remainder stays accurate for every
// raw value, even where widening x would saturate.
func (x Num[P]) angle() (v int64, scale int64, work int) {
	frac, work := params[P]()
	hi, lo := bits.Mul64(mag(x.raw), uint64(pow10[maxDigits-frac]))
	q, r := bits.Div64(hi, lo, tau18)
	qd, _ := mulQuo(int64(q), tau18Frac, pow10[maxDigits])
	v = rshHalfAway(int64(r)-qd, maxDigits-work)
	if x.raw < 0 {
		v = -v
	}
	return normalize(v, piAt(work), tauAt(work)), pow10[work], work
}

// narrow converts v from the working precision of P.
func narrow[P Precision](v int64) Num[P] {
	frac, work := params[P]()
	return Num[P]{raw: rescale(v, work, frac)}
}

// sinAt calculates sin(x) at the given working precision.
func sinAt(x int64, work int) int64 {
	s := pow10[work]
	pi, half := piAt(work), halfPiAt(work)
	x = normalize(x, pi, tauAt(work))
	// sin(x) = sin(π - x) keeps the argument within [-π/2, π/2]
	switch {
	case x > half:
		x = pi - x
	case x < -half:
		x = -pi - x
	}
	x2 := mulAt(x, x, s)
	return series(x, work, func(t int64, n int) int64 {
		return -quoHalfAway(mulAt(t, x2, s), int64(2*n*(2*n+1)))
	})
}

// cosAt calculates cos(x) = sin(π/2 - x) at the given working precision.
func cosAt(x int64, work int) int64 {
	return sinAt(halfPiAt(work)-normalize(x, piAt(work), tauAt(work)), work)
}

// sinhCoshAt calculates sinh(x) and cosh(x), where x is given at the
// working precision. The argument is halved k times into [-2, 2] and both
// series are summed at scale 10^18. The results are then doubled back
// k times with sinh 2y = 2·sinh y·cosh y and cosh 2y = 2·cosh² y - 1.
// Each doubling keeps as many digits as the doubled values leave room
// for, so the results are returned at their own scale 10^digits.
// Arguments whose results do not fit at scale 1 saturate.
func sinhCoshAt(x int64, work int) (sh, ch int64, digits int) {
	neg := x < 0
	a := x
	if neg {
		a = -a
		if a < 0 {
			a = math.MaxInt64
		}
	}
	k := 0
	for a>>k > pow10[work] {
		k++
	}
	y, _ := mulQuo(a, pow10[maxDigits-work], int64(1)<<k)

	e := maxDigits
	s := pow10[e]
	y2 := mulAt(y, y, s)
	sh = series(y, e, func(t int64, n int) int64 {
		return quoHalfAway(mulAt(t, y2, s), int64(2*n*(2*n+1)))
	})
	ch = series(s, e, func(t int64, n int) int64 {
		return quoHalfAway(mulAt(t, y2, s), int64((2*n-1)*(2*n)))
	})

	for k > 0 {
		// d digits are dropped from the doubled values.
		d := 0
		c2, ok := mulQuo(ch, ch, pow10[e])
		for (!ok || c2 > math.MaxInt64/2) && e+d < maxDigits && d < e {
			d++
			c2, ok = mulQuo(ch, ch, pow10[e+d])
		}
		if !ok || c2 > math.MaxInt64/2 {
			if e == 0 {
				return extreme(neg), math.MaxInt64, 0
			}
			sh, ch = rshHalfAway(sh, 1), rshHalfAway(ch, 1)
			e--
			continue
		}
		sh, ch = 2*mulAt(sh, ch, pow10[e+d]), 2*c2-pow10[e-d]
		e -= d
		k--
	}
	if neg {
		sh = -sh
	}
	return sh, ch, e
}

// lnAt calculates ln(x) at the given working precision. x must be positive.
// The argument is brought into [1, 2] by halving or doubling, and
// ln(x) = 2·artanh((x-1)/(x+1)) is summed for the reduced argument.
func lnAt(x int64, work int) int64 {
	s := pow10[work]
	var k int64
	for x > 2*s {
		x = quoHalfAway(x, 2)
		k++
	}
	for x < s {
		x *= 2
		k--
	}
	y := quoAt(x-s, x+s, s)
	y2 := mulAt(y, y, s)
	sum := series(y, work, func(t int64, n int) int64 {
		return mulAt(mulAt(t, y2, s), int64(2*n-1), int64(2*n+1))
	})
	return addSat(2*sum, mulSat(k, ln2At(work)))
}

// lnScaled calculates ln(raw / 10^frac) at the given working precision.
// Powers of two are split off before widening, so that every positive
// raw value stays within int64. raw must be positive.
func lnScaled(raw int64, frac, work int) int64 {
	k := 0
	for raw>>k > 2*pow10[frac] {
		k++
	}
	v, _ := mulQuo(raw, pow10[work-frac], int64(1)<<k)
	return addSat(lnAt(v, work), mulSat(int64(k), ln2At(work)))
}

// Sin returns the sine of x, in radians.
func (x Num[P]) Sin() Num[P] {
	v, _, work := x.angle()
	return narrow[P](sinAt(v, work))
}

// Cos returns the cosine of x, in radians.
func (x Num[P]) Cos() Num[P] {
	v, _, work := x.angle()
	return narrow[P](cosAt(v, work))
}

// Tan returns the tangent of x, in radians.
//
// Tan returns an error if the cosine of x rounds to 0.
func (x Num[P]) Tan() (Num[P], error) {
	v, s, work := x.angle()
	c := cosAt(v, work)
	if c == 0 {
		return Num[P]{}, fmt.Errorf("computing [tan(%v)]: %w", x, ErrDivisionByZero)
	}
	return narrow[P](quoAt(sinAt(v, work), c, s)), nil
}

// Cot returns the cotangent of x, in radians.
//
// Cot returns an error if the sine of x rounds to 0.
func (x Num[P]) Cot() (Num[P], error) {
	v, s, work := x.angle()
	d := sinAt(v, work)
	if d == 0 {
		return Num[P]{}, fmt.Errorf("computing [cot(%v)]: %w", x, ErrDivisionByZero)
	}
	return narrow[P](quoAt(cosAt(v, work), d, s)), nil
}

// Sinh returns the hyperbolic sine of x.
// Large arguments saturate.
func (x Num[P]) Sinh() Num[P] {
	frac, _ := params[P]()
	v, _, work := x.widen()
	sh, _, e := sinhCoshAt(v, work)
	return Num[P]{raw: rescale(sh, e, frac)}
}

// Cosh returns the hyperbolic cosine of x.
// Large arguments saturate.
func (x Num[P]) Cosh() Num[P] {
	frac, _ := params[P]()
	v, _, work := x.widen()
	_, ch, e := sinhCoshAt(v, work)
	return Num[P]{raw: rescale(ch, e, frac)}
}

// Tanh returns the hyperbolic tangent of x.
func (x Num[P]) Tanh() Num[P] {
	v, s, work := x.widen()
	sh, ch, _ := sinhCoshAt(v, work)
	return narrow[P](quoAt(sh, ch, s))
}

// Coth returns the hyperbolic cotangent of x.
//
// Coth returns an error if x is 0.
func (x Num[P]) Coth() (Num[P], error) {
	v, s, work := x.widen()
	sh, ch, _ := sinhCoshAt(v, work)
	if sh == 0 {
		return Num[P]{}, fmt.Errorf("computing [coth(%v)]: %w", x, ErrDivisionByZero)
	}
	return narrow[P](quoAt(ch, sh, s)), nil
}

// Ln returns the natural logarithm of x.
//
// Ln returns an error if x is 0 or negative.
func (x Num[P]) Ln() (Num[P], error) {
	if x.raw <= 0 {
		return Num[P]{}, fmt.Errorf("computing [ln(%v)]: %w", x, ErrNonPositiveLog)
	}
	frac, work := params[P]()
	return narrow[P](lnScaled(x.raw, frac, work)), nil
}

// Arcsinh returns the inverse hyperbolic sine of x,
// computed as ln(x + sqrt(x² + 1)).
// Where x² does not fit the working precision, it is computed as
// ln(x) + ln(1 + sqrt(1 + 1/x²)).
func (x Num[P]) Arcsinh() Num[P] {
	frac, work := params[P]()
	s := pow10[work]
	a := x.raw
	if a < 0 {
		a = -a
		if a < 0 {
			a = math.MaxInt64
		}
	}
	var z int64
	v := lsh(a, work-frac)
	if v2, ok := mulQuo(v, v, s); ok && !isExtreme(v) {
		z = lnAt(addSat(v, sqrtScaled(addSat(v2, s), s)), work)
	} else {
		w := invSquare(a, frac, work)
		z = addSat(lnScaled(a, frac, work), lnAt(s+sqrtScaled(s+w, s), work))
	}
	if x.raw < 0 {
		z = -z
	}
	return narrow[P](z)
}

// Arccosh returns the inverse hyperbolic cosine of x,
// computed as ln(x + sqrt(x² - 1)).
// Where x² does not fit the working precision, it is computed as
// ln(x) + ln(1 + sqrt(1 - 1/x²)).
//
// Arccosh returns an error if x is less than 1.
func (x Num[P]) Arccosh() (Num[P], error) {
	frac, work := params[P]()
	s := pow10[work]
	switch {
	case x.raw <= -pow10[frac]:
		return Num[P]{}, fmt.Errorf("computing [arccosh(%v)]: %w", x, ErrNonPositiveLog)
	case x.raw < pow10[frac]:
		return Num[P]{}, fmt.Errorf("computing [arccosh(%v)]: %w", x, ErrNegativeSqrt)
	}
	v := lsh(x.raw, work-frac)
	if v2, ok := mulQuo(v, v, s); ok && !isExtreme(v) {
		return narrow[P](lnAt(addSat(v, sqrtScaled(v2-s, s)), work)), nil
	}
	w := invSquare(x.raw, frac, work)
	return narrow[P](addSat(lnScaled(x.raw, frac, work), lnAt(s+sqrtScaled(s-w, s), work))), nil
}

// invSquare calculates 1/x² at the given working precision,
// where x = raw / 10^frac and x > 1.
func invSquare(raw int64, frac, work int) int64 {
	s := pow10[work]
	inv, _ := mulQuo(s, pow10[frac], raw)
	return mulAt(inv, inv, s)
}

// Arctanh returns the inverse hyperbolic tangent of x,
// computed as ln((1 + x) / (1 - x)) / 2.
//
// Arctanh returns an error if x is not within (-1, 1).
func (x Num[P]) Arctanh() (Num[P], error) {
	v, s, work := x.widen()
	z, err := halfLnRatio(addSat(s, v), subSat(s, v), s, work)
	if err != nil {
		return Num[P]{}, fmt.Errorf("computing [arctanh(%v)]: %w", x, err)
	}
	return narrow[P](z), nil
}

// Arccoth returns the inverse hyperbolic cotangent of x,
// computed as ln((x + 1) / (x - 1)) / 2.
//
// Arccoth returns an error if x is within [-1, 1].
func (x Num[P]) Arccoth() (Num[P], error) {
	v, s, work := x.widen()
	z, err := halfLnRatio(addSat(v, s), subSat(v, s), s, work)
	if err != nil {
		return Num[P]{}, fmt.Errorf("computing [arccoth(%v)]: %w", x, err)
	}
	return narrow[P](z), nil
}

// halfLnRatio calculates ln(a / b) / 2 at the given working precision.
func halfLnRatio(a, b, s int64, work int) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	r := quoAt(a, b, s)
	if r <= 0 {
		return 0, ErrNonPositiveLog
	}
	return quoHalfAway(lnAt(r, work), 2), nil
}
