package fixed

import (
	"math"
	"math/bits"
)

// maxDigits is the largest number of fractional digits an int64 can carry
// while still representing 1.
const maxDigits = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// mag returns the magnitude of x. mag(math.MinInt64) is 2^63.
func mag(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// extreme returns the representable value furthest from zero with the given sign.
func extreme(neg bool) int64 {
	if neg {
		return math.MinInt64
	}
	return math.MaxInt64
}

// isExtreme reports whether x is a saturated value.
func isExtreme(x int64) bool {
	return x == math.MaxInt64 || x == math.MinInt64
}

// fromMag converts a magnitude and a sign back to int64, saturating
// when the magnitude does not fit.
func fromMag(neg bool, u uint64) (z int64, ok bool) {
	switch {
	case u <= math.MaxInt64:
		z = int64(u)
		if neg {
			z = -z
		}
		return z, true
	case neg && u == 1<<63:
		return math.MinInt64, true
	}
	return extreme(neg), false
}

// quoHalfAway calculates x / y and rounds the result half away from zero.
// The quotient wraps in the single case math.MinInt64 / -1, like the
// built-in division. y must not be 0.
func quoHalfAway(x, y int64) int64 {
	neg := (x < 0) != (y < 0)
	ux, uy := mag(x), mag(y)
	q, r := ux/uy, ux%uy
	if r >= uy-r {
		q++
	}
	z := int64(q)
	if neg {
		z = -z
	}
	return z
}

// mulQuo calculates x * y / z using a 128-bit intermediate product and
// rounds the result half away from zero.
// If the result does not fit int64, it is saturated and ok is false.
// z must not be 0.
func mulQuo(x, y, z int64) (int64, bool) {
	neg := (x < 0) != (y < 0) != (z < 0)
	uz := mag(z)
	hi, lo := bits.Mul64(mag(x), mag(y))
	if hi >= uz {
		return extreme(neg), false
	}
	q, r := bits.Div64(hi, lo, uz)
	if r >= uz-r {
		if q == math.MaxUint64 {
			return extreme(neg), false
		}
		q++
	}
	return fromMag(neg, q)
}

// mulSat calculates x * y and saturates on overflow.
func mulSat(x, y int64) int64 {
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(mag(x), mag(y))
	if hi != 0 {
		return extreme(neg)
	}
	z, _ := fromMag(neg, lo)
	return z
}

// addSat calculates x + y and saturates on overflow.
func addSat(x, y int64) int64 {
	z := x + y
	switch {
	case x > 0 && y > 0 && z < 0:
		return math.MaxInt64
	case x < 0 && y < 0 && z >= 0:
		return math.MinInt64
	}
	return z
}

// subSat calculates x - y and saturates on overflow.
func subSat(x, y int64) int64 {
	if y == math.MinInt64 {
		if x >= 0 {
			return math.MaxInt64
		}
		return x - y
	}
	return addSat(x, -y)
}

// lsh (Left Shift) calculates x * 10^shift and saturates on overflow.
func lsh(x int64, shift int) int64 {
	if shift <= 0 {
		return x
	}
	return mulSat(x, pow10[shift])
}

// rshHalfAway (Right Shift) calculates x / 10^shift and rounds the result
// half away from zero. Saturated values stay saturated.
func rshHalfAway(x int64, shift int) int64 {
	if shift <= 0 || x == 0 || isExtreme(x) {
		return x
	}
	return quoHalfAway(x, pow10[shift])
}

// rescale converts x from scale 10^from to scale 10^to, rounding half away
// from zero or saturating.
func rescale(x int64, from, to int) int64 {
	if from >= to {
		return rshHalfAway(x, from-to)
	}
	return lsh(x, to-from)
}

// midpoint returns floor((x + y) / 2) without overflow.
func midpoint(x, y uint64) uint64 {
	return (x & y) + (x^y)>>1
}

// isqrt calculates the square root of n rounded to the nearest integer.
// The Newton-Raphson sequence starts at n and decreases monotonically
// until it reaches floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x0 := n
	x1 := midpoint(x0, n/x0)
	for x1 < x0 {
		x0 = x1
		x1 = midpoint(x0, n/x0)
	}
	// n - x0² <= 2·x0, so round up only past the half-way point.
	if n-x0*x0 > x0 {
		x0++
	}
	return x0
}

// sqrtScaled calculates sqrt(x * scale) rounded to the nearest integer.
// x must not be negative.
func sqrtScaled(x, scale int64) int64 {
	hi, lo := bits.Mul64(uint64(x), uint64(scale))
	return int64(sqrt128(hi, lo))
}

// sqrt128 calculates the square root of the 128-bit number hi·2^64 + lo
// rounded to the nearest integer. hi must be below 2^62.
// The Newton-Raphson sequence starts above the root, at
// (isqrt(hi) + 1)·2^32, and decreases monotonically until it reaches
// the floor of the root.
func sqrt128(hi, lo uint64) uint64 {
	if hi == 0 {
		return isqrt(lo)
	}
	x0 := (isqrt(hi) + 1) << 32
	for {
		q, _ := bits.Div64(hi, lo, x0)
		x1 := midpoint(x0, q)
		if x1 >= x0 {
			break
		}
		x0 = x1
	}
	// The remainder n - x0² fits 65 bits.
	h, l := bits.Mul64(x0, x0)
	l, borrow := bits.Sub64(lo, l, 0)
	h, _ = bits.Sub64(hi, h, borrow)
	if h != 0 || l > x0 {
		x0++
	}
	return x0
}
