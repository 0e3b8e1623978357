/*
Package fixed implements immutable fixed-point decimal numbers with
deterministic integer-only arithmetic.
It is specifically designed for small calculators and other environments
where floating-point hardware is unavailable or where results must be
bit-for-bit reproducible across machines.

# Representation

[Num] is a struct with a single signed 64-bit field, the raw value.
The type parameter P, a [Precision], fixes two scales at compile time:

  - F, the output precision: the number of digits after the decimal point.
    The numerical value of a number is raw / 10^F.
    For example, with F = 2 the number 3 is stored as 300.
  - TF, the working precision: the number of digits after the decimal point
    used internally while evaluating series.
    F <= TF <= 18 must hold; a precision that violates it panics on first use.

Numbers of different precisions are different types and cannot be mixed
without an explicit conversion via [IncreaseFrac] or [DecreaseFrac].

The range of a number is determined by its output precision:

	| Precision | F | TF | Minimum                    | Maximum                   |
	| --------- | - | -- | -------------------------- | ------------------------- |
	| Prec0x0   | 0 | 0  | -9,223,372,036,854,775,808 | 9,223,372,036,854,775,807 |
	| Prec2x4   | 2 | 4  | -92,233,720,368,547,758.08 | 92,233,720,368,547,758.07 |
	| Prec6x8   | 6 | 8  |  -9,223,372,036,854.775808 |  9,223,372,036,854.775807 |
	| Prec9x12  | 9 | 12 |   -9,223,372,036.854775808 |   9,223,372,036.854775807 |

Transcendental functions work with TF digits but accept the whole range.
Angles are reduced modulo τ and logarithms split off powers of two before
an argument is widened, and hyperbolic results are rebuilt at whatever
scale they fit.

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [Num.String], [Num.Format].
  - from/to float64:
    [NewFromFloat64], [Num.Float64].
  - from/to int64:
    [NewFromInt], [NewFromRaw], [Num.Int64], [Num.Raw].

# Operations

[Num.Add], [Num.Sub], [Num.Neg] and [Num.Abs] operate directly on raw values
and wrap around on overflow, like the built-in integer operators.
[Num.Mul] and [Num.Quo] rescale through the same 64-bit arithmetic and
wrap in the same way.

Constructors and precision conversions saturate instead: a value that does
not fit becomes the largest or smallest representable number.

Transcendental functions ([Num.Sin], [Num.Ln], [Num.Sinh] and the rest)
evaluate truncated power series at the working precision using 128-bit
intermediate products. Every series is bounded by a fixed number of terms,
so the running time of each function is bounded as well. Results that do
not fit are saturated, and a saturated intermediate stays saturated when it
is narrowed back to F digits.

# Rounding

All rounding, explicit or implicit, is half away from zero.

# Errors

All methods are pure and panic-free, except for the Must variants.
Errors are returned in the following cases:

  - Division by zero:
    [Num.Quo], [Num.Rem], [Num.Tan], [Num.Cot], [Num.Coth], [Num.Arctanh], [Num.Arccoth].
  - Square root of a negative number:
    [Num.Sqrt], [Num.Arccosh].
  - Logarithm of a non-positive number:
    [Num.Ln], [Num.Arccosh], [Num.Arctanh], [Num.Arccoth].
  - Factorial of a negative, fractional or too large number:
    [Num.Factorial].
  - Malformed input:
    [Parse], [NewFromFloat64].
  - Precision conversion in the wrong direction or across working precisions:
    [IncreaseFrac], [DecreaseFrac].

Every error wraps one of the exported sentinel values, so callers can
test for it with [errors.Is].
*/
package fixed
