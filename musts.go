package fixed

import "fmt"

// MustNewFromFloat64 is like [NewFromFloat64] but panics if f is NaN.
func MustNewFromFloat64[P Precision](f float64) Num[P] {
	x, err := NewFromFloat64[P](f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return x
}

// MustQuo is like [Num.Quo] but panics if computing error.
func (x Num[P]) MustQuo(y Num[P]) Num[P] {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustRem is like [Num.Rem] but panics if computing error.
func (x Num[P]) MustRem(y Num[P]) Num[P] {
	z, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return z
}

// MustSqrt is like [Num.Sqrt] but panics if computing error.
func (x Num[P]) MustSqrt() Num[P] {
	z, err := x.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return z
}

// MustFactorial is like [Num.Factorial] but panics if computing error.
func (x Num[P]) MustFactorial() Num[P] {
	z, err := x.Factorial()
	if err != nil {
		panic(fmt.Sprintf("MustFactorial() failed: %v", err))
	}
	return z
}

// MustLn is like [Num.Ln] but panics if computing error.
func (x Num[P]) MustLn() Num[P] {
	z, err := x.Ln()
	if err != nil {
		panic(fmt.Sprintf("MustLn() failed: %v", err))
	}
	return z
}

// MustTan is like [Num.Tan] but panics if computing error.
func (x Num[P]) MustTan() Num[P] {
	z, err := x.Tan()
	if err != nil {
		panic(fmt.Sprintf("MustTan() failed: %v", err))
	}
	return z
}
