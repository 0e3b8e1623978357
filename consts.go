package fixed

// Constants are stored as a whole part and a 19-digit fractional numerator
// and rounded to the precision at hand.
const (
	piFrac     = 1415926535897932384 // π = 3.1415926535897932384...
	tauFrac    = 2831853071795864769 // τ = 6.2831853071795864769...
	halfPiFrac = 5707963267948966192 // π/2 = 1.5707963267948966192...
	phiFrac    = 6180339887498948482 // φ = 1.6180339887498948482...
	egammaFrac = 5772156649015328606 // γ = 0.5772156649015328606...
	sqrt2Frac  = 4142135623730950488 // √2 = 1.4142135623730950488...
	eFrac      = 7182818284590452353 // e = 2.7182818284590452353...
	ln2Frac    = 6931471805599453094 // ln(2) = 0.6931471805599453094...
)

// Zero returns 0.
func Zero[P Precision]() Num[P] {
	return Num[P]{}
}

// One returns 1.
func One[P Precision]() Num[P] {
	return NewFromInt[P](1)
}

// Pi returns Archimedes' constant π.
func Pi[P Precision]() Num[P] {
	return NewFromParts[P](3, piFrac)
}

// Tau returns the full circle constant τ, equal to 2π.
func Tau[P Precision]() Num[P] {
	return NewFromParts[P](6, tauFrac)
}

// Phi returns the golden ratio φ.
func Phi[P Precision]() Num[P] {
	return NewFromParts[P](1, phiFrac)
}

// EGamma returns the Euler-Mascheroni constant γ.
func EGamma[P Precision]() Num[P] {
	return NewFromParts[P](0, egammaFrac)
}

// Sqrt2 returns the square root of 2.
func Sqrt2[P Precision]() Num[P] {
	return NewFromParts[P](1, sqrt2Frac)
}

// E returns Euler's number e.
func E[P Precision]() Num[P] {
	return NewFromParts[P](2, eFrac)
}

// Ln2 returns the natural logarithm of 2.
func Ln2[P Precision]() Num[P] {
	return NewFromParts[P](0, ln2Frac)
}

// Working precision copies of the constants used by the series.
func piAt(work int) int64 { return fromParts(3, piFrac, work) }
func tauAt(work int) int64 { return fromParts(6, tauFrac, work) }
func halfPiAt(work int) int64 { return fromParts(1, halfPiFrac, work) }
func ln2At(work int) int64 { return fromParts(0, ln2Frac, work) }
