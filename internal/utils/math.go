package utils

import (
	"math"
)

const (
	// maxRoundingDigits bounds the power of ten used by Round
	maxRoundingDigits = 15
	halfToleranceULPs = 8
)

// Round rounds value to digits fractional digits, halves away from zero.
// Non-finite values are returned unchanged.
func Round(value float64, digits int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if digits < 0 {
		digits = 0
	}
	if digits > maxRoundingDigits {
		digits = maxRoundingDigits
	}

	pow := math.Pow10(digits)
	scaled := value * pow
	if math.IsInf(scaled, 0) {
		return value
	}

	// A fraction within a few ULPs of one half is a half that lost its
	// representation, as in 1.005*100 = 100.49999999999999.
	if whole, frac := math.Modf(scaled); math.Abs(math.Abs(frac)-0.5) <= halfTolerance(scaled) {
		return (whole + math.Copysign(1, scaled)) / pow
	}
	return math.Round(scaled) / pow
}

// halfTolerance is the distance from one half still treated as a half
func halfTolerance(scaled float64) float64 {
	magnitude := math.Abs(scaled)
	return halfToleranceULPs * (math.Nextafter(magnitude, math.Inf(1)) - magnitude)
}

// ApproxEqual reports whether a and b are within relTol of each other, relative to the larger magnitude
func ApproxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return diff <= relTol
	}
	return diff/scale <= relTol
}
