package util

import "math"

// RoundHalfUp rounds to the nearest integer, with halves going towards +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// ClampInt restricts v to [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Fraction returns where v sits between lo and hi, clamped to [0, 1].
func Fraction(v, lo, hi float64) float64 {
	if hi == lo {
		return 1
	}
	f := (v - lo) / (hi - lo)
	return math.Max(0, math.Min(1, f))
}
