package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const Tolerance = 1e-6

// Angles coming out of the solver are sums of many small steps, so equality
// on them is tolerance based.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

func Radians(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

func Degrees(radians float64) float64 {
	return radians / math.Pi * 180
}

// Round to the nearest integer, halves away from zero.
func roundToInt(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
