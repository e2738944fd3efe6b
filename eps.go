package geom2

import "github.com/chewxy/math32"

// EPS is the process-wide absolute tolerance below which a value is
// treated as zero. It is deliberately a constant, not a knob: every
// algorithm in the package routes its comparisons through the helpers
// below, so all of them agree on what "parallel", "tangent" and
// "degenerate" mean.
const EPS float32 = 1e-8

// IsZero reports whether x is within EPS of zero.
func IsZero(x float32) bool {
	return math32.Abs(x) < EPS
}

// Equal reports whether a and b differ by less than EPS.
func Equal(a, b float32) bool {
	return IsZero(a - b)
}

// Sign classifies x as -1, 0 or +1, treating values within EPS of zero
// as zero.
func Sign(x float32) int {
	switch {
	case IsZero(x):
		return 0
	case x < 0:
		return -1
	default:
		return 1
	}
}
