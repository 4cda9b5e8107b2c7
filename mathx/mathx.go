package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// EqualWithinAbs reports whether a and b differ by at most tol.
// Two NaNs compare equal; a NaN never equals a number.
func EqualWithinAbs[X constraints.Float](a, b, tol X) bool {
	aNaN := math.IsNaN(float64(a))
	bNaN := math.IsNaN(float64(b))
	if aNaN || bNaN {
		return aNaN && bNaN
	}

	if a == b {
		return true
	}
	return math.Abs(float64(a-b)) <= float64(tol)
}
