package vector

import (
	"github.com/sw965/vecx/logging"
	"github.com/sw965/vecx/mathx"
	"gonum.org/v1/gonum/blas/blas64"
)

const DefaultTol = 1e-9

func IsZero(vec blas64.Vector) bool {
	for i := 0; i < vec.N; i++ {
		if vec.Data[i*vec.Inc] != 0.0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same length and identical elements.
func Equal(a, b blas64.Vector) bool {
	if a.N != b.N {
		return false
	}
	for i := 0; i < a.N; i++ {
		if a.Data[i*a.Inc] != b.Data[i*b.Inc] {
			return false
		}
	}
	return true
}

func EqualWithAbsTol(a, b blas64.Vector, tol float64) bool {
	if a.N != b.N {
		return false
	}
	for i := 0; i < a.N; i++ {
		if !mathx.EqualWithinAbs(a.Data[i*a.Inc], b.Data[i*b.Inc], tol) {
			return false
		}
	}
	return true
}

// AssertEqual is EqualWithAbsTol that logs both vectors when they differ.
func AssertEqual(expected, actual blas64.Vector, tol float64) bool {
	if EqualWithAbsTol(expected, actual, tol) {
		return true
	}

	logger := logging.Get()
	logger.Error().
		Str("expected", Dump(expected)).
		Str("actual", Dump(actual)).
		Float64("tol", tol).
		Msg("vectors not equal")
	return false
}
