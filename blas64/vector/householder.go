package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

// Householder computes v and beta such that (I - beta*v*vᵀ)*x = ‖x‖*e0,
// with v[0] normalised to 1 (Golub & Van Loan, Algorithm 5.1.1).
// x is left untouched.
func Householder(x blas64.Vector) (float64, blas64.Vector, error) {
	if x.N == 0 {
		return 0.0, blas64.Vector{}, fmt.Errorf("vector.Householder: %w", ErrEmptyVector)
	}

	v := Clone(x)
	maxIdx := blas64.Iamax(v)
	scale := math.Abs(v.Data[maxIdx])
	if scale == 0.0 {
		v.Data[0] = 1.0
		return 0.0, v, nil
	}

	// beta and v do not depend on the scale of x; working on x/‖x‖∞
	// keeps sigma and mu clear of underflow and overflow.
	for i := range v.Data {
		v.Data[i] /= scale
	}

	x0 := v.Data[0]
	tail := blas64.Vector{N: v.N - 1, Inc: 1, Data: v.Data[1:]}

	var sigma float64
	if tail.N > 0 {
		sigma = blas64.Dot(tail, tail)
	}

	v.Data[0] = 1.0
	if sigma == 0.0 {
		return 0.0, v, nil
	}

	mu := math.Sqrt(x0*x0 + sigma)
	var v0 float64
	if x0 <= 0.0 {
		v0 = x0 - mu
	} else {
		// x0 - mu without cancellation
		v0 = -sigma / (x0 + mu)
	}

	v0Sq := v0 * v0
	beta := 2.0 * v0Sq / (sigma + v0Sq)
	blas64.Scal(1.0/v0, tail)
	return beta, v, nil
}

// Reflect applies I - beta*v*vᵀ to x and returns the result.
func Reflect(beta float64, v, x blas64.Vector) (blas64.Vector, error) {
	if v.N != x.N {
		return blas64.Vector{}, fmt.Errorf("vector.Reflect: len(v) = %d, len(x) = %d: %w", v.N, x.N, ErrLengthMismatch)
	}

	y := Clone(x)
	if y.N == 0 {
		return y, nil
	}
	blas64.Axpy(-beta*blas64.Dot(v, x), v, y)
	return y, nil
}
