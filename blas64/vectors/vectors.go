package vectors

import (
	"fmt"

	"github.com/sw965/vecx/blas64/vector"
	"gonum.org/v1/gonum/blas/blas64"
)

func NewZerosLike(vs []blas64.Vector) []blas64.Vector {
	zeros := make([]blas64.Vector, len(vs))
	for i, v := range vs {
		zeros[i] = vector.NewZerosLike(v)
	}
	return zeros
}

func Clone(vs []blas64.Vector) []blas64.Vector {
	clone := make([]blas64.Vector, len(vs))
	for i, v := range vs {
		clone[i] = vector.Clone(v)
	}
	return clone
}

func Axpy(alpha float64, xs, ys []blas64.Vector) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("vectors.Axpy len(xs) != len(ys)")
	}

	for i, x := range xs {
		y := ys[i]
		if x.N != y.N {
			return fmt.Errorf("vectors.Axpy xs[%d].N = %d, ys[%d].N = %d: %w", i, x.N, i, y.N, vector.ErrLengthMismatch)
		}
		if x.N == 0 {
			continue
		}
		blas64.Axpy(alpha, x, y)
	}
	return nil
}

func Scal(alpha float64, ys []blas64.Vector) {
	for _, y := range ys {
		if y.N == 0 {
			continue
		}
		blas64.Scal(alpha, y)
	}
}

// EqualWithAbsTol compares as and bs pairwise.
func EqualWithAbsTol(as, bs []blas64.Vector, tol float64) bool {
	if len(as) != len(bs) {
		return false
	}
	for i, a := range as {
		if !vector.EqualWithAbsTol(a, bs[i], tol) {
			return false
		}
	}
	return true
}

func Flatten(vs []blas64.Vector) blas64.Vector {
	return vector.Concat(vs...)
}

// Split cuts v into consecutive pieces of the given sizes.
func Split(v blas64.Vector, sizes ...int) ([]blas64.Vector, error) {
	total := 0
	for _, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("vectors.Split negative size %d: %w", size, vector.ErrInvalidRange)
		}
		total += size
	}
	if total != v.N {
		return nil, fmt.Errorf("vectors.Split sizes sum to %d, v.N = %d: %w", total, v.N, vector.ErrLengthMismatch)
	}

	pieces := make([]blas64.Vector, len(sizes))
	start := 0
	for i, size := range sizes {
		piece, err := vector.Sub(v, start, start+size)
		if err != nil {
			return nil, err
		}
		pieces[i] = piece
		start += size
	}
	return pieces, nil
}
