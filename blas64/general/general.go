package general

import (
	"fmt"
	"slices"

	"github.com/sw965/vecx/blas64/vector"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

func NewZeros(rows, cols int) blas64.General {
	return blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, rows*cols),
	}
}

func NewIdentity(n int) blas64.General {
	gen := NewZeros(n, n)
	for i := 0; i < n; i++ {
		gen.Data[At(gen, i, i)] = 1.0
	}
	return gen
}

func Clone(gen blas64.General) blas64.General {
	return blas64.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas64.General, row, col int) int {
	return row*gen.Stride + col
}

// HouseholderReflector builds I - beta*v*vᵀ.
func HouseholderReflector(beta float64, v blas64.Vector) blas64.General {
	p := NewIdentity(v.N)
	if v.N == 0 {
		return p
	}
	blas64.Ger(-beta, v, v, p)
	return p
}

func MulVec(a blas64.General, x blas64.Vector) (blas64.Vector, error) {
	if a.Cols != x.N {
		return blas64.Vector{}, fmt.Errorf("general.MulVec a.Cols = %d, x.N = %d: %w", a.Cols, x.N, vector.ErrLengthMismatch)
	}

	y := vector.NewZeros(a.Rows)
	if a.Rows == 0 || a.Cols == 0 {
		return y, nil
	}
	blas64.Gemv(blas.NoTrans, 1.0, a, x, 0.0, y)
	return y, nil
}
