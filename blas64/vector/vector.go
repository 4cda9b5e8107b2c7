package vector

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

func New(values ...float64) blas64.Vector {
	return blas64.Vector{
		N:    len(values),
		Inc:  1,
		Data: slices.Clone(values),
	}
}

// NewFromSlice copies the first n values of data.
func NewFromSlice(n int, data []float64) (blas64.Vector, error) {
	if n < 0 {
		return blas64.Vector{}, fmt.Errorf("vector.NewFromSlice: n = %d: %w", n, ErrInvalidRange)
	}
	if len(data) < n {
		return blas64.Vector{}, fmt.Errorf("vector.NewFromSlice: n = %d, len(data) = %d: %w", n, len(data), ErrShortData)
	}
	return New(data[:n]...), nil
}

func NewZeros(n int) blas64.Vector {
	return blas64.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float64, n),
	}
}

func NewZerosLike(vec blas64.Vector) blas64.Vector {
	return NewZeros(vec.N)
}

func NewOnes(n int) blas64.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = 1.0
	}
	return vec
}

// NewBasis returns the i-th standard basis vector of length n.
func NewBasis(n, i int) (blas64.Vector, error) {
	if i < 0 || i >= n {
		return blas64.Vector{}, fmt.Errorf("vector.NewBasis: i = %d, n = %d: %w", i, n, ErrInvalidRange)
	}
	vec := NewZeros(n)
	vec.Data[i] = 1.0
	return vec, nil
}

// Values returns the elements of vec in order as a fresh contiguous slice.
func Values(vec blas64.Vector) []float64 {
	if vec.Inc == 1 {
		return slices.Clone(vec.Data[:vec.N])
	}
	values := make([]float64, vec.N)
	for i := range values {
		values[i] = vec.Data[i*vec.Inc]
	}
	return values
}

func Clone(vec blas64.Vector) blas64.Vector {
	return blas64.Vector{
		N:    vec.N,
		Inc:  1,
		Data: Values(vec),
	}
}

// Sub returns a copy of vec[i1:i2].
func Sub(vec blas64.Vector, i1, i2 int) (blas64.Vector, error) {
	if i1 < 0 || i2 > vec.N || i1 > i2 {
		return blas64.Vector{}, fmt.Errorf("vector.Sub: [%d, %d) of length %d: %w", i1, i2, vec.N, ErrInvalidRange)
	}
	sub := NewZeros(i2 - i1)
	for i := range sub.Data {
		sub.Data[i] = vec.Data[(i1+i)*vec.Inc]
	}
	return sub, nil
}

func Concat(vecs ...blas64.Vector) blas64.Vector {
	n := 0
	for _, vec := range vecs {
		n += vec.N
	}

	data := make([]float64, 0, n)
	for _, vec := range vecs {
		data = append(data, Values(vec)...)
	}
	return blas64.Vector{
		N:    n,
		Inc:  1,
		Data: data,
	}
}

func Norm2(vec blas64.Vector) float64 {
	if vec.N == 0 {
		return 0.0
	}
	return blas64.Nrm2(vec)
}

func ToVecDense(vec blas64.Vector) (*mat.VecDense, error) {
	if vec.N == 0 {
		return nil, fmt.Errorf("vector.ToVecDense: %w", ErrEmptyVector)
	}
	return mat.NewVecDense(vec.N, Values(vec)), nil
}

func FromVecDense(v mat.Vector) blas64.Vector {
	vec := NewZeros(v.Len())
	for i := range vec.Data {
		vec.Data[i] = v.AtVec(i)
	}
	return vec
}
