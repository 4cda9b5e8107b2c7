package vector

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/sw965/vecx/mathx"
	"github.com/sw965/vecx/mathx/randx"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

var (
	ErrInvalidRange   = errors.New("invalid index range")
	ErrEmptyVector    = errors.New("empty vector")
	ErrLengthMismatch = errors.New("vector length mismatch")
)

func New(values ...float32) blas32.Vector {
	return blas32.Vector{
		N:    len(values),
		Inc:  1,
		Data: slices.Clone(values),
	}
}

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func NewOnes(n int) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = 1.0
	}
	return vec
}

func NewRademacher(n int, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = randx.Rademacher(rng)
	}
	return vec
}

func NewRademacherLike(vec blas32.Vector, rng *rand.Rand) blas32.Vector {
	return NewRademacher(vec.N, rng)
}

func NewNormal(n int, mean, sigma float32, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = float32(randx.Normal(float64(mean), float64(sigma), rng))
	}
	return vec
}

func Values(vec blas32.Vector) []float32 {
	if vec.Inc == 1 {
		return slices.Clone(vec.Data[:vec.N])
	}
	values := make([]float32, vec.N)
	for i := range values {
		values[i] = vec.Data[i*vec.Inc]
	}
	return values
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:    vec.N,
		Inc:  1,
		Data: Values(vec),
	}
}

func Equal(a, b blas32.Vector) bool {
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

func EqualWithAbsTol(a, b blas32.Vector, tol float32) bool {
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

// Sub returns a copy of vec[i1:i2].
func Sub(vec blas32.Vector, i1, i2 int) (blas32.Vector, error) {
	if i1 < 0 || i2 > vec.N || i1 > i2 {
		return blas32.Vector{}, fmt.Errorf("vector.Sub: [%d, %d) of length %d: %w", i1, i2, vec.N, ErrInvalidRange)
	}
	sub := NewZeros(i2 - i1)
	for i := range sub.Data {
		sub.Data[i] = vec.Data[(i1+i)*vec.Inc]
	}
	return sub, nil
}

func Concat(vecs ...blas32.Vector) blas32.Vector {
	n := 0
	for _, vec := range vecs {
		n += vec.N
	}
	data := make([]float32, 0, n)
	for _, vec := range vecs {
		data = append(data, Values(vec)...)
	}
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: data,
	}
}

// Householder is the single precision counterpart of the blas64 version:
// v[0] == 1 and (I - beta*v*vᵀ)*x == ‖x‖*e0. x is scaled by its largest
// element first, so float32 range limits on x² do not matter.
func Householder(x blas32.Vector) (float32, blas32.Vector, error) {
	if x.N == 0 {
		return 0.0, blas32.Vector{}, fmt.Errorf("vector.Householder: %w", ErrEmptyVector)
	}

	v := Clone(x)
	scale := MaxAbs(v)
	if scale == 0.0 {
		v.Data[0] = 1.0
		return 0.0, v, nil
	}
	for i := range v.Data {
		v.Data[i] /= scale
	}

	x0 := v.Data[0]
	tail := blas32.Vector{N: v.N - 1, Inc: 1, Data: v.Data[1:]}

	var sigma float32
	if tail.N > 0 {
		sigma = blas32.Dot(tail, tail)
	}

	v.Data[0] = 1.0
	if sigma == 0.0 {
		return 0.0, v, nil
	}

	mu := math32.Sqrt(x0*x0 + sigma)
	var v0 float32
	if x0 <= 0.0 {
		v0 = x0 - mu
	} else {
		v0 = -sigma / (x0 + mu)
	}

	v0Sq := v0 * v0
	beta := 2.0 * v0Sq / (sigma + v0Sq)
	blas32.Scal(1.0/v0, tail)
	return beta, v, nil
}

// MaxAbs returns the largest absolute element, 0 for an empty vector.
func MaxAbs(vec blas32.Vector) float32 {
	var m float32
	for i := 0; i < vec.N; i++ {
		m = math32.Max(m, math32.Abs(vec.Data[i*vec.Inc]))
	}
	return m
}

func Affine(x blas32.Vector, w blas32.General, b blas32.Vector) (blas32.Vector, error) {
	if w.Cols != x.N || w.Rows != b.N {
		return blas32.Vector{}, fmt.Errorf("vector.Affine: w is %dx%d, x.N = %d, b.N = %d: %w", w.Rows, w.Cols, x.N, b.N, ErrLengthMismatch)
	}
	y := Clone(b)
	blas32.Gemv(blas.NoTrans, 1.0, w, x, 1.0, y)
	return y, nil
}
