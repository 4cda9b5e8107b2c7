package vector_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/sw965/vecx/blas32/vector"
	"github.com/sw965/vecx/mathx/randx"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestNewZeros(t *testing.T) {
	result := vector.NewZeros(7)
	if result.N != 7 || result.Inc != 1 || len(result.Data) != 7 {
		t.Errorf("unexpected vector %+v", result)
	}
}

func TestNewZerosLike(t *testing.T) {
	vec := vector.New(100.0, -200.0, 300.0)
	result := vector.NewZerosLike(vec)
	if !vector.Equal(result, vector.New(0.0, 0.0, 0.0)) {
		t.Errorf("got %v", result.Data)
	}
}

func TestNewRademacher(t *testing.T) {
	rng := randx.NewPCG(randx.DefaultSeed)
	result := vector.NewRademacher(10, rng)
	for _, e := range result.Data {
		if e != 1.0 && e != -1.0 {
			t.Errorf("unexpected element %v", e)
		}
	}

	like := vector.NewRademacherLike(vector.New(0.0, 0.1, 0.2, 0.3, 0.4), rng)
	if like.N != 5 {
		t.Errorf("NewRademacherLike length = %d", like.N)
	}
}

func TestClone(t *testing.T) {
	vec := vector.New(-1.0, -2.0, -3.0, -4.0, 1.0, 2.0, 3.0, 4.0)
	result := vector.Clone(vec)
	result.Data[0] = 1000.0

	if vec.Data[0] != -1.0 {
		t.Errorf("Clone shares storage with its source")
	}
}

func TestEqualWithAbsTol(t *testing.T) {
	a := vector.New(1.0, 2.0)
	if !vector.EqualWithAbsTol(a, vector.New(1.0, 2.00001), 1e-4) {
		t.Errorf("vectors within tolerance reported unequal")
	}
	if vector.EqualWithAbsTol(a, vector.New(1.0, 2.1), 1e-4) {
		t.Errorf("vectors outside tolerance reported equal")
	}
	if vector.EqualWithAbsTol(a, vector.New(1.0), 1.0) {
		t.Errorf("vectors of different length reported equal")
	}
}

func TestSubConcat(t *testing.T) {
	vec := vector.New(0.0, 1.0, 2.0, 3.0)
	a, err := vector.Sub(vec, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := vector.Sub(vec, 1, 4)
	if err != nil {
		t.Fatal(err)
	}

	result := vector.Concat(a, b)
	if !slices.Equal(result.Data, vec.Data) {
		t.Errorf("Concat(Sub, Sub) = %v", result.Data)
	}

	if _, err := vector.Sub(vec, 3, 2); !errors.Is(err, vector.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestHouseholder(t *testing.T) {
	beta, v, err := vector.Householder(vector.New(3.0, 4.0))
	if err != nil {
		t.Fatal(err)
	}
	if !vector.EqualWithAbsTol(vector.New(beta), vector.New(0.4), 1e-6) {
		t.Errorf("beta = %v", beta)
	}
	if !vector.EqualWithAbsTol(v, vector.New(1.0, -2.0), 1e-6) {
		t.Errorf("v = %v", v.Data)
	}

	rng := randx.NewPCG(3)
	x := vector.NewNormal(6, 0.0, 1.0, rng)
	beta, v, err = vector.Householder(x)
	if err != nil {
		t.Fatal(err)
	}
	var vx float32
	for i := range v.Data {
		vx += v.Data[i] * x.Data[i]
	}
	for i := 1; i < x.N; i++ {
		if r := x.Data[i] - beta*vx*v.Data[i]; r > 1e-5 || r < -1e-5 {
			t.Errorf("element %d of reflection = %v", i, r)
		}
	}

	if _, _, err := vector.Householder(blas32.Vector{}); !errors.Is(err, vector.ErrEmptyVector) {
		t.Errorf("expected ErrEmptyVector, got %v", err)
	}
}

func TestHouseholderEdgeCases(t *testing.T) {
	sqrt2 := float32(math.Sqrt2)
	tests := []struct {
		x            blas32.Vector
		expectedBeta float32
		expectedV    blas32.Vector
	}{
		{vector.New(-7.0), 0.0, vector.New(1.0)},
		{vector.New(0.0, 0.0, 0.0), 0.0, vector.New(1.0, 0.0, 0.0)},
		{blas32.Vector{N: 2, Inc: 3, Data: []float32{3.0, 9.0, 9.0, 4.0}}, 0.4, vector.New(1.0, -2.0)},
		{vector.New(0.0, 1e-30), 1.0, vector.New(1.0, -1.0)},
		{vector.New(1e30, 1e30), 1.0 - 1.0/sqrt2, vector.New(1.0, -(1.0 + sqrt2))},
	}

	for _, test := range tests {
		beta, v, err := vector.Householder(test.x)
		if err != nil {
			t.Fatal(err)
		}
		if !vector.EqualWithAbsTol(vector.New(beta), vector.New(test.expectedBeta), 1e-5) {
			t.Errorf("Householder(%v): beta = %v, want %v", test.x.Data, beta, test.expectedBeta)
		}
		if !vector.EqualWithAbsTol(v, test.expectedV, 1e-5) {
			t.Errorf("Householder(%v): v = %v, want %v", test.x.Data, v.Data, test.expectedV.Data)
		}
	}
}

func TestMaxAbs(t *testing.T) {
	if result := vector.MaxAbs(vector.New(1.0, -5.0, 3.0)); result != 5.0 {
		t.Errorf("MaxAbs = %v", result)
	}
}

func TestAffine(t *testing.T) {
	x := vector.New(1.0, 2.0)
	w := blas32.General{
		Rows:   3,
		Cols:   2,
		Stride: 2,
		Data: []float32{
			1.0, 0.0,
			0.0, 1.0,
			1.0, 1.0,
		},
	}
	b := vector.New(0.5, 0.5, 0.5)

	result, err := vector.Affine(x, w, b)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(result.Data, []float32{1.5, 2.5, 3.5}) {
		t.Errorf("Affine = %v", result.Data)
	}
	if !slices.Equal(b.Data, []float32{0.5, 0.5, 0.5}) {
		t.Errorf("Affine modified b")
	}

	if _, err := vector.Affine(vector.New(1.0), w, b); !errors.Is(err, vector.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}
