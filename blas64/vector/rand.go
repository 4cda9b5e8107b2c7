package vector

import (
	"math/rand/v2"
	"sync"

	"github.com/sw965/vecx/mathx/randx"
	"gonum.org/v1/gonum/blas/blas64"
)

var (
	globalRngMu sync.Mutex
	globalRng   = randx.NewPCG(randx.DefaultSeed)
)

// SeedRand restarts the generator behind RandNorm.
func SeedRand(seed uint64) {
	globalRngMu.Lock()
	defer globalRngMu.Unlock()
	globalRng = randx.NewPCG(seed)
}

func NewNormal(n int, mean, sigma float64, rng *rand.Rand) blas64.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = randx.Normal(mean, sigma, rng)
	}
	return vec
}

// RandNorm draws n samples of N(mean, sigma²) from the package generator,
// which starts from randx.DefaultSeed.
func RandNorm(n int, mean, sigma float64) blas64.Vector {
	globalRngMu.Lock()
	defer globalRngMu.Unlock()
	return NewNormal(n, mean, sigma, globalRng)
}
