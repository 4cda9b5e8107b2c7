package randx

import (
	"math/rand/v2"

	"github.com/sw965/omw/mathx/randx"
	"gonum.org/v1/gonum/stat/distuv"
)

const DefaultSeed uint64 = 42

// NewPCG returns a generator whose whole state is derived from seed,
// so equal seeds always replay the same stream.
func NewPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func Rademacher(rng *rand.Rand) float32 {
	if randx.Bool(rng) {
		return 1.0
	}
	return -1.0
}

func Normal(mean, sigma float64, rng *rand.Rand) float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: sigma,
		Src:   rng,
	}
	return dist.Rand()
}
