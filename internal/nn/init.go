package nn

import (
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/scalar"
)

// Initialization ranges for weights and biases.
const (
	WeightBound = 1.0
	BiasBound   = 0.01
)

// Uniform creates n leaves on g with values drawn from U(-bound, bound).
//
// Parameters:
//   - g: Graph that owns the new leaves
//   - n: Number of leaves
//   - bound: Half-width of the distribution
//   - rng: Random source
func Uniform(g *scalar.Graph, n int, bound float64, rng *rand.Rand) []*scalar.Value {
	out := make([]*scalar.Value, n)
	for i := range out {
		//nolint:gosec // Parameter initialization is not security-critical
		out[i] = g.Leaf((rng.Float64()*2.0 - 1.0) * bound)
	}
	return out
}

// defaultRand returns rng, or a randomly seeded source if rng is nil.
func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	//nolint:gosec // Parameter initialization is not security-critical
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
