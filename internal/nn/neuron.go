package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/scalar"
)

// Neuron computes Σ wᵢ·xᵢ + b over its inputs.
//
// Weights are initialized from U(-1, 1), the bias from U(-0.01, 0.01).
type Neuron struct {
	weights []*scalar.Value
	bias    *scalar.Value
}

// NewNeuron creates a Neuron with nin weights on g.
// A nil rng uses a randomly seeded source.
func NewNeuron(g *scalar.Graph, nin int, rng *rand.Rand) *Neuron {
	if nin < 1 {
		panic(fmt.Sprintf("NewNeuron: need at least one input, got %d", nin))
	}
	rng = defaultRand(rng)

	weights := Uniform(g, nin, WeightBound, rng)
	bias := Uniform(g, 1, BiasBound, rng)[0]

	return &Neuron{weights: weights, bias: bias}
}

// Forward returns the weighted sum of inputs plus bias.
func (n *Neuron) Forward(inputs []*scalar.Value) *scalar.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: %d input dimensions not compatible with %d weight dimensions",
			len(inputs), len(n.weights)))
	}

	sum := n.weights[0].Mul(inputs[0])
	for i := 1; i < len(inputs); i++ {
		sum = sum.Add(n.weights[i].Mul(inputs[i]))
	}
	return sum.Add(n.bias)
}

// Weights returns the weight leaves, one per input.
func (n *Neuron) Weights() []*scalar.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *scalar.Value {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
