package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/scalar"
)

// Layer is a set of neurons that all receive the same inputs.
type Layer struct {
	nin     int
	neurons []*Neuron
}

// NewLayer creates a Layer mapping nin inputs to nout outputs.
func NewLayer(g *scalar.Graph, nin, nout int, rng *rand.Rand) *Layer {
	if nout < 1 {
		panic(fmt.Sprintf("NewLayer: need at least one output, got %d", nout))
	}
	rng = defaultRand(rng)

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, nin, rng)
	}
	return &Layer{nin: nin, neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(inputs []*scalar.Value) []*scalar.Value {
	out := make([]*scalar.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(inputs)
	}
	return out
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the input width.
func (l *Layer) InFeatures() int { return l.nin }

// OutFeatures returns the output width.
func (l *Layer) OutFeatures() int { return len(l.neurons) }

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
