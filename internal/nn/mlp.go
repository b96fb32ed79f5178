package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/scalar"
)

// MLP applies a sequence of layers, each consuming the previous outputs.
//
// Example:
//
//	g := scalar.NewGraph()
//	mlp := nn.NewMLP(g, 3, []int{4, 5, 1}, rand.New(rand.NewPCG(1, 2)))
//	out := mlp.Forward(g.Leaves(0.1, 0.2, 0.3))
//	autodiff.Backward(out[0])
//	for _, p := range mlp.Parameters() {
//	    fmt.Println(p.Grad())
//	}
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(g *scalar.Graph, nin int, nouts []int, rng *rand.Rand) *MLP {
	if len(nouts) == 0 {
		panic("NewMLP: need at least one layer")
	}
	rng = defaultRand(rng)

	layers := make([]*Layer, len(nouts))
	in := nin
	for i, out := range nouts {
		layers[i] = NewLayer(g, in, out, rng)
		in = out
	}
	return &MLP{layers: layers}
}

// Forward runs every layer in order.
func (m *MLP) Forward(inputs []*scalar.Value) []*scalar.Value {
	out := inputs
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// String describes the layer widths, e.g. "MLP(3 -> 4 -> 1)".
func (m *MLP) String() string {
	s := fmt.Sprintf("MLP(%d", m.layers[0].InFeatures())
	for _, l := range m.layers {
		s += fmt.Sprintf(" -> %d", l.OutFeatures())
	}
	return s + ")"
}

var (
	_ Module = (*Layer)(nil)
	_ Module = (*MLP)(nil)
)
