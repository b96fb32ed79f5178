package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/gradcheck"
	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/scalar"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestUniform_Bounds(t *testing.T) {
	g := scalar.NewGraph()
	vs := nn.Uniform(g, 1000, 0.5, newRand())

	require.Len(t, vs, 1000)
	for _, v := range vs {
		assert.True(t, v.IsLeaf())
		assert.GreaterOrEqual(t, v.Value(), -0.5)
		assert.LessOrEqual(t, v.Value(), 0.5)
	}
}

func TestNeuron_Forward(t *testing.T) {
	g := scalar.NewGraph()
	n := nn.NewNeuron(g, 3, newRand())

	require.Len(t, n.Weights(), 3)
	assert.LessOrEqual(t, n.Bias().Value(), nn.BiasBound)
	assert.GreaterOrEqual(t, n.Bias().Value(), -nn.BiasBound)

	x := g.Leaves(0.1, 0.2, 0.3)
	out := n.Forward(x)

	want := n.Bias().Value()
	for i, w := range n.Weights() {
		want += w.Value() * x[i].Value()
	}
	assert.InDelta(t, want, out.Value(), 1e-12)
}

func TestNeuron_Gradients(t *testing.T) {
	g := scalar.NewGraph()
	n := nn.NewNeuron(g, 3, newRand())
	x := g.Leaves(0.1, 0.2, 0.3)

	autodiff.Backward(n.Forward(x))

	// d/dwᵢ = xᵢ, d/dxᵢ = wᵢ, d/db = 1.
	for i, w := range n.Weights() {
		assert.InDelta(t, x[i].Value(), w.Grad(), 1e-12)
		assert.InDelta(t, w.Value(), x[i].Grad(), 1e-12)
	}
	assert.Equal(t, 1.0, n.Bias().Grad())
}

func TestNeuron_DimensionMismatchPanics(t *testing.T) {
	g := scalar.NewGraph()
	n := nn.NewNeuron(g, 3, newRand())

	assert.PanicsWithValue(t,
		"Neuron.Forward: 2 input dimensions not compatible with 3 weight dimensions",
		func() { n.Forward(g.Leaves(1, 2)) })
	assert.Panics(t, func() { nn.NewNeuron(g, 0, nil) })
}

func TestLayer(t *testing.T) {
	g := scalar.NewGraph()
	l := nn.NewLayer(g, 3, 4, newRand())

	assert.Equal(t, 3, l.InFeatures())
	assert.Equal(t, 4, l.OutFeatures())
	assert.Len(t, l.Neurons(), 4)
	assert.Len(t, l.Parameters(), 4*(3+1))

	out := l.Forward(g.Leaves(1, 2, 3))
	require.Len(t, out, 4)
	for i, n := range l.Neurons() {
		assert.Equal(t, n.Forward(g.Leaves(1, 2, 3)).Value(), out[i].Value())
	}
}

func TestMLP_Shapes(t *testing.T) {
	g := scalar.NewGraph()
	mlp := nn.NewMLP(g, 3, []int{4, 5, 1}, newRand())

	assert.Equal(t, "MLP(3 -> 4 -> 5 -> 1)", mlp.String())
	assert.Len(t, mlp.Layers(), 3)
	assert.Len(t, mlp.Parameters(), 4*4+5*5+1*6)

	out := mlp.Forward(g.Leaves(0.1, 0.2, 0.3))
	assert.Len(t, out, 1)
}

func TestMLP_Deterministic(t *testing.T) {
	g1 := scalar.NewGraph()
	g2 := scalar.NewGraph()
	m1 := nn.NewMLP(g1, 2, []int{3, 1}, newRand())
	m2 := nn.NewMLP(g2, 2, []int{3, 1}, newRand())

	out1 := m1.Forward(g1.Leaves(0.5, -0.5))
	out2 := m2.Forward(g2.Leaves(0.5, -0.5))

	assert.Equal(t, out1[0].Value(), out2[0].Value())
}

func TestMLP_NoLayersPanics(t *testing.T) {
	assert.PanicsWithValue(t, "NewMLP: need at least one layer", func() {
		nn.NewMLP(scalar.NewGraph(), 3, nil, nil)
	})
}

func TestMLP_GradientsMatchFiniteDifferences(t *testing.T) {
	// Rebuild the same network on every probe graph so that parameter
	// values are identical; the inputs are the probe point.
	build := func(g *scalar.Graph, in []*scalar.Value) *scalar.Value {
		mlp := nn.NewMLP(g, 3, []int{4, 2}, newRand())
		out := mlp.Forward(in)
		targets := g.Leaves(1, -1)
		return nn.MSE(out, targets)
	}

	err := gradcheck.Check(build, []float64{0.1, 0.2, 0.3}, gradcheck.DefaultConfig())
	assert.NoError(t, err)
}

func TestMSE(t *testing.T) {
	g := scalar.NewGraph()
	preds := g.Leaves(1, 2, 3)
	targets := g.Leaves(1, 0, 5)

	loss := nn.MSE(preds, targets)
	autodiff.Backward(loss)

	assert.InDelta(t, (0.0+4.0+4.0)/3.0, loss.Value(), 1e-12)
	// d/dpᵢ = 2(pᵢ - tᵢ)/n
	assert.InDelta(t, 0.0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, 4.0/3.0, preds[1].Grad(), 1e-12)
	assert.InDelta(t, -4.0/3.0, preds[2].Grad(), 1e-12)
	assert.InDelta(t, -4.0/3.0, targets[1].Grad(), 1e-12)
}

func TestMSE_LengthMismatchPanics(t *testing.T) {
	g := scalar.NewGraph()
	assert.Panics(t, func() { nn.MSE(g.Leaves(1, 2), g.Leaves(1)) })
	assert.Panics(t, func() { nn.MSE(nil, nil) })
}
