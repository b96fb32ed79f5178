// Package nn builds small fully connected networks out of scalar Values.
//
// This package provides:
//   - Neuron: weighted sum of inputs plus bias
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: layers applied in sequence
//
// Every weight and bias is a leaf Value, so after autodiff.Backward on any
// output (or a loss built from outputs) the gradients can be read from
// Parameters(). Neurons are linear: nonlinearities are not part of the
// scalar operation set.
package nn

import "github.com/born-ml/backprop/internal/scalar"

// Module is the base interface for network components that map a vector of
// Values to another vector of Values.
//
// Modules can be composed:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	mlp := nn.NewMLP(g, 3, []int{4, 1}, rng)
//	out := mlp.Forward(g.Leaves(0.1, 0.2, 0.3))
type Module interface {
	// Forward computes the outputs for the given inputs.
	// Panics if len(inputs) does not match the module's input width.
	Forward(inputs []*scalar.Value) []*scalar.Value

	// Parameters returns all trainable leaves of this module.
	Parameters() []*scalar.Value
}
