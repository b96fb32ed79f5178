// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/scalar"
)

// Initialization ranges for weights and biases.
const (
	WeightBound = nn.WeightBound
	BiasBound   = nn.BiasBound
)

// Module maps a vector of Values to another vector of Values.
type Module = nn.Module

// Neuron computes the weighted sum of its inputs plus a bias.
type Neuron = nn.Neuron

// Layer is a set of neurons receiving the same inputs.
type Layer = nn.Layer

// MLP applies layers in sequence.
type MLP = nn.MLP

// NewNeuron creates a Neuron with nin weights.
// A nil rng uses a randomly seeded source.
func NewNeuron(g *scalar.Graph, nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, nin, rng)
}

// NewLayer creates a Layer mapping nin inputs to nout outputs.
func NewLayer(g *scalar.Graph, nin, nout int, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, nin, nout, rng)
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	mlp := nn.NewMLP(g, 3, []int{4, 5, 1}, rng) // 3 -> 4 -> 5 -> 1
func NewMLP(g *scalar.Graph, nin int, nouts []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(g, nin, nouts, rng)
}

// MSE computes the mean squared error between predictions and targets.
func MSE(predictions, targets []*scalar.Value) *scalar.Value {
	return nn.MSE(predictions, targets)
}

// Uniform creates n leaves with values drawn from U(-bound, bound).
func Uniform(g *scalar.Graph, n int, bound float64, rng *rand.Rand) []*scalar.Value {
	return nn.Uniform(g, n, bound, rng)
}
