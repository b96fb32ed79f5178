// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides small fully connected networks built from scalar Values.
//
// # Overview
//
// This package contains:
//   - Neuron: Σ wᵢ·xᵢ + b
//   - Layer: neurons sharing the same inputs
//   - MLP: layers applied in sequence
//   - MSE: mean squared error loss
//   - Uniform: leaf initialization from U(-bound, bound)
//
// Neurons are linear; the scalar operation set has no activation functions.
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/backprop/autodiff"
//	    "github.com/born-ml/backprop/nn"
//	    "github.com/born-ml/backprop/scalar"
//	)
//
//	func main() {
//	    g := scalar.NewGraph()
//	    mlp := nn.NewMLP(g, 3, []int{4, 1}, rand.New(rand.NewPCG(1, 2)))
//
//	    out := mlp.Forward(g.Leaves(0.1, 0.2, 0.3))
//	    loss := nn.MSE(out, g.Leaves(1))
//
//	    autodiff.Backward(loss)
//	    for _, p := range mlp.Parameters() {
//	        fmt.Println(p.Grad())
//	    }
//	}
//
// # Parameters
//
// Every weight and bias is a leaf of the Graph passed to the constructor.
// Gradients are read with Value.Grad after a backward pass; updating the
// parameters is left to the caller.
package nn
