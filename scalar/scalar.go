// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the nodes of a scalar computation graph.
//
// Values are created by a Graph and combined with Add, Sub, Mul and Div.
// Each operation allocates a new Value that records its operands, so the
// graph grows one node at a time and can later be differentiated with
// package autodiff.
//
// Example:
//
//	import (
//	    "github.com/born-ml/backprop/autodiff"
//	    "github.com/born-ml/backprop/scalar"
//	)
//
//	func main() {
//	    g := scalar.NewGraph()
//	    x := g.Leaf(5)
//	    w := g.Leaf(2)
//	    z := x.Add(w).Mul(g.Leaf(2)) // 14
//
//	    autodiff.Backward(z)
//	    fmt.Println(x.Grad(), w.Grad()) // 2 2
//	}
package scalar

import (
	"log/slog"

	"github.com/born-ml/backprop/internal/scalar"
)

// Graph allocates Values and assigns them sequential identities.
type Graph = scalar.Graph

// GraphOption configures a Graph.
type GraphOption = scalar.GraphOption

// Value is one node of the computation graph.
//
// Methods:
//
//	Value() float64        forward value
//	Grad() float64         gradient from the last backward pass
//	ID() uint64            identity within the owning Graph
//	Op() Op                operation record
//	Add/Sub/Mul/Div(*Value) *Value
type Value = scalar.Value

// Op records how a Value was derived and from which operands.
type Op = scalar.Op

// OpKind identifies the operation of a Value.
type OpKind = scalar.OpKind

// Operation kinds.
const (
	OpLeaf = scalar.OpLeaf
	OpAdd  = scalar.OpAdd
	OpSub  = scalar.OpSub
	OpMul  = scalar.OpMul
	OpDiv  = scalar.OpDiv
)

// NewGraph creates an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	return scalar.NewGraph(opts...)
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) GraphOption {
	return scalar.WithLogger(logger)
}

// Add returns a + b.
func Add(a, b *Value) *Value { return scalar.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Value) *Value { return scalar.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Value) *Value { return scalar.Mul(a, b) }

// Div returns a / b. Division by zero yields ±Inf or NaN.
func Div(a, b *Value) *Value { return scalar.Div(a, b) }
