// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation
// (backpropagation) over scalar computation graphs.
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
//	    a := g.Leaf(6)
//	    b := g.Leaf(3)
//	    c := a.Div(b)
//
//	    autodiff.Backward(c)
//	    fmt.Println(a.Grad(), b.Grad()) // 0.333... -0.666...
//	}
package autodiff

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/scalar"
)

// Backward computes the gradient of root with respect to every Value
// reachable from it. Gradients of reachable Values are reset first, so
// repeated calls give the same result.
func Backward(root *scalar.Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the Values reachable from root, each once, with
// every Value after all of its operands. root is last.
func TopologicalOrder(root *scalar.Value) []*scalar.Value {
	return autodiff.TopologicalOrder(root)
}

// ReverseOrder returns TopologicalOrder reversed (root first).
func ReverseOrder(root *scalar.Value) []*scalar.Value {
	return autodiff.ReverseOrder(root)
}
