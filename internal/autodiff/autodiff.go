// Package autodiff implements reverse-mode automatic differentiation over
// scalar computation graphs.
//
// Architecture:
//   - scalar.Value: node holding a value, a gradient and its operation record
//   - TopologicalOrder: post-order DFS over operand edges, each node once
//   - Backward: seeds the root, walks the order in reverse, applies the
//     local derivative rules from package ops and accumulates into operands
//
// Usage:
//
//	g := scalar.NewGraph()
//	x := g.Leaf(5)
//	w := g.Leaf(2)
//	z := x.Add(w).Mul(g.Leaf(2))
//
//	autodiff.Backward(z)
//	fmt.Println(x.Grad()) // dz/dx = 2
//
// Gradients accumulate across every path from the root to a node, so a Value
// used several times (x + x) receives the sum of all contributions.
package autodiff
