package autodiff

import (
	"log/slog"

	"github.com/born-ml/backprop/internal/autodiff/ops"
	"github.com/born-ml/backprop/internal/scalar"
)

// Backward computes the gradient of root with respect to every Value
// reachable from it.
//
// Algorithm:
//  1. Zero the gradient of every Value in TopologicalOrder(root)
//  2. Seed root's gradient with 1 (d root / d root)
//  3. Walk the order from root towards the leaves
//  4. For each non-leaf, add outputGrad * local derivative to each operand
//
// Contributions are added, never overwritten, which sums the chain rule over
// every path. Because step 1 resets the reachable gradients, calling Backward
// twice on the same root yields the same gradients. Values not reachable from
// root are left untouched.
//
// If root is a leaf its gradient becomes 1 and nothing else happens.
// Division by zero anywhere in the graph propagates ±Inf/NaN unchanged.
func Backward(root *scalar.Value) {
	order := TopologicalOrder(root)

	for _, v := range order {
		v.ZeroGrad()
	}
	root.SetGrad(1)

	for i := len(order) - 1; i >= 0; i-- {
		propagate(order[i])
	}

	if g := root.Graph(); g != nil {
		g.Logger().Debug("backward pass complete",
			slog.String("graph", g.UUID().String()),
			slog.Uint64("root", root.ID()),
			slog.Int("nodes", len(order)))
	}
}

// propagate pushes v's accumulated gradient into its operands.
func propagate(v *scalar.Value) {
	op := v.Op()
	switch op.Kind {
	case scalar.OpLeaf:
		return
	case scalar.OpAdd, scalar.OpSub, scalar.OpMul, scalar.OpDiv:
		gradA, gradB := ops.Backward(op.Kind, v.Grad(), op.Left.Value(), op.Right.Value())
		op.Left.AccumulateGrad(gradA)
		op.Right.AccumulateGrad(gradB)
	default:
		panic("autodiff: unknown operation " + op.Kind.String())
	}
}
