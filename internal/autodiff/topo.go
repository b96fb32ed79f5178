package autodiff

import (
	"slices"

	"github.com/born-ml/backprop/internal/scalar"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	v    *scalar.Value
	next int // index of the next operand to visit
}

// TopologicalOrder returns every Value reachable from root through operand
// edges, in DFS post-order: a Value appears only after all of its operands.
// root is always the last element.
//
// A Value reachable through several paths appears once, at the position where
// its subtree first completes. Operands are visited left before right.
//
// The traversal uses an explicit stack, so deep chains do not grow the
// goroutine stack.
func TopologicalOrder(root *scalar.Value) []*scalar.Value {
	if root == nil {
		panic("autodiff: nil root")
	}

	visited := map[*scalar.Value]struct{}{root: {}}
	order := make([]*scalar.Value, 0, 16)
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := top.v.Operands()

		if top.next < len(operands) {
			child := operands[top.next]
			top.next++
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, frame{v: child})
			continue
		}

		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}

	return order
}

// ReverseOrder returns TopologicalOrder(root) reversed: root first, and every
// Value after all Values that depend on it. This is the order Backward walks.
func ReverseOrder(root *scalar.Value) []*scalar.Value {
	order := TopologicalOrder(root)
	slices.Reverse(order)
	return order
}
