// Package ops defines the local derivative rules of the scalar operations.
//
// Each rule maps the forward operand values (a, b) of a node n to the
// partial derivatives dn/da and dn/db:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Sub: d(a-b)/da = 1, d(a-b)/db = -1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Div: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//
// Leaves have no operands and therefore no local derivatives.
package ops

import (
	"fmt"

	"github.com/born-ml/backprop/internal/scalar"
)

// Local returns the partial derivatives of an operation with respect to its
// left and right operands, evaluated at the forward values a and b.
//
// Panics on OpLeaf or an unknown kind: neither has operands to differentiate.
func Local(kind scalar.OpKind, a, b float64) (da, db float64) {
	switch kind {
	case scalar.OpAdd:
		return addLocal(a, b)
	case scalar.OpSub:
		return subLocal(a, b)
	case scalar.OpMul:
		return mulLocal(a, b)
	case scalar.OpDiv:
		return divLocal(a, b)
	case scalar.OpLeaf:
		panic("ops: leaf has no operands")
	default:
		panic(fmt.Sprintf("ops: unknown operation %s", kind))
	}
}

// Backward computes the gradient contributions flowing into both operands of
// a node, given the node's accumulated gradient (chain rule).
//
// Example for Mul with a=3, b=4 and outputGrad=2:
//
//	gradA = 2 * 4 = 8
//	gradB = 2 * 3 = 6
func Backward(kind scalar.OpKind, outputGrad, a, b float64) (gradA, gradB float64) {
	da, db := Local(kind, a, b)
	return outputGrad * da, outputGrad * db
}
