package scalar

import "fmt"

// Value is one scalar node of the computation graph.
//
// The forward value and the operation record are fixed at creation. The
// gradient starts at zero and is only meant to be written by a backward pass.
//
// Values are shared freely: the same Value may be an operand of any number of
// later Values, including both operands of one operation.
type Value struct {
	id    uint64
	data  float64
	grad  float64
	op    Op
	graph *Graph
}

// ID returns the identity assigned by the owning Graph.
// Identities are sequential in creation order within a Graph.
func (v *Value) ID() uint64 {
	return v.id
}

// Value returns the forward-computed scalar.
func (v *Value) Value() float64 {
	return v.data
}

// Grad returns the gradient accumulated by the most recent backward pass
// that reached this Value.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operation record that produced v.
func (v *Value) Op() Op {
	return v.op
}

// Operands returns the operands of v (nil for a leaf).
func (v *Value) Operands() []*Value {
	return v.op.Operands()
}

// IsLeaf reports whether v was created with Graph.Leaf.
func (v *Value) IsLeaf() bool {
	return v.op.Kind == OpLeaf
}

// Graph returns the Graph that allocated v.
func (v *Value) Graph() *Graph {
	return v.graph
}

// SetGrad overwrites the gradient. Used by the backward pass to seed the root.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets the gradient to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// AccumulateGrad adds delta to the gradient.
func (v *Value) AccumulateGrad(delta float64) {
	v.grad += delta
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(id=%d, data=%g, grad=%g, op=%s)", v.id, v.data, v.grad, v.op.Kind)
}

// Add returns a new Value v + other.
func (v *Value) Add(other *Value) *Value {
	return binary(OpAdd, v, other)
}

// Sub returns a new Value v - other.
func (v *Value) Sub(other *Value) *Value {
	return binary(OpSub, v, other)
}

// Mul returns a new Value v * other.
func (v *Value) Mul(other *Value) *Value {
	return binary(OpMul, v, other)
}

// Div returns a new Value v / other.
//
// A zero divisor is not rejected: the forward value becomes ±Inf or NaN
// following IEEE-754 and the same holds for the gradients derived from it.
func (v *Value) Div(other *Value) *Value {
	return binary(OpDiv, v, other)
}

// Add returns a + b.
func Add(a, b *Value) *Value { return binary(OpAdd, a, b) }

// Sub returns a - b.
func Sub(a, b *Value) *Value { return binary(OpSub, a, b) }

// Mul returns a * b.
func Mul(a, b *Value) *Value { return binary(OpMul, a, b) }

// Div returns a / b.
func Div(a, b *Value) *Value { return binary(OpDiv, a, b) }

// binary allocates the result of a two-operand operation in a's graph.
// Operands are never modified.
func binary(kind OpKind, a, b *Value) *Value {
	if a == nil || b == nil {
		panic(fmt.Sprintf("%s: nil operand", kind.Name()))
	}

	g := a.graph
	if g == nil {
		g = b.graph
	}
	if g == nil {
		panic(fmt.Sprintf("%s: operands were not created by a Graph", kind.Name()))
	}

	var data float64
	switch kind {
	case OpAdd:
		data = a.data + b.data
	case OpSub:
		data = a.data - b.data
	case OpMul:
		data = a.data * b.data
	case OpDiv:
		data = a.data / b.data
	default:
		panic(fmt.Sprintf("binary: unsupported operation %s", kind))
	}

	return g.newValue(data, Op{Kind: kind, Left: a, Right: b})
}
