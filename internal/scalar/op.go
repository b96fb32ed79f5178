package scalar

import "fmt"

// OpKind identifies how a Value was produced.
//
// The set is closed: a Value is either a leaf or the result of one of the
// four binary arithmetic operations. Code that dispatches on OpKind is
// expected to switch over every constant.
type OpKind uint8

const (
	OpLeaf OpKind = iota // created directly by Graph.Leaf, no operands
	OpAdd                // a + b
	OpSub                // a - b
	OpMul                // a * b
	OpDiv                // a / b
)

// String returns the operation symbol used in graph exports.
func (k OpKind) String() string {
	switch k {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Name returns a lowercase identifier for the operation (e.g. "add").
func (k OpKind) Name() string {
	switch k {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("op%d", uint8(k))
	}
}

// Op records how a Value was derived.
//
// For OpLeaf both operands are nil. For every other kind Left and Right hold
// the operands exactly in the order they were supplied, which matters for
// OpSub and OpDiv. Left and Right may be the same Value (x + x).
type Op struct {
	Kind  OpKind
	Left  *Value
	Right *Value
}

// Operands returns the operands of the operation, left first.
// Returns nil for a leaf.
func (o Op) Operands() []*Value {
	if o.Kind == OpLeaf {
		return nil
	}
	return []*Value{o.Left, o.Right}
}
