package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/scalar"
)

// MSE computes the mean squared error between predictions and targets.
//
// Formula:
//
//	MSE = (1/n) * Σ(predictions - targets)²
//
// Targets are usually leaves holding constants, but any Value is accepted;
// gradients flow into both arguments.
//
// Panics if the slices are empty or differ in length.
func MSE(predictions, targets []*scalar.Value) *scalar.Value {
	if len(predictions) == 0 {
		panic("MSE: no predictions")
	}
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSE: %d predictions but %d targets", len(predictions), len(targets)))
	}

	var sum *scalar.Value
	for i, p := range predictions {
		diff := p.Sub(targets[i])
		sq := diff.Mul(diff)
		if sum == nil {
			sum = sq
			continue
		}
		sum = sum.Add(sq)
	}

	n := sum.Graph().Leaf(float64(len(predictions)))
	return sum.Div(n)
}
