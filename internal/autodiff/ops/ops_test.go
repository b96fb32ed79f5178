package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/backprop/internal/autodiff/ops"
	"github.com/born-ml/backprop/internal/scalar"
)

// Helper to check floats are equal within epsilon.
func floatEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// TestLocal tests the local derivative table for every binary operation.
func TestLocal(t *testing.T) {
	tests := []struct {
		kind   scalar.OpKind
		a, b   float64
		da, db float64
	}{
		{scalar.OpAdd, 3, 4, 1, 1},
		{scalar.OpAdd, -100, 0.5, 1, 1},
		{scalar.OpSub, 3, 4, 1, -1},
		{scalar.OpMul, 3, 4, 4, 3},
		{scalar.OpMul, -2, 0, 0, -2},
		{scalar.OpDiv, 6, 3, 1.0 / 3.0, -6.0 / 9.0},
		{scalar.OpDiv, 1, -2, -0.5, -0.25},
	}

	for _, tt := range tests {
		da, db := ops.Local(tt.kind, tt.a, tt.b)
		if !floatEqual(da, tt.da, 1e-12) {
			t.Errorf("Local(%s, %v, %v) da = %v, want %v", tt.kind.Name(), tt.a, tt.b, da, tt.da)
		}
		if !floatEqual(db, tt.db, 1e-12) {
			t.Errorf("Local(%s, %v, %v) db = %v, want %v", tt.kind.Name(), tt.a, tt.b, db, tt.db)
		}
	}
}

// TestBackward_ScalesByOutputGrad tests the chain rule product.
func TestBackward_ScalesByOutputGrad(t *testing.T) {
	gradA, gradB := ops.Backward(scalar.OpMul, 2, 3, 4)
	if gradA != 8 || gradB != 6 {
		t.Errorf("Mul backward: got (%v, %v), want (8, 6)", gradA, gradB)
	}

	gradA, gradB = ops.Backward(scalar.OpSub, 0.5, 10, 20)
	if gradA != 0.5 || gradB != -0.5 {
		t.Errorf("Sub backward: got (%v, %v), want (0.5, -0.5)", gradA, gradB)
	}

	gradA, gradB = ops.Backward(scalar.OpDiv, 3, 6, 3)
	if !floatEqual(gradA, 1, 1e-12) || !floatEqual(gradB, -2, 1e-12) {
		t.Errorf("Div backward: got (%v, %v), want (1, -2)", gradA, gradB)
	}
}

// TestDiv_ZeroDivisor tests that a zero divisor yields non-finite derivatives.
func TestDiv_ZeroDivisor(t *testing.T) {
	da, db := ops.Local(scalar.OpDiv, 1, 0)
	if !math.IsInf(da, 1) {
		t.Errorf("da = %v, want +Inf", da)
	}
	if !math.IsInf(db, -1) {
		t.Errorf("db = %v, want -Inf", db)
	}

	// 0/0: -0/0 is NaN.
	_, db = ops.Local(scalar.OpDiv, 0, 0)
	if !math.IsNaN(db) {
		t.Errorf("db = %v, want NaN", db)
	}
}

// TestLocal_LeafPanics tests that leaves are rejected.
func TestLocal_LeafPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for leaf")
		}
	}()
	ops.Local(scalar.OpLeaf, 1, 2)
}

// TestLocal_UnknownPanics tests that an out-of-range kind is rejected.
func TestLocal_UnknownPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown operation")
		}
	}()
	ops.Local(scalar.OpKind(99), 1, 2)
}
