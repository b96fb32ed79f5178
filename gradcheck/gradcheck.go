// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck verifies gradients computed by autodiff against central
// finite differences. It is intended for tests of code built on scalar.
package gradcheck

import (
	"github.com/born-ml/backprop/internal/gradcheck"
)

// Config controls the comparison.
type Config = gradcheck.Config

// Builder constructs an expression from input leaves on a fresh graph.
type Builder = gradcheck.Builder

// MismatchError reports an input whose gradients disagree.
type MismatchError = gradcheck.MismatchError

// Errors.
var (
	ErrNoInputs          = gradcheck.ErrNoInputs
	ErrNonFiniteGradient = gradcheck.ErrNonFiniteGradient
)

// DefaultConfig returns the default comparison settings.
func DefaultConfig() Config {
	return gradcheck.DefaultConfig()
}

// Numerical estimates the gradient of f at x with central differences.
func Numerical(f func([]float64) float64, x []float64, cfg Config) []float64 {
	return gradcheck.Numerical(f, x, cfg)
}

// Analytic returns the gradients of every input computed by Backward, and
// the output value.
func Analytic(build Builder, x []float64) ([]float64, float64) {
	return gradcheck.Analytic(build, x)
}

// Check compares analytic and numerical gradients at x.
func Check(build Builder, x []float64, cfg Config) error {
	return gradcheck.Check(build, x, cfg)
}
