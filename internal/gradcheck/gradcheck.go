// Package gradcheck cross-checks reverse-mode gradients against central
// finite differences.
//
// Example:
//
//	// f(x, y) = x * y / (x + y)
//	build := func(g *scalar.Graph, in []*scalar.Value) *scalar.Value {
//	    return in[0].Mul(in[1]).Div(in[0].Add(in[1]))
//	}
//	if err := gradcheck.Check(build, []float64{2, 3}, gradcheck.DefaultConfig()); err != nil {
//	    log.Fatal(err)
//	}
package gradcheck

import (
	"fmt"
	"math"
	"slices"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/parallel"
	"github.com/born-ml/backprop/internal/scalar"
)

// Config controls the finite-difference comparison.
type Config struct {
	Epsilon   float64         // Step for the central difference
	Tolerance float64         // Allowed difference, relative to max(1, |analytic|, |numerical|)
	Parallel  parallel.Config // Probe scheduling
}

// DefaultConfig returns defaults suitable for float64 expressions of moderate
// magnitude.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-6,
		Tolerance: 1e-4,
		Parallel:  parallel.DefaultConfig(),
	}
}

// Builder constructs an expression on g from the given input leaves and
// returns its output. It is invoked once per probe, each time on a fresh
// graph, possibly from several goroutines at once.
type Builder func(g *scalar.Graph, inputs []*scalar.Value) *scalar.Value

// Numerical estimates the gradient of f at x with central differences:
//
//	df/dx_i ≈ (f(x + ε·e_i) - f(x - ε·e_i)) / 2ε
//
// Probes for different i run according to cfg.Parallel, so f must be safe
// for concurrent use. x is not modified.
func Numerical(f func([]float64) float64, x []float64, cfg Config) []float64 {
	eps := cfg.Epsilon
	grads := make([]float64, len(x))

	parallel.For(len(x), func(i int) {
		probe := slices.Clone(x)

		probe[i] = x[i] + eps
		plus := f(probe)

		probe[i] = x[i] - eps
		minus := f(probe)

		grads[i] = (plus - minus) / (2 * eps)
	}, cfg.Parallel)

	return grads
}

// Analytic builds the expression at x on a fresh graph, runs Backward from
// its output and returns the gradient of every input along with the output
// value.
func Analytic(build Builder, x []float64) (grads []float64, value float64) {
	g := scalar.NewGraph()
	inputs := g.Leaves(x...)
	out := build(g, inputs)

	autodiff.Backward(out)

	grads = make([]float64, len(inputs))
	for i, in := range inputs {
		grads[i] = in.Grad()
	}
	return grads, out.Value()
}

// Check compares Analytic against Numerical for every input of build at x.
//
// Returns ErrNoInputs for an empty x, an error wrapping ErrNonFiniteGradient
// if either estimate is Inf or NaN, and a *MismatchError for the first input
// outside tolerance.
func Check(build Builder, x []float64, cfg Config) error {
	if len(x) == 0 {
		return ErrNoInputs
	}

	analytic, _ := Analytic(build, x)
	numerical := Numerical(func(p []float64) float64 {
		g := scalar.NewGraph()
		return build(g, g.Leaves(p...)).Value()
	}, x, cfg)

	for i := range x {
		a, n := analytic[i], numerical[i]
		if !isFinite(a) || !isFinite(n) {
			return fmt.Errorf("input %d (analytic %g, numerical %g): %w", i, a, n, ErrNonFiniteGradient)
		}

		tol := cfg.Tolerance * math.Max(1, math.Max(math.Abs(a), math.Abs(n)))
		if math.Abs(a-n) > tol {
			return &MismatchError{Index: i, Analytic: a, Numerical: n, Tolerance: tol}
		}
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
