package gradcheck

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNoInputs          = errors.New("gradcheck: no inputs")
	ErrNonFiniteGradient = errors.New("gradcheck: non-finite gradient")
)

// MismatchError reports an input whose analytic gradient disagrees with the
// finite-difference estimate.
type MismatchError struct {
	Index     int     // Position of the input in the probe point
	Analytic  float64 // Gradient computed by Backward
	Numerical float64 // Central finite-difference estimate
	Tolerance float64 // Allowed absolute difference at this magnitude
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("gradcheck: input %d: analytic gradient %g differs from numerical %g (tolerance %g)",
		e.Index, e.Analytic, e.Numerical, e.Tolerance)
}
