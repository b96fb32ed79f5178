package ops

// divLocal returns the local derivatives of a / b.
//
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// b == 0 is not special-cased; the results are ±Inf or NaN.
func divLocal(a, b float64) (float64, float64) {
	return 1 / b, -a / (b * b)
}
