package ops

// mulLocal returns the local derivatives of a * b.
//
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func mulLocal(a, b float64) (float64, float64) {
	return b, a
}
