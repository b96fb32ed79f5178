package ops

// addLocal returns the local derivatives of a + b.
// Gradient flows unchanged to both operands.
func addLocal(_, _ float64) (float64, float64) {
	return 1, 1
}
