package ops

// subLocal returns the local derivatives of a - b.
//
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
func subLocal(_, _ float64) (float64, float64) {
	return 1, -1
}
