package utils

// Max returns the largest value in xs, or 0 when xs is empty. Negative
// values never win over the zero floor; the board tallies this serves are
// always non-negative.
func Max(xs []int) int {
	m := 0
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
