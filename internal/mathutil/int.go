package mathutil

// IntMin returns the smaller of two ints
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits x to [lo, hi]
func IntClamp(x, lo, hi int) int {
	return IntMax(lo, IntMin(x, hi))
}

// Clamp01 limits a ratio to [0, 1]
func Clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
