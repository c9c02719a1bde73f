package utils

// MinFloat returns the smaller of a and b
func MinFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
