package util

import "math"

// Clip bounds v to the [lo, hi] interval.
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clip01 bounds v to the unit interval.
func Clip01(v float64) float64 {
	return Clip(v, 0, 1)
}

// Sigmoid is the standard logistic function.
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
