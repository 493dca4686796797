package vmath

import "math/rand/v2"

// Epsilon is the distance under which two points are treated as coincident
const Epsilon = 1e-3

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandSpread returns a uniform value in [-spread/2, spread/2)
func RandSpread(rng *rand.Rand, spread float64) float64 {
	return spread * (0.5 - rng.Float64())
}
