package mathutil

import "math"

// ShortestAngleBetween returns the signed smallest rotation that turns angle a1 into a2.
// The result is in [-π, π).
func ShortestAngleBetween(a1, a2 float64) float64 {
	twoPi := 2 * math.Pi
	// math.Mod keeps the dividend's sign, so fold negatives back into [0, 2π).
	angle := math.Mod(a2-a1, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	if angle >= math.Pi {
		angle -= twoPi
	}
	if angle < -math.Pi {
		angle += twoPi
	}
	return angle
}

// Sign returns 1 for non-negative values and -1 otherwise.
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}
