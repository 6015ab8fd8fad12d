package math

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// NearEqualEpsilon is the tolerance IsNearEqual uses when none is given.
	NearEqualEpsilon = 0.01
)

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * degToRad
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * radToDeg
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// IsNearEqual reports whether |a-b| < eps. A non-positive eps means
// NearEqualEpsilon.
func IsNearEqual(a, b, eps float32) bool {
	if eps <= 0 {
		eps = NearEqualEpsilon
	}
	return a > b-eps && a < b+eps
}

// Sign returns -1 for negative values and 1 otherwise, zero included.
func Sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
