package math

import "gonum.org/v1/gonum/num/quat"

// ToNumber converts q to a float64 gonum quaternion. W maps to Real and
// X, Y, Z to the Imag, Jmag and Kmag parts.
func (q Quat) ToNumber() quat.Number {
	return quat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}

// QuatFromNumber converts a gonum quaternion, truncating to float32.
func QuatFromNumber(n quat.Number) Quat {
	return Quat{
		X: float32(n.Imag),
		Y: float32(n.Jmag),
		Z: float32(n.Kmag),
		W: float32(n.Real),
	}
}
