package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
)

func TestQuatNumberConversion(t *testing.T) {
	q := NewQuat(1, 2, 3, 4)
	n := q.ToNumber()
	assert.Equal(t, quat.Number{Real: 4, Imag: 1, Jmag: 2, Kmag: 3}, n)
	assert.Equal(t, q, QuatFromNumber(n))
}

func TestQuatMultiplyMatchesGonum(t *testing.T) {
	pairs := [][2]Quat{
		{NewQuat(1, 2, 3, 4), NewQuat(5, 6, 7, 8)},
		{QuatFromAxisAngle(axisX, 0.3), QuatFromAxisAngle(axisZ, -1.2)},
		{NewQuat(-0.5, 0.25, 2, -1), NewQuat(0.125, -3, 0.5, 0.75)},
	}
	for _, p := range pairs {
		want := QuatFromNumber(quat.Mul(p[0].ToNumber(), p[1].ToNumber()))
		assertQuatNear(t, want, p[0].Mul(p[1]), 1e-5)
	}
}

func TestQuatInverseMatchesGonum(t *testing.T) {
	q := NewQuat(1, -2, 0.5, 3)
	want := QuatFromNumber(quat.Inv(q.ToNumber()))
	assertQuatNear(t, want, q.Inverse(), 1e-6)

	conj := QuatFromNumber(quat.Conj(q.ToNumber()))
	c := q.Clone()
	assert.Equal(t, conj, *c.Conjugate())
}
