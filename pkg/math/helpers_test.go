package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1e-4)

func assertQuatNear(t *testing.T, want, got Quat, tol float32) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64(tol), "X of %v vs %v", want, got)
	assert.InDelta(t, want.Y, got.Y, float64(tol), "Y of %v vs %v", want, got)
	assert.InDelta(t, want.Z, got.Z, float64(tol), "Z of %v vs %v", want, got)
	assert.InDelta(t, want.W, got.W, float64(tol), "W of %v vs %v", want, got)
}

// assertSameRotation treats q and -q as equal.
func assertSameRotation(t *testing.T, want, got Quat, tol float32) {
	t.Helper()
	if want.Dot(got) < 0 {
		got.Negate()
	}
	assertQuatNear(t, want, got, tol)
}

func assertVec3Near(t *testing.T, want, got Vec3, tol float32) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64(tol), "X of %v vs %v", want, got)
	assert.InDelta(t, want.Y, got.Y, float64(tol), "Y of %v vs %v", want, got)
	assert.InDelta(t, want.Z, got.Z, float64(tol), "Z of %v vs %v", want, got)
}

func assertNoNaN(t *testing.T, q Quat) {
	t.Helper()
	for i, c := range q.ToArray() {
		assert.False(t, math32.IsNaN(c), "component %d of %v is NaN", i, q)
	}
}

var (
	axisX = Vec3{1, 0, 0}
	axisY = Vec3{0, 1, 0}
	axisZ = Vec3{0, 0, 1}
)
