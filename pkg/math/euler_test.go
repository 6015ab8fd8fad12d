package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEulerConstructors(t *testing.T) {
	assert.Equal(t, Euler{Pitch: 1, Roll: 2, Yaw: 3}, NewEuler(1, 2, 3))
	assert.Equal(t, Euler{Pitch: 1, Roll: 2, Yaw: 3}, EulerFromArray([]float32{1, 2, 3}))
	assert.Equal(t, Euler{Pitch: 1}, EulerFromArray([]float32{1}))
	assert.Equal(t, Euler{Roll: 2}, EulerFromArray([]float32{float32(math.NaN()), 2}))

	src := NewEuler(0.1, 0.2, 0.3)
	cp := EulerFrom(src)
	assert.True(t, cp.Equals(src))
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, cp.ToArray())
}

func TestEulerUnits(t *testing.T) {
	e := NewEuler(90, -45, 180).ToRadians()
	assert.InDelta(t, math.Pi/2, e.Pitch, 1e-6)
	assert.InDelta(t, -math.Pi/4, e.Roll, 1e-6)
	assert.InDelta(t, math.Pi, e.Yaw, 1e-6)

	d := e.ToDegrees()
	assert.InDelta(t, 90, d.Pitch, 1e-4)
	assert.InDelta(t, -45, d.Roll, 1e-4)
	assert.InDelta(t, 180, d.Yaw, 1e-4)
}

func TestEulerToQuatSingleAxis(t *testing.T) {
	tests := []struct {
		name  string
		euler Euler
		axis  Vec3
		angle float32
	}{
		{"roll", NewEuler(0, 0.6, 0), axisX, 0.6},
		{"pitch", NewEuler(0.6, 0, 0), axisY, 0.6},
		{"yaw", NewEuler(0, 0, 0.6), axisZ, 0.6},
		{"negative yaw", NewEuler(0, 0, -2), axisZ, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertQuatNear(t, QuatFromAxisAngle(tt.axis, tt.angle), tt.euler.ToQuat(), 1e-6)
		})
	}
}

func TestEulerToQuatComposition(t *testing.T) {
	e := NewEuler(0.3, -0.7, 1.1)
	yaw := QuatFromAxisAngle(axisZ, e.Yaw)
	pitch := QuatFromAxisAngle(axisY, e.Pitch)
	roll := QuatFromAxisAngle(axisX, e.Roll)

	want := yaw.Mul(pitch).Mul(roll)
	assertQuatNear(t, want, e.ToQuat(), 1e-6)

	var out Quat
	got := e.ToQuatInto(&out)
	assert.Same(t, &out, got)
	assert.Equal(t, e.ToQuat(), out)
}

func TestEulerQuatRoundTrip(t *testing.T) {
	tests := []Euler{
		NewEuler(0, 0, 0),
		NewEuler(0.3, -0.7, 1.1),
		NewEuler(-1.2, 2.5, -3),
		NewEuler(1.5, 0.1, 0.2),
	}
	for _, e := range tests {
		got := e.ToQuat().ToEuler()
		assert.InDelta(t, e.Pitch, got.Pitch, 1e-4, "pitch of %v", e)
		assert.InDelta(t, e.Roll, got.Roll, 1e-4, "roll of %v", e)
		assert.InDelta(t, e.Yaw, got.Yaw, 1e-4, "yaw of %v", e)
	}
}

func TestEulerToAxisAngleZero(t *testing.T) {
	aa := NewEuler(0, 0, 0).ToAxisAngle()
	assert.Equal(t, axisX, aa.Axis())
	assert.False(t, math.IsNaN(float64(aa.Angle())))
	assert.InDelta(t, 0, aa.Angle(), 1e-6)
}

func TestEulerToAxisAngle(t *testing.T) {
	aa := NewEuler(0, 0, math.Pi/2).ToAxisAngle()
	assertVec3Near(t, axisZ, aa.Axis(), 1e-6)
	assert.InDelta(t, math.Pi/2, aa.Angle(), 1e-5)

	aa = NewEuler(0, 1, 0).ToAxisAngle()
	assertVec3Near(t, axisX, aa.Axis(), 1e-6)
	assert.InDelta(t, 1, aa.Angle(), 1e-5)

	aa = NewEuler(-0.8, 0, 0).ToAxisAngle()
	assertVec3Near(t, Vec3{0, -1, 0}, aa.Axis(), 1e-6)
	assert.InDelta(t, 0.8, aa.Angle(), 1e-5)
}

func TestEulerToAxisAngleMatchesQuat(t *testing.T) {
	e := NewEuler(0.3, -0.7, 1.1)
	var aa Vec4
	got := e.ToAxisAngleInto(&aa)
	assert.Same(t, &aa, got)

	assert.InDelta(t, 1, aa.Axis().Length(), 1e-6)
	assertSameRotation(t, e.ToQuat(), QuatFromAxisAngle(aa.Axis(), aa.Angle()), 1e-5)
}

func TestEulerToAxisAngleTinyRotation(t *testing.T) {
	aa := NewEuler(0, 0, 0.01).ToAxisAngle()
	assert.Equal(t, axisX, aa.Axis())
	assert.InDelta(t, 0.01, aa.Angle(), 1e-3)
}
