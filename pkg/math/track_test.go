package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotTrackEmpty(t *testing.T) {
	assert.Equal(t, QuatIdentity(), RotTrack(nil).Sample(5))
}

func TestRotTrackSingleKey(t *testing.T) {
	q := QuatFromAxisAngle(axisY, 1)
	tr := RotTrack{{Time: 10, Rot: q}}
	assert.Equal(t, q, tr.Sample(0))
	assert.Equal(t, q, tr.Sample(10))
	assert.Equal(t, q, tr.Sample(100))
}

func TestRotTrackSample(t *testing.T) {
	half := float32(3.14159265) / 2
	tr := RotTrack{
		{Time: 0, Rot: QuatIdentity()},
		{Time: 100, Rot: QuatFromAxisAngle(axisZ, half)},
		{Time: 200, Rot: QuatFromAxisAngle(axisZ, 2*half)},
	}

	tests := []struct {
		name  string
		time  float32
		angle float32
	}{
		{"before first", -50, 0},
		{"first key", 0, 0},
		{"between first pair", 50, half / 2},
		{"middle key", 100, half},
		{"between second pair", 150, 1.5 * half},
		{"after last", 300, 2 * half},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSameRotation(t, QuatFromAxisAngle(axisZ, tt.angle), tr.Sample(tt.time), standardTol)
		})
	}
}

func TestRotTrackDuplicateTimes(t *testing.T) {
	a := QuatFromAxisAngle(axisX, 0.5)
	b := QuatFromAxisAngle(axisX, 1)
	tr := RotTrack{{Time: 0, Rot: QuatIdentity()}, {Time: 10, Rot: a}, {Time: 10, Rot: b}}
	assertQuatNear(t, b, tr.Sample(10), standardTol)
}

func TestRotTrackSorted(t *testing.T) {
	assert.True(t, RotTrack{{Time: 0}, {Time: 1}, {Time: 1}}.Sorted())
	assert.False(t, RotTrack{{Time: 2}, {Time: 1}}.Sorted())
}

func TestScaleTrackSample(t *testing.T) {
	assert.Equal(t, Vec3{1, 1, 1}, ScaleTrack(nil).Sample(3))

	tr := ScaleTrack{
		{Time: 0, Scale: Vec3{1, 1, 1}},
		{Time: 10, Scale: Vec3{3, 1, 2}},
	}
	assertVec3Near(t, Vec3{1, 1, 1}, tr.Sample(-1), standardTol)
	assertVec3Near(t, Vec3{2, 1, 1.5}, tr.Sample(5), standardTol)
	assertVec3Near(t, Vec3{3, 1, 2}, tr.Sample(20), standardTol)
}

func TestAnimated(t *testing.T) {
	assert.False(t, Animated(nil, nil))
	assert.False(t, Animated(RotTrack{{}}, ScaleTrack{{}}))
	assert.True(t, Animated(RotTrack{{}, {Time: 1}}, nil))
	assert.True(t, Animated(nil, ScaleTrack{{}, {Time: 1}}))
}

func TestRotTrackTakesShorterArc(t *testing.T) {
	flipped := QuatFromAxisAngle(axisZ, 0.4)
	flipped.Negate()
	tr := RotTrack{{Time: 0, Rot: QuatIdentity()}, {Time: 100, Rot: flipped}}

	got := tr.Sample(50)
	assertSameRotation(t, QuatFromAxisAngle(axisZ, 0.2), got, standardTol)
	assert.InDelta(t, 1, got.Length(), 1e-5)

	// Nearly equal rotations with opposite signs stay next to both keys.
	b := QuatFromAxisAngle(axisZ, 0.21)
	b.Negate()
	tr = RotTrack{{Time: 0, Rot: QuatFromAxisAngle(axisZ, 0.2)}, {Time: 10, Rot: b}}
	got = tr.Sample(5)
	assertSameRotation(t, QuatFromAxisAngle(axisZ, 0.205), got, standardTol)
	assert.InDelta(t, 1, got.Length(), 1e-5)
}

func TestRotTrackKeepsStoredKeys(t *testing.T) {
	flipped := QuatFromAxisAngle(axisX, 1)
	flipped.Negate()
	tr := RotTrack{{Time: 0, Rot: QuatIdentity()}, {Time: 1, Rot: flipped}}
	tr.Sample(0.5)
	assert.Equal(t, flipped, tr[1].Rot)
	assert.Equal(t, flipped, tr.Sample(2))
}
