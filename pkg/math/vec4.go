package math

// Vec4 is a 4-component vector. Axis-angle rotations use it as
// [axisX, axisY, axisZ, angle].
type Vec4 [4]float32

// Set overwrites all four components.
func (v *Vec4) Set(x, y, z, w float32) *Vec4 {
	v[0], v[1], v[2], v[3] = x, y, z, w
	return v
}

// Axis returns the first three components.
func (v Vec4) Axis() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Angle returns the fourth component.
func (v Vec4) Angle() float32 {
	return v[3]
}
