package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// axisAngleMinNormSq is the squared axis length below which a rotation is
// treated as zero and given the X axis.
const axisAngleMinNormSq = 0.001

// Euler holds a rotation as three angles in radians: Roll about X, Pitch
// about Y and Yaw about Z. Angles are not wrapped into any canonical range.
type Euler struct {
	Pitch, Roll, Yaw float32
}

// NewEuler returns Euler angles from the given pitch, roll and yaw.
func NewEuler(pitch, roll, yaw float32) Euler {
	return Euler{Pitch: pitch, Roll: roll, Yaw: yaw}
}

// EulerFromArray builds Euler angles from values ordered pitch, roll, yaw.
// Missing and NaN entries become 0.
func EulerFromArray(a []float32) Euler {
	var c [3]float32
	fillComponents(c[:], a)
	return Euler{Pitch: c[0], Roll: c[1], Yaw: c[2]}
}

// EulerFrom returns a copy of other.
func EulerFrom(other Euler) Euler {
	return Euler{Pitch: other.Pitch, Roll: other.Roll, Yaw: other.Yaw}
}

// Equals reports exact equality of all three angles.
func (e Euler) Equals(other Euler) bool {
	return e.Pitch == other.Pitch && e.Roll == other.Roll && e.Yaw == other.Yaw
}

// ToArray returns the angles ordered pitch, roll, yaw.
func (e Euler) ToArray() [3]float32 {
	return [3]float32{e.Pitch, e.Roll, e.Yaw}
}

// ToDegrees returns e with every angle converted from radians to degrees.
func (e Euler) ToDegrees() Euler {
	return Euler{Pitch: ToDegrees(e.Pitch), Roll: ToDegrees(e.Roll), Yaw: ToDegrees(e.Yaw)}
}

// ToRadians returns e with every angle converted from degrees to radians.
func (e Euler) ToRadians() Euler {
	return Euler{Pitch: ToRadians(e.Pitch), Roll: ToRadians(e.Roll), Yaw: ToRadians(e.Yaw)}
}

// ToQuat converts the angles to a quaternion.
func (e Euler) ToQuat() Quat {
	var q Quat
	e.ToQuatInto(&q)
	return q
}

// ToQuatInto writes the quaternion for e into out and returns out.
// Rotations compose as yaw, then pitch, then roll (intrinsic Z-Y-X), which
// is the inverse of Quat.ToEuler.
func (e Euler) ToQuatInto(out *Quat) *Quat {
	sy, cy := math32.Sincos(e.Yaw * 0.5)
	sr, cr := math32.Sincos(e.Roll * 0.5)
	sp, cp := math32.Sincos(e.Pitch * 0.5)

	return out.Set(
		cy*sr*cp-sy*cr*sp,
		cy*cr*sp+sy*sr*cp,
		sy*cr*cp-cy*sr*sp,
		cy*cr*cp+sy*sr*sp,
	)
}

// ToAxisAngle returns the rotation as [axisX, axisY, axisZ, angle].
func (e Euler) ToAxisAngle() Vec4 {
	var v Vec4
	e.ToAxisAngleInto(&v)
	return v
}

// ToAxisAngleInto writes [axisX, axisY, axisZ, angle] into out and returns
// out. The angle is in [0, 2*pi]. When the rotation is close to zero the
// axis is undefined and (1, 0, 0) is used instead.
func (e Euler) ToAxisAngleInto(out *Vec4) *Vec4 {
	q := e.ToQuat()

	angle := 2 * math32.Acos(Clamp(q.W, -1, 1))
	x, y, z := q.X, q.Y, q.Z
	norm := x*x + y*y + z*z
	if norm < axisAngleMinNormSq {
		x, y, z = 1, 0, 0
	} else {
		norm = math32.Sqrt(norm)
		x, y, z = x/norm, y/norm, z/norm
	}

	return out.Set(x, y, z, angle)
}

func (e Euler) String() string {
	return fmt.Sprintf("Euler(pitch=%g, roll=%g, yaw=%g)", e.Pitch, e.Roll, e.Yaw)
}
