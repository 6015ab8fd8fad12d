package math

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrNonUnitAxis is returned by the strict axis-angle constructor when the
// rotation axis is not normalized.
var ErrNonUnitAxis = errors.New("rotation axis is not unit length")

// unitAxisTolerance is how far |axis| may drift from 1 before the strict
// constructor rejects it.
const unitAxisTolerance = 1e-4

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
//
// Mutating methods use pointer receivers and return the receiver so calls
// can be chained; methods that only read use value receivers. Nothing keeps
// a Quat at unit length automatically: Multiply and SetFromRotationMatrix
// may drift, so call Normalize when strict unit length matters.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// NewQuat returns a quaternion with the given components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuat3 returns a quaternion with the given vector part and W = 1.
func NewQuat3(x, y, z float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: 1}
}

// QuatFromArray builds a quaternion from up to four values ordered
// x, y, z, w. Missing and NaN entries become 0, so a short slice does not
// produce an identity.
func QuatFromArray(a []float32) Quat {
	var c [4]float32
	fillComponents(c[:], a)
	return Quat{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}

// QuatFrom returns a copy of other.
func QuatFrom(other Quat) Quat {
	return Quat{X: other.X, Y: other.Y, Z: other.Z, W: other.W}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	var q Quat
	q.SetFromAxisAngle(axis, angle)
	return q
}

// QuatFromAxisAngleStrict is QuatFromAxisAngle but reports ErrNonUnitAxis
// instead of silently building a non-unit quaternion.
func QuatFromAxisAngleStrict(axis Vec3, angle float32) (Quat, error) {
	if l := axis.Length(); math32.Abs(l-1) > unitAxisTolerance {
		return QuatIdentity(), fmt.Errorf("%w: |axis| = %g", ErrNonUnitAxis, l)
	}
	return QuatFromAxisAngle(axis, angle), nil
}

// QuatFromUnitVectors returns the shortest-arc rotation taking from onto to.
func QuatFromUnitVectors(from, to Vec3) Quat {
	var q Quat
	q.SetFromUnitVectors(from, to)
	return q
}

// QuatFromRotationMatrix extracts the rotation held in the upper 3x3 of m.
func QuatFromRotationMatrix(m Mat4) Quat {
	var q Quat
	q.SetFromRotationMatrix(m)
	return q
}

// Set overwrites all four components.
func (q *Quat) Set(x, y, z, w float32) *Quat {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Copy sets q to other.
func (q *Quat) Copy(other Quat) *Quat {
	return q.Set(other.X, other.Y, other.Z, other.W)
}

// Clone returns an independent copy of q.
func (q Quat) Clone() Quat {
	return QuatFrom(q)
}

// Equals reports exact component-wise equality.
func (q Quat) Equals(other Quat) bool {
	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

// ToArray returns the components ordered x, y, z, w.
func (q Quat) ToArray() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// Negate flips the sign of every component. The result represents the same
// rotation.
func (q *Quat) Negate() *Quat {
	q.X, q.Y, q.Z, q.W = -q.X, -q.Y, -q.Z, -q.W
	return q
}

// Conjugate negates the vector part in place.
func (q *Quat) Conjugate() *Quat {
	q.X, q.Y, q.Z = -q.X, -q.Y, -q.Z
	return q
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSq returns the squared norm over all four components.
func (q Quat) LengthSq() float32 {
	return q.Dot(q)
}

// Length returns the Euclidean norm over all four components.
func (q Quat) Length() float32 {
	return math32.Sqrt(q.LengthSq())
}

// Normalize scales q to unit length. A quaternion of length exactly zero
// becomes the identity.
func (q *Quat) Normalize() *Quat {
	l := q.Length()
	if l == 0 {
		return q.Set(0, 0, 0, 1)
	}
	l = 1 / l
	return q.Set(q.X*l, q.Y*l, q.Z*l, q.W*l)
}

// Invert sets q to its multiplicative inverse, conjugate(q) / |q|^2. For
// unit quaternions this equals the conjugate. A zero quaternion becomes the
// identity.
func (q *Quat) Invert() *Quat {
	l := q.LengthSq()
	if l == 0 {
		return q.Set(0, 0, 0, 1)
	}
	l = 1 / l
	return q.Set(-q.X*l, -q.Y*l, -q.Z*l, q.W*l)
}

// Inverse returns the inverse of q without modifying it.
func (q Quat) Inverse() Quat {
	return *q.Invert()
}

// Multiply sets q to the Hamilton product q * b. Order matters: the result
// applies b first, then q.
func (q *Quat) Multiply(b Quat) *Quat {
	ax, ay, az, aw := q.X, q.Y, q.Z, q.W

	q.X = ax*b.W + aw*b.X + ay*b.Z - az*b.Y
	q.Y = ay*b.W + aw*b.Y + az*b.X - ax*b.Z
	q.Z = az*b.W + aw*b.Z + ax*b.Y - ay*b.X
	q.W = aw*b.W - ax*b.X - ay*b.Y - az*b.Z
	return q
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return *q.Multiply(other)
}

// SetFromAxisAngle sets q to a rotation of angle radians around axis.
// axis is assumed to be unit length and is not normalized.
func (q *Quat) SetFromAxisAngle(axis Vec3, angle float32) *Quat {
	s, c := math32.Sincos(angle * 0.5)
	return q.Set(axis.X*s, axis.Y*s, axis.Z*s, c)
}

// SetFromUnitVectors sets q to the shortest-arc rotation taking from onto
// to. Both vectors must be normalized. Antipodal inputs get a 180 degree
// rotation about an arbitrary axis perpendicular to from.
func (q *Quat) SetFromUnitVectors(from, to Vec3) *Quat {
	const eps = 0.000001

	var v Vec3
	r := from.Dot(to) + 1
	if r < eps {
		r = 0
		if math32.Abs(from.X) > math32.Abs(from.Z) {
			v.Set(-from.Y, from.X, 0)
		} else {
			v.Set(0, -from.Z, from.Y)
		}
	} else {
		v = from.Cross(to)
	}

	return q.Set(v.X, v.Y, v.Z, r).Normalize()
}

// SetFromRotationMatrix sets q from the upper 3x3 of m, which must be a
// pure, unscaled rotation. The branch is picked from the trace and the
// largest diagonal element so the divisor never approaches zero.
func (q *Quat) SetFromRotationMatrix(m Mat4) *Quat {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / math32.Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s := 2 * math32.Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s := 2 * math32.Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s := 2 * math32.Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
	return q
}

// ToEuler converts q to roll (x), pitch (y) and yaw (z) angles.
func (q Quat) ToEuler() Euler {
	var e Euler
	q.ToEulerInto(&e)
	return e
}

// ToEulerInto writes the Euler angles of q into out and returns out.
// The pitch term is clamped to [-1, 1] so gimbal-lock poles do not yield NaN.
func (q Quat) ToEulerInto(out *Euler) *Euler {
	ysqr := q.Y * q.Y

	t0 := 2 * (q.W*q.X + q.Y*q.Z)
	t1 := 1 - 2*(q.X*q.X+ysqr)
	out.Roll = math32.Atan2(t0, t1)

	t2 := Clamp(2*(q.W*q.Y-q.Z*q.X), -1, 1)
	out.Pitch = math32.Asin(t2)

	t3 := 2 * (q.W*q.Z + q.X*q.Y)
	t4 := 1 - 2*(ysqr+q.Z*q.Z)
	out.Yaw = math32.Atan2(t3, t4)

	return out
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	return Mat4FromQuat(q)
}

// RotateVec3 applies the rotation of q to v. q should be unit length.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Inverse())
	return Vec3{r.X, r.Y, r.Z}
}

// Lerp performs linear interpolation between two quaternions.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	r := Quat{
		X: q.X + t*(other.X-q.X),
		Y: q.Y + t*(other.Y-q.Y),
		Z: q.Z + t*(other.Z-q.Z),
		W: q.W + t*(other.W-q.W),
	}
	return *r.Normalize()
}

func (q Quat) String() string {
	return fmt.Sprintf("Quat(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// fillComponents copies src into dst, treating missing and NaN values as 0.
func fillComponents(dst, src []float32) {
	for i := range dst {
		if i < len(src) && !math32.IsNaN(src[i]) {
			dst[i] = src[i]
		} else {
			dst[i] = 0
		}
	}
}
