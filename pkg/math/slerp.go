package math

import "github.com/chewxy/math32"

// slerpMinSinHalfTheta is the sin(theta/2) below which the interpolation
// axis is considered undefined.
const slerpMinSinHalfTheta = 0.001

// Slerp performs spherical linear interpolation from qa to qb.
// t is expected in [0, 1] but is not clamped; values outside extrapolate.
// The path is not flipped to the shorter arc: callers that want that should
// negate qb when qa.Dot(qb) < 0.
func Slerp(qa, qb Quat, t float32) Quat {
	var qm Quat
	SlerpInto(qa, qb, &qm, t)
	return qm
}

// SlerpInto is Slerp writing its result into qm, which is returned.
// qa and qb are passed by value, so qm may point at either source.
//
// Degenerate cases: when qa and qb are identical or antipodal, qm is set to
// qa. When they are nearly 180 degrees apart the result is the plain
// component-wise average of qa and qb.
func SlerpInto(qa, qb Quat, qm *Quat, t float32) *Quat {
	cosHalfTheta := qa.Dot(qb)
	if math32.Abs(cosHalfTheta) >= 1 {
		return qm.Copy(qa)
	}

	halfTheta := math32.Acos(cosHalfTheta)
	sinHalfTheta := math32.Sqrt(1 - cosHalfTheta*cosHalfTheta)
	if math32.Abs(sinHalfTheta) < slerpMinSinHalfTheta {
		return qm.Set(
			qa.X*0.5+qb.X*0.5,
			qa.Y*0.5+qb.Y*0.5,
			qa.Z*0.5+qb.Z*0.5,
			qa.W*0.5+qb.W*0.5,
		)
	}

	ratioA := math32.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := math32.Sin(t*halfTheta) / sinHalfTheta

	return qm.Set(
		qa.X*ratioA+qb.X*ratioB,
		qa.Y*ratioA+qb.Y*ratioB,
		qa.Z*ratioA+qb.Z*ratioB,
		qa.W*ratioA+qb.W*ratioB,
	)
}

// Slerp is the method form of Slerp(q, other, t).
func (q Quat) Slerp(other Quat, t float32) Quat {
	return Slerp(q, other, t)
}
