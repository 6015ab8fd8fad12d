package math

import "sort"

// RotKey is a rotation keyframe.
type RotKey struct {
	Time float32
	Rot  Quat
}

// ScaleKey is a scale keyframe.
type ScaleKey struct {
	Time  float32
	Scale Vec3
}

// RotTrack is a sequence of rotation keyframes sorted by Time.
type RotTrack []RotKey

// ScaleTrack is a sequence of scale keyframes sorted by Time.
type ScaleTrack []ScaleKey

// bracket finds the keys surrounding t in a track of n keys and the blend
// factor between them. prev == next when t is outside the keyed range.
func bracket(n int, at func(int) float32, t float32) (prev, next int, f float32) {
	next = sort.Search(n, func(i int) bool { return at(i) > t })
	if next == 0 {
		return 0, 0, 0
	}
	if next == n {
		return n - 1, n - 1, 0
	}
	prev = next - 1
	if span := at(next) - at(prev); span != 0 {
		f = (t - at(prev)) / span
	}
	return prev, next, f
}

// Sample returns the rotation at time t, slerping between the surrounding
// keys. Before the first key and after the last the end keys are held.
// An empty track yields the identity.
func (tr RotTrack) Sample(t float32) Quat {
	var q Quat
	tr.SampleInto(&q, t)
	return q
}

// SampleInto is Sample writing into out, which is returned.
// Neighbouring keys are blended along the shorter arc, so a key stored as
// -q interpolates the same as one stored as q.
func (tr RotTrack) SampleInto(out *Quat, t float32) *Quat {
	if len(tr) == 0 {
		return out.Set(0, 0, 0, 1)
	}
	prev, next, f := bracket(len(tr), func(i int) float32 { return tr[i].Time }, t)
	if prev == next {
		return out.Copy(tr[prev].Rot)
	}
	from, to := tr[prev].Rot, tr[next].Rot
	if from.Dot(to) < 0 {
		to.Negate()
	}
	return SlerpInto(from, to, out, f)
}

// Sorted reports whether the keys are in non-decreasing time order.
func (tr RotTrack) Sorted() bool {
	return sort.SliceIsSorted(tr, func(i, j int) bool { return tr[i].Time < tr[j].Time })
}

// Sample returns the linearly interpolated scale at time t. An empty track
// yields (1, 1, 1).
func (tr ScaleTrack) Sample(t float32) Vec3 {
	if len(tr) == 0 {
		return Vec3{1, 1, 1}
	}
	prev, next, f := bracket(len(tr), func(i int) float32 { return tr[i].Time }, t)
	a := tr[prev].Scale
	if prev == next {
		return a
	}
	return a.Add(tr[next].Scale.Sub(a).Scale(f))
}

// Animated reports whether either track has more than one key. A single
// key is a static pose.
func Animated(rot RotTrack, scale ScaleTrack) bool {
	return len(rot) > 1 || len(scale) > 1
}
