package math

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Rect is an axis-aligned 2D bounding box. Min = (+Inf, +Inf) with
// Max = (-Inf, -Inf) is the empty box, which any point expands.
type Rect struct {
	Min Vec2
	Max Vec2
}

// NewRect returns a rectangle spanning min to max.
func NewRect(min, max Vec2) Rect {
	return Rect{Min: min, Max: max}
}

// EmptyRect returns the empty rectangle.
func EmptyRect() Rect {
	var r Rect
	r.SetEmpty()
	return r
}

// RectFromPoints returns the smallest rectangle containing points.
func RectFromPoints(points []Vec2) Rect {
	var r Rect
	r.SetFromPoints(points)
	return r
}

// RectFromImage converts an integer image rectangle.
func RectFromImage(rect image.Rectangle) Rect {
	return Rect{
		Min: Vec2{float32(rect.Min.X), float32(rect.Min.Y)},
		Max: Vec2{float32(rect.Max.X), float32(rect.Max.Y)},
	}
}

// RectFromFixed converts a 26.6 fixed-point rectangle.
func RectFromFixed(rect fixed.Rectangle26_6) Rect {
	return Rect{
		Min: Vec2{fixedToFloat(rect.Min.X), fixedToFloat(rect.Min.Y)},
		Max: Vec2{fixedToFloat(rect.Max.X), fixedToFloat(rect.Max.Y)},
	}
}

// Set sets the rectangle's corners.
func (r *Rect) Set(min, max Vec2) *Rect {
	r.Min, r.Max = min, max
	return r
}

// Copy sets r to other.
func (r *Rect) Copy(other Rect) *Rect {
	return r.Set(other.Min, other.Max)
}

// Clone returns an independent copy of r.
func (r Rect) Clone() Rect {
	return r
}

// SetEmpty resets r to the empty rectangle.
func (r *Rect) SetEmpty() *Rect {
	inf := math32.Inf(1)
	r.Min = Vec2{inf, inf}
	r.Max = Vec2{-inf, -inf}
	return r
}

// IsEmpty reports whether max < min on either axis.
func (r Rect) IsEmpty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// SetFromPoints sets r to the bounds of points. No points gives the empty
// rectangle.
func (r *Rect) SetFromPoints(points []Vec2) *Rect {
	r.SetEmpty()
	for _, p := range points {
		r.ExpandByPoint(p)
	}
	return r
}

// Equals reports exact equality of both corners.
func (r Rect) Equals(other Rect) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Min.X <= other.Min.X && other.Max.X <= r.Max.X &&
		r.Min.Y <= other.Min.Y && other.Max.Y <= r.Max.Y
}

// Intersects reports whether r and other overlap, touching edges included.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Max.X < r.Min.X || other.Min.X > r.Max.X ||
		other.Max.Y < r.Min.Y || other.Min.Y > r.Max.Y)
}

// ExpandByPoint grows r to include p.
func (r *Rect) ExpandByPoint(p Vec2) *Rect {
	r.Min = r.Min.Min(p)
	r.Max = r.Max.Max(p)
	return r
}

// Merge grows r to include other.
func (r *Rect) Merge(other Rect) *Rect {
	r.Min = r.Min.Min(other.Min)
	r.Max = r.Max.Max(other.Max)
	return r
}

// Scale multiplies both corners by s.
func (r *Rect) Scale(s float32) *Rect {
	r.Min = r.Min.Scale(s)
	r.Max = r.Max.Scale(s)
	return r
}

// ToImage returns the integer rectangle covering r, flooring Min and
// ceiling Max.
func (r Rect) ToImage() image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.Min.X)), int(math32.Floor(r.Min.Y)),
		int(math32.Ceil(r.Max.X)), int(math32.Ceil(r.Max.Y)),
	)
}

// ToFixed returns r as a 26.6 fixed-point rectangle.
func (r Rect) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: floatToFixed(r.Min.X), Y: floatToFixed(r.Min.Y)},
		Max: fixed.Point26_6{X: floatToFixed(r.Max.X), Y: floatToFixed(r.Max.Y)},
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}
