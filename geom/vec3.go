package geom

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a point or direction in three-dimensional space.
//
// Equality (Equal) is component-wise within EPSILON. Ordering (Less) is
// lexicographic on the raw, untolerated doubles — it must stay a strict
// total order so Vec3 can key a map even when two positions are
// EPSILON-close but not bit-identical. The two notions deliberately
// disagree near the tolerance boundary — that disagreement is what
// keeps Less a valid map-key order.
type Vec3 struct {
	X, Y, Z float64
}

// mgl converts v to the mgl64 representation used for the arithmetic
// mgl64 already implements well.
func (v Vec3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{m[0], m[1], m[2]}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return fromMgl(v.mgl().Add(w.mgl()))
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return fromMgl(v.mgl().Sub(w.mgl()))
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return fromMgl(v.mgl().Mul(s))
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.mgl().Dot(w.mgl())
}

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return fromMgl(v.mgl().Cross(w.mgl()))
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return v.mgl().Len()
}

// Normalize returns v scaled to unit length. The result is undefined
// (NaN/Inf components) if v is the zero vector, matching the behavior
// of the original plane-normal computation this is grounded on.
func (v Vec3) Normalize() Vec3 {
	return fromMgl(v.mgl().Normalize())
}

// Equal reports whether v and w are within EPSILON on every axis.
func (v Vec3) Equal(w Vec3) bool {
	return absDiff(v.X, w.X) < EPSILON &&
		absDiff(v.Y, w.Y) < EPSILON &&
		absDiff(v.Z, w.Z) < EPSILON
}

// Less defines a strict total order on Vec3 by lexicographic comparison
// of the raw (non-tolerant) coordinates. This order is consistent
// (irreflexive, transitive, antisymmetric) precisely because it never
// consults EPSILON — do not "fix" it to agree with Equal.
func (v Vec3) Less(w Vec3) bool {
	if v.X != w.X {
		return v.X < w.X
	}
	if v.Y != w.Y {
		return v.Y < w.Y
	}
	return v.Z < w.Z
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
