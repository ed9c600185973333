// Package geom provides the linear-algebra kernel and mesh primitives the
// simplifier is built on: a 3D vector type with the exact equality and
// ordering rules an incidence graph needs as a map key, a row-major 4x4
// matrix with the cofactor-based determinant/inverse pair the quadric
// error metric depends on, and the triangle type that turns a plane into
// a quadric.
//
// Vector arithmetic (Add, Sub, Cross, Dot, Normalize) delegates to
// github.com/go-gl/mathgl/mgl64; geom layers the EPSILON-tolerant
// equality and the raw-double total order QEM's incidence maps require,
// neither of which mgl64 provides.
package geom

// EPSILON is the tolerance used for Vec3 equality, singular-quadric
// detection, and the normal-flip guard. It must never be used inside
// Vec3.Less: that order has to stay a strict total order on raw doubles
// to remain consistent as a map key.
const EPSILON = 1e-6
