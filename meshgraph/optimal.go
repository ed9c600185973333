// File: optimal.go
// Role: OptimalPosition, the replacement-vertex placement rule used by
//       every candidate collapse.
package meshgraph

import (
	"math"

	"github.com/MicroKiss/Simplifier/geom"
)

// segmentSamples is the number of evenly spaced points (including both
// endpoints) scanned along a collapsing edge when its combined quadric
// is singular and the quadric minimizer cannot be solved for directly.
const segmentSamples = 33

// OptimalPosition returns the position a collapse replacing the edge
// (a, b) with combined quadric q should place its replacement vertex
// at. When |q.Determinant()| of the full 4x4 quadric exceeds EPSILON this
// is the exact quadric minimizer (geom.Matrix.QuadricVector). Otherwise it
// falls back to sampling segmentSamples evenly spaced points on the
// segment from a to b and keeping whichever has the lowest quadric
// error — the same fallback the original plane-based solver uses when
// the accumulated planes don't pin down a unique minimum.
//
// Steps:
//  1. If |q.Determinant()| clears EPSILON, solve for the exact quadric
//     minimizer and return it, provided every component came out
//     finite (a non-singular determinant can still leave the solve
//     numerically unstable).
//  2. Otherwise scan segmentSamples points evenly spaced from a to b
//     (inclusive of both endpoints) and keep the one with the lowest
//     QuadricError.
//
// Complexity: O(1) for the invertible path; O(segmentSamples) for the
// fallback scan.
func OptimalPosition(q geom.Matrix, a, b geom.Vec3) geom.Vec3 {
	// 1. exact minimizer when the quadric is well-conditioned
	if math.Abs(q.Determinant()) > geom.EPSILON {
		v := q.QuadricVector()
		if isFinite(v) {
			return v
		}
	}

	// 2. segment scan fallback for a singular or unstable quadric
	best := a
	bestErr := q.QuadricError(a)
	for i := 1; i < segmentSamples; i++ {
		t := float64(i) / float64(segmentSamples-1)
		p := a.Add(b.Sub(a).Scale(t))
		if e := q.QuadricError(p); e < bestErr {
			bestErr = e
			best = p
		}
	}
	return best
}

func isFinite(v geom.Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
