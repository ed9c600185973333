// File: simplify.go
// Role: Simplify, the package's single entry point — wires Build, the
//       edge queue, and attemptCollapse into the greedy reduction loop.
package simplify

import (
	"math"

	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/meshgraph"
)

// Simplify reduces input to approximately factor of its original face
// count (0 < factor < 1 shrinks; factor >= 1 is a no-op; factor <= 0
// collapses as far as the priority queue allows) using greedy
// quadric-error-metric edge collapse. The cheapest valid edge is
// collapsed repeatedly until the target face count is reached or no
// more valid collapses remain — a collapse is invalid when it would
// flip the normal of one of its incident faces, and such an edge is
// simply abandoned rather than retried.
//
// target is floor(liveFaces * factor), matching the original's
// truncating cast rather than rounding to nearest, so that e.g.
// factor=0.9 on a 4-face mesh gives target floor(3.6) = 3, where
// rounding would give 4 and make the call a no-op.
//
// Simplify is safe to call concurrently, even on the same input: it
// only reads input, builds and owns a private meshgraph.Graph for the
// duration of the call, and touches no shared state.
//
// Steps:
//  1. Build the incidence graph and count its live faces.
//  2. Compute target = floor(liveFaces * factor), clamped to >= 0.
//  3. Load every edge into a min-heap ordered by quadric error.
//  4. Pop the cheapest still-valid edge and attempt to collapse it;
//     on success, subtract the faces it retired from liveFaces.
//  5. Repeat until liveFaces <= target or the queue is exhausted.
//  6. Extract the surviving faces back into a flat triangle list.
//
// Complexity: O(E log E) for the initial heap plus O(C log E) for C
// collapses, each popping and pushing a bounded number of edges.
func Simplify(input []geom.Triangle, factor float64) []geom.Triangle {
	g := meshgraph.Build(input) // 1. build

	liveFaces := 0
	for _, f := range g.Faces {
		if !f.Removed {
			liveFaces++
		}
	}

	target := int(math.Floor(float64(liveFaces) * factor)) // 2. target
	if target < 0 {
		target = 0
	}

	q := newEdgeQueue(g.Edges) // 3. seed the queue
	for liveFaces > target {
		e, ok := q.PopValid() // 4. cheapest valid edge
		if !ok {
			break // 5. queue exhausted before reaching target
		}
		committed, removed := attemptCollapse(g, q, e)
		if committed {
			liveFaces -= removed
		}
	}

	return Extract(g) // 6. flatten back to triangles
}
