// File: collapse.go
// Role: attemptCollapse (plan-then-commit single edge collapse) and
//       rewireEdges (edge-side half of committing a collapse), plus
//       their gatherFaces/gatherEdges incidence helpers.
package simplify

import (
	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/meshgraph"
)

// facePlan is the precomputed outcome for one face incident to a
// candidate collapse, decided before anything is mutated so the whole
// attempt can still be aborted cleanly.
type facePlan struct {
	face     *meshgraph.Face
	drop     bool // collapses away entirely (spans both endpoints) or degenerates
	p1, p2, p3 geom.Vec3
}

// attemptCollapse tries to collapse edge p. It returns whether the
// collapse was committed and, if so, how many incident faces were
// retired as a side effect (faces that spanned both endpoints or
// degenerated under the substitution) — the caller uses this to track
// the shrinking live face count without rescanning the whole graph.
//
// Nothing is mutated until every incident face has been checked for a
// normal flip: if substituting the replacement vertex into any
// non-degenerate face would flip its normal relative to the original
// (dot product below geom.EPSILON, not merely negative), the entire
// collapse is abandoned and p is not pushed back onto the queue — p
// itself stays exactly as it was (Removed still false, still present in
// a.Edges and b.Edges), so a later collapse of a or b via a different
// edge gathers p through gatherEdges like any other incident edge and
// rewires it onto that collapse's replacement vertex; the edge was never
// invalid, only this particular replacement position was.
//
// Steps:
//  1. Compute the shared quadric and replacement position for (a, b).
//  2. Plan every face incident to a or b before mutating anything:
//     a face spanning both endpoints is dropped outright; a face
//     touching only one endpoint is checked for degeneracy and for a
//     normal flip under the substituted position.
//  3. If any non-degenerate face would flip, abort with no side
//     effects — the edge is simply not reinserted into the queue.
//  4. Otherwise allocate the replacement vertex, apply every planned
//     face outcome (drop or in-place Face.Replace), and retire a, b.
//  5. Rewire every edge that touched a or b onto the replacement
//     vertex.
//
// Complexity: O(deg(a) + deg(b)) — proportional to the combined face
// and edge degree of the two endpoints, not to the whole mesh.
func attemptCollapse(g *meshgraph.Graph, q *edgeQueue, p *meshgraph.Edge) (committed bool, facesRemoved int) {
	a, b := p.A, p.B
	quadric := p.Quadric()
	pos := meshgraph.OptimalPosition(quadric, a.Position, b.Position) // 1.

	faces := gatherFaces(a, b)
	plans := make([]facePlan, 0, len(faces))
	for _, f := range faces { // 2. plan every incident face
		touchesA := f.V1 == a || f.V2 == a || f.V3 == a
		touchesB := f.V1 == b || f.V2 == b || f.V3 == b
		if touchesA && touchesB {
			plans = append(plans, facePlan{face: f, drop: true})
			continue
		}

		p1, p2, p3 := f.V1.Position, f.V2.Position, f.V3.Position
		if touchesA || touchesB {
			if f.V1 == a || f.V1 == b {
				p1 = pos
			}
			if f.V2 == a || f.V2 == b {
				p2 = pos
			}
			if f.V3 == a || f.V3 == b {
				p3 = pos
			}
		}

		if p1.Equal(p2) || p2.Equal(p3) || p1.Equal(p3) {
			plans = append(plans, facePlan{face: f, drop: true})
			continue
		}

		newNormal := geom.Triangle{V1: p1, V2: p2, V3: p3}.Normal()
		if f.Normal().Dot(newNormal) < geom.EPSILON {
			return false, 0 // 3. abort: no mutation has happened yet
		}
		plans = append(plans, facePlan{face: f, p1: p1, p2: p2, p3: p3})
	}

	// 4. commit: allocate replacement vertex, apply every planned face
	nv := g.AddVertex(&meshgraph.Vertex{Position: pos, Quadric: quadric})
	for _, pl := range plans {
		if pl.drop {
			pl.face.Removed = true
			facesRemoved++
			continue
		}
		pl.face.Replace(a, nv)
		pl.face.Replace(b, nv)
		nv.Faces = append(nv.Faces, pl.face)
	}
	a.Removed = true
	b.Removed = true

	rewireEdges(g, q, p, a, b, nv) // 5.

	return true, facesRemoved
}

// rewireEdges retires every edge that touched a or b and, for each one
// other than p itself, replaces it with an edge from nv to the edge's
// far endpoint — unless an edge to that same far position has already
// been created earlier in this same collapse (two edges fanning out of
// a and b can land on the same far vertex when a and b share a
// neighboring face), in which case the duplicate is dropped instead of
// pushed again.
//
// Steps:
//  1. Gather every still-live edge touching a or b.
//  2. Retire it unconditionally (it is being replaced or consumed).
//  3. Skip p itself — it was consumed by the collapse, not rewired.
//  4. Skip an edge whose far endpoint already coincides with nv's
//     position (it would become a zero-length self-edge).
//  5. Skip a far endpoint already wired to nv earlier in this same
//     call, keyed by position rather than pointer.
//  6. Otherwise create nv<->other, push it onto the queue.
//
// Complexity: O(deg(a) + deg(b)).
func rewireEdges(g *meshgraph.Graph, q *edgeQueue, p *meshgraph.Edge, a, b, nv *meshgraph.Vertex) {
	seen := make(map[meshgraph.PairKey]bool)
	for _, e := range gatherEdges(a, b) { // 1.
		e.Removed = true // 2.
		if e == p {
			continue // 3.
		}
		var other *meshgraph.Vertex
		if e.A == a || e.A == b {
			other = e.B
		} else {
			other = e.A
		}
		if other.Position.Equal(nv.Position) {
			continue // 4.
		}

		key := meshgraph.MakePairKey(nv.Position, other.Position)
		if seen[key] {
			continue // 5.
		}
		seen[key] = true

		ne := g.AddEdge(meshgraph.NewEdge(nv, other)) // 6.
		nv.Edges = append(nv.Edges, ne)
		other.Edges = append(other.Edges, ne)
		q.Push(ne)
	}
}

// gatherFaces returns the deduplicated union of a's and b's still-live
// incident faces, in first-touched order (a's faces, then b's).
func gatherFaces(a, b *meshgraph.Vertex) []*meshgraph.Face {
	seen := make(map[*meshgraph.Face]bool)
	var out []*meshgraph.Face
	for _, list := range [][]*meshgraph.Face{a.Faces, b.Faces} {
		for _, f := range list {
			if f.Removed || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// gatherEdges returns the deduplicated union of a's and b's still-live
// incident edges, in first-touched order.
func gatherEdges(a, b *meshgraph.Vertex) []*meshgraph.Edge {
	seen := make(map[*meshgraph.Edge]bool)
	var out []*meshgraph.Edge
	for _, list := range [][]*meshgraph.Edge{a.Edges, b.Edges} {
		for _, e := range list {
			if e.Removed || seen[e] {
				continue
			}
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}
