package meshgraph

import "github.com/MicroKiss/Simplifier/geom"

// Vertex is a point in the mesh together with its accumulated quadric
// (the sum of the plane quadrics of every face that ever touched it,
// including faces that have since been removed — the quadric is never
// retroactively corrected). Faces and Edges are the vertex's incidence
// lists, in first-touched order.
//
// A Vertex is identified by its memory address, not by Position: two
// distinct *Vertex can sit at the same point (this happens routinely: a
// replacement vertex often lands exactly on the position of one of the
// two vertices it retires, and no pass ever merges such pairs).
type Vertex struct {
	Position geom.Vec3
	Quadric  geom.Matrix

	Faces []*Face
	Edges []*Edge

	// Removed marks a vertex retired by a collapse (folded into the
	// replacement vertex). Nothing looks a retired vertex up by Position:
	// it is reached only by following a Face/Edge pointer that itself
	// carries a Removed flag, or by a walk over the whole vertex arena
	// such as simplify.Extract.
	Removed bool
}

// Face is a triangle over three live vertices. Removed marks a face
// retired either because the triangle degenerated (two corners landed
// on the same position) or because a collapse it participated in chose
// to drop it instead of rewriting it.
type Face struct {
	V1, V2, V3 *Vertex
	Removed    bool
}

// Degenerate reports whether two of the face's corners occupy the same
// position (within EPSILON), making the triangle zero-area.
func (f *Face) Degenerate() bool {
	return f.V1.Position.Equal(f.V2.Position) ||
		f.V2.Position.Equal(f.V3.Position) ||
		f.V1.Position.Equal(f.V3.Position)
}

// Normal returns the face's outward unit normal.
func (f *Face) Normal() geom.Vec3 {
	return geom.Triangle{V1: f.V1.Position, V2: f.V2.Position, V3: f.V3.Position}.Normal()
}

// Replace swaps every corner of f currently pointing at from to point
// at to instead. It is the mechanism by which a collapse rewrites a
// face incident to one of the two collapsed vertices.
func (f *Face) Replace(from, to *Vertex) {
	if f.V1 == from {
		f.V1 = to
	}
	if f.V2 == from {
		f.V2 = to
	}
	if f.V3 == from {
		f.V3 = to
	}
}

// Edge is an undirected link between two vertices, canonicalized so
// that A is the lexicographically smaller endpoint by raw position
// (geom.Vec3.Less) — this keeps two *Edge built independently for the
// same vertex pair structurally comparable by (A, B) without needing
// pointer identity. Error is memoized on first read; the collapse loop
// invalidates a stale entry by discarding the *Edge outright (it is
// marked Removed) and pushing a fresh one, never by clearing the cache
// in place.
type Edge struct {
	A, B *Vertex

	Removed bool

	errorCached bool
	errorValue  float64
}

// NewEdge builds an Edge over a and b, canonicalizing endpoint order.
func NewEdge(a, b *Vertex) *Edge {
	if b.Position.Less(a.Position) {
		a, b = b, a
	}
	return &Edge{A: a, B: b}
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.A == v {
		return e.B
	}
	return e.A
}

// Quadric returns the combined quadric Q(A) + Q(B), the error metric
// that governs where the collapsed replacement vertex should sit.
func (e *Edge) Quadric() geom.Matrix {
	return e.A.Quadric.Add(e.B.Quadric)
}

// Error returns the cost of collapsing e: the quadric error of the
// optimal replacement vertex (or of the best of the sampled fallback
// candidates when the combined quadric is singular). The value is
// computed once and memoized; it is never recomputed in place because
// the endpoints' quadrics only change when one of them is retired, at
// which point the edge itself is retired too.
func (e *Edge) Error() float64 {
	if e.errorCached {
		return e.errorValue
	}
	q := e.Quadric()
	v := OptimalPosition(q, e.A.Position, e.B.Position)
	e.errorValue = q.QuadricError(v)
	e.errorCached = true
	return e.errorValue
}

// PairKey identifies an unordered vertex pair by position rather than
// by pointer identity, canonicalized the same way Edge is. It is used
// during graph construction to recognize that two faces sharing an
// edge contribute the same logical edge, and during a single collapse
// to recognize that two rewritten edges have come to share both
// endpoints' positions even though they were built from different
// *Vertex pointers.
type PairKey struct {
	Lo, Hi geom.Vec3
}

// MakePairKey builds the canonical PairKey for the pair (a, b).
func MakePairKey(a, b geom.Vec3) PairKey {
	if b.Less(a) {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}
