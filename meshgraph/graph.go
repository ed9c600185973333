// File: graph.go
// Role: Graph arenas (AddVertex/AddFace/AddEdge) and the Build
//       constructor that turns a flat triangle soup into an incidence
//       graph.
// Determinism:
//   - Vertex identity is assigned by first occurrence in the input
//     slice, never by map iteration, so two Build calls on the same
//     input produce arenas with identical element order.
package meshgraph

import "github.com/MicroKiss/Simplifier/geom"

// Graph is a triangle mesh in incidence-graph form, owning three
// append-only arenas. Vertices grows both at construction (Build) and
// during simplification, as a collapse retires two vertices and
// introduces one replacement; Edges grows the same way as a collapse
// rewires the edges that used to touch either endpoint. Faces is filled
// by Build only: a collapse rewrites faces in place.
//
// Nothing in Graph is ever removed from these arenas — retirement is
// always expressed by setting a Removed flag on the Vertex, Face, or
// Edge itself, so that any pointer held elsewhere (an incidence list
// entry, a priority-queue entry) stays valid for the lifetime of the
// Graph and simply gets skipped once stale.
type Graph struct {
	Vertices []*Vertex
	Faces    []*Face
	Edges    []*Edge
}

// AddVertex appends v to the vertex arena and returns it, for
// convenience when the caller already constructed the Vertex.
func (g *Graph) AddVertex(v *Vertex) *Vertex {
	g.Vertices = append(g.Vertices, v)
	return v
}

// AddFace appends f to the face arena and returns it.
func (g *Graph) AddFace(f *Face) *Face {
	g.Faces = append(g.Faces, f)
	return f
}

// AddEdge appends e to the edge arena and returns it.
func (g *Graph) AddEdge(e *Edge) *Edge {
	g.Edges = append(g.Edges, e)
	return e
}

// Build converts a flat triangle soup into an incidence graph: one
// Vertex per distinct position, one Face per input triangle, and one
// Edge per distinct vertex pair that appears as a triangle side.
// Degenerate input triangles (two corners at the same position) are
// skipped outright — they would never survive a Face.Degenerate()
// check later and contribute nothing but a zero-area plane to the
// quadric sum.
//
// Vertex identity is assigned by first occurrence in tris, not by any
// sort order, so that two calls to Build on the same input produce
// arenas in the same order — this is load-bearing for the determinism
// of everything built on top of Graph.
//
// Steps:
//  1. For each input triangle, resolve its three corners to Vertex
//     pointers via vertexFor, creating a new arena Vertex on first
//     occurrence of a position (byPosition is a lookup map only, never
//     ranged).
//  2. Skip the triangle outright if two corners resolved to the same
//     Vertex (degenerate input) — no Face, no quadric contribution.
//  3. Accumulate the triangle's quadric onto all three corner
//     vertices and remember the triangle for pass 2.
//  4. Second pass: create one Face per surviving triangle and append
//     it to each corner's Faces incidence list.
//  5. Third pass: create one Edge per distinct vertex-position pair
//     that appears as a triangle side (seen is existence-only, keyed
//     by PairKey, never ranged) and append it to both endpoints'
//     Edges incidence lists.
//
// Complexity: O(T) time and memory for T input triangles (each step is
// a single pass over tris or the surviving subset of it).
func Build(tris []geom.Triangle) *Graph {
	g := &Graph{}

	byPosition := make(map[geom.Vec3]*Vertex)
	vertexFor := func(p geom.Vec3) *Vertex {
		if v, ok := byPosition[p]; ok {
			return v
		}
		v := g.AddVertex(&Vertex{Position: p})
		byPosition[p] = v
		return v
	}

	// 1-3. resolve corners, drop degenerate triangles, accumulate quadrics
	type faceVerts struct{ v1, v2, v3 *Vertex }
	var live []faceVerts
	for _, t := range tris {
		v1, v2, v3 := vertexFor(t.V1), vertexFor(t.V2), vertexFor(t.V3)
		if v1 == v2 || v2 == v3 || v1 == v3 {
			continue
		}
		q := t.Quadric()
		v1.Quadric = v1.Quadric.Add(q)
		v2.Quadric = v2.Quadric.Add(q)
		v3.Quadric = v3.Quadric.Add(q)
		live = append(live, faceVerts{v1, v2, v3})
	}

	// 4. one Face per surviving triangle
	for _, fv := range live {
		f := g.AddFace(&Face{V1: fv.v1, V2: fv.v2, V3: fv.v3})
		fv.v1.Faces = append(fv.v1.Faces, f)
		fv.v2.Faces = append(fv.v2.Faces, f)
		fv.v3.Faces = append(fv.v3.Faces, f)
	}

	// 5. one Edge per distinct side, deduped by endpoint-position pair
	seen := make(map[PairKey]bool)
	addEdge := func(a, b *Vertex) {
		key := MakePairKey(a.Position, b.Position)
		if seen[key] {
			return
		}
		seen[key] = true
		e := g.AddEdge(NewEdge(a, b))
		e.A.Edges = append(e.A.Edges, e)
		e.B.Edges = append(e.B.Edges, e)
	}
	for _, fv := range live {
		addEdge(fv.v1, fv.v2)
		addEdge(fv.v2, fv.v3)
		addEdge(fv.v3, fv.v1)
	}

	return g
}
