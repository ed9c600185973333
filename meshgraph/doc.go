// Package meshgraph represents a triangle mesh as an incidence graph:
// identity-addressed vertices, faces, and edges, linked by vertex->face
// and vertex->edge incidence lists kept directly on each Vertex.
//
// Vertices, faces, and edges are owned by three append-only arenas
// (Graph.Vertices, Graph.Faces, Graph.Edges) with lifetime equal to one
// Simplify call; every reference the incidence lists or the collapse
// loop's priority queue hold is a non-owning pointer into those arenas.
// Retirement is expressed by the Removed flag, never by deleting from a
// slice or map — stale entries are filtered on read, not purged on
// write.
//
// No incidence structure in this package is ever iterated as a Go map:
// vertex->face and vertex->edge incidence are ordinary slices on
// Vertex, appended to in a fixed order, so that two runs of the same
// input produce byte-identical collapse sequences. Maps are only ever
// used for O(1) set-membership checks, never ranged.
package meshgraph
