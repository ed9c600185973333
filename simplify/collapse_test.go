package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/meshgraph"
)

// TestAttemptCollapse_DedupesRewiredEdgesByFarEndpointPosition builds a
// case that cannot arise straight out of meshgraph.Build (which
// dedupes vertices by exact position at construction time): two
// distinct *meshgraph.Vertex, one reachable from each endpoint of the
// collapsing edge, that happen to sit at the same position. After the
// collapse, both would-be rewired edges point from the replacement
// vertex to that same position and must collapse into a single Edge.
func TestAttemptCollapse_DedupesRewiredEdgesByFarEndpointPosition(t *testing.T) {
	a := &meshgraph.Vertex{Position: geom.Vec3{X: 0, Y: 0, Z: 0}}
	b := &meshgraph.Vertex{Position: geom.Vec3{X: 1, Y: 0, Z: 0}}
	x1 := &meshgraph.Vertex{Position: geom.Vec3{X: 0, Y: 0, Z: 5}}
	x2 := &meshgraph.Vertex{Position: geom.Vec3{X: 0, Y: 0, Z: 5}}

	g := &meshgraph.Graph{}
	g.AddVertex(a)
	g.AddVertex(b)
	g.AddVertex(x1)
	g.AddVertex(x2)

	p := meshgraph.NewEdge(a, b)
	eA := meshgraph.NewEdge(a, x1)
	eB := meshgraph.NewEdge(b, x2)
	g.AddEdge(p)
	g.AddEdge(eA)
	g.AddEdge(eB)

	a.Edges = []*meshgraph.Edge{p, eA}
	b.Edges = []*meshgraph.Edge{p, eB}
	x1.Edges = []*meshgraph.Edge{eA}
	x2.Edges = []*meshgraph.Edge{eB}

	q := newEdgeQueue(g.Edges)
	committed, removed := attemptCollapse(g, q, p)
	require.True(t, committed)
	assert.Equal(t, 0, removed, "no incident faces in this fixture, so no face should be retired")

	nv := g.Vertices[len(g.Vertices)-1]
	require.Len(t, nv.Edges, 1, "two far edges landing on the same position must dedupe to one")
	assert.True(t, nv.Edges[0].Other(nv).Position.Equal(geom.Vec3{X: 0, Y: 0, Z: 5}))
}

// TestAttemptCollapse_NormalFlipAbortsWithoutMutatingGraph builds a
// fixture whose only face (b, c, d) touches the collapsing edge (a, b)
// at b alone. All quadrics are zero, so every scan sample ties and the
// replacement lands on a's position (0,0,0). Moving b from x=1 to x=0
// carries it across the face's opposite side c-d (x=0.5), which turns
// the face's normal from -z to +z: the attempt must be rejected and
// the graph left exactly as it was.
func TestAttemptCollapse_NormalFlipAbortsWithoutMutatingGraph(t *testing.T) {
	a := &meshgraph.Vertex{Position: geom.Vec3{X: 0, Y: 0, Z: 0}}
	b := &meshgraph.Vertex{Position: geom.Vec3{X: 1, Y: 0, Z: 0}}
	c := &meshgraph.Vertex{Position: geom.Vec3{X: 0.5, Y: -1, Z: 0}}
	d := &meshgraph.Vertex{Position: geom.Vec3{X: 0.5, Y: 1, Z: 0}}

	g := &meshgraph.Graph{}
	for _, v := range []*meshgraph.Vertex{a, b, c, d} {
		g.AddVertex(v)
	}
	f := g.AddFace(&meshgraph.Face{V1: b, V2: c, V3: d})
	b.Faces = []*meshgraph.Face{f}
	c.Faces = []*meshgraph.Face{f}
	d.Faces = []*meshgraph.Face{f}

	p := g.AddEdge(meshgraph.NewEdge(a, b))
	a.Edges = []*meshgraph.Edge{p}
	b.Edges = []*meshgraph.Edge{p}

	q := newEdgeQueue(nil)
	committed, removed := attemptCollapse(g, q, p)
	require.False(t, committed)
	assert.Equal(t, 0, removed)

	assert.Len(t, g.Vertices, 4, "no replacement vertex is allocated")
	assert.False(t, a.Removed)
	assert.False(t, b.Removed)
	assert.False(t, p.Removed)
	assert.False(t, f.Removed)
	assert.Same(t, b, f.V1)
	assert.Equal(t, []*meshgraph.Edge{p}, b.Edges)
}

func TestGatherFaces_DedupesSharedFaceAndSkipsRemoved(t *testing.T) {
	a := &meshgraph.Vertex{}
	b := &meshgraph.Vertex{}
	shared := &meshgraph.Face{V1: a, V2: b}
	removed := &meshgraph.Face{V1: a, Removed: true}
	a.Faces = []*meshgraph.Face{shared, removed}
	b.Faces = []*meshgraph.Face{shared}

	out := gatherFaces(a, b)
	require.Len(t, out, 1)
	assert.Same(t, shared, out[0])
}
