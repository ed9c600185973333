package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/simplify"
)

func quad() []geom.Triangle {
	return []geom.Triangle{
		{V1: geom.Vec3{X: 0, Y: 0, Z: 0}, V2: geom.Vec3{X: 1, Y: 0, Z: 0}, V3: geom.Vec3{X: 1, Y: 1, Z: 0}},
		{V1: geom.Vec3{X: 0, Y: 0, Z: 0}, V2: geom.Vec3{X: 1, Y: 1, Z: 0}, V3: geom.Vec3{X: 0, Y: 1, Z: 0}},
	}
}

func tetrahedron() []geom.Triangle {
	a := geom.Vec3{X: 0, Y: 0, Z: 0}
	b := geom.Vec3{X: 1, Y: 0, Z: 0}
	c := geom.Vec3{X: 0, Y: 1, Z: 0}
	d := geom.Vec3{X: 0, Y: 0, Z: 1}
	return []geom.Triangle{
		{V1: a, V2: c, V3: b},
		{V1: a, V2: b, V3: d},
		{V1: b, V2: c, V3: d},
		{V1: c, V2: a, V3: d},
	}
}

// unitCube returns a closed 12-triangle cube, consistently wound so
// that every face normal points into the cube.
func unitCube() []geom.Triangle {
	v := func(x, y, z float64) geom.Vec3 { return geom.Vec3{X: x, Y: y, Z: z} }
	p := [8]geom.Vec3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0),
		v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1),
	}
	quad := func(a, b, c, d int) []geom.Triangle {
		return []geom.Triangle{
			{V1: p[a], V2: p[b], V3: p[c]},
			{V1: p[a], V2: p[c], V3: p[d]},
		}
	}
	var tris []geom.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...) // bottom (z=0), CW from outside looking down -z... orientation not load-bearing here
	tris = append(tris, quad(4, 7, 6, 5)...) // top
	tris = append(tris, quad(0, 4, 5, 1)...) // front
	tris = append(tris, quad(1, 5, 6, 2)...) // right
	tris = append(tris, quad(2, 6, 7, 3)...) // back
	tris = append(tris, quad(3, 7, 4, 0)...) // left
	return tris
}

func countFaces(tris []geom.Triangle) int { return len(tris) }

func TestSimplify_SingleTriangleFactorOneIsNoOp(t *testing.T) {
	tri := []geom.Triangle{{
		V1: geom.Vec3{X: 0, Y: 0, Z: 0},
		V2: geom.Vec3{X: 1, Y: 0, Z: 0},
		V3: geom.Vec3{X: 0, Y: 1, Z: 0},
	}}
	out := simplify.Simplify(tri, 1.0)
	assert.Len(t, out, 1)
}

func TestSimplify_QuadCollapsesToNothingUnderAggressiveFactor(t *testing.T) {
	// Target is floor(2*0.1) = 0. Every edge of the quad lies on the
	// same plane (zero error); any collapse drops the faces spanning it,
	// and if one face is left, the next collapse drops that one too.
	out := simplify.Simplify(quad(), 0.1)
	assert.LessOrEqual(t, countFaces(out), 2)
	assert.Equal(t, 0, countFaces(out))
}

func TestSimplify_TetrahedronCollapsesAwayAtZeroFactor(t *testing.T) {
	out := simplify.Simplify(tetrahedron(), 0.0)
	// The cheapest edge touches the origin corner. Collapsing it drops
	// the two faces that share it and moves the other two onto the same
	// three vertices with opposite winding; neither of those turns
	// against its own old normal, so the guard accepts the collapse. Any
	// further collapse then drops both remaining faces as spanning its
	// endpoints, and with target 0 nothing stops it.
	assert.Empty(t, out)
}

func TestSimplify_UnitCubeReducesFaceCount(t *testing.T) {
	in := unitCube()
	require.Len(t, in, 12)

	out := simplify.Simplify(in, 0.5)
	assert.LessOrEqual(t, countFaces(out), 12)
	assert.Greater(t, countFaces(out), 0)
}

func TestSimplify_LongThinStripCollapsesAggressively(t *testing.T) {
	// A strip of N unit triangles along the x axis, all coplanar: every
	// interior edge should be cheap to collapse since the plane quadric
	// never penalizes staying on the shared plane.
	var tris []geom.Triangle
	n := 20
	for i := 0; i < n; i++ {
		x := float64(i)
		tris = append(tris,
			geom.Triangle{
				V1: geom.Vec3{X: x, Y: 0, Z: 0},
				V2: geom.Vec3{X: x + 1, Y: 0, Z: 0},
				V3: geom.Vec3{X: x, Y: 1, Z: 0},
			},
			geom.Triangle{
				V1: geom.Vec3{X: x + 1, Y: 0, Z: 0},
				V2: geom.Vec3{X: x + 1, Y: 1, Z: 0},
				V3: geom.Vec3{X: x, Y: 1, Z: 0},
			},
		)
	}
	out := simplify.Simplify(tris, 0.1)
	assert.Less(t, countFaces(out), len(tris))
}

func TestSimplify_DeterministicAcrossRuns(t *testing.T) {
	in := unitCube()
	a := simplify.Simplify(in, 0.5)
	b := simplify.Simplify(in, 0.5)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestSimplify_EmptyInputIsEmptyOutput(t *testing.T) {
	out := simplify.Simplify(nil, 0.5)
	assert.Empty(t, out)
}

func TestSimplify_FactorAboveOneIsNoOp(t *testing.T) {
	in := quad()
	out := simplify.Simplify(in, 2.0)
	assert.Len(t, out, len(in))
}
