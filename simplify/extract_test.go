package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/meshgraph"
	"github.com/MicroKiss/Simplifier/simplify"
)

func TestExtract_RoundTripsUnmodifiedGraph(t *testing.T) {
	tris := []geom.Triangle{
		{V1: geom.Vec3{X: 0, Y: 0, Z: 0}, V2: geom.Vec3{X: 1, Y: 0, Z: 0}, V3: geom.Vec3{X: 0, Y: 1, Z: 0}},
	}
	g := meshgraph.Build(tris)
	out := simplify.Extract(g)
	assert.Len(t, out, 1)
	assert.Equal(t, tris[0], out[0])
}

func TestExtract_OmitsRemovedFaces(t *testing.T) {
	tris := []geom.Triangle{
		{V1: geom.Vec3{X: 0, Y: 0, Z: 0}, V2: geom.Vec3{X: 1, Y: 0, Z: 0}, V3: geom.Vec3{X: 0, Y: 1, Z: 0}},
		{V1: geom.Vec3{X: 5, Y: 5, Z: 5}, V2: geom.Vec3{X: 6, Y: 5, Z: 5}, V3: geom.Vec3{X: 5, Y: 6, Z: 5}},
	}
	g := meshgraph.Build(tris)
	g.Faces[1].Removed = true

	out := simplify.Extract(g)
	assert.Len(t, out, 1)
	assert.Equal(t, tris[0], out[0])
}
