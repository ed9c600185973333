package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicroKiss/Simplifier/geom"
)

func TestVec3_ArithmeticDelegatesToMgl64(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 2, Z: 3}
	b := geom.Vec3{X: 4, Y: -1, Z: 0.5}

	require.Equal(t, geom.Vec3{X: 5, Y: 1, Z: 3.5}, a.Add(b))
	require.Equal(t, geom.Vec3{X: -3, Y: 3, Z: 2.5}, a.Sub(b))
	require.Equal(t, geom.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	require.InDelta(t, 1*4+2*-1+3*0.5, a.Dot(b), 1e-12)
}

func TestVec3_CrossOrthogonalToOperands(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 0, Z: 0}
	b := geom.Vec3{X: 0, Y: 1, Z: 0}

	c := a.Cross(b)
	assert.InDelta(t, 0, c.X, 1e-12)
	assert.InDelta(t, 0, c.Y, 1e-12)
	assert.InDelta(t, 1, c.Z, 1e-12)
}

func TestVec3_NormalizeProducesUnitLength(t *testing.T) {
	v := geom.Vec3{X: 3, Y: 4, Z: 0}.Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-12)
}

func TestVec3_EqualIsEpsilonTolerant(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 1, Z: 1}
	b := geom.Vec3{X: 1 + geom.EPSILON/10, Y: 1, Z: 1}
	c := geom.Vec3{X: 1 + geom.EPSILON*10, Y: 1, Z: 1}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestVec3_LessIsStrictTotalOrder checks irreflexivity, antisymmetry and
// transitivity on raw doubles, including the case where two positions
// are EPSILON-close (so Equal would say they're the same point) but
// not bit-identical: Less must still distinguish them.
func TestVec3_LessIsStrictTotalOrder(t *testing.T) {
	a := geom.Vec3{X: 0, Y: 0, Z: 0}
	b := geom.Vec3{X: 0, Y: 0, Z: geom.EPSILON / 10}
	c := geom.Vec3{X: 0, Y: 1, Z: 0}

	assert.False(t, a.Less(a), "irreflexive")
	assert.True(t, a.Equal(b), "EPSILON-close points are Equal")
	assert.NotEqual(t, a, b)
	assert.True(t, a.Less(b) != b.Less(a), "antisymmetric, and Less still orders EPSILON-close points distinctly")

	if a.Less(b) && b.Less(c) {
		assert.True(t, a.Less(c), "transitive")
	}
}

func TestVec3_NaNOnZeroVectorNormalize(t *testing.T) {
	v := geom.Vec3{}.Normalize()
	assert.True(t, math.IsNaN(v.X))
}
