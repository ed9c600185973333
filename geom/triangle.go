package geom

// Triangle is a plain position triple: three vertex positions with no
// attached topology. It is the unit the core consumes on input and
// produces on output; STL I/O (package stl) and the mesh graph
// (package meshgraph) both convert to and from it.
type Triangle struct {
	V1, V2, V3 Vec3
}

// Normal returns the outward unit normal of the triangle, computed as
// normalize((v2-v1) x (v3-v1)). It is undefined (NaN components) for a
// degenerate (zero-area) triangle.
func (t Triangle) Normal() Vec3 {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	return e1.Cross(e2).Normalize()
}

// Quadric returns the fundamental plane quadric K = p*p^T for the plane
// the triangle lies on, where p = (n.x, n.y, n.z, d) and
// d = -n . v1.
func (t Triangle) Quadric() Matrix {
	n := t.Normal()
	a, b, c := n.X, n.Y, n.Z
	d := -a*t.V1.X - b*t.V1.Y - c*t.V1.Z

	return NewMatrix(
		a*a, a*b, a*c, a*d,
		a*b, b*b, b*c, b*d,
		a*c, b*c, c*c, c*d,
		a*d, b*d, c*d, d*d,
	)
}
