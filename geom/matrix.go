package geom

// Matrix is a row-major 4x4 matrix of doubles. It is used exclusively to
// carry a quadric error metric: the accumulated sum of per-plane
// quadrics Q = sum(p*pT) for the planes p=(a,b,c,d) a vertex touches.
//
// Determinant and Inverse use the direct cofactor/determinant formula
// (not a general decomposition) because callers must be able to detect
// a singular matrix by inspecting |Determinant()| before calling
// Inverse — Inverse itself never errors, it just produces NaN/Inf when
// the matrix is not invertible.
type Matrix struct {
	M [4][4]float64
}

// NewMatrix builds a Matrix from its sixteen entries in row-major order.
func NewMatrix(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Matrix {
	return Matrix{M: [4][4]float64{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}}
}

// Add returns the component-wise sum of m and n.
func (m Matrix) Add(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.M[i][j] = m.M[i][j] + n.M[i][j]
		}
	}
	return out
}

// MulPosition returns M * (v, 1), the xyz of the homogeneous transform
// of the position v (the last row of M is not evaluated, matching the
// original's affine-position convention).
func (m Matrix) MulPosition(v Vec3) Vec3 {
	r := m.M
	return Vec3{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z + r[0][3],
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z + r[1][3],
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z + r[2][3],
	}
}

// Determinant computes the 4x4 determinant by direct cofactor expansion.
func (m Matrix) Determinant() float64 {
	r := m.M
	return r[0][0]*r[1][1]*r[2][2]*r[3][3] - r[0][0]*r[1][1]*r[2][3]*r[3][2] +
		r[0][0]*r[1][2]*r[2][3]*r[3][1] - r[0][0]*r[1][2]*r[2][1]*r[3][3] +
		r[0][0]*r[1][3]*r[2][1]*r[3][2] - r[0][0]*r[1][3]*r[2][2]*r[3][1] -
		r[0][1]*r[1][2]*r[2][3]*r[3][0] + r[0][1]*r[1][2]*r[2][0]*r[3][3] -
		r[0][1]*r[1][3]*r[2][0]*r[3][2] + r[0][1]*r[1][3]*r[2][2]*r[3][0] -
		r[0][1]*r[1][0]*r[2][2]*r[3][3] + r[0][1]*r[1][0]*r[2][3]*r[3][2] +
		r[0][2]*r[1][3]*r[2][0]*r[3][1] - r[0][2]*r[1][3]*r[2][1]*r[3][0] +
		r[0][2]*r[1][0]*r[2][1]*r[3][3] - r[0][2]*r[1][0]*r[2][3]*r[3][1] +
		r[0][2]*r[1][1]*r[2][3]*r[3][0] - r[0][2]*r[1][1]*r[2][0]*r[3][3] -
		r[0][3]*r[1][0]*r[2][1]*r[3][2] + r[0][3]*r[1][0]*r[2][2]*r[3][1] -
		r[0][3]*r[1][1]*r[2][2]*r[3][0] + r[0][3]*r[1][1]*r[2][0]*r[3][2] -
		r[0][3]*r[1][2]*r[2][0]*r[3][1] + r[0][3]*r[1][2]*r[2][1]*r[3][0]
}

// Inverse returns the cofactor-matrix/determinant inverse of m. The
// caller is responsible for checking |m.Determinant()| > EPSILON first:
// when m is (near-)singular the division by the determinant produces
// NaN or Inf entries rather than an error.
//
// Steps:
//  1. Take d = 1 / Determinant() once, up front — every cofactor below
//     is scaled by the same d rather than repeating the division.
//  2. Compute all sixteen 3x3 cofactors directly (no recursion, no
//     pivoting, no row/column bookkeeping) and scale each by d.
//  3. Pack the sixteen cofactors into the adjugate-transpose layout.
//
// Complexity: O(1) — fixed 4x4 cofactor expansion, no loops.
func (m Matrix) Inverse() Matrix {
	r := m.M
	d := 1.0 / m.Determinant() // 1. single division, reused below

	// 2-3. cofactor expansion, one assignment per output entry
	var o [4][4]float64
	o[0][0] = (r[1][2]*r[2][3]*r[3][1] - r[1][3]*r[2][2]*r[3][1] + r[1][3]*r[2][1]*r[3][2] - r[1][1]*r[2][3]*r[3][2] - r[1][2]*r[2][1]*r[3][3] + r[1][1]*r[2][2]*r[3][3]) * d
	o[0][1] = (r[0][3]*r[2][2]*r[3][1] - r[0][2]*r[2][3]*r[3][1] - r[0][3]*r[2][1]*r[3][2] + r[0][1]*r[2][3]*r[3][2] + r[0][2]*r[2][1]*r[3][3] - r[0][1]*r[2][2]*r[3][3]) * d
	o[0][2] = (r[0][2]*r[1][3]*r[3][1] - r[0][3]*r[1][2]*r[3][1] + r[0][3]*r[1][1]*r[3][2] - r[0][1]*r[1][3]*r[3][2] - r[0][2]*r[1][1]*r[3][3] + r[0][1]*r[1][2]*r[3][3]) * d
	o[0][3] = (r[0][3]*r[1][2]*r[2][1] - r[0][2]*r[1][3]*r[2][1] - r[0][3]*r[1][1]*r[2][2] + r[0][1]*r[1][3]*r[2][2] + r[0][2]*r[1][1]*r[2][3] - r[0][1]*r[1][2]*r[2][3]) * d
	o[1][0] = (r[1][3]*r[2][2]*r[3][0] - r[1][2]*r[2][3]*r[3][0] - r[1][3]*r[2][0]*r[3][2] + r[1][0]*r[2][3]*r[3][2] + r[1][2]*r[2][0]*r[3][3] - r[1][0]*r[2][2]*r[3][3]) * d
	o[1][1] = (r[0][2]*r[2][3]*r[3][0] - r[0][3]*r[2][2]*r[3][0] + r[0][3]*r[2][0]*r[3][2] - r[0][0]*r[2][3]*r[3][2] - r[0][2]*r[2][0]*r[3][3] + r[0][0]*r[2][2]*r[3][3]) * d
	o[1][2] = (r[0][3]*r[1][2]*r[3][0] - r[0][2]*r[1][3]*r[3][0] - r[0][3]*r[1][0]*r[3][2] + r[0][0]*r[1][3]*r[3][2] + r[0][2]*r[1][0]*r[3][3] - r[0][0]*r[1][2]*r[3][3]) * d
	o[1][3] = (r[0][2]*r[1][3]*r[2][0] - r[0][3]*r[1][2]*r[2][0] + r[0][3]*r[1][0]*r[2][2] - r[0][0]*r[1][3]*r[2][2] - r[0][2]*r[1][0]*r[2][3] + r[0][0]*r[1][2]*r[2][3]) * d
	o[2][0] = (r[1][1]*r[2][3]*r[3][0] - r[1][3]*r[2][1]*r[3][0] + r[1][3]*r[2][0]*r[3][1] - r[1][0]*r[2][3]*r[3][1] - r[1][1]*r[2][0]*r[3][3] + r[1][0]*r[2][1]*r[3][3]) * d
	o[2][1] = (r[0][3]*r[2][1]*r[3][0] - r[0][1]*r[2][3]*r[3][0] - r[0][3]*r[2][0]*r[3][1] + r[0][0]*r[2][3]*r[3][1] + r[0][1]*r[2][0]*r[3][3] - r[0][0]*r[2][1]*r[3][3]) * d
	o[2][2] = (r[0][1]*r[1][3]*r[3][0] - r[0][3]*r[1][1]*r[3][0] + r[0][3]*r[1][0]*r[3][1] - r[0][0]*r[1][3]*r[3][1] - r[0][1]*r[1][0]*r[3][3] + r[0][0]*r[1][1]*r[3][3]) * d
	o[2][3] = (r[0][3]*r[1][1]*r[2][0] - r[0][1]*r[1][3]*r[2][0] - r[0][3]*r[1][0]*r[2][1] + r[0][0]*r[1][3]*r[2][1] + r[0][1]*r[1][0]*r[2][3] - r[0][0]*r[1][1]*r[2][3]) * d
	o[3][0] = (r[1][2]*r[2][1]*r[3][0] - r[1][1]*r[2][2]*r[3][0] - r[1][2]*r[2][0]*r[3][1] + r[1][0]*r[2][2]*r[3][1] + r[1][1]*r[2][0]*r[3][2] - r[1][0]*r[2][1]*r[3][2]) * d
	o[3][1] = (r[0][1]*r[2][2]*r[3][0] - r[0][2]*r[2][1]*r[3][0] + r[0][2]*r[2][0]*r[3][1] - r[0][0]*r[2][2]*r[3][1] - r[0][1]*r[2][0]*r[3][2] + r[0][0]*r[2][1]*r[3][2]) * d
	o[3][2] = (r[0][2]*r[1][1]*r[3][0] - r[0][1]*r[1][2]*r[3][0] - r[0][2]*r[1][0]*r[3][1] + r[0][0]*r[1][2]*r[3][1] + r[0][1]*r[1][0]*r[3][2] - r[0][0]*r[1][1]*r[3][2]) * d
	o[3][3] = (r[0][1]*r[1][2]*r[2][0] - r[0][2]*r[1][1]*r[2][0] + r[0][2]*r[1][0]*r[2][1] - r[0][0]*r[1][2]*r[2][1] - r[0][1]*r[1][0]*r[2][2] + r[0][0]*r[1][1]*r[2][2]) * d

	return Matrix{M: o}
}

// QuadricError evaluates v_hat^T * M * v_hat where v_hat = (v.x, v.y, v.z, 1).
// For a valid quadric (a positive semi-definite sum of plane quadrics)
// this is >= 0 up to floating-point noise.
func (m Matrix) QuadricError(v Vec3) float64 {
	r := m.M
	return v.X*r[0][0]*v.X + v.Y*r[1][0]*v.X + v.Z*r[2][0]*v.X + r[3][0]*v.X +
		v.X*r[0][1]*v.Y + v.Y*r[1][1]*v.Y + v.Z*r[2][1]*v.Y + r[3][1]*v.Y +
		v.X*r[0][2]*v.Z + v.Y*r[1][2]*v.Z + v.Z*r[2][2]*v.Z + r[3][2]*v.Z +
		v.X*r[0][3] + v.Y*r[1][3] + v.Z*r[2][3] + r[3][3]
}

// QuadricVector solves for the vertex v minimizing v_hat^T * M * v_hat by
// replacing M's bottom row with (0, 0, 0, 1) and applying the inverse of
// that matrix to the origin. It returns a vector with NaN/Inf components
// when M is rank-deficient along its first three rows — callers must
// check finiteness and fall back to a segment scan over the collapsing
// edge.
func (m Matrix) QuadricVector() Vec3 {
	b := m
	b.M[3] = [4]float64{0, 0, 0, 1}
	return b.Inverse().MulPosition(Vec3{})
}
