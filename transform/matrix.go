// Package transform builds and manipulates 3x3 homogeneous transforms for
// warping images: perspective fits, rotations, composition and inversion.
package transform

import (
	"math"

	"golang.org/x/image/math/f64"
)

// SingularTolerance is the smallest absolute determinant Invert accepts.
const SingularTolerance = 1e-9

// Matrix is a row-major 3x3 homogeneous transform. A point (x, y) maps to
// (x'/w', y'/w') where [x' y' w'] = M * [x y 1].
type Matrix f64.Mat3

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m[3*r+c]
}

// Mul returns m * other. Applied to a point, other acts first.
func (m Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[3*r+0]*other[3*0+c] +
				m[3*r+1]*other[3*1+c] +
				m[3*r+2]*other[3*2+c]
		}
	}
	return out
}

// Compose returns a * b: the combined transform applies b first, then a.
func Compose(a, b Matrix) Matrix {
	return a.Mul(b)
}

// Det returns the determinant.
func (m Matrix) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Adjugate returns the transpose of the cofactor matrix. For a projective
// transform it is the inverse up to scale.
func (m Matrix) Adjugate() Matrix {
	return Matrix{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
}

// Invert returns the inverse of m, or ErrSingularMatrix when |det(m)| is
// below SingularTolerance.
func Invert(m Matrix) (Matrix, error) {
	det := m.Det()
	if math.Abs(det) < SingularTolerance || math.IsNaN(det) {
		return Matrix{}, ErrSingularMatrix
	}
	adj := m.Adjugate()
	for i := range adj {
		adj[i] /= det
	}
	return adj, nil
}

// Apply maps p through m. It reports false when the point maps to infinity.
func (m Matrix) Apply(p Point) (Point, bool) {
	w := m[6]*p.X + m[7]*p.Y + m[8]
	if w == 0 {
		return Point{}, false
	}
	return Point{
		X: (m[0]*p.X + m[1]*p.Y + m[2]) / w,
		Y: (m[3]*p.X + m[4]*p.Y + m[5]) / w,
	}, true
}

// TransformPoints maps pts in place. Points sent to infinity become NaN.
func (m Matrix) TransformPoints(pts []Point) {
	for i, p := range pts {
		q, ok := m.Apply(p)
		if !ok {
			q = Point{X: math.NaN(), Y: math.NaN()}
		}
		pts[i] = q
	}
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Matrix) ApproxEqual(o Matrix, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}
