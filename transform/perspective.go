package transform

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CollinearTolerance bounds the sine of the angle at which three points of a
// correspondence are considered collinear.
const CollinearTolerance = 1e-9

// Correspondence pairs four source points with four destination points.
type Correspondence struct {
	Src [4]Point
	Dst [4]Point
}

// FitPerspective computes the perspective transform mapping each source point
// onto its destination point. The result is normalized so that its bottom
// right element is 1.
//
// Each pair contributes two rows of an 8x8 system in h00..h21:
//
//	x' = (h00 x + h01 y + h02) / (h20 x + h21 y + 1)
//	y' = (h10 x + h11 y + h12) / (h20 x + h21 y + 1)
func FitPerspective(c Correspondence) (Matrix, error) {
	if collinearTriple(c.Src) || collinearTriple(c.Dst) {
		return Matrix{}, ErrDegenerateConfiguration
	}

	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := 0; i < 4; i++ {
		x, y := c.Src[i].X, c.Src[i].Y
		u, v := c.Dst[i].X, c.Dst[i].Y
		r := 2 * i
		a.SetRow(r, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		a.SetRow(r+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(r, u)
		b.SetVec(r+1, v)
	}

	var lu mat.LU
	lu.Factorize(a)
	if lu.Det() == 0 {
		return Matrix{}, ErrDegenerateConfiguration
	}
	var h mat.VecDense
	if err := lu.SolveVecTo(&h, false, b); err != nil {
		return Matrix{}, errors.Wrapf(ErrDegenerateConfiguration, "solve: %v", err)
	}

	return Matrix{
		h.AtVec(0), h.AtVec(1), h.AtVec(2),
		h.AtVec(3), h.AtVec(4), h.AtVec(5),
		h.AtVec(6), h.AtVec(7), 1,
	}, nil
}

// collinearTriple reports whether any three of pts are collinear or coincide.
func collinearTriple(pts [4]Point) bool {
	triples := [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for _, t := range triples {
		ab := pts[t[1]].Sub(pts[t[0]])
		ac := pts[t[2]].Sub(pts[t[0]])
		cross := ab.X*ac.Y - ab.Y*ac.X
		if math.Abs(cross) <= CollinearTolerance*ab.Norm()*ac.Norm() {
			return true
		}
	}
	return false
}
