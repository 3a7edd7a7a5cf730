//go:build gocv

// Package cvwarp performs the perspective fit and warp with OpenCV, as a
// reference for the pure Go implementation in transform and warp.
package cvwarp

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/transform"
)

// FitPerspective computes the transform mapping c.Src onto c.Dst with
// cv::getPerspectiveTransform.
func FitPerspective(c transform.Correspondence) (transform.Matrix, error) {
	src := gocv.NewPoint2fVectorFromPoints(toPoint2f(c.Src))
	defer src.Close()
	dst := gocv.NewPoint2fVectorFromPoints(toPoint2f(c.Dst))
	defer dst.Close()

	m := gocv.GetPerspectiveTransform2f(src, dst)
	defer m.Close()
	if m.Empty() {
		return transform.Matrix{}, transform.ErrDegenerateConfiguration
	}
	return fromMat(m), nil
}

// Warp resamples src through m with cv::warpPerspective using nearest
// neighbour sampling and a black border.
func Warp(src *raster.Raster, m transform.Matrix, size transform.Size) (*raster.Raster, error) {
	in, err := gocv.ImageToMatRGB(src.ToImage())
	if err != nil {
		return nil, errors.Wrap(err, "cvwarp: convert source")
	}
	defer in.Close()

	mm := toMat(m)
	defer mm.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.WarpPerspectiveWithParams(in, &out, mm, image.Pt(size.W, size.H),
		gocv.InterpolationNearestNeighbor, gocv.BorderConstant, color.RGBA{})

	img, err := out.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "cvwarp: convert result")
	}
	return raster.FromImage(img), nil
}

func toPoint2f(pts [4]transform.Point) []gocv.Point2f {
	out := make([]gocv.Point2f, len(pts))
	for i, p := range pts {
		out[i] = gocv.Point2f{X: float32(p.X), Y: float32(p.Y)}
	}
	return out
}

func toMat(m transform.Matrix) gocv.Mat {
	mat := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV64F)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mat.SetDoubleAt(r, c, m.At(r, c))
		}
	}
	return mat
}

func fromMat(mat gocv.Mat) transform.Matrix {
	var m transform.Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[3*r+c] = mat.GetDoubleAt(r, c)
		}
	}
	return m
}
