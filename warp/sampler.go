package warp

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/transform"
)

// Interpolation selects how a source pixel is read at a fractional position.
type Interpolation int

const (
	// Nearest reads the pixel whose top-left corner is at (floor x, floor y).
	Nearest Interpolation = iota
	// Bilinear blends the four surrounding pixels and rounds each channel.
	Bilinear
)

func (i Interpolation) String() string {
	switch i {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	}
	return "unknown"
}

// ParseInterpolation returns the Interpolation named by s.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(s) {
	case "nearest", "none", "":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	}
	return 0, errors.Errorf("warp: unknown interpolation %q", s)
}

// sampleFunc reads src at p, reporting false when p has no source pixel.
type sampleFunc func(src *raster.Raster, p transform.Point) (raster.Pixel, bool)

func (i Interpolation) sampler() (sampleFunc, error) {
	switch i {
	case Nearest:
		return sampleNearest, nil
	case Bilinear:
		return sampleBilinear, nil
	}
	return nil, errors.Errorf("warp: unknown interpolation %d", int(i))
}

func sampleNearest(src *raster.Raster, p transform.Point) (raster.Pixel, bool) {
	if !(p.X >= 0 && p.X < float64(src.Width()) && p.Y >= 0 && p.Y < float64(src.Height())) {
		return raster.Pixel{}, false
	}
	return src.At(int(p.X), int(p.Y)), true
}

func sampleBilinear(src *raster.Raster, p transform.Point) (raster.Pixel, bool) {
	maxX := src.Width() - 1
	maxY := src.Height() - 1
	if !(p.X >= 0 && p.X <= float64(maxX) && p.Y >= 0 && p.Y <= float64(maxY)) {
		return raster.Pixel{}, false
	}
	x0, y0 := int(p.X), int(p.Y)
	x1, y1 := min(x0+1, maxX), min(y0+1, maxY)
	fx, fy := p.X-float64(x0), p.Y-float64(y0)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy
	p00, p10 := src.At(x0, y0), src.At(x1, y0)
	p01, p11 := src.At(x0, y1), src.At(x1, y1)

	blend := func(c00, c10, c01, c11 uint8) uint8 {
		v := w00*float64(c00) + w10*float64(c10) + w01*float64(c01) + w11*float64(c11)
		return uint8(math.Min(math.Round(v), 255))
	}
	return raster.Pixel{
		R: blend(p00.R, p10.R, p01.R, p11.R),
		G: blend(p00.G, p10.G, p01.G, p11.G),
		B: blend(p00.B, p10.B, p01.B, p11.B),
	}, true
}
