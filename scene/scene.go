// Package scene draws the synthetic test images used to exercise warps:
// small squares marking the corners of a larger square, a crosshair line
// and an outlined square.
package scene

import (
	"github.com/pkg/errors"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/transform"
)

// Config describes the corner-marker scene.
type Config struct {
	// Size of the rendered raster.
	Size transform.Size
	// SquareHalf is the half side of the square whose corners are marked.
	SquareHalf int
	// CornerHalf is the half side of each corner marker.
	CornerHalf int
	// Offset shifts the destination corners along both axes.
	Offset int
}

// DefaultConfig returns the 800x600 scene with a 200 pixel square, 11 pixel
// corner markers and a 50 pixel diagonal shift.
func DefaultConfig() Config {
	return Config{
		Size:       transform.Size{W: 800, H: 600},
		SquareHalf: 100,
		CornerHalf: 5,
		Offset:     50,
	}
}

// Validate checks that every source and destination marker fits inside the
// raster.
func (c Config) Validate() error {
	if c.Size.W <= 0 || c.Size.H <= 0 {
		return errors.Errorf("scene: invalid size %dx%d", c.Size.W, c.Size.H)
	}
	if c.SquareHalf <= 0 || c.CornerHalf < 0 {
		return errors.Errorf("scene: invalid square half %d or corner half %d", c.SquareHalf, c.CornerHalf)
	}
	for _, set := range [][4]transform.Point{c.SourceCorners(), c.DestCorners()} {
		for _, p := range set {
			x, y := int(p.X), int(p.Y)
			if x-c.CornerHalf < 0 || y-c.CornerHalf < 0 ||
				x+c.CornerHalf >= c.Size.W || y+c.CornerHalf >= c.Size.H {
				return errors.Errorf("scene: corner (%d,%d) does not fit in %dx%d", x, y, c.Size.W, c.Size.H)
			}
		}
	}
	return nil
}

// SourceCorners returns the corners of the square centred in the raster in
// the order top-left, top-right, bottom-left, bottom-right.
func (c Config) SourceCorners() [4]transform.Point {
	cx, cy := c.Size.W/2, c.Size.H/2
	s := c.SquareHalf
	return [4]transform.Point{
		{X: float64(cx - s), Y: float64(cy - s)},
		{X: float64(cx + s), Y: float64(cy - s)},
		{X: float64(cx - s), Y: float64(cy + s)},
		{X: float64(cx + s), Y: float64(cy + s)},
	}
}

// DestCorners returns SourceCorners shifted by Offset on both axes.
func (c Config) DestCorners() [4]transform.Point {
	pts := c.SourceCorners()
	for i := range pts {
		pts[i].X += float64(c.Offset)
		pts[i].Y += float64(c.Offset)
	}
	return pts
}

// Correspondence pairs SourceCorners with DestCorners.
func (c Config) Correspondence() transform.Correspondence {
	return transform.Correspondence{Src: c.SourceCorners(), Dst: c.DestCorners()}
}

// Center returns the rotation centre of the raster, ((W-1)/2, (H-1)/2).
func (c Config) Center() transform.Point {
	return transform.Point{
		X: float64(c.Size.W-1) * 0.5,
		Y: float64(c.Size.H-1) * 0.5,
	}
}

// Corners renders the source corner markers plus a horizontal line from the
// left edge to the centre, which makes rotations visible.
func (c Config) Corners() *raster.Raster {
	r := raster.New(c.Size.W, c.Size.H)
	DrawCorners(r, c.SourceCorners(), c.CornerHalf)
	DrawCrosshair(r, c.Size.H/2, c.Size.W/2)
	return r
}

// Markers renders only the markers at pts.
func (c Config) Markers(pts [4]transform.Point) *raster.Raster {
	r := raster.New(c.Size.W, c.Size.H)
	DrawCorners(r, pts, c.CornerHalf)
	return r
}

// DrawCorners fills a (2*half+1) pixel square centred on each point.
func DrawCorners(r *raster.Raster, pts [4]transform.Point, half int) {
	for _, p := range pts {
		x, y := int(p.X), int(p.Y)
		r.SetRegion(x-half, y-half, 2*half+1, 2*half+1, raster.White)
	}
}

// DrawCrosshair draws a one pixel horizontal line on row y from x=0 to
// x=length-1.
func DrawCrosshair(r *raster.Raster, y, length int) {
	r.SetRegion(0, y, length, 1, raster.White)
}

// DrawOutline draws the edges of the square spanning [left, right) x
// [top, bottom), with the right and bottom edges on x=right and y=bottom.
func DrawOutline(r *raster.Raster, left, top, right, bottom int) {
	r.SetRegion(left, top, right-left, 1, raster.White)
	r.SetRegion(left, bottom, right-left, 1, raster.White)
	r.SetRegion(left, top, 1, bottom-top, raster.White)
	r.SetRegion(right, top, 1, bottom-top, raster.White)
}

// OutlinedSquare renders a size x size raster with an outline from lo to hi
// on both axes.
func OutlinedSquare(size, lo, hi int) *raster.Raster {
	r := raster.New(size, size)
	DrawOutline(r, lo, lo, hi, hi)
	return r
}
