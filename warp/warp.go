// Package warp resamples rasters through a homogeneous transform.
package warp

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/transform"
)

// ErrInvalidSize is returned when the requested output size is not positive.
var ErrInvalidSize = errors.New("warp: output size must be positive")

// Options controls resampling.
type Options struct {
	Interpolation Interpolation
	// Workers is the number of row bands resampled concurrently. Values
	// below 1 mean 1.
	Workers int
}

// Warp resamples src into a raster of the given size. m maps source space to
// destination space; each destination pixel (u, v) reads the source at
// inverse(m) * (u, v, 1). Pixels that map outside the source are black.
func Warp(src *raster.Raster, m transform.Matrix, size transform.Size, opts Options) (*raster.Raster, error) {
	return WarpContext(context.Background(), src, m, size, opts)
}

// WarpContext is Warp with cancellation between row bands.
func WarpContext(ctx context.Context, src *raster.Raster, m transform.Matrix, size transform.Size, opts Options) (*raster.Raster, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, ErrInvalidSize
	}
	inv, err := transform.Invert(m)
	if err != nil {
		return nil, err
	}
	sample, err := opts.Interpolation.sampler()
	if err != nil {
		return nil, err
	}

	dst := raster.New(size.W, size.H)
	workers := min(max(opts.Workers, 1), size.H)
	band := (size.H + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for top := 0; top < size.H; top += band {
		bottom := min(top+band, size.H)
		g.Go(func() error {
			points := make([]transform.Point, size.W)
			for y := top; y < bottom; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := range points {
					points[x] = transform.Point{X: float64(x), Y: float64(y)}
				}
				inv.TransformPoints(points)
				for x, p := range points {
					if px, ok := sample(src, p); ok {
						dst.Set(x, y, px)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
