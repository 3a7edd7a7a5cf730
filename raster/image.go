package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FromImage copies img into a new raster. Alpha is dropped after the colour
// is converted to 8-bit non-premultiplied RGB.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	r := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			r.Set(x, y, Pixel{c.R, c.G, c.B})
		}
	}
	return r
}

// ToImage converts the raster to an opaque *image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		src := r.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+4*r.width]
		for x := 0; x < r.width; x++ {
			dst[4*x] = src[3*x]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 0xFF
		}
	}
	return img
}

// EncodePNG writes the raster to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, r.ToImage()), "raster: encode png")
}

// WritePNG writes the raster to the PNG file at path, replacing it.
func (r *Raster) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "raster: create")
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "raster: close")
}
