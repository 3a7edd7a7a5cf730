// Package raster provides an owned RGB pixel grid.
package raster

import (
	"strings"

	"github.com/pkg/errors"
)

// Pixel is an 8-bit RGB colour.
type Pixel struct {
	R, G, B uint8
}

var (
	// Black is the background value for pixels with no source.
	Black = Pixel{}
	// White is the drawing colour of the synthetic scenes.
	White = Pixel{255, 255, 255}
)

// Raster is a width x height grid of RGB pixels. x is the column position,
// y is the row position. The origin is at the top-left.
type Raster struct {
	width  int
	height int
	pix    []uint8
}

// New creates a black raster with the given width and height.
func New(width, height int) *Raster {
	if width < 1 || height < 1 {
		panic("raster: dimensions must be greater than 0")
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, 3*width*height),
	}
}

// Width returns the width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the height in pixels.
func (r *Raster) Height() int { return r.height }

// In reports whether (x, y) lies inside the raster.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns the pixel at (x, y).
func (r *Raster) At(x, y int) Pixel {
	i := r.offset(x, y)
	return Pixel{r.pix[i], r.pix[i+1], r.pix[i+2]}
}

// Set sets the pixel at (x, y).
func (r *Raster) Set(x, y int, p Pixel) {
	i := r.offset(x, y)
	r.pix[i] = p.R
	r.pix[i+1] = p.G
	r.pix[i+2] = p.B
}

// Row returns the pixel bytes of row y, three per pixel. The slice aliases the
// raster.
func (r *Raster) Row(y int) []uint8 {
	start := 3 * y * r.width
	return r.pix[start : start+3*r.width]
}

// SetRegion fills a rectangle with p. Parts of the rectangle outside the
// raster are ignored.
func (r *Raster) SetRegion(left, top, width, height int, p Pixel) {
	right := min(left+width, r.width)
	bottom := min(top+height, r.height)
	left = max(left, 0)
	top = max(top, 0)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			r.Set(x, y, p)
		}
	}
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.pix))
	copy(pix, r.pix)
	return &Raster{width: r.width, height: r.height, pix: pix}
}

// Equal reports whether both rasters have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.width != other.width || r.height != other.height {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// String renders the raster as a character grid: 'X' for white pixels, '.'
// for black and '+' for anything else.
func (r *Raster) String() string {
	var sb strings.Builder
	sb.Grow(r.height * (r.width + 1))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			switch r.At(x, y) {
			case White:
				sb.WriteByte('X')
			case Black:
				sb.WriteByte('.')
			default:
				sb.WriteByte('+')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a raster from the String form. Only 'X' and '.' are accepted;
// blank lines are skipped and every row must have the same length.
func Parse(repr string) (*Raster, error) {
	var rows []string
	for _, line := range strings.Split(repr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(rows) > 0 && len(line) != len(rows[0]) {
			return nil, errors.Errorf("raster: row %d has length %d, want %d", len(rows), len(line), len(rows[0]))
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, errors.New("raster: empty input")
	}
	r := New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'X':
				r.Set(x, y, White)
			case '.':
			default:
				return nil, errors.Errorf("raster: unexpected %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return r, nil
}

func (r *Raster) offset(x, y int) int {
	return 3 * (y*r.width + x)
}
