package scene

import (
	"testing"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/transform"
)

func countWhite(r *raster.Raster) int {
	n := 0
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.At(x, y) == raster.White {
				n++
			}
		}
	}
	return n
}

func TestDefaultCorners(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := [4]transform.Point{{X: 300, Y: 200}, {X: 500, Y: 200}, {X: 300, Y: 400}, {X: 500, Y: 400}}
	if got := cfg.SourceCorners(); got != want {
		t.Errorf("SourceCorners = %v, want %v", got, want)
	}
	wantDst := [4]transform.Point{{X: 350, Y: 250}, {X: 550, Y: 250}, {X: 350, Y: 450}, {X: 550, Y: 450}}
	if got := cfg.DestCorners(); got != wantDst {
		t.Errorf("DestCorners = %v, want %v", got, wantDst)
	}
	if got := cfg.Center(); got != transform.Pt(399.5, 299.5) {
		t.Errorf("Center = %v, want (399.5, 299.5)", got)
	}
}

func TestCornersImage(t *testing.T) {
	cfg := Config{Size: transform.Size{W: 20, H: 12}, SquareHalf: 4, CornerHalf: 1}
	r := cfg.Corners()
	// 4 markers of 3x3 plus a 10 pixel line on row 6 that does not touch them.
	if got, want := countWhite(r), 4*9+10; got != want {
		t.Errorf("white pixels = %d, want %d\n%s", got, want, r)
	}
	for _, p := range cfg.SourceCorners() {
		if r.At(int(p.X), int(p.Y)) != raster.White {
			t.Errorf("corner %v is not marked", p)
		}
	}
	if r.At(9, 6) != raster.White || r.At(10, 6) != raster.Black {
		t.Errorf("crosshair should end at x=9\n%s", r)
	}
}

func TestMarkers(t *testing.T) {
	cfg := Config{Size: transform.Size{W: 20, H: 20}, SquareHalf: 4, CornerHalf: 0, Offset: 2}
	r := cfg.Markers(cfg.DestCorners())
	if got := countWhite(r); got != 4 {
		t.Errorf("white pixels = %d, want 4", got)
	}
	if r.At(8, 8) != raster.White {
		t.Error("first destination corner (8,8) is not marked")
	}
}

func TestOutlinedSquare(t *testing.T) {
	r := OutlinedSquare(6, 1, 4)
	want := "" +
		"......\n" +
		".XXXX.\n" +
		".X..X.\n" +
		".X..X.\n" +
		".XXX..\n" +
		"......\n"
	if got := r.String(); got != want {
		t.Errorf("OutlinedSquare =\n%s\nwant\n%s", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"empty size", Config{SquareHalf: 1}, false},
		{"zero square", Config{Size: transform.Size{W: 10, H: 10}}, false},
		{"too large", Config{Size: transform.Size{W: 100, H: 100}, SquareHalf: 60}, false},
		{"offset off canvas", Config{Size: transform.Size{W: 100, H: 100}, SquareHalf: 20, CornerHalf: 2, Offset: 40}, false},
		{"negative offset", Config{Size: transform.Size{W: 100, H: 100}, SquareHalf: 20, CornerHalf: 2, Offset: -10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
