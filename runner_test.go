package homowarp_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ericlevine/homowarp"
	"github.com/ericlevine/homowarp/scene"
	"github.com/ericlevine/homowarp/transform"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l
}

func smallRunner(t *testing.T) (*homowarp.Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := homowarp.NewRunner(quietLogger(), t.TempDir())
	r.Out = &out
	r.Config.Scene = scene.Config{
		Size:       transform.Size{W: 80, H: 60},
		SquareHalf: 10,
		CornerHalf: 1,
		Offset:     5,
	}
	return r, &out
}

func TestRunPerspective(t *testing.T) {
	r, out := smallRunner(t)
	res, err := r.Run(context.Background(), homowarp.Perspective)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// M = fit * rotation, so undoing the rotation first lands on the fit.
	unrotate, err := transform.Invert(transform.RotationAbout(r.Config.Scene.Center(), r.Config.Angle))
	if err != nil {
		t.Fatal(err)
	}
	corr := r.Config.Scene.Correspondence()
	for i, src := range corr.Src {
		pre, _ := unrotate.Apply(src)
		got, ok := res.Matrix.Apply(pre)
		if !ok || !got.Near(corr.Dst[i], 1e-6) {
			t.Errorf("corner %d: %v -> %v, want %v", i, pre, got, corr.Dst[i])
		}
	}
	if prod := res.Matrix.Mul(res.Inverse); !prod.ApproxEqual(transform.Identity(), 1e-9) {
		t.Errorf("Matrix * Inverse = %v, want identity", prod)
	}

	wantFiles := []string{"pts.png", "dst_pts.png", "transformed.png"}
	if len(res.Files) != len(wantFiles) {
		t.Fatalf("Files = %v, want %v", res.Files, wantFiles)
	}
	for i, f := range wantFiles {
		if filepath.Base(res.Files[i]) != f {
			t.Errorf("Files[%d] = %s, want %s", i, res.Files[i], f)
		}
		if _, err := os.Stat(res.Files[i]); err != nil {
			t.Errorf("stat %s: %v", res.Files[i], err)
		}
	}

	want := transform.Literal(res.Matrix) + transform.Literal(res.Inverse)
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunRotationZeroAngleIsIdentity(t *testing.T) {
	r, _ := smallRunner(t)
	r.Config.Angle = 0
	res, err := r.Run(context.Background(), homowarp.Rotation)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Matrix != transform.Identity() {
		t.Errorf("Matrix = %v, want identity", res.Matrix)
	}
	if !res.Warped.Equal(r.Config.Scene.Corners()) {
		t.Error("zero rotation should reproduce the scene")
	}
}

func TestRunOutline(t *testing.T) {
	var out bytes.Buffer
	r := homowarp.NewRunner(quietLogger(), "")
	r.Out = &out
	res, err := r.Run(context.Background(), homowarp.Outline)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Warped.Width() != homowarp.OutlineSize || res.Warped.Height() != homowarp.OutlineSize {
		t.Errorf("size = %dx%d, want %dx%d", res.Warped.Width(), res.Warped.Height(),
			homowarp.OutlineSize, homowarp.OutlineSize)
	}
	if len(res.Files) != 0 {
		t.Errorf("Files = %v, want none without an output directory", res.Files)
	}
	if !strings.HasPrefix(out.String(), "[\n    [") {
		t.Errorf("output should start with a matrix literal, got %q", out.String())
	}
	// The origin is the rotation's fixed point.
	if p, _ := res.Matrix.Apply(transform.Point{}); !p.Near(transform.Point{}, 1e-12) {
		t.Errorf("origin -> %v, want origin", p)
	}
}

func TestRunUnknownExperiment(t *testing.T) {
	r, _ := smallRunner(t)
	if _, err := r.Run(context.Background(), "shear"); !errors.Is(err, homowarp.ErrUnknownExperiment) {
		t.Errorf("err = %v, want %v", err, homowarp.ErrUnknownExperiment)
	}
}

func TestRunStopsBeforeWriting(t *testing.T) {
	r, out := smallRunner(t)
	r.Config.Scene.Offset = 100
	if _, err := r.Run(context.Background(), homowarp.Perspective); err == nil {
		t.Fatal("Run should fail for a scene that does not fit")
	}
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output directory has %d entries, want none", len(entries))
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	r, _ := smallRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, homowarp.Rotation); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want %v", err, context.Canceled)
	}
}

func TestRunAll(t *testing.T) {
	r, _ := smallRunner(t)
	r.Dir = ""
	results, err := r.RunAll(context.Background())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	names := homowarp.Experiments()
	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, res := range results {
		if res.Name != names[i] {
			t.Errorf("results[%d].Name = %s, want %s", i, res.Name, names[i])
		}
	}
}

func TestExperiments(t *testing.T) {
	want := []string{homowarp.Outline, homowarp.Perspective, homowarp.Rotation}
	got := homowarp.Experiments()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Experiments() = %v, want %v", got, want)
	}
}
