package homowarp

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/transform"
	"github.com/ericlevine/homowarp/warp"
)

// Result is the outcome of one experiment.
type Result struct {
	Name    string
	Matrix  transform.Matrix
	Inverse transform.Matrix
	Warped  *raster.Raster
	// Files lists the PNG files written, warped output last.
	Files []string
}

// Runner executes experiments, writes their rasters to Dir and prints each
// matrix and its inverse to Out.
type Runner struct {
	Config Config
	Logger logrus.FieldLogger
	// Out receives the matrix literals. Nil means os.Stdout.
	Out io.Writer
	// Dir is the output directory. Empty means rasters are not written.
	Dir string
}

// NewRunner returns a Runner with the default configuration.
func NewRunner(logger logrus.FieldLogger, dir string) *Runner {
	return &Runner{
		Config: DefaultConfig(),
		Logger: logger,
		Out:    os.Stdout,
		Dir:    dir,
	}
}

// Run executes the named experiment. Any failure stops the run before the
// following step; nothing is retried.
func (r *Runner) Run(ctx context.Context, name string) (*Result, error) {
	build, ok := experiments[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownExperiment, "%q", name)
	}
	log := r.logger().WithField("experiment", name)

	p, err := build(r.Config, log)
	if err != nil {
		return nil, errors.Wrapf(err, "experiment %s: build transform", name)
	}
	inv, err := transform.Invert(p.matrix)
	if err != nil {
		return nil, errors.Wrapf(err, "experiment %s: invert", name)
	}
	log.WithFields(logrus.Fields{
		"det":           p.matrix.Det(),
		"interpolation": r.Config.Warp.Interpolation.String(),
		"workers":       r.Config.Warp.Workers,
	}).Debug("Warping scene")

	warped, err := warp.WarpContext(ctx, p.source, p.matrix, p.size, r.Config.Warp)
	if err != nil {
		return nil, errors.Wrapf(err, "experiment %s: warp", name)
	}

	res := &Result{Name: name, Matrix: p.matrix, Inverse: inv, Warped: warped}
	if r.Dir != "" {
		if err := os.MkdirAll(r.Dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "experiment %s: create output directory", name)
		}
		for _, a := range append(p.artifacts, artifact{p.output, warped}) {
			path := filepath.Join(r.Dir, a.file)
			if err := a.raster.WritePNG(path); err != nil {
				return nil, errors.Wrapf(err, "experiment %s: write %s", name, a.file)
			}
			res.Files = append(res.Files, path)
			log.WithField("file", path).Info("Wrote raster")
		}
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	if err := transform.WriteLiteral(out, p.matrix); err != nil {
		return nil, errors.Wrapf(err, "experiment %s: print matrix", name)
	}
	if err := transform.WriteLiteral(out, inv); err != nil {
		return nil, errors.Wrapf(err, "experiment %s: print inverse", name)
	}
	return res, nil
}

// RunAll runs every registered experiment in name order, stopping at the
// first failure.
func (r *Runner) RunAll(ctx context.Context) ([]*Result, error) {
	var results []*Result
	for _, name := range Experiments() {
		res, err := r.Run(ctx, name)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}
