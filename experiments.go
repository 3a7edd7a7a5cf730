package homowarp

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ericlevine/homowarp/raster"
	"github.com/ericlevine/homowarp/scene"
	"github.com/ericlevine/homowarp/transform"
)

// Experiment names.
const (
	Perspective = "perspective"
	Rotation    = "rotation"
	Outline     = "outline"
)

// ErrUnknownExperiment is returned when Run is given an unregistered name.
var ErrUnknownExperiment = errors.New("homowarp: unknown experiment")

// artifact is a raster written next to the warped output.
type artifact struct {
	file   string
	raster *raster.Raster
}

// plan is everything an experiment needs to be warped and reported.
type plan struct {
	source    *raster.Raster
	matrix    transform.Matrix
	size      transform.Size
	output    string
	artifacts []artifact
}

type planner func(cfg Config, log logrus.FieldLogger) (*plan, error)

var experiments = map[string]planner{
	Perspective: planPerspective,
	Rotation:    planRotation,
	Outline:     planOutline,
}

// Experiments returns the registered experiment names in sorted order.
func Experiments() []string {
	names := make([]string, 0, len(experiments))
	for name := range experiments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// planPerspective fits the source corners to the shifted destination corners
// and applies that fit after a rotation about the scene centre:
// M = fit * rotation.
func planPerspective(cfg Config, log logrus.FieldLogger) (*plan, error) {
	if err := cfg.Scene.Validate(); err != nil {
		return nil, err
	}
	corr := cfg.Scene.Correspondence()
	fit, err := transform.FitPerspective(corr)
	if err != nil {
		return nil, errors.Wrap(err, "fit perspective")
	}
	log.WithFields(logrus.Fields{
		"src": corr.Src,
		"dst": corr.Dst,
	}).Debug("Fitted perspective transform")

	rot := transform.RotationAbout(cfg.Scene.Center(), cfg.Angle)
	return &plan{
		source: cfg.Scene.Corners(),
		matrix: transform.Compose(fit, rot),
		size:   cfg.Scene.Size,
		output: "transformed.png",
		artifacts: []artifact{
			{"pts.png", cfg.Scene.Markers(corr.Src)},
			{"dst_pts.png", cfg.Scene.Markers(corr.Dst)},
		},
	}, nil
}

// planRotation rotates the corner scene about its centre without any
// perspective term.
func planRotation(cfg Config, log logrus.FieldLogger) (*plan, error) {
	if err := cfg.Scene.Validate(); err != nil {
		return nil, err
	}
	center := cfg.Scene.Center()
	log.WithField("center", center).Debug("Rotating about scene centre")
	return &plan{
		source: cfg.Scene.Corners(),
		matrix: transform.RotationAbout(center, cfg.Angle),
		size:   cfg.Scene.Size,
		output: "rotated_center.png",
		artifacts: []artifact{
			{"input.png", cfg.Scene.Corners()},
		},
	}, nil
}

// planOutline rotates an outlined square about the image origin.
func planOutline(cfg Config, log logrus.FieldLogger) (*plan, error) {
	log.WithField("angle", cfg.OutlineAngle).Debug("Rotating outline about origin")
	return &plan{
		source: scene.OutlinedSquare(OutlineSize, OutlineLo, OutlineHi),
		matrix: transform.RotationAbout(transform.Point{}, cfg.OutlineAngle),
		size:   transform.Size{W: OutlineSize, H: OutlineSize},
		output: "rotated.png",
	}, nil
}
