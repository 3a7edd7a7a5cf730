// Package homowarp runs small perspective-warp experiments: it fits a
// perspective transform to synthetic corner markers, composes it with a
// rotation, warps the scene and prints the matrix for reuse elsewhere.
package homowarp

import (
	"math"

	"github.com/ericlevine/homowarp/scene"
	"github.com/ericlevine/homowarp/transform"
	"github.com/ericlevine/homowarp/warp"
)

// Outline experiment geometry.
const (
	OutlineSize = 800
	OutlineLo   = 300
	OutlineHi   = 500
)

// Config configures every experiment.
type Config struct {
	// Scene is the corner-marker scene used by the perspective and rotation
	// experiments.
	Scene scene.Config

	// Angle is the rotation about the scene centre, in radians.
	Angle float64

	// OutlineAngle is the rotation about the origin applied to the outlined
	// square, in radians.
	OutlineAngle float64

	// Warp controls resampling.
	Warp warp.Options
}

// DefaultConfig returns a 45 degree rotation of the default scene and a
// pi/11 rotation of the outlined square, resampled with nearest neighbour.
func DefaultConfig() Config {
	return Config{
		Scene:        scene.DefaultConfig(),
		Angle:        transform.Degrees(45),
		OutlineAngle: math.Pi / 11,
		Warp:         warp.Options{Interpolation: warp.Nearest, Workers: 1},
	}
}
