package transform

import "math"

// RotationAbout returns the rotation by angle radians about center. It is
// translate(center) * rotate(angle) * translate(-center), expanded.
func RotationAbout(center Point, angle float64) Matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	cx, cy := center.X, center.Y
	return Matrix{
		cos, -sin, cx*(1-cos) + cy*sin,
		sin, cos, -cx*sin + cy*(1-cos),
		0, 0, 1,
	}
}

// Degrees converts an angle in degrees to radians.
func Degrees(d float64) float64 {
	return d * math.Pi / 180
}
