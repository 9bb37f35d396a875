package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rest is the direction of a pendulum hanging straight down.
var Rest = cp.Vector{X: 0, Y: -1}

// AngleBetween returns the signed angle in degrees from a to b.
func AngleBetween(a, b cp.Vector) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b)) * 180 / math.Pi
}

// Rotated returns v rotated counter-clockwise by deg degrees.
func Rotated(v cp.Vector, deg float64) cp.Vector {
	return v.Rotate(cp.ForAngle(deg * math.Pi / 180))
}

func finite(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
