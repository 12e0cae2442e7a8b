package rigid2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func vecIsValid(v r2.Vec) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Perpendicular pointing to the right of v.
func vecRightPerp(v r2.Vec) r2.Vec {
	return r2.Vec{X: v.Y, Y: -v.X}
}

func vecDistance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

func vecDistanceSquared(a, b r2.Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

func vecAngle(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

func vecFromAngle(r, angle float64) r2.Vec {
	return r2.Vec{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// Maps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
