package rigid2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r2"
)

// LocalCoords is the frame that maps body coordinates to world coordinates:
// the body point M_cmBody sits at M_locWorld, rotated by the angle whose sine
// and cosine are stored.
type LocalCoords struct {
	M_cmBody   r2.Vec
	M_locWorld r2.Vec
	M_sinAngle float64
	M_cosAngle float64
}

func MakeLocalCoords() LocalCoords {
	return LocalCoords{
		M_sinAngle: 0,
		M_cosAngle: 1,
	}
}

func NewLocalCoords() *LocalCoords {
	res := MakeLocalCoords()
	return &res
}

// Set overwrites every field. Used to refill a snapshot without allocating.
func (c *LocalCoords) Set(cmBody, locWorld r2.Vec, sinAngle, cosAngle float64) {
	c.M_cmBody = cmBody
	c.M_locWorld = locWorld
	c.M_sinAngle = sinAngle
	c.M_cosAngle = cosAngle
}

func (c LocalCoords) GetAngle() float64 {
	return math.Atan2(c.M_sinAngle, c.M_cosAngle)
}

func (c LocalCoords) rotation() mgl64.Mat2 {
	// column major
	return mgl64.Mat2{c.M_cosAngle, c.M_sinAngle, -c.M_sinAngle, c.M_cosAngle}
}

func (c LocalCoords) RotateBodyToWorld(v r2.Vec) r2.Vec {
	w := c.rotation().Mul2x1(mgl64.Vec2{v.X, v.Y})
	return r2.Vec{X: w[0], Y: w[1]}
}

func (c LocalCoords) RotateWorldToBody(v r2.Vec) r2.Vec {
	w := c.rotation().Transpose().Mul2x1(mgl64.Vec2{v.X, v.Y})
	return r2.Vec{X: w[0], Y: w[1]}
}

func (c LocalCoords) BodyToWorld(p r2.Vec) r2.Vec {
	return r2.Add(c.M_locWorld, c.RotateBodyToWorld(r2.Sub(p, c.M_cmBody)))
}

func (c LocalCoords) WorldToBody(p r2.Vec) r2.Vec {
	return r2.Add(c.M_cmBody, c.RotateWorldToBody(r2.Sub(p, c.M_locWorld)))
}
