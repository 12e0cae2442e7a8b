package rigid2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func (e *Edge) initializeStraight() {
	d := r2.Sub(e.M_v2Body, e.M_v1Body)

	// Normal points to the right for a CCW winding
	e.M_normalBody = r2.Unit(vecRightPerp(d))
	e.M_centroidBody = r2.Scale(0.5, r2.Add(e.M_v1Body, e.M_v2Body))
	e.M_centroidRadius = 0.5 * r2.Norm(d)
	e.M_chordError = 0
	e.M_bounds = MakeBoundingBoxFromPoints(e.M_v1Body, e.M_v2Body)
}

func (e Edge) straightDistanceToPoint(p r2.Vec) float64 {
	d := r2.Sub(e.M_v2Body, e.M_v1Body)
	t := r2.Dot(r2.Sub(p, e.M_v1Body), d) / r2.Norm2(d)
	if t < 0 || t > 1 {
		return math.Inf(1)
	}
	return r2.Dot(r2.Sub(p, e.M_v1Body), e.M_normalBody)
}

// Intersection of segments a1-a2 and b1-b2. Parallel segments never intersect.
func segmentIntersection(a1, a2, b1, b2 r2.Vec) (r2.Vec, bool) {
	da := r2.Sub(a2, a1)
	db := r2.Sub(b2, b1)
	den := r2.Cross(da, db)
	if den == 0 {
		return r2.Vec{}, false
	}
	w := r2.Sub(b1, a1)
	s := r2.Cross(w, db) / den
	t := r2.Cross(w, da) / den
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return r2.Vec{}, false
	}
	return r2.Add(a1, r2.Scale(s, da)), true
}
