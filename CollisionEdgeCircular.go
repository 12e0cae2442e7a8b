package rigid2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Relative tolerance between the distances of the two arc endpoints from the
// center.
const arcRadiusTol = 1e-6

func (e *Edge) initializeCircular(curveSpacing float64) ([]r2.Vec, error) {
	if !vecIsValid(e.M_center) {
		return nil, ErrNonFinite
	}
	rStart := vecDistance(e.M_v1Body, e.M_center)
	rEnd := vecDistance(e.M_v2Body, e.M_center)
	if rStart == 0 || rEnd == 0 {
		return nil, ErrZeroLength
	}
	if math.Abs(rStart-rEnd) > arcRadiusTol*math.Max(1, rStart) {
		return nil, ErrRadiusMismatch
	}
	e.M_radius = rStart

	a1 := vecAngle(r2.Sub(e.M_v1Body, e.M_center))
	a2 := vecAngle(r2.Sub(e.M_v2Body, e.M_center))
	if e.M_clockwise {
		e.M_angleStart = normalizeAngle(a2)
		e.M_angleSpan = normalizeAngle(a1 - a2)
	} else {
		e.M_angleStart = normalizeAngle(a1)
		e.M_angleSpan = normalizeAngle(a2 - a1)
	}
	if e.M_angleSpan == 0 {
		return nil, ErrZeroLength
	}

	n := int(math.Ceil(e.M_angleSpan * e.M_radius / curveSpacing))
	if n < 1 {
		n = 1
	}
	delta := e.M_angleSpan / float64(n)
	e.M_chordError = e.M_radius * (1 - math.Cos(delta/2))

	step := delta
	if e.M_clockwise {
		step = -delta
	}
	decorated := make([]r2.Vec, 0, n-1)
	for k := 1; k < n; k++ {
		decorated = append(decorated, r2.Add(e.M_center, vecFromAngle(e.M_radius, a1+float64(k)*step)))
	}

	// An arc no larger than a half circle lies inside the circle on its chord.
	if e.M_angleSpan <= math.Pi {
		e.M_centroidBody = r2.Scale(0.5, r2.Add(e.M_v1Body, e.M_v2Body))
		e.M_centroidRadius = 0.5 * vecDistance(e.M_v1Body, e.M_v2Body)
	} else {
		e.M_centroidBody = e.M_center
		e.M_centroidRadius = e.M_radius
	}

	e.M_bounds = MakeBoundingBoxFromPoints(e.M_v1Body, e.M_v2Body)
	for k := 0; k < 4; k++ {
		a := float64(k) * math.Pi / 2
		if e.containsAngle(a) {
			e.M_bounds.AddPoint(r2.Add(e.M_center, vecFromAngle(e.M_radius, a)))
		}
	}
	return decorated, nil
}

func (e Edge) GetCenterBody() r2.Vec {
	return e.M_center
}

func (e Edge) GetRadius() float64 {
	return e.M_radius
}

func (e Edge) IsClockwise() bool {
	return e.M_clockwise
}

// Whether the outside of the body is away from the center of the arc.
func (e Edge) IsOutsideOut() bool {
	return !e.M_clockwise
}

func (e Edge) containsAngle(a float64) bool {
	return normalizeAngle(a-e.M_angleStart) <= e.M_angleSpan+1e-12
}

func (e Edge) circularDistanceToPoint(p r2.Vec) float64 {
	v := r2.Sub(p, e.M_center)
	if r2.Norm2(v) == 0 || !e.containsAngle(vecAngle(v)) {
		return math.Inf(1)
	}
	d := r2.Norm(v) - e.M_radius
	if e.IsOutsideOut() {
		return d
	}
	return -d
}

func (e Edge) circularNormalBody(p r2.Vec) r2.Vec {
	v := r2.Sub(p, e.M_center)
	if r2.Norm2(v) == 0 {
		v = vecFromAngle(1, e.M_angleStart+e.M_angleSpan/2)
	}
	n := r2.Unit(v)
	if e.IsOutsideOut() {
		return n
	}
	return r2.Scale(-1, n)
}

// Points where segment a1-a2 crosses the circle (c, r).
func segmentCircleIntersection(a1, a2, c r2.Vec, r float64) []r2.Vec {
	d := r2.Sub(a2, a1)
	f := r2.Sub(a1, c)
	a := r2.Dot(d, d)
	b := 2 * r2.Dot(f, d)
	cc := r2.Dot(f, f) - r*r
	disc := b*b - 4*a*cc
	if a == 0 || disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	var res []r2.Vec
	for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t >= 0 && t <= 1 {
			res = append(res, r2.Add(a1, r2.Scale(t, d)))
		}
		if disc == 0 {
			break
		}
	}
	return res
}

// Points where circle (c1, r1) crosses circle (c2, r2).
func circleCircleIntersection(c1 r2.Vec, r1 float64, c2 r2.Vec, rr2 float64) []r2.Vec {
	dv := r2.Sub(c2, c1)
	d := r2.Norm(dv)
	if d == 0 || d > r1+rr2 || d < math.Abs(r1-rr2) {
		return nil
	}
	a := (r1*r1 - rr2*rr2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	u := r2.Scale(1/d, dv)
	m := r2.Add(c1, r2.Scale(a, u))
	perp := r2.Vec{X: -u.Y, Y: u.X}
	if h == 0 {
		return []r2.Vec{m}
	}
	return []r2.Vec{r2.Add(m, r2.Scale(h, perp)), r2.Sub(m, r2.Scale(h, perp))}
}
