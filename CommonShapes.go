package rigid2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MakeBlock returns a finished width x height rectangle centered on the body
// origin. Edges are numbered bottom, right, top, left.
func MakeBlock(width, height float64, name string, settings Settings) (*Polygon, error) {
	p, err := NewPolygonWithSettings(name, settings)
	if err != nil {
		return nil, err
	}
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return nil, p.failf("MakeBlock", ErrZeroLength, "%g x %g", width, height)
	}
	w := width / 2
	h := height / 2
	if err := p.addStraightLoop([]r2.Vec{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}); err != nil {
		return nil, err
	}
	return p, nil
}

// MakeWall returns a block whose top edge is its special edge, for use as a
// wall or floor that other bodies approach from above.
func MakeWall(width, height float64, name string, settings Settings) (*Polygon, error) {
	p, err := MakeBlock(width, height, name, settings)
	if err != nil {
		return nil, err
	}
	if err := p.SetCentroid(r2.Vec{}); err != nil {
		return nil, err
	}
	if err := p.SetSpecialEdge(2, height/2); err != nil {
		return nil, err
	}
	return p, nil
}

// MakeBall returns a finished circle of the given radius centered on the body
// origin, made of two half circle edges.
func MakeBall(radius float64, name string, settings Settings) (*Polygon, error) {
	p, err := NewPolygonWithSettings(name, settings)
	if err != nil {
		return nil, err
	}
	if !isFinite(radius) || radius <= 0 {
		return nil, p.failf("MakeBall", ErrZeroLength, "radius %g", radius)
	}
	start, err := p.StartPathAt(r2.Vec{X: radius, Y: 0})
	if err != nil {
		return nil, err
	}
	center := r2.Vec{}
	if _, err := p.AddCircularEdge(r2.Vec{X: -radius, Y: 0}, center, false); err != nil {
		return nil, err
	}
	if _, err := p.AddEdge(MakeCircularEdge(p.M_lastOpenVertex, start, center, false)); err != nil {
		return nil, err
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return p, nil
}

// MakePolygonFromPoints returns a finished body with straight edges through
// the given points, which must wind counter-clockwise.
func MakePolygonFromPoints(points []r2.Vec, name string, settings Settings) (*Polygon, error) {
	p, err := NewPolygonWithSettings(name, settings)
	if err != nil {
		return nil, err
	}
	if len(points) < 3 {
		return nil, p.failf("MakePolygonFromPoints", ErrPathNotClosed, "%d points", len(points))
	}
	if err := p.addStraightLoop(points); err != nil {
		return nil, err
	}
	return p, nil
}

// MakeRegularPolygon returns a finished regular polygon with n corners on a
// circle of the given radius, the first corner straight down.
func MakeRegularPolygon(n int, radius float64, name string, settings Settings) (*Polygon, error) {
	if n < 3 {
		return MakePolygonFromPoints(nil, name, settings)
	}
	points := make([]r2.Vec, n)
	for i := range points {
		points[i] = vecFromAngle(radius, -math.Pi/2+2*math.Pi*float64(i)/float64(n))
	}
	return MakePolygonFromPoints(points, name, settings)
}

func (p *Polygon) addStraightLoop(points []r2.Vec) error {
	start, err := p.StartPathAt(points[0])
	if err != nil {
		return err
	}
	for _, pt := range points[1:] {
		if _, err := p.AddStraightEdge(pt); err != nil {
			return err
		}
	}
	if _, err := p.AddEdge(MakeStraightEdge(p.M_lastOpenVertex, start)); err != nil {
		return err
	}
	return p.Finish()
}
