package rigid2d

import (
	"gonum.org/v1/gonum/spatial/r2"
)

/// A long thin body such as a wall has a centroid circle far larger than its
/// footprint. Marking one edge of a rectangular body as special makes that
/// edge the only one taking part in proximity tests: it gets the given
/// centroid radius, the other three edges get zero, and proximity to the body
/// is measured along the outward normal of the special edge.
/// @warning the other edges no longer stop bodies from passing through them.

// SetSpecialEdge designates edge as the special edge of this 4 edge body.
// The radius is usually half the thickness of the body.
func (p *Polygon) SetSpecialEdge(edge int, radius float64) error {
	if err := p.checkFinished("SetSpecialEdge"); err != nil {
		return err
	}
	if len(p.M_edges) != 4 {
		return p.failf("SetSpecialEdge", ErrNotRectangle, "body has %d edges", len(p.M_edges))
	}
	if edge < 0 || edge >= len(p.M_edges) {
		return p.failf("SetSpecialEdge", ErrEdgeIndex, "%d of %d", edge, len(p.M_edges))
	}
	if !p.M_edges[edge].IsStraight() {
		return p.failf("SetSpecialEdge", ErrNotRectangle, "edge %d is not straight", edge)
	}
	if !isFinite(radius) || radius < 0 {
		return p.failf("SetSpecialEdge", ErrNonFinite, "radius %g", radius)
	}
	for i := range p.M_edges {
		if i == edge {
			p.M_edges[i].SetCentroidRadius(radius)
		} else {
			p.M_edges[i].SetCentroidRadius(0)
		}
	}
	p.M_specialEdge = edge
	p.M_specialNormalWorld = nil
	logger.Debug("special edge", "body", p.M_name, "edge", edge, "radius", radius)
	return nil
}

// GetSpecialEdge returns the index of the special edge or E_nullIndex.
func (p *Polygon) GetSpecialEdge() int {
	return p.M_specialEdge
}

func (p *Polygon) HasSpecialEdge() bool {
	return p.M_specialEdge != E_nullIndex
}

// GetSpecialNormalWorld returns the outward unit normal of the special edge in
// world coordinates. The second result is false when there is no special edge.
func (p *Polygon) GetSpecialNormalWorld() (r2.Vec, bool) {
	if p.M_specialEdge == E_nullIndex {
		return r2.Vec{}, false
	}
	if p.M_specialNormalWorld == nil {
		n := r2.Unit(p.M_coords.RotateBodyToWorld(p.M_edges[p.M_specialEdge].M_normalBody))
		p.M_specialNormalWorld = &n
	}
	return *p.M_specialNormalWorld, true
}

func (p *Polygon) getSpecialRadius() float64 {
	return p.M_edges[p.M_specialEdge].M_centroidRadius
}
