package rigid2d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var Edge_Type = struct {
	E_straight uint8
	E_circular uint8
}{
	E_straight: 0,
	E_circular: 1,
}

/// An Edge is one piece of the boundary of a Polygon, running from vertex1 to
/// vertex2. The interior of the body is to the left of the direction of travel,
/// so the outward normal of a straight edge points to the right.
/// Vertices are referenced by their id in the owning Polygon; the body
/// locations of the endpoints are copied in when the edge is added.
type Edge struct {
	M_type  uint8
	M_index int

	M_vertex1 int
	M_vertex2 int
	M_v1Body  r2.Vec
	M_v2Body  r2.Vec

	// Straight edges.
	M_normalBody r2.Vec

	// Circular edges. The arc covers the counter-clockwise angular range
	// [M_angleStart, M_angleStart+M_angleSpan] around M_center.
	M_center     r2.Vec
	M_radius     float64
	M_clockwise  bool
	M_angleStart float64
	M_angleSpan  float64
	M_decorated  []int

	M_centroidBody   r2.Vec
	M_centroidRadius float64
	M_chordError     float64
	M_bounds         BoundingBox

	// World positions, valid until ForgetPosition.
	M_worldValid    bool
	M_v1World       r2.Vec
	M_v2World       r2.Vec
	M_centerWorld   r2.Vec
	M_centroidWorld r2.Vec
}

func MakeStraightEdge(vertex1, vertex2 int) Edge {
	return Edge{
		M_type:    Edge_Type.E_straight,
		M_index:   E_nullIndex,
		M_vertex1: vertex1,
		M_vertex2: vertex2,
	}
}

// A counter-clockwise arc is convex: the outside of the body is away from the
// center. A clockwise arc is concave.
func MakeCircularEdge(vertex1, vertex2 int, center r2.Vec, clockwise bool) Edge {
	return Edge{
		M_type:      Edge_Type.E_circular,
		M_index:     E_nullIndex,
		M_vertex1:   vertex1,
		M_vertex2:   vertex2,
		M_center:    center,
		M_clockwise: clockwise,
	}
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Geometry shared by both variants
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// initialize computes the shape parameters from the endpoint locations and
// returns the locations of the decorated vertices to create, in travel order.
func (e *Edge) initialize(v1Body, v2Body r2.Vec, curveSpacing float64) ([]r2.Vec, error) {
	if !vecIsValid(v1Body) || !vecIsValid(v2Body) {
		return nil, ErrNonFinite
	}
	if e.M_vertex1 == e.M_vertex2 || vecDistanceSquared(v1Body, v2Body) == 0 {
		return nil, ErrZeroLength
	}
	e.M_v1Body = v1Body
	e.M_v2Body = v2Body
	e.M_worldValid = false

	switch e.M_type {
	case Edge_Type.E_straight:
		e.initializeStraight()
		return nil, nil
	case Edge_Type.E_circular:
		return e.initializeCircular(curveSpacing)
	}
	return nil, fmt.Errorf("unknown edge type %d", e.M_type)
}

func (e Edge) GetType() uint8 {
	return e.M_type
}

func (e Edge) IsStraight() bool {
	return e.M_type == Edge_Type.E_straight
}

// Index of this edge in its Polygon, stable once added.
func (e Edge) GetIndex() int {
	return e.M_index
}

func (e Edge) Vertex1() int {
	return e.M_vertex1
}

func (e Edge) Vertex2() int {
	return e.M_vertex2
}

func (e Edge) GetDecoratedVertexes() []int {
	return e.M_decorated
}

func (e Edge) GetLeftBody() float64   { return e.M_bounds.GetLeft() }
func (e Edge) GetRightBody() float64  { return e.M_bounds.GetRight() }
func (e Edge) GetBottomBody() float64 { return e.M_bounds.GetBottom() }
func (e Edge) GetTopBody() float64    { return e.M_bounds.GetTop() }

func (e Edge) GetBoundsBody() BoundingBox {
	return e.M_bounds
}

func (e Edge) GetCentroidBody() r2.Vec {
	return e.M_centroidBody
}

func (e Edge) GetCentroidRadius() float64 {
	return e.M_centroidRadius
}

// SetCentroidRadius overrides the proximity radius of this edge. Used by the
// special edge mode; zero makes the edge inert for proximity tests.
func (e *Edge) SetCentroidRadius(r float64) {
	e.M_centroidRadius = r
}

// Largest distance between the true curve and the chords between its
// decorated vertices. Zero for straight edges.
func (e Edge) GetChordError() float64 {
	return e.M_chordError
}

// DistanceToPoint returns the signed distance from the edge to a point in body
// coordinates, positive outside the body. Returns +Inf when the point is not
// in the region perpendicular to the edge.
func (e Edge) DistanceToPoint(pBody r2.Vec) float64 {
	switch e.M_type {
	case Edge_Type.E_straight:
		return e.straightDistanceToPoint(pBody)
	case Edge_Type.E_circular:
		return e.circularDistanceToPoint(pBody)
	}
	return math.Inf(1)
}

// Outward unit normal at the point of the edge nearest to pBody.
func (e Edge) GetNormalBody(pBody r2.Vec) r2.Vec {
	switch e.M_type {
	case Edge_Type.E_circular:
		return e.circularNormalBody(pBody)
	}
	return e.M_normalBody
}

// ForgetPosition drops the cached world positions.
func (e *Edge) ForgetPosition() {
	e.M_worldValid = false
}

func (e *Edge) updateWorld(coords *LocalCoords) {
	if e.M_worldValid {
		return
	}
	e.M_v1World = coords.BodyToWorld(e.M_v1Body)
	e.M_v2World = coords.BodyToWorld(e.M_v2Body)
	e.M_centroidWorld = coords.BodyToWorld(e.M_centroidBody)
	if e.M_type == Edge_Type.E_circular {
		e.M_centerWorld = coords.BodyToWorld(e.M_center)
	}
	e.M_worldValid = true
}

func (e Edge) String() string {
	switch e.M_type {
	case Edge_Type.E_circular:
		dir := "ccw"
		if e.M_clockwise {
			dir = "cw"
		}
		return fmt.Sprintf("CircularEdge{%d: v%d->v%d, center (%g, %g), r %g, %s}",
			e.M_index, e.M_vertex1, e.M_vertex2, e.M_center.X, e.M_center.Y, e.M_radius, dir)
	}
	return fmt.Sprintf("StraightEdge{%d: v%d->v%d, (%g, %g)->(%g, %g)}",
		e.M_index, e.M_vertex1, e.M_vertex2, e.M_v1Body.X, e.M_v1Body.Y, e.M_v2Body.X, e.M_v2Body.Y)
}
