package rigid2d

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// A Vertex is a point on the boundary of a Polygon, in body coordinates.
// End points are the corners given during construction; mid points are the
// decorated vertices sampled along circular edges.
//
// Edges are referenced by their index in the owning Polygon, E_nullIndex
// meaning "not connected yet".
type Vertex struct {
	M_id       int
	M_locBody  r2.Vec
	M_endPoint bool
	M_edge1    int // previous edge, which ends here
	M_edge2    int // next edge, which starts here

	// Set on the duplicate end vertex dropped when a path is closed.
	M_retired bool
}

func MakeVertex(id int, locBody r2.Vec, endPoint bool) Vertex {
	return Vertex{
		M_id:       id,
		M_locBody:  locBody,
		M_endPoint: endPoint,
		M_edge1:    E_nullIndex,
		M_edge2:    E_nullIndex,
	}
}

func (v Vertex) GetID() int {
	return v.M_id
}

func (v Vertex) LocBody() r2.Vec {
	return v.M_locBody
}

func (v Vertex) IsEndPoint() bool {
	return v.M_endPoint
}

// isFree reports whether a path may start or end at the vertex.
func (v Vertex) isFree() bool {
	return !v.M_retired && v.M_endPoint && v.M_edge1 == E_nullIndex && v.M_edge2 == E_nullIndex
}

// Edge1 returns the previous edge.
func (v Vertex) Edge1() (int, error) {
	if v.M_edge1 == E_nullIndex {
		return E_nullIndex, fmt.Errorf("vertex %d has no previous edge", v.M_id)
	}
	return v.M_edge1, nil
}

// Edge2 returns the next edge.
func (v Vertex) Edge2() (int, error) {
	if v.M_edge2 == E_nullIndex {
		return E_nullIndex, fmt.Errorf("vertex %d has no next edge", v.M_id)
	}
	return v.M_edge2, nil
}

// SafeGetEdge2 returns the next edge or E_nullIndex.
func (v Vertex) SafeGetEdge2() int {
	return v.M_edge2
}

func (v Vertex) String() string {
	kind := "mid"
	if v.M_endPoint {
		kind = "end"
	}
	return fmt.Sprintf("Vertex{id: %d, %s, (%g, %g), e1: %d, e2: %d}",
		v.M_id, kind, v.M_locBody.X, v.M_locBody.Y, v.M_edge1, v.M_edge2)
}
