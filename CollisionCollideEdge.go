package rigid2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CheckCollision appends to collisions every collision candidate between an
// edge of this body and an edge of other. Edge pairs excluded by either
// body's non-collide edge set are skipped. Vertex in edge tests only look at
// vertices of other, so callers also run other.CheckCollision(.., p, ..).
func (p *Polygon) CheckCollision(collisions *[]RigidBodyCollision, other *Polygon, time float64) error {
	if err := p.checkFinished("CheckCollision"); err != nil {
		return err
	}
	if err := other.checkFinished("CheckCollision"); err != nil {
		return err
	}
	tol := p.M_settings.DistanceTol + p.M_settings.MaxPenetration
	for i := range p.M_edges {
		if other.NonCollideEdge(EdgeRef{Body: p, Index: i}) {
			continue
		}
		for j := range other.M_edges {
			if p.NonCollideEdge(EdgeRef{Body: other, Index: j}) {
				continue
			}
			if p.M_settings.UseIntersectionPossible && !IntersectionPossible(p, i, other, j, tol) {
				continue
			}
			TestCollisionEdge(collisions, p, i, other, j, time)
		}
	}
	return nil
}

// IntersectionPossible is a cheap test on the centroid circles of two edges.
// A special edge is tested along its normal only.
func IntersectionPossible(body1 *Polygon, edge1 int, body2 *Polygon, edge2 int, tol float64) bool {
	e1 := &body1.M_edges[edge1]
	e2 := &body2.M_edges[edge2]
	e1.updateWorld(&body1.M_coords)
	e2.updateWorld(&body2.M_coords)
	r := e1.M_centroidRadius + e2.M_centroidRadius + tol
	d := r2.Sub(e2.M_centroidWorld, e1.M_centroidWorld)
	if edge1 == body1.M_specialEdge {
		n, _ := body1.GetSpecialNormalWorld()
		return math.Abs(r2.Dot(d, n)) < r
	}
	if edge2 == body2.M_specialEdge {
		n, _ := body2.GetSpecialNormalWorld()
		return math.Abs(r2.Dot(d, n)) < r
	}
	return r2.Norm2(d) < r*r
}

// TestCollisionEdge runs the exact tests between edge1 of body1 and edge2 of
// body2: every crossing of the two edges, and every vertex of edge2 (its start
// vertex and decorated vertices) that is near or behind edge1.
func TestCollisionEdge(collisions *[]RigidBodyCollision, body1 *Polygon, edge1 int, body2 *Polygon, edge2 int, time float64) {
	e1 := &body1.M_edges[edge1]
	e2 := &body2.M_edges[edge2]
	e1.updateWorld(&body1.M_coords)
	e2.updateWorld(&body2.M_coords)

	for _, pt := range edgeCrossings(body1, e1, body2, e2) {
		normal := body2.RotateBodyToWorld(e2.GetNormalBody(body2.WorldToBody(pt)))
		*collisions = append(*collisions, RigidBodyCollision{
			Type:          Collision_Type.E_edgeEdge,
			PrimaryBody:   body1,
			NormalBody:    body2,
			PrimaryEdge:   edge1,
			NormalEdge:    edge2,
			PrimaryVertex: E_nullIndex,
			ImpactWorld:   pt,
			NormalWorld:   normal,
			Distance:      crossingDepth(body2, e2, e1),
			Time:          time,
		})
	}

	testVertexEdge(collisions, body1, edge1, body2, edge2, e2.M_vertex1, time)
	for _, v := range e2.M_decorated {
		testVertexEdge(collisions, body1, edge1, body2, edge2, v, time)
	}
}

func testVertexEdge(collisions *[]RigidBodyCollision, body1 *Polygon, edge1 int, body2 *Polygon, edge2 int, vertex int, time float64) {
	s := body1.M_settings
	e1 := &body1.M_edges[edge1]
	pw := body2.BodyToWorld(body2.M_vertexArena[vertex].M_locBody)
	pb := body1.WorldToBody(pw)
	d := e1.DistanceToPoint(pb)
	if math.IsInf(d, 1) || d >= s.DistanceTol || d <= -s.MaxPenetration {
		return
	}
	*collisions = append(*collisions, RigidBodyCollision{
		Type:          Collision_Type.E_vertexEdge,
		PrimaryBody:   body2,
		NormalBody:    body1,
		PrimaryEdge:   edge2,
		NormalEdge:    edge1,
		PrimaryVertex: vertex,
		ImpactWorld:   pw,
		NormalWorld:   body1.RotateBodyToWorld(e1.GetNormalBody(pb)),
		Distance:      d,
		Time:          time,
	})
}

// edgeCrossings returns the world points where two edges cross. The world
// positions of both edges must be up to date.
func edgeCrossings(body1 *Polygon, e1 *Edge, body2 *Polygon, e2 *Edge) []r2.Vec {
	switch {
	case e1.IsStraight() && e2.IsStraight():
		if pt, ok := segmentIntersection(e1.M_v1World, e1.M_v2World, e2.M_v1World, e2.M_v2World); ok {
			return []r2.Vec{pt}
		}
		return nil
	case e1.IsStraight():
		return onArc(body2, e2, segmentCircleIntersection(e1.M_v1World, e1.M_v2World, e2.M_centerWorld, e2.M_radius))
	case e2.IsStraight():
		return onArc(body1, e1, segmentCircleIntersection(e2.M_v1World, e2.M_v2World, e1.M_centerWorld, e1.M_radius))
	}
	pts := circleCircleIntersection(e1.M_centerWorld, e1.M_radius, e2.M_centerWorld, e2.M_radius)
	return onArc(body2, e2, onArc(body1, e1, pts))
}

// onArc keeps the world points that lie within the angular range of the arc.
func onArc(body *Polygon, e *Edge, pts []r2.Vec) []r2.Vec {
	res := pts[:0]
	for _, pt := range pts {
		if e.containsAngle(vecAngle(r2.Sub(body.WorldToBody(pt), e.M_center))) {
			res = append(res, pt)
		}
	}
	return res
}

// crossingDepth estimates how far edge e crosses behind edge n of body: the
// deepest endpoint of e, never positive.
func crossingDepth(body *Polygon, n *Edge, e *Edge) float64 {
	depth := 0.0
	for _, pw := range [2]r2.Vec{e.M_v1World, e.M_v2World} {
		d := n.DistanceToPoint(body.WorldToBody(pw))
		if !math.IsInf(d, 1) && d < depth {
			depth = d
		}
	}
	return depth
}
