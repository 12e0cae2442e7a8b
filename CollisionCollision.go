package rigid2d

import (
	"fmt"

	geor2 "github.com/golang/geo/r2"
	"gonum.org/v1/gonum/spatial/r2"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Collision records
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

var Collision_Type = struct {
	E_edgeEdge   uint8
	E_vertexEdge uint8
}{
	E_edgeEdge:   0,
	E_vertexEdge: 1,
}

// A RigidBodyCollision describes one collision candidate between two bodies.
// The primary body supplies the impacting vertex or edge, the normal body
// supplies the edge whose normal is used.
// -e_edgeEdge: two edges cross at ImpactWorld
// -e_vertexEdge: PrimaryVertex is at signed Distance from NormalEdge
// A negative Distance means the bodies overlap.
type RigidBodyCollision struct {
	Type          uint8
	PrimaryBody   *Polygon
	NormalBody    *Polygon
	PrimaryEdge   int
	NormalEdge    int
	PrimaryVertex int    // E_nullIndex for edge/edge
	ImpactWorld   r2.Vec // world point of impact
	NormalWorld   r2.Vec // unit normal pointing out of the normal body
	Distance      float64
	Time          float64
}

// A contact is a vertex that touches an edge without penetrating it.
func (c RigidBodyCollision) IsContact() bool {
	return c.Type == Collision_Type.E_vertexEdge && c.Distance >= 0
}

func (c RigidBodyCollision) String() string {
	kind := "edge/edge"
	if c.Type == Collision_Type.E_vertexEdge {
		kind = "vertex/edge"
		if c.IsContact() {
			kind = "contact"
		}
	}
	return fmt.Sprintf("%s %s[e%d v%d] %s[e%d] at (%.4g, %.4g) normal (%.4g, %.4g) dist %.4g t %.4g",
		kind,
		bodyName(c.PrimaryBody), c.PrimaryEdge, c.PrimaryVertex,
		bodyName(c.NormalBody), c.NormalEdge,
		c.ImpactWorld.X, c.ImpactWorld.Y,
		c.NormalWorld.X, c.NormalWorld.Y,
		c.Distance, c.Time)
}

func bodyName(p *Polygon) string {
	if p == nil {
		return "<nil>"
	}
	return p.M_name
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Bounding boxes
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// An axis aligned bounding box.
type BoundingBox struct {
	M_rect geor2.Rect
}

func MakeBoundingBox() BoundingBox {
	return BoundingBox{M_rect: geor2.EmptyRect()}
}

func MakeBoundingBoxFromPoints(points ...r2.Vec) BoundingBox {
	bb := MakeBoundingBox()
	for _, p := range points {
		bb.AddPoint(p)
	}
	return bb
}

func (bb *BoundingBox) AddPoint(p r2.Vec) {
	bb.M_rect = bb.M_rect.AddPoint(geor2.Point{X: p.X, Y: p.Y})
}

// Combine a box into this one.
func (bb *BoundingBox) CombineInPlace(other BoundingBox) {
	bb.M_rect = bb.M_rect.AddRect(other.M_rect)
}

func (bb BoundingBox) IsEmpty() bool {
	return bb.M_rect.IsEmpty()
}

func (bb BoundingBox) GetLeft() float64   { return bb.M_rect.X.Lo }
func (bb BoundingBox) GetRight() float64  { return bb.M_rect.X.Hi }
func (bb BoundingBox) GetBottom() float64 { return bb.M_rect.Y.Lo }
func (bb BoundingBox) GetTop() float64    { return bb.M_rect.Y.Hi }

func (bb BoundingBox) GetWidth() float64 {
	return bb.M_rect.X.Length()
}

func (bb BoundingBox) GetHeight() float64 {
	return bb.M_rect.Y.Length()
}

// Get the center of the box.
func (bb BoundingBox) GetCenter() r2.Vec {
	c := bb.M_rect.Center()
	return r2.Vec{X: c.X, Y: c.Y}
}

func (bb BoundingBox) Contains(p r2.Vec) bool {
	return bb.M_rect.ContainsPoint(geor2.Point{X: p.X, Y: p.Y})
}
