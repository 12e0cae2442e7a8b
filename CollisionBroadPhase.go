package rigid2d

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// ProximityTest reports whether two bodies can be touching: their centroid
// circles, grown by how far each body moved since its old coordinates were
// saved and by swellage, overlap. Squared distances avoid square roots.
// A body with a special edge is instead tested along the normal of that edge.
func ProximityTest(a, b *Polygon, swellage float64) (bool, error) {
	ca, err := a.GetCentroidWorld()
	if err != nil {
		return false, err
	}
	cb, err := b.GetCentroidWorld()
	if err != nil {
		return false, err
	}
	travel := a.MaxTravel() + b.MaxTravel() + swellage

	if a.HasSpecialEdge() {
		n, _ := a.GetSpecialNormalWorld()
		return r2.Dot(r2.Sub(cb, ca), n) < a.getSpecialRadius()+b.M_centroidRadius+travel, nil
	}
	if b.HasSpecialEdge() {
		n, _ := b.GetSpecialNormalWorld()
		return r2.Dot(r2.Sub(ca, cb), n) < b.getSpecialRadius()+a.M_centroidRadius+travel, nil
	}
	r := a.M_centroidRadius + b.M_centroidRadius + travel
	return vecDistanceSquared(ca, cb) < r*r, nil
}

type BroadPhaseAddPairCallback func(bodyA *Polygon, bodyB *Polygon)

type BodyPair struct {
	BodyA int
	BodyB int
}

// BroadPhase finds the pairs of bodies that pass the proximity test and hands
// them to the exact collision test.
type BroadPhase struct {
	M_bodies []*Polygon

	M_pairBuffer   []BodyPair
	M_pairCapacity int
	M_pairCount    int

	M_swellage float64
}

func MakeBroadPhase() BroadPhase {
	pairCapacity := 16

	return BroadPhase{
		M_pairCapacity: pairCapacity,
		M_pairCount:    0,
		M_pairBuffer:   make([]BodyPair, pairCapacity),
	}
}

func NewBroadPhase() *BroadPhase {
	res := MakeBroadPhase()
	return &res
}

func (bp *BroadPhase) AddBody(body *Polygon) {
	bp.M_bodies = append(bp.M_bodies, body)
}

func (bp *BroadPhase) RemoveBody(body *Polygon) {
	for i, b := range bp.M_bodies {
		if b == body {
			bp.M_bodies = append(bp.M_bodies[:i], bp.M_bodies[i+1:]...)
			return
		}
	}
}

func (bp BroadPhase) GetBodies() []*Polygon {
	return bp.M_bodies
}

func (bp BroadPhase) GetBodyCount() int {
	return len(bp.M_bodies)
}

// Number of pairs found by the last UpdatePairs.
func (bp BroadPhase) GetPairCount() int {
	return bp.M_pairCount
}

// SetSwellage grows every proximity circle by the given distance.
func (bp *BroadPhase) SetSwellage(swellage float64) {
	bp.M_swellage = swellage
}

func (bp *BroadPhase) bufferPair(a, b int) {
	// Grow the pair buffer as needed.
	if bp.M_pairCount == bp.M_pairCapacity {
		bp.M_pairBuffer = append(bp.M_pairBuffer, make([]BodyPair, bp.M_pairCapacity)...)
		bp.M_pairCapacity *= 2
	}

	bp.M_pairBuffer[bp.M_pairCount] = BodyPair{BodyA: a, BodyB: b}
	bp.M_pairCount++
}

// UpdatePairs collects the body pairs that are not excluded by a whole-body
// non-collide relation in either direction and pass ProximityTest, then calls
// addPairCallback for each.
func (bp *BroadPhase) UpdatePairs(addPairCallback BroadPhaseAddPairCallback) error {
	// Reset pair buffer
	bp.M_pairCount = 0

	for i := 0; i < len(bp.M_bodies); i++ {
		a := bp.M_bodies[i]
		for j := i + 1; j < len(bp.M_bodies); j++ {
			b := bp.M_bodies[j]
			if a.DoesNotCollide(b) || b.DoesNotCollide(a) {
				continue
			}
			near, err := ProximityTest(a, b, bp.M_swellage)
			if err != nil {
				return err
			}
			if near {
				bp.bufferPair(i, j)
			}
		}
	}

	// Send pairs to caller
	for i := 0; i < bp.M_pairCount; i++ {
		pair := bp.M_pairBuffer[i]
		addPairCallback(bp.M_bodies[pair.BodyA], bp.M_bodies[pair.BodyB])
	}
	return nil
}

// FindCollisions runs CheckCollision in both directions on every pair found by
// UpdatePairs.
func (bp *BroadPhase) FindCollisions(time float64) ([]RigidBodyCollision, error) {
	var collisions []RigidBodyCollision
	var errs []error
	err := bp.UpdatePairs(func(a, b *Polygon) {
		errs = append(errs, a.CheckCollision(&collisions, b, time))
		errs = append(errs, b.CheckCollision(&collisions, a, time))
	})
	if err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return collisions, nil
}
