package rigid2d

// EdgeRef names one edge of one body.
type EdgeRef struct {
	Body  *Polygon
	Index int
}

// An EdgeSet is a set of edges, possibly of several bodies.
type EdgeSet interface {
	Contains(edge EdgeRef) bool
}

// EdgeRange holds the edges of one body with index in [From, To].
type EdgeRange struct {
	M_body *Polygon
	M_from int
	M_to   int
}

func MakeEdgeRange(body *Polygon, from, to int) (EdgeRange, error) {
	if from < 0 || to >= len(body.M_edges) || from > to {
		return EdgeRange{}, body.failf("MakeEdgeRange", ErrEdgeIndex, "[%d, %d] of %d", from, to, len(body.M_edges))
	}
	return EdgeRange{M_body: body, M_from: from, M_to: to}, nil
}

// EdgeRangeAll holds every edge of body.
func EdgeRangeAll(body *Polygon) EdgeRange {
	return EdgeRange{M_body: body, M_from: 0, M_to: len(body.M_edges) - 1}
}

func (r EdgeRange) Contains(edge EdgeRef) bool {
	return edge.Body == r.M_body && edge.Index >= r.M_from && edge.Index <= r.M_to
}

// EdgeGroup is the union of several edge sets.
type EdgeGroup []EdgeSet

func (g EdgeGroup) Contains(edge EdgeRef) bool {
	for _, s := range g {
		if s.Contains(edge) {
			return true
		}
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Non-collide relationships of a Polygon
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// AddNonCollide records bodies this body does not collide with. The relation
// is not made symmetric; callers check both directions.
func (p *Polygon) AddNonCollide(bodies ...*Polygon) {
	for _, b := range bodies {
		if b == nil || p.DoesNotCollide(b) {
			continue
		}
		p.M_nonCollideBodies = append(p.M_nonCollideBodies, b)
	}
}

func (p *Polygon) RemoveNonCollide(bodies ...*Polygon) {
	for _, b := range bodies {
		for i, nb := range p.M_nonCollideBodies {
			if nb == b {
				p.M_nonCollideBodies = append(p.M_nonCollideBodies[:i], p.M_nonCollideBodies[i+1:]...)
				break
			}
		}
	}
}

func (p *Polygon) DoesNotCollide(body *Polygon) bool {
	for _, b := range p.M_nonCollideBodies {
		if b == body {
			return true
		}
	}
	return false
}

// SetNonCollideEdge declares that no edge of this body collides with any edge
// in set. Replaces any earlier set; nil removes it.
func (p *Polygon) SetNonCollideEdge(set EdgeSet) {
	p.M_nonCollideEdges = set
}

func (p *Polygon) GetNonCollideEdge() EdgeSet {
	return p.M_nonCollideEdges
}

// NonCollideEdge reports whether edge cannot collide with this body, which is
// the case for a missing edge and for edges in the non-collide set.
func (p *Polygon) NonCollideEdge(edge EdgeRef) bool {
	if edge.Body == nil || edge.Index == E_nullIndex {
		return true
	}
	if p.M_nonCollideEdges == nil {
		return false
	}
	return p.M_nonCollideEdges.Contains(edge)
}
