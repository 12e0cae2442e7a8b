package rigid2d

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

/// Paths are built one edge at a time. A path starts at a vertex, each edge
/// must start where the previous one ended, and the path is closed either by
/// an edge that ends on the start vertex or by ClosePath, which merges a last
/// vertex lying on top of the start vertex.
/// @warning the polygon will not collide properly if paths self-intersect.

// NewVertex creates an end point vertex that is not yet part of any path and
// returns its id.
func (p *Polygon) NewVertex(locBody r2.Vec) (int, error) {
	if p.M_finished {
		return E_nullIndex, p.fail("NewVertex", ErrFinished)
	}
	if !vecIsValid(locBody) {
		return E_nullIndex, p.failf("NewVertex", ErrNonFinite, "(%g, %g)", locBody.X, locBody.Y)
	}
	return p.newVertex(locBody, true), nil
}

func (p *Polygon) newVertex(locBody r2.Vec, endPoint bool) int {
	id := len(p.M_vertexArena)
	p.M_vertexArena = append(p.M_vertexArena, MakeVertex(id, locBody, endPoint))
	return id
}

// StartPath opens a new path at an existing vertex.
func (p *Polygon) StartPath(vertex int) error {
	if p.M_finished {
		return p.fail("StartPath", ErrFinished)
	}
	if p.M_startVertex != E_nullIndex {
		return p.fail("StartPath", ErrPathOpen)
	}
	if vertex < 0 || vertex >= len(p.M_vertexArena) {
		return p.failf("StartPath", ErrVertexIndex, "%d", vertex)
	}
	if !p.M_vertexArena[vertex].isFree() {
		return p.failf("StartPath", ErrVertexMismatch, "vertex %d is already part of a path", vertex)
	}
	p.M_startVertex = vertex
	p.M_lastOpenVertex = vertex
	p.M_vertices = append(p.M_vertices, vertex)
	return nil
}

// StartPathAt creates a vertex at locBody and opens a path there.
func (p *Polygon) StartPathAt(locBody r2.Vec) (int, error) {
	if p.M_startVertex != E_nullIndex && !p.M_finished {
		return E_nullIndex, p.fail("StartPath", ErrPathOpen)
	}
	v, err := p.NewVertex(locBody)
	if err != nil {
		return E_nullIndex, err
	}
	return v, p.StartPath(v)
}

// StartPathWithEdge opens a path at the first vertex of the edge and adds the
// edge. Returns the index of the edge.
func (p *Polygon) StartPathWithEdge(edge Edge) (int, error) {
	if err := p.StartPath(edge.M_vertex1); err != nil {
		return E_nullIndex, err
	}
	return p.AddEdge(edge)
}

// AddEdge appends an edge to the open path and returns its index, which is the
// stable id of the edge. The edge must start at the last vertex of the open
// path. If the edge ends at the start vertex the path is closed.
func (p *Polygon) AddEdge(edge Edge) (int, error) {
	if p.M_finished {
		return E_nullIndex, p.fail("AddEdge", ErrFinished)
	}
	if p.M_startVertex == E_nullIndex {
		return E_nullIndex, p.fail("AddEdge", ErrNoOpenPath)
	}
	if edge.M_vertex1 != p.M_lastOpenVertex {
		return E_nullIndex, p.failf("AddEdge", ErrVertexMismatch,
			"edge starts at vertex %d, path ends at vertex %d", edge.M_vertex1, p.M_lastOpenVertex)
	}
	if edge.M_vertex2 < 0 || edge.M_vertex2 >= len(p.M_vertexArena) {
		return E_nullIndex, p.failf("AddEdge", ErrVertexIndex, "%d", edge.M_vertex2)
	}
	v2 := p.M_vertexArena[edge.M_vertex2]
	closing := edge.M_vertex2 == p.M_startVertex
	if !closing && !v2.isFree() {
		return E_nullIndex, p.failf("AddEdge", ErrVertexMismatch, "vertex %d is already part of a path", edge.M_vertex2)
	}

	decorated, err := edge.initialize(p.M_vertexArena[edge.M_vertex1].M_locBody, v2.M_locBody, p.M_settings.CurveSpacing)
	if err != nil {
		return E_nullIndex, p.fail("AddEdge", fmt.Errorf("%w (edge v%d->v%d)", err, edge.M_vertex1, edge.M_vertex2))
	}

	index := len(p.M_edges)
	edge.M_index = index
	edge.M_decorated = make([]int, 0, len(decorated))
	for _, loc := range decorated {
		id := p.newVertex(loc, false)
		p.M_vertexArena[id].M_edge1 = index
		p.M_vertexArena[id].M_edge2 = index
		edge.M_decorated = append(edge.M_decorated, id)
		p.M_vertices = append(p.M_vertices, id)
	}
	p.M_edges = append(p.M_edges, edge)
	p.M_vertexArena[edge.M_vertex1].M_edge2 = index
	p.M_vertexArena[edge.M_vertex2].M_edge1 = index

	if closing {
		p.closeOpenPath()
	} else {
		p.M_vertices = append(p.M_vertices, edge.M_vertex2)
		p.M_lastOpenVertex = edge.M_vertex2
	}
	return index, nil
}

// AddStraightEdge adds a straight edge from the end of the open path to a new
// vertex at endBody.
func (p *Polygon) AddStraightEdge(endBody r2.Vec) (int, error) {
	if err := p.checkOpenPath("AddEdge"); err != nil {
		return E_nullIndex, err
	}
	v, err := p.NewVertex(endBody)
	if err != nil {
		return E_nullIndex, err
	}
	return p.AddEdge(MakeStraightEdge(p.M_lastOpenVertex, v))
}

// AddCircularEdge adds an arc around centerBody from the end of the open path
// to a new vertex at endBody.
func (p *Polygon) AddCircularEdge(endBody, centerBody r2.Vec, clockwise bool) (int, error) {
	if err := p.checkOpenPath("AddEdge"); err != nil {
		return E_nullIndex, err
	}
	v, err := p.NewVertex(endBody)
	if err != nil {
		return E_nullIndex, err
	}
	return p.AddEdge(MakeCircularEdge(p.M_lastOpenVertex, v, centerBody, clockwise))
}

func (p *Polygon) checkOpenPath(op string) error {
	if p.M_finished {
		return p.fail(op, ErrFinished)
	}
	if p.M_startVertex == E_nullIndex {
		return p.fail(op, ErrNoOpenPath)
	}
	return nil
}

// ClosePath closes the open path. When the last vertex is not the start vertex
// the two are merged, which requires them to be within VertexMergeTol.
func (p *Polygon) ClosePath() error {
	if err := p.checkOpenPath("ClosePath"); err != nil {
		return err
	}
	start := p.M_startVertex
	last := p.M_lastOpenVertex
	if last == start {
		return p.failf("ClosePath", ErrPathNotClosed, "path at vertex %d has no edges", start)
	}
	startLoc := p.M_vertexArena[start].M_locBody
	lastLoc := p.M_vertexArena[last].M_locBody
	if d := vecDistance(startLoc, lastLoc); d > VertexMergeTol {
		return p.failf("ClosePath", ErrVertexDistance,
			"vertex %d (%g, %g) is %g from start vertex %d (%g, %g)",
			last, lastLoc.X, lastLoc.Y, d, start, startLoc.X, startLoc.Y)
	}

	// Splice the last edge onto the start vertex and drop the duplicate.
	lastEdge := p.M_vertexArena[last].M_edge1
	rbAssert(lastEdge != E_nullIndex)
	e := &p.M_edges[lastEdge]
	e.M_vertex2 = start
	e.M_v2Body = startLoc
	if e.M_type == Edge_Type.E_straight {
		e.initializeStraight()
	}
	p.M_vertexArena[start].M_edge1 = lastEdge
	p.M_vertexArena[last].M_edge1 = E_nullIndex
	p.M_vertexArena[last].M_retired = true
	rbAssert(p.M_vertices[len(p.M_vertices)-1] == last)
	p.M_vertices = p.M_vertices[:len(p.M_vertices)-1]

	p.closeOpenPath()
	return nil
}

func (p *Polygon) closeOpenPath() {
	p.M_paths = append(p.M_paths, p.M_startVertex)
	p.M_startVertex = E_nullIndex
	p.M_lastOpenVertex = E_nullIndex
}

// Whether a path is currently open.
func (p *Polygon) IsPathOpen() bool {
	return p.M_startVertex != E_nullIndex
}

func (p *Polygon) GetStartVertex() int {
	return p.M_startVertex
}

func (p *Polygon) GetLastOpenVertex() int {
	return p.M_lastOpenVertex
}

// checkPaths verifies that every path is a closed cycle.
func (p *Polygon) checkPaths() error {
	for _, start := range p.M_paths {
		v := start
		for count := 0; ; count++ {
			if count > len(p.M_edges) {
				return p.failf("Finish", ErrPathNotClosed, "path at vertex %d does not return to its start", start)
			}
			e := p.M_vertexArena[v].M_edge2
			if e == E_nullIndex {
				return p.failf("Finish", ErrPathNotClosed, "vertex %d has no next edge", v)
			}
			rbAssert(p.M_edges[e].M_vertex1 == v)
			v = p.M_edges[e].M_vertex2
			if v == start {
				break
			}
		}
	}
	return nil
}

// pathPoints lists the body locations around the path that starts at start,
// decorated vertices included, without repeating the start.
func (p *Polygon) pathPoints(start int) []r2.Vec {
	var pts []r2.Vec
	v := start
	for {
		e := &p.M_edges[p.M_vertexArena[v].M_edge2]
		pts = append(pts, p.M_vertexArena[v].M_locBody)
		for _, d := range e.M_decorated {
			pts = append(pts, p.M_vertexArena[d].M_locBody)
		}
		v = e.M_vertex2
		if v == start {
			return pts
		}
	}
}
