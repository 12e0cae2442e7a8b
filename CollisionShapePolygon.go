package rigid2d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r2"
)

// A rigid body whose boundary is made of one or more closed paths of straight
// and circular edges. It is assumed that the interior of the body is to the
// left of each edge.
//
// A Polygon is built with StartPath/AddEdge/ClosePath and then frozen by
// Finish. After that only its position, centroid, special edge, non-collide
// relationships and old coordinates may change.
type Polygon struct {
	M_name     string
	M_settings Settings

	// Every vertex ever created. Edges and paths refer to vertices by their
	// index here.
	M_vertexArena []Vertex

	// Vertices of the polygon in construction order.
	M_vertices []int
	M_edges    []Edge

	// The start vertex of each closed path.
	M_paths []int

	M_startVertex    int
	M_lastOpenVertex int
	M_finished       bool

	M_boundingBox    BoundingBox
	M_centroidBody   *r2.Vec
	M_centroidRadius float64
	M_minHeight      float64

	M_specialEdge        int
	M_specialNormalWorld *r2.Vec

	M_mass       float64
	M_moment     float64 // moment about the center of mass per unit mass
	M_dragPoints []r2.Vec
	M_angle      float64
	M_coords     LocalCoords

	// M_oldCoords points at M_oldCoordsStore while a snapshot exists.
	M_oldCoords      *LocalCoords
	M_oldCoordsStore LocalCoords

	M_nonCollideBodies []*Polygon
	M_nonCollideEdges  EdgeSet
}

func MakePolygon(name string) Polygon {
	return Polygon{
		M_name:           name,
		M_settings:       MakeSettings(),
		M_startVertex:    E_nullIndex,
		M_lastOpenVertex: E_nullIndex,
		M_boundingBox:    MakeBoundingBox(),
		M_minHeight:      math.NaN(),
		M_specialEdge:    E_nullIndex,
		M_mass:           1,
		M_coords:         MakeLocalCoords(),
	}
}

func NewPolygon(name string) *Polygon {
	res := MakePolygon(name)
	return &res
}

func NewPolygonWithSettings(name string, settings Settings) (*Polygon, error) {
	p := NewPolygon(name)
	if err := p.SetSettings(settings); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Polygon) GetName() string {
	return p.M_name
}

func (p *Polygon) GetSettings() Settings {
	return p.M_settings
}

func (p *Polygon) SetSettings(settings Settings) error {
	if !settings.IsValid() {
		return p.failf("SetSettings", ErrSettings, "%+v", settings)
	}
	p.M_settings = settings
	return nil
}

func (p *Polygon) IsFinished() bool {
	return p.M_finished
}

func (p *Polygon) checkFinished(op string) error {
	if !p.M_finished {
		return p.fail(op, ErrNotFinished)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Finish
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// Finish closes any open path, checks that every path is a cycle and computes
// the bounding box, default center of mass, drag points, moment and centroid.
func (p *Polygon) Finish() error {
	if p.M_finished {
		return p.fail("Finish", ErrFinished)
	}
	if p.M_startVertex != E_nullIndex {
		if err := p.ClosePath(); err != nil {
			return err
		}
	}
	if len(p.M_paths) == 0 {
		return p.failf("Finish", ErrPathNotClosed, "no paths")
	}
	if err := p.checkPaths(); err != nil {
		return err
	}

	bb := MakeBoundingBox()
	for i := range p.M_edges {
		bb.CombineInPlace(p.M_edges[i].M_bounds)
	}
	p.M_boundingBox = bb

	w := bb.GetWidth()
	h := bb.GetHeight()
	cm := bb.GetCenter()
	// body and world coordinates coincide until the body is moved
	p.M_coords.M_cmBody = cm
	p.M_coords.M_locWorld = cm
	p.M_dragPoints = []r2.Vec{cm}
	p.M_moment = (w*w + h*h) / 12
	p.M_specialNormalWorld = nil
	p.M_minHeight = math.NaN()
	p.forgetPosition()
	p.M_finished = true

	c, err := p.FindCentroid()
	if err != nil {
		p.M_finished = false
		return err
	}
	p.setCentroid(c)

	logger.Debug("polygon finished",
		"body", p.M_name,
		"paths", len(p.M_paths),
		"edges", len(p.M_edges),
		"vertices", len(p.M_vertices),
		"centroid", fmt.Sprintf("(%.6g, %.6g)", c.X, c.Y),
		"radius", p.M_centroidRadius)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Centroid
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

func (p *Polygon) maxChordError() float64 {
	maxErr := 0.0
	for i := range p.M_edges {
		maxErr = math.Max(maxErr, p.M_edges[i].M_chordError)
	}
	return maxErr
}

// maxRadiusSquared is the square of the radius of the smallest circle around
// center that contains every vertex, inflated by the chord error so that the
// curves between decorated vertices are inside too.
func (p *Polygon) maxRadiusSquared(center r2.Vec, chordError float64) float64 {
	maxDist := 0.0
	for _, v := range p.M_vertices {
		maxDist = math.Max(maxDist, vecDistance(center, p.M_vertexArena[v].M_locBody))
	}
	r := maxDist + chordError
	return r * r
}

// FindCentroid returns the point that approximately minimizes the maximum
// distance to the vertices, the center of a near minimal enclosing circle.
// It runs a Nelder-Mead search from a simplex placed at the center of mass.
func (p *Polygon) FindCentroid() (r2.Vec, error) {
	if err := p.checkFinished("FindCentroid"); err != nil {
		return r2.Vec{}, err
	}
	chordError := p.maxChordError()
	f := func(x []float64) float64 {
		return p.maxRadiusSquared(r2.Vec{X: x[0], Y: x[1]}, chordError)
	}

	dx := CentroidSimplexScale * p.M_boundingBox.GetWidth()
	dy := CentroidSimplexScale * p.M_boundingBox.GetHeight()
	if dx == 0 {
		dx = dy
	}
	if dy == 0 {
		dy = dx
	}
	cm := p.M_coords.M_cmBody
	vertices := [][]float64{
		{cm.X, cm.Y},
		{cm.X + dx, cm.Y},
		{cm.X, cm.Y + dy},
	}
	values := make([]float64, len(vertices))
	for i, v := range vertices {
		values[i] = f(v)
	}

	problem := optimize.Problem{Func: f}
	method := &optimize.NelderMead{
		InitialVertices: vertices,
		InitialValues:   values,
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   CentroidTol,
			Iterations: 20,
		},
		MajorIterations: p.M_settings.CentroidMaxIterations,
	}
	result, err := optimize.Minimize(problem, vertices[0], settings, method)
	if err != nil {
		iterations := 0
		if result != nil {
			iterations = result.MajorIterations
		}
		return r2.Vec{}, p.failf("FindCentroid", ErrCentroid, "after %d iterations: %v", iterations, err)
	}
	// Minimize reports a hit iteration cap as a status, not an error.
	if result.Status == optimize.IterationLimit {
		return r2.Vec{}, p.failf("FindCentroid", ErrCentroid, "no convergence after %d iterations", result.MajorIterations)
	}
	logger.Debug("centroid search", "body", p.M_name, "iterations", result.MajorIterations, "status", result.Status)
	return r2.Vec{X: result.X[0], Y: result.X[1]}, nil
}

// SetCentroid replaces the computed centroid, for example with one known in
// advance, and recomputes the centroid radius around it.
func (p *Polygon) SetCentroid(centroidBody r2.Vec) error {
	if err := p.checkFinished("SetCentroid"); err != nil {
		return err
	}
	if !vecIsValid(centroidBody) {
		return p.failf("SetCentroid", ErrNonFinite, "(%g, %g)", centroidBody.X, centroidBody.Y)
	}
	if p.M_settings.VerifyCentroid {
		c, err := p.FindCentroid()
		if err != nil {
			return err
		}
		if d := vecDistance(c, centroidBody); d > CentroidVerifyTol {
			return p.failf("SetCentroid", ErrCentroidMismatch,
				"(%g, %g) is %g from computed (%g, %g)", centroidBody.X, centroidBody.Y, d, c.X, c.Y)
		}
	}
	p.setCentroid(centroidBody)
	return nil
}

func (p *Polygon) setCentroid(c r2.Vec) {
	p.M_centroidBody = &c
	p.M_centroidRadius = math.Sqrt(p.maxRadiusSquared(c, p.maxChordError()))
}

func (p *Polygon) GetCentroidBody() (r2.Vec, error) {
	if err := p.checkFinished("GetCentroidBody"); err != nil {
		return r2.Vec{}, err
	}
	rbAssert(p.M_centroidBody != nil)
	return *p.M_centroidBody, nil
}

func (p *Polygon) GetCentroidWorld() (r2.Vec, error) {
	c, err := p.GetCentroidBody()
	if err != nil {
		return r2.Vec{}, err
	}
	return p.M_coords.BodyToWorld(c), nil
}

func (p *Polygon) GetCentroidRadius() (float64, error) {
	if err := p.checkFinished("GetCentroidRadius"); err != nil {
		return 0, err
	}
	return p.M_centroidRadius, nil
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Geometry accessors
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// GetVertexes returns the vertices in construction order.
func (p *Polygon) GetVertexes() []Vertex {
	res := make([]Vertex, len(p.M_vertices))
	for i, v := range p.M_vertices {
		res[i] = p.M_vertexArena[v]
	}
	return res
}

func (p *Polygon) GetVertexesBody() []r2.Vec {
	res := make([]r2.Vec, len(p.M_vertices))
	for i, v := range p.M_vertices {
		res[i] = p.M_vertexArena[v].M_locBody
	}
	return res
}

// GetVertex returns the vertex with the given id.
func (p *Polygon) GetVertex(id int) (Vertex, error) {
	if id < 0 || id >= len(p.M_vertexArena) {
		return Vertex{}, p.failf("GetVertex", ErrVertexIndex, "%d", id)
	}
	if p.M_vertexArena[id].M_retired {
		return Vertex{}, p.failf("GetVertex", ErrVertexIndex, "%d was merged away", id)
	}
	return p.M_vertexArena[id], nil
}

// GetEdges returns the edges, indexed by edge id. The slice is shared with
// the polygon.
func (p *Polygon) GetEdges() []Edge {
	return p.M_edges
}

func (p *Polygon) GetEdge(index int) (*Edge, error) {
	if index < 0 || index >= len(p.M_edges) {
		return nil, p.failf("GetEdge", ErrEdgeIndex, "%d of %d", index, len(p.M_edges))
	}
	return &p.M_edges[index], nil
}

// GetPaths returns the start vertex of each path.
func (p *Polygon) GetPaths() []int {
	return p.M_paths
}

func (p *Polygon) GetBoundingBox() (BoundingBox, error) {
	if err := p.checkFinished("GetBoundingBox"); err != nil {
		return BoundingBox{}, err
	}
	return p.M_boundingBox, nil
}

func (p *Polygon) GetWidth() (float64, error) {
	if err := p.checkFinished("GetWidth"); err != nil {
		return 0, err
	}
	return p.M_boundingBox.GetWidth(), nil
}

func (p *Polygon) GetHeight() (float64, error) {
	if err := p.checkFinished("GetHeight"); err != nil {
		return 0, err
	}
	return p.M_boundingBox.GetHeight(), nil
}

// TestPoint reports whether a world point is inside the body, counting
// crossings of the boundary (decorated vertices included) by a ray.
func (p *Polygon) TestPoint(pWorld r2.Vec) (bool, error) {
	if err := p.checkFinished("TestPoint"); err != nil {
		return false, err
	}
	q := p.M_coords.WorldToBody(pWorld)
	inside := false
	for _, start := range p.M_paths {
		pts := p.pathPoints(start)
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y > q.Y) != (b.Y > q.Y) {
				x := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
				if q.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside, nil
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Position, mass
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// SetPosition moves the center of mass to locWorld and sets the angle.
// Changing the angle invalidates the special normal.
func (p *Polygon) SetPosition(locWorld r2.Vec, angle float64) error {
	if err := p.checkFinished("SetPosition"); err != nil {
		return err
	}
	if !vecIsValid(locWorld) || !isFinite(angle) {
		return p.failf("SetPosition", ErrNonFinite, "(%g, %g) angle %g", locWorld.X, locWorld.Y, angle)
	}
	sin, cos := p.M_coords.M_sinAngle, p.M_coords.M_cosAngle
	if angle != p.M_angle {
		p.M_angle = angle
		sin, cos = math.Sincos(angle)
		p.M_specialNormalWorld = nil
	}
	p.M_coords.Set(p.M_coords.M_cmBody, locWorld, sin, cos)
	p.forgetPosition()
	return nil
}

func (p *Polygon) forgetPosition() {
	for i := range p.M_edges {
		p.M_edges[i].ForgetPosition()
	}
}

// World location of the center of mass.
func (p *Polygon) GetPosition() r2.Vec {
	return p.M_coords.M_locWorld
}

func (p *Polygon) GetAngle() float64 {
	return p.M_angle
}

func (p *Polygon) GetLocalCoords() LocalCoords {
	return p.M_coords
}

func (p *Polygon) BodyToWorld(pBody r2.Vec) r2.Vec {
	return p.M_coords.BodyToWorld(pBody)
}

func (p *Polygon) WorldToBody(pWorld r2.Vec) r2.Vec {
	return p.M_coords.WorldToBody(pWorld)
}

func (p *Polygon) RotateBodyToWorld(v r2.Vec) r2.Vec {
	return p.M_coords.RotateBodyToWorld(v)
}

func (p *Polygon) GetCenterOfMassBody() r2.Vec {
	return p.M_coords.M_cmBody
}

// SetCenterOfMass moves the center of mass in body coordinates. The cached
// minimum height is not invalidated; call SetMinHeight(math.NaN()).
func (p *Polygon) SetCenterOfMass(cmBody r2.Vec) error {
	if err := p.checkFinished("SetCenterOfMass"); err != nil {
		return err
	}
	if !vecIsValid(cmBody) {
		return p.failf("SetCenterOfMass", ErrNonFinite, "(%g, %g)", cmBody.X, cmBody.Y)
	}
	p.M_coords.M_cmBody = cmBody
	p.forgetPosition()
	return nil
}

func (p *Polygon) GetMass() float64 {
	return p.M_mass
}

func (p *Polygon) SetMass(mass float64) error {
	if math.IsNaN(mass) || mass <= 0 {
		return p.failf("SetMass", ErrBadMass, "%g", mass)
	}
	p.M_mass = mass
	return nil
}

// Moment of inertia about the center of mass, approximating the body by its
// bounding rectangle.
func (p *Polygon) MomentAboutCM() float64 {
	return p.M_mass * p.M_moment
}

func (p *Polygon) GetDragPoints() []r2.Vec {
	return p.M_dragPoints
}

func (p *Polygon) SetDragPoints(points []r2.Vec) error {
	for _, pt := range points {
		if !vecIsValid(pt) {
			return p.failf("SetDragPoints", ErrNonFinite, "(%g, %g)", pt.X, pt.Y)
		}
	}
	p.M_dragPoints = append([]r2.Vec(nil), points...)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Old coordinates
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// SaveOldCoords records the current frame. The snapshot storage is reused.
func (p *Polygon) SaveOldCoords() {
	c := &p.M_coords
	p.M_oldCoordsStore.Set(c.M_cmBody, c.M_locWorld, c.M_sinAngle, c.M_cosAngle)
	p.M_oldCoords = &p.M_oldCoordsStore
}

// GetOldCoords returns the frame saved by SaveOldCoords, or nil.
func (p *Polygon) GetOldCoords() *LocalCoords {
	return p.M_oldCoords
}

func (p *Polygon) EraseOldCoords() {
	p.M_oldCoords = nil
}

// MaxTravel is the largest distance any vertex moved since the old
// coordinates were saved. Zero without a snapshot.
func (p *Polygon) MaxTravel() float64 {
	if p.M_oldCoords == nil {
		return 0
	}
	maxDist := 0.0
	for _, v := range p.M_vertices {
		loc := p.M_vertexArena[v].M_locBody
		d := vecDistance(p.M_coords.BodyToWorld(loc), p.M_oldCoords.BodyToWorld(loc))
		maxDist = math.Max(maxDist, d)
	}
	return maxDist
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Minimum height
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// GetMinHeight returns the smallest distance from the center of mass to an
// edge, the height of the center of mass when the body rests on that edge.
// The value is cached until SetMinHeight(math.NaN()).
// @warning wrong for circles and ovals when the center of mass is off-axis,
// unreliable for concave bodies and bodies with holes.
func (p *Polygon) GetMinHeight() (float64, error) {
	if err := p.checkFinished("GetMinHeight"); err != nil {
		return 0, err
	}
	if math.IsNaN(p.M_minHeight) {
		p.M_minHeight = p.computeMinHeight()
	}
	return p.M_minHeight, nil
}

func (p *Polygon) computeMinHeight() float64 {
	cm := p.M_coords.M_cmBody
	dist := math.Inf(1)
	for i := range p.M_edges {
		h := p.M_edges[i].DistanceToPoint(cm)
		if math.IsInf(h, 1) {
			continue
		}
		if h > 0 {
			// center of mass is outside the body
			return p.minHeight2()
		}
		dist = math.Min(dist, -h)
	}
	if math.IsInf(dist, 1) {
		return p.minHeight2()
	}
	return dist
}

// GetMinHeight2 is the smallest distance from the center of mass to a side of
// the bounding box.
func (p *Polygon) GetMinHeight2() (float64, error) {
	if err := p.checkFinished("GetMinHeight2"); err != nil {
		return 0, err
	}
	return p.minHeight2(), nil
}

func (p *Polygon) minHeight2() float64 {
	cm := p.M_coords.M_cmBody
	bb := p.M_boundingBox
	return math.Min(
		math.Min(cm.X-bb.GetLeft(), bb.GetRight()-cm.X),
		math.Min(cm.Y-bb.GetBottom(), bb.GetTop()-cm.Y))
}

// SetMinHeight overrides the cached minimum height; NaN marks it stale.
func (p *Polygon) SetMinHeight(h float64) {
	p.M_minHeight = h
}

func (p *Polygon) String() string {
	state := "open"
	if p.M_finished {
		state = "finished"
	}
	return fmt.Sprintf("Polygon{%q %s, paths: %d, edges: %d, vertices: %d, pos: (%g, %g), angle: %g}",
		p.M_name, state, len(p.M_paths), len(p.M_edges), len(p.M_vertices),
		p.M_coords.M_locWorld.X, p.M_coords.M_locWorld.Y, p.M_angle)
}

// GetBoundsWorld returns the world box around the rotated body bounding box.
func (p *Polygon) GetBoundsWorld() (BoundingBox, error) {
	bb, err := p.GetBoundingBox()
	if err != nil {
		return BoundingBox{}, err
	}
	res := MakeBoundingBox()
	for _, c := range [4]r2.Vec{
		{X: bb.GetLeft(), Y: bb.GetBottom()},
		{X: bb.GetRight(), Y: bb.GetBottom()},
		{X: bb.GetRight(), Y: bb.GetTop()},
		{X: bb.GetLeft(), Y: bb.GetTop()},
	} {
		res.AddPoint(p.BodyToWorld(c))
	}
	return res, nil
}
