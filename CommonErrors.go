package rigid2d

import (
	"errors"
	"fmt"
)

// Construction-state violations.
var (
	ErrPathOpen       = errors.New("a path is already open")
	ErrNoOpenPath     = errors.New("no open path")
	ErrVertexMismatch = errors.New("edge does not start at the last open vertex")
	ErrFinished       = errors.New("polygon is already finished")
	ErrNotFinished    = errors.New("polygon is not finished")
	ErrVertexDistance = errors.New("vertices are too far apart to merge")
	ErrPathNotClosed  = errors.New("path is not a closed cycle")
)

// Numeric validity violations.
var (
	ErrNonFinite      = errors.New("non-finite value")
	ErrZeroLength     = errors.New("edge has zero length")
	ErrBadMass        = errors.New("mass must be positive")
	ErrRadiusMismatch = errors.New("arc endpoints are at different distances from the center")
)

// Configuration misuse.
var (
	ErrNotRectangle     = errors.New("special edge requires exactly 4 edges")
	ErrEdgeIndex        = errors.New("edge index out of range")
	ErrVertexIndex      = errors.New("vertex index out of range")
	ErrCentroid         = errors.New("centroid search did not converge")
	ErrCentroidMismatch = errors.New("supplied centroid is too far from the computed centroid")
	ErrSettings         = errors.New("invalid settings")
)

// ConstructionError is returned by every operation on a Polygon that can fail.
// Err is one of the sentinel errors above, possibly wrapped with detail.
type ConstructionError struct {
	Op   string
	Body string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("rigid2d: %s %q: %v", e.Op, e.Body, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func (p *Polygon) fail(op string, err error) error {
	return &ConstructionError{Op: op, Body: p.M_name, Err: err}
}

func (p *Polygon) failf(op string, sentinel error, format string, args ...interface{}) error {
	return p.fail(op, fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...))
}
