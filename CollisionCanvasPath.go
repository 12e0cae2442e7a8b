package rigid2d

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// PathContext receives the outline of a body, in body coordinates.
type PathContext interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	Rect(x, y, w, h float64)
	ClosePath()
}

// CreateCanvasPath emits each path as a move to its start vertex, one line or
// arc per edge and a close. With ShowVertexes set a small square is added
// around every vertex.
func (p *Polygon) CreateCanvasPath(ctx PathContext) error {
	if err := p.checkFinished("CreateCanvasPath"); err != nil {
		return err
	}
	for _, start := range p.M_paths {
		loc := p.M_vertexArena[start].M_locBody
		ctx.MoveTo(loc.X, loc.Y)
		v := start
		for {
			e := &p.M_edges[p.M_vertexArena[v].M_edge2]
			addEdgeToPath(ctx, e)
			v = e.M_vertex2
			if v == start {
				break
			}
		}
		ctx.ClosePath()
	}
	if p.M_settings.ShowVertexes {
		d := p.M_settings.MarkerSize
		for _, v := range p.M_vertices {
			loc := p.M_vertexArena[v].M_locBody
			ctx.Rect(loc.X-d/2, loc.Y-d/2, d, d)
		}
	}
	return nil
}

func addEdgeToPath(ctx PathContext, e *Edge) {
	switch e.M_type {
	case Edge_Type.E_circular:
		a1 := vecAngle(r2.Sub(e.M_v1Body, e.M_center))
		a2 := vecAngle(r2.Sub(e.M_v2Body, e.M_center))
		ctx.Arc(e.M_center.X, e.M_center.Y, e.M_radius, a1, a2, !e.M_clockwise)
	default:
		ctx.LineTo(e.M_v2Body.X, e.M_v2Body.Y)
	}
}

var PathVerb_Type = struct {
	E_moveTo uint8
	E_lineTo uint8
	E_arc    uint8
	E_rect   uint8
	E_close  uint8
}{
	E_moveTo: 0,
	E_lineTo: 1,
	E_arc:    2,
	E_rect:   3,
	E_close:  4,
}

type PathOp struct {
	Verb          uint8
	Args          []float64
	Anticlockwise bool
}

func (op PathOp) String() string {
	args := make([]string, len(op.Args))
	for i, a := range op.Args {
		args[i] = fmt.Sprintf("%.6g", a)
	}
	var name string
	switch op.Verb {
	case PathVerb_Type.E_moveTo:
		name = "moveTo"
	case PathVerb_Type.E_lineTo:
		name = "lineTo"
	case PathVerb_Type.E_arc:
		name = "arc"
		if op.Anticlockwise {
			args = append(args, "ccw")
		} else {
			args = append(args, "cw")
		}
	case PathVerb_Type.E_rect:
		name = "rect"
	case PathVerb_Type.E_close:
		name = "closePath"
	default:
		name = "unknown"
	}
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// PathRecorder is a PathContext that keeps the operations it receives.
type PathRecorder struct {
	M_ops []PathOp
}

func NewPathRecorder() *PathRecorder {
	return &PathRecorder{}
}

func (r *PathRecorder) MoveTo(x, y float64) {
	r.M_ops = append(r.M_ops, PathOp{Verb: PathVerb_Type.E_moveTo, Args: []float64{x, y}})
}

func (r *PathRecorder) LineTo(x, y float64) {
	r.M_ops = append(r.M_ops, PathOp{Verb: PathVerb_Type.E_lineTo, Args: []float64{x, y}})
}

func (r *PathRecorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	r.M_ops = append(r.M_ops, PathOp{
		Verb:          PathVerb_Type.E_arc,
		Args:          []float64{x, y, radius, startAngle, endAngle},
		Anticlockwise: anticlockwise,
	})
}

func (r *PathRecorder) Rect(x, y, w, h float64) {
	r.M_ops = append(r.M_ops, PathOp{Verb: PathVerb_Type.E_rect, Args: []float64{x, y, w, h}})
}

func (r *PathRecorder) ClosePath() {
	r.M_ops = append(r.M_ops, PathOp{Verb: PathVerb_Type.E_close})
}

func (r *PathRecorder) GetOps() []PathOp {
	return r.M_ops
}

// String lists one operation per line.
func (r *PathRecorder) String() string {
	var sb strings.Builder
	for _, op := range r.M_ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
