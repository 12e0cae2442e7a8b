package rigid2d_test

import (
	"testing"

	"github.com/Alexander-r/rigid2d"
)

var expectedBlockPath string = `moveTo -1 -0.5
lineTo 1 -0.5
lineTo 1 0.5
lineTo -1 0.5
lineTo -1 -0.5
closePath
`

var expectedBlockMarkers string = expectedBlockPath + `rect -1.05 -0.55 0.1 0.1
rect 0.95 -0.55 0.1 0.1
rect 0.95 0.45 0.1 0.1
rect -1.05 0.45 0.1 0.1
`

var expectedBallPath string = `moveTo 1 0
arc 0 0 1 0 3.14159 ccw
arc 0 0 1 3.14159 0 ccw
closePath
`

var expectedDishPath string = `moveTo 0 0
lineTo 2 0
lineTo 2 2
arc 1 3 1.41421 -0.785398 -2.35619 cw
lineTo 0 0
closePath
`

func TestCanvasPathBlock(t *testing.T) {
	p, err := rigid2d.MakeBlock(2, 1, "block", rigid2d.MakeSettings())
	if err != nil {
		t.Fatal(err)
	}
	rec := rigid2d.NewPathRecorder()
	if err := p.CreateCanvasPath(rec); err != nil {
		t.Fatal(err)
	}
	expectText(t, expectedBlockPath, rec.String())
}

func TestCanvasPathMarkers(t *testing.T) {
	s := rigid2d.MakeSettings()
	s.ShowVertexes = true
	s.MarkerSize = 0.1
	p, err := rigid2d.MakeBlock(2, 1, "block", s)
	if err != nil {
		t.Fatal(err)
	}
	rec := rigid2d.NewPathRecorder()
	if err := p.CreateCanvasPath(rec); err != nil {
		t.Fatal(err)
	}
	expectText(t, expectedBlockMarkers, rec.String())
}

func TestCanvasPathBall(t *testing.T) {
	p, err := rigid2d.MakeBall(1, "ball", rigid2d.MakeSettings())
	if err != nil {
		t.Fatal(err)
	}
	rec := rigid2d.NewPathRecorder()
	if err := p.CreateCanvasPath(rec); err != nil {
		t.Fatal(err)
	}
	expectText(t, expectedBallPath, rec.String())
	if ops := rec.GetOps(); len(ops) != 4 || ops[1].Verb != rigid2d.PathVerb_Type.E_arc || !ops[1].Anticlockwise {
		t.Fatalf("unexpected ops %v", ops)
	}
}

func TestCanvasPathConcave(t *testing.T) {
	p := concaveBody(t)
	rec := rigid2d.NewPathRecorder()
	if err := p.CreateCanvasPath(rec); err != nil {
		t.Fatal(err)
	}
	expectText(t, expectedDishPath, rec.String())
}
