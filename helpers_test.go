package rigid2d_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Alexander-r/rigid2d"
	"github.com/pmezard/go-difflib/difflib"
	"gonum.org/v1/gonum/spatial/r2"
)

func expectText(t *testing.T, expected, current string) {
	t.Helper()
	if expected != current {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(current),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("NOT Matching reference. Failure: \n%s", text)
	}
}

func expectErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearVec(a, b r2.Vec, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

func mustBlock(t *testing.T, w, h float64, name string, pos r2.Vec) *rigid2d.Polygon {
	t.Helper()
	p, err := rigid2d.MakeBlock(w, h, name, rigid2d.MakeSettings())
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SetPosition(pos, 0); err != nil {
		t.Fatal(err)
	}
	return p
}

func mustBall(t *testing.T, radius float64, name string, pos r2.Vec) *rigid2d.Polygon {
	t.Helper()
	p, err := rigid2d.MakeBall(radius, name, rigid2d.MakeSettings())
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SetPosition(pos, 0); err != nil {
		t.Fatal(err)
	}
	return p
}

// unitSquare builds the square (0,0)-(1,1) edge by edge, closing on the start
// vertex.
func unitSquare(t *testing.T) *rigid2d.Polygon {
	t.Helper()
	p := rigid2d.NewPolygon("square")
	v0, err := p.StartPathAt(r2.Vec{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range []r2.Vec{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		if _, err := p.AddStraightEdge(pt); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := p.AddEdge(rigid2d.MakeStraightEdge(p.GetLastOpenVertex(), v0)); err != nil {
		t.Fatal(err)
	}
	if err := p.Finish(); err != nil {
		t.Fatal(err)
	}
	return p
}

func inside(t *testing.T, p *rigid2d.Polygon, pt r2.Vec) bool {
	t.Helper()
	in, err := p.TestPoint(pt)
	if err != nil {
		t.Fatal(err)
	}
	return in
}
