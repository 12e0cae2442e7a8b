package rigid2d_test

import (
	"strings"
	"testing"

	"github.com/Alexander-r/rigid2d"
	"gonum.org/v1/gonum/spatial/r2"
)

func countType(collisions []rigid2d.RigidBodyCollision, typ uint8) int {
	n := 0
	for _, c := range collisions {
		if c.Type == typ {
			n++
		}
	}
	return n
}

func TestOverlappingSquares(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 0.5, Y: 0.5})

	var collisions []rigid2d.RigidBodyCollision
	if err := a.CheckCollision(&collisions, b, 0); err != nil {
		t.Fatal(err)
	}
	if len(collisions) == 0 {
		t.Fatal("overlapping squares gave no collisions")
	}

	a.SetNonCollideEdge(rigid2d.EdgeRangeAll(b))
	collisions = collisions[:0]
	if err := a.CheckCollision(&collisions, b, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.CheckCollision(&collisions, a, 0); err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 0 {
		t.Fatalf("excluded edges gave %d collisions", len(collisions))
	}
}

func TestEdgeCrossingsBothDirections(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 0.5, Y: 0.3})

	var ab, ba []rigid2d.RigidBodyCollision
	if err := a.CheckCollision(&ab, b, 1.5); err != nil {
		t.Fatal(err)
	}
	if err := b.CheckCollision(&ba, a, 1.5); err != nil {
		t.Fatal(err)
	}
	if n, m := countType(ab, rigid2d.Collision_Type.E_edgeEdge), countType(ba, rigid2d.Collision_Type.E_edgeEdge); n != 2 || m != 2 {
		t.Fatalf("got %d and %d edge crossings, want 2 each way", n, m)
	}
	for _, c := range ab {
		if c.Time != 1.5 {
			t.Errorf("collision time %g", c.Time)
		}
		if c.Type != rigid2d.Collision_Type.E_edgeEdge {
			continue
		}
		if c.PrimaryBody != a || c.NormalBody != b || c.PrimaryVertex != rigid2d.E_nullIndex {
			t.Errorf("unexpected crossing %v", c)
		}
		found := false
		for _, d := range ba {
			if d.Type == rigid2d.Collision_Type.E_edgeEdge && nearVec(c.ImpactWorld, d.ImpactWorld, 1e-12) {
				found = true
				if d.PrimaryEdge != c.NormalEdge || d.NormalEdge != c.PrimaryEdge {
					t.Errorf("crossing %v is reported against other edges as %v", c, d)
				}
			}
		}
		if !found {
			t.Errorf("crossing %v is not reported from b", c)
		}
	}
	for _, c := range ab {
		if c.Type == rigid2d.Collision_Type.E_vertexEdge && (c.PrimaryBody != b || c.NormalBody != a) {
			t.Errorf("vertex of the wrong body in %v", c)
		}
	}
}

func TestContact(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 0, Y: 1.005})

	var collisions []rigid2d.RigidBodyCollision
	if err := a.CheckCollision(&collisions, b, 0); err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 2 {
		t.Fatalf("got %d collisions, want 2:\n%v", len(collisions), collisions)
	}
	for _, c := range collisions {
		if !c.IsContact() || c.NormalEdge != 2 || !near(c.Distance, 0.005, 1e-9) {
			t.Errorf("unexpected record %v", c)
		}
		if !nearVec(c.NormalWorld, r2.Vec{X: 0, Y: 1}, 1e-12) {
			t.Errorf("normal %v, want (0, 1)", c.NormalWorld)
		}
		if !strings.HasPrefix(c.String(), "contact b[") {
			t.Errorf("String() = %q", c.String())
		}
	}

	// apart by more than DistanceTol
	if err := b.SetPosition(r2.Vec{X: 0, Y: 1.05}, 0); err != nil {
		t.Fatal(err)
	}
	collisions = collisions[:0]
	if err := a.CheckCollision(&collisions, b, 0); err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 0 {
		t.Fatalf("separated bodies gave %v", collisions)
	}
}

func TestIntersectionPossibleSkipsFarEdges(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 0.5, Y: 0.3})

	full := rigid2d.MakeSettings()
	full.UseIntersectionPossible = false
	if err := a.SetSettings(full); err != nil {
		t.Fatal(err)
	}
	var without, with []rigid2d.RigidBodyCollision
	if err := a.CheckCollision(&without, b, 0); err != nil {
		t.Fatal(err)
	}
	if err := a.SetSettings(rigid2d.MakeSettings()); err != nil {
		t.Fatal(err)
	}
	if err := a.CheckCollision(&with, b, 0); err != nil {
		t.Fatal(err)
	}
	if len(with) != len(without) {
		t.Fatalf("bounding test changed the result: %d vs %d", len(with), len(without))
	}

	// the left edge of a and the right edge of b are too far apart
	tol := full.DistanceTol + full.MaxPenetration
	if err := b.SetPosition(r2.Vec{X: 2.2}, 0); err != nil {
		t.Fatal(err)
	}
	if rigid2d.IntersectionPossible(a, 3, b, 1, tol) {
		t.Error("far edges pass the bounding test")
	}
	if !rigid2d.IntersectionPossible(a, 1, b, 3, tol) {
		t.Error("near edges fail the bounding test")
	}
}

func TestBallOnFloor(t *testing.T) {
	floor, err := rigid2d.MakeWall(10, 1, "floor", rigid2d.MakeSettings())
	if err != nil {
		t.Fatal(err)
	}
	if err := floor.SetPosition(r2.Vec{X: 0, Y: -0.5}, 0); err != nil {
		t.Fatal(err)
	}
	ball := mustBall(t, 0.5, "ball", r2.Vec{X: 4, Y: 0.45})

	var collisions []rigid2d.RigidBodyCollision
	if err := floor.CheckCollision(&collisions, ball, 0); err != nil {
		t.Fatal(err)
	}
	if n := countType(collisions, rigid2d.Collision_Type.E_edgeEdge); n != 2 {
		t.Errorf("got %d crossings of the floor, want 2", n)
	}
	vertices := 0
	for _, c := range collisions {
		if c.NormalBody == floor && c.NormalEdge != 2 {
			t.Errorf("collision against a side of the floor %v", c)
		}
		if c.Type == rigid2d.Collision_Type.E_vertexEdge {
			vertices++
			if c.Distance >= 0 || c.Distance < -0.05-1e-9 {
				t.Errorf("ball vertex depth %g", c.Distance)
			}
		}
	}
	if vertices == 0 {
		t.Error("no ball vertex below the floor")
	}
}

func TestCheckCollisionNotFinished(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	var collisions []rigid2d.RigidBodyCollision
	expectErr(t, a.CheckCollision(&collisions, rigid2d.NewPolygon("open"), 0), rigid2d.ErrNotFinished)
}

func TestEdgeSets(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{})
	c := mustBlock(t, 1, 1, "c", r2.Vec{})

	r, err := rigid2d.MakeEdgeRange(b, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rigid2d.MakeEdgeRange(b, 2, 4); err == nil {
		t.Error("range past the last edge accepted")
	}
	a.SetNonCollideEdge(rigid2d.EdgeGroup{r, rigid2d.EdgeRangeAll(c)})
	tests := []struct {
		ref  rigid2d.EdgeRef
		want bool
	}{
		{rigid2d.EdgeRef{Body: b, Index: 0}, false},
		{rigid2d.EdgeRef{Body: b, Index: 1}, true},
		{rigid2d.EdgeRef{Body: b, Index: 2}, true},
		{rigid2d.EdgeRef{Body: c, Index: 3}, true},
		{rigid2d.EdgeRef{Body: nil, Index: 0}, true},
		{rigid2d.EdgeRef{Body: b, Index: rigid2d.E_nullIndex}, true},
	}
	for i, tt := range tests {
		if got := a.NonCollideEdge(tt.ref); got != tt.want {
			t.Errorf("case %d: NonCollideEdge = %v, want %v", i, got, tt.want)
		}
	}
	a.SetNonCollideEdge(nil)
	if a.NonCollideEdge(rigid2d.EdgeRef{Body: b, Index: 1}) {
		t.Error("clearing the edge set had no effect")
	}

	a.AddNonCollide(b, b, c)
	if !a.DoesNotCollide(b) || !a.DoesNotCollide(c) || b.DoesNotCollide(a) {
		t.Error("unexpected non-collide relation")
	}
	a.RemoveNonCollide(b)
	if a.DoesNotCollide(b) || !a.DoesNotCollide(c) {
		t.Error("RemoveNonCollide removed the wrong body")
	}
}
