package rigid2d_test

import (
	"testing"

	"github.com/Alexander-r/rigid2d"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestProximityTest(t *testing.T) {
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 2})

	ok, err := rigid2d.ProximityTest(a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("blocks 2 apart are near")
	}
	if ok, _ := rigid2d.ProximityTest(a, b, 1); !ok {
		t.Fatal("swellage ignored")
	}

	b.SaveOldCoords()
	if err := b.SetPosition(r2.Vec{X: 1.6}, 0); err != nil {
		t.Fatal(err)
	}
	if ok, _ := rigid2d.ProximityTest(a, b, 0); !ok {
		t.Fatal("travel since the old coordinates ignored")
	}
	b.EraseOldCoords()

	_, err = rigid2d.ProximityTest(a, rigid2d.NewPolygon("open"), 0)
	expectErr(t, err, rigid2d.ErrNotFinished)
}

func TestProximityTestSpecialEdge(t *testing.T) {
	floor, err := rigid2d.MakeWall(10, 1, "floor", rigid2d.MakeSettings())
	if err != nil {
		t.Fatal(err)
	}
	if err := floor.SetPosition(r2.Vec{X: 0, Y: -0.5}, 0); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		pos  r2.Vec
		want bool
	}{
		{"resting", r2.Vec{X: 4, Y: 0.45}, true},
		{"above", r2.Vec{X: 4, Y: 3}, false},
		{"below", r2.Vec{X: 0, Y: -5}, true},
		// only the distance along the normal counts
		{"beyond the end", r2.Vec{X: 100, Y: 0.45}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := mustBall(t, 0.5, "ball", tt.pos)
			got, err := rigid2d.ProximityTest(floor, ball, 0)
			if err != nil {
				t.Fatal(err)
			}
			back, _ := rigid2d.ProximityTest(ball, floor, 0)
			if got != tt.want || back != tt.want {
				t.Fatalf("got %v and %v, want %v", got, back, tt.want)
			}
		})
	}
}

func TestBroadPhasePairs(t *testing.T) {
	bp := rigid2d.NewBroadPhase()
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 0.5, Y: 0.3})
	c := mustBlock(t, 1, 1, "c", r2.Vec{X: 10, Y: 10})
	for _, p := range []*rigid2d.Polygon{a, b, c} {
		bp.AddBody(p)
	}

	var pairs [][2]*rigid2d.Polygon
	record := func(x, y *rigid2d.Polygon) {
		pairs = append(pairs, [2]*rigid2d.Polygon{x, y})
	}
	if err := bp.UpdatePairs(record); err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 1 || pairs[0] != [2]*rigid2d.Polygon{a, b} || bp.GetPairCount() != 1 {
		t.Fatalf("got pairs %v", pairs)
	}

	b.AddNonCollide(a)
	pairs = nil
	if err := bp.UpdatePairs(record); err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Fatalf("non-collide pair reported: %v", pairs)
	}
	b.RemoveNonCollide(a)

	bp.RemoveBody(c)
	if bp.GetBodyCount() != 2 {
		t.Fatalf("%d bodies after RemoveBody", bp.GetBodyCount())
	}
}

func TestBroadPhaseGrowsPairBuffer(t *testing.T) {
	bp := rigid2d.NewBroadPhase()
	for i := 0; i < 10; i++ {
		bp.AddBody(mustBlock(t, 1, 1, "b", r2.Vec{X: 0.01 * float64(i)}))
	}
	count := 0
	if err := bp.UpdatePairs(func(x, y *rigid2d.Polygon) { count++ }); err != nil {
		t.Fatal(err)
	}
	if count != 45 || bp.GetPairCount() != 45 {
		t.Fatalf("got %d pairs, want 45", count)
	}
}

func TestFindCollisions(t *testing.T) {
	bp := rigid2d.NewBroadPhase()
	a := mustBlock(t, 1, 1, "a", r2.Vec{})
	b := mustBlock(t, 1, 1, "b", r2.Vec{X: 0.5, Y: 0.3})
	bp.AddBody(a)
	bp.AddBody(b)
	bp.AddBody(mustBlock(t, 1, 1, "far", r2.Vec{X: -10}))

	collisions, err := bp.FindCollisions(2)
	if err != nil {
		t.Fatal(err)
	}
	var fromA, fromB int
	for _, c := range collisions {
		switch {
		case c.Type == rigid2d.Collision_Type.E_edgeEdge && c.PrimaryBody == a:
			fromA++
		case c.Type == rigid2d.Collision_Type.E_edgeEdge && c.PrimaryBody == b:
			fromB++
		}
		if c.PrimaryBody.GetName() == "far" || c.NormalBody.GetName() == "far" {
			t.Errorf("far body collides: %v", c)
		}
	}
	if fromA != 2 || fromB != 2 {
		t.Fatalf("got %d and %d crossings, want 2 from each body", fromA, fromB)
	}
}
