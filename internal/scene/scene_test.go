package scene_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Alexander-r/rigid2d"
	"github.com/Alexander-r/rigid2d/internal/scene"
	"github.com/charmbracelet/log"
)

const stack = `
bodies:
  - name: floor
    shape: wall
    width: 10
    height: 1
    position: [0, -0.5]
  - name: box
    shape: block
    width: 1
    height: 1
    position: [0, 0.5]
    mass: 2
    non_collide_edges: [floor]
  - name: ball
    shape: ball
    radius: 0.5
    position: [3, 0.5]
  - name: tri
    shape: polygon
    points: [[0, 0], [1, 0], [0, 1]]
    position: [-3, 1]
    non_collide: [ball]
  - name: hex
    shape: regular
    sides: 6
    radius: 0.5
    position: [5, 2]
`

func TestBuild(t *testing.T) {
	s, err := scene.Load(strings.NewReader(stack))
	if err != nil {
		t.Fatal(err)
	}
	bodies, err := s.Build(rigid2d.MakeSettings(), false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(bodies) != 5 {
		t.Fatalf("built %d bodies, want 5", len(bodies))
	}
	floor, box, ball, tri := bodies[0], bodies[1], bodies[2], bodies[3]
	if !floor.HasSpecialEdge() {
		t.Error("wall has no special edge")
	}
	if box.GetMass() != 2 {
		t.Errorf("box mass %g, want 2", box.GetMass())
	}
	if got := box.GetPosition(); got.X != 0 || got.Y != 0.5 {
		t.Errorf("box position %v", got)
	}
	if !tri.DoesNotCollide(ball) || ball.DoesNotCollide(tri) {
		t.Error("non_collide should be one sided")
	}
	if !box.NonCollideEdge(rigid2d.EdgeRef{Body: floor, Index: 2}) {
		t.Error("box should ignore the floor edges")
	}
	if floor.NonCollideEdge(rigid2d.EdgeRef{Body: box, Index: 0}) {
		t.Error("floor should not ignore the box edges")
	}
}

func TestBuildMalformed(t *testing.T) {
	const data = `
bodies:
  - name: good
    shape: block
    width: 1
    height: 1
  - name: flat
    shape: block
    width: 1
    height: 0
  - name: blob
    shape: cloud
  - name: good
    shape: ball
    radius: 1
`
	s, err := scene.Load(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Build(rigid2d.MakeSettings(), false, nil); !errors.Is(err, rigid2d.ErrZeroLength) {
		t.Fatalf("got %v, want ErrZeroLength", err)
	}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	bodies, err := s.Build(rigid2d.MakeSettings(), true, logger)
	if err != nil {
		t.Fatal(err)
	}
	if len(bodies) != 1 || bodies[0].GetName() != "good" {
		t.Fatalf("got %v, want only the first good body", bodies)
	}
	if n := strings.Count(buf.String(), "skipping malformed body"); n != 3 {
		t.Fatalf("logged %d skipped bodies, want 3:\n%s", n, buf.String())
	}
}

func TestLoadUnknownField(t *testing.T) {
	if _, err := scene.Load(strings.NewReader("bodies:\n  - name: a\n    colour: red\n")); err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestLoadEmpty(t *testing.T) {
	s, err := scene.Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Bodies) != 0 {
		t.Fatalf("got %d bodies", len(s.Bodies))
	}
}
