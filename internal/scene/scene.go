// Package scene reads a YAML description of bodies and builds them.
package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/Alexander-r/rigid2d"
	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

// BodyDef is the YAML definition of one body.
type BodyDef struct {
	Name     string       `yaml:"name"`
	Shape    string       `yaml:"shape"` // block, wall, ball, polygon or regular
	Width    float64      `yaml:"width,omitempty"`
	Height   float64      `yaml:"height,omitempty"`
	Radius   float64      `yaml:"radius,omitempty"`
	Sides    int          `yaml:"sides,omitempty"`
	Points   [][2]float64 `yaml:"points,omitempty"`
	Position [2]float64   `yaml:"position,omitempty"`
	Angle    float64      `yaml:"angle,omitempty"`
	Mass     float64      `yaml:"mass,omitempty"`

	// Names of bodies this body does not collide with at all.
	NonCollide []string `yaml:"non_collide,omitempty"`
	// Names of bodies whose edges this body's edges do not collide with.
	NonCollideEdges []string `yaml:"non_collide_edges,omitempty"`
}

// Scene is the content of a scene file.
type Scene struct {
	Bodies []BodyDef `yaml:"bodies"`
}

// Load decodes a scene.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &s, nil
}

// Build creates the bodies of the scene with the given settings, places them
// and wires their non-collide relations. With skipMalformed a body that fails
// to build is logged and left out; otherwise the first failure is returned.
func (s *Scene) Build(settings rigid2d.Settings, skipMalformed bool, logger *log.Logger) ([]*rigid2d.Polygon, error) {
	if logger == nil {
		logger = log.Default()
	}
	var bodies []*rigid2d.Polygon
	byName := make(map[string]*rigid2d.Polygon)
	defs := make(map[*rigid2d.Polygon]BodyDef)
	for i, def := range s.Bodies {
		if def.Name == "" {
			def.Name = fmt.Sprintf("body%d", i)
		}
		p, err := def.build(settings)
		if err == nil {
			if _, dup := byName[def.Name]; dup {
				err = fmt.Errorf("scene: duplicate body name %q", def.Name)
			}
		}
		if err != nil {
			if !skipMalformed {
				return nil, err
			}
			logger.Warn("skipping malformed body", "body", def.Name, "shape", def.Shape, "err", err)
			continue
		}
		bodies = append(bodies, p)
		byName[def.Name] = p
		defs[p] = def
	}

	for _, p := range bodies {
		def := defs[p]
		var group rigid2d.EdgeGroup
		for _, name := range def.NonCollide {
			other, ok := byName[name]
			if !ok {
				logger.Warn("unknown non_collide body", "body", def.Name, "other", name)
				continue
			}
			p.AddNonCollide(other)
		}
		for _, name := range def.NonCollideEdges {
			other, ok := byName[name]
			if !ok {
				logger.Warn("unknown non_collide_edges body", "body", def.Name, "other", name)
				continue
			}
			group = append(group, rigid2d.EdgeRangeAll(other))
		}
		if len(group) > 0 {
			p.SetNonCollideEdge(group)
		}
	}
	return bodies, nil
}

func (def BodyDef) build(settings rigid2d.Settings) (*rigid2d.Polygon, error) {
	var p *rigid2d.Polygon
	var err error
	switch def.Shape {
	case "block":
		p, err = rigid2d.MakeBlock(def.Width, def.Height, def.Name, settings)
	case "wall":
		p, err = rigid2d.MakeWall(def.Width, def.Height, def.Name, settings)
	case "ball":
		p, err = rigid2d.MakeBall(def.Radius, def.Name, settings)
	case "regular":
		p, err = rigid2d.MakeRegularPolygon(def.Sides, def.Radius, def.Name, settings)
	case "polygon":
		points := make([]r2.Vec, len(def.Points))
		for i, pt := range def.Points {
			points[i] = r2.Vec{X: pt[0], Y: pt[1]}
		}
		p, err = rigid2d.MakePolygonFromPoints(points, def.Name, settings)
	default:
		return nil, fmt.Errorf("scene: body %q: unknown shape %q", def.Name, def.Shape)
	}
	if err != nil {
		return nil, err
	}
	if def.Mass != 0 {
		if err := p.SetMass(def.Mass); err != nil {
			return nil, err
		}
	}
	pos := r2.Vec{X: def.Position[0], Y: def.Position[1]}
	if err := p.SetPosition(pos, def.Angle); err != nil {
		return nil, err
	}
	return p, nil
}
