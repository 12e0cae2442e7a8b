// Package config loads the tunable settings of the collision core and of the
// command line tools.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/Alexander-r/rigid2d"
	"gopkg.in/yaml.v3"
)

// Config is the content of a YAML settings file.
type Config struct {
	Collision CollisionConfig `yaml:"collision"`
	Log       LogConfig       `yaml:"log"`
}

// CollisionConfig mirrors rigid2d.Settings.
type CollisionConfig struct {
	UseIntersectionPossible bool    `yaml:"use_intersection_possible"`
	DistanceTol             float64 `yaml:"distance_tol"`
	MaxPenetration          float64 `yaml:"max_penetration"`
	CurveSpacing            float64 `yaml:"curve_spacing"`
	VerifyCentroid          bool    `yaml:"verify_centroid"`
	ShowVertexes            bool    `yaml:"show_vertexes"`
	MarkerSize              float64 `yaml:"marker_size"`
	CentroidMaxIterations   int     `yaml:"centroid_max_iterations"`
	Swellage                float64 `yaml:"swellage"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Prefix     string `yaml:"prefix"`
	Timestamps bool   `yaml:"timestamps"`
}

// Default returns the library defaults with info level logging.
func Default() Config {
	s := rigid2d.MakeSettings()
	return Config{
		Collision: CollisionConfig{
			UseIntersectionPossible: s.UseIntersectionPossible,
			DistanceTol:             s.DistanceTol,
			MaxPenetration:          s.MaxPenetration,
			CurveSpacing:            s.CurveSpacing,
			VerifyCentroid:          s.VerifyCentroid,
			ShowVertexes:            s.ShowVertexes,
			MarkerSize:              s.MarkerSize,
			CentroidMaxIterations:   s.CentroidMaxIterations,
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "rbcollide",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path gives the defaults.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := Parse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, rejecting unknown keys.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	if _, err := cfg.Collision.Settings(); err != nil {
		return err
	}
	return nil
}

// ApplyEnv overrides cfg from RB_LOG_LEVEL, RB_DISTANCE_TOL and
// RB_USE_INTERSECTION_POSSIBLE.
func ApplyEnv(cfg *Config) error {
	cfg.Log.Level = GetEnv("RB_LOG_LEVEL", cfg.Log.Level)
	if v := GetEnv("RB_DISTANCE_TOL", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: RB_DISTANCE_TOL: %w", err)
		}
		cfg.Collision.DistanceTol = f
	}
	if v := GetEnv("RB_USE_INTERSECTION_POSSIBLE", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: RB_USE_INTERSECTION_POSSIBLE: %w", err)
		}
		cfg.Collision.UseIntersectionPossible = b
	}
	return nil
}

// Settings converts to the library settings.
func (c CollisionConfig) Settings() (rigid2d.Settings, error) {
	s := rigid2d.Settings{
		UseIntersectionPossible: c.UseIntersectionPossible,
		DistanceTol:             c.DistanceTol,
		MaxPenetration:          c.MaxPenetration,
		CurveSpacing:            c.CurveSpacing,
		VerifyCentroid:          c.VerifyCentroid,
		ShowVertexes:            c.ShowVertexes,
		MarkerSize:              c.MarkerSize,
		CentroidMaxIterations:   c.CentroidMaxIterations,
	}
	// swellage belongs to the broad phase, not to a body
	if !s.IsValid() || math.IsNaN(c.Swellage) || math.IsInf(c.Swellage, 0) || c.Swellage < 0 {
		return rigid2d.Settings{}, fmt.Errorf("config: %w: %+v", rigid2d.ErrSettings, c)
	}
	return s, nil
}
