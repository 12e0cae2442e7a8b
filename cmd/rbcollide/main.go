// Command rbcollide loads a scene of bodies and prints the collisions found
// between them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Alexander-r/rigid2d"
	"github.com/Alexander-r/rigid2d/internal/config"
	"github.com/Alexander-r/rigid2d/internal/scene"
	"github.com/charmbracelet/log"
)

func main() {
	configPath := flag.String("config", config.GetEnv("RB_CONFIG", ""), "YAML settings file")
	strict := flag.Bool("strict", false, "fail on a malformed body instead of skipping it")
	outline := flag.Bool("outline", false, "print the outline of every body")
	flag.Parse()

	if err := run(os.Stdout, os.Stderr, *configPath, flag.Args(), *strict, *outline); err != nil {
		log.Error("rbcollide", "err", err)
		os.Exit(1)
	}
}

// run writes the report to stdout and the log to stderr.
func run(stdout, stderr io.Writer, configPath string, scenes []string, strict, outline bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return err
	}
	rigid2d.SetLogger(logger)
	settings, err := cfg.Collision.Settings()
	if err != nil {
		return err
	}
	if len(scenes) == 0 {
		return errors.New("usage: rbcollide [-config file] [-strict] [-outline] scene.yaml...")
	}

	for _, path := range scenes {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		s, err := scene.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		bodies, err := s.Build(settings, !strict, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Info("scene loaded", "file", path, "bodies", len(bodies))

		if outline {
			for _, b := range bodies {
				rec := rigid2d.NewPathRecorder()
				if err := b.CreateCanvasPath(rec); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "# %s\n%s", b.GetName(), rec)
			}
		}

		bp := rigid2d.NewBroadPhase()
		bp.SetSwellage(cfg.Collision.Swellage)
		for _, b := range bodies {
			bp.AddBody(b)
		}
		collisions, err := bp.FindCollisions(0)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Info("collisions", "file", path, "pairs", bp.GetPairCount(), "count", len(collisions))
		for _, c := range collisions {
			fmt.Fprintln(stdout, c)
		}
	}
	return nil
}
