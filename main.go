package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/carlmjohnson/versioninfo"

	"github.com/pdok/vec2d/scenario"
	"github.com/pdok/vec2d/sim"
	"github.com/pdok/vec2d/trace"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"
)

const SCENARIO string = `scenario`
const TRACEGPKG string = `traceGpkg`
const CHECKPOINT string = `checkpoint`
const OVERWRITE string = `overwrite`
const PAGESIZE string = `pagesize`
const SAMPLEEVERY string = `sampleevery`

func main() {
	app := cli.NewApp()
	app.Name = "vecsim"
	app.Usage = "A Golang particle scenario runner for the vec2d vector type"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     SCENARIO,
			Aliases:  []string{"s"},
			Usage:    "Scenario JSON file, or the name of a built-in scenario prefixed with a colon. E.g.: :fountain",
			Required: true,
			EnvVars:  []string{strcase.ToScreamingSnake(SCENARIO)},
		},
		&cli.StringFlag{
			Name:     TRACEGPKG,
			Aliases:  []string{"t"},
			Usage:    "Target GPKG to write sampled particle trajectories to",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(TRACEGPKG)},
		},
		&cli.StringFlag{
			Name:     CHECKPOINT,
			Aliases:  []string{"c"},
			Usage:    "File to write the final particle state to, in the fixed binary vector layout",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(CHECKPOINT)},
		},
		&cli.BoolFlag{
			Name:     OVERWRITE,
			Aliases:  []string{"o"},
			Usage:    "Overwrite the target GPKG and checkpoint if they exist",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(OVERWRITE)},
		},
		&cli.IntFlag{
			Name:     PAGESIZE,
			Aliases:  []string{"p"},
			Usage:    "Page size, how many features are written per transaction to the target GPKG",
			Value:    1000,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(PAGESIZE)},
		},
		&cli.IntFlag{
			Name:     SAMPLEEVERY,
			Aliases:  []string{"e"},
			Usage:    "Record every n-th step in the trajectory trace",
			Value:    10,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(SAMPLEEVERY)},
		},
	}

	app.Action = func(c *cli.Context) error {
		s, err := loadScenario(c.String(SCENARIO))
		if err != nil {
			return err
		}
		log.Printf("=== start scenario %s ===", s.Name)
		log.Printf("  %d particles, %d steps", s.ParticleCount(), s.Steps)

		engine := sim.NewEngine(s)

		var observers []sim.Observer
		if c.String(TRACEGPKG) != "" {
			target := initTraceTarget(c.String(TRACEGPKG), c.Bool(OVERWRITE), c.Int(PAGESIZE), c.Int(SAMPLEEVERY))
			defer func() {
				err := target.Close()
				if err != nil {
					log.Fatalf("error closing trace GeoPackage: %s", err)
				}
			}()
			observers = append(observers, target.Observe)
		}

		result := engine.Run(observers...)
		logResult(result)

		if c.String(CHECKPOINT) != "" {
			err = writeCheckpointFile(c.String(CHECKPOINT), c.Bool(OVERWRITE), engine.Particles())
			if err != nil {
				return err
			}
		}

		log.Println("=== done ===")
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func loadScenario(name string) (scenario.Scenario, error) {
	if strings.HasPrefix(name, ":") {
		return scenario.LoadEmbeddedScenario(strings.TrimPrefix(name, ":"))
	}
	return scenario.LoadScenarioJSON(name)
}

func initTraceTarget(path string, overwrite bool, pagesize, sampleEvery int) *trace.Target {
	if overwrite {
		removeIfExists(path)
	}
	target, err := trace.NewTarget(path, pagesize, sampleEvery)
	if err != nil {
		log.Fatalf("error initializing the trace GeoPackage: %s", err)
	}
	return target
}

func writeCheckpointFile(path string, overwrite bool, particles []sim.Particle) error {
	if overwrite {
		removeIfExists(path)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("error creating checkpoint file: %w", err)
	}
	defer file.Close()
	return sim.WriteCheckpoint(file, particles)
}

func removeIfExists(path string) {
	err := os.Remove(path)
	var pathError *os.PathError
	if err != nil {
		if !(errors.As(err, &pathError) && errors.Is(pathError.Err, syscall.ENOENT)) {
			log.Fatalf("could not remove target file: %e", err)
		}
	}
}

func logResult(result sim.Result) {
	log.Printf("  scenario: %s", result.ScenarioName)
	log.Printf("     steps: %d", result.Steps)
	log.Printf(" particles: %d", result.Particles)
	for p := result.Metrics.Oldest(); p != nil; p = p.Next() {
		log.Printf("%10s: %v", p.Key, p.Value)
	}
	log.Printf("   fastest: steps %v", result.FastestSteps)
}
