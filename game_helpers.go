package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/RdeBiotec/Game-of-Life/model"
	"github.com/RdeBiotec/Game-of-Life/sim"
	"github.com/RdeBiotec/Game-of-Life/utils"
)

const defaultConfigFile = "config.json"

// loadConfig reads the config file named by -config, then lets the other flags override it
func loadConfig(args []string) (utils.Config, error) {
	var (
		path    = defaultConfigFile
		scratch = utils.DefaultConfig()
		first   = flag.NewFlagSet("gol", flag.ContinueOnError)
	)
	first.StringVar(&path, "config", path, "JSON configuration file")
	scratch.Bind(first)
	if err := first.Parse(args); err != nil {
		return scratch, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}

	config, err := utils.LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		log.WithField("path", path).Info("using default configuration, file not found")
		config = utils.DefaultConfig()
	}

	second := flag.NewFlagSet("gol", flag.ContinueOnError)
	second.String("config", path, "JSON configuration file")
	config.Bind(second)
	if err = second.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}
	return config, nil
}

// newController builds a controller wired to the configured strategy, pool and logger
func newController(config utils.Config) *sim.Controller {
	opts := []sim.Option{
		sim.WithLogger(log.Log),
		sim.WithListener(func(e sim.Event) {
			log.WithField("event", fmt.Sprintf("%T", e)).Debug(e.String())
		}),
	}
	if config.UseBoundedGrid {
		opts = append(opts, sim.WithStrategy(model.StrategyBounded))
	}
	if config.UseMemoryPool {
		opts = append(opts, sim.WithPool(model.NewGridPool()))
	}
	return sim.New(opts...)
}

// placeInitialCells places the configured cells and patterns, then optionally fills up the rest at random
func placeInitialCells(ctrl *sim.Controller, config utils.Config, randomFill bool) {
	for _, c := range config.Cells {
		ctrl.Place(c[0], c[1])
	}
	for _, p := range config.Patterns {
		pattern, ok := model.PatternByName(p.Name)
		if !ok {
			log.WithField("pattern", p.Name).Warn("unknown pattern")
			continue
		}
		pattern.Place(p.X, p.Y, ctrl.Place)
	}

	st := ctrl.Status()
	if !randomFill || st.Phase != sim.Placing {
		return
	}
	rng := rand.New(rand.NewSource(config.Seed))
	model.RandomPlacement(rng, config.Width, config.Height, st.Remaining(), ctrl.Place)
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, st sim.Status) {
	fmt.Fprintf(out, "Features: Memory Pool: %v, Bounded: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Max cycles: %d\n",
		config.Width, config.Height, st.Alive, config.MaxCycles)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, st sim.Status, snap model.Snapshot, boxSize int, stats *utils.Stats) {
	fmt.Fprintf(out, "Cycle: %d | Living: %d | Density: %.1f%% | Bounding box: %d cells\n",
		st.Cycle, st.Alive, utils.Density(st.Alive, snap.Width(), snap.Height()), boxSize)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

// runPlain prints every generation until the game ends or ctx is cancelled
func runPlain(ctx context.Context, ctrl *sim.Controller, config utils.Config, out io.Writer) error {
	if st := ctrl.Status(); st.Phase != sim.Running {
		return errors.Errorf("[runPlain] only %d of %d starting cells could be placed", st.Placed, st.Target)
	}

	var (
		renderer      = model.NewTerminalRenderer(out)
		stats         = utils.NewStats()
		animate       = config.FrameRate > 0
		lastFrameTime = time.Now()
	)
	displayGameInfo(out, config, ctrl.Status())

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
				stats.TotalGenerations, stats.Runtime().Seconds())
			return errors.Wrap(ctx.Err(), "[runPlain] interrupted")
		default:
		}

		if animate {
			renderer.Clear()
		}
		snap := ctrl.Snapshot()
		displayGameStatus(out, ctrl.Status(), snap, snap.BoundingBoxSize(), stats)
		if err := renderer.Display(snap); err != nil {
			return errors.Wrap(err, "[runPlain] failed to render")
		}

		frameStart := time.Now()
		st := ctrl.Tick()
		if st.Phase == sim.Ended {
			return nil
		}
		stats.Update(st.Cycle, st.Alive, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if animate {
			time.Sleep(config.FrameRate)
		}
	}
}

// printEnd prints the end message once the game is over
func printEnd(ctrl *sim.Controller, out io.Writer) {
	st := ctrl.Status()
	if st.Phase != sim.Ended {
		return
	}
	fmt.Fprintln(out, sim.GameEnded{Cycle: st.Cycle, Alive: st.Alive, Reason: st.Reason})
}

// frameTPS converts the pacing delay into ticks per second
func frameTPS(frame time.Duration) int {
	if frame <= 0 {
		return 60
	}
	return max(1, int(time.Second/frame))
}
