package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/RdeBiotec/Game-of-Life/rules"
)

// Strategy selects how the next generation is computed. All strategies give the same result.
type Strategy int

const (
	// StrategyParallel evaluates every cell, splitting rows across CPUs.
	StrategyParallel Strategy = iota
	// StrategyBounded evaluates only the live region plus a one-cell margin.
	StrategyBounded
)

func (s Strategy) String() string {
	switch s {
	case StrategyParallel:
		return "parallel"
	case StrategyBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

func (g *Grid) emptyLike(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return newGrid(g.width, g.height)
}

// NextGenerationParallel calculates the next generation using parallel processing
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := g.emptyLike(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait is the join point before the grid is handed out
	_ = eg.Wait()

	return next
}

// NextGenerationBounded calculates the next generation only in the active region
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	next := g.emptyLike(pool)

	b := g.activeBounds()
	if !b.valid {
		return next
	}

	// Process only the active region + 1 margin
	minX := max(0, b.minX-1)
	maxX := min(g.width-1, b.maxX+1)
	minY := max(0, b.minY-1)
	maxY := min(g.height-1, b.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}

	return next
}

// NextGeneration returns a new grid holding the following generation. g is not modified.
func (g *Grid) NextGeneration(strategy Strategy, pool *GridPool) *Grid {
	if strategy == StrategyBounded {
		return g.NextGenerationBounded(pool)
	}
	return g.NextGenerationParallel(pool)
}
