package model

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, w, h int, alive ...[2]int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	for _, c := range alive {
		if err := g.SetAlive(c[0], c[1], true); err != nil {
			t.Fatalf("SetAlive%v: %v", c, err)
		}
	}
	return g
}

func liveSet(g *Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsAlive(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func assertLive(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	got := liveSet(g)
	if len(got) != len(want) {
		t.Fatalf("live cells = %v, want %v", got, want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("cell %v dead, live cells = %v", c, got)
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 3}, {7, 2}, {100, 100}} {
		g := mustGrid(t, size[0], size[1])
		if g.Width() != size[0] || g.Height() != size[1] {
			t.Fatalf("size = %dx%d, want %dx%d", g.Width(), g.Height(), size[0], size[1])
		}
		if n := g.CountAlive(); n != 0 {
			t.Fatalf("new %dx%d grid has %d live cells", size[0], size[1], n)
		}
	}
}

func TestNewGridRejectsNonPositive(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := NewGrid(size[0], size[1]); errors.Cause(err) != ErrInvalidDimensions {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestSetAliveOutOfBounds(t *testing.T) {
	g := mustGrid(t, 4, 3)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if err := g.SetAlive(c[0], c[1], true); errors.Cause(err) != ErrOutOfBounds {
			t.Fatalf("SetAlive%v err = %v, want ErrOutOfBounds", c, err)
		}
		if g.IsAlive(c[0], c[1]) {
			t.Fatalf("IsAlive%v outside the grid reported alive", c)
		}
	}
	if g.CountAlive() != 0 {
		t.Fatal("out of bounds writes changed the grid")
	}
}

func TestNeighborCandidates(t *testing.T) {
	g := mustGrid(t, 5, 4)
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{4, 0, 3},
		{0, 3, 3},
		{4, 3, 3},
		{2, 0, 5},
		{0, 1, 5},
		{4, 2, 5},
		{1, 3, 5},
		{2, 2, 8},
	}
	for _, tt := range tests {
		if got := g.NeighborCandidates(tt.x, tt.y); got != tt.want {
			t.Fatalf("NeighborCandidates(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	line := mustGrid(t, 1, 3)
	if got := line.NeighborCandidates(0, 1); got != 2 {
		t.Fatalf("1-wide middle cell candidates = %d, want 2", got)
	}
}

func TestCountNeighborsDoesNotWrap(t *testing.T) {
	full := mustGrid(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			full.SetAlive(x, y, true)
		}
	}
	if got := full.CountNeighbors(0, 0); got != 3 {
		t.Fatalf("corner of full grid has %d neighbors, want 3", got)
	}
	if got := full.CountNeighbors(1, 0); got != 5 {
		t.Fatalf("edge of full grid has %d neighbors, want 5", got)
	}
	if got := full.CountNeighbors(1, 1); got != 8 {
		t.Fatalf("interior of full grid has %d neighbors, want 8", got)
	}

	// Opposite edges only touch on a torus
	g := mustGrid(t, 4, 4, [2]int{3, 0}, [2]int{0, 3}, [2]int{3, 3})
	if got := g.CountNeighbors(0, 0); got != 0 {
		t.Fatalf("corner counted %d wrapped neighbors", got)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, strategy := range []Strategy{StrategyParallel, StrategyBounded} {
		t.Run(strategy.String(), func(t *testing.T) {
			g := mustGrid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

			g = g.NextGeneration(strategy, nil)
			assertLive(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

			g = g.NextGeneration(strategy, nil)
			assertLive(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
		})
	}
}

func TestBlinkerAgainstEdgeLosesCells(t *testing.T) {
	// On a torus the blinker on the bottom row would keep oscillating
	g := mustGrid(t, 5, 5, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	g = g.NextGeneration(StrategyParallel, nil)
	assertLive(t, g, [2]int{2, 0}, [2]int{2, 1})

	g = g.NextGeneration(StrategyParallel, nil)
	if g.CountAlive() != 0 {
		t.Fatalf("expected extinction, got %v", liveSet(g))
	}
}

func TestBlockInCornerIsStill(t *testing.T) {
	g := mustGrid(t, 6, 6, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	for i := 0; i < 3; i++ {
		g = g.NextGeneration(StrategyBounded, nil)
	}
	assertLive(t, g, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
}

func TestNextGenerationLeavesInputUntouched(t *testing.T) {
	g := mustGrid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := g.Snapshot()

	next := g.NextGeneration(StrategyParallel, nil)
	if next == g {
		t.Fatal("NextGeneration returned its input")
	}
	after := g.Snapshot()
	before.Each(func(x, y int, alive bool) {
		if after.Alive(x, y) != alive {
			t.Fatalf("input cell (%d,%d) changed", x, y)
		}
	})
}

func TestStrategiesAgreeAndAreDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		w, h := 1+rng.Intn(30), 1+rng.Intn(30)
		g := mustGrid(t, w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.SetAlive(x, y, rng.Float64() < 0.35)
			}
		}

		pool := NewGridPool()
		for gen := 0; gen < 10; gen++ {
			a := g.NextGeneration(StrategyParallel, nil)
			b := g.NextGeneration(StrategyBounded, pool)
			c := g.NextGeneration(StrategyParallel, pool)
			sa, sb, sc := a.Snapshot(), b.Snapshot(), c.Snapshot()
			sa.Each(func(x, y int, alive bool) {
				if sb.Alive(x, y) != alive || sc.Alive(x, y) != alive {
					t.Fatalf("trial %d gen %d: strategies disagree at (%d,%d)", trial, gen, x, y)
				}
			})
			GridToPool(b, pool)
			GridToPool(c, pool)
			g = a
		}
	}
}

func TestExtinctGridStaysExtinct(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, strategy := range []Strategy{StrategyParallel, StrategyBounded} {
		if n := g.NextGeneration(strategy, nil).CountAlive(); n != 0 {
			t.Fatalf("%s: dead grid produced %d live cells", strategy, n)
		}
	}
}

func TestBoundingBoxSize(t *testing.T) {
	g := mustGrid(t, 10, 10)
	if g.Snapshot().BoundingBoxSize() != 0 {
		t.Fatal("empty grid should have no bounding box")
	}
	g.SetAlive(2, 3, true)
	g.SetAlive(5, 4, true)
	if got := g.Snapshot().BoundingBoxSize(); got != 8 {
		t.Fatalf("BoundingBoxSize = %d, want 8", got)
	}
}

func TestGridPoolReturnsClearedGrids(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(4, 4)
	g.SetAlive(1, 1, true)
	pool.Put(g)

	again := pool.Get(6, 3)
	if again.Width() != 6 || again.Height() != 3 {
		t.Fatalf("pooled grid size = %dx%d, want 6x3", again.Width(), again.Height())
	}
	if again.CountAlive() != 0 {
		t.Fatal("pooled grid was not cleared")
	}

	GridToPool(again, nil)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := mustGrid(t, 3, 2, [2]int{0, 0})
	s := g.Snapshot()

	g.SetAlive(0, 0, false)
	g.SetAlive(2, 1, true)

	if !s.Alive(0, 0) || s.Alive(2, 1) {
		t.Fatal("snapshot follows later grid writes")
	}
	if s.LiveCells() != 1 {
		t.Fatalf("LiveCells = %d, want 1", s.LiveCells())
	}
	if s.Alive(-1, 0) || s.Alive(3, 0) {
		t.Fatal("out of range snapshot reads should be dead")
	}

	visited := 0
	s.Each(func(x, y int, alive bool) { visited++ })
	if visited != 6 {
		t.Fatalf("Each visited %d cells, want 6", visited)
	}
}

func TestTerminalRendererDrawsTopRowFirst(t *testing.T) {
	g := mustGrid(t, 2, 2, [2]int{1, 1})
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Display(g.Snapshot()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if lines[0] != gridPosEmpty+gridPosBlock {
		t.Fatalf("top line = %q", lines[0])
	}
	if lines[1] != gridPosEmpty+gridPosEmpty {
		t.Fatalf("bottom line = %q", lines[1])
	}
}
