//go:build ebiten

// Package gui is the desktop front end: cells are colored rectangles placed with the mouse.
package gui

import (
	"context"
	"fmt"
	"image/color"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/RdeBiotec/Game-of-Life/sim"
	"github.com/RdeBiotec/Game-of-Life/utils"
	"github.com/RdeBiotec/Game-of-Life/view"
)

var (
	aliveColor   = color.White
	deadColor    = color.Black
	outlineColor = color.RGBA{R: 0xff, G: 0x42, B: 0x42, A: 0xff}
)

// Game adapts a controller to the ebiten.Game interface.
type Game struct {
	ctx    context.Context
	ctrl   *sim.Controller
	layout view.Layout
	stats  *utils.Stats
	log    log.Interface

	paused   bool
	tickOnce bool
}

// New constructs a Game for a configured controller, cellSize pixels per cell.
func New(ctx context.Context, ctrl *sim.Controller, cellSize int, logger log.Interface) *Game {
	cfg := ctrl.Config()
	cellSize = max(cellSize, 1)
	return &Game{
		ctx:    ctx,
		ctrl:   ctrl,
		layout: view.Layout{Cols: cfg.Width, Rows: cfg.Height, CellW: cellSize, CellH: cellSize},
		stats:  utils.NewStats(),
		log:    logger,
	}
}

// Update handles input and advances the simulation once per frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if g.ctrl.Phase() == sim.Placing && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if x, y, ok := g.layout.CellAt(px, py); ok {
			g.ctrl.Place(x, y)
		} else {
			g.log.WithFields(log.Fields{"px": px, "py": py}).Debug("click outside board")
		}
		return nil
	}

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		if st := g.ctrl.Tick(); st.Phase == sim.Running {
			g.stats.Update(st.Cycle, st.Alive, 0)
		}
	}
	return nil
}

// Draw renders the current generation; it never advances the simulation.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	w, h := float32(g.layout.CellW), float32(g.layout.CellH)
	snap.Each(func(x, y int, alive bool) {
		fill := deadColor
		if alive {
			fill = aliveColor
		}
		px, py := g.layout.CellRect(x, y)
		vector.DrawFilledRect(screen, float32(px), float32(py), w, h, fill, false)
		vector.StrokeRect(screen, float32(px), float32(py), w, h, 1, outlineColor, false)
	})
	ebitenutil.DebugPrint(screen, g.statusText())
}

func (g *Game) statusText() string {
	st := g.ctrl.Status()
	switch st.Phase {
	case sim.Placing:
		return sim.CellPlaced{Remaining: st.Remaining()}.String()
	case sim.Ended:
		return sim.GameEnded{Cycle: st.Cycle, Alive: st.Alive, Reason: st.Reason}.String()
	}
	return fmt.Sprintf("Cycle: %d  Living: %d  Avg Pop: %.1f  TPS: %.0f",
		st.Cycle, st.Alive, g.stats.AveragePopulation, ebiten.ActualTPS())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width(), g.layout.Height()
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, ctrl *sim.Controller, cellSize, tps int, logger log.Interface) error {
	game := New(ctx, ctrl, cellSize, logger)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(max(tps, 1))
	ebiten.SetWindowSize(game.layout.Width(), game.layout.Height())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] ebiten")
	}
	return nil
}
