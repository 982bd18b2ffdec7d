// Package term is an interactive terminal front end: click cells to place them, then watch the run.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/RdeBiotec/Game-of-Life/sim"
	"github.com/RdeBiotec/Game-of-Life/utils"
	"github.com/RdeBiotec/Game-of-Life/view"
)

const (
	cellCols      = 2 // terminal cells are about twice as tall as wide
	minFrame      = time.Millisecond
	statusPadding = 1
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// App drives a controller from a tcell screen
type App struct {
	screen tcell.Screen
	ctrl   *sim.Controller
	layout view.Layout
	frame  time.Duration
	stats  *utils.Stats
	log    log.Interface

	paused    bool
	tickOnce  bool
	lastFrame time.Time
}

// New builds an App for an initialised screen and a configured controller
func New(screen tcell.Screen, ctrl *sim.Controller, frame time.Duration, logger log.Interface) *App {
	cfg := ctrl.Config()
	return &App{
		screen: screen,
		ctrl:   ctrl,
		layout: view.Layout{Cols: cfg.Width, Rows: cfg.Height, CellW: cellCols, CellH: 1},
		frame:  max(frame, minFrame),
		stats:  utils.NewStats(),
		log:    logger,
	}
}

// HandleEvent applies one input event and reports whether the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ':
			a.paused = !a.paused
		case ev.Rune() == 'n':
			a.tickOnce = true
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 || a.ctrl.Phase() != sim.Placing {
			return false
		}
		px, py := ev.Position()
		x, y, ok := a.layout.CellAt(px, py)
		if !ok {
			a.log.WithFields(log.Fields{"px": px, "py": py}).Debug("click outside board")
			return false
		}
		a.ctrl.Place(x, y)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// Step ticks the controller unless paused. A pending single step runs even while paused.
func (a *App) Step() sim.Status {
	if a.paused && !a.tickOnce {
		return a.ctrl.Status()
	}
	a.tickOnce = false

	st := a.ctrl.Tick()
	if st.Phase == sim.Running {
		now := time.Now()
		if !a.lastFrame.IsZero() {
			a.stats.Update(st.Cycle, st.Alive, now.Sub(a.lastFrame))
		}
		a.lastFrame = now
	}
	return st
}

// Draw renders the current generation and the status lines
func (a *App) Draw() {
	snap := a.ctrl.Snapshot()
	st := a.ctrl.Status()

	a.screen.Clear()
	snap.Each(func(x, y int, alive bool) {
		style := deadStyle
		if alive {
			style = aliveStyle
		}
		px, py := a.layout.CellRect(x, y)
		for dx := 0; dx < a.layout.CellW; dx++ {
			a.screen.SetContent(px+dx, py, ' ', nil, style)
		}
	})

	row := a.layout.Height() + statusPadding
	for _, line := range a.statusLines(st, snap.Width(), snap.Height()) {
		drawText(a.screen, 0, row, statusStyle, line)
		row++
	}
	a.screen.Show()
}

func (a *App) statusLines(st sim.Status, width, height int) []string {
	switch st.Phase {
	case sim.Placing:
		return []string{
			sim.CellPlaced{Remaining: st.Remaining()}.String(),
			"Click dead cells to bring them to life. q quits.",
		}
	case sim.Ended:
		return []string{
			sim.GameEnded{Cycle: st.Cycle, Alive: st.Alive, Reason: st.Reason}.String(),
			"Press q to quit.",
		}
	}

	state := "running"
	if a.paused {
		state = "paused (n steps)"
	}
	return []string{
		fmt.Sprintf("Cycle: %d | Living: %d | Density: %.1f%% | %s",
			st.Cycle, st.Alive, utils.Density(st.Alive, width, height), state),
		fmt.Sprintf("%.1f gen/sec | Avg Pop: %.1f | space pauses, q quits",
			a.stats.GenerationsPerSecond, a.stats.AveragePopulation),
	}
}

// Run processes input and ticks until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "[Run] interrupted")
		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
		a.Draw()
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
