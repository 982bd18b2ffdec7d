// Package sim runs one Game of Life from configuration through placement to the end of the game.
package sim

import (
	"sync"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/RdeBiotec/Game-of-Life/model"
	"github.com/RdeBiotec/Game-of-Life/utils"
)

var (
	// ErrInvalidTransition is returned for requests the current phase does not accept.
	ErrInvalidTransition = errors.New("operation not allowed in current phase")
	// ErrOutOfBounds is returned for placement outside the grid.
	ErrOutOfBounds = model.ErrOutOfBounds
)

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle messages
func WithLogger(l log.Interface) Option {
	return func(c *Controller) { c.log = l }
}

// WithListener registers the receiver of run events
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithStrategy selects how generations are computed
func WithStrategy(s model.Strategy) Option {
	return func(c *Controller) { c.strategy = s }
}

// WithPool recycles generation buffers through pool
func WithPool(pool *model.GridPool) Option {
	return func(c *Controller) { c.pool = pool }
}

// Controller owns the grid and every run counter. It is the only writer of both.
type Controller struct {
	mu sync.RWMutex

	cfg    utils.RunConfig
	grid   *model.Grid
	phase  Phase
	cycle  int
	placed int
	alive  int
	reason EndReason

	strategy model.Strategy
	pool     *model.GridPool
	log      log.Interface
	listener Listener
	pending  []Event
}

// New returns a controller waiting for its configuration
func New(opts ...Option) *Controller {
	c := &Controller{
		phase:    Configuring,
		strategy: model.StrategyParallel,
		log:      log.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure validates cfg, creates the dead grid and starts the placement phase.
// On error the controller stays in Configuring.
func (c *Controller) Configure(cfg utils.RunConfig) error {
	c.mu.Lock()
	defer c.flush()
	defer c.mu.Unlock()

	if c.phase != Configuring {
		return errors.Wrapf(ErrInvalidTransition, "[Configure] controller is %v", c.phase)
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithMessage(err, "[Configure]")
	}

	grid, err := model.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return errors.WithMessage(err, "[Configure]")
	}

	c.cfg = cfg
	c.grid = grid
	c.log.WithFields(log.Fields{
		"width":       cfg.Width,
		"height":      cfg.Height,
		"start_alive": cfg.StartAlive,
		"max_cycles":  cfg.MaxCycles,
		"strategy":    c.strategy.String(),
	}).Info("configured")
	c.setPhase(Placing)
	return nil
}

// ToggleAlive brings a dead cell to life during placement.
// Placing an already living cell is a no-op and does not count.
func (c *Controller) ToggleAlive(x, y int) (bool, error) {
	c.mu.Lock()
	defer c.flush()
	defer c.mu.Unlock()

	if c.phase != Placing {
		return false, errors.Wrapf(ErrInvalidTransition, "[ToggleAlive] controller is %v", c.phase)
	}
	if !c.grid.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[ToggleAlive] (%d,%d)", x, y)
	}
	if c.grid.IsAlive(x, y) {
		return false, nil
	}

	if err := c.grid.SetAlive(x, y, true); err != nil {
		return false, errors.WithMessage(err, "[ToggleAlive]")
	}
	c.placed++
	c.alive++
	c.emit(CellPlaced{X: x, Y: y, Remaining: c.cfg.StartAlive - c.placed})

	if c.placed == c.cfg.StartAlive {
		c.setPhase(Running)
	}
	return true, nil
}

// Place adapts ToggleAlive to model.PlaceFunc, logging and dropping rejected cells
func (c *Controller) Place(x, y int) bool {
	ok, err := c.ToggleAlive(x, y)
	if err != nil {
		c.log.WithError(err).WithFields(log.Fields{"x": x, "y": y}).Debug("placement ignored")
	}
	return ok
}

// Tick advances a running game by one step; in every other phase it does nothing.
func (c *Controller) Tick() Status {
	c.mu.Lock()
	defer c.flush()
	defer c.mu.Unlock()

	if c.phase != Running {
		return c.status()
	}

	alive := c.grid.CountAlive()
	c.alive = alive
	switch {
	case alive == 0:
		c.end(ReasonExtinct)
	case c.cfg.MaxCycles != 0 && c.cycle == c.cfg.MaxCycles:
		c.end(ReasonMaxCycles)
	default:
		next := c.grid.NextGeneration(c.strategy, c.pool)
		model.GridToPool(c.grid, c.pool)
		c.grid = next
		c.cycle++
		c.alive = next.CountAlive()
		c.emit(GenerationComplete{Cycle: c.cycle, Alive: c.alive})
	}
	return c.status()
}

// Snapshot returns a copy of the current generation, or an empty snapshot before configuration.
func (c *Controller) Snapshot() model.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.grid == nil {
		return model.Snapshot{}
	}
	return c.grid.Snapshot()
}

// Status returns the current phase and counters
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status()
}

// Phase returns the current lifecycle stage
func (c *Controller) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Config returns the accepted run configuration
func (c *Controller) Config() utils.RunConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func (c *Controller) status() Status {
	return Status{
		Phase:  c.phase,
		Cycle:  c.cycle,
		Alive:  c.alive,
		Placed: c.placed,
		Target: c.cfg.StartAlive,
		Reason: c.reason,
	}
}

func (c *Controller) end(reason EndReason) {
	c.reason = reason
	c.setPhase(Ended)
	c.emit(GameEnded{Cycle: c.cycle, Alive: c.alive, Reason: reason})
}

func (c *Controller) setPhase(to Phase) {
	from := c.phase
	c.phase = to
	entry := c.log.WithFields(log.Fields{
		"from":  from.String(),
		"phase": to.String(),
		"cycle": c.cycle,
		"alive": c.alive,
	})
	if c.reason != ReasonNone {
		entry = entry.WithField("reason", string(c.reason))
	}
	entry.Info("phase changed")
	c.emit(PhaseChanged{From: from, To: to})
}

// emit queues an event; it is delivered by flush once the lock is released.
func (c *Controller) emit(e Event) {
	if c.listener != nil {
		c.pending = append(c.pending, e)
	}
}

func (c *Controller) flush() {
	c.mu.Lock()
	events := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, e := range events {
		c.listener(e)
	}
}
