package sim

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Steinstark/game-of-life/model"
)

// DefaultTickInterval is the delay between generations while running.
const DefaultTickInterval = 500 * time.Millisecond

// Surface is the display/edit collaborator the controller drives. Board
// implements it; anything that can hold a displayed cell set and honor the
// edit lock will do.
type Surface interface {
	// LiveCells returns the currently displayed live-cell set.
	LiveCells() []model.Coord
	// WasEdited reports pending manual edits and clears the flag.
	WasEdited() bool
	// PushLiveCells replaces the displayed set with a new generation.
	PushLiveCells(cells []model.Coord)
	// SetEditLocked enables or disables manual edits.
	SetEditLocked(locked bool)
}

// Controller mediates between the board surface and the automaton engine.
// It owns the run/pause state machine: Start and Stop may be called from any
// goroutine, Run is the simulation loop ticking one generation per interval
// while running. All shared state lives behind one mutex and the loop never
// holds it while sleeping.
type Controller struct {
	// OnTick, when set, is called after every pushed generation with the new
	// generation number, the population, and how long the tick took.
	OnTick func(generation, population int, took time.Duration)

	surface  Surface
	interval time.Duration

	mu     sync.Mutex
	cond   *sync.Cond
	engine *model.Engine
	paused bool
	stable bool
}

// NewController creates a paused controller driving surface from engine.
// A non-positive interval falls back to DefaultTickInterval.
func NewController(engine *model.Engine, surface Surface, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	c := &Controller{
		surface:  surface,
		interval: interval,
		engine:   engine,
		paused:   true,
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Start resumes the simulation. Safe to call from any goroutine.
func (c *Controller) Start() {
	c.mu.Lock()
	c.paused = false
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Stop pauses the simulation once the in-flight tick, if any, completes.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.paused = true
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Stable reports whether the last tick found a fixed point. A stable board
// pauses itself, and starting it again still burns one tick before the
// controller notices nothing changed.
func (c *Controller) Stable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stable
}

// Generation returns the engine's current generation counter.
func (c *Controller) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Generation()
}

// Run drives the simulation until ctx is cancelled. While paused the board
// surface stays unlocked for edits and the loop blocks on the condition
// variable, re-checking the flag after every wake. Each tick locks the
// surface, rebuilds the engine when the surface reports manual edits,
// advances one generation, pushes the result, and then sleeps the tick
// interval. A tick that changes nothing pauses the controller.
func (c *Controller) Run(ctx context.Context) error {
	// cond.Wait cannot watch ctx, so wake all waiters when it ends. Taking
	// the mutex before broadcasting keeps the wakeup from racing a waiter
	// that has checked ctx but not yet parked.
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	for {
		c.mu.Lock()
		for c.paused {
			c.surface.SetEditLocked(false)
			if ctx.Err() != nil {
				c.mu.Unlock()
				return ctx.Err()
			}
			c.cond.Wait()
		}
		if ctx.Err() != nil {
			c.mu.Unlock()
			return ctx.Err()
		}
		c.surface.SetEditLocked(true)

		if c.surface.WasEdited() {
			if err := c.rebuildLocked(); err != nil {
				c.mu.Unlock()
				return err
			}
		}

		tickStart := time.Now()
		changed := c.engine.Advance()
		generation, population := c.engine.Generation(), c.engine.Population()
		c.surface.PushLiveCells(c.engine.LiveCells())
		c.stable = !changed
		if !changed {
			c.paused = true
		}
		c.mu.Unlock()

		if c.OnTick != nil {
			c.OnTick(generation, population, time.Since(tickStart))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.interval):
		}
	}
}

// rebuildLocked replaces the engine with one seeded from the surface's
// displayed cells, keeping the copy-in invariant intact after arbitrary
// edits. Caller holds c.mu.
func (c *Controller) rebuildLocked() error {
	engine, err := model.New(c.engine.Width(), c.engine.Height(), c.surface.LiveCells())
	if err != nil {
		return errors.Wrap(err, "[rebuildLocked] failed to rebuild engine from edited board")
	}
	c.engine = engine
	return nil
}
