// Package loop runs the fixed-rate frame loop: wait for the next tick, poll
// input, step the simulation once, hand the emitted frame to the renderer
// and present it.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// Simulation is the state machine the driver advances.
type Simulation interface {
	Step(in core.InputFrame) core.StepResult
}

// InputSource returns a level-triggered input snapshot for the coming tick.
type InputSource interface {
	Poll() core.InputFrame
}

// Renderer consumes one frame's draw list and makes it visible.
type Renderer interface {
	Draw(frame *core.DrawList)
	Present() error
}

// Clock blocks until the next tick boundary.
type Clock interface {
	Wait(ctx context.Context) error
}

// Stats summarises a driver run.
type Stats struct {
	Ticks     uint64
	Rounds    int // Rounds that ended in a crash
	BestScore int
	LastScore int
}

// Driver owns the frame loop. It is not safe for concurrent use: a single
// goroutine polls, steps and renders, so every frame is fully simulated
// before the renderer sees it.
type Driver struct {
	sim      Simulation
	input    InputSource
	renderer Renderer
	logger   *log.Logger

	stats     Stats
	lastPhase core.Phase
	done      bool
}

// New creates a driver. A nil logger discards log output.
func New(sim Simulation, input InputSource, renderer Renderer, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		sim:      sim,
		input:    input,
		renderer: renderer,
		logger:   logger,
	}
}

// Tick runs exactly one iteration without waiting: input, step, render,
// present. It returns quit=true once the simulation asked to stop; further
// calls are no-ops.
func (d *Driver) Tick() (quit bool, err error) {
	if d.done {
		return true, nil
	}

	in := d.input.Poll()
	res := d.sim.Step(in)
	d.stats.Ticks++
	d.observe(res.State)

	if res.Quit {
		d.done = true
		d.logger.Info("quit requested", "tick", d.stats.Ticks, "score", res.State.Score)
		return true, nil
	}

	if res.Frame != nil {
		d.renderer.Draw(res.Frame)
	}
	if err := d.renderer.Present(); err != nil {
		return false, fmt.Errorf("loop: present frame %d: %w", d.stats.Ticks, err)
	}
	return false, nil
}

// Run waits on clock before every tick until the simulation quits or ctx is
// cancelled. Cancellation is treated like a quit request and is not an error.
func (d *Driver) Run(ctx context.Context, clock Clock) error {
	return d.RunTicks(ctx, clock, 0)
}

// RunTicks is Run with a budget: it also stops after maxTicks ticks.
// A zero budget means no limit.
func (d *Driver) RunTicks(ctx context.Context, clock Clock, maxTicks uint64) error {
	d.logger.Debug("frame loop started", "budget", maxTicks)
	for maxTicks == 0 || d.stats.Ticks < maxTicks {
		if err := clock.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				d.logger.Info("frame loop interrupted", "tick", d.stats.Ticks)
				return nil
			}
			return fmt.Errorf("loop: wait for tick: %w", err)
		}

		quit, err := d.Tick()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	d.logger.Debug("tick budget spent", "ticks", d.stats.Ticks)
	return nil
}

// Stats returns counters for the run so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// observe logs phase transitions and tracks scores.
func (d *Driver) observe(state core.GameState) {
	d.stats.LastScore = state.Score
	if state.Score > d.stats.BestScore {
		d.stats.BestScore = state.Score
	}

	if state.Phase == d.lastPhase {
		return
	}
	switch state.Phase {
	case core.PhaseGameOver:
		d.stats.Rounds++
		d.logger.Info("round over", "score", state.Score, "tick", d.stats.Ticks, "rounds", d.stats.Rounds)
	case core.PhasePlaying:
		d.logger.Debug("round restarted", "tick", d.stats.Ticks)
	}
	d.lastPhase = state.Phase
}

// TickerClock paces the loop at a fixed rate using a time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock firing tickRate times per second.
// Non-positive rates fall back to 60.
func NewTickerClock(tickRate int) *TickerClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait blocks until the next tick or until ctx is done.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// FreeClock never blocks. It runs the simulation as fast as possible, for
// tests and offline runs.
type FreeClock struct{}

// Wait returns immediately unless ctx is done.
func (FreeClock) Wait(ctx context.Context) error {
	return ctx.Err()
}
