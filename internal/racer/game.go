// Package racer implements the lane racer: the player steers a car left and
// right to dodge oncoming traffic, scoring a point for every car that
// scrolls past, until a collision ends the round.
package racer

import (
	"math/rand"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Game is the round state machine. It exclusively owns the car, the live
// obstacles and the round counters; nothing else mutates them.
type Game struct {
	cfg       config.RacerConfig
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	car       Car
	obstacles []Obstacle
	spawner   *Spawner
	score     int
	phase     core.Phase
	tickCount int            // Ticks played in the current round
	rounds    int            // Rounds started since Reset
	frame     *core.DrawList // Reused every tick
}

// New creates a racer with the given tuning. Call Reset before stepping.
func New(cfg config.RacerConfig) *Game {
	return &Game{
		cfg:   cfg,
		frame: core.NewDrawList(64),
	}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset binds the game to a runtime context, reseeds the lane RNG and starts
// a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(g.rng, runtime.ScreenW, g.cfg.Road.LaneWidth, g.cfg.Obstacles)
	g.rounds = 0
	g.newRound()
}

// SetLaneSource replaces the lane picker. Used to make spawning deterministic.
func (g *Game) SetLaneSource(src IntnSource) {
	g.spawner.rng = src
}

// newRound reinitializes the round in place: score, phase, spawn timer,
// car position and the obstacle set.
func (g *Game) newRound() {
	g.car = NewCar(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Road.LaneWidth, g.cfg.Car)
	g.obstacles = g.obstacles[:0]
	g.spawner.Reset()
	g.score = 0
	g.phase = core.PhasePlaying
	g.tickCount = 0
	g.rounds++
}

// Step advances the game by one tick and returns the draw list emitted
// during it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseGameOver {
		return g.stepGameOver(in)
	}
	return g.stepPlaying(in)
}

// stepPlaying runs one simulation tick.
func (g *Game) stepPlaying(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.tickCount++

	// Both directions apply when both are held; right runs last.
	if in.Has(core.ActionLeft) {
		g.car.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.car.MoveRight()
	}

	if o, ok := g.spawner.Tick(); ok {
		g.obstacles = append(g.obstacles, o)
	}

	if g.advanceObstacles() {
		g.phase = core.PhaseGameOver
	} else {
		g.score += g.removeOffScreen()
	}

	g.Render(g.frame)
	return core.StepResult{State: g.State(), Frame: g.frame}
}

// advanceObstacles moves obstacles down in spawn order and reports whether
// one of them hit the car. Processing stops at the first hit: obstacles
// after it are neither moved nor checked this tick.
func (g *Game) advanceObstacles() bool {
	carRect := g.car.Rect()
	for i := range g.obstacles {
		g.obstacles[i].Move()
		if carRect.Intersects(g.obstacles[i].Rect()) {
			return true
		}
	}
	return false
}

// removeOffScreen drops obstacles below the screen and returns how many
// were removed.
func (g *Game) removeOffScreen() int {
	kept := g.obstacles[:0]
	removed := 0
	for _, o := range g.obstacles {
		if o.OffScreen(g.runtime.ScreenH) {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept
	return removed
}

// stepGameOver shows the final score and waits for restart or quit.
// The car and obstacles stay frozen.
func (g *Game) stepGameOver(in core.InputFrame) core.StepResult {
	g.Render(g.frame)
	frame := g.frame

	switch {
	case in.Has(core.ActionRestart):
		// The frame above still shows the game-over screen; the new round
		// is first drawn on the next tick.
		g.newRound()
	case in.Has(core.ActionQuit):
		return core.StepResult{State: g.State(), Quit: true, Frame: frame}
	}

	return core.StepResult{State: g.State(), Frame: frame}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Car returns a copy of the player's car.
func (g *Game) Car() Car {
	return g.car
}

// Obstacles returns the live obstacles in spawn order. The slice is owned
// by the game and only valid until the next Step.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles
}

// Lanes returns the three obstacle spawn positions.
func (g *Game) Lanes() [LaneCount]float64 {
	return g.spawner.Lanes()
}

// Ticks returns the number of ticks played in the current round.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Rounds returns how many rounds have been started since Reset.
func (g *Game) Rounds() int {
	return g.rounds
}
