package racer

import (
	"math"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// DefaultLookahead is how far above the car the autopilot scans for traffic.
const DefaultLookahead = 300.0

// Autopilot is an input source that drives the car by itself. It steers
// toward the nearest lane with no traffic within the lookahead window and
// restarts immediately after a crash.
type Autopilot struct {
	game      *Game
	lookahead float64
}

// NewAutopilot creates an autopilot for g.
func NewAutopilot(g *Game, lookahead float64) *Autopilot {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return &Autopilot{game: g, lookahead: lookahead}
}

// Poll returns the input for the coming tick.
func (a *Autopilot) Poll() core.InputFrame {
	in := core.NewInputFrame()

	if a.game.State().GameOver() {
		in.Set(core.ActionRestart)
		return in
	}

	car := a.game.Car()
	if !a.danger(car.X) {
		return in
	}

	target, ok := a.safestLane(car)
	if !ok {
		return in
	}

	switch {
	case target < car.X-car.Speed/2:
		in.Set(core.ActionLeft)
	case target > car.X+car.Speed/2:
		in.Set(core.ActionRight)
	}
	return in
}

// safestLane returns the car x of the nearest lane free of traffic.
func (a *Autopilot) safestLane(car Car) (float64, bool) {
	best, bestDist := 0.0, math.Inf(1)
	found := false

	for _, laneX := range a.game.Lanes() {
		// Centre the car on the lane's obstacle slot
		x := laneX + (float64(a.game.cfg.Obstacles.Width)-car.Width)/2
		minX, maxX := car.Band()
		x = math.Max(minX, math.Min(maxX, x))

		if a.danger(x) {
			continue
		}
		if d := math.Abs(x - car.X); d < bestDist {
			best, bestDist, found = x, d, true
		}
	}
	return best, found
}

// danger reports whether an obstacle occupies the car's column at x within
// the lookahead window.
func (a *Autopilot) danger(x float64) bool {
	car := a.game.Car()
	window := core.NewRect(x, car.Y-a.lookahead, car.Width, car.Height+a.lookahead)
	for _, o := range a.game.Obstacles() {
		if window.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
