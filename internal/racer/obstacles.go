package racer

import (
	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// LaneCount is the number of lanes obstacles spawn in.
const LaneCount = 3

// Obstacle is an oncoming car scrolling down the road.
type Obstacle struct {
	X, Y   float64 // Top-left corner in pixels
	Width  float64
	Height float64
	Speed  float64 // Downward pixels per tick
}

// Move advances the obstacle down by its speed.
func (o *Obstacle) Move() {
	o.Y += o.Speed
}

// OffScreen reports whether the obstacle has left the bottom of the screen.
func (o Obstacle) OffScreen(screenH int) bool {
	return o.Y > float64(screenH)
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// IntnSource picks a uniform integer in [0, n). *rand.Rand satisfies it.
type IntnSource interface {
	Intn(n int) int
}

// LanePositions returns the spawn x of the left, centre and right lanes.
// The outer lanes sit inset pixels inside the shoulders; the centre lane
// is centred on the screen.
func LanePositions(screenW, laneWidth int, cfg config.ObstacleConfig) [LaneCount]float64 {
	return [LaneCount]float64{
		float64(laneWidth + cfg.LaneInset),
		float64(screenW/2 - cfg.Width/2),
		float64(screenW - laneWidth - cfg.Width - cfg.LaneInset),
	}
}

// Spawner emits a new obstacle once its tick counter exceeds the interval.
type Spawner struct {
	timer    int
	interval int
	lanes    [LaneCount]float64
	rng      IntnSource
	cfg      config.ObstacleConfig
}

// NewSpawner creates a spawner drawing lanes from rng.
func NewSpawner(rng IntnSource, screenW, laneWidth int, cfg config.ObstacleConfig) *Spawner {
	return &Spawner{
		interval: cfg.SpawnInterval,
		lanes:    LanePositions(screenW, laneWidth, cfg),
		rng:      rng,
		cfg:      cfg,
	}
}

// Tick advances the timer by one. When the timer exceeds the interval it is
// reset and a new obstacle is returned just above the visible area.
func (s *Spawner) Tick() (Obstacle, bool) {
	s.timer++
	if s.timer <= s.interval {
		return Obstacle{}, false
	}
	s.timer = 0

	lane := s.rng.Intn(LaneCount)
	return Obstacle{
		X:      s.lanes[lane],
		Y:      -float64(s.cfg.Height),
		Width:  float64(s.cfg.Width),
		Height: float64(s.cfg.Height),
		Speed:  s.cfg.Speed,
	}, true
}

// Reset zeroes the timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the current tick counter.
func (s *Spawner) Timer() int {
	return s.timer
}

// Lanes returns the fixed spawn positions.
func (s *Spawner) Lanes() [LaneCount]float64 {
	return s.lanes
}
