package racer

import (
	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Car is the player's vehicle. It only moves horizontally and stays inside
// the drivable band between the road shoulders.
type Car struct {
	X, Y   float64 // Top-left corner in pixels
	Width  float64
	Height float64
	Speed  float64 // Horizontal pixels per tick while steering

	minX, maxX float64 // Drivable band
}

// NewCar places a car at its round-start position: horizontally centred,
// BottomOffset pixels above the bottom edge.
func NewCar(screenW, screenH, laneWidth int, cfg config.CarConfig) Car {
	return Car{
		X:      float64(screenW/2 - cfg.Width/2),
		Y:      float64(screenH - cfg.Height - cfg.BottomOffset),
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Speed:  cfg.Speed,
		minX:   float64(laneWidth),
		maxX:   float64(screenW - laneWidth - cfg.Width),
	}
}

// MoveLeft steers left by Speed. A move that would leave the drivable band
// is dropped entirely; the car does not snap to the edge.
func (c *Car) MoveLeft() {
	if c.X-c.Speed >= c.minX {
		c.X -= c.Speed
	}
}

// MoveRight steers right by Speed, with the same rule as MoveLeft.
func (c *Car) MoveRight() {
	if c.X+c.Speed <= c.maxX {
		c.X += c.Speed
	}
}

// Band returns the drivable x-range for the car's left edge.
func (c Car) Band() (minX, maxX float64) {
	return c.minX, c.maxX
}

// Rect returns the car's collision rectangle.
func (c Car) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Width, c.Height)
}
