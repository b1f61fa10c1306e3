// Package config provides YAML-based configuration loading for the racer:
// screen geometry, road layout, car and obstacle tuning, and the palette.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RacerConfig contains all configuration for the racer.
type RacerConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Road      RoadConfig     `yaml:"road"`
	Car       CarConfig      `yaml:"car"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Palette   core.Palette   `yaml:"palette"`
}

// ScreenConfig defines the playfield size and simulation rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// RoadConfig defines the road shoulders and the centre dashes.
type RoadConfig struct {
	LaneWidth      int `yaml:"lane_width"`
	DividerSpacing int `yaml:"divider_spacing"`
	DividerLength  int `yaml:"divider_length"`
	DividerWidth   int `yaml:"divider_width"`
}

// CarConfig defines the player's car.
type CarConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset int     `yaml:"bottom_offset"`
}

// ObstacleConfig defines obstacle size, speed and spawning.
type ObstacleConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"`
	LaneInset     int     `yaml:"lane_inset"`
}

// Runtime builds the per-session runtime context from this config.
func (c RacerConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		TickRate: c.Screen.TickRate,
		Seed:     seed,
		Palette:  c.Palette,
	}
}

// Validate checks that the geometry can hold a car and obstacles on the road.
func (c RacerConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Screen.TickRate)
	case c.Road.LaneWidth < 0:
		return fmt.Errorf("%w: lane_width must not be negative", ErrInvalid)
	case c.Car.Width <= 0 || c.Car.Height <= 0:
		return fmt.Errorf("%w: car size %dx%d", ErrInvalid, c.Car.Width, c.Car.Height)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size %dx%d", ErrInvalid, c.Obstacles.Width, c.Obstacles.Height)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive", ErrInvalid)
	case c.Car.Speed < 0:
		return fmt.Errorf("%w: car speed must not be negative", ErrInvalid)
	case c.Obstacles.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn_interval must not be negative", ErrInvalid)
	}

	if c.Screen.Width-2*c.Road.LaneWidth < c.Car.Width {
		return fmt.Errorf("%w: road of width %d cannot hold a car of width %d",
			ErrInvalid, c.Screen.Width-2*c.Road.LaneWidth, c.Car.Width)
	}
	if c.Car.Height+c.Car.BottomOffset > c.Screen.Height {
		return fmt.Errorf("%w: car does not fit vertically", ErrInvalid)
	}
	return nil
}
