package config

import (
	_ "embed"

	"github.com/vovakirdan/lane-racer/internal/core"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default racer configuration.
// It mirrors defaults/racer.yaml and is used if the embedded file cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Screen: ScreenConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Road: RoadConfig{
			LaneWidth:      100,
			DividerSpacing: 40,
			DividerLength:  20,
			DividerWidth:   4,
		},
		Car: CarConfig{
			Width:        50,
			Height:       80,
			Speed:        5,
			BottomOffset: 20,
		},
		Obstacles: ObstacleConfig{
			Width:         50,
			Height:        80,
			Speed:         5,
			SpawnInterval: 60,
			LaneInset:     25,
		},
		Palette: core.DefaultPalette(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRacerYAML
}
