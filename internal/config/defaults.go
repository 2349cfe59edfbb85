package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: Field{
			Width:   864,
			Height:  936,
			GroundY: 768,
		},
		Physics: Physics{
			Gravity:         0.5,
			ImpulseVelocity: -10,
			MaxFallSpeed:    8,
			ScrollSpeed:     4,
		},
		Obstacles: Obstacles{
			Gap:             200,
			SpawnIntervalMs: 1500,
			JitterMin:       -100,
			JitterMax:       100,
			PipeWidth:       78,
			PipeHeight:      560,
		},
		Actor: Actor{
			StartX: 100,
			StartY: 468,
			Width:  51,
			Height: 36,
		},
		Session: Session{
			RestartCooldownMs: 1000,
			Clock:             ClockWall,
		},
	}
}
