// Package config provides YAML-based game configuration loading and
// validation for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Clock modes for session timing.
const (
	ClockWall  = "wall"  // Monotonic wall clock, spawn cadence follows real time
	ClockTicks = "ticks" // Game time derived from the tick count
)

// FlappyConfig contains all configuration for the game.
// Distances are world units; times are milliseconds.
type FlappyConfig struct {
	Field     Field     `yaml:"field"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Actor     Actor     `yaml:"actor"`
	Session   Session   `yaml:"session"`
}

// Field defines the play field geometry.
type Field struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"`
}

// Physics defines flight and scrolling parameters, applied per tick.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`
	ImpulseVelocity float64 `yaml:"impulse_velocity"` // negative = up
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	ScrollSpeed     int     `yaml:"scroll_speed"`
}

// Obstacles defines pipe pair geometry and spawn cadence.
type Obstacles struct {
	Gap             int   `yaml:"gap"`
	SpawnIntervalMs int64 `yaml:"spawn_interval_ms"`
	JitterMin       int   `yaml:"jitter_min"`
	JitterMax       int   `yaml:"jitter_max"`
	PipeWidth       int   `yaml:"pipe_width"`
	PipeHeight      int   `yaml:"pipe_height"`
}

// Actor defines the flight entity's start position (centre) and hitbox.
type Actor struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Session defines state machine timing.
type Session struct {
	RestartCooldownMs int64  `yaml:"restart_cooldown_ms"`
	Clock             string `yaml:"clock"`
}

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		bad("field size must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height {
		bad("ground_y %d must be inside the field (1..%d)", c.Field.GroundY, c.Field.Height)
	}
	if c.Physics.Gravity <= 0 {
		bad("gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.ImpulseVelocity >= 0 {
		bad("impulse_velocity must be negative (upward), got %v", c.Physics.ImpulseVelocity)
	}
	if c.Physics.MaxFallSpeed <= 0 {
		bad("max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	}
	if c.Physics.ScrollSpeed <= 0 {
		bad("scroll_speed must be positive, got %d", c.Physics.ScrollSpeed)
	}
	if c.Obstacles.Gap <= 0 || c.Obstacles.Gap >= c.Field.GroundY {
		bad("gap %d must be between 1 and ground_y", c.Obstacles.Gap)
	}
	if c.Obstacles.SpawnIntervalMs <= 0 {
		bad("spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMs)
	}
	if c.Obstacles.JitterMin > c.Obstacles.JitterMax {
		bad("jitter_min %d is greater than jitter_max %d", c.Obstacles.JitterMin, c.Obstacles.JitterMax)
	}
	if c.Obstacles.PipeWidth <= 0 || c.Obstacles.PipeHeight <= 0 {
		bad("pipe size must be positive, got %dx%d", c.Obstacles.PipeWidth, c.Obstacles.PipeHeight)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		bad("actor size must be positive, got %dx%d", c.Actor.Width, c.Actor.Height)
	}
	if c.Actor.StartX-c.Actor.Width/2 < 0 {
		bad("actor starts left of the field")
	}
	if c.Actor.StartY+c.Actor.Height/2 >= c.Field.GroundY {
		bad("actor starts on or below the ground line")
	}
	if c.Session.RestartCooldownMs < 0 {
		bad("restart_cooldown_ms must not be negative, got %d", c.Session.RestartCooldownMs)
	}
	if c.Session.Clock != ClockWall && c.Session.Clock != ClockTicks {
		bad("clock must be %q or %q, got %q", ClockWall, ClockTicks, c.Session.Clock)
	}

	return errors.Join(errs...)
}
