package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// WingFrame is the presentation frame of the flap animation.
type WingFrame int

const (
	WingUp WingFrame = iota
	WingMid
	WingDown
	wingFrameCount
)

// wingFrameTicks is how many ticks each wing frame is shown.
const wingFrameTicks = 6

// Actor is the flight entity: a fixed-column hitbox that falls under
// gravity and is launched upward by the activate input.
type Actor struct {
	cfg     config.Actor
	physics config.Physics
	groundY int

	x     int     // Left edge, fixed
	y     float64 // Top edge
	vel   float64 // Vertical velocity, positive = down
	alive bool
	flap  core.EdgeDetector

	frame      WingFrame
	frameTicks int
}

// NewActor creates an actor at its start position.
func NewActor(cfg config.FlappyConfig) *Actor {
	a := &Actor{
		cfg:     cfg.Actor,
		physics: cfg.Physics,
		groundY: cfg.Field.GroundY,
	}
	a.Reset()
	return a
}

// Reset puts the actor back at its start position with zero velocity.
func (a *Actor) Reset() {
	start := core.RectFromCenter(a.cfg.StartX, a.cfg.StartY, a.cfg.Width, a.cfg.Height)
	a.x = start.X
	a.y = float64(start.Y)
	a.vel = 0
	a.alive = true
	a.flap.Reset()
	a.frame = WingUp
	a.frameTicks = 0
}

// Launch sets the upward impulse and consumes the current press,
// so the press that starts a flight does not flap again.
func (a *Actor) Launch() {
	a.vel = a.physics.ImpulseVelocity
	a.flap.Latch()
}

// ApplyGravityAndInput advances the actor by one flying tick.
//
// Gravity is added and the fall speed clamped first, then the actor moves
// unless it already rests on the ground line; it never sinks below it.
// An impulse fires only on the rising edge of activate.
func (a *Actor) ApplyGravityAndInput(activate bool) {
	if !a.alive {
		return
	}

	a.vel = min(a.vel+a.physics.Gravity, a.physics.MaxFallSpeed)

	bottom := a.y + float64(a.cfg.Height)
	if bottom < float64(a.groundY) {
		a.y = min(a.y+a.vel, float64(a.groundY-a.cfg.Height))
	}

	if a.flap.Update(activate) {
		a.vel = a.physics.ImpulseVelocity
	}

	a.animate()
}

func (a *Actor) animate() {
	a.frameTicks++
	if a.frameTicks >= wingFrameTicks {
		a.frameTicks = 0
		a.frame = (a.frame + 1) % wingFrameCount
	}
}

// Kill freezes the actor in its dead pose.
func (a *Actor) Kill() {
	a.alive = false
}

// Rect returns the actor's collision rectangle.
func (a *Actor) Rect() core.Rect {
	return core.NewRect(a.x, int(math.Floor(a.y)), a.cfg.Width, a.cfg.Height)
}

// Y returns the top edge position.
func (a *Actor) Y() float64 {
	return a.y
}

// Velocity returns the vertical velocity (positive = down).
func (a *Actor) Velocity() float64 {
	return a.vel
}

// Alive reports whether the actor still responds to gravity and input.
func (a *Actor) Alive() bool {
	return a.alive
}

// Frame returns the current wing animation frame.
func (a *Actor) Frame() WingFrame {
	return a.frame
}
