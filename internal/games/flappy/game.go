// Package flappy implements a Flappy Bird-style game.
// The player launches a falling actor upward to steer it through a stream
// of gaps between pipe pairs.
package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first activate input
	PhaseFlying                // Physics, obstacles and scoring running
	PhaseGameOver              // Frozen until a restart is accepted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFlying:
		return "flying"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// groundScrollWrap is the ground texture offset magnitude at which it wraps to 0.
const groundScrollWrap = 35

// HighScoreStore persists the best score between sessions.
// Load never fails: missing or unreadable data reads as 0.
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// Session is the mutable state of one play session. It is owned by Game
// and only changes inside Step.
type Session struct {
	Phase        Phase
	Score        int
	HighScore    int
	NewHighScore bool
	GameOverAtMs int64
	Reason       Reason
	GroundOffset int
	Ticks        int
}

// Game runs the session state machine over the actor and the obstacles.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	clock   core.Clock
	store   HighScoreStore
	logger  *log.Logger

	fixedClock bool // clock was injected; Reset keeps it

	session   Session
	actor     *Actor
	obstacles *ObstacleManager
}

// Option configures a Game.
type Option func(*Game)

// WithClock injects the time source. Without it, Reset picks one from the
// session.clock config setting.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
		g.fixedClock = true
	}
}

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		store:  memoryStore{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = core.NewSystemClock()
	}
	g.actor = NewActor(cfg)
	g.obstacles = NewObstacleManager(cfg, 0)
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a fresh session: Idle phase, actor at start, no obstacles,
// score 0 and the high score reloaded from the store.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	if !g.fixedClock {
		if g.cfg.Session.Clock == config.ClockTicks {
			g.clock = core.NewTickClock(rc.TickRate)
		} else {
			g.clock = core.NewSystemClock()
		}
	}

	g.session = Session{HighScore: g.store.Load()}
	g.actor.Reset()
	g.obstacles.Reseed(rc.Seed)

	g.logger.Debug("session reset", "high_score", g.session.HighScore, "seed", rc.Seed)
}

// Step advances the session by one tick.
//
// Order within a tick: input, actor physics, obstacle spawn/scroll,
// collision and scoring, then phase transitions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if adv, ok := g.clock.(core.Advancer); ok {
		adv.Advance()
	}
	now := g.clock.NowMs()
	g.session.Ticks++

	var ended bool
	switch g.session.Phase {
	case PhaseIdle:
		if in.Has(core.ActionActivate) {
			g.takeOff(now)
		}

	case PhaseFlying:
		ended = g.fly(in, now)

	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionActivate) {
			g.tryRestart(now)
		}
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

func (g *Game) takeOff(now int64) {
	g.session.Phase = PhaseFlying
	g.actor.Launch()
	g.obstacles.Arm(now)
	g.logger.Debug("flight started")
}

// fly runs one Flying tick and reports whether the run ended.
func (g *Game) fly(in core.InputFrame, now int64) bool {
	g.actor.ApplyGravityAndInput(in.Active(core.ActionActivate))

	// Scroll before spawning so a new pair starts exactly at the right edge.
	speed := g.cfg.Physics.ScrollSpeed
	g.obstacles.Advance(speed)
	g.obstacles.MaybeSpawn(now)
	g.scrollGround(speed)

	ev := Evaluate(g.actor.Rect(), g.obstacles, g.cfg.Field.GroundY)

	// A pass and a collision in the same tick are independent facts:
	// the point counts before the run ends.
	if ev.Scored {
		g.session.Score++
	}

	switch ev.Outcome() {
	case OutcomeGameOver:
		g.endRun(now, ev.Reason)
		return true
	case OutcomeScored:
		g.logger.Debug("pair passed", "score", g.session.Score)
	}
	return false
}

func (g *Game) scrollGround(speed int) {
	g.session.GroundOffset -= speed
	if -g.session.GroundOffset > groundScrollWrap {
		g.session.GroundOffset = 0
	}
}

func (g *Game) endRun(now int64, reason Reason) {
	g.session.Phase = PhaseGameOver
	g.session.GameOverAtMs = now
	g.session.Reason = reason
	g.actor.Kill()

	g.logger.Info("game over",
		"score", g.session.Score,
		"high_score", g.session.HighScore,
		"reason", reason,
	)

	if g.session.Score <= g.session.HighScore {
		return
	}

	g.session.HighScore = g.session.Score
	g.session.NewHighScore = true
	g.logger.Info("new high score", "score", g.session.Score)

	if err := g.store.Save(g.session.HighScore); err != nil {
		// High score tracking is not worth ending the session over.
		g.logger.Warn("could not save high score", "score", g.session.HighScore, "error", err)
	}
}

// tryRestart returns to Idle if the cool-down has elapsed. Early restarts are dropped.
func (g *Game) tryRestart(now int64) {
	if !g.canRestart(now) {
		return
	}

	g.actor.Reset()
	g.obstacles.Reset()
	g.session.Phase = PhaseIdle
	g.session.Score = 0
	g.session.NewHighScore = false
	g.session.Reason = ReasonNone

	g.logger.Debug("session restarted")
}

func (g *Game) canRestart(now int64) bool {
	return g.session.Phase == PhaseGameOver &&
		now-g.session.GameOverAtMs >= g.cfg.Session.RestartCooldownMs
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.session.Score,
		HighScore:    g.session.HighScore,
		GameOver:     g.session.Phase == PhaseGameOver,
		NewHighScore: g.session.NewHighScore,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// Snapshot is a read-only view of everything the presentation layer draws.
type Snapshot struct {
	Phase        Phase
	Score        int
	HighScore    int
	NewHighScore bool
	CanRestart   bool
	Reason       Reason

	Actor    core.Rect
	Velocity float64
	Alive    bool
	Wing     WingFrame

	Obstacles    []ObstaclePair
	Field        config.Field
	GroundOffset int
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:        g.session.Phase,
		Score:        g.session.Score,
		HighScore:    g.session.HighScore,
		NewHighScore: g.session.NewHighScore,
		CanRestart:   g.canRestart(g.clock.NowMs()),
		Reason:       g.session.Reason,
		Actor:        g.actor.Rect(),
		Velocity:     g.actor.Velocity(),
		Alive:        g.actor.Alive(),
		Wing:         g.actor.Frame(),
		Obstacles:    append([]ObstaclePair(nil), g.obstacles.Pairs()...),
		Field:        g.cfg.Field,
		GroundOffset: g.session.GroundOffset,
	}
}

// memoryStore keeps no state; it is used when no store is configured.
type memoryStore struct{}

func (memoryStore) Load() int { return 0 }

func (memoryStore) Save(int) error { return nil }
