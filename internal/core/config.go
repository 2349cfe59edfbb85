package core

// RuntimeConfig contains per-process settings handed to the game at Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMs returns the duration of one tick in milliseconds.
func (c RuntimeConfig) FrameMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is the status the platform needs after every tick.
type GameState struct {
	Score        int  // Current score
	HighScore    int  // Best score known to the session
	GameOver     bool // Whether the run has ended
	NewHighScore bool // Whether this run set a new high score
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only on the tick the run ended.
	Ended bool
}
