package core

import "time"

// Clock provides monotonic milliseconds since it was created.
type Clock interface {
	NowMs() int64
}

// Advancer is implemented by clocks that move forward once per simulation tick.
type Advancer interface {
	Advance()
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns wall milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// TickClock derives time from the number of simulation ticks.
// Game time runs at exactly 1000/tickRate ms per tick regardless of how
// fast the ticks are actually delivered.
type TickClock struct {
	tickRate int
	ticks    int64
}

// NewTickClock creates a tick-driven clock for the given rate.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{tickRate: tickRate}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// NowMs returns game milliseconds elapsed.
func (c *TickClock) NowMs() int64 {
	return c.ticks * 1000 / int64(c.tickRate)
}

// ManualClock is a clock that only moves when told to. Used in tests and replays.
type ManualClock struct {
	ms int64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() int64 {
	return c.ms
}

// Set jumps to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.ms = ms
}

// Add moves the clock forward by ms.
func (c *ManualClock) Add(ms int64) {
	c.ms += ms
}
