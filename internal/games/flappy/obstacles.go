package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PairID identifies an obstacle pair for its whole lifetime.
type PairID uint64

// ObstaclePair is an upper and a lower pipe sharing one x-coordinate,
// separated by a fixed vertical gap.
type ObstaclePair struct {
	ID    PairID
	Upper core.Rect
	Lower core.Rect
}

// X returns the shared left edge of both pipes.
func (p ObstaclePair) X() int {
	return p.Upper.X
}

// Right returns the shared right edge of both pipes.
func (p ObstaclePair) Right() int {
	return p.Upper.Right()
}

// GapTop returns the y-coordinate where the gap starts (upper pipe bottom).
func (p ObstaclePair) GapTop() int {
	return p.Upper.Bottom()
}

// GapBottom returns the y-coordinate where the gap ends (lower pipe top).
func (p ObstaclePair) GapBottom() int {
	return p.Lower.Y
}

// ObstacleManager owns the active obstacle pairs and the queue of pairs
// the actor has not passed yet.
//
// The queue holds pair IDs, not copies, so the scrolling set and the
// scoring queue cannot diverge. Both are in spawn order.
type ObstacleManager struct {
	cfg    config.Obstacles
	fieldW int
	fieldH int
	rng    *rand.Rand

	pairs       []ObstaclePair
	queue       []PairID
	nextID      PairID
	lastSpawnMs int64
}

// NewObstacleManager creates an empty manager with the given RNG seed.
func NewObstacleManager(cfg config.FlappyConfig, seed int64) *ObstacleManager {
	return &ObstacleManager{
		cfg:    cfg.Obstacles,
		fieldW: cfg.Field.Width,
		fieldH: cfg.Field.Height,
		rng:    rand.New(rand.NewSource(seed)),
		pairs:  make([]ObstaclePair, 0, 8),
		queue:  make([]PairID, 0, 8),
	}
}

// Reseed clears everything and restarts the jitter sequence from seed.
func (m *ObstacleManager) Reseed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
	m.Reset()
}

// Reset clears all active pairs and the queue.
func (m *ObstacleManager) Reset() {
	m.pairs = m.pairs[:0]
	m.queue = m.queue[:0]
	m.lastSpawnMs = 0
}

// Arm starts the spawn timer: the first pair appears once more than
// spawn_interval_ms has elapsed after nowMs.
func (m *ObstacleManager) Arm(nowMs int64) {
	m.lastSpawnMs = nowMs
}

// MaybeSpawn creates a pair at the right edge when more than the spawn
// interval has elapsed since the last spawn. Reports whether it spawned.
func (m *ObstacleManager) MaybeSpawn(nowMs int64) bool {
	if nowMs-m.lastSpawnMs <= m.cfg.SpawnIntervalMs {
		return false
	}
	m.spawn()
	m.lastSpawnMs = nowMs
	return true
}

// spawn appends one pair whose gap centre is offset from mid-field by a
// uniform random jitter in [jitter_min, jitter_max].
func (m *ObstacleManager) spawn() {
	jitter := m.cfg.JitterMin + m.rng.Intn(m.cfg.JitterMax-m.cfg.JitterMin+1)
	center := m.fieldH/2 + jitter
	gapTop := center - m.cfg.Gap/2

	pair := ObstaclePair{
		ID:    m.nextID,
		Upper: core.NewRect(m.fieldW, gapTop-m.cfg.PipeHeight, m.cfg.PipeWidth, m.cfg.PipeHeight),
		Lower: core.NewRect(m.fieldW, gapTop+m.cfg.Gap, m.cfg.PipeWidth, m.cfg.PipeHeight),
	}
	m.nextID++

	m.pairs = append(m.pairs, pair)
	m.queue = append(m.queue, pair.ID)
}

// Advance scrolls every active pair left by scrollSpeed and retires pairs
// whose right edge has crossed the left boundary. Retired pairs stay in the
// queue until scored. Returns the number of pairs retired.
func (m *ObstacleManager) Advance(scrollSpeed int) int {
	kept := m.pairs[:0]
	for _, p := range m.pairs {
		p.Upper = p.Upper.Translate(-scrollSpeed, 0)
		p.Lower = p.Lower.Translate(-scrollSpeed, 0)
		if p.Right() >= 0 {
			kept = append(kept, p)
		}
	}
	retired := len(m.pairs) - len(kept)
	m.pairs = kept
	return retired
}

// Pairs returns the active pairs in spawn order. The slice must not be modified.
func (m *ObstacleManager) Pairs() []ObstaclePair {
	return m.pairs
}

// Pair looks up an active pair by ID.
func (m *ObstacleManager) Pair(id PairID) (ObstaclePair, bool) {
	if len(m.pairs) == 0 || id < m.pairs[0].ID {
		return ObstaclePair{}, false
	}
	// IDs are consecutive and retirement is front-only, so the offset is the index.
	if i := int(id - m.pairs[0].ID); i < len(m.pairs) && m.pairs[i].ID == id {
		return m.pairs[i], true
	}
	for _, p := range m.pairs {
		if p.ID == id {
			return p, true
		}
	}
	return ObstaclePair{}, false
}

// NextUnpassed returns the ID of the earliest pair not yet passed.
func (m *ObstacleManager) NextUnpassed() (PairID, bool) {
	if len(m.queue) == 0 {
		return 0, false
	}
	return m.queue[0], true
}

// PopUnpassed removes the front of the queue.
func (m *ObstacleManager) PopUnpassed() {
	if len(m.queue) > 0 {
		m.queue = m.queue[1:]
	}
}

// Pending returns how many pairs are still waiting to be passed.
func (m *ObstacleManager) Pending() int {
	return len(m.queue)
}

// Collides reports whether r overlaps any active pipe.
func (m *ObstacleManager) Collides(r core.Rect) bool {
	for _, p := range m.pairs {
		if r.Intersects(p.Upper) || r.Intersects(p.Lower) {
			return true
		}
	}
	return false
}
