package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestObstacles(seed int64) *ObstacleManager {
	m := NewObstacleManager(config.DefaultFlappyConfig(), seed)
	m.Arm(0)
	return m
}

func TestObstacleSpawnInterval(t *testing.T) {
	m := newTestObstacles(1)

	if m.MaybeSpawn(1500) {
		t.Error("spawned at exactly the interval; must be strictly greater")
	}
	if !m.MaybeSpawn(1501) {
		t.Fatal("expected a spawn once more than 1500ms elapsed")
	}
	if m.MaybeSpawn(2000) {
		t.Error("spawned again before the interval elapsed since the last spawn")
	}
	if !m.MaybeSpawn(3002) {
		t.Error("expected a second spawn")
	}

	if len(m.Pairs()) != 2 || m.Pending() != 2 {
		t.Errorf("pairs=%d pending=%d, expected 2 and 2", len(m.Pairs()), m.Pending())
	}
}

func TestObstaclePairGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	m := newTestObstacles(7)

	for i := 0; i < 200; i++ {
		m.MaybeSpawn(int64(i+1) * 2000)
	}

	for _, p := range m.Pairs() {
		if p.Upper.X != cfg.Field.Width || p.Lower.X != cfg.Field.Width {
			t.Fatalf("pair %d spawned at x=%d/%d, expected %d", p.ID, p.Upper.X, p.Lower.X, cfg.Field.Width)
		}
		if p.Upper.Bottom()+cfg.Obstacles.Gap != p.Lower.Top() {
			t.Fatalf("pair %d gap broken: upper bottom %d, lower top %d", p.ID, p.Upper.Bottom(), p.Lower.Top())
		}
		center := p.GapTop() + cfg.Obstacles.Gap/2
		jitter := center - cfg.Field.Height/2
		if jitter < cfg.Obstacles.JitterMin || jitter > cfg.Obstacles.JitterMax {
			t.Fatalf("pair %d jitter %d outside [%d, %d]", p.ID, jitter, cfg.Obstacles.JitterMin, cfg.Obstacles.JitterMax)
		}
	}
}

func TestObstacleAdvanceAndRetire(t *testing.T) {
	m := newTestObstacles(1)
	m.MaybeSpawn(1501)

	// Right edge starts at 864 + 78 = 942 and drops 4 per tick.
	for tick := 1; tick <= 235; tick++ {
		m.Advance(4)
		if got := m.Pairs()[0].X(); got != 864-4*tick {
			t.Fatalf("tick %d: x = %d, expected %d", tick, got, 864-4*tick)
		}
	}
	if m.Pairs()[0].Right() != 2 {
		t.Fatalf("right edge = %d, expected 2", m.Pairs()[0].Right())
	}

	m.Advance(4) // right edge -2
	if len(m.Pairs()) != 0 {
		t.Errorf("pair should be retired once its right edge is < 0")
	}
	if m.Pending() != 1 {
		t.Errorf("retiring must not touch the scoring queue, pending = %d", m.Pending())
	}
}

func TestObstacleRetireCount(t *testing.T) {
	m := newTestObstacles(1)
	m.MaybeSpawn(1501)
	m.MaybeSpawn(3002)

	if n := m.Advance(1000); n != 2 {
		t.Errorf("Advance retired %d pairs, expected 2", n)
	}
}

func TestObstacleReset(t *testing.T) {
	m := newTestObstacles(1)
	m.MaybeSpawn(1501)
	m.MaybeSpawn(3002)

	m.Reset()

	if len(m.Pairs()) != 0 || m.Pending() != 0 {
		t.Errorf("Reset left pairs=%d pending=%d", len(m.Pairs()), m.Pending())
	}
	if _, ok := m.NextUnpassed(); ok {
		t.Error("NextUnpassed should be empty after Reset")
	}
}

func TestObstacleDeterministicJitter(t *testing.T) {
	a := newTestObstacles(42)
	b := newTestObstacles(42)

	for i := 0; i < 20; i++ {
		now := int64(i+1) * 1600
		a.MaybeSpawn(now)
		b.MaybeSpawn(now)
	}

	for i := range a.Pairs() {
		if a.Pairs()[i] != b.Pairs()[i] {
			t.Fatalf("pair %d differs with the same seed: %+v vs %+v", i, a.Pairs()[i], b.Pairs()[i])
		}
	}
}

func TestObstaclePairLookup(t *testing.T) {
	m := newTestObstacles(1)
	for i := 0; i < 3; i++ {
		m.MaybeSpawn(int64(i+1) * 1600)
		m.Advance(400)
	}
	// Pair 0 has scrolled 1200 and is gone; pairs 1 and 2 are still on screen.
	if len(m.Pairs()) != 2 {
		t.Fatalf("expected 2 active pairs, got %d", len(m.Pairs()))
	}

	if _, ok := m.Pair(0); ok {
		t.Error("retired pair 0 should not be found")
	}
	for _, id := range []PairID{1, 2} {
		p, ok := m.Pair(id)
		if !ok || p.ID != id {
			t.Errorf("Pair(%d) = %+v, %v", id, p, ok)
		}
	}
	if _, ok := m.Pair(3); ok {
		t.Error("unspawned pair 3 should not be found")
	}
}
