package system

import (
	"testing"
	"time"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnChance(t *testing.T) {
	assert.InDelta(t, 0.02, SpawnChance(0), 1e-12)
	assert.InDelta(t, 0.03, SpawnChance(20), 1e-12)
	assert.InDelta(t, 0.05, SpawnChance(60), 1e-12)
	assert.InDelta(t, 0.05, SpawnChance(100000), 1e-12)
}

func TestSpawner_RespectsMinimumInterval(t *testing.T) {
	h := newHarness(nil)
	h.world.Progress.Score = 10000

	last := time.Duration(-1)
	spawns := 0
	for i := 0; i < 60*60; i++ {
		h.world.Clock += config.FrameDuration
		h.spawner.Update()
		if h.world.LastSpawn != last && h.world.LastSpawn >= 0 {
			if last >= 0 {
				require.GreaterOrEqual(t, h.world.LastSpawn-last, config.MinSpawnInterval)
			}
			last = h.world.LastSpawn
			spawns++
		}
		clear(h.world.Enemies)
	}
	// one minute can hold at most 240 spawns at 250ms apart
	assert.LessOrEqual(t, spawns, 240)
	assert.Positive(t, spawns)
}

func TestSpawner_EnemyStatsByKind(t *testing.T) {
	h := newHarness(nil)
	seen := map[component.EnemyKind]bool{}
	for i := 0; i < 5000 && len(seen) < 4; i++ {
		h.world.Clock += time.Second
		e, ok := h.spawner.MaybeSpawn(h.world.Clock, 0, 0)
		if !ok {
			continue
		}
		seen[e.Kind] = true

		assert.Equal(t, -e.H, e.Pos.Y)
		assert.GreaterOrEqual(t, e.Pos.X, 0.0)
		assert.LessOrEqual(t, e.Pos.X+e.W, float64(config.ScreenWidth))
		switch e.Kind {
		case component.EnemyNormal:
			assert.Equal(t, 1, e.HP)
			assert.Equal(t, 36.0, e.W)
			assert.GreaterOrEqual(t, e.Vel.Y, 2.0)
			assert.Less(t, e.Vel.Y, 2.8)
		case component.EnemyFast:
			assert.Equal(t, 1, e.HP)
			assert.Equal(t, 28.0, e.W)
			assert.GreaterOrEqual(t, e.Vel.Y, 3.5)
		case component.EnemyTanky:
			assert.Equal(t, 3, e.HP)
			assert.Equal(t, 1.5, e.Vel.Y)
			assert.Zero(t, e.Vel.X)
		case component.EnemyZigzag:
			assert.Equal(t, 2, e.HP)
			assert.Equal(t, 2.2, e.Vel.Y)
			assert.Equal(t, 2.2, abs(e.Vel.X))
		}
	}
	assert.Len(t, seen, 4)
}

func TestSpawner_EnemiesFireDownward(t *testing.T) {
	h := newHarness(nil)
	h.world.LastSpawn = h.world.Clock // keep new spawns out
	h.world.AddEnemy(enemyAt(100, 100, 36, 1))
	for i := 0; i < 2000 && len(h.world.EnemyShots) == 0; i++ {
		h.spawner.Update()
	}
	require.NotEmpty(t, h.world.EnemyShots)
	for _, s := range h.world.EnemyShots {
		assert.Equal(t, config.EnemyShotSpeed, s.Vel.Y)
		assert.Equal(t, 136.0, s.Pos.Y)
		assert.IsType(t, component.Plain{}, s.Kind)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
