package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombat_OneHPEnemyDestroyed(t *testing.T) {
	h := newHarness(onlyDrop(component.PowerUpHealth))
	enemyID := h.world.AddEnemy(enemyAt(100, 100, 36, 1))
	h.world.AddShot(shotAt(115, 120, 1, component.Plain{}))

	h.combat.Update()

	assert.Empty(t, h.world.Enemies)
	assert.Empty(t, h.world.Shots)
	assert.Equal(t, config.ScorePerKill, h.world.Progress.Score)
	assert.Equal(t, 1, h.world.Progress.Kills)
	assert.Equal(t, 1, h.powerups.Rolls)

	require.Len(t, h.world.PowerUps, 1)
	for _, pu := range h.world.PowerUps {
		assert.Equal(t, geom.Vec{X: 118, Y: 118}, pu.Center())
	}
	require.Equal(t, 1, h.rec.count(event.EnemyDestroyed))
	assert.Equal(t, enemyID, h.rec.events[0].Data.(event.EnemyDestroyedData).ID)
}

func TestCombat_ShotConsumedOnceAgainstOverlappingEnemies(t *testing.T) {
	h := newHarness(onlyDrop(component.PowerUpNone))
	far := h.world.AddEnemy(enemyAt(90, 90, 36, 1))
	near := h.world.AddEnemy(enemyAt(100, 110, 36, 1))
	h.world.AddShot(shotAt(115, 115, 1, component.Plain{}))

	h.combat.Update()

	assert.Empty(t, h.world.Shots)
	assert.Contains(t, h.world.Enemies, far, "only the nearest enemy is struck")
	assert.NotContains(t, h.world.Enemies, near)
	assert.Equal(t, 1, h.world.Progress.Kills)
}

func TestCombat_NearestTieGoesToLowerID(t *testing.T) {
	h := newHarness(onlyDrop(component.PowerUpNone))
	first := h.world.AddEnemy(enemyAt(100, 100, 36, 1))
	second := h.world.AddEnemy(enemyAt(100, 100, 36, 1))
	h.world.AddShot(shotAt(115, 110, 1, component.Plain{}))

	h.combat.Update()

	assert.NotContains(t, h.world.Enemies, first)
	assert.Contains(t, h.world.Enemies, second)
}

func TestCombat_DamageWithoutKill(t *testing.T) {
	h := newHarness(nil)
	id := h.world.AddEnemy(enemyAt(100, 100, 48, 3))
	h.world.AddShot(shotAt(120, 120, 1, component.Plain{}))

	h.combat.Update()

	require.Contains(t, h.world.Enemies, id)
	assert.Equal(t, 2, h.world.Enemies[id].HP)
	assert.Empty(t, h.world.Shots)
	assert.Zero(t, h.world.Progress.Score)
}

func TestCombat_SplashDamagesNeighbours(t *testing.T) {
	h := newHarness(onlyDrop(component.PowerUpNone))
	h.world.AddEnemy(enemyAt(100, 100, 36, 2))
	h.world.AddEnemy(enemyAt(140, 100, 36, 2))
	outside := h.world.AddEnemy(enemyAt(300, 100, 36, 2))
	h.world.AddShot(shotAt(115, 120, 2, &component.Rocket{}))

	h.combat.Update()

	assert.Len(t, h.world.Enemies, 1)
	assert.Contains(t, h.world.Enemies, outside)
	assert.Equal(t, 2, h.world.Progress.Kills)
}

func TestCombat_PlainShotHasNoSplash(t *testing.T) {
	h := newHarness(onlyDrop(component.PowerUpNone))
	h.world.AddEnemy(enemyAt(100, 100, 36, 1))
	h.world.AddEnemy(enemyAt(140, 100, 36, 1))
	h.world.AddShot(shotAt(115, 120, 1, component.Plain{}))

	h.combat.Update()

	assert.Len(t, h.world.Enemies, 1)
}

func TestCombat_ShotHitsBossWhenNoEnemy(t *testing.T) {
	h := newHarness(nil)
	h.world.Progress.Score = 250
	require.True(t, h.boss.TrySpawn())
	b := h.world.Boss
	h.world.AddShot(shotAt(b.Center().X, b.Center().Y, 1, component.Plain{}))

	h.combat.Update()

	assert.Equal(t, b.MaxHP-1, b.HP)
	assert.Empty(t, h.world.Shots)
}

func TestCombat_BossKillShot(t *testing.T) {
	h := newHarness(nil)
	h.world.Progress.Score = 250
	require.True(t, h.boss.TrySpawn())
	b := h.world.Boss
	b.HP = 1
	h.world.AddShot(shotAt(b.Center().X, b.Center().Y, 1, component.Plain{}))

	h.combat.Update()

	assert.Nil(t, h.world.Boss)
	assert.Equal(t, component.BossDefeated, h.world.BossPhase)
	assert.Equal(t, 2, h.world.Progress.Level)
	assert.Equal(t, 250+config.ScorePerBoss, h.world.Progress.Score)
	assert.Equal(t, 1, h.rec.count(event.BossDefeated))
	assert.Len(t, h.world.PowerUps, 1, "boss always drops a pickup")
}

func TestCombat_LethalHitEngagesInvincibilityImmediately(t *testing.T) {
	h := newHarness(nil)
	p := h.world.Player
	p.Health = 1
	c := p.Center()
	h.world.AddEnemyShot(shotAt(c.X, c.Y, 1, component.Plain{}))
	h.world.AddEnemyShot(shotAt(c.X-2, c.Y, 1, component.Plain{}))

	h.combat.Update()

	assert.Equal(t, 0, p.Health)
	assert.Equal(t, config.InvincibleFrames, p.Invincible)
	assert.Empty(t, h.world.EnemyShots, "every overlapping enemy shot is consumed")
	assert.Equal(t, 1, h.rec.count(event.PlayerHit))
	assert.Equal(t, 1, h.rec.count(event.PlayerDied))
}

func TestCombat_ShieldBlocksDamage(t *testing.T) {
	h := newHarness(nil)
	p := h.world.Player
	p.Shield = 10
	c := p.Center()
	h.world.AddEnemyShot(shotAt(c.X, c.Y, 1, component.Plain{}))

	h.combat.Update()

	assert.Equal(t, config.PlayerMaxHealth, p.Health)
	assert.Empty(t, h.world.EnemyShots)
	assert.Zero(t, h.rec.count(event.PlayerHit))
}

func TestCombat_HealthNeverLeavesBounds(t *testing.T) {
	h := newHarness(nil)
	p := h.world.Player
	for i := 0; i < 20; i++ {
		p.Invincible = 0
		h.combat.HitPlayer()
		require.GreaterOrEqual(t, p.Health, 0)
		require.LessOrEqual(t, p.Health, p.MaxHealth)
	}
	assert.Equal(t, 0, p.Health)
	assert.Equal(t, 1, h.rec.count(event.PlayerDied))
}
