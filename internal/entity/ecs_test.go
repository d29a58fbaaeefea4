package entity

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld_StartsEmpty(t *testing.T) {
	w := NewWorld()

	assert.True(t, w.Empty())
	assert.Equal(t, 1, w.Progress.Level)
	assert.Equal(t, config.PlayerMaxHealth, w.Player.Health)
	assert.Equal(t, 0, w.Player.Weapon)
	assert.Equal(t, NeverFired, w.Player.LastShot)
	assert.Equal(t, component.BossAbsent, w.BossPhase)
}

func TestNewEntity_IsMonotonicAcrossStores(t *testing.T) {
	w := NewWorld()
	a := w.AddEnemy(component.Enemy{HP: 1})
	b := w.AddShot(component.Projectile{Damage: 1, Kind: component.Plain{}})
	c := w.AddParticle(component.Particle{Life: 1})
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestReset_ClearsEverything(t *testing.T) {
	w := NewWorld()
	w.AddEnemy(component.Enemy{HP: 1})
	w.AddEnemyShot(component.Projectile{Kind: component.Plain{}})
	w.AddPowerUp(component.PowerUp{Kind: component.PowerUpShield})
	w.Boss = &component.Boss{HP: 10}
	w.BossPhase = component.BossActive
	w.Progress = component.Progress{Score: 500, Kills: 40, Level: 3}
	w.Player.Health = 1
	w.Player.Weapon = 3

	w.Reset()

	assert.True(t, w.Empty())
	assert.Equal(t, component.Progress{Level: 1}, w.Progress)
	assert.Equal(t, config.PlayerMaxHealth, w.Player.Health)
	assert.Equal(t, 0, w.Player.Weapon)
	assert.Equal(t, component.BossAbsent, w.BossPhase)
}

func TestClearHostiles_KeepsProgress(t *testing.T) {
	w := NewWorld()
	w.AddEnemy(component.Enemy{HP: 1})
	w.AddEnemyShot(component.Projectile{Kind: component.Plain{}})
	w.AddPowerUp(component.PowerUp{Kind: component.PowerUpShield})
	w.Progress = component.Progress{Score: 300, Kills: 30, Level: 2}
	w.Player.Weapon = 2

	w.ClearHostiles()

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.EnemyShots)
	assert.Len(t, w.PowerUps, 1, "dropped power-ups carry over")
	assert.Equal(t, 30, w.Progress.Kills)
	assert.Equal(t, 2, w.Player.Weapon)
}

func TestSortedIDs(t *testing.T) {
	m := map[types.EntityID]int{9: 0, 2: 0, 5: 0}
	require.Equal(t, []types.EntityID{2, 5, 9}, SortedIDs(m))
	assert.Empty(t, SortedIDs(map[types.EntityID]int{}))
}
