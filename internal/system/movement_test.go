package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovement_RestStateIsIdempotent(t *testing.T) {
	h := newHarness(nil)
	eid := h.world.AddEnemy(enemyAt(100, 100, 36, 1))
	sid := h.world.AddShot(shotAt(200, 200, 1, component.Plain{}))
	esid := h.world.AddEnemyShot(shotAt(300, 300, 1, component.Plain{}))
	pid := h.world.AddPowerUp(component.PowerUp{Body: component.Body{Pos: geom.Vec{X: 50, Y: 50}, W: 22, H: 22}, Kind: component.PowerUpShield})

	for i := 0; i < 100; i++ {
		h.movement.Update()
	}

	assert.Equal(t, geom.Vec{X: 100, Y: 100}, h.world.Enemies[eid].Pos)
	assert.Equal(t, geom.Vec{X: 200, Y: 200}, h.world.Shots[sid].Pos)
	assert.Equal(t, geom.Vec{X: 300, Y: 300}, h.world.EnemyShots[esid].Pos)
	assert.Equal(t, geom.Vec{X: 50, Y: 50}, h.world.PowerUps[pid].Pos)
}

func TestMovement_CullsOffField(t *testing.T) {
	h := newHarness(nil)
	up := shotAt(100, -15, 1, component.Plain{})
	up.Vel.Y = -10
	h.world.AddShot(up)

	down := shotAt(100, config.ScreenHeight-1, 1, component.Plain{})
	down.Vel.Y = 4
	h.world.AddEnemyShot(down)

	e := enemyAt(100, config.ScreenHeight+config.EnemyExitMargin, 36, 1)
	e.Vel.Y = 2
	h.world.AddEnemy(e)

	pu := component.PowerUp{Body: component.Body{Pos: geom.Vec{X: 10, Y: config.ScreenHeight + config.PowerUpExitMargin}, Vel: geom.Vec{Y: 2.2}, W: 22, H: 22}}
	h.world.AddPowerUp(pu)

	h.movement.Update()

	assert.Empty(t, h.world.Shots)
	assert.Empty(t, h.world.EnemyShots)
	assert.Empty(t, h.world.Enemies)
	assert.Empty(t, h.world.PowerUps)
}

func TestMovement_EnemiesAboveFieldSurvive(t *testing.T) {
	h := newHarness(nil)
	e := enemyAt(100, -36, 36, 1)
	e.Vel.Y = 2
	id := h.world.AddEnemy(e)

	h.movement.Update()

	require.Contains(t, h.world.Enemies, id)
	assert.Equal(t, -34.0, h.world.Enemies[id].Pos.Y)
}

func TestMovement_ZigzagReflects(t *testing.T) {
	h := newHarness(nil)
	e := enemyAt(config.ScreenWidth-37, 100, 36, 2)
	e.Vel = geom.Vec{X: 2.2, Y: 2.2}
	id := h.world.AddEnemy(e)

	h.movement.Update()
	got := h.world.Enemies[id]
	assert.Equal(t, config.ScreenWidth-36.0, got.Pos.X)
	assert.Equal(t, -2.2, got.Vel.X)

	got.Pos.X = 1
	h.movement.Update()
	assert.Equal(t, 0.0, got.Pos.X)
	assert.Equal(t, 2.2, got.Vel.X)
}

func TestMovement_RocketAcceleratesAndTrails(t *testing.T) {
	h := newHarness(nil)
	r := shotAt(400, 500, 2, &component.Rocket{})
	r.Vel.Y = -4
	id := h.world.AddShot(r)

	for i := 0; i < config.RocketTrailRate; i++ {
		h.movement.Update()
	}

	got := h.world.Shots[id]
	assert.InDelta(t, -4-config.RocketThrust*config.RocketTrailRate, got.Vel.Y, 1e-9)
	assert.Len(t, h.world.Particles, 1)
	assert.Equal(t, 0, got.Kind.(*component.Rocket).Trail)

	for i := 0; i < 200 && len(h.world.Shots) > 0; i++ {
		h.movement.Update()
		if s, ok := h.world.Shots[id]; ok {
			require.GreaterOrEqual(t, s.Vel.Y, -config.RocketMaxSpeed)
		}
	}
}

func TestMovement_MissileWeaves(t *testing.T) {
	h := newHarness(nil)
	m := shotAt(400, 500, 2, &component.Missile{Amplitude: 2.5})
	m.Vel.Y = -7
	id := h.world.AddShot(m)

	xs := map[bool]bool{}
	for i := 0; i < 20; i++ {
		h.movement.Update()
		xs[h.world.Shots[id].Vel.X > 0] = true
	}
	assert.Len(t, xs, 2, "missile drifts both ways")
}
