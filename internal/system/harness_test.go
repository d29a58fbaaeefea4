package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/geom"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type harness struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rec        *recorder
	effects    *VisualEffectSystem
	player     *PlayerSystem
	powerups   *PowerUpSystem
	boss       *BossSystem
	combat     *CombatSystem
	weapons    *WeaponSystem
	spawner    *SpawnSystem
	movement   *MovementSystem
}

func newHarness(drops []defs.LootEntry) *harness {
	c := defs.DefaultCatalog()
	if drops == nil {
		drops = c.Drops
	}
	w := entity.NewWorld()
	d := event.NewDispatcher()
	rng := utils.NewPRNGService(7)

	h := &harness{world: w, dispatcher: d, rec: &recorder{}}
	h.effects = NewVisualEffectSystem(w, rng)
	h.player = NewPlayerSystem(w, c.Weapons, d)
	h.powerups = NewPowerUpSystem(w, rng, h.player, d, drops)
	h.boss = NewBossSystem(w, h.effects, h.powerups, d)
	h.combat = NewCombatSystem(w, h.effects, h.boss, d)
	h.weapons = NewWeaponSystem(w, c.Weapons, h.combat, d)
	h.spawner = NewSpawnSystem(w, rng, c.Enemies)
	h.movement = NewMovementSystem(w, h.effects)

	d.SubscribeAll(h.player, event.EnemyDestroyed, event.BossDefeated)
	d.Subscribe(event.EnemyDestroyed, h.powerups)
	d.SubscribeAll(h.rec,
		event.EnemyDestroyed, event.BossSpawned, event.BossDefeated, event.PlayerHit,
		event.PlayerDied, event.PowerUpCollected, event.WeaponUnlocked, event.ShotFired, event.AreaBlast)
	return h
}

func enemyAt(x, y, size float64, hp int) component.Enemy {
	return component.Enemy{
		Body: component.Body{Pos: geom.Vec{X: x, Y: y}, W: size, H: size},
		HP:   hp,
		Kind: component.EnemyNormal,
	}
}

func shotAt(x, y float64, damage int, kind component.ProjectileKind) component.Projectile {
	return component.Projectile{
		Body:   component.Body{Pos: geom.Vec{X: x, Y: y}, W: 6, H: 16},
		Damage: damage,
		Kind:   kind,
	}
}

// onlyDrop returns a drop table that always yields kind.
func onlyDrop(kind component.PowerUpKind) []defs.LootEntry {
	return []defs.LootEntry{{Value: kind, Weight: 1}}
}
