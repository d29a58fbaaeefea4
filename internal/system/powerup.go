// internal/system/powerup.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/geom"
)

// PowerUpSystem бросает бонусы на месте смерти врагов и применяет их
// при подборе.
type PowerUpSystem struct {
	world      *entity.World
	rng        *utils.PRNGService
	player     *PlayerSystem
	dispatcher *event.Dispatcher
	drops      []defs.LootEntry
	guaranteed []defs.LootEntry

	Rolls int // сколько раз бросали таблицу выпадения
}

func NewPowerUpSystem(world *entity.World, rng *utils.PRNGService, player *PlayerSystem, dispatcher *event.Dispatcher, drops []defs.LootEntry) *PowerUpSystem {
	return &PowerUpSystem{
		world:      world,
		rng:        rng,
		player:     player,
		dispatcher: dispatcher,
		drops:      drops,
		guaranteed: defs.Guaranteed(drops),
	}
}

// Roll бросает таблицу выпадения и, если выпал бонус, кладёт его в точку at.
func (s *PowerUpSystem) Roll(at geom.Vec) component.PowerUpKind {
	s.Rolls++
	kind := utils.ChooseWeighted(s.rng, s.drops)
	s.place(kind, at)
	return kind
}

// DropGuaranteed бросает таблицу без исхода "ничего".
func (s *PowerUpSystem) DropGuaranteed(at geom.Vec) component.PowerUpKind {
	s.Rolls++
	kind := utils.ChooseWeighted(s.rng, s.guaranteed)
	s.place(kind, at)
	return kind
}

func (s *PowerUpSystem) place(kind component.PowerUpKind, at geom.Vec) {
	if kind == component.PowerUpNone {
		return
	}
	box := geom.RectAround(at, config.PowerUpSize, config.PowerUpSize)
	s.world.AddPowerUp(component.PowerUp{
		Body: component.Body{
			Pos: geom.Vec{X: box.X, Y: box.Y},
			Vel: geom.Vec{Y: config.PowerUpFallSpeed},
			W:   box.W,
			H:   box.H,
		},
		Kind: kind,
	})
}

// Update подбирает бонусы, которых касается игрок.
func (s *PowerUpSystem) Update() {
	ship := s.world.Player.Rect()
	for _, id := range entity.SortedIDs(s.world.PowerUps) {
		pu := s.world.PowerUps[id]
		if !pu.Rect().Overlaps(ship) {
			continue
		}
		delete(s.world.PowerUps, id)
		s.Apply(pu.Kind)
	}
}

// Apply применяет эффект бонуса к игроку.
func (s *PowerUpSystem) Apply(kind component.PowerUpKind) {
	switch kind {
	case component.PowerUpHealth:
		s.player.Heal(config.HealthPickupAmount)
	case component.PowerUpWeapon:
		s.player.AddKills(config.WeaponBoostKills)
	case component.PowerUpShield:
		s.world.Player.Shield = config.ShieldFrames
	default:
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{Kind: kind}})
}

// OnEvent бросает таблицу выпадения на месте смерти врага.
func (s *PowerUpSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	if data, ok := e.Data.(event.EnemyDestroyedData); ok {
		s.Roll(data.At)
	}
}
