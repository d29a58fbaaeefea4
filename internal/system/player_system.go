// internal/system/player_system.go
package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
)

// PlayerSystem отвечает за корабль игрока: движение, таймеры защиты,
// начисление очков и убийств и выбор оружия по числу убийств.
type PlayerSystem struct {
	world      *entity.World
	tiers      []defs.WeaponTier
	dispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, tiers []defs.WeaponTier, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, tiers: tiers, dispatcher: dispatcher}
}

// Move сдвигает игрока по горизонтали и держит его в пределах поля.
func (s *PlayerSystem) Move(left, right bool) {
	p := s.world.Player
	p.Vel.X = 0
	if left {
		p.Vel.X -= p.Speed
	}
	if right {
		p.Vel.X += p.Speed
	}
	p.Step()
	p.Pos.X = utils.Clamp(p.Pos.X, 0, config.ScreenWidth-p.W)
}

// TickTimers уменьшает таймеры неуязвимости и щита.
func (s *PlayerSystem) TickTimers() {
	p := s.world.Player
	p.Invincible = max(p.Invincible-1, 0)
	p.Shield = max(p.Shield-1, 0)
}

// AddKills увеличивает счётчик убийств и пересчитывает оружие.
func (s *PlayerSystem) AddKills(n int) {
	s.world.Progress.Kills += n
	s.reselect()
}

// Heal восстанавливает здоровье, не выше максимума.
func (s *PlayerSystem) Heal(n int) {
	p := s.world.Player
	p.Health = utils.Clamp(p.Health+n, 0, p.MaxHealth)
}

func (s *PlayerSystem) reselect() {
	p := s.world.Player
	next := SelectActiveWeapon(s.tiers, s.world.Progress.Kills)
	if next == p.Weapon {
		return
	}
	prev := p.Weapon
	p.Weapon = next
	s.dispatcher.Dispatch(event.Event{
		Type: event.WeaponUnlocked,
		Data: event.WeaponData{From: s.tiers[prev].Name, To: s.tiers[next].Name, Kills: s.world.Progress.Kills},
	})
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		s.world.Progress.Score += config.ScorePerKill
		s.AddKills(1)
	case event.BossDefeated:
		s.world.Progress.Score += config.ScorePerBoss
		s.world.Progress.BossesDefeated++
	}
}
