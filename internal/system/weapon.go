// internal/system/weapon.go
package system

import (
	"time"

	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// SelectActiveWeapon возвращает индекс последнего уровня оружия (по
// возрастанию порога), чей порог не превышает kills. Ниже всех порогов
// остаётся базовый уровень 0.
func SelectActiveWeapon(tiers []defs.WeaponTier, kills int) int {
	active := 0
	for i, tier := range tiers {
		if tier.Threshold > kills {
			break
		}
		active = i
	}
	return active
}

// AttemptFire — прошла ли перезарядка tier с момента lastFire.
func AttemptFire(now, lastFire time.Duration, tier defs.WeaponTier) bool {
	return now-lastFire >= tier.Delay
}

// WeaponSystem стреляет текущим оружием игрока, пока зажата клавиша огня.
type WeaponSystem struct {
	world      *entity.World
	tiers      []defs.WeaponTier
	combat     *CombatSystem
	dispatcher *event.Dispatcher
}

func NewWeaponSystem(world *entity.World, tiers []defs.WeaponTier, combat *CombatSystem, dispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{world: world, tiers: tiers, combat: combat, dispatcher: dispatcher}
}

// Update пытается выстрелить. Возвращает true, если выстрел состоялся.
func (s *WeaponSystem) Update(fireHeld bool) bool {
	if !fireHeld {
		return false
	}
	p := s.world.Player
	tier := s.tiers[p.Weapon]
	if !AttemptFire(s.world.Clock, p.LastShot, tier) {
		return false
	}
	p.LastShot = s.world.Clock

	shots := 0
	switch em := tier.Pattern(p.Rect()).(type) {
	case defs.Volley:
		for _, shot := range em.Shots {
			s.world.AddShot(shot)
		}
		shots = len(em.Shots)
	case defs.AreaBlast:
		s.combat.ApplyAreaBlast(em)
	}

	s.dispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotData{Weapon: tier.Name, Shots: shots},
	})
	return true
}
