// internal/system/boss.go
package system

import (
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/pkg/geom"
)

// BossSystem ведёт схватку с боссом: Absent -> Active -> Defeated.
type BossSystem struct {
	world      *entity.World
	effects    *VisualEffectSystem
	powerups   *PowerUpSystem
	dispatcher *event.Dispatcher
}

func NewBossSystem(world *entity.World, effects *VisualEffectSystem, powerups *PowerUpSystem, dispatcher *event.Dispatcher) *BossSystem {
	return &BossSystem{world: world, effects: effects, powerups: powerups, dispatcher: dispatcher}
}

// SpawnThreshold — счёт, при котором появляется босс уровня level.
func SpawnThreshold(level int) int {
	return config.BossScoreStep * level
}

// TrySpawn создаёт босса, если набран порог счёта и слот свободен.
// Повторный вызов при живом боссе ничего не делает.
func (s *BossSystem) TrySpawn() bool {
	w := s.world
	if w.BossPhase != component.BossAbsent || w.Boss != nil {
		return false
	}
	if w.Progress.Score < SpawnThreshold(w.Progress.Level) {
		return false
	}

	level := w.Progress.Level
	hp := config.BossBaseHP + config.BossHPPerLevel*level
	w.Boss = &component.Boss{
		Body: component.Body{
			Pos: geom.Vec{X: config.ScreenWidth/2 - config.BossWidth/2, Y: config.BossTopY},
			Vel: geom.Vec{X: config.BossBaseSpeed + config.BossSpeedPerLevel*float64(level)},
			W:   config.BossWidth,
			H:   config.BossHeight,
		},
		HP:    hp,
		MaxHP: hp,
	}
	w.BossPhase = component.BossActive
	s.dispatcher.Dispatch(event.Event{
		Type: event.BossSpawned,
		Data: event.BossData{Level: level, MaxHP: hp, At: w.Boss.Center()},
	})
	return true
}

// Update двигает босса от края до края и стреляет залпами.
func (s *BossSystem) Update() {
	if !s.world.BossActive() {
		return
	}
	b := s.world.Boss
	b.Step()
	if b.Pos.X <= 0 {
		b.Pos.X = 0
		b.Vel.X = math.Abs(b.Vel.X)
	} else if b.Rect().Right() >= config.ScreenWidth {
		b.Pos.X = config.ScreenWidth - b.W
		b.Vel.X = -math.Abs(b.Vel.X)
	}

	b.FireTimer++
	if b.FireTimer >= config.BossFireInterval {
		b.FireTimer = 0
		s.Barrage()
	}
}

// Barrage выпускает веер снарядов из-под босса в сторону игрока.
func (s *BossSystem) Barrage() {
	b := s.world.Boss
	if b == nil {
		return
	}
	n := 3
	if s.world.Progress.Level >= config.BossWideVolley {
		n = 5
	}

	origin := geom.Vec{X: b.Center().X, Y: b.Rect().Bottom()}
	aim := s.world.Player.Center().Sub(origin)
	base := math.Atan2(aim.Y, aim.X)
	if aim.Len() == 0 {
		base = math.Pi / 2
	}

	for i := 0; i < n; i++ {
		angle := base + (float64(i)-float64(n-1)/2)*config.BossShotSpread
		vel := geom.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(config.BossShotSpeed)
		s.world.AddEnemyShot(component.Projectile{
			Body: component.Body{
				Pos: geom.Vec{X: origin.X - config.BossShotWidth/2, Y: origin.Y},
				Vel: vel,
				W:   config.BossShotWidth,
				H:   config.BossShotHeight,
			},
			Damage: 1,
			Kind:   component.Plain{},
		})
	}
}

// Damage наносит урон боссу; при HP <= 0 запускает Defeat.
func (s *BossSystem) Damage(amount int) {
	if !s.world.BossActive() {
		return
	}
	s.world.Boss.HP -= amount
	if s.world.Boss.HP <= 0 {
		s.Defeat()
	}
}

// Defeat завершает схватку: взрыв, гарантированный бонус, следующий уровень.
func (s *BossSystem) Defeat() {
	w := s.world
	b := w.Boss
	if b == nil {
		return
	}
	at := b.Center()
	level := w.Progress.Level

	s.effects.Explode(at, config.BossParticles, config.BossDeathColor)
	s.powerups.DropGuaranteed(at)
	w.Progress.Level++
	w.Boss = nil
	w.BossPhase = component.BossDefeated

	s.dispatcher.Dispatch(event.Event{
		Type: event.BossDefeated,
		Data: event.BossData{Level: level, MaxHP: b.MaxHP, At: at},
	})
}
