// internal/system/movement.go
package system

import (
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/pkg/geom"
)

// MovementSystem двигает снаряды, врагов и бонусы и удаляет всё, что
// покинуло поле.
type MovementSystem struct {
	world   *entity.World
	effects *VisualEffectSystem
}

func NewMovementSystem(world *entity.World, effects *VisualEffectSystem) *MovementSystem {
	return &MovementSystem{world: world, effects: effects}
}

func (s *MovementSystem) Update() {
	s.moveShots()
	s.moveEnemyShots()
	s.moveEnemies()
	s.movePowerUps()
}

func (s *MovementSystem) moveShots() {
	for _, id := range entity.SortedIDs(s.world.Shots) {
		p := s.world.Shots[id]
		switch k := p.Kind.(type) {
		case *component.Rocket:
			p.Vel.Y = math.Max(p.Vel.Y-config.RocketThrust, -config.RocketMaxSpeed)
			k.Trail++
			if k.Trail >= config.RocketTrailRate {
				k.Trail = 0
				s.effects.Trail(geom.Vec{X: p.Center().X, Y: p.Rect().Bottom()}, config.RocketColor)
			}
		case *component.Missile:
			k.Phase += config.MissileWeave
			p.Vel.X = math.Cos(k.Phase) * k.Amplitude
		}
		p.Step()
		if offField(p.Rect()) {
			delete(s.world.Shots, id)
		}
	}
}

func (s *MovementSystem) moveEnemyShots() {
	for id, p := range s.world.EnemyShots {
		p.Step()
		if offField(p.Rect()) {
			delete(s.world.EnemyShots, id)
		}
	}
}

func (s *MovementSystem) moveEnemies() {
	for id, e := range s.world.Enemies {
		e.Step()
		if e.Vel.X != 0 {
			// зигзаг отражается от боковых стенок
			if e.Pos.X <= 0 {
				e.Pos.X = 0
				e.Vel.X = math.Abs(e.Vel.X)
			} else if e.Rect().Right() >= config.ScreenWidth {
				e.Pos.X = config.ScreenWidth - e.W
				e.Vel.X = -math.Abs(e.Vel.X)
			}
		}
		if e.Pos.Y > config.ScreenHeight+config.EnemyExitMargin {
			delete(s.world.Enemies, id)
		}
	}
}

func (s *MovementSystem) movePowerUps() {
	for id, pu := range s.world.PowerUps {
		pu.Step()
		if pu.Pos.Y > config.ScreenHeight+config.PowerUpExitMargin {
			delete(s.world.PowerUps, id)
		}
	}
}
