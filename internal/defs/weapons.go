// internal/defs/weapons.go
package defs

import (
	"time"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/geom"
)

// Emission — результат выстрела: залп снарядов или взрыв по площади,
// который применяется сразу.
type Emission interface {
	emission()
}

// Volley — набор только что созданных снарядов.
type Volley struct {
	Shots []component.Projectile
}

// AreaBlast уничтожает всех живых врагов и наносит боссу BossDamage.
// Снарядов не создаёт.
type AreaBlast struct {
	BossDamage int
	Particles  int
}

func (Volley) emission()    {}
func (AreaBlast) emission() {}

// Pattern строит выстрел для корабля в данном прямоугольнике.
// Состояние игры не трогает.
type Pattern func(ship geom.Rect) Emission

// WeaponTier — одно открываемое оружие.
type WeaponTier struct {
	Name      string
	Threshold int           // убийств для открытия
	Delay     time.Duration // минимальный интервал между выстрелами
	Pattern   Pattern
}

func bolt(x, y, vx, vy, w, h float64, damage int, kind component.ProjectileKind) component.Projectile {
	return component.Projectile{
		Body:   component.Body{Pos: geom.Vec{X: x, Y: y}, Vel: geom.Vec{X: vx, Y: vy}, W: w, H: h},
		Damage: damage,
		Kind:   kind,
	}
}

func singlePattern(ship geom.Rect) Emission {
	x := ship.Center().X - config.ShotWidth/2
	return Volley{Shots: []component.Projectile{
		bolt(x, ship.Y-10, 0, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
	}}
}

func doublePattern(ship geom.Rect) Emission {
	return Volley{Shots: []component.Projectile{
		bolt(ship.X+6, ship.Y-6, 0, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
		bolt(ship.Right()-12, ship.Y-6, 0, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
	}}
}

func spreadPattern(ship geom.Rect) Emission {
	x := ship.Center().X - config.ShotWidth/2
	return Volley{Shots: []component.Projectile{
		bolt(x, ship.Y-6, -3, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
		bolt(x, ship.Y-10, 0, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
		bolt(x, ship.Y-6, 3, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
	}}
}

func rocketPattern(ship geom.Rect) Emission {
	return Volley{Shots: []component.Projectile{
		bolt(ship.X+2, ship.Y, 0, -4, 8, 18, 2, &component.Rocket{}),
		bolt(ship.Right()-10, ship.Y, 0, -4, 8, 18, 2, &component.Rocket{}),
	}}
}

func missilePattern(ship geom.Rect) Emission {
	x := ship.Center().X - 4
	return Volley{Shots: []component.Projectile{
		bolt(x-10, ship.Y-4, 0, -7, 8, 14, 2, &component.Missile{Phase: 0, Amplitude: 2.5}),
		bolt(x+10, ship.Y-4, 0, -7, 8, 14, 2, &component.Missile{Phase: 3.14159, Amplitude: 2.5}),
	}}
}

func beamPattern(ship geom.Rect) Emission {
	x := ship.Center().X
	return Volley{Shots: []component.Projectile{
		bolt(x-4, ship.Y-40, 0, -16, 8, 40, 2, component.Beam{}),
		bolt(ship.X, ship.Y-6, -1.5, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
		bolt(ship.Right()-config.ShotWidth, ship.Y-6, 1.5, -config.ShotSpeed, config.ShotWidth, config.ShotHeight, 1, component.Plain{}),
	}}
}

func nukePattern(geom.Rect) Emission {
	return AreaBlast{BossDamage: 15, Particles: 160}
}

// SplashRadius возвращает радиус урона по площади для варианта снаряда или 0.
func SplashRadius(k component.ProjectileKind) float64 {
	switch k.(type) {
	case *component.Rocket:
		return 60
	case *component.Missile:
		return 50
	default:
		return 0
	}
}

// DefaultWeapons возвращает каталог оружия по возрастанию порога.
func DefaultWeapons() []WeaponTier {
	return []WeaponTier{
		{Name: "single", Threshold: 0, Delay: 150 * time.Millisecond, Pattern: singlePattern},
		{Name: "double", Threshold: 10, Delay: 200 * time.Millisecond, Pattern: doublePattern},
		{Name: "spread", Threshold: 25, Delay: 250 * time.Millisecond, Pattern: spreadPattern},
		{Name: "rockets", Threshold: 45, Delay: 400 * time.Millisecond, Pattern: rocketPattern},
		{Name: "missiles", Threshold: 70, Delay: 350 * time.Millisecond, Pattern: missilePattern},
		{Name: "beam", Threshold: 100, Delay: 120 * time.Millisecond, Pattern: beamPattern},
		{Name: "nuke", Threshold: 150, Delay: 2500 * time.Millisecond, Pattern: nukePattern},
	}
}
