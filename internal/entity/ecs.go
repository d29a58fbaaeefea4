// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"
	"time"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/types"
	"go-space-shooter/pkg/geom"
)

// World — всё изменяемое состояние одного забега. Системы получают указатель
// на World и меняют его на месте; глобального состояния нет.
type World struct {
	Clock  time.Duration // часы симуляции, +1 кадр за тик
	Frame  uint64
	NextID types.EntityID

	Player   *component.Player
	Progress component.Progress

	Shots      map[types.EntityID]*component.Projectile // снаряды игрока
	EnemyShots map[types.EntityID]*component.Projectile // снаряды врагов и босса
	Enemies    map[types.EntityID]*component.Enemy
	PowerUps   map[types.EntityID]*component.PowerUp
	Particles  map[types.EntityID]*component.Particle

	Boss      *component.Boss
	BossPhase component.BossPhase

	LastSpawn time.Duration
}

// NeverFired — значение LastShot, при котором первый выстрел всегда разрешён.
const NeverFired = time.Duration(-1 << 62)

// NewWorld создаёт пустой мир с игроком в стартовой позиции.
func NewWorld() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset возвращает мир в начальное состояние: пустые хранилища, игрок
// с полным здоровьем и базовым оружием, очки и убийства 0, уровень 1.
func (w *World) Reset() {
	w.Clock = 0
	w.Frame = 0
	w.NextID = 1
	w.Player = NewPlayer()
	w.Progress = component.Progress{Level: 1}
	w.Shots = make(map[types.EntityID]*component.Projectile)
	w.EnemyShots = make(map[types.EntityID]*component.Projectile)
	w.Enemies = make(map[types.EntityID]*component.Enemy)
	w.PowerUps = make(map[types.EntityID]*component.PowerUp)
	w.Particles = make(map[types.EntityID]*component.Particle)
	w.Boss = nil
	w.BossPhase = component.BossAbsent
	w.LastSpawn = NeverFired
}

// ClearHostiles убирает врагов и все снаряды перед следующим уровнем.
// Игрок, прогресс, оружие и упавшие бонусы сохраняются.
func (w *World) ClearHostiles() {
	clear(w.Shots)
	clear(w.EnemyShots)
	clear(w.Enemies)
	w.Boss = nil
	w.BossPhase = component.BossAbsent
	w.Player.Invincible = 0
}

// NewPlayer создаёт корабль игрока внизу по центру поля.
func NewPlayer() *component.Player {
	return &component.Player{
		Body: component.Body{
			Pos: geom.Vec{
				X: config.ScreenWidth/2 - config.PlayerWidth/2,
				Y: config.ScreenHeight - config.PlayerBottomGap,
			},
			W: config.PlayerWidth,
			H: config.PlayerHeight,
		},
		Speed:     config.PlayerSpeed,
		Health:    config.PlayerMaxHealth,
		MaxHealth: config.PlayerMaxHealth,
		LastShot:  NeverFired,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddShot(p component.Projectile) types.EntityID {
	id := w.NewEntity()
	w.Shots[id] = &p
	return id
}

func (w *World) AddEnemyShot(p component.Projectile) types.EntityID {
	id := w.NewEntity()
	w.EnemyShots[id] = &p
	return id
}

func (w *World) AddEnemy(e component.Enemy) types.EntityID {
	id := w.NewEntity()
	w.Enemies[id] = &e
	return id
}

func (w *World) AddPowerUp(p component.PowerUp) types.EntityID {
	id := w.NewEntity()
	w.PowerUps[id] = &p
	return id
}

func (w *World) AddParticle(p component.Particle) types.EntityID {
	id := w.NewEntity()
	w.Particles[id] = &p
	return id
}

// BossActive — занят ли слот босса.
func (w *World) BossActive() bool {
	return w.BossPhase == component.BossActive && w.Boss != nil
}

// Counts возвращает размеры хранилищ по их именам.
func (w *World) Counts() map[string]int {
	return map[string]int{
		"shots":      len(w.Shots),
		"enemyShots": len(w.EnemyShots),
		"enemies":    len(w.Enemies),
		"powerUps":   len(w.PowerUps),
		"particles":  len(w.Particles),
	}
}

// Empty — пусты ли все хранилища и нет ли босса.
func (w *World) Empty() bool {
	return len(w.Shots) == 0 && len(w.EnemyShots) == 0 && len(w.Enemies) == 0 &&
		len(w.PowerUps) == 0 && len(w.Particles) == 0 && w.Boss == nil
}

// SortedIDs возвращает ключи хранилища по возрастанию, чтобы порядок обхода
// не зависел от порядка итерации map.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
