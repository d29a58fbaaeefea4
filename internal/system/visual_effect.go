// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/geom"
)

// VisualEffectSystem управляет частицами взрывов и шлейфов.
// На игровую логику не влияет.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// Explode разбрасывает count частиц из точки at.
func (s *VisualEffectSystem) Explode(at geom.Vec, count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		s.emit(at, geom.Vec{
			X: s.rng.Range(-config.ParticleSpeed, config.ParticleSpeed),
			Y: s.rng.Range(-config.ParticleSpeed, config.ParticleSpeed),
		}, c)
	}
}

// Scatter разбрасывает count частиц по всему полю, для вспышки ядерного залпа.
func (s *VisualEffectSystem) Scatter(count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		at := geom.Vec{X: s.rng.Range(0, config.ScreenWidth), Y: s.rng.Range(0, config.ScreenHeight)}
		angle := s.rng.Range(0, 2*math.Pi)
		s.emit(at, geom.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(config.ParticleSpeed), c)
	}
}

// Trail оставляет одну медленную частицу позади ракеты.
func (s *VisualEffectSystem) Trail(at geom.Vec, c color.RGBA) {
	s.emit(at, geom.Vec{X: s.rng.Range(-0.5, 0.5), Y: s.rng.Range(0.5, 1.5)}, c)
}

func (s *VisualEffectSystem) emit(at, vel geom.Vec, c color.RGBA) {
	life := s.rng.Range(config.ParticleMinLife, config.ParticleMaxLife)
	s.world.AddParticle(component.Particle{
		Pos:     at,
		Vel:     vel,
		Life:    life,
		MaxLife: life,
		Color:   c,
	})
}

// Update двигает частицы, гасит скорость и удаляет погасшие.
func (s *VisualEffectSystem) Update() {
	for id, p := range s.world.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(config.ParticleDrag)
		p.Life--
		if p.Life <= 0 {
			delete(s.world.Particles, id)
		}
	}
}
