// internal/system/render.go
package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/pkg/render"
)

// RenderSystem собирает список команд отрисовки мира. Порядок: фон, частицы,
// бонусы, снаряды, враги, босс, игрок.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Commands() []render.Command {
	w := s.world
	cmds := make([]render.Command, 0, 8+len(w.Particles)+len(w.Shots)+len(w.EnemyShots)+len(w.Enemies)+len(w.PowerUps))
	cmds = append(cmds, render.Rect(0, 0, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor))

	for _, id := range entity.SortedIDs(w.Particles) {
		p := w.Particles[id]
		c := render.FadeColor(p.Color, p.Life/p.MaxLife)
		cmds = append(cmds, render.Rect(p.Pos.X, p.Pos.Y, config.ParticleSize, config.ParticleSize, c))
	}
	for _, id := range entity.SortedIDs(w.PowerUps) {
		pu := w.PowerUps[id]
		cmds = append(cmds, render.Rect(pu.Pos.X, pu.Pos.Y, pu.W, pu.H, config.PowerUpColors[string(pu.Kind)]))
	}
	for _, id := range entity.SortedIDs(w.Shots) {
		p := w.Shots[id]
		cmds = append(cmds, render.Rect(p.Pos.X, p.Pos.Y, p.W, p.H, ShotColor(p.Kind)))
	}
	for _, id := range entity.SortedIDs(w.EnemyShots) {
		p := w.EnemyShots[id]
		cmds = append(cmds, render.Rect(p.Pos.X, p.Pos.Y, p.W, p.H, config.EnemyShotColor))
	}
	for _, id := range entity.SortedIDs(w.Enemies) {
		e := w.Enemies[id]
		cmds = append(cmds, render.Sprite(render.SpriteEnemy, e.Pos.X, e.Pos.Y, e.W, e.H, config.EnemyColors[string(e.Kind)]))
	}
	if b := w.Boss; b != nil {
		cmds = append(cmds, render.Sprite(render.SpriteBoss, b.Pos.X, b.Pos.Y, b.W, b.H, config.BossColor))
	}

	p := w.Player
	if p.Health > 0 {
		if p.Shield > 0 {
			cmds = append(cmds, render.Rect(p.Pos.X-4, p.Pos.Y-4, p.W+8, p.H+8, render.FadeColor(config.PlayerShieldColor, 0.35)))
		}
		// мигание во время неуязвимости
		if p.Invincible == 0 || (p.Invincible/4)%2 == 0 {
			cmds = append(cmds, render.Sprite(render.SpritePlayer, p.Pos.X, p.Pos.Y, p.W, p.H, config.PlayerColor))
		}
	}
	return cmds
}
