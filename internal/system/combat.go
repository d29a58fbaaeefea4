// internal/system/combat.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
	"go-space-shooter/pkg/geom"
)

// CombatSystem разрешает столкновения снарядов с врагами, боссом и игроком.
// Снаряд удаляется в момент попадания и больше не проверяется.
type CombatSystem struct {
	world      *entity.World
	effects    *VisualEffectSystem
	boss       *BossSystem
	dispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, effects *VisualEffectSystem, boss *BossSystem, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, effects: effects, boss: boss, dispatcher: dispatcher}
}

// Update разрешает попадания за кадр. Если босс пал в этом кадре, вражеские
// снаряды уже не трогают игрока: кадр закончился победой.
func (s *CombatSystem) Update() {
	s.resolveShots()
	if s.world.BossPhase == component.BossDefeated {
		return
	}
	s.resolveEnemyShots()
}

func (s *CombatSystem) resolveShots() {
	w := s.world
	for _, id := range entity.SortedIDs(w.Shots) {
		shot := w.Shots[id]
		box := shot.Rect()

		if target, ok := s.nearestEnemy(box); ok {
			delete(w.Shots, id)
			impact := box.Center()
			s.effects.Explode(impact, config.ImpactParticles, config.ImpactColor)
			s.damageEnemy(target, shot.Damage)
			if r := defs.SplashRadius(shot.Kind); r > 0 {
				s.splash(impact, r, shot.Damage, target)
			}
			continue
		}

		if w.BossActive() && box.Overlaps(w.Boss.Rect()) {
			delete(w.Shots, id)
			s.effects.Explode(box.Center(), config.BossHitParticles, config.BossHitColor)
			s.boss.Damage(shot.Damage)
		}
	}
}

// nearestEnemy выбирает из пересекающихся с box врагов ближайшего по центру.
// При равенстве побеждает меньший ID.
func (s *CombatSystem) nearestEnemy(box geom.Rect) (types.EntityID, bool) {
	var (
		best  types.EntityID
		found bool
		dist  float64
	)
	c := box.Center()
	for _, id := range entity.SortedIDs(s.world.Enemies) {
		e := s.world.Enemies[id]
		if !box.Overlaps(e.Rect()) {
			continue
		}
		d := geom.Dist(c, e.Center())
		if !found || d < dist {
			best, dist, found = id, d, true
		}
	}
	return best, found
}

func (s *CombatSystem) splash(at geom.Vec, radius float64, damage int, skip types.EntityID) {
	for _, id := range entity.SortedIDs(s.world.Enemies) {
		if id == skip {
			continue
		}
		if geom.Dist(at, s.world.Enemies[id].Center()) <= radius {
			s.damageEnemy(id, damage)
		}
	}
}

func (s *CombatSystem) damageEnemy(id types.EntityID, damage int) {
	e, ok := s.world.Enemies[id]
	if !ok {
		return
	}
	e.HP -= damage
	if e.HP <= 0 {
		s.destroyEnemy(id)
	}
}

func (s *CombatSystem) destroyEnemy(id types.EntityID) {
	e := s.world.Enemies[id]
	delete(s.world.Enemies, id)
	at := e.Center()
	s.effects.Explode(at, config.EnemyParticles, config.EnemyDeathColor)
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: id, Kind: e.Kind, At: at},
	})
}

func (s *CombatSystem) resolveEnemyShots() {
	w := s.world
	ship := w.Player.Rect()
	for _, id := range entity.SortedIDs(w.EnemyShots) {
		if !w.EnemyShots[id].Rect().Overlaps(ship) {
			continue
		}
		delete(w.EnemyShots, id)
		s.HitPlayer()
	}
}

// HitPlayer снимает одно очко здоровья, если игрок не защищён, и сразу
// включает окно неуязвимости.
func (s *CombatSystem) HitPlayer() {
	p := s.world.Player
	if p.Protected() || p.Health <= 0 {
		return
	}
	p.Health = max(p.Health-1, 0)
	p.Invincible = config.InvincibleFrames
	at := p.Center()
	s.effects.Explode(at, config.HitParticles, config.PlayerHitColor)
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Health: p.Health, At: at}})

	if p.Health == 0 {
		s.effects.Explode(at, config.DeathParticles, config.PlayerDeathColor)
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: event.PlayerHitData{At: at}})
	}
}

// ApplyAreaBlast уничтожает всех врагов на поле и бьёт босса.
func (s *CombatSystem) ApplyAreaBlast(blast defs.AreaBlast) {
	ids := entity.SortedIDs(s.world.Enemies)
	for _, id := range ids {
		s.destroyEnemy(id)
	}
	s.effects.Scatter(blast.Particles, config.NukeColor)
	bossDamage := 0
	if s.world.BossActive() {
		bossDamage = blast.BossDamage
		s.boss.Damage(blast.BossDamage)
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.AreaBlast,
		Data: event.AreaBlastData{Destroyed: len(ids), BossDamage: bossDamage},
	})
}
