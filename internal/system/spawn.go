// internal/system/spawn.go
package system

import (
	"time"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/geom"
)

// SpawnSystem выпускает врагов сверху поля и стреляет за них.
type SpawnSystem struct {
	world *entity.World
	rng   *utils.PRNGService
	table []defs.Weighted[defs.EnemyDefinition]
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, enemies []defs.EnemyDefinition) *SpawnSystem {
	return &SpawnSystem{world: world, rng: rng, table: defs.SpawnTable(enemies)}
}

// SpawnChance — вероятность появления врага за кадр при данном счёте.
func SpawnChance(score int) float64 {
	bonus := min(float64(score)/config.SpawnScoreDivisor, config.SpawnScoreBonus)
	return min(config.SpawnBaseChance+bonus, config.SpawnMaxChance)
}

// MaybeSpawn решает, появится ли враг в момент now. Пока жив босс, враги
// не появляются; между появлениями проходит не меньше MinSpawnInterval.
func (s *SpawnSystem) MaybeSpawn(now, lastSpawn time.Duration, score int) (component.Enemy, bool) {
	if s.world.BossActive() {
		return component.Enemy{}, false
	}
	if now-lastSpawn < config.MinSpawnInterval {
		return component.Enemy{}, false
	}
	if s.rng.Float64() >= SpawnChance(score) {
		return component.Enemy{}, false
	}
	return s.build(utils.ChooseWeighted(s.rng, s.table)), true
}

func (s *SpawnSystem) build(def defs.EnemyDefinition) component.Enemy {
	vel := geom.Vec{Y: def.BaseSpeed}
	if def.SpeedJitter > 0 {
		vel.Y += s.rng.Float64() * def.SpeedJitter
	}
	if def.SideSpeed > 0 {
		vel.X = def.SideSpeed
		if s.rng.Intn(2) == 0 {
			vel.X = -vel.X
		}
	}
	return component.Enemy{
		Body: component.Body{
			Pos: geom.Vec{X: s.rng.Range(0, config.ScreenWidth-def.Size), Y: -def.Size},
			Vel: vel,
			W:   def.Size,
			H:   def.Size,
		},
		HP:   def.HP,
		Kind: def.Kind,
	}
}

// Update пробует выпустить врага и даёт каждому живому врагу шанс выстрелить.
func (s *SpawnSystem) Update() {
	w := s.world
	if e, ok := s.MaybeSpawn(w.Clock, w.LastSpawn, w.Progress.Score); ok {
		w.AddEnemy(e)
		w.LastSpawn = w.Clock
	}

	for _, id := range entity.SortedIDs(w.Enemies) {
		if s.rng.Float64() >= config.EnemyFireChance {
			continue
		}
		e := w.Enemies[id]
		w.AddEnemyShot(component.Projectile{
			Body: component.Body{
				Pos: geom.Vec{X: e.Center().X - config.EnemyShotWidth/2, Y: e.Rect().Bottom()},
				Vel: geom.Vec{Y: config.EnemyShotSpeed},
				W:   config.EnemyShotWidth,
				H:   config.EnemyShotHeight,
			},
			Damage: 1,
			Kind:   component.Plain{},
		})
	}
}
