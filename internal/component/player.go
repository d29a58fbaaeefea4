// internal/component/player.go
package component

import "time"

// Player — корабль игрока. Создаётся один раз и переинициализируется при рестарте.
type Player struct {
	Body
	Speed      float64
	Health     int
	MaxHealth  int
	Invincible int           // кадры неуязвимости после попадания
	Shield     int           // кадры щита от бонуса
	Weapon     int           // индекс текущего уровня оружия в каталоге
	LastShot   time.Duration // время последнего выстрела по часам симуляции
}

// Protected — игнорируются ли сейчас попадания.
func (p *Player) Protected() bool {
	return p.Invincible > 0 || p.Shield > 0
}

// Progress хранит прогресс текущего забега: очки, убийства и уровень.
type Progress struct {
	Score          int
	Kills          int
	Level          int
	BossesDefeated int
}
