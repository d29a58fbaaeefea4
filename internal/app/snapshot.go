// internal/app/snapshot.go
package app

// BossSnapshot — состояние босса для отладочного вывода.
type BossSnapshot struct {
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
}

// Snapshot — копия состояния забега только для чтения, её можно
// передавать в другие горутины.
type Snapshot struct {
	Phase          string         `json:"phase"`
	Frame          uint64         `json:"frame"`
	ClockMillis    int64          `json:"clockMs"`
	Score          int            `json:"score"`
	Kills          int            `json:"kills"`
	Level          int            `json:"level"`
	BossesDefeated int            `json:"bossesDefeated"`
	Health         int            `json:"health"`
	MaxHealth      int            `json:"maxHealth"`
	Shield         int            `json:"shield"`
	Invincible     int            `json:"invincible"`
	Weapon         string         `json:"weapon"`
	BossPhase      string         `json:"bossPhase"`
	Boss           *BossSnapshot  `json:"boss,omitempty"`
	Entities       map[string]int `json:"entities"`
}

func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Phase:          g.Phase().String(),
		Frame:          w.Frame,
		ClockMillis:    w.Clock.Milliseconds(),
		Score:          w.Progress.Score,
		Kills:          w.Progress.Kills,
		Level:          w.Progress.Level,
		BossesDefeated: w.Progress.BossesDefeated,
		Health:         w.Player.Health,
		MaxHealth:      w.Player.MaxHealth,
		Shield:         w.Player.Shield,
		Invincible:     w.Player.Invincible,
		Weapon:         g.Catalog.Weapons[w.Player.Weapon].Name,
		BossPhase:      w.BossPhase.String(),
		Entities:       w.Counts(),
	}
	if w.Boss != nil {
		s.Boss = &BossSnapshot{HP: w.Boss.HP, MaxHP: w.Boss.MaxHP}
	}
	return s
}
