// internal/event/types.go
package event

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
	"go-space-shooter/pkg/geom"
)

const (
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен
	BossSpawned      EventType = "BossSpawned"      // Появился босс
	BossDefeated     EventType = "BossDefeated"     // Босс побеждён
	PlayerHit        EventType = "PlayerHit"        // Игрок потерял здоровье
	PlayerDied       EventType = "PlayerDied"       // Здоровье игрока упало до нуля
	PowerUpCollected EventType = "PowerUpCollected" // Подобран бонус
	WeaponUnlocked   EventType = "WeaponUnlocked"   // Сменилось оружие
	ShotFired        EventType = "ShotFired"        // Оружие выстрелило
	AreaBlast        EventType = "AreaBlast"        // Сработала ядерная бомба
	RunStarted       EventType = "RunStarted"       // Новый забег или новый уровень
	PhaseChanged     EventType = "PhaseChanged"     // Сменилась фаза игры
)

// EnemyDestroyedData — данные EnemyDestroyed.
type EnemyDestroyedData struct {
	ID   types.EntityID
	Kind component.EnemyKind
	At   geom.Vec // центр врага в момент смерти
}

// BossData — payload BossSpawned и BossDefeated.
type BossData struct {
	Level int
	MaxHP int
	At    geom.Vec
}

// PlayerHitData — payload PlayerHit и PlayerDied.
type PlayerHitData struct {
	Health int
	At     geom.Vec
}

type PowerUpData struct {
	Kind component.PowerUpKind
}

type WeaponData struct {
	From, To string
	Kills    int
}

type ShotData struct {
	Weapon string
	Shots  int
}

type AreaBlastData struct {
	Destroyed  int
	BossDamage int
}

// RunData — данные RunStarted. Fresh ложно при продолжении уровня.
type RunData struct {
	Level int
	Fresh bool
}

// PhaseData — данные PhaseChanged.
type PhaseData struct {
	From, To, Trigger string
}
