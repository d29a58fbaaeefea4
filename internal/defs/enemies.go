// internal/defs/enemies.go
package defs

import "go-space-shooter/internal/component"

// EnemyDefinition holds the base stats of one enemy kind.
type EnemyDefinition struct {
	Kind        component.EnemyKind
	Size        float64
	BaseSpeed   float64 // vertical speed, px/frame
	SpeedJitter float64 // random extra vertical speed in [0, SpeedJitter)
	SideSpeed   float64 // horizontal speed for weaving kinds
	HP          int
	Weight      float64 // spawn probability, all weights sum to 1
}

// DefaultEnemies returns the enemy catalog.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{Kind: component.EnemyNormal, Size: 36, BaseSpeed: 2, SpeedJitter: 0.8, HP: 1, Weight: 0.5},
		{Kind: component.EnemyFast, Size: 28, BaseSpeed: 3.5, SpeedJitter: 1.2, HP: 1, Weight: 0.2},
		{Kind: component.EnemyTanky, Size: 48, BaseSpeed: 1.5, HP: 3, Weight: 0.2},
		{Kind: component.EnemyZigzag, Size: 36, BaseSpeed: 2.2, SideSpeed: 2.2, HP: 2, Weight: 0.1},
	}
}

// SpawnTable converts the enemy catalog into a weighted-choice table.
func SpawnTable(enemies []EnemyDefinition) []Weighted[EnemyDefinition] {
	table := make([]Weighted[EnemyDefinition], 0, len(enemies))
	for _, def := range enemies {
		table = append(table, Weighted[EnemyDefinition]{Value: def, Weight: def.Weight})
	}
	return table
}
