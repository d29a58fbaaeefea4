// internal/defs/loot_tables.go
package defs

import "go-space-shooter/internal/component"

// Weighted — одна запись таблицы взвешенного выбора.
// Weight — относительный шанс выпадения Value.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// LootEntry — запись таблицы выпадения бонусов.
type LootEntry = Weighted[component.PowerUpKind]

// DefaultDrops — таблица выпадения при смерти любого врага. "Ничего"
// остаётся явным большинством.
func DefaultDrops() []LootEntry {
	return []LootEntry{
		{Value: component.PowerUpNone, Weight: 0.80},
		{Value: component.PowerUpHealth, Weight: 0.07},
		{Value: component.PowerUpWeapon, Weight: 0.07},
		{Value: component.PowerUpShield, Weight: 0.06},
	}
}

// Guaranteed возвращает таблицу без исхода "ничего" для гарантированных
// наград.
func Guaranteed(table []LootEntry) []LootEntry {
	out := make([]LootEntry, 0, len(table))
	for _, e := range table {
		if e.Value != component.PowerUpNone {
			out = append(out, e)
		}
	}
	return out
}

// TotalWeight — сумма весов таблицы.
func TotalWeight[T any](table []Weighted[T]) float64 {
	total := 0.0
	for _, e := range table {
		total += e.Weight
	}
	return total
}
