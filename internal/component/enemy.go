package component

// EnemyKind задаёт базовые характеристики и движение врага.
type EnemyKind string

const (
	EnemyNormal EnemyKind = "normal"
	EnemyFast   EnemyKind = "fast"
	EnemyTanky  EnemyKind = "tanky"
	EnemyZigzag EnemyKind = "zigzag"
)

// Enemy представляет вражеский корабль.
type Enemy struct {
	Body
	HP   int
	Kind EnemyKind
}
