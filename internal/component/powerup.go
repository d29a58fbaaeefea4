package component

// PowerUpKind — тип бонуса. Пустая строка означает «ничего не выпало».
type PowerUpKind string

const (
	PowerUpNone   PowerUpKind = ""
	PowerUpHealth PowerUpKind = "health"
	PowerUpWeapon PowerUpKind = "weapon"
	PowerUpShield PowerUpKind = "shield"
)

// PowerUp — падающий бонус.
type PowerUp struct {
	Body
	Kind PowerUpKind
}
