// internal/component/projectile.go
package component

// ProjectileKind — закрытый набор вариантов снаряда. Вариант хранит только
// то, что нужно его движению; системы выбирают поведение по типу.
type ProjectileKind interface {
	projectileKind()
}

// Plain — обычный прямой снаряд.
type Plain struct{}

// Rocket разгоняется после пуска и оставляет дымный след.
type Rocket struct {
	Trail int // кадры с последней частицы следа
}

// Missile виляет вокруг линии пуска.
type Missile struct {
	Phase     float64
	Amplitude float64
}

// Beam — длинный быстрый луч.
type Beam struct{}

func (Plain) projectileKind()    {}
func (*Rocket) projectileKind()  {}
func (*Missile) projectileKind() {}
func (Beam) projectileKind()     {}

// Projectile представляет летящий снаряд игрока или врага.
type Projectile struct {
	Body
	Damage int
	Kind   ProjectileKind
}

// KindName возвращает постоянное имя варианта снаряда.
func KindName(k ProjectileKind) string {
	switch k.(type) {
	case *Rocket:
		return "rocket"
	case *Missile:
		return "missile"
	case Beam:
		return "beam"
	default:
		return "plain"
	}
}
