// internal/component/movement.go
package component

import "go-space-shooter/pkg/geom"

// Body — положение, скорость и размер сущности на игровом поле.
// Скорость задаётся в пикселях за кадр.
type Body struct {
	Pos  geom.Vec
	Vel  geom.Vec
	W, H float64
}

// Rect возвращает габаритный прямоугольник тела.
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Center возвращает центр тела.
func (b *Body) Center() geom.Vec {
	return b.Rect().Center()
}

// Step сдвигает тело на один кадр по его скорости.
func (b *Body) Step() {
	b.Pos = b.Pos.Add(b.Vel)
}
