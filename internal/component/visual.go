// internal/component/visual.go
package component

import (
	"image/color"

	"go-space-shooter/pkg/geom"
)

// Particle — частица взрыва. Чисто визуальная, в игровой логике не участвует.
type Particle struct {
	Pos     geom.Vec
	Vel     geom.Vec
	Life    float64 // оставшееся время жизни в кадрах
	MaxLife float64
	Color   color.RGBA
}
