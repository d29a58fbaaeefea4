// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"go-space-shooter/pkg/render"
)

const (
	HealthPipSize    = 10.0
	HealthPipSpacing = 4.0
)

var (
	healthFullColor  = color.RGBA{239, 68, 68, 255}
	healthLowColor   = color.RGBA{251, 146, 60, 255}
	healthEmptyColor = color.RGBA{55, 65, 81, 255}
)

// PlayerHealthIndicator отображает здоровье игрока рядом с числом жизней.
type PlayerHealthIndicator struct {
	X, Y float64
}

func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Commands рисует ряд ячеек: заполненные по числу жизней, остальные пустые.
// При здоровье не выше половины заполненные ячейки меняют цвет.
func (i *PlayerHealthIndicator) Commands(health, maxHealth int) []render.Command {
	cmds := make([]render.Command, 0, maxHealth)
	fill := healthFullColor
	if health <= maxHealth/2 {
		fill = healthLowColor
	}
	for j := 0; j < maxHealth; j++ {
		c := healthEmptyColor
		if j < health {
			c = fill
		}
		x := i.X + float64(j)*(HealthPipSize+HealthPipSpacing)
		cmds = append(cmds, render.Rect(x, i.Y, HealthPipSize, HealthPipSize, c))
	}
	return cmds
}
