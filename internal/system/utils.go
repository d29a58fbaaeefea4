// internal/system/utils.go
package system

import (
	"image/color"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/geom"
)

// Playfield — видимая часть поля.
var Playfield = geom.Rect{W: config.ScreenWidth, H: config.ScreenHeight}

// offField — лежит ли r целиком за пределами поля.
func offField(r geom.Rect) bool {
	return !r.Overlaps(Playfield)
}

// ShotColor возвращает цвет снаряда игрока по варианту.
func ShotColor(k component.ProjectileKind) color.RGBA {
	switch k.(type) {
	case *component.Rocket:
		return config.RocketColor
	case *component.Missile:
		return config.MissileColor
	case component.Beam:
		return config.BeamColor
	default:
		return config.ShotColor
	}
}
