// pkg/render/ebiten.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var cockpitColor = color.RGBA{17, 17, 17, 255}

// EbitenPainter рисует список команд на ebiten.Image.
type EbitenPainter struct {
	face   font.Face
	ascent int
}

func NewEbitenPainter() *EbitenPainter {
	face := basicfont.Face7x13
	return &EbitenPainter{face: face, ascent: face.Metrics().Ascent.Ceil()}
}

// Paint рисует команды по порядку: следующие поверх предыдущих.
func (p *EbitenPainter) Paint(screen *ebiten.Image, cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case KindRect:
			fillRect(screen, c.X, c.Y, c.W, c.H, c.Color)
		case KindSprite:
			p.drawSprite(screen, c)
		case KindText:
			text.Draw(screen, c.Text, p.face, int(c.X), int(c.Y)+p.ascent, c.Color)
		}
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (p *EbitenPainter) drawSprite(dst *ebiten.Image, c Command) {
	switch c.Sprite {
	case SpritePlayer:
		// корпус, крылья и кабина
		fillRect(dst, c.X+c.W*0.35, c.Y, c.W*0.3, c.H, c.Color)
		fillRect(dst, c.X, c.Y+c.H*0.55, c.W, c.H*0.3, DarkenColor(c.Color))
		fillRect(dst, c.X+c.W*0.42, c.Y+c.H*0.2, c.W*0.16, c.H*0.2, cockpitColor)
	case SpriteBoss:
		fillRect(dst, c.X, c.Y, c.W, c.H, c.Color)
		fillRect(dst, c.X+30, c.Y+20, c.W-60, 20, DarkenColor(DarkenColor(c.Color)))
		vector.StrokeRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 2, DarkenColor(c.Color), false)
	case SpriteEnemy:
		fillRect(dst, c.X, c.Y, c.W, c.H, c.Color)
		fillRect(dst, c.X+c.W/2-3, c.Y+6, 6, 6, cockpitColor)
	default:
		fillRect(dst, c.X, c.Y, c.W, c.H, c.Color)
	}
}
