// pkg/render/terminal.go
package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalPainter растеризует команды в ячейки терминала. Поле width x height
// пикселей растягивается на весь экран.
type TerminalPainter struct {
	screen        tcell.Screen
	width, height float64
}

func NewTerminalPainter(screen tcell.Screen, width, height float64) *TerminalPainter {
	return &TerminalPainter{screen: screen, width: width, height: height}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Cell переводит точку поля в координаты ячейки.
func (p *TerminalPainter) Cell(x, y float64) (int, int) {
	cols, rows := p.screen.Size()
	return int(math.Floor(x * float64(cols) / p.width)), int(math.Floor(y * float64(rows) / p.height))
}

// Paint очищает экран, рисует команды и показывает кадр.
func (p *TerminalPainter) Paint(cmds []Command) {
	p.screen.Clear()
	for _, c := range cmds {
		switch c.Kind {
		case KindRect:
			p.fill(c, ' ', tcell.StyleDefault.Background(toTcell(c.Color)), '.')
		case KindSprite:
			p.fill(c, spriteRune(c.Sprite), tcell.StyleDefault.Foreground(toTcell(c.Color)).Bold(true), spriteRune(c.Sprite))
		case KindText:
			x, y := p.Cell(c.X, c.Y)
			style := tcell.StyleDefault.Foreground(toTcell(c.Color))
			for i, r := range []rune(c.Text) {
				p.screen.SetContent(x+i, y, r, nil, style)
			}
		}
	}
	p.screen.Show()
}

// fill закрашивает ячейки, покрытые прямоугольником. Прямоугольник меньше
// ячейки рисуется одним символом small цветом переднего плана.
func (p *TerminalPainter) fill(c Command, r rune, style tcell.Style, small rune) {
	x0, y0 := p.Cell(c.X, c.Y)
	x1, y1 := p.Cell(c.X+c.W, c.Y+c.H)
	if x1 <= x0 || y1 <= y0 {
		if c.Kind == KindRect {
			style = tcell.StyleDefault.Foreground(toTcell(c.Color))
		}
		p.screen.SetContent(x0, y0, small, nil, style)
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func spriteRune(id SpriteID) rune {
	switch id {
	case SpritePlayer:
		return 'A'
	case SpriteBoss:
		return '#'
	case SpriteEnemy:
		return 'W'
	default:
		return '?'
	}
}
