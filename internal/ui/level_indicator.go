// internal/ui/level_indicator.go
package ui

import (
	"strings"

	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// LevelIndicator отображает номер уровня римскими цифрами в правом верхнем углу.
type LevelIndicator struct {
	X, Y float64
}

func NewLevelIndicator(x, y float64) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

func (i *LevelIndicator) Commands(level int) []render.Command {
	if level <= 0 {
		return nil
	}
	text := "Level " + toRoman(level)
	return []render.Command{render.Text(i.X-float64(len(text)*charWidth), i.Y, text, config.TextColor)}
}
