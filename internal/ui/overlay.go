// internal/ui/overlay.go
package ui

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/state"
	"go-space-shooter/pkg/render"
)

// overlayLines — текст экранов поверх игрового поля.
func overlayLines(phase state.Phase, w *entity.World) []string {
	switch phase {
	case state.Menu:
		return []string{"SPACE SHOOTER", "", "Enter - start", "I - instructions"}
	case state.Instructions:
		return []string{
			"HOW TO PLAY",
			"",
			"Left/Right or A/D - move",
			"Space - fire (hold)",
			"P - pause",
			"",
			"Kills unlock stronger guns.",
			"Reach the score target to face the boss.",
			"",
			"Enter - start    Esc - back",
		}
	case state.Paused:
		return []string{"PAUSED", "", "P - resume", "R - restart", "M - menu"}
	case state.GameOver:
		return []string{"GAME OVER", "", fmt.Sprintf("Score: %d", w.Progress.Score), "", "R - restart", "M - menu"}
	case state.Win:
		return []string{
			"BOSS DEFEATED",
			"",
			fmt.Sprintf("Score: %d", w.Progress.Score),
			fmt.Sprintf("Next: level %s", toRoman(w.Progress.Level)),
			"",
			"Enter - continue",
			"R - restart    M - menu",
		}
	default:
		return nil
	}
}

// Overlay затемняет поле и выводит текст экрана фазы. Для Playing пусто.
func Overlay(phase state.Phase, w *entity.World) []render.Command {
	lines := overlayLines(phase, w)
	if len(lines) == 0 {
		return nil
	}
	cmds := []render.Command{render.Rect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)}
	top := float64(config.ScreenHeight/2 - len(lines)*config.HUDLineHeight/2)
	for i, line := range lines {
		x := float64(config.ScreenWidth/2 - len(line)*charWidth/2)
		cmds = append(cmds, render.Text(x, top+float64(i*config.HUDLineHeight), line, config.TextColor))
	}
	return cmds
}
