// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/pkg/render"
)

// charWidth — ширина символа basicfont 7x13.
const charWidth = 7

// NextUnlockHint описывает следующее оружие или сообщает, что открыто
// последнее.
func NextUnlockHint(tiers []defs.WeaponTier, kills int) string {
	for _, t := range tiers {
		if t.Threshold > kills {
			return fmt.Sprintf("next: %s @%d", t.Name, t.Threshold)
		}
	}
	return "next: max"
}

// HUD собирает текстовую панель, индикатор здоровья, уровень и полосу босса.
type HUD struct {
	tiers  []defs.WeaponTier
	health *PlayerHealthIndicator
	level  *LevelIndicator
}

func NewHUD(tiers []defs.WeaponTier) *HUD {
	return &HUD{
		tiers:  tiers,
		health: NewPlayerHealthIndicator(config.HUDMarginX+90, config.HUDMarginX+config.HUDLineHeight+2),
		level:  NewLevelIndicator(config.ScreenWidth-config.HUDMarginX, config.HUDMarginX),
	}
}

func (h *HUD) Commands(w *entity.World) []render.Command {
	p := w.Player
	pr := w.Progress
	lines := []string{
		fmt.Sprintf("Score: %d", pr.Score),
		fmt.Sprintf("Lives: %d", p.Health),
		fmt.Sprintf("Kills: %d", pr.Kills),
		fmt.Sprintf("Gun: %s", h.tiers[p.Weapon].Name),
		NextUnlockHint(h.tiers, pr.Kills),
	}
	if p.Shield > 0 {
		lines = append(lines, fmt.Sprintf("Shield: %ds", (p.Shield+config.TPS-1)/config.TPS))
	}

	var cmds []render.Command
	for i, line := range lines {
		cmds = append(cmds, render.Text(config.HUDMarginX, float64(config.HUDMarginX+i*config.HUDLineHeight), line, config.TextColor))
	}
	cmds = append(cmds, h.health.Commands(p.Health, p.MaxHealth)...)
	cmds = append(cmds, h.level.Commands(pr.Level)...)
	if w.Boss != nil {
		cmds = append(cmds, BossBar(w.Boss.HP, w.Boss.MaxHP)...)
	}
	return cmds
}

// BossBar рисует полосу здоровья босса по центру сверху.
func BossBar(hp, maxHP int) []render.Command {
	x := float64(config.ScreenWidth/2 - config.BossBarWidth/2)
	pct := 0.0
	if maxHP > 0 {
		pct = max(0, min(float64(hp)/float64(maxHP), 1))
	}
	return []render.Command{
		render.Rect(x, config.BossBarY, config.BossBarWidth, config.BossBarHeight, config.BossBarBackColor),
		render.Rect(x, config.BossBarY, config.BossBarWidth*pct, config.BossBarHeight, config.BossColor),
	}
}
