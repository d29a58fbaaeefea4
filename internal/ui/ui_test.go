package ui

import (
	"strings"
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/state"
	"go-space-shooter/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(cmds []render.Command) []string {
	var out []string
	for _, c := range cmds {
		if c.Kind == render.KindText {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestToRoman(t *testing.T) {
	assert.Equal(t, "", toRoman(0))
	assert.Equal(t, "I", toRoman(1))
	assert.Equal(t, "IV", toRoman(4))
	assert.Equal(t, "IX", toRoman(9))
	assert.Equal(t, "XIV", toRoman(14))
	assert.Equal(t, "MCMXCIV", toRoman(1994))
}

func TestNextUnlockHint(t *testing.T) {
	tiers := defs.DefaultWeapons()
	assert.Equal(t, "next: double @10", NextUnlockHint(tiers, 0))
	assert.Equal(t, "next: spread @25", NextUnlockHint(tiers, 10))
	assert.Equal(t, "next: max", NextUnlockHint(tiers, 150))
}

func TestHUD_ShowsRunState(t *testing.T) {
	w := entity.NewWorld()
	w.Progress = component.Progress{Score: 120, Kills: 12, Level: 2}
	w.Player.Weapon = 1
	w.Player.Health = 4

	got := strings.Join(texts(NewHUD(defs.DefaultWeapons()).Commands(w)), "|")
	for _, want := range []string{"Score: 120", "Lives: 4", "Kills: 12", "Gun: double", "next: spread @25", "Level II"} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "Shield")
}

func TestHUD_BossBarOnlyWithBoss(t *testing.T) {
	w := entity.NewWorld()
	hud := NewHUD(defs.DefaultWeapons())
	base := len(hud.Commands(w))

	w.Boss = &component.Boss{HP: 25, MaxHP: 50}
	cmds := hud.Commands(w)
	require.Len(t, cmds, base+2)
	bar := cmds[len(cmds)-1]
	assert.Equal(t, float64(110), bar.W)
}

func TestHealthIndicator(t *testing.T) {
	cmds := NewPlayerHealthIndicator(0, 0).Commands(2, 6)
	require.Len(t, cmds, 6)
	assert.Equal(t, healthLowColor, cmds[0].Color)
	assert.Equal(t, healthEmptyColor, cmds[5].Color)
}

func TestOverlay(t *testing.T) {
	w := entity.NewWorld()
	assert.Empty(t, Overlay(state.Playing, w))

	for _, phase := range []state.Phase{state.Menu, state.Instructions, state.Paused, state.GameOver, state.Win} {
		cmds := Overlay(phase, w)
		require.NotEmpty(t, cmds, phase.String())
		assert.Equal(t, render.KindRect, cmds[0].Kind)
	}
	assert.Contains(t, texts(Overlay(state.GameOver, w)), "GAME OVER")
}
