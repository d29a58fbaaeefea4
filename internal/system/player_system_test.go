package system

import (
	"testing"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_MoveClampsToField(t *testing.T) {
	h := newHarness(nil)
	p := h.world.Player
	startY := p.Pos.Y

	for i := 0; i < 200; i++ {
		h.player.Move(true, false)
	}
	assert.Equal(t, 0.0, p.Pos.X)

	for i := 0; i < 200; i++ {
		h.player.Move(false, true)
	}
	assert.Equal(t, config.ScreenWidth-p.W, p.Pos.X)

	x := p.Pos.X
	h.player.Move(true, true)
	assert.Equal(t, x, p.Pos.X, "opposing keys cancel")
	assert.Equal(t, startY, p.Pos.Y)
}

func TestPlayer_TimersCountDownToZero(t *testing.T) {
	h := newHarness(nil)
	p := h.world.Player
	p.Invincible = 2
	p.Shield = 1

	h.player.TickTimers()
	assert.Equal(t, 1, p.Invincible)
	assert.Equal(t, 0, p.Shield)

	h.player.TickTimers()
	h.player.TickTimers()
	assert.Equal(t, 0, p.Invincible)
	assert.False(t, p.Protected())
}

func TestPlayer_KillsUnlockWeapons(t *testing.T) {
	h := newHarness(nil)
	for i := 0; i < 25; i++ {
		h.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedData{}})
	}
	assert.Equal(t, 250, h.world.Progress.Score)
	assert.Equal(t, 25, h.world.Progress.Kills)
	assert.Equal(t, 2, h.world.Player.Weapon)
	assert.Equal(t, 2, h.rec.count(event.WeaponUnlocked))

	var last event.Event
	for _, e := range h.rec.events {
		if e.Type == event.WeaponUnlocked {
			last = e
		}
	}
	assert.Equal(t, event.WeaponData{From: "double", To: "spread", Kills: 25}, last.Data)
}
