package defs

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShip = geom.Rect{X: 380, Y: 520, W: 40, H: 48}

func TestPatternsAreVolleysOfOneToFour(t *testing.T) {
	for _, tier := range DefaultWeapons() {
		if tier.Name == "nuke" {
			continue
		}
		t.Run(tier.Name, func(t *testing.T) {
			v, ok := tier.Pattern(testShip).(Volley)
			require.True(t, ok, "expected a volley")
			assert.GreaterOrEqual(t, len(v.Shots), 1)
			assert.LessOrEqual(t, len(v.Shots), 4)
			for _, s := range v.Shots {
				assert.Less(t, s.Vel.Y, 0.0, "player shots fly upward")
				assert.Positive(t, s.Damage)
			}
		})
	}
}

func TestSinglePatternIsOneVerticalShot(t *testing.T) {
	v := DefaultWeapons()[0].Pattern(testShip).(Volley)
	require.Len(t, v.Shots, 1)
	s := v.Shots[0]
	assert.Equal(t, 0.0, s.Vel.X)
	assert.Equal(t, -10.0, s.Vel.Y)
	assert.Equal(t, 1, s.Damage)
	assert.IsType(t, component.Plain{}, s.Kind)
	assert.InDelta(t, testShip.Center().X, s.Center().X, 1e-9)
}

func TestPatternsDoNotShareKindState(t *testing.T) {
	tiers := DefaultWeapons()
	a := tiers[3].Pattern(testShip).(Volley)
	b := tiers[3].Pattern(testShip).(Volley)
	a.Shots[0].Kind.(*component.Rocket).Trail = 7
	assert.Equal(t, 0, b.Shots[0].Kind.(*component.Rocket).Trail)
}

func TestNukeIsAreaBlast(t *testing.T) {
	tiers := DefaultWeapons()
	blast, ok := tiers[len(tiers)-1].Pattern(testShip).(AreaBlast)
	require.True(t, ok)
	assert.Positive(t, blast.BossDamage)
}

func TestSplashRadius(t *testing.T) {
	assert.Zero(t, SplashRadius(component.Plain{}))
	assert.Zero(t, SplashRadius(component.Beam{}))
	assert.Positive(t, SplashRadius(&component.Rocket{}))
	assert.Positive(t, SplashRadius(&component.Missile{}))
}
