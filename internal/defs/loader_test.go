package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-space-shooter/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())

	assert.InDelta(t, 1.0, TotalWeight(SpawnTable(c.Enemies)), 1e-12)
	assert.InDelta(t, 1.0, TotalWeight(c.Drops), 1e-12)
	assert.Equal(t, "single", c.Weapons[0].Name)
	assert.Equal(t, 0, c.Weapons[0].Threshold)
}

func TestLoadCatalog_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `
weapons:
  - name: double
    threshold: 5
    delay: 180ms
enemies:
  - kind: normal
    weight: 0.4
  - kind: zigzag
    weight: 0.2
    hp: 4
drops:
  - kind: none
    weight: 0.9
  - kind: shield
    weight: 0.1
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Weapons[1].Threshold)
	assert.Equal(t, 180*time.Millisecond, c.Weapons[1].Delay)

	zig, ok := c.Enemy(component.EnemyZigzag)
	require.True(t, ok)
	assert.Equal(t, 4, zig.HP)
	assert.Equal(t, 0.2, zig.Weight)

	require.Len(t, c.Drops, 2)
	assert.Equal(t, component.PowerUpNone, c.Drops[0].Value)
	assert.Equal(t, component.PowerUpShield, c.Drops[1].Value)
}

func TestLoadCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"unknown weapon", "weapons:\n  - name: laser\n", "unknown weapon"},
		{"bad delay", "weapons:\n  - name: single\n    delay: soon\n", "bad delay"},
		{"thresholds out of order", "weapons:\n  - name: spread\n    threshold: 5\n", "thresholds must ascend"},
		{"base not at zero", "weapons:\n  - name: single\n    threshold: 3\n", "must unlock at 0"},
		{"enemy weights", "enemies:\n  - kind: fast\n    weight: 0.5\n", "enemy weights"},
		{"unknown enemy", "enemies:\n  - kind: kamikaze\n", "unknown enemy kind"},
		{"drops not majority none", "drops:\n  - kind: none\n    weight: 0.5\n  - kind: health\n    weight: 0.5\n", "majority"},
		{"unknown drop", "drops:\n  - kind: none\n    weight: 0.9\n  - kind: bomb\n    weight: 0.1\n", "unknown power-up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultCatalog().ApplyOverrides([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestGuaranteedDropsExcludeNone(t *testing.T) {
	for _, e := range Guaranteed(DefaultDrops()) {
		assert.NotEqual(t, component.PowerUpNone, e.Value)
	}
	assert.Len(t, Guaranteed(DefaultDrops()), 3)
}
