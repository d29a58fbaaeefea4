// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"go-space-shooter/internal/component"

	"gopkg.in/yaml.v3"
)

const weightTolerance = 1e-9

// Catalog bundles every static table the simulation reads.
type Catalog struct {
	Weapons []WeaponTier
	Enemies []EnemyDefinition
	Drops   []LootEntry
}

// DefaultCatalog returns the built-in tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Weapons: DefaultWeapons(),
		Enemies: DefaultEnemies(),
		Drops:   DefaultDrops(),
	}
}

type weaponOverride struct {
	Name      string `yaml:"name"`
	Threshold *int   `yaml:"threshold"`
	Delay     string `yaml:"delay"`
}

type enemyOverride struct {
	Kind      string   `yaml:"kind"`
	Weight    *float64 `yaml:"weight"`
	HP        *int     `yaml:"hp"`
	BaseSpeed *float64 `yaml:"speed"`
}

type dropEntry struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

type catalogFile struct {
	Weapons []weaponOverride `yaml:"weapons"`
	Enemies []enemyOverride  `yaml:"enemies"`
	Drops   []dropEntry      `yaml:"drops"`
}

// LoadCatalog reads YAML overrides from path on top of the default catalog.
// Weapons and enemies are matched by name/kind; a drops list replaces the
// whole drop table.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c := DefaultCatalog()
	if err := c.ApplyOverrides(data); err != nil {
		return nil, fmt.Errorf("failed to apply catalog %s: %w", path, err)
	}
	return c, nil
}

// ApplyOverrides merges a YAML document into c and validates the result.
func (c *Catalog) ApplyOverrides(data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	for _, o := range file.Weapons {
		idx := c.weaponIndex(o.Name)
		if idx < 0 {
			return fmt.Errorf("unknown weapon %q", o.Name)
		}
		if o.Threshold != nil {
			c.Weapons[idx].Threshold = *o.Threshold
		}
		if o.Delay != "" {
			d, err := time.ParseDuration(o.Delay)
			if err != nil {
				return fmt.Errorf("weapon %q: bad delay: %w", o.Name, err)
			}
			c.Weapons[idx].Delay = d
		}
	}

	for _, o := range file.Enemies {
		idx := c.enemyIndex(component.EnemyKind(o.Kind))
		if idx < 0 {
			return fmt.Errorf("unknown enemy kind %q", o.Kind)
		}
		if o.Weight != nil {
			c.Enemies[idx].Weight = *o.Weight
		}
		if o.HP != nil {
			c.Enemies[idx].HP = *o.HP
		}
		if o.BaseSpeed != nil {
			c.Enemies[idx].BaseSpeed = *o.BaseSpeed
		}
	}

	if len(file.Drops) > 0 {
		drops := make([]LootEntry, 0, len(file.Drops))
		for _, d := range file.Drops {
			kind := component.PowerUpKind(d.Kind)
			if d.Kind == "none" {
				kind = component.PowerUpNone
			}
			switch kind {
			case component.PowerUpNone, component.PowerUpHealth, component.PowerUpWeapon, component.PowerUpShield:
			default:
				return fmt.Errorf("unknown power-up kind %q", d.Kind)
			}
			drops = append(drops, LootEntry{Value: kind, Weight: d.Weight})
		}
		c.Drops = drops
	}

	return c.Validate()
}

// Validate checks the invariants the systems rely on.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Weapons) == 0 {
		errs = append(errs, errors.New("weapon catalog is empty"))
	} else if c.Weapons[0].Threshold != 0 {
		errs = append(errs, fmt.Errorf("base weapon %q must unlock at 0 kills", c.Weapons[0].Name))
	}
	for i, w := range c.Weapons {
		if w.Delay <= 0 {
			errs = append(errs, fmt.Errorf("weapon %q: delay must be positive", w.Name))
		}
		if w.Pattern == nil {
			errs = append(errs, fmt.Errorf("weapon %q: no pattern", w.Name))
		}
		if i > 0 && w.Threshold <= c.Weapons[i-1].Threshold {
			errs = append(errs, fmt.Errorf("weapon %q: thresholds must ascend", w.Name))
		}
	}

	enemyTable := SpawnTable(c.Enemies)
	if total := TotalWeight(enemyTable); math.Abs(total-1) > weightTolerance {
		errs = append(errs, fmt.Errorf("enemy weights sum to %v, want 1", total))
	}
	for _, e := range c.Enemies {
		if e.Weight < 0 || e.HP <= 0 || e.Size <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: invalid stats", e.Kind))
		}
	}

	total := TotalWeight(c.Drops)
	if math.Abs(total-1) > weightTolerance {
		errs = append(errs, fmt.Errorf("drop weights sum to %v, want 1", total))
	}
	none := 0.0
	for _, d := range c.Drops {
		if d.Weight < 0 {
			errs = append(errs, fmt.Errorf("drop %q: negative weight", d.Value))
		}
		if d.Value == component.PowerUpNone {
			none += d.Weight
		}
	}
	if none <= 0.5 {
		errs = append(errs, fmt.Errorf("no-drop weight %v must stay the majority", none))
	}

	return errors.Join(errs...)
}

func (c *Catalog) weaponIndex(name string) int {
	for i, w := range c.Weapons {
		if w.Name == name {
			return i
		}
	}
	return -1
}

func (c *Catalog) enemyIndex(kind component.EnemyKind) int {
	for i, e := range c.Enemies {
		if e.Kind == kind {
			return i
		}
	}
	return -1
}

// Enemy returns the definition of kind.
func (c *Catalog) Enemy(kind component.EnemyKind) (EnemyDefinition, bool) {
	idx := c.enemyIndex(kind)
	if idx < 0 {
		return EnemyDefinition{}, false
	}
	return c.Enemies[idx], true
}
