package economy

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed upgrades.yaml
var defaultCatalog []byte

// UpgradeSpec is one shop entry.
type UpgradeSpec struct {
	Kind      Upgrade `yaml:"kind"`
	Label     string  `yaml:"label"`
	Cost      int     `yaml:"cost"`
	Increment float64 `yaml:"increment"` // fire_rate: milliseconds removed per level
}

// Catalog holds the price list indexed by kind.
type Catalog struct {
	specs map[Upgrade]UpgradeSpec
	order []Upgrade
}

type catalogFile struct {
	Upgrades []UpgradeSpec `yaml:"upgrades"`
}

// Get returns the spec for u.
func (c *Catalog) Get(u Upgrade) (UpgradeSpec, bool) {
	s, ok := c.specs[u]
	return s, ok
}

// Increment returns the per-purchase increment of u, or 0 if unknown.
func (c *Catalog) Increment(u Upgrade) float64 {
	return c.specs[u].Increment
}

// All returns the entries in file order.
func (c *Catalog) All() []UpgradeSpec {
	out := make([]UpgradeSpec, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.specs[k])
	}
	return out
}

// Count returns the number of entries.
func (c *Catalog) Count() int {
	return len(c.order)
}

// DefaultCatalog parses the built-in price list.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a price list from a YAML file. An empty path returns the
// built-in one.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upgrades: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a YAML price list.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse upgrades: %w", err)
	}

	c := &Catalog{specs: make(map[Upgrade]UpgradeSpec, len(f.Upgrades))}
	for _, s := range f.Upgrades {
		if !s.Kind.Valid() {
			return nil, fmt.Errorf("parse upgrades: unknown kind %q", s.Kind)
		}
		if _, dup := c.specs[s.Kind]; dup {
			return nil, fmt.Errorf("parse upgrades: duplicate kind %q", s.Kind)
		}
		if s.Cost < 0 || s.Increment < 0 {
			return nil, fmt.Errorf("parse upgrades: %s has negative cost or increment", s.Kind)
		}
		if s.Label == "" {
			s.Label = string(s.Kind)
		}
		c.specs[s.Kind] = s
		c.order = append(c.order, s.Kind)
	}
	return c, nil
}
