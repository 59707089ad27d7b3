// Package catalog supplies orbit configurations: a built-in set of known
// periodic orbits plus user catalogs loaded from YAML files. The catalog
// is an explicit value passed into analysis runs, scoped to one batch,
// never process-global.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/diego4rmando/orbitlab/internal/orbit"
)

// Catalog maps orbit keys to configurations.
type Catalog map[string]orbit.Config

// Load reads a YAML catalog file. Every entry is validated; one bad orbit
// fails the load so the problem surfaces at the boundary, before any
// integration begins.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	for key, cfg := range c {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("orbit %q: %w", key, err)
		}
	}

	return c, nil
}

// Save writes the catalog to a YAML file.
func Save(path string, c Catalog) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merge overlays other onto c; entries in other win on key collision.
func (c Catalog) Merge(other Catalog) {
	for key, cfg := range other {
		c[key] = cfg
	}
}

// Keys returns the orbit keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Custom builds an ad-hoc equal-mass choreography candidate from a single
// velocity pair: bodies 1 and 2 start at (∓1, 0) with velocity (vx, vy),
// body 3 at the origin with velocity (-2vx, -2vy), so total linear
// momentum is exactly zero for any vx, vy.
func Custom(vx, vy float64) orbit.Config {
	return orbit.Config{
		Name:      fmt.Sprintf("Custom (vx=%g, vy=%g)", vx, vy),
		Masses:    []float64{1, 1, 1},
		Positions: [][]float64{{-1, 0}, {1, 0}, {0, 0}},
		Velocities: [][]float64{
			{vx, vy},
			{vx, vy},
			{-2 * vx, -2 * vy},
		},
	}
}
