package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"warsim/game"
)

// Composition is an ordered starting composition for one civilization.
type Composition []game.UnitGroup

// groupYAML is the raw file shape of one composition entry.
type groupYAML struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// Load reads a civilization preset table from a YAML file and converts it
// into domain compositions, validating type tags and counts.
func Load(path string) (map[string]Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read civilizations file: %w", err)
	}

	var raw map[string][]groupYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no civilizations defined in %s", path)
	}

	presets := make(map[string]Composition, len(raw))
	for name, groups := range raw {
		composition := make(Composition, 0, len(groups))
		for _, g := range groups {
			t, err := game.ParseUnitType(g.Type)
			if err != nil {
				return nil, fmt.Errorf("civilization %s: %w", name, err)
			}
			if g.Count <= 0 {
				return nil, fmt.Errorf("civilization %s: %s count must be positive, got %d", name, g.Type, g.Count)
			}
			composition = append(composition, game.UnitGroup{Type: t, Count: g.Count})
		}
		presets[name] = composition
	}
	return presets, nil
}
