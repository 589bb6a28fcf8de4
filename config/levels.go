package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelDef is one entry of the level roster.
type LevelDef struct {
	Name       string `yaml:"name"`
	Title      string `yaml:"title"`
	Tilemap    string `yaml:"tilemap"`
	Background string `yaml:"background"`
}

type levelRoster struct {
	Levels []LevelDef `yaml:"levels"`
}

// ParseLevels decodes a roster document. Entries must have unique names and a
// tilemap path.
func ParseLevels(data []byte) ([]LevelDef, error) {
	var roster levelRoster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("config: unmarshal level roster: %w", err)
	}
	if len(roster.Levels) == 0 {
		return nil, fmt.Errorf("config: level roster is empty")
	}

	seen := make(map[string]bool, len(roster.Levels))
	for i, l := range roster.Levels {
		if l.Name == "" {
			return nil, fmt.Errorf("config: level %d has no name", i)
		}
		if l.Tilemap == "" {
			return nil, fmt.Errorf("config: level %q has no tilemap", l.Name)
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("config: duplicate level %q", l.Name)
		}
		seen[l.Name] = true
		if l.Title == "" {
			roster.Levels[i].Title = l.Name
		}
	}
	return roster.Levels, nil
}
