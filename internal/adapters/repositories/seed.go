package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"warehouse-picker-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type LocationSeed struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// Read location seeds from a .json, .yaml or .yml file.
// Names are trimmed and must be non-empty and unique.
func LoadSeeds(path string) ([]LocationSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", path, err)
	}

	var data []LocationSeed
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seeds: parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seeds: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("load seeds: unsupported file extension %q", ext)
	}

	seen := make(map[string]struct{}, len(data))
	rows := make([]LocationSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("load seeds: item at index %d: name cannot be empty", i+1)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("load seeds: item at index %d: %q: %w", i+1, name, domain.ErrDuplicateItem)
		}
		seen[name] = struct{}{}
		rows = append(rows, LocationSeed{Name: name, X: item.X, Y: item.Y})
	}

	return rows, nil
}

// Convert seeds to domain locations, preserving order.
func SeedLocations(seeds []LocationSeed) []*domain.Location {
	out := make([]*domain.Location, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, domain.NewLocation(s.Name, s.X, s.Y))
	}
	return out
}
