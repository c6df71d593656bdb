package destinations

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"restaurants-api/internal/models"
)

// Load reads the static destination dataset from a JSON file.
func Load(path string) ([]models.Destination, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("destinations: failed to read %s: %w", path, err)
	}

	var dests []models.Destination
	if err := json.Unmarshal(data, &dests); err != nil {
		return nil, fmt.Errorf("destinations: failed to parse %s: %w", path, err)
	}

	for i, d := range dests {
		if d.ID == "" || d.Name == "" {
			return nil, fmt.Errorf("destinations: entry %d is missing id or name", i)
		}
	}
	return dests, nil
}

// Filter selects destinations matching the selector, which may be a
// destination id or a category/region name. An empty selector matches
// everything.
func Filter(dests []models.Destination, selector string) []models.Destination {
	if selector == "" {
		return dests
	}
	selector = strings.ToLower(selector)

	var out []models.Destination
	for _, d := range dests {
		if strings.ToLower(d.ID) == selector || strings.ToLower(d.Category) == selector {
			out = append(out, d)
		}
	}
	return out
}
