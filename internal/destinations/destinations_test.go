package destinations

import (
	"os"
	"path/filepath"
	"testing"

	"restaurants-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "destinations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, `[
		{"id": "tokyo", "name": "Tokyo", "fullName": "Tokyo, Japan", "country": "Japan", "category": "asia", "areas": ["Shibuya"]},
		{"id": "paris", "name": "Paris", "country": "France", "category": "europe", "maxRestaurants": 10}
	]`)

	dests, err := Load(path)

	require.NoError(t, err)
	require.Len(t, dests, 2)
	assert.Equal(t, "Tokyo, Japan", dests[0].QueryName())
	assert.Equal(t, "Paris", dests[1].QueryName())
	assert.Equal(t, 10, dests[1].MaxRestaurants)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidEntry(t *testing.T) {
	path := writeDataset(t, `[{"id": "", "name": "Nameless"}]`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	dests := []models.Destination{
		{ID: "tokyo", Name: "Tokyo", Category: "asia"},
		{ID: "kyoto", Name: "Kyoto", Category: "asia"},
		{ID: "paris", Name: "Paris", Category: "europe"},
	}

	tests := []struct {
		name     string
		selector string
		expected []string
	}{
		{name: "empty selector matches all", selector: "", expected: []string{"tokyo", "kyoto", "paris"}},
		{name: "by id", selector: "kyoto", expected: []string{"kyoto"}},
		{name: "by category", selector: "Asia", expected: []string{"tokyo", "kyoto"}},
		{name: "no match", selector: "mars", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(dests, tt.selector)
			var ids []string
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
