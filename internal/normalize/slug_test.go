package normalize

import (
	"testing"

	"restaurants-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Sakura Sushi",
			expected: "sakura-sushi",
		},
		{
			name:     "diacritics stripped",
			input:    "Café Révolution",
			expected: "cafe-revolution",
		},
		{
			name:     "ampersand spelled out",
			input:    "Fish & Chips Co.",
			expected: "fish-and-chips-co",
		},
		{
			name:     "apostrophes and periods dropped",
			input:    "Joe's Diner Jr.",
			expected: "joes-diner-jr",
		},
		{
			name:     "whitespace collapsed",
			input:    "  La   Piazza  ",
			expected: "la-piazza",
		},
		{
			name:     "non-latin only",
			input:    "焼肉亭",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "---",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugForPlace(t *testing.T) {
	tests := []struct {
		name          string
		place         models.Place
		destinationID string
		expected      string
	}{
		{
			name: "latin name",
			place: models.Place{
				PlaceID: "ChIJabcd1234",
				Name:    "Chez Marie",
			},
			destinationID: "paris",
			expected:      "chez-marie-paris",
		},
		{
			name: "non-latin name falls back to cuisine and locality",
			place: models.Place{
				PlaceID:          "ChIJxyz99999",
				Name:             "焼肉亭",
				FormattedAddress: "1-2-3 Ebisu, Building A, Springfield, Countryland",
				Types:            []string{"japanese_restaurant", "point_of_interest"},
			},
			destinationID: "tokyo",
			expected:      "japanese-springfield-tokyo",
		},
		{
			name: "locality only when no cuisine tag",
			place: models.Place{
				PlaceID:          "ChIJxyz99999",
				Name:             "焼肉亭",
				FormattedAddress: "1-2-3 Ebisu, Springfield, Countryland",
				Types:            []string{"point_of_interest"},
			},
			destinationID: "tokyo",
			expected:      "springfield-tokyo",
		},
		{
			name: "place id fallback when nothing else usable",
			place: models.Place{
				PlaceID:          "ChIJN1t_tDeuEmsR",
				Name:             "焼肉亭",
				FormattedAddress: "日本",
				Types:            []string{"point_of_interest"},
			},
			destinationID: "tokyo",
			expected:      "place-chijn1t-tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlugForPlace(&tt.place, tt.destinationID)
			assert.Equal(t, tt.expected, got)
			assert.NotEmpty(t, got)
		})
	}
}
