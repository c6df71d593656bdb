package normalize

import (
	"strings"
	"testing"

	"restaurants-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisines(t *testing.T) {
	tests := []struct {
		name     string
		types    []string
		expected []string
	}{
		{
			name:     "known tags mapped to labels",
			types:    []string{"japanese_restaurant", "sushi_restaurant", "point_of_interest"},
			expected: []string{"Japanese", "Sushi"},
		},
		{
			name:     "unknown tag title-cased",
			types:    []string{"ethiopian_restaurant"},
			expected: []string{"Ethiopian Restaurant"},
		},
		{
			name:     "deduplicated and capped at three",
			types:    []string{"italian_restaurant", "italian_restaurant", "pizza_restaurant", "seafood_restaurant", "thai_restaurant"},
			expected: []string{"Italian", "Pizza", "Seafood"},
		},
		{
			name:     "non-food tags ignored",
			types:    []string{"point_of_interest", "establishment"},
			expected: []string{"Restaurant"},
		},
		{
			name:     "empty input defaults",
			types:    nil,
			expected: []string{"Restaurant"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cuisines(tt.types))
		})
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []models.OpeningHour
	}{
		{
			name:  "well-formed weekday lines",
			input: []string{"Monday: 9:00 AM – 5:00 PM", "Saturday – Sunday: Closed"},
			expected: []models.OpeningHour{
				{Label: "Monday", Days: "Monday", Time: "9:00 AM – 5:00 PM"},
				{Label: "Saturday – Sunday", Days: "Saturday – Sunday", Time: "Closed"},
			},
		},
		{
			name:  "unparseable line kept raw in all fields",
			input: []string{"Open 24 hours"},
			expected: []models.OpeningHour{
				{Label: "Open 24 hours", Days: "Open 24 hours", Time: "Open 24 hours"},
			},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hours(tt.input))
		})
	}
}

func TestReviewSummary(t *testing.T) {
	longText := strings.Repeat("x", 600)

	tests := []struct {
		name     string
		place    models.Place
		expected *string
	}{
		{
			name: "joins up to three reviews",
			place: models.Place{
				Reviews: []models.Review{
					{Text: "Great food."},
					{Text: "Lovely staff."},
					{Text: "Will return."},
					{Text: "Ignored fourth."},
				},
			},
			expected: strPtr("Great food. Lovely staff. Will return."),
		},
		{
			name: "long review truncated with marker",
			place: models.Place{
				Reviews: []models.Review{{Text: longText}},
			},
			expected: strPtr(strings.Repeat("x", 500) + "..."),
		},
		{
			name: "editorial fallback without reviews",
			place: models.Place{
				EditorialSummary: &models.EditorialSummary{Overview: "A neighborhood institution."},
			},
			expected: strPtr("A neighborhood institution."),
		},
		{
			name:     "nothing available",
			place:    models.Place{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReviewSummary(&tt.place))
		})
	}
}

func TestNormalize(t *testing.T) {
	rating := 4.6
	count := 812
	level := 3
	vegetarian := true
	outdoor := false

	place := models.Place{
		PlaceID:          "ChIJtest0001",
		Name:             "Trattoria Da Enzo - Trastevere",
		FormattedAddress: "Via dei Vascellari 29, Trastevere, Rome, Italy",
		Geometry:         models.Geometry{Location: models.LatLng{Lat: 41.8867, Lng: 12.4769}},
		Rating:           &rating,
		UserRatingsTotal: &count,
		Types:            []string{"italian_restaurant", "restaurant"},
		PriceLevel:       &level,
		OpeningHours: &models.OpeningHours{
			WeekdayText: []string{"Monday: 12:00 – 11:00 PM"},
		},
		Reviews:              []models.Review{{Text: "Best carbonara in Rome."}},
		ServesVegetarianFood: &vegetarian,
		OutdoorSeating:       &outdoor,
	}

	rec := Normalize(&place, "rome")

	assert.Equal(t, "ChIJtest0001", rec.PlaceID)
	assert.Equal(t, "rome", rec.DestinationID)
	assert.Equal(t, "trattoria-da-enzo-trastevere-rome", rec.Slug)
	assert.Equal(t, "Trattoria Da Enzo - Trastevere", rec.Name)
	assert.Equal(t, "Trattoria Da Enzo", rec.ShortName)
	assert.Equal(t, []string{"Italian", "Restaurant"}, rec.Cuisines)
	assert.Equal(t, 3, rec.PriceLevel)
	assert.Equal(t, "$$$", rec.PriceRange)
	assert.Equal(t, "Expensive", rec.PriceLabel)
	require.NotNil(t, rec.Summary)
	assert.Equal(t, "Best carbonara in Rome.", *rec.Summary)
	require.NotNil(t, rec.Tagline)
	assert.Equal(t, "Italian · Restaurant · $$$", *rec.Tagline)
	require.Len(t, rec.Hours, 1)
	assert.Equal(t, "Monday", rec.Hours[0].Label)
	assert.Equal(t, map[string]bool{"serves_vegetarian_food": true, "outdoor_seating": false}, rec.Attributes)
	assert.Equal(t, 41.8867, rec.Latitude)
	assert.NotEmpty(t, rec.RawPayload)
	assert.True(t, rec.IsActive)
	assert.False(t, rec.DataUpdatedAt.IsZero())

	// Absent optional data must be nil, never an empty value.
	assert.Nil(t, rec.Description)
	assert.Nil(t, rec.Phone)
	assert.Nil(t, rec.Website)
}

func TestNormalize_MinimalPlace(t *testing.T) {
	place := models.Place{PlaceID: "ChIJbare001", Name: "Bare Place"}

	rec := Normalize(&place, "tokyo")

	assert.Equal(t, "bare-place-tokyo", rec.Slug)
	assert.Equal(t, []string{"Restaurant"}, rec.Cuisines)
	assert.Equal(t, 2, rec.PriceLevel)
	assert.Equal(t, "$$", rec.PriceRange)
	assert.Nil(t, rec.Summary)
	assert.Nil(t, rec.Address)
	assert.Nil(t, rec.Hours)
	assert.Nil(t, rec.Attributes)
	assert.Nil(t, rec.Rating)
	assert.Nil(t, rec.ReviewCount)
}

func strPtr(s string) *string { return &s }
