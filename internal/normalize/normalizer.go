package normalize

import (
	"encoding/json"
	"strings"
	"time"

	"restaurants-api/internal/models"
)

const (
	maxSummaryReviews = 3
	maxReviewRunes    = 500
)

// Normalize maps a raw place into the restaurant schema for the given
// destination. It is total: missing optional data resolves to nil fields
// or documented fallbacks, never an error, so every result is writable.
func Normalize(place *models.Place, destinationID string) models.Restaurant {
	now := time.Now().UTC()
	cuisines := Cuisines(place.Types)
	price := Price(place.PriceTier, place.PriceLevel)

	raw, err := json.Marshal(place)
	if err != nil {
		raw = nil
	}

	var weekdayText []string
	if place.OpeningHours != nil {
		weekdayText = place.OpeningHours.WeekdayText
	}

	return models.Restaurant{
		PlaceID:       place.PlaceID,
		DestinationID: destinationID,
		Slug:          SlugForPlace(place, destinationID),
		Name:          place.Name,
		ShortName:     shortName(place.Name),
		Description:   editorialOverview(place),
		Summary:       ReviewSummary(place),
		Tagline:       tagline(cuisines, price),
		Address:       nilIfEmpty(place.FormattedAddress),
		Phone:         place.Phone,
		Website:       place.Website,
		Latitude:      place.Geometry.Location.Lat,
		Longitude:     place.Geometry.Location.Lng,
		Rating:        place.Rating,
		ReviewCount:   place.UserRatingsTotal,
		Cuisines:      cuisines,
		PriceLevel:    price.Level,
		PriceRange:    price.Symbol,
		PriceLabel:    price.Label,
		Hours:         Hours(weekdayText),
		Attributes:    attributes(place),
		RawPayload:    raw,
		IsActive:      true,
		DataUpdatedAt: now,
		CreatedAt:     now,
	}
}

// ReviewSummary concatenates up to three top review texts, each truncated
// to 500 runes with an ellipsis marker. Falls back to the editorial
// overview when the place has no reviews, and to nil when it has neither.
func ReviewSummary(place *models.Place) *string {
	texts := make([]string, 0, maxSummaryReviews)
	for _, rev := range place.Reviews {
		text := strings.TrimSpace(rev.Text)
		if text == "" {
			continue
		}
		texts = append(texts, truncate(text, maxReviewRunes))
		if len(texts) == maxSummaryReviews {
			break
		}
	}
	if len(texts) > 0 {
		summary := strings.Join(texts, " ")
		return &summary
	}
	return editorialOverview(place)
}

func editorialOverview(place *models.Place) *string {
	if place.EditorialSummary == nil || place.EditorialSummary.Overview == "" {
		return nil
	}
	overview := place.EditorialSummary.Overview
	return &overview
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// shortName is the display name up to the first separator, for compact
// listings ("Sakura Sushi - Downtown Branch" becomes "Sakura Sushi").
func shortName(name string) string {
	for _, sep := range []string{" - ", " – ", " | "} {
		if head, _, found := strings.Cut(name, sep); found {
			return strings.TrimSpace(head)
		}
	}
	return strings.TrimSpace(name)
}

func tagline(cuisines []string, price PriceInfo) *string {
	parts := make([]string, 0, len(cuisines)+1)
	parts = append(parts, cuisines...)
	if price.Symbol != "" {
		parts = append(parts, price.Symbol)
	}
	t := strings.Join(parts, " · ")
	if t == "" {
		return nil
	}
	return &t
}

// attributes collects the boolean business attributes the details
// endpoint reported. Unknown attributes stay absent; a place with none
// yields nil so the column stores NULL.
func attributes(place *models.Place) map[string]bool {
	attrs := map[string]*bool{
		"outdoor_seating":                place.OutdoorSeating,
		"live_music":                     place.LiveMusic,
		"serves_vegetarian_food":         place.ServesVegetarianFood,
		"takeout":                        place.Takeout,
		"delivery":                       place.Delivery,
		"dine_in":                        place.DineIn,
		"reservable":                     place.Reservable,
		"serves_beer":                    place.ServesBeer,
		"serves_wine":                    place.ServesWine,
		"wheelchair_accessible_entrance": place.WheelchairAccessible,
	}

	var out map[string]bool
	for key, val := range attrs {
		if val == nil {
			continue
		}
		if out == nil {
			out = make(map[string]bool)
		}
		out[key] = *val
	}
	return out
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
