package models

import (
	"encoding/json"
	"time"
)

// Restaurant is the persisted row produced by the ingestion pipeline.
// PlaceID is the stable upsert key; Slug is unique within a destination.
// Optional fields are pointers so absent data is stored as NULL rather
// than an empty value.
type Restaurant struct {
	ID            int64           `json:"id"`
	PlaceID       string          `json:"place_id"`
	DestinationID string          `json:"destination_id"`
	Slug          string          `json:"slug"`
	Name          string          `json:"name"`
	ShortName     string          `json:"short_name"`
	Description   *string         `json:"description"`
	Summary       *string         `json:"summary"`
	Tagline       *string         `json:"tagline"`
	Address       *string         `json:"address"`
	Phone         *string         `json:"phone"`
	Website       *string         `json:"website"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	Rating        *float64        `json:"rating"`
	ReviewCount   *int            `json:"review_count"`
	Cuisines      []string        `json:"cuisines"`
	PriceLevel    int             `json:"price_level"`
	PriceRange    string          `json:"price_range"`
	PriceLabel    string          `json:"price_range_label"`
	Hours         []OpeningHour   `json:"hours"`
	Attributes    map[string]bool `json:"attributes"`
	RawPayload    json.RawMessage `json:"-"`
	IsActive      bool            `json:"is_active"`
	DataUpdatedAt time.Time       `json:"data_updated_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OpeningHour is one formatted opening-hours row. When the upstream
// weekday text does not match the "<Days>: <time>" shape, all three
// fields carry the raw string.
type OpeningHour struct {
	Label string `json:"label"`
	Days  string `json:"days"`
	Time  string `json:"time"`
}
