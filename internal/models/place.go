package models

// Place is a single business result from the places search/details source.
// It mirrors the upstream JSON shape and is never persisted as-is; the
// normalizer maps it into a Restaurant.
type Place struct {
	PlaceID           string             `json:"place_id"`
	Name              string             `json:"name"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	Rating            *float64           `json:"rating,omitempty"`
	UserRatingsTotal  *int               `json:"user_ratings_total,omitempty"`
	Types             []string           `json:"types,omitempty"`
	PriceLevel        *int               `json:"price_level,omitempty"`
	PriceTier         *string            `json:"price_tier,omitempty"`
	BusinessStatus    *string            `json:"business_status,omitempty"`
	AddressComponents []AddressComponent `json:"address_components,omitempty"`
	OpeningHours      *OpeningHours      `json:"opening_hours,omitempty"`
	EditorialSummary  *EditorialSummary  `json:"editorial_summary,omitempty"`
	Reviews           []Review           `json:"reviews,omitempty"`
	Phone             *string            `json:"formatted_phone_number,omitempty"`
	Website           *string            `json:"website,omitempty"`

	// Boolean business attributes, present only when the details
	// endpoint knows them.
	OutdoorSeating       *bool `json:"outdoor_seating,omitempty"`
	LiveMusic            *bool `json:"live_music,omitempty"`
	ServesVegetarianFood *bool `json:"serves_vegetarian_food,omitempty"`
	Takeout              *bool `json:"takeout,omitempty"`
	Delivery             *bool `json:"delivery,omitempty"`
	DineIn               *bool `json:"dine_in,omitempty"`
	Reservable           *bool `json:"reservable,omitempty"`
	ServesBeer           *bool `json:"serves_beer,omitempty"`
	ServesWine           *bool `json:"serves_wine,omitempty"`
	WheelchairAccessible *bool `json:"wheelchair_accessible_entrance,omitempty"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressComponent is one typed piece of a place's address; the country
// component carries the ISO short code used for validation.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type EditorialSummary struct {
	Overview string `json:"overview"`
}

type Review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// SearchPage is one page of text-search results. NextPageToken is empty on
// the last page; a non-empty token only becomes valid after a warm-up delay.
type SearchPage struct {
	Places        []Place
	NextPageToken string
}
