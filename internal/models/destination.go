package models

// Destination is a curated travel location used to scope restaurant
// searches. It comes from a static dataset and is read-only for the
// pipeline.
type Destination struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	FullName string   `json:"fullName,omitempty"`
	Country  string   `json:"country,omitempty"`
	Category string   `json:"category,omitempty"`
	Areas    []string `json:"areas,omitempty"`

	// MaxRestaurants overrides the default per-destination cap when > 0.
	MaxRestaurants int `json:"maxRestaurants,omitempty"`
}

// QueryName returns the name used in search query phrasing, preferring the
// disambiguated full name when the dataset provides one.
func (d Destination) QueryName() string {
	if d.FullName != "" {
		return d.FullName
	}
	return d.Name
}
