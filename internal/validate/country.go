package validate

import (
	"strings"

	"restaurants-api/internal/models"
)

// countryCodes maps destination-dataset country display names to ISO
// 3166-1 alpha-2 codes. Names missing from this table degrade to
// "validation skipped" rather than rejecting places.
var countryCodes = map[string]string{
	"argentina":            "AR",
	"australia":            "AU",
	"austria":              "AT",
	"belgium":              "BE",
	"brazil":               "BR",
	"cambodia":             "KH",
	"canada":               "CA",
	"chile":                "CL",
	"china":                "CN",
	"colombia":             "CO",
	"croatia":              "HR",
	"czech republic":       "CZ",
	"czechia":              "CZ",
	"denmark":              "DK",
	"egypt":                "EG",
	"finland":              "FI",
	"france":               "FR",
	"germany":              "DE",
	"greece":               "GR",
	"hungary":              "HU",
	"iceland":              "IS",
	"india":                "IN",
	"indonesia":            "ID",
	"ireland":              "IE",
	"israel":               "IL",
	"italy":                "IT",
	"japan":                "JP",
	"jordan":               "JO",
	"kenya":                "KE",
	"malaysia":             "MY",
	"mexico":               "MX",
	"morocco":              "MA",
	"netherlands":          "NL",
	"new zealand":          "NZ",
	"norway":               "NO",
	"peru":                 "PE",
	"philippines":          "PH",
	"poland":               "PL",
	"portugal":             "PT",
	"singapore":            "SG",
	"south africa":         "ZA",
	"south korea":          "KR",
	"spain":                "ES",
	"sweden":               "SE",
	"switzerland":          "CH",
	"thailand":             "TH",
	"turkey":               "TR",
	"united arab emirates": "AE",
	"united kingdom":       "GB",
	"united states":        "US",
	"usa":                  "US",
	"vietnam":              "VN",
}

// CountryToISO maps a country display name to its 2-letter code, or ""
// when the name is not in the lookup table.
func CountryToISO(name string) string {
	return countryCodes[strings.ToLower(strings.TrimSpace(name))]
}

// ResolveCountry extracts the place's country code from its address
// components. Returns "" when the place has no usable country component.
func ResolveCountry(place *models.Place) string {
	for _, comp := range place.AddressComponents {
		for _, t := range comp.Types {
			if t != "country" {
				continue
			}
			if len(comp.ShortName) == 2 {
				return strings.ToUpper(comp.ShortName)
			}
			return CountryToISO(comp.LongName)
		}
	}
	return ""
}

// IsValidCountry reports whether the place belongs to the expected
// country. It fails open: an empty expected code or an unresolvable
// place country always passes, because ambiguous data is kept rather
// than lost. Only a definite mismatch rejects.
func IsValidCountry(place *models.Place, expectedISO string) bool {
	if expectedISO == "" {
		return true
	}
	resolved := ResolveCountry(place)
	if resolved == "" {
		return true
	}
	return resolved == strings.ToUpper(expectedISO)
}
