package normalize

import (
	"strings"
	"unicode"

	"restaurants-api/internal/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlugPrefix seeds the last-resort slug when neither the name nor
// the address yields usable characters.
const fallbackSlugPrefix = "place"

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns an arbitrary display name into a URL-safe token:
// lowercase, diacritics stripped, "&" spelled out, apostrophes and
// periods dropped, whitespace collapsed to single hyphens, everything
// else removed. Returns "" for names with no Latin-representable
// characters.
func Slugify(s string) string {
	s = strings.ToLower(s)
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.NewReplacer("'", "", "’", "", ".", "").Replace(s)

	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// SlugForPlace builds the slug for a place within a destination. Falls
// back to a cuisine+locality token when the name produces nothing (common
// for non-Latin scripts), then to a prefix derived from the place id.
// The destination id is always appended as a uniqueness aid; final
// uniqueness is still enforced at write time.
func SlugForPlace(place *models.Place, destinationID string) string {
	base := Slugify(place.Name)
	if base == "" {
		base = fallbackFromContext(place)
	}
	if base == "" {
		id := place.PlaceID
		if len(id) > 8 {
			id = id[:8]
		}
		base = fallbackSlugPrefix + "-" + Slugify(id)
		base = strings.Trim(base, "-")
	}
	return base + "-" + destinationID
}

func fallbackFromContext(place *models.Place) string {
	parts := make([]string, 0, 2)
	if c := cuisineToken(place.Types); c != "" {
		parts = append(parts, c)
	}
	if l := localityToken(place.FormattedAddress); l != "" {
		parts = append(parts, l)
	}
	return strings.Join(parts, "-")
}

// cuisineToken derives a token like "italian" from category tags such as
// "italian_restaurant", stripping the generic restaurant/food words.
func cuisineToken(types []string) string {
	for _, t := range types {
		if !strings.Contains(t, "restaurant") && !strings.Contains(t, "food") {
			continue
		}
		t = strings.ReplaceAll(t, "restaurant", "")
		t = strings.ReplaceAll(t, "food", "")
		if tok := Slugify(strings.ReplaceAll(t, "_", " ")); tok != "" {
			return tok
		}
	}
	return ""
}

// localityToken extracts the locality from a formatted address, taken as
// the second-to-last comma-separated segment ("..., Springfield,
// Countryland" yields "springfield").
func localityToken(formattedAddress string) string {
	segs := strings.Split(formattedAddress, ",")
	if len(segs) < 2 {
		return ""
	}
	return Slugify(strings.TrimSpace(segs[len(segs)-2]))
}
