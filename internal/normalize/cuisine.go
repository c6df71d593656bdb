package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxCuisines = 3

// cuisineLabels maps known category tags to display labels. Tags not in
// the table are title-cased as-is.
var cuisineLabels = map[string]string{
	"american_restaurant":       "American",
	"brazilian_restaurant":      "Brazilian",
	"breakfast_restaurant":      "Breakfast",
	"brunch_restaurant":         "Brunch",
	"chinese_restaurant":        "Chinese",
	"fast_food_restaurant":      "Fast Food",
	"food_court":                "Food Court",
	"french_restaurant":         "French",
	"greek_restaurant":          "Greek",
	"indian_restaurant":         "Indian",
	"indonesian_restaurant":     "Indonesian",
	"italian_restaurant":        "Italian",
	"japanese_restaurant":       "Japanese",
	"korean_restaurant":         "Korean",
	"lebanese_restaurant":       "Lebanese",
	"mediterranean_restaurant":  "Mediterranean",
	"mexican_restaurant":        "Mexican",
	"middle_eastern_restaurant": "Middle Eastern",
	"pizza_restaurant":          "Pizza",
	"ramen_restaurant":          "Ramen",
	"restaurant":                "Restaurant",
	"seafood_restaurant":        "Seafood",
	"spanish_restaurant":        "Spanish",
	"steak_restaurant":          "Steakhouse",
	"sushi_restaurant":          "Sushi",
	"thai_restaurant":           "Thai",
	"turkish_restaurant":        "Turkish",
	"vegan_restaurant":          "Vegan",
	"vegetarian_restaurant":     "Vegetarian",
	"vietnamese_restaurant":     "Vietnamese",
}

var titleCaser = cases.Title(language.English)

// Cuisines extracts display cuisine labels from raw category tags. Only
// food-related tags are considered; the result is deduplicated, capped at
// three entries and never empty.
func Cuisines(types []string) []string {
	cuisines := make([]string, 0, maxCuisines)
	seen := make(map[string]struct{}, maxCuisines)

	for _, t := range types {
		if !strings.Contains(t, "restaurant") && !strings.Contains(t, "food") {
			continue
		}
		label, ok := cuisineLabels[t]
		if !ok {
			label = titleCaser.String(strings.ReplaceAll(t, "_", " "))
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		cuisines = append(cuisines, label)
		if len(cuisines) == maxCuisines {
			break
		}
	}

	if len(cuisines) == 0 {
		return []string{"Restaurant"}
	}
	return cuisines
}
