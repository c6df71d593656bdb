package normalize

import "strings"

// PriceInfo is the normalized form of a price tier: the 0-4 level plus
// its display symbol and label.
type PriceInfo struct {
	Level  int
	Symbol string
	Label  string
}

// priceTable is indexed by price level. Keeping it a fixed array makes
// the level domain explicit instead of relying on string-keyed
// fallthrough.
var priceTable = [5]PriceInfo{
	{Level: 0, Symbol: "", Label: "Free"},
	{Level: 1, Symbol: "$", Label: "Budget-friendly"},
	{Level: 2, Symbol: "$$", Label: "Moderately priced"},
	{Level: 3, Symbol: "$$$", Label: "Expensive"},
	{Level: 4, Symbol: "$$$$", Label: "Very expensive"},
}

const defaultPriceLevel = 2

var symbolicTiers = map[string]int{
	"free":           0,
	"inexpensive":    1,
	"moderate":       2,
	"expensive":      3,
	"very_expensive": 4,
}

// Price normalizes a symbolic tier and/or numeric 0-4 level into a
// PriceInfo. The numeric level wins when both are present and in range.
// Unknown or absent input defaults to moderate ($$), so the result is
// total over the whole input domain.
func Price(tier *string, level *int) PriceInfo {
	if level != nil && *level >= 0 && *level <= 4 {
		return priceTable[*level]
	}
	if tier != nil {
		key := strings.ToLower(strings.TrimSpace(*tier))
		key = strings.TrimPrefix(key, "price_level_")
		key = strings.ReplaceAll(key, "-", "_")
		if lvl, ok := symbolicTiers[key]; ok {
			return priceTable[lvl]
		}
	}
	return priceTable[defaultPriceLevel]
}
