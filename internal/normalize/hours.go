package normalize

import (
	"strings"

	"restaurants-api/internal/models"
)

// Hours parses weekday description strings of the shape
// "<Day(s)>: <time range>" into structured rows. Strings that do not
// match the shape are kept raw in all three fields rather than dropped.
func Hours(weekdayText []string) []models.OpeningHour {
	if len(weekdayText) == 0 {
		return nil
	}

	hours := make([]models.OpeningHour, 0, len(weekdayText))
	for _, line := range weekdayText {
		day, times, found := strings.Cut(line, ": ")
		if !found || day == "" || times == "" {
			hours = append(hours, models.OpeningHour{Label: line, Days: line, Time: line})
			continue
		}
		hours = append(hours, models.OpeningHour{
			Label: day,
			Days:  day,
			Time:  times,
		})
	}
	return hours
}
