// Package classify holds the keyword heuristics that annotate chat turns:
// mentioned city, requested categories, and which quick-action buttons to
// surface. Every function is a pure, case-insensitive substring match and
// never fails; malformed or empty input yields the documented default.
package classify

import "strings"

// CityMention reports a detected city. An empty City means no city was
// recognized; HasData is only true for cities the demo has listings for.
type CityMention struct {
	City    string
	HasData bool
}

// Berlin is checked first and is the only city with listing data. The rest
// are recognized purely so the assistant can redirect politely.
var otherCities = []string{"paris", "amsterdam", "barcelona", "madrid", "rome", "london", "prague", "vienna"}

func DetectCityMention(text string) CityMention {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "berlin") {
		return CityMention{City: "Berlin", HasData: true}
	}

	for _, city := range otherCities {
		if strings.Contains(lower, city) {
			return CityMention{City: strings.ToUpper(city[:1]) + city[1:], HasData: false}
		}
	}

	return CityMention{}
}
