package classify

import "strings"

// categoryKeywords is scanned in order; matches are not mutually exclusive,
// so a message can carry several tags. The tags are conversation topics, not
// strictly listing categories ("city_planning" and "multiple" have no
// listing counterpart).
var categoryKeywords = []struct {
	tag   string
	words []string
}{
	{"restaurant", []string{"restaurant", "eat", "food", "dinner", "lunch"}},
	{"accommodation", []string{"hotel", "hostel", "stay", "accommodation", "sleep"}},
	{"tour", []string{"tour", "guide", "experience", "activity"}},
	{"event", []string{"event", "market", "meetup", "festival"}},
	{"multiple", []string{"trip", "plan", "visit", "travel"}},
}

// InferCategories tags a user message with the listing categories it seems
// to be about, in fixed scan order. A recognized city prepends
// "city_planning"; no match at all yields ["general"].
func InferCategories(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	if DetectCityMention(text).City != "" {
		tags = append(tags, "city_planning")
	}

	for _, group := range categoryKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				tags = append(tags, group.tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{"general"}
	}
	return tags
}
