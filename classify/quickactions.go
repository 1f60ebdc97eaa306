package classify

import "strings"

// MaxQuickActions bounds how many buttons the UI renders under a reply.
const MaxQuickActions = 4

type quickActionRule struct {
	name    string
	match   func(c string) bool
	actions []string
}

func containsAll(c string, words ...string) bool {
	for _, w := range words {
		if !strings.Contains(c, w) {
			return false
		}
	}
	return true
}

func containsAny(c string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(c, w) {
			return true
		}
	}
	return false
}

// quickActionRules is evaluated top to bottom against the lowercased
// assistant reply; the first matching rule wins. Quick actions are only
// surfaced for interview-style questions with clear enumerated answers and
// for exportable itineraries. Open-ended replies (recommendations, travel
// dates, follow-up conversation) deliberately get none.
var quickActionRules = []quickActionRule{
	{
		name: "budget range",
		match: func(c string) bool {
			return strings.Contains(c, "budget range") ||
				(strings.Contains(c, "budget") && containsAny(c, "€", "trip"))
		},
		actions: []string{"€", "€€", "€€€", "any"},
	},
	{
		name: "eating style",
		match: func(c string) bool {
			return strings.Contains(c, "eating style") ||
				containsAll(c, "foodie", "casual", "efficient")
		},
		actions: []string{"foodie", "casual", "efficient"},
	},
	{
		name: "breakfast",
		match: func(c string) bool {
			return strings.Contains(c, "include breakfast in your travel plans") ||
				containsAll(c, "breakfast", "travel plans")
		},
		actions: []string{"yes", "no"},
	},
	{
		name: "wheelchair accessibility",
		match: func(c string) bool {
			return strings.Contains(c, "wheelchair accessibility a requirement") ||
				containsAll(c, "wheelchair", "requirement")
		},
		actions: []string{"yes", "no"},
	},
	{
		name: "transport modes",
		match: func(c string) bool {
			return strings.Contains(c, "how do you prefer to get around") &&
				containsAny(c, "travel style", "personalized recommendations", `you can type "skip"`)
		},
		actions: []string{"walking", "public transit", "taxi", "walking, public transit"},
	},
	{
		name: "planning style",
		match: func(c string) bool {
			return containsAll(c, "structured", "flexible") ||
				containsAll(c, "structured", "itinerary")
		},
		actions: []string{"structured", "flexible"},
	},
	{
		name: "dietary restrictions",
		match: func(c string) bool {
			return strings.Contains(c, "dietary restrictions beyond veganism") ||
				containsAll(c, "dietary restrictions", "beyond")
		},
		actions: []string{"none", "gluten-free", "nut-free", "gluten-free, nut-free"},
	},
	{
		name:    "calendar export",
		match:   canExportToCalendar,
		actions: []string{"📅 Export to Calendar"},
	},
	{
		name: "city selection",
		match: func(c string) bool {
			return strings.Contains(c, "which city would you like to explore") ||
				containsAll(c, "city", "comprehensive data for berlin")
		},
		actions: []string{"Berlin", "Amsterdam", "Barcelona", "Paris"},
	},
	{
		name: "skip interview",
		match: func(c string) bool {
			return strings.Contains(c, `you can type "skip"`) ||
				strings.Contains(c, "continue without the interview")
		},
		actions: []string{"skip"},
	},
}

// QuickActions picks the button set for the latest assistant reply, or nil
// when none of the rules apply.
func QuickActions(lastAssistantText string) []string {
	c := strings.ToLower(lastAssistantText)

	for _, rule := range quickActionRules {
		if rule.match(c) {
			return append([]string(nil), rule.actions...)
		}
	}

	return nil
}

// canExportToCalendar gates the calendar button: the reply must be an actual
// itinerary with named venues and booking-level detail, not a question back
// to the user.
func canExportToCalendar(c string) bool {
	isAskingQuestions := containsAny(c,
		"could you please",
		"would you like",
		"what time",
		"when do you",
		"please share",
		"to help you",
		"with this information",
	)
	if isAskingQuestions {
		return false
	}

	hasSpecificVenues := containsAny(c,
		"kopps",
		"zur letzten instanz",
		"vegan hostel",
		"adlon",
		"berlin vegan food tour",
		"berlin vegan market",
		"a&o berlin",
		"michelberger hotel",
	)

	hasTravelPlan := containsAny(c,
		"here's a tailored",
		"travel plan",
		"vegan travel plan",
		"tours and activities",
	) || containsAll(c, "accommodations", "dining experiences")

	hasVenueDetails := containsAny(c,
		"booking:",
		"location:",
		"pricing:",
		"hours:",
		"check-in",
		"address",
		"safety signals",
	) || containsAll(c, "score:", "/100")

	return hasSpecificVenues && hasTravelPlan && hasVenueDetails
}
