package classify_test

import (
	"reflect"
	"testing"

	"github.com/tiffting/veganbnb/classify"
)

func TestQuickActions_BudgetRange(t *testing.T) {
	got := classify.QuickActions("What is your budget range?")

	want := []string{"€", "€€", "€€€", "any"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickActions_Rules(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			"eating style",
			"Are you more of a foodie, casual, or efficient eater?",
			[]string{"foodie", "casual", "efficient"},
		},
		{
			"breakfast",
			"Should I include breakfast in your travel plans?",
			[]string{"yes", "no"},
		},
		{
			"wheelchair",
			"Is wheelchair accessibility a requirement for you?",
			[]string{"yes", "no"},
		},
		{
			"transport",
			`How do you prefer to get around? This helps me tailor personalized recommendations. You can type "skip" at any time.`,
			[]string{"walking", "public transit", "taxi", "walking, public transit"},
		},
		{
			"planning style",
			"Do you prefer a structured itinerary or something flexible?",
			[]string{"structured", "flexible"},
		},
		{
			"dietary restrictions",
			"Any dietary restrictions beyond veganism I should know about?",
			[]string{"none", "gluten-free", "nut-free", "gluten-free, nut-free"},
		},
		{
			"city selection",
			"Which city would you like to explore?",
			[]string{"Berlin", "Amsterdam", "Barcelona", "Paris"},
		},
		{
			"skip",
			"We can continue without the interview if you prefer.",
			[]string{"skip"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify.QuickActions(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQuickActions_NoMatchMeansNoButtons(t *testing.T) {
	cases := []string{
		"",
		"Berlin has a fantastic vegan scene in general.",
		"When are you planning to visit?",
	}

	for _, text := range cases {
		if got := classify.QuickActions(text); got != nil {
			t.Errorf("QuickActions(%q) = %v, want none", text, got)
		}
	}
}

func TestQuickActions_CalendarExport(t *testing.T) {
	itinerary := `## Your 3-Day Vegan Travel Plan
**Kopps** (Score: 98/100)
- Hours: 5:30 PM - 11:00 PM
- Booking: required via website
**Berlin Vegan Food Tour** (94/100)
- Location: Hackescher Markt`

	got := classify.QuickActions(itinerary)
	want := []string{"📅 Export to Calendar"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickActions_NoExportWhileAskingQuestions(t *testing.T) {
	text := `I can build your travel plan around **Kopps** (Score: 98/100), with hours: and booking: details.
Would you like me to include a food tour as well?`

	if got := classify.QuickActions(text); got != nil {
		t.Fatalf("export offered while assistant is still asking questions: %v", got)
	}
}
