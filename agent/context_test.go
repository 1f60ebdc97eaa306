package main

import (
	"strings"
	"testing"

	"github.com/tiffting/veganbnb/listings"
)

func TestBuildTravelContext_Sections(t *testing.T) {
	got := BuildTravelContext(listings.NewStore())

	for _, want := range []string{
		"BERLIN VEGAN TRAVEL DATABASE:",
		"RESTAURANTS:",
		"ACCOMMODATIONS:",
		"TOURS:",
		"EVENTS:",
		"Kopps (restaurant, Score: 98/100)",
		"Zur Letzten Instanz (restaurant, Score: 42/100)",
		"Vegan Hostel Berlin (accommodation, Score: 96/100)",
		"Berlin Vegan Food Tour (tour, Score: 94/100)",
		"Berlin Vegan Market (event, Score: 91/100)",
		"- Safety signals: ",
		"- Key reviews: ",
		"HIGH-SCORING RECOMMENDATIONS (85+ safety score):",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q", want)
		}
	}
}

func TestBuildTravelContext_HighScoreSummary(t *testing.T) {
	got := BuildTravelContext(listings.NewStore())

	idx := strings.Index(got, "HIGH-SCORING RECOMMENDATIONS")
	if idx < 0 {
		t.Fatal("summary line missing")
	}
	summary := got[idx:]

	for _, want := range []string{
		"Kopps (restaurant: 98/100)",
		"Vegan Hostel Berlin (accommodation: 96/100)",
		"Berlin Vegan Food Tour (tour: 94/100)",
		"Berlin Vegan Market (event: 91/100)",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	// Low scorers are listed in their sections but never recommended.
	for _, lowScorer := range []string{"Zur Letzten Instanz", "Hotel Adlon"} {
		if strings.Contains(summary, lowScorer) {
			t.Errorf("summary includes low-scoring %q", lowScorer)
		}
	}
}

func TestBuildTravelContext_SignalsUseLabels(t *testing.T) {
	got := BuildTravelContext(listings.NewStore())

	// Signals render with human-readable labels, never raw schema keys.
	for _, label := range []string{"Cross-contamination", "Kitchen Safety", "Guide Expertise"} {
		if !strings.Contains(got, label) {
			t.Errorf("context missing signal label %q", label)
		}
	}
	if strings.Contains(got, "cross_contamination") {
		t.Error("context leaks raw signal keys")
	}
}

func TestBuildTravelContext_Deterministic(t *testing.T) {
	store := listings.NewStore()

	first := BuildTravelContext(store)
	for i := 0; i < 5; i++ {
		if got := BuildTravelContext(store); got != first {
			t.Fatal("context rendering is not byte-stable")
		}
	}
}
