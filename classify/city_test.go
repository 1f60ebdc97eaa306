package classify_test

import (
	"testing"

	"github.com/tiffting/veganbnb/classify"
)

func TestDetectCityMention(t *testing.T) {
	cases := []struct {
		text    string
		city    string
		hasData bool
	}{
		{"Planning a trip to Berlin next week", "Berlin", true},
		{"BERLIN in caps", "Berlin", true},
		{"Thinking about Paris", "Paris", false},
		{"amsterdam or barcelona?", "Amsterdam", false},
		{"no city here", "", false},
		{"", "", false},
		// Berlin wins even when mentioned after another city.
		{"Paris is nice but Berlin has the data", "Berlin", true},
	}

	for _, tc := range cases {
		got := classify.DetectCityMention(tc.text)
		if got.City != tc.city || got.HasData != tc.hasData {
			t.Errorf("DetectCityMention(%q) = %+v, want {%q %v}", tc.text, got, tc.city, tc.hasData)
		}
	}
}
