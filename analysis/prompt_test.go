package analysis_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tiffting/veganbnb/analysis"
	"github.com/tiffting/veganbnb/models"
)

func TestBuildAnalysisPrompt_SignalNamesPerCategory(t *testing.T) {
	reviews := []string{"great place", "totally safe"}

	for _, category := range models.Categories {
		prompt, err := analysis.BuildAnalysisPrompt(category, reviews)
		if err != nil {
			t.Fatalf("%s: err: %v", category, err)
		}

		for _, key := range analysis.SignalKeys(category) {
			if !strings.Contains(prompt, key) {
				t.Errorf("%s prompt missing own signal %q", category, key)
			}
		}

		// No other category's signals may leak into the JSON skeleton.
		for _, other := range models.Categories {
			if other == category {
				continue
			}
			for _, key := range analysis.SignalKeys(other) {
				if strings.Contains(prompt, `"`+key+`"`) {
					t.Errorf("%s prompt contains %s signal %q", category, other, key)
				}
			}
		}
	}
}

func TestBuildAnalysisPrompt_IncludesReviews(t *testing.T) {
	prompt, err := analysis.BuildAnalysisPrompt(models.CategoryRestaurant, []string{"first review", "second review"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if !strings.Contains(prompt, "first review\n\nsecond review") {
		t.Fatalf("reviews not joined into prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"category": "restaurant"`) {
		t.Fatalf("prompt missing category pin:\n%s", prompt)
	}
	if !strings.Contains(prompt, "NO markdown formatting") {
		t.Fatal("prompt missing JSON-only instruction")
	}
}

func TestBuildAnalysisPrompt_UnknownCategory(t *testing.T) {
	_, err := analysis.BuildAnalysisPrompt(models.Category("museum"), []string{"x"})
	if !errors.Is(err, analysis.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
