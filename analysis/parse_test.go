package analysis_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tiffting/veganbnb/analysis"
	"github.com/tiffting/veganbnb/models"
)

const wellFormed = `{"score":98,"category":"restaurant","reasoning":"x","signals":{"cross_contamination":100,"staff_knowledge":95,"ingredient_transparency":98,"community_trust":97},"citations":["a"]}`

func TestParseAnalysis_WellFormed(t *testing.T) {
	score, err := analysis.ParseAnalysis(models.CategoryRestaurant, wellFormed)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if score.Score != 98 {
		t.Errorf("score = %d, want 98", score.Score)
	}
	if score.Category != models.CategoryRestaurant {
		t.Errorf("category = %s", score.Category)
	}
	if score.Reasoning != "x" {
		t.Errorf("reasoning = %q", score.Reasoning)
	}
	want := map[string]int{
		"cross_contamination":     100,
		"staff_knowledge":         95,
		"ingredient_transparency": 98,
		"community_trust":         97,
	}
	if !reflect.DeepEqual(score.Signals, want) {
		t.Errorf("signals = %v, want %v", score.Signals, want)
	}
	if len(score.Citations) != 1 || score.Citations[0] != "a" {
		t.Errorf("citations = %v", score.Citations)
	}
	if score.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt not stamped")
	}
}

func TestParseAnalysis_Idempotent(t *testing.T) {
	first, err := analysis.ParseAnalysis(models.CategoryRestaurant, wellFormed)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := analysis.ParseAnalysis(models.CategoryRestaurant, wellFormed)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// Equal modulo the analysis timestamp.
	first.AnalyzedAt = second.AnalyzedAt
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parsing diverged:\n%+v\n%+v", first, second)
	}
}

func TestParseAnalysis_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + wellFormed + "\n```"
	score, err := analysis.ParseAnalysis(models.CategoryRestaurant, fenced)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if score.Score != 98 {
		t.Errorf("score = %d, want 98", score.Score)
	}
}

func TestParseAnalysis_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not JSON", "the venue seems fine to me"},
		{"missing score", `{"category":"restaurant","signals":{"cross_contamination":1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1},"citations":["a"]}`},
		{"score out of range", `{"score":150,"category":"restaurant","signals":{"cross_contamination":1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1},"citations":["a"]}`},
		{"category mismatch", `{"score":50,"category":"tour","signals":{"cross_contamination":1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1},"citations":["a"]}`},
		{"missing signals", `{"score":50,"category":"restaurant","citations":["a"]}`},
		{"wrong signal key", `{"score":50,"category":"restaurant","signals":{"vibes":1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1},"citations":["a"]}`},
		{"extra signal key", `{"score":50,"category":"restaurant","signals":{"cross_contamination":1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1,"extra":1},"citations":["a"]}`},
		{"signal out of range", `{"score":50,"category":"restaurant","signals":{"cross_contamination":-1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1},"citations":["a"]}`},
		{"empty citations", `{"score":50,"category":"restaurant","signals":{"cross_contamination":1,"staff_knowledge":1,"ingredient_transparency":1,"community_trust":1},"citations":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := analysis.ParseAnalysis(models.CategoryRestaurant, tc.raw)
			if !errors.Is(err, analysis.ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestParseAnalysis_RoundsFractionalScores(t *testing.T) {
	raw := `{"score":97.6,"category":"restaurant","reasoning":"","signals":{"cross_contamination":99.4,"staff_knowledge":95,"ingredient_transparency":98,"community_trust":97},"citations":["a"]}`
	score, err := analysis.ParseAnalysis(models.CategoryRestaurant, raw)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if score.Score != 98 {
		t.Errorf("score = %d, want 98", score.Score)
	}
	if score.Signals["cross_contamination"] != 99 {
		t.Errorf("signal = %d, want 99", score.Signals["cross_contamination"])
	}
}

func TestParseAnalysis_UnknownCategory(t *testing.T) {
	_, err := analysis.ParseAnalysis(models.Category("museum"), wellFormed)
	if !errors.Is(err, analysis.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
