package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tiffting/veganbnb/models"
)

// ErrMalformedResponse marks model output that failed structural validation.
// Callers surface it as an upstream failure but can tell the two apart in
// logs.
var ErrMalformedResponse = errors.New("malformed analysis response")

type rawAnalysis struct {
	Score     *float64           `json:"score"`
	Category  string             `json:"category"`
	Reasoning string             `json:"reasoning"`
	Signals   map[string]float64 `json:"signals"`
	Citations []string           `json:"citations"`
}

// ParseAnalysis validates raw model output against the signal schema for the
// requested category and returns a timestamped SafetyScore. It is total:
// every failure is an ErrMalformedResponse-wrapped error, never a panic, and
// well-formed input always yields the same structure modulo AnalyzedAt.
func ParseAnalysis(category models.Category, raw string) (*models.SafetyScore, error) {
	keys := SignalKeys(category)
	if keys == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	var parsed rawAnalysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedResponse, err)
	}

	if parsed.Score == nil {
		return nil, fmt.Errorf("%w: missing score", ErrMalformedResponse)
	}
	if *parsed.Score < 0 || *parsed.Score > 100 {
		return nil, fmt.Errorf("%w: score %v outside [0,100]", ErrMalformedResponse, *parsed.Score)
	}
	// A category mismatch is an error, not silently corrected.
	if parsed.Category != string(category) {
		return nil, fmt.Errorf("%w: category %q does not match requested %q", ErrMalformedResponse, parsed.Category, category)
	}
	if parsed.Signals == nil {
		return nil, fmt.Errorf("%w: missing signals", ErrMalformedResponse)
	}
	if len(parsed.Signals) != len(keys) {
		return nil, fmt.Errorf("%w: expected %d signals for %s, got %d", ErrMalformedResponse, len(keys), category, len(parsed.Signals))
	}

	signals := make(map[string]int, len(keys))
	for _, key := range keys {
		value, ok := parsed.Signals[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing signal %q", ErrMalformedResponse, key)
		}
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("%w: signal %q value %v outside [0,100]", ErrMalformedResponse, key, value)
		}
		signals[key] = int(math.Round(value))
	}

	if len(parsed.Citations) == 0 {
		return nil, fmt.Errorf("%w: citations must be a non-empty array", ErrMalformedResponse)
	}

	return &models.SafetyScore{
		Score:      int(math.Round(*parsed.Score)),
		Category:   category,
		Reasoning:  parsed.Reasoning,
		Signals:    signals,
		Citations:  parsed.Citations,
		AnalyzedAt: time.Now().UTC(),
	}, nil
}

// stripFences removes the markdown code fences models add despite being told
// not to.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
