// Package listings is the in-memory fixture store behind the chat context
// and the browse endpoints. The data is loaded once and never written to;
// concurrent reads are safe because no writer exists.
package listings

import (
	"strings"

	"github.com/tiffting/veganbnb/models"
)

type Store struct {
	items []models.Listing
	byID  map[string]int
}

// NewStore returns a store over the bundled Berlin demo fixtures.
func NewStore() *Store {
	return NewStoreWith(fixtures)
}

func NewStoreWith(items []models.Listing) *Store {
	s := &Store{
		items: items,
		byID:  make(map[string]int, len(items)),
	}
	for i, item := range items {
		s.byID[item.ID] = i
	}
	return s
}

func (s *Store) All() []models.Listing {
	return s.items
}

func (s *Store) ByID(id string) (models.Listing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Listing{}, false
	}
	return s.items[i], true
}

func (s *Store) ByCategory(category models.Category) []models.Listing {
	var out []models.Listing
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// HighScoring returns every analyzed listing with a safety score of at least
// minScore, in fixture order.
func (s *Store) HighScoring(minScore int) []models.Listing {
	var out []models.Listing
	for _, item := range s.items {
		if item.SafetyScore != nil && item.SafetyScore.Score >= minScore {
			out = append(out, item)
		}
	}
	return out
}

// ExtractReferences scans free text for listing names and returns the IDs of
// every listing mentioned, in fixture order. Purely advisory for UI
// highlighting.
func (s *Store) ExtractReferences(text string) []string {
	lower := strings.ToLower(text)

	refs := make([]string, 0)
	for _, item := range s.items {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			refs = append(refs, item.ID)
		}
	}
	return refs
}
