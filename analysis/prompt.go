package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tiffting/veganbnb/models"
)

var ErrUnknownCategory = errors.New("unknown category")

// jsonOnly is appended to every analysis prompt. The model still fences its
// output often enough that ParseAnalysis strips markdown anyway.
const jsonOnly = "Output ONLY valid JSON with NO markdown formatting, NO backticks, NO explanatory text. Just the raw JSON object:"

var promptTemplates = map[models.Category]func(reviews []string) string{
	models.CategoryRestaurant: func(reviews []string) string {
		return fmt.Sprintf(`Analyze these restaurant reviews for vegan safety signals:
- Cross-contamination prevention
- Staff knowledge about vegan requirements
- Ingredient transparency
- Community trust indicators

Reviews:
%s

%s
{
  "score": [number 0-100],
  "category": "restaurant",
  "reasoning": "[brief explanation]",
  "signals": {
    "cross_contamination": [number 0-100],
    "staff_knowledge": [number 0-100],
    "ingredient_transparency": [number 0-100],
    "community_trust": [number 0-100]
  },
  "citations": ["[quote from review]", "[another quote]"]
}`, strings.Join(reviews, "\n\n"), jsonOnly)
	},

	models.CategoryAccommodation: func(reviews []string) string {
		return fmt.Sprintf(`Analyze these accommodation reviews for vegan traveler safety:
- Shared kitchen cross-contamination handling
- Bedding materials (animal-free)
- Vegan breakfast quality
- Host knowledge of veganism
- Nearby vegan restaurant access

Reviews:
%s

%s
{
  "score": [number 0-100],
  "category": "accommodation",
  "reasoning": "[brief explanation]",
  "signals": {
    "kitchen_safety": [number 0-100],
    "bedding": [number 0-100],
    "breakfast_quality": [number 0-100],
    "host_knowledge": [number 0-100]
  },
  "citations": ["[quote from review]", "[another quote]"]
}`, strings.Join(reviews, "\n\n"), jsonOnly)
	},

	models.CategoryTour: func(reviews []string) string {
		return fmt.Sprintf(`Analyze these tour reviews for vegan safety:
- Guide knowledge of veganism
- Meal/food handling during tour
- Hidden animal exploitation in activities
- Accommodation of dietary restrictions
- Group dynamics and inclusivity

Reviews:
%s

%s
{
  "score": [number 0-100],
  "category": "tour",
  "reasoning": "[brief explanation]",
  "signals": {
    "guide_expertise": [number 0-100],
    "meal_handling": [number 0-100],
    "hidden_exploitation": [number 0-100],
    "group_dynamics": [number 0-100]
  },
  "citations": ["[quote from review]", "[another quote]"]
}`, strings.Join(reviews, "\n\n"), jsonOnly)
	},

	models.CategoryEvent: func(reviews []string) string {
		return fmt.Sprintf(`Analyze these event reviews for vegan attendee experience:
- Food quality and variety
- Allergen/dietary accommodation
- Community atmosphere
- Accessibility and inclusivity

Reviews:
%s

%s
{
  "score": [number 0-100],
  "category": "event",
  "reasoning": "[brief explanation]",
  "signals": {
    "food_quality": [number 0-100],
    "accessibility": [number 0-100],
    "community_vibe": [number 0-100],
    "inclusivity": [number 0-100]
  },
  "citations": ["[quote from review]", "[another quote]"]
}`, strings.Join(reviews, "\n\n"), jsonOnly)
	},
}

// BuildAnalysisPrompt renders the category-specific instruction prompt for a
// set of review strings. Callers are expected to validate the category and
// reject empty review sets before reaching for the model; the unknown
// category guard remains for library use.
func BuildAnalysisPrompt(category models.Category, reviews []string) (string, error) {
	tmpl, ok := promptTemplates[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	return tmpl(reviews), nil
}
