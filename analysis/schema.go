package analysis

import "github.com/tiffting/veganbnb/models"

// signalKeys fixes the exact four sub-scores the model must return for each
// category. There is no category-agnostic signal shape.
var signalKeys = map[models.Category][]string{
	models.CategoryRestaurant: {
		"cross_contamination",
		"staff_knowledge",
		"ingredient_transparency",
		"community_trust",
	},
	models.CategoryAccommodation: {
		"kitchen_safety",
		"bedding",
		"breakfast_quality",
		"host_knowledge",
	},
	models.CategoryTour: {
		"guide_expertise",
		"meal_handling",
		"hidden_exploitation",
		"group_dynamics",
	},
	models.CategoryEvent: {
		"food_quality",
		"accessibility",
		"community_vibe",
		"inclusivity",
	},
}

var signalLabels = map[string]string{
	"cross_contamination":     "Cross-contamination Prevention",
	"staff_knowledge":         "Staff Knowledge",
	"ingredient_transparency": "Ingredient Transparency",
	"community_trust":         "Community Trust",

	"kitchen_safety":    "Kitchen Safety",
	"bedding":           "Bedding Materials",
	"breakfast_quality": "Vegan Breakfast Quality",
	"host_knowledge":    "Host Knowledge",

	"guide_expertise":     "Guide Expertise",
	"meal_handling":       "Meal Handling",
	"hidden_exploitation": "Hidden Animal Exploitation Prevention",
	"group_dynamics":      "Group Dynamics",

	"food_quality":   "Food Quality",
	"accessibility":  "Accessibility",
	"community_vibe": "Community Atmosphere",
	"inclusivity":    "Inclusivity",
}

// SignalKeys returns the ordered signal names for a category, or nil for an
// unknown category.
func SignalKeys(category models.Category) []string {
	keys, ok := signalKeys[category]
	if !ok {
		return nil
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// SignalLabel maps a signal key to its human-readable label, falling back to
// the key itself so unknown signals still render.
func SignalLabel(key string) string {
	if label, ok := signalLabels[key]; ok {
		return label
	}
	return key
}
