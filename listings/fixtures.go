package listings

import (
	"time"

	"github.com/tiffting/veganbnb/models"
)

// Demo fixture data. Realistic-looking Berlin listings for each category;
// immutable after process start.
var fixtures = []models.Listing{
	{
		ID:          "rest-001",
		Category:    models.CategoryRestaurant,
		Name:        "Kopps",
		Description: "Berlin's premier fine-dining vegan restaurant with innovative plant-based cuisine",
		Location: models.Location{
			Address:     "Linienstraße 94, 10115 Berlin, Germany",
			City:        "Berlin",
			Country:     "Germany",
			Coordinates: &models.Coordinates{Lat: 52.5286, Lng: 13.4106},
		},
		Website: "https://kopps-berlin.de",
		Reviews: []string{
			"Absolutely incredible! 100% vegan restaurant with zero cross-contamination risk. The staff are extremely knowledgeable about every ingredient.",
			"Outstanding fine dining experience. Chef personally explained preparation methods and ingredient sourcing. Completely safe for strict vegans.",
			"Perfect transparency - they can tell you exactly what's in every dish. Separate kitchen ensures no animal products ever touch the food.",
		},
		SafetyScore: &models.SafetyScore{
			Score:     98,
			Category:  models.CategoryRestaurant,
			Reasoning: "Exceptional vegan safety with dedicated kitchen, highly trained staff, and complete ingredient transparency",
			Signals: map[string]int{
				"cross_contamination":     100,
				"staff_knowledge":         95,
				"ingredient_transparency": 98,
				"community_trust":         97,
			},
			Citations: []string{
				"100% vegan restaurant with zero cross-contamination risk",
				"Chef personally explained preparation methods and ingredient sourcing",
				"they can tell you exactly what's in every dish",
			},
			AnalyzedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		},
		Logistics: &models.Logistics{
			Hours: map[string]string{
				"tuesday": "5:30 PM - 11:00 PM",
				"weekend": "12:00 PM - 11:00 PM",
			},
			Booking: &models.BookingInfo{
				Required: true,
				Methods:  []string{"Online booking via kopps-berlin.de"},
			},
			Pricing: map[string]string{
				"range":        "€€€",
				"average_meal": "€45-85 tasting menus",
			},
		},
		CreatedAt: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},

	{
		ID:          "rest-002",
		Category:    models.CategoryRestaurant,
		Name:        "Zur Letzten Instanz",
		Description: "Historic Berlin restaurant with some vegan options",
		Location: models.Location{
			Address:     "Waisenstraße 14-16, 10179 Berlin, Germany",
			City:        "Berlin",
			Country:     "Germany",
			Coordinates: &models.Coordinates{Lat: 52.5156, Lng: 13.4111},
		},
		Website: "https://zurletzteninstanz.de",
		Reviews: []string{
			"Traditional German restaurant that tries to accommodate vegans but limited options and staff knowledge varies.",
			"Had to ask many questions about ingredients. Some dishes may have hidden dairy or eggs - be careful.",
			"Nice historic atmosphere but not ideal for strict vegans. Cross-contamination is a real concern in their kitchen.",
		},
		SafetyScore: &models.SafetyScore{
			Score:     42,
			Category:  models.CategoryRestaurant,
			Reasoning: "Limited vegan expertise with potential cross-contamination risks and inconsistent staff knowledge",
			Signals: map[string]int{
				"cross_contamination":     30,
				"staff_knowledge":         45,
				"ingredient_transparency": 40,
				"community_trust":         35,
			},
			Citations: []string{
				"staff knowledge varies",
				"may have hidden dairy or eggs - be careful",
				"Cross-contamination is a real concern in their kitchen",
			},
			AnalyzedAt: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		},
		Logistics: &models.Logistics{
			Hours: map[string]string{
				"tuesday": "12:00 PM - 11:00 PM",
				"weekend": "12:00 PM - 11:00 PM",
			},
			Booking: &models.BookingInfo{
				Required: false,
				Methods:  []string{"Phone or walk-in"},
			},
			Pricing: map[string]string{
				"range":        "€€",
				"average_meal": "€15-25 mains",
			},
		},
		CreatedAt: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},

	{
		ID:          "accom-001",
		Category:    models.CategoryAccommodation,
		Name:        "Vegan Hostel Berlin",
		Description: "Berlin's first completely vegan hostel with organic cotton bedding and plant-based breakfast",
		Location: models.Location{
			Address:     "Warschauer Str. 58, 10243 Berlin, Germany",
			City:        "Berlin",
			Country:     "Germany",
			Coordinates: &models.Coordinates{Lat: 52.5067, Lng: 13.4532},
		},
		Website: "https://veganhostel.berlin",
		Reviews: []string{
			"Incredible vegan hostel! Dedicated plant-based kitchen with separate utensils. Organic cotton bedding throughout.",
			"Amazing vegan breakfast with 15+ options daily. Host is incredibly knowledgeable about plant-based nutrition and local vegan scene.",
			"Perfect for vegan travelers - no risk of animal products anywhere. Kitchen is spotless with clear vegan-only policy.",
		},
		SafetyScore: &models.SafetyScore{
			Score:     96,
			Category:  models.CategoryAccommodation,
			Reasoning: "Outstanding vegan accommodation with dedicated facilities, knowledgeable hosts, and comprehensive plant-based amenities",
			Signals: map[string]int{
				"kitchen_safety":    100,
				"bedding":           95,
				"breakfast_quality": 98,
				"host_knowledge":    92,
			},
			Citations: []string{
				"Dedicated plant-based kitchen with separate utensils",
				"Amazing vegan breakfast with 15+ options daily",
				"no risk of animal products anywhere",
			},
			AnalyzedAt: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		},
		Logistics: &models.Logistics{
			CheckIn:  "3:00 PM",
			CheckOut: "11:00 AM",
			Booking: &models.BookingInfo{
				Methods:      []string{"Online via veganhostel.berlin"},
				Cancellation: "Free cancellation up to 48h before arrival",
			},
			Pricing: map[string]string{
				"dorm_bed": "€28/night",
			},
		},
		CreatedAt: time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},

	{
		ID:          "accom-002",
		Category:    models.CategoryAccommodation,
		Name:        "Hotel Adlon Kempinski Berlin",
		Description: "Luxury hotel near Brandenburg Gate with some vegan breakfast options",
		Location: models.Location{
			Address:     "Unter den Linden 77, 10117 Berlin, Germany",
			City:        "Berlin",
			Country:     "Germany",
			Coordinates: &models.Coordinates{Lat: 52.5160, Lng: 13.3777},
		},
		Website: "https://www.kempinski.com/adlon",
		Reviews: []string{
			"Luxury hotel but shared kitchen facilities. Some vegan breakfast options but very limited selection.",
			"Bedding materials unclear - couldn't get definitive answer about animal-derived materials. Staff not well-trained on vegan needs.",
			"Beautiful hotel but not vegan-focused. Breakfast had 2-3 vegan items only. Had to bring my own plant milk.",
		},
		SafetyScore: &models.SafetyScore{
			Score:     48,
			Category:  models.CategoryAccommodation,
			Reasoning: "Limited vegan facilities and knowledge despite luxury setting, with unclear bedding materials and minimal breakfast options",
			Signals: map[string]int{
				"kitchen_safety":    35,
				"bedding":           40,
				"breakfast_quality": 45,
				"host_knowledge":    25,
			},
			Citations: []string{
				"shared kitchen facilities",
				"couldn't get definitive answer about animal-derived materials",
				"Breakfast had 2-3 vegan items only",
			},
			AnalyzedAt: time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC),
		},
		Logistics: &models.Logistics{
			CheckIn:  "3:00 PM",
			CheckOut: "12:00 PM",
			Booking: &models.BookingInfo{
				Methods:      []string{"Online via kempinski.com"},
				Cancellation: "Rate-dependent",
			},
			Pricing: map[string]string{
				"standard_room": "€350+/night",
			},
		},
		CreatedAt: time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},

	{
		ID:          "tour-001",
		Category:    models.CategoryTour,
		Name:        "Berlin Vegan Food Tour",
		Description: "Guided tour of Berlin's best vegan restaurants and markets with tastings",
		Location: models.Location{
			Address:     "Meeting point: Hackescher Markt, Berlin, Germany",
			City:        "Berlin",
			Country:     "Germany",
			Coordinates: &models.Coordinates{Lat: 52.5225, Lng: 13.4015},
		},
		Website: "https://berlinvegantours.com",
		Reviews: []string{
			"Outstanding tour! Guide was vegan herself and incredibly knowledgeable about plant-based nutrition and local scene.",
			"Perfect meal handling - all food was clearly labeled and prepared safely. No risk of cross-contamination at any stop.",
			"Amazing group dynamic - everyone was supportive of different dietary needs. Guide accommodated gluten-free and nut allergies seamlessly.",
		},
		SafetyScore: &models.SafetyScore{
			Score:     94,
			Category:  models.CategoryTour,
			Reasoning: "Excellent vegan tour with expert guide, safe food handling, and inclusive group environment",
			Signals: map[string]int{
				"guide_expertise":     96,
				"meal_handling":       95,
				"hidden_exploitation": 90,
				"group_dynamics":      95,
			},
			Citations: []string{
				"Guide was vegan herself and incredibly knowledgeable",
				"all food was clearly labeled and prepared safely",
				"Guide accommodated gluten-free and nut allergies seamlessly",
			},
			AnalyzedAt: time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC),
		},
		Logistics: &models.Logistics{
			Schedule: &models.Schedule{
				Days:         "Saturdays",
				Time:         "2:00 PM",
				Duration:     "4 hours",
				MeetingPoint: "Hackescher Markt",
			},
			Booking: &models.BookingInfo{
				AdvanceNotice: "Book 48h ahead",
			},
			Pricing: map[string]string{
				"adult": "€65",
			},
		},
		CreatedAt: time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},

	{
		ID:          "event-001",
		Category:    models.CategoryEvent,
		Name:        "Berlin Vegan Market",
		Description: "Monthly vegan market with 40+ vendors selling plant-based food, products and crafts",
		Location: models.Location{
			Address:     "Boxhagener Platz, 10245 Berlin, Germany",
			City:        "Berlin",
			Country:     "Germany",
			Coordinates: &models.Coordinates{Lat: 52.5136, Lng: 13.4530},
		},
		Website: "https://berlinveganmarket.de",
		Reviews: []string{
			"Incredible variety - 40+ vegan vendors with amazing food quality. Clearly labeled allergens and wheelchair accessible.",
			"Such a welcoming community atmosphere! Vendors were knowledgeable about ingredients and very accommodating to dietary restrictions.",
			"Perfect accessibility features and diverse, inclusive crowd. Food quality was restaurant-level across all stalls.",
		},
		SafetyScore: &models.SafetyScore{
			Score:     91,
			Category:  models.CategoryEvent,
			Reasoning: "Excellent vegan event with high-quality food, strong community atmosphere, and good accessibility features",
			Signals: map[string]int{
				"food_quality":   95,
				"accessibility":  88,
				"community_vibe": 92,
				"inclusivity":    89,
			},
			Citations: []string{
				"40+ vegan vendors with amazing food quality",
				"very accommodating to dietary restrictions",
				"Perfect accessibility features and diverse, inclusive crowd",
			},
			AnalyzedAt: time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC),
		},
		Logistics: &models.Logistics{
			Schedule: &models.Schedule{
				Frequency: "First Sunday of the month",
				Time:      "11:00 AM - 6:00 PM",
			},
			NextDates:      []string{"2025-12-07", "2026-01-04", "2026-02-01"},
			EntryCost:      "Free entry",
			NearestTransit: "U5 Frankfurter Tor / S Ostkreuz",
		},
		CreatedAt: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},
}
