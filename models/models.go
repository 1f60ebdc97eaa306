package models

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryRestaurant    Category = "restaurant"
	CategoryAccommodation Category = "accommodation"
	CategoryTour          Category = "tour"
	CategoryEvent         Category = "event"
)

// Categories lists every known category in the order listings are rendered
// into the chat context.
var Categories = []Category{
	CategoryRestaurant,
	CategoryAccommodation,
	CategoryTour,
	CategoryEvent,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q, must be one of: restaurant, accommodation, tour, event", s)
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type BookingInfo struct {
	Required      bool     `json:"required,omitempty"`
	Methods       []string `json:"methods,omitempty"`
	Cancellation  string   `json:"cancellation,omitempty"`
	AdvanceNotice string   `json:"advance_notice,omitempty"`
}

type Schedule struct {
	Days         string `json:"days,omitempty"`
	Time         string `json:"time,omitempty"`
	Duration     string `json:"duration,omitempty"`
	MeetingPoint string `json:"meeting_point,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
}

// Logistics is the category-variant practical info block. Which fields are
// populated depends on the listing category: restaurants use Hours/Booking/
// Pricing, accommodations CheckIn/CheckOut/Booking/Pricing, tours
// Schedule/Booking/Pricing, events Schedule/NextDates/EntryCost/NearestTransit.
type Logistics struct {
	Hours          map[string]string `json:"hours,omitempty"`
	Booking        *BookingInfo      `json:"booking,omitempty"`
	Pricing        map[string]string `json:"pricing,omitempty"`
	CheckIn        string            `json:"check_in,omitempty"`
	CheckOut       string            `json:"check_out,omitempty"`
	Schedule       *Schedule         `json:"schedule,omitempty"`
	NextDates      []string          `json:"next_dates,omitempty"`
	EntryCost      string            `json:"entry_cost,omitempty"`
	NearestTransit string            `json:"nearest_transit,omitempty"`
}

// SafetyScore is the validated output of one analysis run over a listing's
// reviews. Signals always holds exactly the four keys defined for Category.
type SafetyScore struct {
	Score      int            `json:"score"`
	Category   Category       `json:"category"`
	Reasoning  string         `json:"reasoning"`
	Signals    map[string]int `json:"signals"`
	Citations  []string       `json:"citations"`
	AnalyzedAt time.Time      `json:"analyzedAt"`
}

type Listing struct {
	ID          string       `json:"id"`
	Category    Category     `json:"category"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Location    Location     `json:"location"`
	Website     string       `json:"website,omitempty"`
	Reviews     []string     `json:"reviews"`
	SafetyScore *SafetyScore `json:"safetyScore,omitempty"`
	Logistics   *Logistics   `json:"logistics,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (l *Listing) Stringify() string {
	return fmt.Sprintf("%s (%s, Score: %d/100)", l.Name, l.Category, l.OverallScore())
}

// OverallScore returns the safety score, or 0 when the listing has not been
// analyzed yet.
func (l *Listing) OverallScore() int {
	if l.SafetyScore == nil {
		return 0
	}
	return l.SafetyScore.Score
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	ID        string           `json:"id,omitempty"`
	Role      Role             `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp,omitempty"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// MessageMetadata is advisory context attached to an assistant turn so the
// UI can highlight referenced listings. It never drives control flow.
type MessageMetadata struct {
	ListingReferences []string `json:"listingReferences"`
	Categories        []string `json:"categories"`
	CityMention       *string  `json:"cityMention"`
	HasDataForCity    bool     `json:"hasDataForCity"`
}
