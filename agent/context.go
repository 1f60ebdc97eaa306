package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/tiffting/veganbnb/analysis"
	"github.com/tiffting/veganbnb/listings"
	"github.com/tiffting/veganbnb/models"
)

// HighScoreThreshold is the cutoff for the recommendation summary line at
// the bottom of the rendered context.
const HighScoreThreshold = 85

var sectionHeaders = map[models.Category]string{
	models.CategoryRestaurant:    "RESTAURANTS",
	models.CategoryAccommodation: "ACCOMMODATIONS",
	models.CategoryTour:          "TOURS",
	models.CategoryEvent:         "EVENTS",
}

// BuildTravelContext renders the whole listing dataset into the knowledge
// base injected into the chat prompt. Output is deterministic: categories in
// fixed order, listings in fixture order, signals in schema order. It must
// stay well under the model's input limit; with the demo fixture set that is
// not a concern, but it is the operational constraint to watch if the
// dataset grows.
func BuildTravelContext(store *listings.Store) string {
	var b strings.Builder

	b.WriteString("\nBERLIN VEGAN TRAVEL DATABASE:\n")

	for _, category := range models.Categories {
		b.WriteString("\n" + sectionHeaders[category] + ":\n")
		for _, listing := range store.ByCategory(category) {
			b.WriteString(formatListing(&listing))
		}
	}

	var high []string
	for _, listing := range store.HighScoring(HighScoreThreshold) {
		high = append(high, fmt.Sprintf("%s (%s: %d/100)", listing.Name, listing.Category, listing.SafetyScore.Score))
	}
	fmt.Fprintf(&b, "\nHIGH-SCORING RECOMMENDATIONS (%d+ safety score):\n%s\n", HighScoreThreshold, strings.Join(high, ", "))

	return b.String()
}

func formatListing(l *models.Listing) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s (%s, Score: %d/100)\n", l.Name, l.Category, l.OverallScore())
	fmt.Fprintf(&b, "- Location: %s\n", l.Location.Address)
	b.WriteString(formatLogistics(l))

	if l.SafetyScore != nil {
		fmt.Fprintf(&b, "- Safety signals: %s\n", formatSignals(l.Category, l.SafetyScore.Signals))

		citations := l.SafetyScore.Citations
		if len(citations) > 2 {
			citations = citations[:2]
		}
		fmt.Fprintf(&b, "- Key reviews: %s\n", strings.Join(citations, " | "))
	}

	return b.String()
}

// formatSignals renders signal values with human-readable labels in schema
// order so the context is byte-stable across runs.
func formatSignals(category models.Category, signals map[string]int) string {
	var parts []string
	for _, key := range analysis.SignalKeys(category) {
		if value, ok := signals[key]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", analysis.SignalLabel(key), value))
		}
	}
	return strings.Join(parts, ", ")
}

func formatLogistics(l *models.Listing) string {
	lg := l.Logistics
	if lg == nil {
		return ""
	}

	var b strings.Builder
	switch l.Category {
	case models.CategoryRestaurant:
		fmt.Fprintf(&b, "- Hours: %s (Tue-Thu), %s\n", orDefault(lg.Hours["tuesday"], "Varies"), orDefault(lg.Hours["weekend"], "Check website"))
		fmt.Fprintf(&b, "- Booking: %s - %s\n", bookingRequirement(lg.Booking), firstMethod(lg.Booking, "Online booking available"))
		fmt.Fprintf(&b, "- Website: %s\n", l.Website)
		fmt.Fprintf(&b, "- Price range: %s (%s)\n", lg.Pricing["range"], lg.Pricing["average_meal"])

	case models.CategoryAccommodation:
		fmt.Fprintf(&b, "- Check-in: %s, Check-out: %s\n", lg.CheckIn, lg.CheckOut)
		cancellation := ""
		if lg.Booking != nil {
			cancellation = lg.Booking.Cancellation
		}
		fmt.Fprintf(&b, "- Booking: %s - %s\n", firstMethod(lg.Booking, "Online booking"), cancellation)
		fmt.Fprintf(&b, "- Website: %s\n", l.Website)
		fmt.Fprintf(&b, "- Pricing: %s\n", orDefault(orDefault(lg.Pricing["dorm_bed"], lg.Pricing["standard_room"]), "Check website"))

	case models.CategoryTour:
		if lg.Schedule != nil {
			fmt.Fprintf(&b, "- Schedule: %s at %s (%s)\n", lg.Schedule.Days, lg.Schedule.Time, lg.Schedule.Duration)
			fmt.Fprintf(&b, "- Meeting: %s\n", lg.Schedule.MeetingPoint)
		}
		advance := ""
		if lg.Booking != nil {
			advance = lg.Booking.AdvanceNotice
		}
		fmt.Fprintf(&b, "- Website: %s\n", l.Website)
		fmt.Fprintf(&b, "- Booking: %s - %s\n", advance, lg.Pricing["adult"])

	case models.CategoryEvent:
		if lg.Schedule != nil {
			fmt.Fprintf(&b, "- Schedule: %s at %s\n", lg.Schedule.Frequency, lg.Schedule.Time)
		}
		nextDates := lg.NextDates
		if len(nextDates) > 2 {
			nextDates = nextDates[:2]
		}
		fmt.Fprintf(&b, "- Next dates: %s\n", orDefault(strings.Join(nextDates, ", "), "Check website"))
		fmt.Fprintf(&b, "- Website: %s\n", l.Website)
		fmt.Fprintf(&b, "- Entry: %s - Transit: %s\n", lg.EntryCost, lg.NearestTransit)
	}

	return b.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func bookingRequirement(booking *models.BookingInfo) string {
	if booking != nil && booking.Required {
		return "Required"
	}
	return "Walk-in OK"
}

func firstMethod(booking *models.BookingInfo, fallback string) string {
	if booking == nil || len(booking.Methods) == 0 {
		return fallback
	}
	return booking.Methods[0]
}

// buildChatPrompt assembles the full conversational prompt: system
// instructions, current date, rendered context, prior turns, and the new
// user message.
func buildChatPrompt(message string, history []models.ChatMessage, travelContext string, now time.Time) string {
	var turns []string
	for _, msg := range history {
		turns = append(turns, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}

	return fmt.Sprintf(
		chatPromptTemplate,
		now.Format("Monday, January 2, 2006"),
		now.Year(),
		now.Year(),
		travelContext,
		strings.Join(turns, "\n"),
		message,
	)
}
