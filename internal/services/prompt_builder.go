package services

import (
	"fmt"
	"strconv"
	"strings"
)

const itinerarySchema = `{
  "summary": "Brief description of the trip",
  "dailyPlans": [
    {
      "day": 1,
      "activities": [
        {"time": "09:00", "activity": "Description", "cost": "$X"}
      ],
      "accommodation": {"name": "Hotel name", "cost": "$X"},
      "transportation": {"type": "Transportation type", "cost": "$X"},
      "totalDailyCost": "$X"
    }
  ],
  "budgetBreakdown": {
    "accommodation": 0,
    "food": 0,
    "activities": 0,
    "transportation": 0
  },
  "recommendations": [
    "Recommendation 1"
  ]
}`

// buildItineraryPrompt renders the generation prompt for a normalized trip.
func buildItineraryPrompt(trip normalizedTrip) string {
	var dateInfo string
	if trip.exactDates {
		dateInfo = fmt.Sprintf("from %s to %s", trip.startDate, trip.endDate)
	} else {
		dateInfo = fmt.Sprintf("for approximately %d days", trip.duration)
	}

	travelers := "a solo traveler"
	if !trip.isSolo {
		travelers = fmt.Sprintf("%d adults and %d children", trip.adults, trip.children)
	}

	priorities := strings.Join(trip.priorities, ", ")
	if priorities == "" {
		priorities = "No specific priorities"
	}

	return fmt.Sprintf(`Create a detailed travel itinerary for a trip to %s %s.

Trip name: %s
Travelers: %s
Budget: %s %s (%s category)
Priorities: %s

Generate a comprehensive day-by-day itinerary with the following information:
1. A summary of the trip
2. Detailed daily plans for each day, including:
   - Morning, afternoon, and evening activities with approximate times
   - Recommended accommodations for each night
   - Transportation options between locations
   - Estimated costs for activities, accommodations, and transportation
3. Budget breakdown across categories (accommodation, food, activities, transportation)
4. Travel recommendations and money-saving tips

Format the response as a structured JSON object following EXACTLY this schema without any additional text before or after the JSON:
%s
`,
		strings.Join(trip.destinations, ", "), dateInfo,
		trip.name, travelers,
		trip.currency, formatAmount(trip.budget), trip.budgetCategory,
		priorities,
		itinerarySchema)
}

// formatAmount prints 1500 as "1500" and 99.5 as "99.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
