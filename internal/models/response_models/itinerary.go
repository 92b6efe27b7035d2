package response_models

// Activity is a single scheduled item within a day. Time and Cost are free-form
// strings as produced by the model ("09:00", "Morning", "$20").
type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Cost     string `json:"cost"`
}

type Accommodation struct {
	Name string `json:"name"`
	Cost string `json:"cost"`
}

type Transportation struct {
	Type string `json:"type"`
	Cost string `json:"cost"`
}

type DayPlan struct {
	Day            int            `json:"day"`
	Activities     []Activity     `json:"activities"`
	Accommodation  Accommodation  `json:"accommodation"`
	Transportation Transportation `json:"transportation"`
	TotalDailyCost string         `json:"totalDailyCost"`
}

// ItinerarySpec is the validated itinerary recovered from model output.
type ItinerarySpec struct {
	Summary         string             `json:"summary"`
	DailyPlans      []DayPlan          `json:"dailyPlans"`
	BudgetBreakdown map[string]float64 `json:"budgetBreakdown"`
	Recommendations []string           `json:"recommendations"`

	// Warnings collects non-fatal findings such as an empty dailyPlans list.
	Warnings []string `json:"-"`
}

type TripDates struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
}

type TripBudget struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Category string  `json:"category"`
}

// ItineraryResponse is the body returned by POST /api/generateItinerary.
type ItineraryResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Destinations       []string           `json:"destinations"`
	Dates              TripDates          `json:"dates"`
	Travelers          string             `json:"travelers"`
	Budget             TripBudget         `json:"budget"`
	Priorities         []string           `json:"priorities"`
	GeneratedItinerary *ItinerarySpec     `json:"generatedItinerary"`
	BudgetAllocation   map[string]float64 `json:"budgetAllocation,omitempty"`
}
