package request_models

const (
	DateTypeExact    = "exact"
	DateTypeFlexible = "flexible"
)

type Destination struct {
	Value string `json:"value"`
}

// TripRequest is the planner form as posted by the web client.
type TripRequest struct {
	TripName       string          `json:"tripName"`
	Destinations   []Destination   `json:"destinations"`
	DateType       string          `json:"dateType"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Duration       int             `json:"duration"`
	Adults         int             `json:"adults"`
	Children       int             `json:"children"`
	IsSolo         bool            `json:"isSolo"`
	Budget         float64         `json:"budget"`
	Currency       string          `json:"currency"`
	BudgetCategory string          `json:"budgetCategory"`
	Priorities     map[string]bool `json:"priorities"`
}
