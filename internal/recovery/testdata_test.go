package recovery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"wanderly/internal/models/response_models"
)

func sampleItinerary() response_models.ItinerarySpec {
	return response_models.ItinerarySpec{
		Summary: "Three relaxed days in Lisbon",
		DailyPlans: []response_models.DayPlan{
			{
				Day: 1,
				Activities: []response_models.Activity{
					{Time: "09:00", Activity: "Tram 28 to Alfama", Cost: "$3"},
					{Time: "Evening", Activity: "Fado at a tasca, St. Anthony's quarter", Cost: "$40"},
				},
				Accommodation:  response_models.Accommodation{Name: "Casa do Largo", Cost: "$110"},
				Transportation: response_models.Transportation{Type: "Tram", Cost: "$3"},
				TotalDailyCost: "$156",
			},
			{
				Day: 2,
				Activities: []response_models.Activity{
					{Time: "10:00", Activity: "Belém Tower", Cost: "€8"},
				},
				Accommodation:  response_models.Accommodation{Name: "Casa do Largo", Cost: "$110"},
				Transportation: response_models.Transportation{Type: "Train", Cost: "$2.5"},
				TotalDailyCost: "$120.50",
			},
		},
		BudgetBreakdown: map[string]float64{
			"accommodation":  220,
			"food":           90.5,
			"activities":     51,
			"transportation": 5.5,
		},
		Recommendations: []string{"Buy a Viva Viagem card", "Book Belém early"},
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// sampleDoc returns the sample itinerary as a generic document for mutation.
func sampleDoc(t *testing.T) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, sampleItinerary())), &doc))
	return doc
}

func dayOf(doc map[string]any, i int) map[string]any {
	return doc["dailyPlans"].([]any)[i].(map[string]any)
}
