package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/recovery"
	"wanderly/pkg/utils"
)

type fakeItineraryService struct {
	resp    *response_models.ItineraryResponse
	err     error
	lastReq request_models.TripRequest
	breaker string
}

func (f *fakeItineraryService) GenerateItinerary(_ context.Context, req request_models.TripRequest) (*response_models.ItineraryResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeItineraryService) GetItinerary(_ context.Context, id string) (*response_models.ItineraryResponse, error) {
	if f.resp != nil && f.resp.ID == id {
		return f.resp, nil
	}
	return nil, utils.ErrItineraryNotFound
}

func (f *fakeItineraryService) GeneratorState() string { return f.breaker }

func newTestRouter(svc *fakeItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewItineraryController(svc, zerolog.Nop())

	r := gin.New()
	r.POST("/api/generateItinerary", ctrl.GenerateItineraryHandler)
	r.GET("/api/itineraries/:id", ctrl.GetItineraryHandler)
	r.GET("/healthz", ctrl.HealthHandler)
	return r
}

func sampleResponse() *response_models.ItineraryResponse {
	return &response_models.ItineraryResponse{
		ID:           "trip-1",
		Name:         "Paris weekend",
		Destinations: []string{"Paris"},
		Dates:        response_models.TripDates{Start: "Flexible", End: "Flexible", Duration: 2},
		Travelers:    "Solo",
		Budget:       response_models.TripBudget{Amount: 500, Currency: "EUR", Category: "moderate"},
		Priorities:   []string{"food"},
		GeneratedItinerary: &response_models.ItinerarySpec{
			Summary:         "Trip to Paris",
			DailyPlans:      []response_models.DayPlan{},
			BudgetBreakdown: map[string]float64{"food": 50},
			Recommendations: []string{"Book ahead"},
			Warnings:        []string{"dailyPlans is empty"},
		},
	}
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generateItinerary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateItineraryHandler_Success(t *testing.T) {
	svc := &fakeItineraryService{resp: sampleResponse()}
	r := newTestRouter(svc)

	w := post(r, `{"tripName":"Paris weekend","destinations":[{"value":"Paris"}],"dateType":"flexible","duration":2,"isSolo":true,"budget":500,"currency":"EUR","budgetCategory":"moderate","priorities":{"food":true}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": "trip-1",
		"name": "Paris weekend",
		"destinations": ["Paris"],
		"dates": {"start": "Flexible", "end": "Flexible", "duration": 2},
		"travelers": "Solo",
		"budget": {"amount": 500, "currency": "EUR", "category": "moderate"},
		"priorities": ["food"],
		"generatedItinerary": {
			"summary": "Trip to Paris",
			"dailyPlans": [],
			"budgetBreakdown": {"food": 50},
			"recommendations": ["Book ahead"]
		}
	}`, w.Body.String())

	assert.Equal(t, "Paris weekend", svc.lastReq.TripName)
	assert.True(t, svc.lastReq.IsSolo)
	assert.Equal(t, map[string]bool{"food": true}, svc.lastReq.Priorities)
}

func TestGenerateItineraryHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "malformed body",
			body:     `{"tripName":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request format"}`,
		},
		{
			name:     "missing trip info",
			body:     `{"tripName":"","destinations":[]}`,
			err:      utils.ErrMissingTripInfo,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing required trip information"}`,
		},
		{
			name:     "recovery failure",
			body:     `{"tripName":"x","destinations":[{"value":"y"}]}`,
			err:      fmt.Errorf("%w: %w", utils.ErrItineraryGeneration, &recovery.RecoveryError{}),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to generate itinerary"}`,
		},
		{
			name:     "unexpected error",
			body:     `{"tripName":"x","destinations":[{"value":"y"}]}`,
			err:      fmt.Errorf("something odd"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeItineraryService{err: tt.err})

			w := post(r, tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestGetItineraryHandler(t *testing.T) {
	r := newTestRouter(&fakeItineraryService{resp: sampleResponse()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/itineraries/trip-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"trip-1"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/itineraries/trip-2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Itinerary not found"}`, w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(&fakeItineraryService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_ReportsBreakerState(t *testing.T) {
	r := newTestRouter(&fakeItineraryService{breaker: "open"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","generator":"open"}`, w.Body.String())
}
