package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"wanderly/internal/config"
	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/recovery"
	"wanderly/internal/repositories"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

const flexibleDate = "Flexible"

// priorityOrder is the order the planner form lists priorities in.
var priorityOrder = []string{"accommodation", "food", "activities", "shopping", "transportation"}

var tracer = otel.Tracer("wanderly/internal/services")

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, id string) (*response_models.ItineraryResponse, error)
	// GeneratorState is the circuit breaker state of the model client, or ""
	// when the client has no breaker.
	GeneratorState() string
}

type ItineraryService struct {
	generator utils.ItineraryGeneratorInterface
	recoverer *recovery.Recoverer
	cache     mem.ItineraryStore
	logRepo   repositories.GenerationLogRepositoryInterface
	cacheTTL  time.Duration
	log       zerolog.Logger

	newID func() string
	now   func() time.Time
}

func NewItineraryService(
	generator utils.ItineraryGeneratorInterface,
	recoverer *recovery.Recoverer,
	cache mem.ItineraryStore,
	logRepo repositories.GenerationLogRepositoryInterface,
	cfg *config.Config,
	log zerolog.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator: generator,
		recoverer: recoverer,
		cache:     cache,
		logRepo:   logRepo,
		cacheTTL:  cfg.CacheTTL,
		log:       log.With().Str("component", "itinerary_service").Logger(),
		newID:     func() string { return "trip-" + uuid.NewString() },
		now:       time.Now,
	}
}

// normalizedTrip is a TripRequest after trimming, defaulting and the solo rule.
type normalizedTrip struct {
	name           string
	destinations   []string
	exactDates     bool
	startDate      string
	endDate        string
	duration       int
	isSolo         bool
	adults         int
	children       int
	budget         float64
	currency       string
	budgetCategory string
	priorities     []string
}

func normalizeTrip(req request_models.TripRequest) (normalizedTrip, error) {
	trip := normalizedTrip{
		name:           strings.TrimSpace(req.TripName),
		duration:       req.Duration,
		isSolo:         req.IsSolo,
		adults:         req.Adults,
		children:       req.Children,
		budget:         req.Budget,
		currency:       strings.TrimSpace(req.Currency),
		budgetCategory: strings.TrimSpace(req.BudgetCategory),
		priorities:     selectedPriorities(req.Priorities),
	}

	for _, d := range req.Destinations {
		if v := strings.TrimSpace(d.Value); v != "" {
			trip.destinations = append(trip.destinations, v)
		}
	}
	if trip.name == "" || len(trip.destinations) == 0 {
		return normalizedTrip{}, utils.ErrMissingTripInfo
	}

	start, end := strings.TrimSpace(req.StartDate), strings.TrimSpace(req.EndDate)
	if req.DateType == request_models.DateTypeExact && start != "" && end != "" {
		days, err := utils.TripDurationDays(start, end)
		if err != nil {
			return normalizedTrip{}, err
		}
		trip.exactDates = true
		trip.startDate, trip.endDate = start, end
		trip.duration = days
	}
	if trip.duration < 0 {
		trip.duration = 0
	}

	if trip.isSolo {
		trip.adults, trip.children = 1, 0
	}
	if trip.adults < 0 {
		trip.adults = 0
	}
	if trip.children < 0 {
		trip.children = 0
	}
	if trip.budget < 0 {
		trip.budget = 0
	}
	if trip.currency == "" {
		trip.currency = "USD"
	}
	if trip.budgetCategory == "" {
		trip.budgetCategory = "moderate"
	}
	return trip, nil
}

// selectedPriorities returns the keys set to true, form priorities first and
// unknown keys after them in lexical order.
func selectedPriorities(p map[string]bool) []string {
	selected := make([]string, 0, len(p))
	for _, key := range priorityOrder {
		if p[key] {
			selected = append(selected, key)
		}
	}
	var extra []string
	for key, on := range p {
		if on && !slices.Contains(priorityOrder, key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	return append(selected, extra...)
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryResponse, error) {
	trip, err := normalizeTrip(req)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	log := s.log.With().Str("trip_id", id).Logger()
	started := s.now()

	ctx, span := tracer.Start(ctx, "ItineraryService.GenerateItinerary")
	defer span.End()
	span.SetAttributes(
		attribute.String("trip.id", id),
		attribute.String("ai.provider", s.generator.Name()),
		attribute.Int("trip.duration_days", trip.duration),
	)

	audit := &db_models.GenerationLog{
		TripID:   id,
		TripName: trip.name,
		Provider: s.generator.Name(),
	}
	defer func() {
		audit.DurationMs = s.now().Sub(started).Milliseconds()
		// the request context may already be done; the audit row is best effort
		if err := s.logRepo.CreateGenerationLog(context.WithoutCancel(ctx), audit); err != nil {
			log.Error().Err(err).Msg("failed to store generation log")
		}
	}()

	raw, err := s.generator.GenerateItineraryText(ctx, buildItineraryPrompt(trip))
	if err != nil {
		audit.Failure = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		log.Error().Err(err).Msg("model call failed")
		return nil, fmt.Errorf("%w: %w", utils.ErrItineraryGeneration, err)
	}
	audit.RawLength = len(raw)

	outcome, err := s.recoverer.RecoverDetailed(raw)
	if err != nil {
		audit.Failure = err.Error()
		var recErr *recovery.RecoveryError
		if errors.As(err, &recErr) {
			audit.Attempts = len(recErr.Attempts)
			for _, a := range recErr.Attempts {
				log.Warn().Str("strategy", a.Strategy).Err(a.Err).Msg("recovery attempt failed")
			}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "recovery failed")
		log.Error().Int("raw_length", len(raw)).Msg("could not recover itinerary from model output")
		return nil, fmt.Errorf("%w: %w", utils.ErrItineraryGeneration, err)
	}

	audit.Succeeded = true
	audit.Strategy = outcome.Strategy
	audit.Attempts = len(outcome.Failed) + 1
	audit.Warnings = strings.Join(outcome.Itinerary.Warnings, "; ")
	span.SetAttributes(
		attribute.String("recovery.strategy", outcome.Strategy),
		attribute.Int("recovery.failed_attempts", len(outcome.Failed)),
	)

	event := log.Info()
	if outcome.Strategy != recovery.StrategyDirect {
		event = log.Warn()
	}
	event.Str("strategy", outcome.Strategy).
		Int("failed_attempts", len(outcome.Failed)).
		Strs("warnings", outcome.Itinerary.Warnings).
		Msg("itinerary recovered")

	resp := assembleResponse(id, trip, outcome.Itinerary)
	s.cache.Set(id, resp, s.cacheTTL)
	return resp, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.ItineraryResponse, error) {
	resp, ok := s.cache.Get(id)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}
	return resp, nil
}

func (s *ItineraryService) GeneratorState() string {
	if reporter, ok := s.generator.(utils.BreakerStateReporter); ok {
		return reporter.State().String()
	}
	return ""
}

func assembleResponse(id string, trip normalizedTrip, itinerary *response_models.ItinerarySpec) *response_models.ItineraryResponse {
	dates := response_models.TripDates{Start: flexibleDate, End: flexibleDate, Duration: trip.duration}
	if trip.exactDates {
		dates.Start, dates.End = trip.startDate, trip.endDate
	}

	travelers := "Solo"
	if !trip.isSolo {
		travelers = fmt.Sprintf("%d adults, %d children", trip.adults, trip.children)
	}

	return &response_models.ItineraryResponse{
		ID:           id,
		Name:         trip.name,
		Destinations: trip.destinations,
		Dates:        dates,
		Travelers:    travelers,
		Budget: response_models.TripBudget{
			Amount:   trip.budget,
			Currency: trip.currency,
			Category: trip.budgetCategory,
		},
		Priorities:         trip.priorities,
		GeneratedItinerary: itinerary,
		BudgetAllocation:   budgetAllocation(itinerary.BudgetBreakdown, trip.budget),
	}
}

// budgetAllocation returns each category's share of the total budget as a
// percentage with one decimal. It is nil when there is no budget to divide.
func budgetAllocation(breakdown map[string]float64, total float64) map[string]float64 {
	if total <= 0 || len(breakdown) == 0 {
		return nil
	}
	out := make(map[string]float64, len(breakdown))
	for category, amount := range breakdown {
		out[category] = math.Round(amount/total*1000) / 10
	}
	return out
}
