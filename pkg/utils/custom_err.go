package utils

import "errors"

var (
	ErrMissingTripInfo      = errors.New("missing required trip information")
	ErrInvalidTripDates     = errors.New("invalid trip dates")
	ErrItineraryGeneration  = errors.New("failed to generate itinerary")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrGeneratorUnavailable = errors.New("itinerary generator unavailable")
	ErrEmptyGeneration      = errors.New("model returned no content")
)
