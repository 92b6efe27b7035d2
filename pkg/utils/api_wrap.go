package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to a status and a client safe
// message. Unknown errors are logged and reported as 500.
func HandleServiceError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, ErrMissingTripInfo):
		RespondError(c, http.StatusBadRequest, "Missing required trip information")
	case errors.Is(err, ErrInvalidTripDates):
		RespondError(c, http.StatusBadRequest, "Invalid trip dates")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrItineraryGeneration):
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("itinerary generation failed")
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary")
	default:
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
