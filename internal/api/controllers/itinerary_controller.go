package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	log              zerolog.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, log zerolog.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		log:              log,
	}
}

// GenerateItineraryHandler godoc
// @Summary Generate a travel itinerary
// @Description Asks the configured model for a day-by-day itinerary and returns it with the trip details
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip details"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/generateItinerary [post]
func (i *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.log, err)
		return
	}

	utils.RespondSuccess(c, itinerary)
}

// GetItineraryHandler godoc
// @Summary Get a generated itinerary
// @Description Returns a recently generated itinerary while it is still cached
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [get]
func (i *ItineraryController) GetItineraryHandler(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, i.log, err)
		return
	}

	utils.RespondSuccess(c, itinerary)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Description Always 200 while the process serves; "generator" carries the model circuit breaker state
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (i *ItineraryController) HealthHandler(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if state := i.itineraryService.GeneratorState(); state != "" {
		body["generator"] = state
	}
	c.JSON(http.StatusOK, body)
}
