package controllers_fx

import (
	"go.uber.org/fx"

	"wanderly/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController))
