package itinerary_fx

import (
	"go.uber.org/fx"

	"wanderly/internal/recovery"
	"wanderly/internal/services"
)

var Module = fx.Provide(
	provideRecoverer,
	services.NewItineraryService)

func provideRecoverer() *recovery.Recoverer {
	return recovery.NewRecoverer(recovery.DefaultStrategies()...)
}
