package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"wanderly/cmd/fx/config_fx"
	"wanderly/cmd/fx/controllers_fx"
	"wanderly/cmd/fx/db_fx"
	"wanderly/cmd/fx/generator_fx"
	"wanderly/cmd/fx/itinerary_fx"
	"wanderly/cmd/fx/memcache_fx"
	"wanderly/internal/api/controllers"
	"wanderly/internal/config"
	"wanderly/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		generator_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log zerolog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log zerolog.Logger,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Tracing())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	RegisterRoutes(r, itineraryController, middleware.RateLimitByIP(cfg.RateLimitPerMinute, time.Minute))

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	generateLimiter gin.HandlerFunc) {

	r.GET("/healthz", itineraryController.HealthHandler)

	api := r.Group("/api")
	api.POST("/generateItinerary", generateLimiter, itineraryController.GenerateItineraryHandler)
	api.GET("/itineraries/:id", itineraryController.GetItineraryHandler)
}
