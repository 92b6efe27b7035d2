package infra

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wanderly/internal/config"
	"wanderly/internal/models/db_models"
)

// InitPostgresql opens the generation log database. It returns a nil *gorm.DB
// when POSTGRES_URL is unset so the service can run without storage.
func InitPostgresql(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		log.Info().Msg("POSTGRES_URL not set, generation logs are disabled")
		return nil, nil
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.GenerationLog{}); err != nil {
		return nil, fmt.Errorf("migrate generation logs: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			ClosePostgresql(connectionPool, log)
			return nil
		},
	})

	log.Info().Msg("PostgreSQL connected")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	} else {
		log.Info().Msg("PostgreSQL database connection closed successfully")
	}
}
