package db_fx

import (
	"go.uber.org/fx"

	"wanderly/internal/infra"
	"wanderly/internal/repositories"
)

var Module = fx.Provide(
	infra.InitPostgresql,
	repositories.NewGenerationLogRepository)
