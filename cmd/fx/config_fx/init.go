package config_fx

import (
	"go.uber.org/fx"

	"wanderly/internal/config"
	"wanderly/internal/infra"
)

var Module = fx.Provide(
	config.Load,
	infra.NewLogger)
