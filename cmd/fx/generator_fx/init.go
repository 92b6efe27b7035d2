package generator_fx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"wanderly/internal/config"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(ProvideItineraryGenerator)

// ProvideItineraryGenerator creates the model client selected by AI_PROVIDER
// and wraps it with retries and a circuit breaker.
func ProvideItineraryGenerator(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (utils.ItineraryGeneratorInterface, error) {
	var base utils.ItineraryGeneratorInterface

	switch cfg.AIProvider {
	case "openai":
		base = utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Info().Str("model", cfg.OpenAIModel).Msg("initializing OpenAI itinerary generator")
	case "gemini":
		client, err := utils.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		base = client
		log.Info().Str("model", cfg.GeminiModel).Msg("initializing Gemini itinerary generator")
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", cfg.AIProvider)
	}

	resilience := utils.DefaultResilienceConfig()
	resilience.Timeout = cfg.AITimeout
	resilience.MaxRetries = cfg.AIMaxRetries

	return utils.NewResilientGenerator(base, resilience, log), nil
}
