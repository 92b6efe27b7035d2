package utils

import "context"

// ItineraryGeneratorInterface sends a prompt to a generative model and returns
// the raw text of its first answer. The text is not guaranteed to be JSON.
type ItineraryGeneratorInterface interface {
	GenerateItineraryText(ctx context.Context, prompt string) (string, error)
	Name() string
}
