package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// ResilienceConfig tunes retries and the circuit breaker around a generator.
type ResilienceConfig struct {
	// Timeout bounds a single model call.
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// ReadyToTrip decides when the breaker opens. Defaults to 5+ requests
	// with at least half failing.
	ReadyToTrip func(counts gobreaker.Counts) bool
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		Timeout:         60 * time.Second,
		MaxRetries:      2,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		ReadyToTrip:     defaultReadyToTrip,
		OpenTimeout:     30 * time.Second,
	}
}

func defaultReadyToTrip(counts gobreaker.Counts) bool {
	failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && failureRatio >= 0.5
}

// ResilientGenerator retries transient model failures with exponential backoff
// and stops calling the model while the breaker is open. It never looks at the
// returned text.
type ResilientGenerator struct {
	next ItineraryGeneratorInterface
	cb   *gobreaker.CircuitBreaker[string]
	cfg  ResilienceConfig
	log  zerolog.Logger
}

func NewResilientGenerator(next ItineraryGeneratorInterface, cfg ResilienceConfig, log zerolog.Logger) *ResilientGenerator {
	defaults := DefaultResilienceConfig()
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = defaults.InitialInterval
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = defaults.MaxInterval
	}
	if cfg.ReadyToTrip == nil {
		cfg.ReadyToTrip = defaults.ReadyToTrip
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}

	log = log.With().Str("component", "generator").Str("provider", next.Name()).Logger()

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: cfg.ReadyToTrip,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &ResilientGenerator{next: next, cb: cb, cfg: cfg, log: log}
}

func (g *ResilientGenerator) Name() string { return g.next.Name() }

func (g *ResilientGenerator) GenerateItineraryText(ctx context.Context, prompt string) (string, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = g.cfg.InitialInterval
	bo.MaxInterval = g.cfg.MaxInterval
	bo.MaxElapsedTime = 0 // retries are bounded by MaxRetries

	var (
		text    string
		attempt int
	)
	operation := func() error {
		attempt++
		out, err := g.cb.Execute(func() (string, error) {
			callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
			defer cancel()
			return g.next.GenerateItineraryText(callCtx, prompt)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(fmt.Errorf("%w: %w", ErrGeneratorUnavailable, err))
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			g.log.Warn().Err(err).Int("attempt", attempt).Msg("model call failed")
			return err
		}
		text = out
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, g.cfg.MaxRetries), ctx))
	if err != nil {
		return "", err
	}
	return text, nil
}

// BreakerStateReporter is implemented by generators guarded by a circuit breaker.
type BreakerStateReporter interface {
	State() gobreaker.State
}

// State reports the breaker state for the health endpoint.
func (g *ResilientGenerator) State() gobreaker.State {
	return g.cb.State()
}
