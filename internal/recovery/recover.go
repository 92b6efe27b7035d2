package recovery

import (
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"wanderly/internal/models/response_models"
)

// Strategy names, in the order DefaultStrategies tries them.
const (
	StrategyDirect   = "direct"
	StrategyExtract  = "extract"
	StrategyRepair   = "repair"
	StrategyTolerant = "tolerant"
)

// Strategy turns raw model output into a candidate for Validate.
type Strategy struct {
	Name    string
	Prepare func(raw string) (string, error)
}

// Outcome describes a successful recovery.
type Outcome struct {
	Itinerary *response_models.ItinerarySpec
	// Strategy is the name of the strategy that produced Itinerary.
	Strategy string
	// Failed lists the strategies that ran before it.
	Failed []Attempt
}

// Recoverer runs its strategies in order and stops at the first success. It
// holds no mutable state and is safe for concurrent use.
type Recoverer struct {
	strategies []Strategy
}

// DefaultStrategies escalates from parsing the text as-is, through brace
// extraction and textual repair, to a tolerant parser.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: StrategyDirect, Prepare: func(raw string) (string, error) {
			return strings.TrimSpace(raw), nil
		}},
		{Name: StrategyExtract, Prepare: Extract},
		{Name: StrategyRepair, Prepare: func(raw string) (string, error) {
			candidate, err := Extract(raw)
			if err != nil {
				return "", err
			}
			return Repair(candidate), nil
		}},
		{Name: StrategyTolerant, Prepare: func(raw string) (string, error) {
			candidate, err := Extract(raw)
			if err != nil {
				return "", err
			}
			return jsonrepair.JSONRepair(Repair(candidate))
		}},
	}
}

func NewRecoverer(strategies ...Strategy) *Recoverer {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Recoverer{strategies: strategies}
}

// Recover returns the itinerary held in raw or a *RecoveryError listing every
// failed attempt.
func (r *Recoverer) Recover(raw string) (*response_models.ItinerarySpec, error) {
	out, err := r.RecoverDetailed(raw)
	if err != nil {
		return nil, err
	}
	return out.Itinerary, nil
}

// RecoverDetailed is Recover plus the name of the winning strategy.
//
// A *SchemaError ends the run: the text parsed, so no further repair can fix
// its content. ErrExtractionFailed ends it too since every later strategy
// needs an extracted candidate. A candidate identical to one already
// validated is skipped without being recorded.
func (r *Recoverer) RecoverDetailed(raw string) (Outcome, error) {
	var attempts []Attempt
	tried := make(map[string]struct{}, len(r.strategies))

	for _, s := range r.strategies {
		candidate, err := s.Prepare(raw)
		if err != nil {
			attempts = append(attempts, Attempt{Strategy: s.Name, Err: err})
			if errors.Is(err, ErrExtractionFailed) {
				break
			}
			continue
		}
		if _, dup := tried[candidate]; dup {
			continue
		}
		tried[candidate] = struct{}{}

		spec, err := Validate(candidate)
		if err == nil {
			return Outcome{Itinerary: spec, Strategy: s.Name, Failed: attempts}, nil
		}
		attempts = append(attempts, Attempt{Strategy: s.Name, Err: err})

		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			break
		}
	}
	return Outcome{}, &RecoveryError{Attempts: attempts}
}

var defaultRecoverer = NewRecoverer()

// Recover runs the default strategies over raw.
func Recover(raw string) (*response_models.ItinerarySpec, error) {
	return defaultRecoverer.Recover(raw)
}
