package recovery

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExtractionFailed is returned when the text holds no '{' ... '}' span.
var ErrExtractionFailed = errors.New("no JSON object found in model output")

// ParseError reports text that is not syntactically valid JSON.
type ParseError struct {
	Position int64
	Snippet  string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d near %q: %v", e.Position, e.Snippet, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports well-formed JSON that does not match the itinerary shape.
// Field is a path such as dailyPlans[2].accommodation.cost.
type SchemaError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error at %s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// Attempt is the outcome of one failed strategy.
type Attempt struct {
	Strategy string
	Err      error
}

// RecoveryError aggregates every failed attempt in the order they ran.
type RecoveryError struct {
	Attempts []Attempt
}

func (e *RecoveryError) Error() string {
	if len(e.Attempts) == 0 {
		return "itinerary recovery failed: no strategy attempted"
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
	}
	return "itinerary recovery failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every attempt error to errors.Is and errors.As.
func (e *RecoveryError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}
