package recovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"wanderly/internal/models/response_models"
)

const snippetRadius = 20

// Validate parses text and checks it against the itinerary shape. It returns a
// *ParseError when text is not JSON and a *SchemaError, qualified with the
// path of the offending field, when it is JSON of the wrong shape.
func Validate(text string) (*response_models.ItinerarySpec, error) {
	doc, err := decode(text)
	if err != nil {
		return nil, err
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, mistyped("$", "object", doc)
	}

	spec := &response_models.ItinerarySpec{}
	if spec.Summary, err = requireString(root, "", "summary"); err != nil {
		return nil, err
	}
	if err := validateDailyPlans(root, spec); err != nil {
		return nil, err
	}
	if spec.BudgetBreakdown, err = validateBudget(root); err != nil {
		return nil, err
	}
	if spec.Recommendations, err = validateRecommendations(root); err != nil {
		return nil, err
	}
	return spec, nil
}

func decode(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, parseError(text, err)
	}
	// anything but whitespace after the first value is a parse failure
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		off := dec.InputOffset()
		return nil, &ParseError{Position: off, Snippet: snippet(text, off), Err: errors.New("unexpected data after top-level value")}
	}
	return doc, nil
}

func parseError(text string, err error) *ParseError {
	off := int64(len(text))
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		off = syntaxErr.Offset
	}
	return &ParseError{Position: off, Snippet: snippet(text, off), Err: err}
}

func snippet(text string, off int64) string {
	start := max(int(off)-snippetRadius, 0)
	end := min(int(off)+snippetRadius, len(text))
	if start > end {
		return ""
	}
	return strings.ToValidUTF8(text[start:end], "")
}

func validateDailyPlans(root map[string]any, spec *response_models.ItinerarySpec) error {
	raw, ok := root["dailyPlans"]
	if !ok {
		return missing("dailyPlans", "array")
	}
	items, ok := raw.([]any)
	if !ok {
		return mistyped("dailyPlans", "array", raw)
	}
	if len(items) == 0 {
		spec.Warnings = append(spec.Warnings, "dailyPlans is empty")
	}

	spec.DailyPlans = make([]response_models.DayPlan, 0, len(items))
	lastDay := 0
	for i, item := range items {
		path := fmt.Sprintf("dailyPlans[%d]", i)
		plan, err := validateDayPlan(path, item)
		if err != nil {
			return err
		}
		if plan.Day < lastDay {
			spec.Warnings = append(spec.Warnings, fmt.Sprintf("%s.day %d follows day %d", path, plan.Day, lastDay))
		}
		lastDay = plan.Day
		spec.DailyPlans = append(spec.DailyPlans, plan)
	}
	return nil
}

func validateDayPlan(path string, raw any) (response_models.DayPlan, error) {
	var plan response_models.DayPlan
	obj, ok := raw.(map[string]any)
	if !ok {
		return plan, mistyped(path, "object", raw)
	}

	day, err := requirePositiveInt(obj, path, "day")
	if err != nil {
		return plan, err
	}
	plan.Day = day

	if plan.Activities, err = validateActivities(obj, path); err != nil {
		return plan, err
	}

	accommodation, err := requireObject(obj, path, "accommodation")
	if err != nil {
		return plan, err
	}
	accPath := path + ".accommodation"
	if plan.Accommodation.Name, err = requireString(accommodation, accPath, "name"); err != nil {
		return plan, err
	}
	if plan.Accommodation.Cost, err = requireString(accommodation, accPath, "cost"); err != nil {
		return plan, err
	}

	transportation, err := requireObject(obj, path, "transportation")
	if err != nil {
		return plan, err
	}
	trPath := path + ".transportation"
	if plan.Transportation.Type, err = requireString(transportation, trPath, "type"); err != nil {
		return plan, err
	}
	if plan.Transportation.Cost, err = requireString(transportation, trPath, "cost"); err != nil {
		return plan, err
	}

	if plan.TotalDailyCost, err = requireString(obj, path, "totalDailyCost"); err != nil {
		return plan, err
	}
	return plan, nil
}

func validateActivities(obj map[string]any, path string) ([]response_models.Activity, error) {
	field := join(path, "activities")
	raw, ok := obj["activities"]
	if !ok {
		return nil, missing(field, "array")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, mistyped(field, "array", raw)
	}

	activities := make([]response_models.Activity, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", field, i)
		a, ok := item.(map[string]any)
		if !ok {
			return nil, mistyped(itemPath, "object", item)
		}
		var act response_models.Activity
		var err error
		if act.Time, err = requireString(a, itemPath, "time"); err != nil {
			return nil, err
		}
		if act.Activity, err = requireString(a, itemPath, "activity"); err != nil {
			return nil, err
		}
		if act.Cost, err = requireString(a, itemPath, "cost"); err != nil {
			return nil, err
		}
		activities = append(activities, act)
	}
	return activities, nil
}

func validateBudget(root map[string]any) (map[string]float64, error) {
	raw, ok := root["budgetBreakdown"]
	if !ok {
		return nil, missing("budgetBreakdown", "object")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, mistyped("budgetBreakdown", "object", raw)
	}

	budget := make(map[string]float64, len(obj))
	for _, category := range slices.Sorted(maps.Keys(obj)) {
		v := obj[category]
		field := "budgetBreakdown." + category
		amount, ok := toAmount(v)
		if !ok {
			return nil, mistyped(field, "non-negative number", v)
		}
		if amount < 0 {
			return nil, &SchemaError{Field: field, Expected: "non-negative number", Actual: "negative number"}
		}
		budget[category] = amount
	}
	return budget, nil
}

// toAmount accepts JSON numbers and quoted numerics such as "120", "$1,200"
// or "120 USD".
func toAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil && !math.IsInf(f, 0)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			switch {
			case r >= '0' && r <= '9', r == '.', r == '-':
				return r
			case r == ',' || r == ' ' || r == '\u00a0':
				return -1
			case strings.ContainsRune("$€£¥₫", r):
				return -1
			case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
				// currency codes like USD
				return -1
			}
			return '!'
		}, n)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	return 0, false
}

func validateRecommendations(root map[string]any) ([]string, error) {
	raw, ok := root["recommendations"]
	if !ok {
		return nil, missing("recommendations", "array")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, mistyped("recommendations", "array", raw)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, mistyped(fmt.Sprintf("recommendations[%d]", i), "string", item)
		}
		out = append(out, s)
	}
	return out, nil
}

func requireString(obj map[string]any, path, key string) (string, error) {
	field := join(path, key)
	raw, ok := obj[key]
	if !ok {
		return "", missing(field, "string")
	}
	s, ok := raw.(string)
	if !ok {
		return "", mistyped(field, "string", raw)
	}
	return s, nil
}

func requireObject(obj map[string]any, path, key string) (map[string]any, error) {
	field := join(path, key)
	raw, ok := obj[key]
	if !ok {
		return nil, missing(field, "object")
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, mistyped(field, "object", raw)
	}
	return m, nil
}

func requirePositiveInt(obj map[string]any, path, key string) (int, error) {
	field := join(path, key)
	raw, ok := obj[key]
	if !ok {
		return 0, missing(field, "positive integer")
	}
	n, ok := raw.(json.Number)
	if !ok {
		return 0, mistyped(field, "positive integer", raw)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, &SchemaError{Field: field, Expected: "positive integer", Actual: n.String()}
	}
	return int(f), nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func missing(field, expected string) *SchemaError {
	return &SchemaError{Field: field, Expected: expected, Actual: "missing"}
}

func mistyped(field, expected string, v any) *SchemaError {
	return &SchemaError{Field: field, Expected: expected, Actual: typeName(v)}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
