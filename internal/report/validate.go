package report

import (
	"encoding/json"
	"fmt"

	"github.com/localseolabs/seo-audit-agent/internal/models"
)

// SchemaError names the first report-contract field that is missing or
// has the wrong type. The contract is never repaired or default-filled:
// inventing report content would be worse than declining to serve it.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("report schema violation: field %q %s", e.Field, e.Reason)
}

var recommendationSections = []struct {
	name       string
	allowEmpty bool
}{
	{name: "googleBusinessRecommendations"},
	{name: "websiteRecommendations"},
	{name: "quickWins", allowEmpty: true},
}

// Validate checks the parsed candidate object against the report
// contract and returns it as a typed AuditReport. Unknown extra fields
// are ignored so newer oracle prompts stay compatible.
func Validate(obj map[string]any) (*models.AuditReport, error) {
	score, ok := obj["overallScore"]
	if !ok {
		return nil, &SchemaError{Field: "overallScore", Reason: "is missing"}
	}
	n, ok := score.(float64)
	if !ok {
		return nil, &SchemaError{Field: "overallScore", Reason: "is not a number"}
	}
	if n < 0 || n > 100 {
		return nil, &SchemaError{Field: "overallScore", Reason: "is not between 0 and 100"}
	}

	explanation, ok := obj["scoreExplanation"]
	if !ok {
		return nil, &SchemaError{Field: "scoreExplanation", Reason: "is missing"}
	}
	if s, ok := explanation.(string); !ok || s == "" {
		return nil, &SchemaError{Field: "scoreExplanation", Reason: "is not a non-empty string"}
	}

	for _, section := range recommendationSections {
		if err := validateSection(obj, section.name, section.allowEmpty); err != nil {
			return nil, err
		}
	}

	// Round-trip through JSON to land in the typed struct; every field
	// has already been shape-checked above.
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode report: %w", err)
	}
	var parsed models.AuditReport
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &parsed, nil
}

func validateSection(obj map[string]any, name string, allowEmpty bool) error {
	raw, ok := obj[name]
	if !ok {
		return &SchemaError{Field: name, Reason: "is missing"}
	}

	items, ok := raw.([]any)
	if !ok {
		return &SchemaError{Field: name, Reason: "is not a list"}
	}
	if len(items) == 0 && !allowEmpty {
		return &SchemaError{Field: name, Reason: "is empty"}
	}

	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return &SchemaError{Field: fmt.Sprintf("%s[%d]", name, i), Reason: "is not an object"}
		}
		for _, key := range []string{"title", "action"} {
			field := fmt.Sprintf("%s[%d].%s", name, i, key)
			value, ok := item[key]
			if !ok {
				return &SchemaError{Field: field, Reason: "is missing"}
			}
			if s, ok := value.(string); !ok || s == "" {
				return &SchemaError{Field: field, Reason: "is not a non-empty string"}
			}
		}
	}

	return nil
}
