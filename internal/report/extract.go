// Package report turns untrusted oracle text into a validated
// AuditReport. Extraction and validation are separate stages with
// distinct error kinds so the handler can map each to the right
// response.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedOutputError means the oracle text could not be parsed as
// JSON. Raw keeps the original text for offline diagnosis; it must
// never be sent to the end user.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed oracle output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// Extract strips markdown code fences the provider sometimes wraps its
// output in, then strictly parses the remainder as a JSON object. It
// never panics on bad input.
func Extract(raw string) (map[string]any, error) {
	cleaned := stripFences(raw)

	if cleaned == "" {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("empty response")}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Err: err}
	}

	return obj, nil
}

// stripFences removes a leading ```json or ``` marker and a trailing
// ``` marker, if present, along with surrounding whitespace.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}
