// Package oracle talks to the external generative-text provider. The
// provider is treated as an untrusted black box: it returns raw text
// and nothing here assumes that text is well formed.
package oracle

import (
	"context"
	"fmt"
)

// Oracle is the provider-agnostic generation interface. Implementations
// issue exactly one outbound call per Generate and never retry.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UnavailableError reports a failure to obtain text from the provider:
// network trouble, a non-2xx status, or a response envelope missing the
// expected fields.
type UnavailableError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s oracle unavailable (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s oracle unavailable: %v", e.Provider, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
