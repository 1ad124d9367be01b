package model

import (
	"context"
	"fmt"
)

// Provider is one LLM backend. Generate performs a single synchronous,
// non-streaming call; there is no retry and each call is independent.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Configured reports whether the provider has a credential. The
	// orchestrator skips unconfigured providers without calling them.
	Configured() bool
	// Generate sends prompt and returns the canonical response.
	Generate(ctx context.Context, prompt string, maxOutputTokens int) (*Response, error)
}

// ErrBodyLimit caps how much of an upstream error body is retained.
const ErrBodyLimit = 1000

// ProviderError is any failure of a single provider call: a missing
// credential, a transport error, or a non-success HTTP status. Status is zero
// when no HTTP response was received.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: API error %d: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Body)
}

// TruncateBody trims an upstream error body for logging.
func TruncateBody(body []byte) string {
	if len(body) > ErrBodyLimit {
		body = body[:ErrBodyLimit]
	}
	return string(body)
}
