package model

import (
	"context"

	"github.com/rs/zerolog"
)

// Orchestrator tries providers in order and falls back to a mock response
// when every configured provider fails or none is configured. It is stateless
// per call: no circuit breaker, no backoff, no health caching.
type Orchestrator struct {
	providers []Provider
	logger    zerolog.Logger
}

// NewOrchestrator builds an orchestrator over providers in fallback order.
func NewOrchestrator(logger zerolog.Logger, providers ...Provider) *Orchestrator {
	return &Orchestrator{providers: providers, logger: logger}
}

// Generate returns the first configured provider's successful response, or
// the deterministic mock when all attempts fail. It never returns an error:
// every provider failure is absorbed here.
func (o *Orchestrator) Generate(ctx context.Context, prompt string, maxOutputTokens int) *Response {
	attempted := false
	for _, p := range o.providers {
		if p == nil || !p.Configured() {
			continue
		}
		attempted = true

		o.logger.Debug().Str("provider", p.Name()).Msg("calling LLM provider")
		resp, err := p.Generate(ctx, prompt, maxOutputTokens)
		if err != nil {
			o.logger.Warn().Err(err).Str("provider", p.Name()).Msg("provider call failed, falling back")
			continue
		}
		return resp
	}

	if !attempted {
		o.logger.Warn().Msg("no LLM providers configured; returning mock response")
	} else {
		o.logger.Warn().Msg("all LLM providers failed; returning mock response")
	}
	return Mock(prompt)
}
