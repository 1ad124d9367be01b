// Package model defines the canonical LLM response shape shared by all
// provider clients and the fallback orchestration across them.
package model

import "strings"

// Response is the canonical shape every provider client produces, regardless
// of its native wire format. Gemini's generateContent responses already match
// it; other providers are translated into it. Raw carries the unparsed body
// when a provider returned success but the body was not valid JSON.
type Response struct {
	Candidates []Candidate `json:"candidates,omitempty"`
	Raw        string      `json:"raw,omitempty"`
}

// Candidate is a single generation. Output is a legacy flat field kept for
// older generateContent responses that carried text there.
type Candidate struct {
	Content Content `json:"content"`
	Output  string  `json:"output,omitempty"`
}

// Content holds the ordered text fragments of a generation.
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part is one text fragment.
type Part struct {
	Text string `json:"text"`
}

// mockPromptLimit bounds how much of the prompt a mock response echoes back.
const mockPromptLimit = 500

// Mock builds the deterministic offline response used when no provider is
// usable. The text is the literal "MOCK RESPONSE: " prefix followed by the
// first 500 characters of the prompt.
func Mock(prompt string) *Response {
	if len(prompt) > mockPromptLimit {
		prompt = prompt[:mockPromptLimit]
	}
	return &Response{
		Candidates: []Candidate{{
			Content: Content{
				Parts: []Part{{Text: "MOCK RESPONSE: " + prompt}},
				Role:  "model",
			},
		}},
	}
}

// ExtractText pulls the first candidate's text out of a canonical response,
// joining multiple fragments with newlines. It falls back to the legacy flat
// Output field and reports false when no text is present anywhere. It never
// fails: a malformed or empty response is an extraction miss, not an error.
func ExtractText(resp *Response) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	first := resp.Candidates[0]

	if parts := first.Content.Parts; len(parts) > 0 {
		texts := make([]string, 0, len(parts))
		for _, p := range parts {
			texts = append(texts, p.Text)
		}
		if joined := strings.Join(texts, "\n"); joined != "" {
			return joined, true
		}
	}

	if first.Output != "" {
		return first.Output, true
	}
	return "", false
}
