// Package gemini is a minimal client for Google's Generative Language API
// (v1beta generateContent). Its native response format already matches the
// canonical model shape and is passed through as-is.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitpilot/fitpilot/internal/model"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const (
	requestTimeout = 30 * time.Second
	temperature    = 0.7
)

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
	logger  zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(raw string) Option {
	return func(c *Client) { c.baseURL = raw }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client. An empty apiKey is allowed: the client reports itself
// unconfigured and Generate fails before any network call.
func New(apiKey, generateModel string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		model:   generateModel,
		logger:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Name() string { return "gemini" }

func (c *Client) Configured() bool { return c.apiKey != "" }

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

// Generate performs a single generateContent call. The API key travels as a
// query parameter, per Google's scheme. Missing or unexpected fields in the
// response decode to zero values and surface as an extraction miss
// downstream, never a crash; an unparseable success body degrades to a
// raw-body carrier.
func (c *Client) Generate(ctx context.Context, prompt string, maxOutputTokens int) (*model.Response, error) {
	if !c.Configured() {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "GEMINI_API_KEY not configured"}
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     temperature,
		},
	})
	if err != nil {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "marshal request: " + err.Error()}
	}

	url := c.baseURL + "/models/" + c.model + ":generateContent?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "build request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "network error: " + err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "read response: " + err.Error()}
	}

	c.logger.Debug().Int("status", resp.StatusCode).Msg("gemini API call")

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &model.ProviderError{Provider: c.Name(), Status: resp.StatusCode, Body: model.TruncateBody(body)}
	}

	var out model.Response
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Warn().Err(err).Msg("gemini response body not parseable, passing through raw")
		return &model.Response{Raw: string(body)}, nil
	}
	return &out, nil
}
