// Package groq is a minimal client for Groq's OpenAI-compatible
// chat-completions endpoint, translating its responses into the canonical
// model shape.
package groq

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

const DefaultBaseURL = "https://api.groq.com/openai/v1"

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
func New(apiKey, chatModel string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		model:   chatModel,
		logger:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Name() string { return "groq" }

func (c *Client) Configured() bool { return c.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate performs a single non-streaming chat-completion call and wraps the
// first choice into a single-candidate canonical response. A successful HTTP
// response with an unparseable body degrades to a raw-body carrier rather
// than an error.
func (c *Client) Generate(ctx context.Context, prompt string, maxOutputTokens int) (*model.Response, error) {
	if !c.Configured() {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "GROQ_API_KEY not configured"}
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "marshal request: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, &model.ProviderError{Provider: c.Name(), Body: "build request: " + err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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

	c.logger.Debug().Int("status", resp.StatusCode).Msg("groq API call")

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &model.ProviderError{Provider: c.Name(), Status: resp.StatusCode, Body: model.TruncateBody(body)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		c.logger.Warn().Err(err).Msg("groq response body not parseable, passing through raw")
		return &model.Response{Raw: string(body)}, nil
	}

	if len(cr.Choices) == 0 {
		return &model.Response{}, nil
	}
	return &model.Response{
		Candidates: []model.Candidate{{
			Content: model.Content{
				Parts: []model.Part{{Text: cr.Choices[0].Message.Content}},
				Role:  "model",
			},
		}},
	}, nil
}
