package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpilot/fitpilot/internal/model"
)

func TestGenerate(t *testing.T) {
	var gotReq generateRequest
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Stretch "},{"text":"then jog."}],"role":"model"}}]}`))
	}))
	defer srv.Close()

	c := New("AIza_test", "gemini-2.5-flash", WithBaseURL(srv.URL))
	resp, err := c.Generate(context.Background(), "How do I warm up?", 800)
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "AIza_test", gotKey, "API key travels as query parameter")
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	assert.Equal(t, "How do I warm up?", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, 800, gotReq.GenerationConfig.MaxOutputTokens)

	text, ok := model.ExtractText(resp)
	require.True(t, ok)
	assert.Equal(t, "Stretch \nthen jog.", text)
}

func TestGenerateNotConfigured(t *testing.T) {
	c := New("", "gemini-2.5-flash")
	assert.False(t, c.Configured())

	_, err := c.Generate(context.Background(), "hi", 100)
	var perr *model.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "gemini", perr.Provider)
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c := New("bad_key", "gemini-2.5-flash", WithBaseURL(srv.URL))
	_, err := c.Generate(context.Background(), "hi", 100)

	var perr *model.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusForbidden, perr.Status)
	assert.Contains(t, perr.Body, "API key not valid")
}

func TestGenerateMalformedFieldsAreNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{}}]}`))
	}))
	defer srv.Close()

	c := New("AIza_test", "gemini-2.5-flash", WithBaseURL(srv.URL))
	resp, err := c.Generate(context.Background(), "hi", 100)
	require.NoError(t, err)

	_, ok := model.ExtractText(resp)
	assert.False(t, ok, "missing parts is a miss, not a crash")
}

func TestGenerateLegacyOutputField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"output":"older flat format"}]}`))
	}))
	defer srv.Close()

	c := New("AIza_test", "gemini-2.5-flash", WithBaseURL(srv.URL))
	resp, err := c.Generate(context.Background(), "hi", 100)
	require.NoError(t, err)

	text, ok := model.ExtractText(resp)
	require.True(t, ok)
	assert.Equal(t, "older flat format", text)
}

func TestGenerateUnparseableBodyDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("oops"))
	}))
	defer srv.Close()

	c := New("AIza_test", "gemini-2.5-flash", WithBaseURL(srv.URL))
	resp, err := c.Generate(context.Background(), "hi", 100)
	require.NoError(t, err)
	assert.Equal(t, "oops", resp.Raw)
}
