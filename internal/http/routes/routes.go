// Package routes wires the HTTP endpoints to the retrieval, prompt, and
// orchestration layers.
package routes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fitpilot/fitpilot/internal/catalog"
	"github.com/fitpilot/fitpilot/internal/model"
	"github.com/fitpilot/fitpilot/internal/prompt"
)

const (
	retrievalLimit   = 8
	workoutMaxTokens = 800
	chatMaxTokens    = 400
	planMaxTokens    = 800
)

// Orchestrator is the model-call contract the handlers depend on. It never
// fails; every provider error is absorbed behind it.
type Orchestrator interface {
	Generate(ctx context.Context, prompt string, maxOutputTokens int) *model.Response
}

type Server struct {
	Router       *chi.Mux
	orchestrator Orchestrator
	exercises    []catalog.Exercise
	logger       zerolog.Logger
}

type ServerOptions struct {
	Orchestrator Orchestrator
	Exercises    []catalog.Exercise
	Logger       zerolog.Logger
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	s := &Server{
		Router:       r,
		orchestrator: opts.Orchestrator,
		exercises:    opts.Exercises,
		logger:       opts.Logger,
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			s.logger.Error().Err(err).Msg("write health check response")
		}
	})

	r.Post("/ai/workout", s.handleWorkout)
	r.Post("/ai/chat", s.handleChat)
	r.Post("/ai/diet", s.handleDiet)
	r.Post("/ai/habit", s.handleHabit)
	r.Post("/ai/mood", s.handleMood)
	r.Post("/ai/stress", s.handleStress)

	return s
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writePlan shapes the common plan response: parsed JSON plan when the model
// cooperated, raw text when it didn't, raw canonical response when no text
// could be extracted at all. Extra fields are merged into the success shape.
func (s *Server) writePlan(w http.ResponseWriter, resp *model.Response, extra map[string]any) {
	text, ok := model.ExtractText(resp)
	if !ok {
		s.writeJSON(w, http.StatusOK, map[string]any{"raw": resp})
		return
	}

	plan, ok := prompt.ExtractJSON(text)
	if !ok {
		s.writeJSON(w, http.StatusOK, map[string]any{"raw_text": text, "raw": resp})
		return
	}

	out := map[string]any{"plan": plan, "raw_text": text}
	for k, v := range extra {
		out[k] = v
	}
	s.writeJSON(w, http.StatusOK, out)
}
