// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/fitpilot/fitpilot/internal/catalog"
	"github.com/fitpilot/fitpilot/internal/config"
	"github.com/fitpilot/fitpilot/internal/gemini"
	"github.com/fitpilot/fitpilot/internal/groq"
	"github.com/fitpilot/fitpilot/internal/http/routes"
	"github.com/fitpilot/fitpilot/internal/model"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if !cfg.HasGroq() && !cfg.HasGemini() {
		logger.Warn().Msg("no LLM API keys set (GROQ_API_KEY or GEMINI_API_KEY) — AI endpoints will serve mock responses until one is provided")
	}

	exercises := catalog.Load(cfg.ExercisesPath, logger)

	orchestrator := model.NewOrchestrator(logger,
		groq.New(cfg.Groq.APIKey, cfg.Groq.Model, groq.WithLogger(logger)),
		gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model, gemini.WithLogger(logger)),
	)

	s := routes.New(routes.ServerOptions{
		Orchestrator: orchestrator,
		Exercises:    exercises,
		Logger:       logger,
	})
	h := hlog.NewHandler(logger)(s.Router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  time.Minute,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("forced shutdown")
		}
	}()

	logger.Info().Str("port", cfg.Port).Msg("starting fitpilot api")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("http server")
	}
	<-done
	logger.Info().Msg("server exited")
}
