// Package config handles application configuration from environment variables
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is an immutable snapshot of the process environment, taken once at
// startup and passed explicitly to everything that needs it.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Groq   GroqConfig
	Gemini GeminiConfig

	// ExercisesPath points at the static exercise catalog file.
	ExercisesPath string `env:"EXERCISES_PATH" envDefault:"data/exercises.json"`
}

// GroqConfig holds Groq-specific configuration
type GroqConfig struct {
	APIKey string `env:"GROQ_API_KEY"`
	Model  string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
}

// GeminiConfig holds Gemini-specific configuration
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// Load reads configuration from environment variables. A missing API key is
// not an error: the service starts without any provider configured and serves
// mock responses until one is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// HasGroq returns true if Groq configuration is complete
func (c Config) HasGroq() bool {
	return c.Groq.APIKey != ""
}

// HasGemini returns true if Gemini configuration is complete
func (c Config) HasGemini() bool {
	return c.Gemini.APIKey != ""
}
