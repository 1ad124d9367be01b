package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GROQ_API_KEY", "GROQ_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL", "EXERCISES_PATH"} {
		t.Setenv(key, "") // registers restore of the original value
		_ = os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Groq.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "data/exercises.json", cfg.ExercisesPath)
	assert.False(t, cfg.HasGroq())
	assert.False(t, cfg.HasGemini())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("GEMINI_API_KEY", "AIza_test")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("EXERCISES_PATH", "/tmp/exercises.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "/tmp/exercises.json", cfg.ExercisesPath)
	assert.True(t, cfg.HasGroq())
	assert.True(t, cfg.HasGemini())
}
