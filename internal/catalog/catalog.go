// Package catalog holds the read-only exercise library and the rule-based
// retrieval used to seed workout prompts.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Exercise is a single record from the exercise library. Records are loaded
// once at startup and never mutated, so they are safe to share across
// requests.
type Exercise struct {
	Name           string   `json:"name"`
	Equipment      []string `json:"equipment"`
	PrimaryMuscles []string `json:"primaryMuscles"`
}

// Preferences are the per-request workout preferences that drive retrieval.
type Preferences struct {
	DurationMin int      `json:"durationMin"`
	Equipment   []string `json:"equipment"`
	Focus       string   `json:"focus,omitempty"`
	Intensity   string   `json:"intensity,omitempty"`
}

// Load reads the exercise library from path. Any read or parse failure yields
// an empty catalog, not an error: retrieval degrades gracefully and the
// service keeps running.
func Load(path string, logger zerolog.Logger) []Exercise {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("exercise catalog unavailable, starting empty")
		return nil
	}

	var exercises []Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("exercise catalog unreadable, starting empty")
		return nil
	}

	logger.Info().Int("count", len(exercises)).Msg("exercise catalog loaded")
	return exercises
}

// Retrieve filters exercises against the user's equipment and focus and
// returns at most limit records in catalog order. An exercise qualifies when
// its required equipment is a subset of what the user has (or it needs none)
// and the focus, if set, matches a primary muscle or appears in the name.
// When nothing qualifies the first limit records are returned instead, so the
// prompt is never seeded empty.
func Retrieve(exercises []Exercise, prefs Preferences, limit int) []Exercise {
	if limit <= 0 {
		return nil
	}

	available := make(map[string]bool, len(prefs.Equipment))
	for _, eq := range prefs.Equipment {
		available[eq] = true
	}

	var matches []Exercise
	for _, ex := range exercises {
		if !equipmentOK(ex, available) {
			continue
		}
		if !focusOK(ex, prefs.Focus) {
			continue
		}
		matches = append(matches, ex)
	}

	if len(matches) == 0 {
		matches = exercises
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func equipmentOK(ex Exercise, available map[string]bool) bool {
	for _, eq := range ex.Equipment {
		if !available[eq] {
			return false
		}
	}
	return true
}

func focusOK(ex Exercise, focus string) bool {
	if focus == "" {
		return true
	}
	focus = strings.ToLower(focus)
	for _, m := range ex.PrimaryMuscles {
		if strings.ToLower(m) == focus {
			return true
		}
	}
	return strings.Contains(strings.ToLower(ex.Name), focus)
}
