package routes

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/fitpilot/fitpilot/internal/catalog"
	"github.com/fitpilot/fitpilot/internal/model"
	"github.com/fitpilot/fitpilot/internal/prompt"
)

// UserProfile is the caller-supplied fitness profile.
type UserProfile struct {
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	WeightKg      float64 `json:"weightKg,omitempty"`
	HeightCm      float64 `json:"heightCm,omitempty"`
	FitnessGoal   string  `json:"fitnessGoal,omitempty"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
}

type workoutRequest struct {
	UserProfile UserProfile         `json:"userProfile"`
	Preferences catalog.Preferences `json:"preferences"`
}

func (s *Server) handleWorkout(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.UserProfile.FitnessGoal == "" {
		req.UserProfile.FitnessGoal = "general fitness"
	}
	if req.UserProfile.ActivityLevel == "" {
		req.UserProfile.ActivityLevel = "moderate"
	}
	if req.Preferences.DurationMin == 0 {
		req.Preferences.DurationMin = 30
	}
	if req.Preferences.Intensity == "" {
		req.Preferences.Intensity = "moderate"
	}

	candidates := catalog.Retrieve(s.exercises, req.Preferences, retrievalLimit)

	profileJSON, _ := json.Marshal(req.UserProfile)
	prefsJSON, _ := json.Marshal(req.Preferences)
	p := prompt.Workout(string(profileJSON), string(prefsJSON), prompt.ExerciseLines(candidates))

	resp := s.orchestrator.Generate(r.Context(), p, workoutMaxTokens)
	s.writePlan(w, resp, nil)
}

type chatRequest struct {
	UserID         string `json:"userId,omitempty"`
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Message == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message required"})
		return
	}

	resp := s.orchestrator.Generate(r.Context(), prompt.Chat(req.Message), chatMaxTokens)

	text, ok := model.ExtractText(resp)
	if !ok {
		s.writeJSON(w, http.StatusOK, map[string]any{"raw": resp})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"reply": text, "conversationId": conversationID})
}

type dietRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	WeightKg      float64 `json:"weightKg"`
	HeightCm      float64 `json:"heightCm"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
	Goal          string  `json:"goal,omitempty"`
	Veg           string  `json:"veg,omitempty"`
	Allergies     string  `json:"allergies,omitempty"`
}

func (s *Server) handleDiet(w http.ResponseWriter, r *http.Request) {
	var req dietRequest
	if !s.decode(w, r, &req) {
		return
	}

	calories := prompt.DailyCalories(req.Age, req.Gender, req.WeightKg, req.HeightCm, req.ActivityLevel, req.Goal)
	p := prompt.Diet(calories, req.Veg, req.Allergies, req.Goal)

	resp := s.orchestrator.Generate(r.Context(), p, planMaxTokens)
	s.writePlan(w, resp, map[string]any{"calories": calories})
}

type habitRequest struct {
	WakeTime  string   `json:"wakeTime"`
	SleepTime string   `json:"sleepTime"`
	Goal      string   `json:"goal,omitempty"`
	Habits    []string `json:"habits,omitempty"`
}

func (s *Server) handleHabit(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if !s.decode(w, r, &req) {
		return
	}

	p := prompt.Habit(req.WakeTime, req.SleepTime, req.Goal, req.Habits)
	resp := s.orchestrator.Generate(r.Context(), p, planMaxTokens)
	s.writePlan(w, resp, nil)
}

type moodRequest struct {
	Mood         string `json:"mood"`
	SleepQuality string `json:"sleepQuality,omitempty"`
	EnergyLevel  string `json:"energyLevel,omitempty"`
	Workload     string `json:"workload,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !s.decode(w, r, &req) {
		return
	}

	p := prompt.Mood(req.Mood, req.SleepQuality, req.EnergyLevel, req.Workload, req.Notes)
	resp := s.orchestrator.Generate(r.Context(), p, planMaxTokens)
	s.writePlan(w, resp, nil)
}

type stressRequest struct {
	SleepHours       string `json:"sleepHours"`
	WorkHours        string `json:"workHours"`
	PhysicalActivity string `json:"physicalActivity,omitempty"`
	Mood             string `json:"mood,omitempty"`
	FatigueLevel     string `json:"fatigueLevel,omitempty"`
}

func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	var req stressRequest
	if !s.decode(w, r, &req) {
		return
	}

	p := prompt.Stress(req.SleepHours, req.WorkHours, req.PhysicalActivity, req.Mood, req.FatigueLevel)
	resp := s.orchestrator.Generate(r.Context(), p, planMaxTokens)
	s.writePlan(w, resp, nil)
}
