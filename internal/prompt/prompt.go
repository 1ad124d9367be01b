// Package prompt builds the flat-string prompts sent to the LLM providers.
// Each request type has exactly one builder so tests can assert on the exact
// prompt text; there is no templating engine.
package prompt

import (
	"fmt"
	"strings"

	"github.com/fitpilot/fitpilot/internal/catalog"
)

const workoutTemplate = `You are FitPilot, an expert fitness coach. Return EXACT JSON only following this schema:
{ "title": string, "durationMin": number, "exercises": [{ "name": string, "sets": number, "reps": string, "restSec": number, "notes": string }], "gamification": { "xp": number, "badge": string } }

User profile: %s
Preferences: %s

Exercise library (provide name + short props): %s

Create a gamified workout plan optimized for the user's duration and preferences. Keep items concise. Return valid JSON only.`

// Workout builds the workout-plan prompt. profileJSON and prefsJSON are the
// caller's profile and preferences serialized as JSON; exercisesText is the
// seeded exercise list from ExerciseLines.
func Workout(profileJSON, prefsJSON, exercisesText string) string {
	return fmt.Sprintf(workoutTemplate, profileJSON, prefsJSON, exercisesText)
}

// Chat builds the conversational coaching prompt.
func Chat(message string) string {
	return fmt.Sprintf("You are FitPilot, a friendly fitness coach. User says: %s\nReply helpfully, do not provide medical diagnosis.", message)
}

const dietTemplate = `Generate a healthy diet plan for a user.

User info:
Calories needed: %d
Veg: %s
Allergies: %s
Goal: %s

Return ONLY clean JSON in following format (do NOT add anything else):
{
  "calories": 2100,
  "breakfast": [{ "item": "Oats", "quantity": "1 bowl", "cal": 350 }],
  "lunch": [{ "item": "Veg Thali", "quantity": "1 plate", "cal": 600 }],
  "snacks": [],
  "dinner": [],
  "summary": "Short summary..."
}`

// Diet builds the diet-plan prompt around a precomputed calorie target.
func Diet(calories int, veg, allergies, goal string) string {
	return fmt.Sprintf(dietTemplate, calories, veg, allergies, goal)
}

const habitTemplate = `You are an AI habit and routine planner.

RETURN ONLY PURE JSON. NO backticks. NO explanation. NO text outside JSON.

User Info:
- Wake Time: %s
- Sleep Time: %s
- Goal: %s
- Habits: %s

Output format:

{
  "schedule": [
    { "time": "6:00 AM", "task": "Wake up", "duration": "10 min" },
    { "time": "6:10 AM", "task": "Meditation", "duration": "15 min" }
  ],
  "notes": "Summary here"
}`

// Habit builds the daily-routine prompt.
func Habit(wakeTime, sleepTime, goal string, habits []string) string {
	return fmt.Sprintf(habitTemplate, wakeTime, sleepTime, goal, strings.Join(habits, ", "))
}

const moodTemplate = `Create a personalized daily plan based on the user's mood and energy.

User Input:
- Mood: %s
- Sleep Quality: %s
- Energy Level: %s
- Workload: %s
- Notes: %s

Rules:
- Adjust workout intensity based on energy
- Reduce tasks if user feels stressed/tired
- Add breaks if overwhelmed
- Increase productivity tasks if feeling good
- Recommend water, food, and rest
- Return ONLY JSON (no backticks)

Output Format:
{
  "adjustedPlan": [
    { "time": "9:00 AM", "task": "Light workout", "reason": "Low energy" }
  ],
  "recommendations": [
    "Drink more water",
    "Take short breaks"
  ],
  "summary": "AI explanation here"
}`

// Mood builds the mood-adjusted daily plan prompt.
func Mood(mood, sleepQuality, energyLevel, workload, notes string) string {
	return fmt.Sprintf(moodTemplate, mood, sleepQuality, energyLevel, workload, notes)
}

const stressTemplate = `Analyze the user's stress and burnout risk using psychology-based patterns.

User Info:
- Sleep Hours: %s
- Work Hours: %s
- Physical Activity: %s
- Mood: %s
- Fatigue Level: %s

Rules:
- Calculate burnout risk score (0-100)
- Determine stress level (Low, Medium, High, Critical)
- Suggest rest, hydration, sleep improvements
- Suggest reducing workload if required
- Return ONLY JSON

Output Format:
{
  "burnoutScore": 67,
  "stressLevel": "High",
  "analysis": "User is experiencing lack of sleep and high workload.",
  "recommendations": [
    "Take a 20 minute break",
    "Reduce workload",
    "Increase sleep to 7 hours"
  ]
}`

// Stress builds the stress and burnout analysis prompt.
func Stress(sleepHours, workHours, physicalActivity, mood, fatigueLevel string) string {
	return fmt.Sprintf(stressTemplate, sleepHours, workHours, physicalActivity, mood, fatigueLevel)
}

// ExerciseLines renders retrieved exercises as the one-line-per-exercise
// library block embedded in the workout prompt.
func ExerciseLines(exercises []catalog.Exercise) string {
	lines := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		lines = append(lines, fmt.Sprintf("- %s (equipment: %s; muscles: %s)",
			ex.Name, strings.Join(ex.Equipment, ","), strings.Join(ex.PrimaryMuscles, ",")))
	}
	return strings.Join(lines, "\n")
}
