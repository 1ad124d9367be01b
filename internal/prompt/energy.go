package prompt

import "math"

// activityFactors are the standard multipliers applied to BMR.
var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
}

// goalAdjustment shifts the daily target for weight goals.
const goalAdjustment = 300

// DailyCalories estimates a daily calorie target with the Mifflin-St Jeor
// equation, scaled by activity level. Unknown activity levels fall back to
// sedentary. A "lose" goal subtracts 300 kcal, "gain" adds 300.
func DailyCalories(age int, gender string, weightKg, heightCm float64, activityLevel, goal string) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors["sedentary"]
	}
	calories := bmr * factor

	switch goal {
	case "lose":
		calories -= goalAdjustment
	case "gain":
		calories += goalAdjustment
	}

	return int(math.Round(calories))
}
