package nutrition

import (
	"fmt"
	"math"
)

// MinRecommendedCalories is the floor applied to every recommended daily
// calorie target.
const MinRecommendedCalories = 1200.0

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels.
var activityMultipliers = map[Activity]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// goalAdjustments is the daily kcal delta applied to TDEE for each goal.
var goalAdjustments = map[Goal]float64{
	Lose:     -500,
	Maintain: 0,
	Gain:     500,
}

// Energy holds the daily energy figures for a profile, in kcal.
type Energy struct {
	BMR                 float64 `json:"bmr"`
	TDEE                float64 `json:"tdee"`
	RecommendedCalories float64 `json:"recommended_calories"`
}

// ComputeEnergy computes BMR (Mifflin-St Jeor), TDEE and the goal-adjusted
// recommended calories for p. Values are left unrounded so downstream
// aggregation does not compound rounding error; use Rounded for display.
func ComputeEnergy(p Profile) (Energy, error) {
	bmr, err := BMR(p)
	if err != nil {
		return Energy{}, err
	}

	mult, ok := activityMultipliers[p.Activity]
	if !ok {
		return Energy{}, fmt.Errorf("%w: unknown activity %q", ErrInvalidProfile, p.Activity)
	}
	tdee := bmr * mult

	delta, ok := goalAdjustments[p.Goal]
	if !ok {
		return Energy{}, fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	}
	recommended := math.Max(tdee+delta, MinRecommendedCalories)

	return Energy{BMR: bmr, TDEE: tdee, RecommendedCalories: recommended}, nil
}

// BMR returns the Mifflin-St Jeor basal metabolic rate for p.
func BMR(p Profile) (float64, error) {
	if p.Age < 0 {
		return 0, fmt.Errorf("%w: age must be >= 0", ErrInvalidProfile)
	}
	if p.WeightKG <= 0 {
		return 0, fmt.Errorf("%w: weight_kg must be positive", ErrInvalidProfile)
	}
	if p.HeightCM <= 0 {
		return 0, fmt.Errorf("%w: height_cm must be positive", ErrInvalidProfile)
	}

	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Sex {
	case Male:
		bmr += 5
	case Female:
		bmr -= 161
	default:
		return 0, fmt.Errorf("%w: unknown sex %q", ErrInvalidProfile, p.Sex)
	}
	return bmr, nil
}

// Rounded returns e with every figure rounded to the nearest whole kcal.
func (e Energy) Rounded() Energy {
	return Energy{
		BMR:                 math.Round(e.BMR),
		TDEE:                math.Round(e.TDEE),
		RecommendedCalories: math.Round(e.RecommendedCalories),
	}
}
