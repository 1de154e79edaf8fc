package nutrition

import (
	"fmt"
	"math"
)

// MealRow is one logged meal with its derived nutrients.
type MealRow struct {
	MealID   int     `json:"meal_id"`
	FoodName string  `json:"food_name"`
	Grams    float64 `json:"grams"`
	NutrientAmount
}

// DailySummary compares a user's recommended intake with what they logged.
type DailySummary struct {
	UserID              int       `json:"user_id"`
	BMR                 float64   `json:"bmr"`
	TDEE                float64   `json:"tdee"`
	RecommendedCalories float64   `json:"recommended_calories"`
	TotalMealCalories   float64   `json:"total_meal_calories"`
	Meals               []MealRow `json:"meals"`
}

// MealSummary describes a single logged meal.
type MealSummary struct {
	MealID int     `json:"meal_id"`
	UserID int     `json:"user_id"`
	FoodID int     `json:"food_id"`
	Grams  float64 `json:"grams"`
	NutrientAmount
}

// BuildSummary computes the energy targets for p and one row per meal, in
// input order. Every meal's food must be present in catalog.
func BuildSummary(p Profile, meals []MealEntry, catalog Catalog) (DailySummary, error) {
	energy, err := ComputeEnergy(p)
	if err != nil {
		return DailySummary{}, err
	}

	rows := make([]MealRow, 0, len(meals))
	amounts := make([]NutrientAmount, 0, len(meals))
	for _, m := range meals {
		food, ok := catalog[m.FoodID]
		if !ok {
			return DailySummary{}, fmt.Errorf("%w: meal %d references food %d", ErrMissingFood, m.ID, m.FoodID)
		}
		amount, err := AmountFor(food, m.Grams)
		if err != nil {
			return DailySummary{}, fmt.Errorf("meal %d: %w", m.ID, err)
		}
		rows = append(rows, MealRow{
			MealID:         m.ID,
			FoodName:       food.Name,
			Grams:          m.Grams,
			NutrientAmount: amount,
		})
		amounts = append(amounts, amount)
	}

	return DailySummary{
		UserID:              p.ID,
		BMR:                 energy.BMR,
		TDEE:                energy.TDEE,
		RecommendedCalories: energy.RecommendedCalories,
		TotalMealCalories:   Sum(amounts).Kcal,
		Meals:               rows,
	}, nil
}

// SummarizeMeal derives the nutrients of a single logged meal.
func SummarizeMeal(m MealEntry, f Food) (MealSummary, error) {
	if m.FoodID != f.ID {
		return MealSummary{}, fmt.Errorf("%w: meal %d references food %d", ErrMissingFood, m.ID, m.FoodID)
	}
	amount, err := AmountFor(f, m.Grams)
	if err != nil {
		return MealSummary{}, err
	}
	return MealSummary{
		MealID:         m.ID,
		UserID:         m.UserID,
		FoodID:         m.FoodID,
		Grams:          m.Grams,
		NutrientAmount: amount,
	}, nil
}

// Rounded returns a copy of s ready for presentation.
func (s DailySummary) Rounded() DailySummary {
	e := Energy{BMR: s.BMR, TDEE: s.TDEE, RecommendedCalories: s.RecommendedCalories}.Rounded()
	rows := make([]MealRow, len(s.Meals))
	for i, r := range s.Meals {
		rows[i] = MealRow{
			MealID:         r.MealID,
			FoodName:       r.FoodName,
			Grams:          round1(r.Grams),
			NutrientAmount: r.NutrientAmount.Rounded(),
		}
	}
	return DailySummary{
		UserID:              s.UserID,
		BMR:                 e.BMR,
		TDEE:                e.TDEE,
		RecommendedCalories: e.RecommendedCalories,
		TotalMealCalories:   math.Round(s.TotalMealCalories),
		Meals:               rows,
	}
}

func (s MealSummary) Rounded() MealSummary {
	s.Grams = round1(s.Grams)
	s.NutrientAmount = s.NutrientAmount.Rounded()
	return s
}
