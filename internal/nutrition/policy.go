package nutrition

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds how far policy weights may drift from summing to 1.
const weightSumTolerance = 1e-6

// MealShare assigns a fraction of the daily calorie target to one meal.
type MealShare struct {
	MealType MealType `yaml:"meal_type" json:"meal_type"`
	Label    string   `yaml:"label" json:"label"`
	Weight   float64  `yaml:"weight" json:"weight"`
}

// Policy configures the plan generator. Shares are planned in order.
type Policy struct {
	Meals []MealShare `yaml:"meals" json:"meals"`
}

// DefaultPolicy splits the day 25/35/30/10 across breakfast, lunch, dinner
// and snack.
func DefaultPolicy() Policy {
	return Policy{Meals: []MealShare{
		{MealType: Breakfast, Label: "Breakfast", Weight: 0.25},
		{MealType: Lunch, Label: "Lunch", Weight: 0.35},
		{MealType: Dinner, Label: "Dinner", Weight: 0.30},
		{MealType: Snack, Label: "Snack", Weight: 0.10},
	}}
}

// Validate checks that every share names a distinct known meal type with a
// positive weight and that the weights sum to 1.
func (p Policy) Validate() error {
	if len(p.Meals) == 0 {
		return fmt.Errorf("%w: no meals configured", ErrInvalidPolicy)
	}
	seen := make(map[MealType]bool, len(p.Meals))
	var total float64
	for _, m := range p.Meals {
		if !m.MealType.Valid() {
			return fmt.Errorf("%w: unknown meal_type %q", ErrInvalidPolicy, m.MealType)
		}
		if seen[m.MealType] {
			return fmt.Errorf("%w: meal_type %q listed twice", ErrInvalidPolicy, m.MealType)
		}
		seen[m.MealType] = true
		if !(m.Weight > 0) {
			return fmt.Errorf("%w: weight for %q must be positive", ErrInvalidPolicy, m.MealType)
		}
		total += m.Weight
	}
	if math.Abs(total-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidPolicy, total)
	}
	return nil
}

// label falls back to the meal type when no display label is configured.
func (m MealShare) label() string {
	if m.Label != "" {
		return m.Label
	}
	return string(m.MealType)
}
