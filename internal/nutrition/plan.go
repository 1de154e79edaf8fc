package nutrition

import (
	"fmt"
	"math"
)

// PlanTolerance is the maximum relative gap between a plan's total calories
// and the recommended target. Unrounded plans hit the target up to float
// error; after Rounded each item contributes at most 0.5 kcal of drift.
const PlanTolerance = 0.05

// FoodsByMealType partitions a catalog by meal type. Foods with no meal type
// live under the empty key and are eligible for any meal.
type FoodsByMealType map[MealType][]Food

// unrestricted is the FoodsByMealType key for foods with no meal type.
const unrestricted MealType = ""

// GroupByMealType partitions foods, preserving their relative order.
func GroupByMealType(foods []Food) FoodsByMealType {
	g := make(FoodsByMealType)
	for _, f := range foods {
		key := unrestricted
		if f.MealType != nil {
			key = *f.MealType
		}
		g[key] = append(g[key], f)
	}
	return g
}

// PlanItem is one sized portion of a generated meal plan.
type PlanItem struct {
	MealName string  `json:"meal_name"`
	FoodID   int     `json:"food_id"`
	FoodName string  `json:"food_name"`
	Grams    float64 `json:"grams"`
	NutrientAmount
}

// Plan is a full day of meals sized to the recommended calorie target.
type Plan struct {
	UserID              int        `json:"user_id"`
	RecommendedCalories float64    `json:"recommended_calories"`
	Meals               []PlanItem `json:"meals"`
}

// GeneratePlan builds a one-food-per-meal plan for p. Each policy share gets
// its fraction of the recommended calories, served by the eligible food with
// the smallest id, sized in grams to hit that fraction exactly.
//
// Foods tagged with the meal type are eligible; when there are none, the
// unrestricted foods are. Zero-calorie foods cannot be sized to a calorie
// target and are skipped; if only such foods are eligible the plan fails with
// ErrInvalidFoodDensity.
func GeneratePlan(p Profile, foods FoodsByMealType, policy Policy) (Plan, error) {
	if err := policy.Validate(); err != nil {
		return Plan{}, err
	}
	energy, err := ComputeEnergy(p)
	if err != nil {
		return Plan{}, err
	}

	items := make([]PlanItem, 0, len(policy.Meals))
	for _, share := range policy.Meals {
		target := energy.RecommendedCalories * share.Weight

		food, err := pickFood(share.MealType, foods)
		if err != nil {
			return Plan{}, err
		}

		grams := target * 100 / food.Kcal100g
		amount, err := AmountFor(food, grams)
		if err != nil {
			return Plan{}, fmt.Errorf("%s: %w", share.MealType, err)
		}
		items = append(items, PlanItem{
			MealName:       share.label(),
			FoodID:         food.ID,
			FoodName:       food.Name,
			Grams:          grams,
			NutrientAmount: amount,
		})
	}

	return Plan{
		UserID:              p.ID,
		RecommendedCalories: energy.RecommendedCalories,
		Meals:               items,
	}, nil
}

// pickFood returns the smallest-id food with a positive calorie density from
// the pool eligible for mealType.
func pickFood(mealType MealType, foods FoodsByMealType) (Food, error) {
	pool := foods[mealType]
	if len(pool) == 0 {
		pool = foods[unrestricted]
	}
	if len(pool) == 0 {
		return Food{}, fmt.Errorf("%w: no foods available for %q", ErrNoFoodForCategory, mealType)
	}

	var best *Food
	for i := range pool {
		f := &pool[i]
		if !(f.Kcal100g > 0) {
			continue
		}
		if best == nil || f.ID < best.ID {
			best = f
		}
	}
	if best == nil {
		return Food{}, fmt.Errorf("%w: every food for %q has kcal_100g == 0", ErrInvalidFoodDensity, mealType)
	}
	return *best, nil
}

// TotalCalories sums the kcal of every item in the plan.
func (p Plan) TotalCalories() float64 {
	var total float64
	for _, it := range p.Meals {
		total += it.Kcal
	}
	return total
}

// WithinTolerance reports whether the plan's total calories lie within
// PlanTolerance of the recommended target.
func (p Plan) WithinTolerance() bool {
	if p.RecommendedCalories <= 0 {
		return false
	}
	return math.Abs(p.TotalCalories()-p.RecommendedCalories)/p.RecommendedCalories <= PlanTolerance
}

// Rounded returns a copy of p ready for presentation: whole kcal, grams and
// macros to one decimal.
func (p Plan) Rounded() Plan {
	items := make([]PlanItem, len(p.Meals))
	for i, it := range p.Meals {
		items[i] = PlanItem{
			MealName:       it.MealName,
			FoodID:         it.FoodID,
			FoodName:       it.FoodName,
			Grams:          round1(it.Grams),
			NutrientAmount: it.NutrientAmount.Rounded(),
		}
	}
	return Plan{
		UserID:              p.UserID,
		RecommendedCalories: math.Round(p.RecommendedCalories),
		Meals:               items,
	}
}
