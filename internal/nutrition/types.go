// Package nutrition is the computation engine behind the API: energy targets
// from a user profile, nutrient aggregation over logged meals, daily
// summaries, meal-plan generation and food recommendations.
//
// Every function here is pure. Inputs are read, never mutated or retained,
// and no function performs I/O.
package nutrition

import (
	"fmt"
	"strings"
)

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Activity is the self-reported activity level; each maps to a fixed TDEE
// multiplier in activityMultipliers.
type Activity string

const (
	Sedentary  Activity = "sedentary"
	Light      Activity = "light"
	Moderate   Activity = "moderate"
	Active     Activity = "active"
	VeryActive Activity = "very_active"
)

type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists the valid meal types in day order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Profile is the physiological profile energy targets are computed from.
type Profile struct {
	ID       int      `json:"id"`
	Sex      Sex      `json:"sex"`
	Age      int      `json:"age"`
	WeightKG float64  `json:"weight_kg"`
	HeightCM float64  `json:"height_cm"`
	Activity Activity `json:"activity"`
	Goal     Goal     `json:"goal"`
}

// Food is a catalog entry. Nutrient values are densities per 100 g.
// A nil MealType means the food may be served at any meal.
type Food struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	MealType    *MealType `json:"meal_type"`
	Kcal100g    float64   `json:"kcal_100g"`
	Protein100g float64   `json:"protein_100g"`
	Fat100g     float64   `json:"fat_100g"`
	Carb100g    float64   `json:"carb_100g"`
}

// MealEntry is one logged portion of a food.
type MealEntry struct {
	ID     int     `json:"id"`
	UserID int     `json:"user_id"`
	FoodID int     `json:"food_id"`
	Grams  float64 `json:"grams"`
}

// Catalog is a snapshot of foods keyed by id.
type Catalog map[int]Food

// NewCatalog indexes foods by id. Later duplicates win.
func NewCatalog(foods []Food) Catalog {
	c := make(Catalog, len(foods))
	for _, f := range foods {
		c[f.ID] = f
	}
	return c
}

func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", fmt.Errorf("%w: sex must be one of: male, female", ErrInvalidProfile)
}

func ParseActivity(s string) (Activity, error) {
	a := Activity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := activityMultipliers[a]; !ok {
		return "", fmt.Errorf("%w: activity must be one of: sedentary, light, moderate, active, very_active", ErrInvalidProfile)
	}
	return a, nil
}

func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := goalAdjustments[g]; !ok {
		return "", fmt.Errorf("%w: goal must be one of: lose, maintain, gain", ErrInvalidProfile)
	}
	return g, nil
}

// ParseMealType accepts one of MealTypes. The returned error is not wrapped
// in an engine kind; meal types are validated by whoever owns the input.
func ParseMealType(s string) (MealType, error) {
	m := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("meal_type must be one of: breakfast, lunch, dinner, snack")
	}
	return m, nil
}

func (m MealType) Valid() bool {
	for _, v := range MealTypes {
		if m == v {
			return true
		}
	}
	return false
}
