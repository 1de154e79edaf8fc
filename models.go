package main

import (
	"time"

	"lg/nutri-go-api/internal/nutrition"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table: a named physiological profile.
type user struct {
	ID        int        `json:"id"         db:"id"`
	Name      string     `json:"name"       db:"name"`
	Sex       string     `json:"sex"        db:"sex"`
	Age       int        `json:"age"        db:"age"`
	WeightKG  float64    `json:"weight_kg"  db:"weight_kg"`
	HeightCM  float64    `json:"height_cm"  db:"height_cm"`
	Activity  string     `json:"activity"   db:"activity"`
	Goal      string     `json:"goal"       db:"goal"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

func (u user) profile() nutrition.Profile {
	return nutrition.Profile{
		ID:       u.ID,
		Sex:      nutrition.Sex(u.Sex),
		Age:      u.Age,
		WeightKG: u.WeightKG,
		HeightCM: u.HeightCM,
		Activity: nutrition.Activity(u.Activity),
		Goal:     nutrition.Goal(u.Goal),
	}
}

// food maps to the foods table. A NULL meal_type means the food can be served
// at any meal.
type food struct {
	ID          int        `json:"id"           db:"id"`
	Name        string     `json:"name"         db:"name"`
	MealType    *string    `json:"meal_type"    db:"meal_type"`
	Kcal100g    float64    `json:"kcal_100g"    db:"kcal_100g"`
	Protein100g float64    `json:"protein_100g" db:"protein_100g"`
	Fat100g     float64    `json:"fat_100g"     db:"fat_100g"`
	Carb100g    float64    `json:"carb_100g"    db:"carb_100g"`
	CreatedAt   *time.Time `json:"created_at"   db:"created_at"`
}

func (f food) toNutrition() nutrition.Food {
	var mt *nutrition.MealType
	if f.MealType != nil {
		m := nutrition.MealType(*f.MealType)
		mt = &m
	}
	return nutrition.Food{
		ID:          f.ID,
		Name:        f.Name,
		MealType:    mt,
		Kcal100g:    f.Kcal100g,
		Protein100g: f.Protein100g,
		Fat100g:     f.Fat100g,
		Carb100g:    f.Carb100g,
	}
}

func toNutritionFoods(foods []food) []nutrition.Food {
	out := make([]nutrition.Food, len(foods))
	for i, f := range foods {
		out[i] = f.toNutrition()
	}
	return out
}

// meal maps to the meals table: one logged portion of a food.
type meal struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	FoodID    int        `json:"food_id"    db:"food_id"`
	Grams     float64    `json:"grams"      db:"grams"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

func (m meal) toEntry() nutrition.MealEntry {
	return nutrition.MealEntry{ID: m.ID, UserID: m.UserID, FoodID: m.FoodID, Grams: m.Grams}
}

func toEntries(meals []meal) []nutrition.MealEntry {
	out := make([]nutrition.MealEntry, len(meals))
	for i, m := range meals {
		out[i] = m.toEntry()
	}
	return out
}

/* ─── Request bodies ─────────────────────────────────────────────────── */

// createUserRequest is the request body for POST /api/users. Enum fields are
// checked with the nutrition parsers after binding.
type createUserRequest struct {
	Name     string  `json:"name"      binding:"required"`
	Sex      string  `json:"sex"       binding:"required"`
	Age      *int    `json:"age"       binding:"required,gte=0"`
	WeightKG float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCM float64 `json:"height_cm" binding:"required,gt=0"`
	Activity string  `json:"activity"  binding:"required"`
	Goal     string  `json:"goal"      binding:"required"`
}

// createFoodRequest is the request body for POST /api/admin/foods. Pointer
// densities distinguish "missing" from a legitimate zero.
type createFoodRequest struct {
	Name        string   `json:"name"         binding:"required"`
	MealType    *string  `json:"meal_type"`
	Kcal100g    *float64 `json:"kcal_100g"    binding:"required,gte=0"`
	Protein100g *float64 `json:"protein_100g" binding:"required,gte=0"`
	Fat100g     *float64 `json:"fat_100g"     binding:"required,gte=0"`
	Carb100g    *float64 `json:"carb_100g"    binding:"required,gte=0"`
}

// createMealRequest is the request body for POST /api/meals.
type createMealRequest struct {
	UserID int     `json:"user_id" binding:"required,gt=0"`
	FoodID int     `json:"food_id" binding:"required,gt=0"`
	Grams  float64 `json:"grams"   binding:"required,gt=0"`
}

// recommendationQuery is the query string for GET /api/foods/recommendations.
type recommendationQuery struct {
	Kcal100g    float64  `form:"target_kcal_100g"    binding:"required,gt=0"`
	Protein100g *float64 `form:"target_protein_100g" binding:"required,gte=0"`
	Fat100g     *float64 `form:"target_fat_100g"     binding:"required,gte=0"`
	Carb100g    *float64 `form:"target_carb_100g"    binding:"required,gte=0"`
	K           *int     `form:"k"                   binding:"omitempty,min=1,max=50"`
}
