package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/nutri-go-api/internal/nutrition"
)

// defaultRecommendations is how many foods /foods/recommendations returns
// when k is omitted.
const defaultRecommendations = 5

// listFoods returns the catalog, optionally filtered by meal type.
// GET /api/foods?meal_type=breakfast and GET /api/admin/foods.
func (h *Handler) listFoods(c *gin.Context) {
	var filter *nutrition.MealType
	if s := c.Query("meal_type"); s != "" {
		mt, err := nutrition.ParseMealType(s)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter = &mt
	}

	foods, err := h.store.ListFoods(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if foods == nil {
		foods = []food{}
	}
	c.JSON(http.StatusOK, foods)
}

// createFood adds a food to the catalog.
// POST /api/admin/foods. An absent or empty meal_type stores NULL, making the
// food eligible for any meal.
func (h *Handler) createFood(c *gin.Context) {
	var body createFoodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}

	var mealType *string
	if body.MealType != nil && strings.TrimSpace(*body.MealType) != "" {
		mt, err := nutrition.ParseMealType(*body.MealType)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		s := string(mt)
		mealType = &s
	}

	f, err := h.store.CreateFood(c.Request.Context(), food{
		Name:        body.Name,
		MealType:    mealType,
		Kcal100g:    *body.Kcal100g,
		Protein100g: *body.Protein100g,
		Fat100g:     *body.Fat100g,
		Carb100g:    *body.Carb100g,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// getRecommendations ranks catalog foods by closeness to a target nutrient
// density per 100 g.
// GET /api/foods/recommendations?target_kcal_100g=&target_protein_100g=&target_fat_100g=&target_carb_100g=&k=
func (h *Handler) getRecommendations(c *gin.Context) {
	var q recommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apiError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	k := defaultRecommendations
	if q.K != nil {
		k = *q.K
	}

	foods, err := h.store.ListFoods(c.Request.Context(), nil)
	if err != nil {
		writeError(c, err)
		return
	}

	recs, err := nutrition.Recommend(toNutritionFoods(foods), nutrition.Density{
		Kcal100g:    q.Kcal100g,
		Protein100g: *q.Protein100g,
		Fat100g:     *q.Fat100g,
		Carb100g:    *q.Carb100g,
	}, k)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
