package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"lg/nutri-go-api/internal/nutrition"
)

// createUser registers a new profile.
// POST /api/users. Enum fields are normalized to their canonical lowercase form.
func (h *Handler) createUser(c *gin.Context) {
	var body createUserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	sex, err := nutrition.ParseSex(body.Sex)
	if err != nil {
		writeError(c, err)
		return
	}
	activity, err := nutrition.ParseActivity(body.Activity)
	if err != nil {
		writeError(c, err)
		return
	}
	goal, err := nutrition.ParseGoal(body.Goal)
	if err != nil {
		writeError(c, err)
		return
	}

	u, err := h.store.CreateUser(c.Request.Context(), user{
		Name:     body.Name,
		Sex:      string(sex),
		Age:      *body.Age,
		WeightKG: body.WeightKG,
		HeightCM: body.HeightCM,
		Activity: string(activity),
		Goal:     string(goal),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// listUsers returns every profile.
// GET /api/users and GET /api/admin/users.
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	// Ensure an empty array (not null) in JSON
	if users == nil {
		users = []user{}
	}
	c.JSON(http.StatusOK, users)
}

// getUser returns one profile.
// GET /api/users/:id.
func (h *Handler) getUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.store.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// getUserCalories returns BMR, TDEE and the recommended daily calories,
// rounded to whole kcal.
// GET /api/users/:id/calories.
func (h *Handler) getUserCalories(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.store.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	energy, err := nutrition.ComputeEnergy(u.profile())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, energy.Rounded())
}

// getDailySummary compares the user's recommended calories with every meal
// they have logged.
// GET /api/users/:id/summary.
func (h *Handler) getDailySummary(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	// Profile, meals and catalog are independent reads; fetch them together.
	var (
		u     user
		meals []meal
		foods []food
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		u, err = h.store.GetUserProfile(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		meals, err = h.store.ListMealsForUser(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		foods, err = h.store.ListFoods(ctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(c, err)
		return
	}

	catalog := nutrition.NewCatalog(toNutritionFoods(foods))
	summary, err := nutrition.BuildSummary(u.profile(), toEntries(meals), catalog)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.Rounded())
}

// getMealPlan generates a one-day meal plan sized to the user's recommended
// calories from the current catalog.
// GET /api/users/:id/plan.
func (h *Handler) getMealPlan(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var (
		u     user
		foods []food
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		u, err = h.store.GetUserProfile(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		foods, err = h.store.ListFoods(ctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(c, err)
		return
	}

	byMeal := nutrition.GroupByMealType(toNutritionFoods(foods))
	plan, err := nutrition.GeneratePlan(u.profile(), byMeal, h.policy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan.Rounded())
}

// listUserMeals returns the user's logged meals in insertion order.
// GET /api/users/:id/meals.
func (h *Handler) listUserMeals(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetUserProfile(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	meals, err := h.store.ListMealsForUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if meals == nil {
		meals = []meal{}
	}
	c.JSON(http.StatusOK, meals)
}
