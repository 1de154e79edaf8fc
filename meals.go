package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"lg/nutri-go-api/internal/nutrition"
)

// createMeal logs a portion of a catalog food for a user.
// POST /api/meals. Both the user and the food must exist.
func (h *Handler) createMeal(c *gin.Context) {
	var body createMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		_, err := h.store.GetUserProfile(ctx, body.UserID)
		return err
	})
	g.Go(func() error {
		_, err := h.store.GetFood(ctx, body.FoodID)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(c, err)
		return
	}

	m, err := h.store.CreateMeal(c.Request.Context(), meal{
		UserID: body.UserID,
		FoodID: body.FoodID,
		Grams:  body.Grams,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// getMealSummary returns the nutrients of one logged meal.
// GET /api/meals/:id/summary.
func (h *Handler) getMealSummary(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := h.store.GetMeal(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	f, err := h.store.GetFood(c.Request.Context(), m.FoodID)
	if err != nil {
		writeError(c, err)
		return
	}

	summary, err := nutrition.SummarizeMeal(m.toEntry(), f.toNutrition())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.Rounded())
}
