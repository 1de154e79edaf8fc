package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/nutri-go-api/internal/logger"
	"lg/nutri-go-api/internal/nutrition"
)

// Handler holds shared dependencies (repository, plan policy, admin secret)
// for all route handlers.
type Handler struct {
	store             store
	policy            nutrition.Policy
	adminPasswordHash []byte
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// writeError maps an error from the store or the nutrition engine to a
// status code. Unclassified errors are logged and reported as 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, nutrition.ErrInvalidProfile),
		errors.Is(err, nutrition.ErrInvalidQuantity),
		errors.Is(err, nutrition.ErrInvalidTarget):
		apiError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, nutrition.ErrUnknownUser):
		apiError(c, http.StatusNotFound, "user not found")
	case errors.Is(err, nutrition.ErrMissingFood):
		apiError(c, http.StatusNotFound, "food not found")
	case errors.Is(err, errMealNotFound):
		apiError(c, http.StatusNotFound, "meal not found")
	case errors.Is(err, errAlreadyExists):
		apiError(c, http.StatusConflict, "name already exists")
	case errors.Is(err, nutrition.ErrNoFoodForCategory),
		errors.Is(err, nutrition.ErrInvalidFoodDensity),
		errors.Is(err, nutrition.ErrEmptyCatalog):
		apiError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		apiError(c, http.StatusInternalServerError, "internal error")
	}
}

// paramID parses a positive integer path parameter. On failure it writes a
// 400 and returns ok=false.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		apiError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// hosted Postgres providers close idle connections.
func getDBPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// newRouter builds the gin engine with middleware and all API routes.
func (h *Handler) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(), gin.Recovery())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.GET("/auth/user", h.loginByName)

	api.POST("/users", h.createUser)
	api.GET("/users", h.listUsers)
	api.GET("/users/:id", h.getUser)
	api.GET("/users/:id/calories", h.getUserCalories)
	api.GET("/users/:id/summary", h.getDailySummary)
	api.GET("/users/:id/plan", h.getMealPlan)
	api.GET("/users/:id/meals", h.listUserMeals)

	api.GET("/foods", h.listFoods)
	api.GET("/foods/recommendations", h.getRecommendations)

	api.POST("/meals", h.createMeal)
	api.GET("/meals/:id/summary", h.getMealSummary)

	admin := api.Group("/admin", h.adminMiddleware())
	admin.GET("/users", h.listUsers)
	admin.GET("/foods", h.listFoods)
	admin.POST("/foods", h.createFood)
}
