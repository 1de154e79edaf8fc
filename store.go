package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/nutri-go-api/internal/logger"
	"lg/nutri-go-api/internal/nutrition"
)

var (
	errMealNotFound  = errors.New("meal not found")
	errAlreadyExists = errors.New("already exists")
)

// store is the repository gateway the handlers read and write through.
// Lookups by id return nutrition.ErrUnknownUser, nutrition.ErrMissingFood or
// errMealNotFound when the row does not exist.
type store interface {
	GetUserProfile(ctx context.Context, id int) (user, error)
	GetUserByName(ctx context.Context, name string) (user, error)
	ListUsers(ctx context.Context) ([]user, error)
	CreateUser(ctx context.Context, u user) (user, error)

	GetFood(ctx context.Context, id int) (food, error)
	ListFoods(ctx context.Context, mealType *nutrition.MealType) ([]food, error)
	CreateFood(ctx context.Context, f food) (food, error)

	GetMeal(ctx context.Context, id int) (meal, error)
	ListMealsForUser(ctx context.Context, userID int) ([]meal, error)
	CreateMeal(ctx context.Context, m meal) (meal, error)
}

// pgStore implements store on a PostgreSQL connection pool.
type pgStore struct {
	db *pgxpool.Pool
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		logger.Error("query failed", zap.String("fn", "queryOne"), zap.Error(err))
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error("scan failed", zap.String("fn", "queryOne"), zap.Error(err))
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		logger.Error("query failed", zap.String("fn", "queryMany"), zap.Error(err))
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		logger.Error("scan failed", zap.String("fn", "queryMany"), zap.Error(err))
	}
	return results, err
}

// notFound swaps pgx.ErrNoRows for the caller's sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}

// uniqueViolation maps a PostgreSQL unique_violation to errAlreadyExists.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errAlreadyExists
	}
	return err
}

/* ─── Users ──────────────────────────────────────────────────────────── */

func (s *pgStore) GetUserProfile(ctx context.Context, id int) (user, error) {
	u, err := queryOne[user](ctx, s.db,
		"SELECT * FROM users WHERE id = @id",
		pgx.NamedArgs{"id": id})
	return u, notFound(err, nutrition.ErrUnknownUser)
}

func (s *pgStore) GetUserByName(ctx context.Context, name string) (user, error) {
	u, err := queryOne[user](ctx, s.db,
		"SELECT * FROM users WHERE name = @name",
		pgx.NamedArgs{"name": name})
	return u, notFound(err, nutrition.ErrUnknownUser)
}

func (s *pgStore) ListUsers(ctx context.Context) ([]user, error) {
	return queryMany[user](ctx, s.db, "SELECT * FROM users ORDER BY id", nil)
}

func (s *pgStore) CreateUser(ctx context.Context, u user) (user, error) {
	created, err := queryOne[user](ctx, s.db,
		`INSERT INTO users (name, sex, age, weight_kg, height_cm, activity, goal)
		 VALUES (@name, @sex, @age, @weightKG, @heightCM, @activity, @goal)
		 RETURNING *`,
		pgx.NamedArgs{
			"name": u.Name, "sex": u.Sex, "age": u.Age,
			"weightKG": u.WeightKG, "heightCM": u.HeightCM,
			"activity": u.Activity, "goal": u.Goal,
		})
	return created, uniqueViolation(err)
}

/* ─── Foods ──────────────────────────────────────────────────────────── */

func (s *pgStore) GetFood(ctx context.Context, id int) (food, error) {
	f, err := queryOne[food](ctx, s.db,
		"SELECT * FROM foods WHERE id = @id",
		pgx.NamedArgs{"id": id})
	return f, notFound(err, nutrition.ErrMissingFood)
}

// ListFoods returns the catalog ordered by id. A non-nil mealType keeps only
// foods tagged with exactly that meal type.
func (s *pgStore) ListFoods(ctx context.Context, mealType *nutrition.MealType) ([]food, error) {
	if mealType == nil {
		return queryMany[food](ctx, s.db, "SELECT * FROM foods ORDER BY id", nil)
	}
	return queryMany[food](ctx, s.db,
		"SELECT * FROM foods WHERE meal_type = @mealType ORDER BY id",
		pgx.NamedArgs{"mealType": string(*mealType)})
}

func (s *pgStore) CreateFood(ctx context.Context, f food) (food, error) {
	created, err := queryOne[food](ctx, s.db,
		`INSERT INTO foods (name, meal_type, kcal_100g, protein_100g, fat_100g, carb_100g)
		 VALUES (@name, @mealType, @kcal, @protein, @fat, @carb)
		 RETURNING *`,
		pgx.NamedArgs{
			"name": f.Name, "mealType": f.MealType,
			"kcal": f.Kcal100g, "protein": f.Protein100g,
			"fat": f.Fat100g, "carb": f.Carb100g,
		})
	return created, uniqueViolation(err)
}

/* ─── Meals ──────────────────────────────────────────────────────────── */

func (s *pgStore) GetMeal(ctx context.Context, id int) (meal, error) {
	m, err := queryOne[meal](ctx, s.db,
		"SELECT * FROM meals WHERE id = @id",
		pgx.NamedArgs{"id": id})
	return m, notFound(err, errMealNotFound)
}

// ListMealsForUser returns the user's meals in insertion order.
func (s *pgStore) ListMealsForUser(ctx context.Context, userID int) ([]meal, error) {
	return queryMany[meal](ctx, s.db,
		"SELECT * FROM meals WHERE user_id = @userID ORDER BY id",
		pgx.NamedArgs{"userID": userID})
}

// CreateMeal inserts a meal. Callers check that the user and food exist; the
// foreign keys are the backstop.
func (s *pgStore) CreateMeal(ctx context.Context, m meal) (meal, error) {
	return queryOne[meal](ctx, s.db,
		`INSERT INTO meals (user_id, food_id, grams)
		 VALUES (@userID, @foodID, @grams)
		 RETURNING *`,
		pgx.NamedArgs{"userID": m.UserID, "foodID": m.FoodID, "grams": m.Grams})
}
