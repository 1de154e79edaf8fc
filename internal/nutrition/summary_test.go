package nutrition

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestBuildSummary_EmptyLog(t *testing.T) {
	s, err := BuildSummary(makeProfile(), nil, Catalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalMealCalories != 0 {
		t.Errorf("total = %v, want 0", s.TotalMealCalories)
	}
	if s.Meals == nil || len(s.Meals) != 0 {
		t.Errorf("meals = %#v, want empty non-nil slice", s.Meals)
	}

	// Empty logs must serialize as [] rather than null.
	b, err := json.Marshal(s.Rounded())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["meals"]) != "[]" {
		t.Errorf("meals JSON = %s, want []", raw["meals"])
	}
}

// TestBuildSummary_RowsInInputOrder verifies rows follow the input sequence
// (not meal id or food id) and the total is the sum of row kcal.
func TestBuildSummary_RowsInInputOrder(t *testing.T) {
	catalog := NewCatalog([]Food{
		{ID: 1, Name: "Oats", Kcal100g: 389, Protein100g: 16.9, Fat100g: 6.9, Carb100g: 66.3},
		{ID: 2, Name: "Chicken", Kcal100g: 165, Protein100g: 31, Fat100g: 3.6, Carb100g: 0},
	})
	meals := []MealEntry{
		{ID: 30, UserID: 1, FoodID: 2, Grams: 200},
		{ID: 10, UserID: 1, FoodID: 1, Grams: 50},
		{ID: 20, UserID: 1, FoodID: 2, Grams: 100},
	}

	s, err := BuildSummary(makeProfile(), meals, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != 1 {
		t.Errorf("user_id = %d, want 1", s.UserID)
	}
	if math.Abs(s.RecommendedCalories-2759) > 1e-9 {
		t.Errorf("recommended = %v, want 2759", s.RecommendedCalories)
	}

	wantIDs := []int{30, 10, 20}
	wantNames := []string{"Chicken", "Oats", "Chicken"}
	if len(s.Meals) != len(wantIDs) {
		t.Fatalf("got %d rows, want %d", len(s.Meals), len(wantIDs))
	}
	var total float64
	for i, row := range s.Meals {
		if row.MealID != wantIDs[i] || row.FoodName != wantNames[i] {
			t.Errorf("row %d = (%d, %s), want (%d, %s)", i, row.MealID, row.FoodName, wantIDs[i], wantNames[i])
		}
		total += row.Kcal
	}
	if math.Abs(s.TotalMealCalories-total) > 1e-9 {
		t.Errorf("total = %v, want sum of rows %v", s.TotalMealCalories, total)
	}
	if math.Abs(s.TotalMealCalories-(330+194.5+165)) > 1e-9 {
		t.Errorf("total = %v, want 689.5", s.TotalMealCalories)
	}
}

func TestBuildSummary_MissingFood(t *testing.T) {
	meals := []MealEntry{{ID: 1, UserID: 1, FoodID: 99, Grams: 100}}
	_, err := BuildSummary(makeProfile(), meals, Catalog{})
	if !errors.Is(err, ErrMissingFood) {
		t.Errorf("expected ErrMissingFood, got %v", err)
	}
}

func TestBuildSummary_InvalidProfile(t *testing.T) {
	p := makeProfile()
	p.HeightCM = 0
	if _, err := BuildSummary(p, nil, Catalog{}); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestBuildSummary_InvalidQuantity(t *testing.T) {
	catalog := NewCatalog([]Food{sampleFood()})
	meals := []MealEntry{{ID: 1, FoodID: sampleFood().ID, Grams: 0}}
	if _, err := BuildSummary(makeProfile(), meals, catalog); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSummarizeMeal(t *testing.T) {
	f := sampleFood()
	m := MealEntry{ID: 3, UserID: 4, FoodID: f.ID, Grams: 150}
	s, err := SummarizeMeal(m, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MealID != 3 || s.UserID != 4 || s.FoodID != f.ID || s.Grams != 150 {
		t.Errorf("identity fields = %+v", s)
	}
	if !approxEqual(s.NutrientAmount, NutrientAmount{Kcal: 300, ProteinG: 15, FatG: 7.5, CarbG: 30}, 1e-9) {
		t.Errorf("amount = %+v", s.NutrientAmount)
	}

	other := f
	other.ID = f.ID + 1
	if _, err := SummarizeMeal(m, other); !errors.Is(err, ErrMissingFood) {
		t.Errorf("expected ErrMissingFood for mismatched food, got %v", err)
	}
}
