package nutrition

import (
	"errors"
	"math"
	"testing"
)

func TestRecommend_NearestFirst(t *testing.T) {
	foods := []Food{
		{ID: 1, Name: "Butter", Kcal100g: 717, Protein100g: 0.9, Fat100g: 81, Carb100g: 0.1},
		{ID: 2, Name: "Chicken", Kcal100g: 165, Protein100g: 31, Fat100g: 3.6},
		{ID: 3, Name: "Turkey", Kcal100g: 160, Protein100g: 29, Fat100g: 4},
		{ID: 4, Name: "Rice", Kcal100g: 130, Protein100g: 2.7, Fat100g: 0.3, Carb100g: 28},
	}
	recs, err := Recommend(foods, Density{Kcal100g: 165, Protein100g: 31, Fat100g: 3.6}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].ID != 2 || recs[0].Distance != 0 {
		t.Errorf("first = %+v, want exact match Chicken", recs[0])
	}
	if recs[1].ID != 3 {
		t.Errorf("second = %+v, want Turkey", recs[1])
	}
	want := math.Sqrt(5*5 + 2*2 + 0.4*0.4)
	if math.Abs(recs[1].Distance-want) > 1e-9 {
		t.Errorf("distance = %v, want %v", recs[1].Distance, want)
	}
}

// TestRecommend_ClampsK verifies k outside [1, len(foods)] is clamped.
func TestRecommend_ClampsK(t *testing.T) {
	foods := []Food{{ID: 1, Kcal100g: 100}, {ID: 2, Kcal100g: 200}}
	target := Density{Kcal100g: 150}

	recs, err := Recommend(foods, target, 50)
	if err != nil || len(recs) != 2 {
		t.Errorf("k=50: got %d, %v; want 2 results", len(recs), err)
	}
	recs, err = Recommend(foods, target, 0)
	if err != nil || len(recs) != 1 {
		t.Errorf("k=0: got %d, %v; want 1 result", len(recs), err)
	}
	// Both foods are 50 away; the tie goes to the smaller id.
	if recs[0].ID != 1 {
		t.Errorf("tie-break picked id %d, want 1", recs[0].ID)
	}
}

func TestRecommend_Errors(t *testing.T) {
	if _, err := Recommend(nil, Density{Kcal100g: 100}, 5); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
	foods := []Food{{ID: 1, Kcal100g: 100}}
	if _, err := Recommend(foods, Density{Kcal100g: 0}, 5); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget for zero kcal, got %v", err)
	}
	if _, err := Recommend(foods, Density{Kcal100g: 100, Fat100g: -1}, 5); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget for negative fat, got %v", err)
	}
}

func TestRecommend_DoesNotReorderInput(t *testing.T) {
	foods := []Food{{ID: 3, Kcal100g: 300}, {ID: 1, Kcal100g: 100}, {ID: 2, Kcal100g: 200}}
	if _, err := Recommend(foods, Density{Kcal100g: 100}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if foods[0].ID != 3 || foods[1].ID != 1 || foods[2].ID != 2 {
		t.Errorf("input reordered: %+v", foods)
	}
}
