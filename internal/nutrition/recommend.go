package nutrition

import (
	"fmt"
	"math"
	"sort"
)

// Density is a target nutrient profile per 100 g.
type Density struct {
	Kcal100g    float64 `json:"kcal_100g"`
	Protein100g float64 `json:"protein_100g"`
	Fat100g     float64 `json:"fat_100g"`
	Carb100g    float64 `json:"carb_100g"`
}

// Recommendation is a catalog food ranked by its distance to a target density.
type Recommendation struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Kcal100g    float64 `json:"kcal_100g"`
	Protein100g float64 `json:"protein_100g"`
	Fat100g     float64 `json:"fat_100g"`
	Carb100g    float64 `json:"carb_100g"`
	Distance    float64 `json:"distance"`
}

// Recommend returns the k foods nearest to target by Euclidean distance over
// (kcal, protein, fat, carb) per 100 g. k is clamped to [1, len(foods)].
// Ties are broken by id so the result is deterministic.
func Recommend(foods []Food, target Density, k int) ([]Recommendation, error) {
	if len(foods) == 0 {
		return nil, ErrEmptyCatalog
	}
	if !(target.Kcal100g > 0) {
		return nil, fmt.Errorf("%w: kcal_100g must be positive", ErrInvalidTarget)
	}
	if target.Protein100g < 0 || target.Fat100g < 0 || target.Carb100g < 0 {
		return nil, fmt.Errorf("%w: macros must be non-negative", ErrInvalidTarget)
	}
	k = max(1, min(k, len(foods)))

	recs := make([]Recommendation, len(foods))
	for i, f := range foods {
		recs[i] = Recommendation{
			ID:          f.ID,
			Name:        f.Name,
			Kcal100g:    f.Kcal100g,
			Protein100g: f.Protein100g,
			Fat100g:     f.Fat100g,
			Carb100g:    f.Carb100g,
			Distance:    distance(f, target),
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Distance != recs[j].Distance {
			return recs[i].Distance < recs[j].Distance
		}
		return recs[i].ID < recs[j].ID
	})
	return recs[:k], nil
}

func distance(f Food, t Density) float64 {
	dk := f.Kcal100g - t.Kcal100g
	dp := f.Protein100g - t.Protein100g
	df := f.Fat100g - t.Fat100g
	dc := f.Carb100g - t.Carb100g
	return math.Sqrt(dk*dk + dp*dp + df*df + dc*dc)
}
