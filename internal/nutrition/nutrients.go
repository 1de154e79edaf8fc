package nutrition

import (
	"fmt"
	"math"
)

// NutrientAmount is an absolute quantity of energy and macronutrients.
type NutrientAmount struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbG    float64 `json:"carb_g"`
}

// AmountFor scales the per-100g densities of f to grams.
func AmountFor(f Food, grams float64) (NutrientAmount, error) {
	if !(grams > 0) {
		return NutrientAmount{}, fmt.Errorf("%w: grams must be positive, got %v", ErrInvalidQuantity, grams)
	}
	factor := grams / 100
	return NutrientAmount{
		Kcal:     f.Kcal100g * factor,
		ProteinG: f.Protein100g * factor,
		FatG:     f.Fat100g * factor,
		CarbG:    f.Carb100g * factor,
	}, nil
}

// Sum folds amounts left to right. An empty slice yields the zero amount.
func Sum(amounts []NutrientAmount) NutrientAmount {
	var total NutrientAmount
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func (a NutrientAmount) Add(b NutrientAmount) NutrientAmount {
	return NutrientAmount{
		Kcal:     a.Kcal + b.Kcal,
		ProteinG: a.ProteinG + b.ProteinG,
		FatG:     a.FatG + b.FatG,
		CarbG:    a.CarbG + b.CarbG,
	}
}

// Rounded returns a with kcal rounded to a whole number and macros to one
// decimal place. Only call this when presenting a result.
func (a NutrientAmount) Rounded() NutrientAmount {
	return NutrientAmount{
		Kcal:     math.Round(a.Kcal),
		ProteinG: round1(a.ProteinG),
		FatG:     round1(a.FatG),
		CarbG:    round1(a.CarbG),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
