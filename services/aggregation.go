package services

import "backend/models"

// Atwater calorie factors, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Calories is the single source of truth for a meal's calorie figure. A
// positive predicted value is used verbatim; zero or negative means the
// prediction service omitted the field and the value is derived from the
// macros. Totals are always sums of these per-meal figures and are never
// re-derived from macros at read time.
func Calories(protein, carbs, fats, provided float64) float64 {
	if provided > 0 {
		return provided
	}
	return protein*kcalPerGramProtein + carbs*kcalPerGramCarbs + fats*kcalPerGramFat
}

// SumDailyTotals sums calories and macronutrients across meals. An empty
// slice yields all-zero totals, not an error.
func SumDailyTotals(meals []models.Meal) models.DailyTotals {
	var t models.DailyTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Macronutrients.Protein
		t.Carbs += m.Macronutrients.Carbs
		t.Fats += m.Macronutrients.Fats
	}
	return t
}
