package services

import (
	"strings"

	"backend/models"
)

// DailyView is the response shape for one calendar day. Meals is never nil;
// an absent day yields an empty list and zero totals.
type DailyView struct {
	Meals       []models.Meal      `json:"meals"`
	DailyTotals models.DailyTotals `json:"dailyTotals"`
}

// DailySummary is one day-with-data inside a monthly view.
type DailySummary struct {
	Date        string             `json:"date"`
	Meals       []models.Meal      `json:"meals"`
	DailyTotals models.DailyTotals `json:"dailyTotals"`
}

// ExportRow is one line of the range export: either a meal or the synthetic
// per-day "Total" row.
type ExportRow struct {
	Date     string
	Time     string
	Foods    string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// HistoryService serves point-in-time and ranged aggregate views on top of
// the ledger.
type HistoryService struct {
	ledger *LedgerService
}

func NewHistoryService(ledger *LedgerService) *HistoryService {
	return &HistoryService{ledger: ledger}
}

// Daily returns the meals and computed totals for one day. A day with no
// record is not an error.
func (s *HistoryService) Daily(userID uint, date string) (*DailyView, error) {
	day, err := s.ledger.FindByDate(userID, date)
	if err != nil {
		return nil, err
	}

	view := &DailyView{Meals: []models.Meal{}}
	if day != nil {
		view.Meals = day.Meals
		view.DailyTotals = SumDailyTotals(day.Meals)
	}
	return view, nil
}

// Monthly returns one summary per day-with-data in the month, date
// ascending. Days without a record are omitted, not zero-filled.
func (s *HistoryService) Monthly(userID uint, yearMonth string) ([]DailySummary, error) {
	days, err := s.ledger.FindByMonth(userID, yearMonth)
	if err != nil {
		return nil, err
	}

	summaries := make([]DailySummary, 0, len(days))
	for _, d := range days {
		summaries = append(summaries, DailySummary{
			Date:        d.Date,
			Meals:       d.Meals,
			DailyTotals: SumDailyTotals(d.Meals),
		})
	}
	return summaries, nil
}

// ExportRows flattens a date range into one row per meal plus a "Total" row
// per day, date-ascending then time-ascending. Either bound may be empty.
// An empty result means "no data", not an error.
func (s *HistoryService) ExportRows(userID uint, startDate, endDate string) ([]ExportRow, error) {
	days, err := s.ledger.FindByRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var rows []ExportRow
	for _, d := range days {
		for _, m := range d.Meals {
			rows = append(rows, ExportRow{
				Date:     d.Date,
				Time:     m.Timestamp,
				Foods:    strings.Join(m.Foods, ", "),
				Calories: m.Calories,
				Protein:  m.Macronutrients.Protein,
				Carbs:    m.Macronutrients.Carbs,
				Fats:     m.Macronutrients.Fats,
			})
		}
		t := SumDailyTotals(d.Meals)
		rows = append(rows, ExportRow{
			Date:     d.Date,
			Foods:    "Total",
			Calories: t.Calories,
			Protein:  t.Protein,
			Carbs:    t.Carbs,
			Fats:     t.Fats,
		})
	}
	return rows, nil
}
