package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyViewEmptyDayIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(NewLedgerService(db))

	view, err := history.Daily(1, "2024-06-01")
	require.NoError(t, err)
	assert.NotNil(t, view.Meals)
	assert.Empty(t, view.Meals)
	assert.Equal(t, models.DailyTotals{}, view.DailyTotals)
}

func TestDailyViewComputesTotals(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	history := NewHistoryService(ledger)

	_, err := ledger.AppendMeal(1, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20, "oatmeal"))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(1, "2024-06-01", testMeal("12:30:00", 650, 40, 60, 30, "pasta", "salad"))
	require.NoError(t, err)

	view, err := history.Daily(1, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, view.Meals, 2)
	assert.Equal(t, models.DailyTotals{Calories: 1050, Protein: 65, Carbs: 110, Fats: 50}, view.DailyTotals)
}

func TestMonthlyViewOmitsDaysWithoutData(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	history := NewHistoryService(ledger)

	_, err := ledger.AppendMeal(1, "2024-06-20", testMeal("19:00:00", 300, 10, 45, 10))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(1, "2024-06-05", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(1, "2024-07-01", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)

	summaries, err := history.Monthly(1, "2024-06")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "2024-06-05", summaries[0].Date)
	assert.Equal(t, "2024-06-20", summaries[1].Date)
	assert.Equal(t, 400.0, summaries[0].DailyTotals.Calories)
}

func TestExportRowsShape(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	history := NewHistoryService(ledger)

	_, err := ledger.AppendMeal(1, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20, "eggs", "toast"))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(1, "2024-06-01", testMeal("12:30:00", 650, 40, 60, 30, "pasta"))
	require.NoError(t, err)

	rows, err := history.ExportRows(1, "2024-06-01", "2024-06-01")
	require.NoError(t, err)
	// 2 meal rows plus 1 total row
	require.Len(t, rows, 3)

	assert.Equal(t, ExportRow{
		Date: "2024-06-01", Time: "08:00:00", Foods: "eggs, toast",
		Calories: 400, Protein: 25, Carbs: 50, Fats: 20,
	}, rows[0])
	assert.Equal(t, "12:30:00", rows[1].Time)

	total := rows[2]
	assert.Equal(t, "Total", total.Foods)
	assert.Equal(t, "", total.Time)
	assert.Equal(t, 1050.0, total.Calories)
	assert.Equal(t, 65.0, total.Protein)
}

func TestExportRowsMultipleDaysAscending(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	history := NewHistoryService(ledger)

	_, err := ledger.AppendMeal(1, "2024-06-02", testMeal("09:00:00", 300, 10, 45, 10))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(1, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)

	rows, err := history.ExportRows(1, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-06-01", rows[0].Date)
	assert.Equal(t, "Total", rows[1].Foods)
	assert.Equal(t, "2024-06-02", rows[2].Date)
	assert.Equal(t, "Total", rows[3].Foods)
}

func TestExportRowsEmptyRange(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(NewLedgerService(db))

	rows, err := history.ExportRows(1, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
