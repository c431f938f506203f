package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendMealCreatesDayRecordLazily(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	day, err := ledger.AppendMeal(1, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20, "oatmeal"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), day.UserID)
	assert.Equal(t, "2024-06-01", day.Date)
	require.Len(t, day.Meals, 1)
	assert.Equal(t, []string{"oatmeal"}, []string(day.Meals[0].Foods))
}

func TestAppendMealReusesExistingDayRecord(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	first, err := ledger.AppendMeal(1, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)
	second, err := ledger.AppendMeal(1, "2024-06-01", testMeal("12:30:00", 650, 40, 60, 30))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, second.Meals, 2)
	// append order is preserved
	assert.Equal(t, "08:00:00", second.Meals[0].Timestamp)
	assert.Equal(t, "12:30:00", second.Meals[1].Timestamp)
}

func TestAppendMealSeparateDaysAndUsers(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	_, err := ledger.AppendMeal(1, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(1, "2024-06-02", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)
	_, err = ledger.AppendMeal(2, "2024-06-01", testMeal("08:00:00", 400, 25, 50, 20))
	require.NoError(t, err)

	day, err := ledger.FindByDate(1, "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Len(t, day.Meals, 1)
}

func TestAppendMealConcurrentSameDay(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ts := fmt.Sprintf("10:00:%02d", i)
			if _, err := ledger.AppendMeal(7, "2024-06-01", testMeal(ts, 100, 5, 10, 3)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent append failed: %v", err)
	}

	day, err := ledger.FindByDate(7, "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, day)
	// none lost, none duplicated
	assert.Len(t, day.Meals, n)

	seen := make(map[string]bool, n)
	for _, m := range day.Meals {
		seen[m.Timestamp] = true
	}
	assert.Len(t, seen, n)
}

func TestFindByDateAbsent(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	day, err := ledger.FindByDate(1, "2024-06-01")
	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestFindByRangeOrderedAscending(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	for _, date := range []string{"2024-06-03", "2024-06-01", "2024-06-02"} {
		_, err := ledger.AppendMeal(1, date, testMeal("08:00:00", 400, 25, 50, 20))
		require.NoError(t, err)
	}

	days, err := ledger.FindByRange(1, "2024-06-01", "2024-06-02")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-06-01", days[0].Date)
	assert.Equal(t, "2024-06-02", days[1].Date)
}

func TestFindByRangeOpenEnds(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	for _, date := range []string{"2024-05-30", "2024-06-01", "2024-06-15"} {
		_, err := ledger.AppendMeal(1, date, testMeal("08:00:00", 400, 25, 50, 20))
		require.NoError(t, err)
	}

	days, err := ledger.FindByRange(1, "2024-06-01", "")
	require.NoError(t, err)
	assert.Len(t, days, 2)

	days, err = ledger.FindByRange(1, "", "2024-06-01")
	require.NoError(t, err)
	assert.Len(t, days, 2)

	days, err = ledger.FindByRange(1, "", "")
	require.NoError(t, err)
	assert.Len(t, days, 3)
}

func TestFindByMonthLeapYearBounds(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	for _, date := range []string{"2024-01-31", "2024-02-01", "2024-02-29", "2024-03-01"} {
		_, err := ledger.AppendMeal(1, date, testMeal("08:00:00", 400, 25, 50, 20))
		require.NoError(t, err)
	}

	days, err := ledger.FindByMonth(1, "2024-02")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-02-01", days[0].Date)
	assert.Equal(t, "2024-02-29", days[1].Date)
}

func TestFindByMonthDecemberRollsIntoNextYear(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	for _, date := range []string{"2024-11-30", "2024-12-01", "2024-12-31", "2025-01-01"} {
		_, err := ledger.AppendMeal(1, date, testMeal("08:00:00", 400, 25, 50, 20))
		require.NoError(t, err)
	}

	days, err := ledger.FindByMonth(1, "2024-12")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-12-01", days[0].Date)
	assert.Equal(t, "2024-12-31", days[1].Date)
}

func TestFindByMonthRejectsBadFormat(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)

	_, err := ledger.FindByMonth(1, "2024-13")
	assert.Error(t, err)

	_, err = ledger.FindByMonth(1, "junk")
	assert.Error(t, err)
}
