package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"backend/logger"
	"backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func init() {
	logger.Init()
}

var testDBSeq int64

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the memory database alive and serializes
// writers, matching what Postgres row locking gives us in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.DayRecord{},
		&models.Meal{},
		&models.Alert{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func testMeal(timestamp string, calories, protein, carbs, fats float64, foods ...string) *models.Meal {
	return &models.Meal{
		Timestamp: timestamp,
		Foods:     models.FoodLabels(foods),
		Calories:  calories,
		Macronutrients: models.Macronutrients{
			Protein: protein,
			Carbs:   carbs,
			Fats:    fats,
		},
	}
}
