package config

import (
	"fmt"
	"os"

	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to Postgres and migrates the schema. A connection failure
// at boot is fatal; the process must not serve without its store.
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.DayRecord{},
		&models.Meal{},
		&models.Alert{},
	); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
