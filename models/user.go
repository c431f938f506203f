package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email              string  `gorm:"uniqueIndex;not null" json:"email"`
	Password           string  `gorm:"not null" json:"-"`
	Weight             float64 `json:"weight"`
	Height             float64 `json:"height"`
	TargetWeight       float64 `json:"targetWeight"`
	DailyCalorieIntake float64 `json:"dailyCalorieIntake"`
}
