package models

import "time"

// Alert records one daily-limit breach so clients can review past
// notifications. "limit" is a reserved word in SQL, hence the column rename.
type Alert struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"-"`
	Date          string    `gorm:"size:10" json:"date"`
	TotalCalories float64   `json:"totalCalories"`
	Limit         float64   `gorm:"column:calorie_limit" json:"limit"`
	CreatedAt     time.Time `json:"createdAt"`
}
