package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FoodLabels keeps the classifier's ordered label list as a JSON text column
// so the array shape survives the round trip through the database.
type FoodLabels []string

func (f FoodLabels) Value() (driver.Value, error) {
	if f == nil {
		f = FoodLabels{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FoodLabels) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = FoodLabels{}
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("unsupported foods column type %T", src)
	}
}

type Macronutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// Meal is one recognized eating event. Immutable once created; owned by
// exactly one DayRecord.
type Meal struct {
	ID             uint           `gorm:"primaryKey" json:"-"`
	DayRecordID    uint           `gorm:"index;not null" json:"-"`
	Timestamp      string         `gorm:"size:8;not null" json:"timestamp"` // HH:MM:SS wall clock
	Foods          FoodLabels     `gorm:"type:text" json:"foods"`
	Calories       float64        `json:"calories"`
	Macronutrients Macronutrients `gorm:"embedded" json:"macronutrients"`
}

// DayRecord buckets one user's meals for one calendar day. At most one row
// exists per (user_id, date); meal order within the day is the insertion
// order of the meal rows.
type DayRecord struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID uint   `gorm:"uniqueIndex:idx_day_user_date;not null" json:"userId"`
	Date   string `gorm:"uniqueIndex:idx_day_user_date;size:10;not null" json:"date"` // YYYY-MM-DD
	Meals  []Meal `json:"meals"`
}

// DailyTotals is derived from a DayRecord's meals on every read, never
// persisted.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
