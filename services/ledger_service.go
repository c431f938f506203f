package services

import (
	"errors"
	"time"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// LedgerService is the store for per-user daily meal records.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

func mealOrder(db *gorm.DB) *gorm.DB {
	return db.Order("meals.id ASC")
}

// AppendMeal adds one meal to the user's record for date, creating the
// record lazily on the first meal of the day. The day upsert and the
// single-row meal insert run in one transaction, so concurrent appends to
// the same (user, date) interleave without losing meals; there is no
// whole-record read-modify-write anywhere in this path.
func (s *LedgerService) AppendMeal(userID uint, date string, meal *models.Meal) (*models.DayRecord, error) {
	var dayID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		day := models.DayRecord{UserID: userID, Date: date}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&day)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 || day.ID == 0 {
			// conflict path: the day already existed
			var existing models.DayRecord
			if err := tx.Where("user_id = ? AND date = ?", userID, date).
				First(&existing).Error; err != nil {
				return err
			}
			day = existing
		}
		meal.DayRecordID = day.ID
		dayID = day.ID
		return tx.Create(meal).Error
	})
	if err != nil {
		return nil, apperror.Storage("append meal", err)
	}

	var day models.DayRecord
	if err := s.db.Preload("Meals", mealOrder).First(&day, dayID).Error; err != nil {
		return nil, apperror.Storage("reload day record", err)
	}
	return &day, nil
}

// FindByDate returns the user's record for one calendar day, or nil when no
// meal has been logged on it.
func (s *LedgerService) FindByDate(userID uint, date string) (*models.DayRecord, error) {
	var day models.DayRecord
	err := s.db.Preload("Meals", mealOrder).
		Where("user_id = ? AND date = ?", userID, date).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage("find day record", err)
	}
	return &day, nil
}

// FindByRange returns day records sorted by date ascending. An empty bound
// leaves that side of the range open. Dates are ISO calendar strings, so
// lexicographic comparison in SQL matches chronological order.
func (s *LedgerService) FindByRange(userID uint, startDate, endDate string) ([]models.DayRecord, error) {
	q := s.db.Preload("Meals", mealOrder).Where("user_id = ?", userID)
	if startDate != "" {
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("date <= ?", endDate)
	}

	var days []models.DayRecord
	if err := q.Order("date ASC").Find(&days).Error; err != nil {
		return nil, apperror.Storage("find day records", err)
	}
	return days, nil
}

// FindByMonth covers the first through last calendar day of yearMonth
// ("YYYY-MM") inclusive, using real month arithmetic so December rolls into
// January of the next year.
func (s *LedgerService) FindByMonth(userID uint, yearMonth string) ([]models.DayRecord, error) {
	first, err := time.Parse(monthLayout, yearMonth)
	if err != nil {
		return nil, apperror.Validation("month must be formatted as YYYY-MM")
	}
	last := first.AddDate(0, 1, -1)
	return s.FindByRange(userID, first.Format(dateLayout), last.Format(dateLayout))
}
