package services

import (
	"backend/apperror"
	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AlertService persists threshold breaches and pushes them to connected
// clients. Emission is best effort; it runs off the request path.
type AlertService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewAlertService(db *gorm.DB, hub *RealtimeHub) *AlertService {
	return &AlertService{db: db, hub: hub}
}

func (s *AlertService) Emit(userID uint, date string, totalCalories, limit float64) {
	a := &models.Alert{
		UserID:        userID,
		Date:          date,
		TotalCalories: totalCalories,
		Limit:         limit,
	}
	if err := s.db.Create(a).Error; err != nil {
		logger.Warn("failed to persist alert", zap.Uint("userID", userID), zap.Error(err))
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]interface{}{
			"kind":  "calorie.limit.exceeded",
			"alert": a,
		})
	}
}

// List returns the user's alerts, newest first.
func (s *AlertService) List(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, apperror.Storage("list alerts", err)
	}
	return alerts, nil
}
