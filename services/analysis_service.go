package services

import (
	"context"
	"errors"
	"time"

	"backend/apperror"
	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Classifier turns image bytes into an ordered list of food labels. An
// empty list is a valid answer ("no food recognized").
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]string, error)
}

// MacroPrediction is the macro model's output for one image. Calories may
// be zero when the model does not report them; Calories() then derives the
// figure from the macros.
type MacroPrediction struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// MacroPredictor estimates macronutrients for image bytes.
type MacroPredictor interface {
	PredictMacros(ctx context.Context, image []byte) (MacroPrediction, error)
}

// Notifier delivers a daily-limit-exceeded notice. Delivery is best effort
// and never fails the request that triggered it.
type Notifier interface {
	NotifyLimitExceeded(email string, totalCalories, limit float64) error
}

type AnalysisResult struct {
	Meal     *models.Meal       `json:"meal"`
	Totals   models.DailyTotals `json:"dailyTotals"`
	Exceeded bool               `json:"exceeded"`
}

// AnalysisService runs the meal ingestion pipeline: classify, predict,
// build the meal, append it to the ledger, recompute the day, check the
// calorie threshold.
type AnalysisService struct {
	db         *gorm.DB
	ledger     *LedgerService
	classifier Classifier
	predictor  MacroPredictor
	notifier   Notifier
	alerts     *AlertService

	now func() time.Time
}

func NewAnalysisService(
	db *gorm.DB,
	ledger *LedgerService,
	classifier Classifier,
	predictor MacroPredictor,
	notifier Notifier,
	alerts *AlertService,
) *AnalysisService {
	return &AnalysisService{
		db:         db,
		ledger:     ledger,
		classifier: classifier,
		predictor:  predictor,
		notifier:   notifier,
		alerts:     alerts,
		now:        time.Now,
	}
}

// AnalyzeImage runs one full ingestion pass for an uploaded image. The user
// is resolved before any external call is made.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, userID uint, image []byte) (*AnalysisResult, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Storage("load user", err)
	}

	foods, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return nil, apperror.Upstream("failed to analyze image", err)
	}
	if foods == nil {
		foods = []string{}
	}

	pred, err := s.predictor.PredictMacros(ctx, image)
	if err != nil {
		return nil, apperror.Upstream("failed to get macronutrient prediction", err)
	}

	now := s.now()
	meal := &models.Meal{
		Timestamp: now.Format("15:04:05"),
		Foods:     models.FoodLabels(foods),
		Calories:  Calories(pred.Protein, pred.Carbs, pred.Fats, pred.Calories),
		Macronutrients: models.Macronutrients{
			Protein: pred.Protein,
			Carbs:   pred.Carbs,
			Fats:    pred.Fats,
		},
	}
	date := now.Format(dateLayout)

	day, err := s.ledger.AppendMeal(user.ID, date, meal)
	if err != nil {
		return nil, err
	}

	// Totals come from the re-read record, so concurrent appends that
	// landed before ours are included.
	totals := SumDailyTotals(day.Meals)
	result := &AnalysisResult{Meal: meal, Totals: totals}

	if totals.Calories > user.DailyCalorieIntake { // strictly greater than
		result.Exceeded = true
		go s.dispatchAlert(user, date, totals.Calories)
	}
	return result, nil
}

func (s *AnalysisService) dispatchAlert(user models.User, date string, totalCalories float64) {
	if s.notifier != nil {
		if err := s.notifier.NotifyLimitExceeded(user.Email, totalCalories, user.DailyCalorieIntake); err != nil {
			logger.Warn("calorie limit notification failed",
				zap.Uint("userID", user.ID),
				zap.Error(err),
			)
		}
	}
	if s.alerts != nil {
		s.alerts.Emit(user.ID, date, totalCalories, user.DailyCalorieIntake)
	}
}
