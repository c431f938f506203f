package main

import (
	"context"
	"os"

	"backend/config"
	"backend/controllers"
	"backend/logger"
	"backend/routes"
	"backend/services"
	"backend/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // env may come from the real environment instead

	logger.Init()
	defer logger.Close()

	config.InitDB()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Fatal("failed to create uploads directory", zap.String("dir", uploadDir), zap.Error(err))
	}

	ctx := context.Background()

	classifier, err := services.NewRekognitionService(ctx)
	if err != nil {
		logger.Fatal("failed to initialize Rekognition client", zap.Error(err))
	}
	predictor := services.NewMacroModelService()
	notifier, err := utils.NewSESMailer(ctx)
	if err != nil {
		logger.Fatal("failed to initialize SES client", zap.Error(err))
	}
	if os.Getenv("S3_BUCKET") != "" {
		if err := utils.InitS3(ctx); err != nil {
			logger.Fatal("failed to initialize S3 client", zap.Error(err))
		}
	}

	hub := services.NewRealtimeHub()
	ledger := services.NewLedgerService(config.DB)
	alerts := services.NewAlertService(config.DB, hub)
	analysis := services.NewAnalysisService(config.DB, ledger, classifier, predictor, notifier, alerts)
	history := services.NewHistoryService(ledger)

	authCtl := controllers.NewAuthController(config.DB)
	foodCtl := controllers.NewFoodController(analysis, history, alerts, uploadDir)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := routes.SetupRouter(authCtl, foodCtl, realtimeCtl)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
