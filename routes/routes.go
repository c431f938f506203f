package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	auth *controllers.AuthController,
	food *controllers.FoodController,
	realtime *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
		authGroup.PATCH("/update", middlewares.AuthMiddleware(), auth.Update)
	}

	foodGroup := api.Group("/food")
	foodGroup.Use(middlewares.AuthMiddleware())
	{
		foodGroup.POST("/analyze", food.AnalyzeImage)
		foodGroup.GET("/history", food.GetHistory)
		foodGroup.GET("/history/download", food.DownloadHistory)
		foodGroup.GET("/alerts", food.ListAlerts)
		foodGroup.GET("/alerts/ws", realtime.AlertsWS)
	}

	return r
}
