package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"backend/apperror"
	"backend/logger"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// historyCSVHeader is the fixed column order of the export file.
var historyCSVHeader = []string{"Date", "Time", "Foods", "Calories", "Protein(g)", "Carbs(g)", "Fats(g)"}

type FoodController struct {
	analysis  *services.AnalysisService
	history   *services.HistoryService
	alerts    *services.AlertService
	uploadDir string
	archive   bool // mirror analyzed images to S3
}

func NewFoodController(
	analysis *services.AnalysisService,
	history *services.HistoryService,
	alerts *services.AlertService,
	uploadDir string,
) *FoodController {
	return &FoodController{
		analysis:  analysis,
		history:   history,
		alerts:    alerts,
		uploadDir: uploadDir,
		archive:   os.Getenv("S3_BUCKET") != "",
	}
}

// POST /api/food/analyze, multipart field "image"
func (fc *FoodController) AnalyzeImage(c *gin.Context) {
	userID := c.GetUint("userID")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, apperror.Validation("please upload an image"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperror.Validation("could not read uploaded image"))
		return
	}
	image, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		respondError(c, apperror.Validation("could not read uploaded image"))
		return
	}

	result, err := fc.analysis.AnalyzeImage(c.Request.Context(), userID, image)
	if err != nil {
		respondError(c, err)
		return
	}

	go fc.keepImage(userID, fileHeader.Filename, image)

	body := gin.H{"meal": result.Meal}
	if result.Exceeded {
		body["exceeded"] = true
		body["message"] = "Daily calorie limit exceeded!"
	}
	c.JSON(http.StatusOK, body)
}

// keepImage stores a local copy of the analyzed upload and, when
// configured, mirrors it to S3. Best effort only.
func (fc *FoodController) keepImage(userID uint, filename string, image []byte) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d-%d%s", userID, time.Now().UnixNano(), ext)
	if err := os.WriteFile(filepath.Join(fc.uploadDir, name), image, 0o644); err != nil {
		logger.Warn("failed to save uploaded image", zap.String("name", name), zap.Error(err))
	}

	if fc.archive {
		if _, err := utils.ArchiveMealImage(context.Background(), image, "image/jpeg", userID); err != nil {
			logger.Warn("failed to archive image to S3", zap.Uint("userID", userID), zap.Error(err))
		}
	}
}

// GET /api/food/history?type=daily&date=YYYY-MM-DD
// GET /api/food/history?type=monthly&month=YYYY-MM
func (fc *FoodController) GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")
	historyType := c.Query("type")

	switch {
	case historyType == "daily" && c.Query("date") != "":
		date := c.Query("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			respondError(c, apperror.Validation("date must be formatted as YYYY-MM-DD"))
			return
		}
		view, err := fc.history.Daily(userID, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)

	case historyType == "monthly" && c.Query("month") != "":
		summaries, err := fc.history.Monthly(userID, c.Query("month"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summaries)

	default:
		respondError(c, apperror.Validation("invalid history request"))
	}
}

// GET /api/food/history/download?startDate=&endDate=
// Both bounds are optional; either side of the range may stay open.
func (fc *FoodController) DownloadHistory(c *gin.Context) {
	userID := c.GetUint("userID")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			respondError(c, apperror.Validation("dates must be formatted as YYYY-MM-DD"))
			return
		}
	}

	rows, err := fc.history.ExportRows(userID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No history found for the specified period."})
		return
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Date,
			r.Time,
			r.Foods,
			formatFloat(r.Calories),
			formatFloat(r.Protein),
			formatFloat(r.Carbs),
			formatFloat(r.Fats),
		})
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="history.csv"`)
	if err := utils.WriteCSV(c.Writer, historyCSVHeader, records); err != nil {
		logger.Error("failed to stream history CSV", zap.Error(err))
	}
}

// GET /api/food/alerts
func (fc *FoodController) ListAlerts(c *gin.Context) {
	alerts, err := fc.alerts.List(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
