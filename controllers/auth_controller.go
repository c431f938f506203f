package controllers

import (
	"errors"
	"net/http"
	"strings"

	"backend/apperror"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type SignupInput struct {
	Email              string  `json:"email" binding:"required,email"`
	Password           string  `json:"password" binding:"required"`
	Weight             float64 `json:"weight" binding:"required,gt=0"`
	Height             float64 `json:"height" binding:"required,gt=0"`
	TargetWeight       float64 `json:"targetWeight" binding:"required,gt=0"`
	DailyCalorieIntake float64 `json:"dailyCalorieIntake" binding:"required,gt=0"`
}

// POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperror.Validation("all fields are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	err := ac.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		respondError(c, apperror.Conflict("email already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, apperror.Storage("lookup user", err))
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Email:              email,
		Password:           hashed,
		Weight:             input.Weight,
		Height:             input.Height,
		TargetWeight:       input.TargetWeight,
		DailyCalorieIntake: input.DailyCalorieIntake,
	}
	if err := ac.db.Create(&user).Error; err != nil {
		respondError(c, apperror.Storage("create user", err))
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "userId": user.ID})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperror.Validation("email and password are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := ac.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperror.Unauthenticated("invalid credentials"))
			return
		}
		respondError(c, apperror.Storage("lookup user", err))
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		respondError(c, apperror.Unauthenticated("invalid credentials"))
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "userId": user.ID})
}

type UpdateInput struct {
	TargetWeight       *float64 `json:"targetWeight"`
	DailyCalorieIntake *float64 `json:"dailyCalorieIntake"`
}

// PATCH /api/auth/update
func (ac *AuthController) Update(c *gin.Context) {
	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperror.Validation("invalid request body"))
		return
	}
	if input.TargetWeight == nil && input.DailyCalorieIntake == nil {
		respondError(c, apperror.Validation("at least one of targetWeight or dailyCalorieIntake is required"))
		return
	}

	userID := c.GetUint("userID")

	var user models.User
	if err := ac.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperror.NotFound("user"))
			return
		}
		respondError(c, apperror.Storage("load user", err))
		return
	}

	if input.TargetWeight != nil {
		user.TargetWeight = *input.TargetWeight
	}
	if input.DailyCalorieIntake != nil {
		user.DailyCalorieIntake = *input.DailyCalorieIntake
	}
	if err := ac.db.Save(&user).Error; err != nil {
		respondError(c, apperror.Storage("update user", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user data updated successfully", "user": user})
}
