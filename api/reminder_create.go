package api

import (
	"errors"
	"net/http"
	"time"
	"verdant/plantcare-api/internal/model"
	"verdant/plantcare-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type reminderCreateBody struct {
	PlantID uint      `json:"plantId"`
	Type    string    `json:"type"`
	DueDate time.Time `json:"dueDate"`
	Notes   string    `json:"notes"`
}

func (a *API) ReminderCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data reminderCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.ReminderTypeValidator(data.Type); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.DueDate.IsZero() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     validators.ErrDueDateEmpty.Error(),
			"requestID": requestID,
		})
		return
	}

	// The referenced plant must exist and belong to the caller
	var plant model.Plant
	err := a.DB.
		Where("id = ? AND user_id = ?", data.PlantID, userID).
		First(&plant).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Plant not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch plant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	reminder := model.Reminder{
		UserID:    userID,
		PlantID:   data.PlantID,
		Type:      data.Type,
		DueDate:   data.DueDate,
		Notes:     data.Notes,
		CreatedAt: time.Now().Unix(),
	}

	if err := a.DB.Create(&reminder).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create reminder", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, reminder)
}
