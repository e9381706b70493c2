package api

import (
	"errors"
	"net/http"
	"verdant/plantcare-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadOwnedReminder mirrors loadOwnedPlant for reminders
func (a *API) loadOwnedReminder(c *gin.Context) (*model.Reminder, bool) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	reminderID := c.Param("id")
	if reminderID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return nil, false
	}

	var reminder model.Reminder

	err := a.DB.
		Preload("Plant").
		Where("id = ? AND user_id = ?", reminderID, userID).
		First(&reminder).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Reminder not found",
				"requestID": requestID,
			})
			return nil, false
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch reminder", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return &reminder, true
}
