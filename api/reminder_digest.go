package api

import (
	"net/http"
	"time"
	"verdant/plantcare-api/internal/model"
	"verdant/plantcare-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderDigest summarizes the caller's pending reminders for the
// one-shot notification toast. Notify is raised once per call no
// matter how many reminders are due.
func (a *API) ReminderDigest(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var reminders []model.Reminder

	err := a.DB.
		Where("user_id = ? AND completed = ?", userID, false).
		Find(&reminders).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch reminders", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, service.BuildDigest(time.Now(), reminders))
}
