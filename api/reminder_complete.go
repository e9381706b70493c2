package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReminderComplete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	reminder, ok := a.loadOwnedReminder(c)
	if !ok {
		return
	}

	reminder.Completed = true

	err := a.DB.
		Model(reminder).
		Update("completed", true).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to complete reminder", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, makeReminderRow(time.Now(), *reminder))
}
