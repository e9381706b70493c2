package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReminderDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	reminder, ok := a.loadOwnedReminder(c)
	if !ok {
		return
	}

	if err := a.DB.Delete(reminder).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete reminder", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reminder removed",
	})
}
