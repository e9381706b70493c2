package api

import (
	"net/http"
	"time"
	"verdant/plantcare-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reminderUpdateBody struct {
	Type      *string    `json:"type"`
	DueDate   *time.Time `json:"dueDate"`
	Completed *bool      `json:"completed"`
	Notes     *string    `json:"notes"`
}

// ReminderUpdate applies a partial update, only fields present in the
// body are touched
func (a *API) ReminderUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	reminder, ok := a.loadOwnedReminder(c)
	if !ok {
		return
	}

	var data reminderUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Type != nil {
		if err := validators.ReminderTypeValidator(*data.Type); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		reminder.Type = *data.Type
	}

	if data.DueDate != nil {
		reminder.DueDate = *data.DueDate
	}

	if data.Completed != nil {
		reminder.Completed = *data.Completed
	}

	if data.Notes != nil {
		reminder.Notes = *data.Notes
	}

	err := a.DB.
		Model(reminder).
		Updates(map[string]any{
			"type":      reminder.Type,
			"due_date":  reminder.DueDate,
			"completed": reminder.Completed,
			"notes":     reminder.Notes,
		}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update reminder", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, makeReminderRow(time.Now(), *reminder))
}
