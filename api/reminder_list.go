package api

import (
	"net/http"
	"time"
	"verdant/plantcare-api/internal/model"
	"verdant/plantcare-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// reminderRow is what the list and fetch endpoints return: the
// reminder itself, its classification for row highlighting and a
// trimmed view of the plant it belongs to.
type reminderRow struct {
	model.Reminder
	Status service.ReminderStatus `json:"status"`
	Plant  *plantSummary          `json:"plant,omitempty"`
}

type plantSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Image   *string `json:"image"`
}

func makeReminderRow(now time.Time, r model.Reminder) reminderRow {
	row := reminderRow{
		Reminder: r,
		Status:   service.ClassifyReminder(now, r.DueDate, r.Completed),
	}

	if r.Plant.ID != 0 {
		row.Plant = &plantSummary{
			ID:      r.Plant.ID,
			Name:    r.Plant.Name,
			Species: r.Plant.Species,
			Image:   r.Plant.Image,
		}
	}

	return row
}

// ReminderList returns the caller's reminders sorted ascending by due
// date, soonest or most-overdue first. Every qualifying row carries
// its own status; the one-shot notification lives in ReminderDigest.
func (a *API) ReminderList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var reminders []model.Reminder

	err := a.DB.
		Preload("Plant").
		Where("user_id = ?", userID).
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

	service.SortByDueDate(reminders)

	now := time.Now()
	rows := make([]reminderRow, 0, len(reminders))
	for _, r := range reminders {
		rows = append(rows, makeReminderRow(now, r))
	}

	c.JSON(http.StatusOK, rows)
}
