package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *API) ReminderFetch(c *gin.Context) {
	reminder, ok := a.loadOwnedReminder(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, makeReminderRow(time.Now(), *reminder))
}
