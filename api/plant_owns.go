package api

import (
	"errors"
	"net/http"
	"verdant/plantcare-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadOwnedPlant fetches the plant from the :id route param scoped to
// the caller. A plant that exists but belongs to someone else is
// reported as not found, never as someone else's data. When the
// returned bool is false a response has already been written.
func (a *API) loadOwnedPlant(c *gin.Context) (*model.Plant, bool) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	plantID := c.Param("id")
	if plantID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return nil, false
	}

	var plant model.Plant

	err := a.DB.
		Where("id = ? AND user_id = ?", plantID, userID).
		First(&plant).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Plant not found",
				"requestID": requestID,
			})
			return nil, false
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch plant", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return &plant, true
}
