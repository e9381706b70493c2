package api

import (
	"net/http"
	"verdant/plantcare-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) PlantList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var plants []model.Plant

	err := a.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plants).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch plants", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, plants)
}
