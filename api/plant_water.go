package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlantWater stamps the plant as watered right now
func (a *API) PlantWater(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	plant, ok := a.loadOwnedPlant(c)
	if !ok {
		return
	}

	plant.LastWatered = time.Now().Unix()

	if err := a.DB.Save(plant).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update plant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, plant)
}
