package api

import (
	"net/http"
	"verdant/plantcare-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlantDelete removes a plant together with its reminders in one
// transaction so a failure can't leave orphaned reminders behind. The
// image file is removed afterwards, best effort; a leftover file is
// harmless and invisible.
func (a *API) PlantDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	plant, ok := a.loadOwnedPlant(c)
	if !ok {
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("plant_id = ? AND user_id = ?", plant.ID, userID).
			Delete(&model.Reminder{}).
			Error
		if err != nil {
			return err
		}

		return tx.Delete(plant).Error
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete plant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if plant.Image != nil {
		if err := a.Store.Delete(c.Request.Context(), *plant.Image); err != nil {
			zap.L().Warn("Failed to remove plant image", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plant removed",
	})
}
