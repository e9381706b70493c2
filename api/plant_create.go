package api

import (
	"net/http"
	"time"
	"verdant/plantcare-api/internal/model"
	"verdant/plantcare-api/internal/storage"
	"verdant/plantcare-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlantCreate registers a new plant from a multipart form. The photo
// field is optional; a plant created without one has image null.
func (a *API) PlantCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	name := c.PostForm("name")
	if err := validators.PlantNameValidator(name); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	sunlight := c.PostForm("sunlight")
	if err := validators.SunlightValidator(sunlight); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	plant := model.Plant{
		UserID:         userID,
		Name:           name,
		Species:        c.PostForm("species"),
		Location:       c.PostForm("location"),
		WaterFrequency: c.PostForm("waterFrequency"),
		Sunlight:       sunlight,
		Notes:          c.PostForm("notes"),
		LastWatered:    time.Now().Unix(),
		CreatedAt:      time.Now().Unix(),
	}

	if fh, err := c.FormFile("image"); err == nil {
		mimeType, err := validators.ImageValidator(fh)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to open uploaded file", zap.Error(err), zap.String("requestID", requestID))
			return
		}
		defer f.Close()

		imgName := storage.MakeName("plant", fh.Filename)

		if err := a.Store.Save(c.Request.Context(), imgName, f, fh.Size, mimeType); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to store plant image", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		plant.Image = &imgName
	}

	if err := a.DB.Create(&plant).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create plant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, plant)
}
