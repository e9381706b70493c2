package api

import (
	"net/http"
	"verdant/plantcare-api/internal/storage"
	"verdant/plantcare-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlantUpdate applies a partial update from a multipart form. Only
// fields present in the form are touched. A new image replaces the old
// file, deleteImage=true removes it and nulls the column.
func (a *API) PlantUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	plant, ok := a.loadOwnedPlant(c)
	if !ok {
		return
	}

	if v, ok := c.GetPostForm("name"); ok {
		if err := validators.PlantNameValidator(v); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		plant.Name = v
	}

	if v, ok := c.GetPostForm("species"); ok {
		plant.Species = v
	}

	if v, ok := c.GetPostForm("location"); ok {
		plant.Location = v
	}

	if v, ok := c.GetPostForm("waterFrequency"); ok {
		plant.WaterFrequency = v
	}

	if v, ok := c.GetPostForm("sunlight"); ok {
		if err := validators.SunlightValidator(v); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		plant.Sunlight = v
	}

	if v, ok := c.GetPostForm("notes"); ok {
		plant.Notes = v
	}

	// Image handling: an uploaded file wins over deleteImage
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

		if plant.Image != nil {
			if err := a.Store.Delete(c.Request.Context(), *plant.Image); err != nil {
				zap.L().Warn("Failed to remove old plant image", zap.Error(err), zap.String("requestID", requestID))
			}
		}

		plant.Image = &imgName
	} else if c.PostForm("deleteImage") == "true" && plant.Image != nil {
		if err := a.Store.Delete(c.Request.Context(), *plant.Image); err != nil {
			zap.L().Warn("Failed to remove plant image", zap.Error(err), zap.String("requestID", requestID))
		}

		plant.Image = nil
	}

	// Save won't null a pointer column, Updates with a map will
	err := a.DB.
		Model(plant).
		Updates(map[string]any{
			"name":            plant.Name,
			"species":         plant.Species,
			"location":        plant.Location,
			"water_frequency": plant.WaterFrequency,
			"sunlight":        plant.Sunlight,
			"notes":           plant.Notes,
			"image":           plant.Image,
		}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update plant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, plant)
}
