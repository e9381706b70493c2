package api

import (
	"net/http"
	"verdant/plantcare-api/internal/model"
	"verdant/plantcare-api/internal/storage"
	"verdant/plantcare-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) UserAvatar(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fh, err := c.FormFile("avatar")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No avatar file provided",
			"requestID": requestID,
		})
		return
	}

	mimeType, err := validators.ImageValidator(fh)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := a.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
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

	name := storage.MakeName("avatar", fh.Filename)

	if err := a.Store.Save(c.Request.Context(), name, f, fh.Size, mimeType); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store avatar", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	oldAvatar := user.Avatar
	user.Avatar = &name

	err = a.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Update("avatar", name).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update avatar", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if oldAvatar != nil {
		if err := a.Store.Delete(c.Request.Context(), *oldAvatar); err != nil {
			zap.L().Warn("Failed to remove old avatar", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.JSON(http.StatusOK, user)
}
