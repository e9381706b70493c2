package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"verdant/plantcare-api/internal/service"
	"verdant/plantcare-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIAnalyze forwards an uploaded plant photo to the vision model and
// returns its markdown health analysis. The image only lives in a
// temporary file for the duration of the request, it is removed on
// success and on failure alike.
func (a *API) AIAnalyze(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if a.Vision == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error":     "AI service is not configured",
			"requestID": requestID,
		})
		return
	}

	fh, err := c.FormFile("plantImage")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No image file uploaded for analysis",
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

	temp, err := os.CreateTemp("", "analyze-*")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create temporary file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer os.Remove(temp.Name())
	defer temp.Close()

	if _, err := io.Copy(temp, f); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to buffer uploaded file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	image, err := os.ReadFile(temp.Name())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read temporary file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	analysis, err := a.Vision.AnalyzePlant(c.Request.Context(), image, mimeType, c.PostForm("language"))
	if err != nil {
		if errors.Is(err, service.ErrAnalysisTimeout) {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error":     "Analysis timed out",
				"requestID": requestID,
			})
			return
		}

		// Provider errors are surfaced to the user as-is
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Plant analysis failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": analysis,
	})
}
