package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadServe serves an uploaded image by filename. The storage
// backend either streams the file or redirects to the CDN.
func (a *API) UploadServe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	filename := c.Param("filename")
	if filename == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No filename provided",
			"requestID": requestID,
		})
		return
	}

	a.Store.Serve(c, filename)
}
