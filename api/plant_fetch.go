package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) PlantFetch(c *gin.Context) {
	plant, ok := a.loadOwnedPlant(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, plant)
}
