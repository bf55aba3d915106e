package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAnalyticsHandler returns the evaluation analytics report.
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.GetReport())
}
