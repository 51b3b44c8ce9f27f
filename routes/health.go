package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"interviewhub/config"
	"interviewhub/models"
)

// ISO-8601 in UTC with millisecond precision, e.g. 2024-05-01T12:00:00.000Z
const healthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HealthRouteHandler reports liveness; it has no inputs and never fails
func HealthRouteHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(healthTimestampLayout),
			Service:   cfg.Service.Name,
			Version:   cfg.Service.Version,
		})
	}
}
