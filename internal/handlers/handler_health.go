package handlers

import (
	"context"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// HealthResponse reports the status of each dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// getHealth godoc
// @Summary Health check
// @Description Pings the database (and redis when configured)
// @Tags root
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func getHealth(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks, err := health.Check(ctx)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "error", Checks: checks})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
	}
}
